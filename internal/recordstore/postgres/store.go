package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"skill-swap/internal/database"
	"skill-swap/internal/recordstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Store keeps each document as one JSONB row keyed by its full path.
type Store struct {
	db database.DB
}

func NewStore(db database.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Get(ctx context.Context, path string, out any) error {
	var doc []byte
	err := s.db.QueryRow(ctx, `SELECT doc FROM records WHERE path = $1`, path).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return recordstore.ErrNotFound
		}
		return err
	}
	return json.Unmarshal(doc, out)
}

func (s *Store) List(ctx context.Context, prefix string) ([]recordstore.Record, error) {
	prefix = strings.TrimSuffix(prefix, "/")
	rows, err := s.db.Query(
		ctx,
		`SELECT path, doc FROM records WHERE path LIKE $1 ORDER BY created_at ASC, path ASC`,
		prefix+"/%",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]recordstore.Record, 0)
	for rows.Next() {
		var path string
		var doc []byte
		if err := rows.Scan(&path, &doc); err != nil {
			return nil, err
		}
		out = append(out, recordstore.Record{
			Key:  strings.TrimPrefix(path, prefix+"/"),
			Data: json.RawMessage(doc),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, path string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO records (path, doc) VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		path, doc,
	)
	return err
}

func (s *Store) Merge(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	patch, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	// JSONB || replaces only the top-level keys present in the patch.
	_, err = s.db.Exec(ctx, `
		INSERT INTO records (path, doc) VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET doc = records.doc || EXCLUDED.doc, updated_at = now()`,
		path, patch,
	)
	return err
}

func (s *Store) Push(ctx context.Context, prefix string, value any) (string, error) {
	key := uuid.NewString()
	path := strings.TrimSuffix(prefix, "/") + "/" + key
	if err := s.Set(ctx, path, value); err != nil {
		return "", err
	}
	return key, nil
}

var _ recordstore.Store = (*Store)(nil)
