package memory

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"skill-swap/internal/recordstore"

	"github.com/google/uuid"
)

// Store is an in-memory recordstore.Store with the same semantics as the
// Postgres one. Listing preserves insertion order.
type Store struct {
	mu    sync.RWMutex
	docs  map[string]json.RawMessage
	order []string
}

func NewStore() *Store {
	return &Store{docs: make(map[string]json.RawMessage)}
}

func (s *Store) Get(ctx context.Context, path string, out any) error {
	s.mu.RLock()
	doc, ok := s.docs[path]
	s.mu.RUnlock()
	if !ok {
		return recordstore.ErrNotFound
	}
	return json.Unmarshal(doc, out)
}

func (s *Store) List(ctx context.Context, prefix string) ([]recordstore.Record, error) {
	prefix = strings.TrimSuffix(prefix, "/") + "/"

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]recordstore.Record, 0)
	for _, path := range s.order {
		if !strings.HasPrefix(path, prefix) {
			continue
		}
		out = append(out, recordstore.Record{
			Key:  strings.TrimPrefix(path, prefix),
			Data: s.docs[path],
		})
	}
	return out, nil
}

func (s *Store) Set(ctx context.Context, path string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[path]; !ok {
		s.order = append(s.order, path)
	}
	s.docs[path] = doc
	return nil
}

func (s *Store) Merge(ctx context.Context, path string, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]json.RawMessage)
	if existing, ok := s.docs[path]; ok {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return err
		}
	} else {
		s.order = append(s.order, path)
	}

	for k, v := range fields {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		merged[k] = raw
	}

	doc, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	s.docs[path] = doc
	return nil
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
