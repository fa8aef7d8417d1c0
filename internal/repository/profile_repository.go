package repository

import (
	"context"
	"encoding/json"
	"errors"

	"skill-swap/internal/domain/profile"
	"skill-swap/internal/recordstore"
)

const usersPrefix = "users"

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (profile.Profile, error)
	List(ctx context.Context) ([]profile.Profile, error)
	SaveFields(ctx context.Context, userID string, fields map[string]any) error
	Init(ctx context.Context, userID, name, email string) error
}

// RecordProfileRepository reads and writes users/{id} documents. Reads go
// through a strict decode: a document whose fields do not match the profile
// shape surfaces as ErrMalformedRecord instead of being trusted downstream.
type RecordProfileRepository struct {
	store recordstore.Store
}

func NewRecordProfileRepository(store recordstore.Store) *RecordProfileRepository {
	return &RecordProfileRepository{store: store}
}

func userPath(userID string) string {
	return usersPrefix + "/" + userID
}

func (r *RecordProfileRepository) Get(ctx context.Context, userID string) (profile.Profile, error) {
	var p profile.Profile
	if err := r.store.Get(ctx, userPath(userID), &p); err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return profile.Profile{}, profile.ErrNotFound
		}
		if isDecodeError(err) {
			return profile.Profile{}, profile.ErrMalformedRecord
		}
		return profile.Profile{}, err
	}
	p.ID = userID
	return p, nil
}

// List returns every user document in insertion order. Malformed documents
// are dropped rather than failing the whole listing.
func (r *RecordProfileRepository) List(ctx context.Context) ([]profile.Profile, error) {
	records, err := r.store.List(ctx, usersPrefix)
	if err != nil {
		return nil, err
	}

	out := make([]profile.Profile, 0, len(records))
	for _, rec := range records {
		var p profile.Profile
		if err := json.Unmarshal(rec.Data, &p); err != nil {
			continue
		}
		p.ID = rec.Key
		out = append(out, p)
	}
	return out, nil
}

func (r *RecordProfileRepository) SaveFields(ctx context.Context, userID string, fields map[string]any) error {
	return r.store.Merge(ctx, userPath(userID), fields)
}

// Init writes the minimal record registration creates: name and email only.
func (r *RecordProfileRepository) Init(ctx context.Context, userID, name, email string) error {
	return r.store.Set(ctx, userPath(userID), map[string]any{
		"name":  name,
		"email": email,
	})
}

func isDecodeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	return errors.As(err, &typeErr) || errors.As(err, &syntaxErr)
}

var _ ProfileRepository = (*RecordProfileRepository)(nil)
