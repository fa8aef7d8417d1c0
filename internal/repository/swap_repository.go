package repository

import (
	"context"
	"encoding/json"
	"errors"

	"skill-swap/internal/domain/swap"
	"skill-swap/internal/recordstore"
)

const requestsPrefix = "requests"

type SwapRepository interface {
	Create(ctx context.Context, req swap.Request) (string, error)
	Get(ctx context.Context, id string) (swap.Request, error)
	List(ctx context.Context) ([]swap.Request, error)
	SetStatus(ctx context.Context, id, status string) error
}

// RecordSwapRepository stores requests/{id} documents. Status changes are a
// single-field merge, matching how the original client updated them.
type RecordSwapRepository struct {
	store recordstore.Store
}

func NewRecordSwapRepository(store recordstore.Store) *RecordSwapRepository {
	return &RecordSwapRepository{store: store}
}

func requestPath(id string) string {
	return requestsPrefix + "/" + id
}

func (r *RecordSwapRepository) Create(ctx context.Context, req swap.Request) (string, error) {
	return r.store.Push(ctx, requestsPrefix, req)
}

func (r *RecordSwapRepository) Get(ctx context.Context, id string) (swap.Request, error) {
	var req swap.Request
	if err := r.store.Get(ctx, requestPath(id), &req); err != nil {
		if errors.Is(err, recordstore.ErrNotFound) {
			return swap.Request{}, swap.ErrNotFound
		}
		if isDecodeError(err) {
			return swap.Request{}, swap.ErrMalformedRecord
		}
		return swap.Request{}, err
	}
	req.ID = id
	return req, nil
}

func (r *RecordSwapRepository) List(ctx context.Context) ([]swap.Request, error) {
	records, err := r.store.List(ctx, requestsPrefix)
	if err != nil {
		return nil, err
	}

	out := make([]swap.Request, 0, len(records))
	for _, rec := range records {
		var req swap.Request
		if err := json.Unmarshal(rec.Data, &req); err != nil {
			continue
		}
		req.ID = rec.Key
		out = append(out, req)
	}
	return out, nil
}

func (r *RecordSwapRepository) SetStatus(ctx context.Context, id, status string) error {
	return r.store.Merge(ctx, requestPath(id), map[string]any{"status": status})
}

var _ SwapRepository = (*RecordSwapRepository)(nil)
