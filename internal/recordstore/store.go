package recordstore

import (
	"context"
	"encoding/json"
	"errors"
)

var ErrNotFound = errors.New("record not found")

// Record is one document under a subtree prefix; Key is the path segment
// after the prefix.
type Record struct {
	Key  string
	Data json.RawMessage
}

// Store is a path-keyed JSON document store: point reads, full-subtree
// reads, partial-field merges, and append-with-generated-key inserts.
// Writes are last-write-wins; there is no versioning.
type Store interface {
	// Get decodes the document at path into out, or returns ErrNotFound.
	Get(ctx context.Context, path string, out any) error

	// List returns every document directly under prefix, in insertion order.
	List(ctx context.Context, prefix string) ([]Record, error)

	// Set replaces the document at path, creating it if absent.
	Set(ctx context.Context, path string, value any) error

	// Merge updates only the given top-level fields of the document at
	// path, creating the document if absent.
	Merge(ctx context.Context, path string, fields map[string]any) error

	// Push appends value under prefix with a generated key and returns it.
	Push(ctx context.Context, prefix string, value any) (string, error)
}
