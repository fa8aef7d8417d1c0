package memory

import (
	"context"
	"errors"
	"testing"

	"skill-swap/internal/recordstore"
)

func TestGet_NotFound(t *testing.T) {
	s := NewStore()
	var out map[string]any
	if err := s.Get(context.Background(), "users/missing", &out); !errors.Is(err, recordstore.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSetAndGet(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Set(ctx, "users/u1", map[string]any{"name": "Alice"}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out map[string]any
	if err := s.Get(ctx, "users/u1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out["name"] != "Alice" {
		t.Fatalf("unexpected doc: %v", out)
	}
}

func TestMerge_TouchesOnlyGivenFields(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Set(ctx, "requests/r1", map[string]any{"status": "pending", "message": "hi"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Merge(ctx, "requests/r1", map[string]any{"status": "accepted"}); err != nil {
		t.Fatalf("merge: %v", err)
	}

	var out map[string]any
	if err := s.Get(ctx, "requests/r1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out["status"] != "accepted" || out["message"] != "hi" {
		t.Fatalf("merge clobbered fields: %v", out)
	}
}

func TestMerge_CreatesAbsentDocument(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	if err := s.Merge(ctx, "users/u1", map[string]any{"name": "Alice"}); err != nil {
		t.Fatalf("merge: %v", err)
	}
	var out map[string]any
	if err := s.Get(ctx, "users/u1", &out); err != nil {
		t.Fatalf("get: %v", err)
	}
	if out["name"] != "Alice" {
		t.Fatalf("unexpected doc: %v", out)
	}
}

func TestList_InsertionOrderAndPrefixIsolation(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	for _, path := range []string{"users/u2", "users/u1", "requests/r1", "users/u3"} {
		if err := s.Set(ctx, path, map[string]any{"p": path}); err != nil {
			t.Fatalf("set %s: %v", path, err)
		}
	}

	records, err := s.List(ctx, "users")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 users, got %d", len(records))
	}
	want := []string{"u2", "u1", "u3"}
	for i, rec := range records {
		if rec.Key != want[i] {
			t.Fatalf("expected order %v, got %s at %d", want, rec.Key, i)
		}
	}
}

func TestPush_GeneratesDistinctKeys(t *testing.T) {
	s := NewStore()
	ctx := context.Background()

	k1, err := s.Push(ctx, "requests", map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	k2, err := s.Push(ctx, "requests", map[string]any{"n": 2})
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if k1 == "" || k1 == k2 {
		t.Fatalf("expected distinct keys, got %q and %q", k1, k2)
	}

	records, err := s.List(ctx, "requests")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 2 || records[0].Key != k1 || records[1].Key != k2 {
		t.Fatalf("push order lost: %v", records)
	}
}
