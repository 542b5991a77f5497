package sorter

import (
	"context"
	"errors"
	"log/slog"
	"testing"
)

// fakeStore is an in-memory CacheStore recording PutAll calls.
type fakeStore struct {
	entries map[string]string
	getErr  error
	putAlls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]string)}
}

func (s *fakeStore) Get(_ context.Context, hash string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	label, ok := s.entries[hash]
	return label, ok, nil
}

func (s *fakeStore) PutAll(_ context.Context, entries map[string]string) error {
	s.putAlls++
	for h, l := range entries {
		if _, ok := s.entries[h]; !ok {
			s.entries[h] = l
		}
	}
	return nil
}

func (s *fakeStore) Len(_ context.Context) (int, error) { return len(s.entries), nil }
func (s *fakeStore) Close() error                       { return nil }

func TestRunCache_ReadsThroughToStore(t *testing.T) {
	store := newFakeStore()
	store.entries["abc"] = "Invoices"
	rc := newRunCache(store, slog.Default())

	label, ok := rc.Get(context.Background(), "abc")
	if !ok || label != "Invoices" {
		t.Errorf("expected store hit, got %q ok=%v", label, ok)
	}
	if _, ok := rc.Get(context.Background(), "missing"); ok {
		t.Error("expected miss for unknown hash")
	}
}

func TestRunCache_AdditionsVisibleBeforeFlush(t *testing.T) {
	store := newFakeStore()
	rc := newRunCache(store, slog.Default())

	rc.Add("abc", "Receipts")

	label, ok := rc.Get(context.Background(), "abc")
	if !ok || label != "Receipts" {
		t.Errorf("expected run-local hit, got %q ok=%v", label, ok)
	}
	if store.putAlls != 0 {
		t.Errorf("Get must not write to the store, putAlls=%d", store.putAlls)
	}
}

func TestRunCache_FlushWritesOnce(t *testing.T) {
	store := newFakeStore()
	rc := newRunCache(store, slog.Default())
	rc.Add("h1", "A")
	rc.Add("h2", "B")

	if err := rc.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if store.putAlls != 1 {
		t.Errorf("expected one PutAll, got %d", store.putAlls)
	}
	if len(store.entries) != 2 {
		t.Errorf("expected 2 entries flushed, got %d", len(store.entries))
	}

	// A second flush with nothing new does not touch the store.
	if err := rc.Flush(context.Background()); err != nil {
		t.Fatalf("second Flush: %v", err)
	}
	if store.putAlls != 1 {
		t.Errorf("empty flush must not write, got %d", store.putAlls)
	}
}

func TestRunCache_StoreReadFailureIsMiss(t *testing.T) {
	store := newFakeStore()
	store.getErr = errors.New("connection reset")
	rc := newRunCache(store, slog.Default())

	if _, ok := rc.Get(context.Background(), "abc"); ok {
		t.Error("store failure must read as a miss")
	}
}

func TestRunCache_NilStore(t *testing.T) {
	rc := newRunCache(nil, slog.Default())

	rc.Add("abc", "Invoices")
	if _, ok := rc.Get(context.Background(), "abc"); ok {
		t.Error("nil store disables caching entirely")
	}
	if err := rc.Flush(context.Background()); err != nil {
		t.Errorf("Flush with nil store: %v", err)
	}
}

func TestRunCache_EmptyHashNeverCached(t *testing.T) {
	store := newFakeStore()
	rc := newRunCache(store, slog.Default())

	rc.Add("", "Invoices")
	if err := rc.Flush(context.Background()); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if store.putAlls != 0 {
		t.Errorf("hashless entries must not be written, putAlls=%d", store.putAlls)
	}
}
