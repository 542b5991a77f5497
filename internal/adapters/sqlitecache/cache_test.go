package sqlitecache

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_PutAllAndGet(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	err := store.PutAll(ctx, map[string]string{
		"h1": "Invoices",
		"h2": "Receipts",
	})
	if err != nil {
		t.Fatalf("PutAll: %v", err)
	}

	label, ok, err := store.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok || label != "Invoices" {
		t.Errorf("expected Invoices, got %q ok=%v", label, ok)
	}

	if _, ok, err := store.Get(ctx, "missing"); err != nil || ok {
		t.Errorf("expected a clean miss, got ok=%v err=%v", ok, err)
	}
}

func TestStore_ExistingEntriesWin(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutAll(ctx, map[string]string{"h1": "Invoices"}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}
	if err := store.PutAll(ctx, map[string]string{"h1": "Receipts"}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}

	label, _, err := store.Get(ctx, "h1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if label != "Invoices" {
		t.Errorf("earlier classification must win, got %q", label)
	}
}

func TestStore_Len(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if n, err := store.Len(ctx); err != nil || n != 0 {
		t.Fatalf("expected empty store, got n=%d err=%v", n, err)
	}

	if err := store.PutAll(ctx, map[string]string{"h1": "A", "h2": "B"}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}
	if n, err := store.Len(ctx); err != nil || n != 2 {
		t.Errorf("expected 2 entries, got n=%d err=%v", n, err)
	}
}

func TestStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := store.PutAll(ctx, map[string]string{"h1": "Invoices"}); err != nil {
		t.Fatalf("PutAll: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	label, ok, err := store.Get(ctx, "h1")
	if err != nil || !ok || label != "Invoices" {
		t.Errorf("entry must survive reopen, got %q ok=%v err=%v", label, ok, err)
	}
}
