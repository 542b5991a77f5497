// Package sqlitecache persists the content-hash → category-label cache in
// a local SQLite database. Entries are only ever inserted, so the merge
// semantics of PutAll reduce to INSERT OR IGNORE inside one transaction.
package sqlitecache

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"ordina/internal/ports"
)

// Store implements ports.CacheStore on SQLite.
type Store struct {
	db *sql.DB
}

var _ ports.CacheStore = (*Store)(nil)

// Open creates or opens the cache database at path, configuring WAL mode
// so concurrent runs on the same machine serialize cleanly on write.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS entries (
			content_hash TEXT PRIMARY KEY,
			label        TEXT NOT NULL,
			created_at   INTEGER NOT NULL
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup cache database: %w", err)
	}

	return &Store{db: db}, nil
}

// Get looks up the cached label for a content hash.
func (s *Store) Get(ctx context.Context, contentHash string) (string, bool, error) {
	var label string
	err := s.db.QueryRowContext(ctx,
		"SELECT label FROM entries WHERE content_hash = ?", contentHash).Scan(&label)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return label, true, nil
}

// PutAll merges the run's new entries in a single transaction. Existing
// entries win: a hash classified in an earlier run keeps its label.
func (s *Store) PutAll(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO entries (content_hash, label, created_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for hash, label := range entries {
		if _, err := stmt.ExecContext(ctx, hash, label, now); err != nil {
			return fmt.Errorf("cache write failed for %s: %w", hash, err)
		}
	}
	return tx.Commit()
}

// Len reports the number of cached entries.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("cache count failed: %w", err)
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
