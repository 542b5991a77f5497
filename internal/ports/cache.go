package ports

import "context"

// CacheStore persists the content-hash → category-label mapping across
// runs. Entries are only ever added, never deleted, so a full read of the
// run's hits plus one merged write-back of new entries is all the locking
// the pipeline needs (see PutAll).
type CacheStore interface {
	// Get looks up the label cached for a content hash.
	Get(ctx context.Context, contentHash string) (label string, ok bool, err error)

	// PutAll merges this run's new entries into the store in a single
	// serialized write. Existing entries win on conflict.
	PutAll(ctx context.Context, entries map[string]string) error

	// Len reports the number of cached entries.
	Len(ctx context.Context) (int, error)

	Close() error
}
