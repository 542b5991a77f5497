package sorter

import (
	"context"
	"log/slog"
	"sync"

	"ordina/internal/ports"
)

// runCache layers this run's freshly classified entries over the
// persistent store. Workers read through it; new entries are merged back
// into the store in a single write at the end of the run, which is all
// the serialization the store needs since entries are only ever added.
type runCache struct {
	store ports.CacheStore // nil disables caching entirely
	log   *slog.Logger

	mu    sync.Mutex
	added map[string]string
}

func newRunCache(store ports.CacheStore, log *slog.Logger) *runCache {
	return &runCache{store: store, log: log, added: make(map[string]string)}
}

// Get looks the hash up in this run's additions first, then the store.
// A store read failure is a miss, not a file failure.
func (c *runCache) Get(ctx context.Context, hash string) (string, bool) {
	if hash == "" {
		return "", false
	}
	c.mu.Lock()
	if label, ok := c.added[hash]; ok {
		c.mu.Unlock()
		return label, true
	}
	c.mu.Unlock()

	if c.store == nil {
		return "", false
	}
	label, ok, err := c.store.Get(ctx, hash)
	if err != nil {
		c.log.Warn("cache read failed", "hash", hash, "error", err)
		return "", false
	}
	return label, ok
}

// Add records a content-based classification for write-back. Hashless
// files are never cached.
func (c *runCache) Add(hash, label string) {
	if hash == "" || c.store == nil {
		return
	}
	c.mu.Lock()
	c.added[hash] = label
	c.mu.Unlock()
}

// Flush merges the run's additions into the store in one write.
func (c *runCache) Flush(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	c.mu.Lock()
	entries := c.added
	c.added = make(map[string]string)
	c.mu.Unlock()
	if len(entries) == 0 {
		return nil
	}
	return c.store.PutAll(ctx, entries)
}
