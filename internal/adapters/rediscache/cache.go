// Package rediscache backs the classification cache with redis, for
// deployments where several sorter instances share one cache. SetNX gives
// the same existing-entry-wins merge the sqlite store has.
package rediscache

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"ordina/internal/config"
	"ordina/internal/ports"
)

const keyPrefix = "ordina:cache:"

// Store implements ports.CacheStore on redis.
type Store struct {
	client *redis.Client
}

var _ ports.CacheStore = (*Store)(nil)

// Open connects to redis and verifies the connection.
func Open(ctx context.Context, cfg config.RedisConfig) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return &Store{client: client}, nil
}

// Get looks up the cached label for a content hash.
func (s *Store) Get(ctx context.Context, contentHash string) (string, bool, error) {
	label, err := s.client.Get(ctx, keyPrefix+contentHash).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cache lookup failed: %w", err)
	}
	return label, true, nil
}

// PutAll merges the run's new entries with one pipelined round trip.
// Entries never expire; staleness is an accepted trade-off.
func (s *Store) PutAll(ctx context.Context, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	pipe := s.client.Pipeline()
	for hash, label := range entries {
		pipe.SetNX(ctx, keyPrefix+hash, label, 0)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}

// Len reports the number of cached entries by scanning the key prefix.
func (s *Store) Len(ctx context.Context) (int, error) {
	var (
		cursor uint64
		count  int
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, keyPrefix+"*", 1000).Result()
		if err != nil {
			return 0, fmt.Errorf("cache count failed: %w", err)
		}
		count += len(keys)
		if next == 0 {
			return count, nil
		}
		cursor = next
	}
}

// Close closes the redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
