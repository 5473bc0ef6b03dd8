// ABOUTME: In-memory cache implementation using patrickmn/go-cache
// ABOUTME: Thread-safe cache with TTL support and automatic cleanup

package memory

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// ErrCacheMiss is returned when a key is not found in the cache
var ErrCacheMiss = errors.New("cache: key not found")

// MemoryCache implements the Cache interface using go-cache
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance.
// Expired entries are purged at twice the default expiration interval.
func NewMemoryCache(defaultExpiration time.Duration) *MemoryCache {
	cleanupInterval := 2 * defaultExpiration
	if cleanupInterval <= 0 {
		cleanupInterval = 10 * time.Minute
	}
	return &MemoryCache{
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	value, ok := c.cache.Get(key)
	if !ok {
		return nil, ErrCacheMiss
	}

	data, ok := value.([]byte)
	if !ok {
		return nil, ErrCacheMiss
	}

	// Return a copy so callers cannot mutate the cached value
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Set stores a value in the cache with the given TTL.
// A zero TTL stores the value without expiration.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	stored := make([]byte, len(value))
	copy(stored, value)

	if ttl == 0 {
		c.cache.Set(key, stored, gocache.NoExpiration)
		return nil
	}
	c.cache.Set(key, stored, ttl)
	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	c.cache.Delete(key)
	return nil
}
