// Copyright (c) 2026 tjt263 All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diglet

import (
	"sync"
	"time"
)

// Cache defines an interface for caching query outcomes within a run.
// Implement this interface to provide a custom backend via the
// [WithCache] option.
//
// Caching is disabled by default: with a cache enabled, repeated input
// domains reuse the cached outcome and skip the resolver pool entirely,
// which changes the rotation sequence.
type Cache interface {
	// Get retrieves a cached outcome by key. Returns the outcome and
	// true if found and not expired.
	Get(key string) (Outcome, bool)

	// Set stores an outcome in the cache.
	Set(key string, val Outcome)

	// Flush removes all entries from the cache.
	Flush()
}

// cacheEntry holds a cached outcome with its expiration time.
type cacheEntry struct {
	outcome   Outcome
	expiresAt time.Time
}

// memoryCache is an in-memory [Cache] with TTL support, suitable for
// deduplicating repeated (domain, type) pairs within one run.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

// NewMemoryCache creates an in-memory cache whose entries expire after
// the given TTL.
func NewMemoryCache(ttl time.Duration) Cache {
	return &memoryCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
	}
}

// Get retrieves a cached outcome by key. Expired entries are removed
// lazily.
func (c *memoryCache) Get(key string) (Outcome, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return Outcome{}, false
	}

	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		// The entry may have been replaced since we dropped the read
		// lock; only delete the one we saw expire.
		if current, exists := c.entries[key]; exists && current.expiresAt.Equal(entry.expiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return Outcome{}, false
	}

	return entry.outcome, true
}

// Set stores an outcome in the cache with the configured TTL.
func (c *memoryCache) Set(key string, val Outcome) {
	c.mu.Lock()
	c.entries[key] = cacheEntry{
		outcome:   val,
		expiresAt: time.Now().Add(c.ttl),
	}
	c.mu.Unlock()
}

// Flush removes all entries from the cache.
func (c *memoryCache) Flush() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry)
	c.mu.Unlock()
}
