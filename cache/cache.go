// Package cache provides a small generic TTL cache keyed by string. It is
// used to memoize per-player lookups (capability probes, identities) so that
// repeated operations against the same player hit the bus only once.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// expired reports whether the entry is past its deadline. A zero deadline
// means the entry never expires.
func (e entry[T]) expired() bool {
	if e.expiresAt.IsZero() {
		return false
	}
	return time.Now().After(e.expiresAt)
}

// Cache is a thread-safe map with per-entry expiry. A ttl of 0 disables
// expiry entirely, which suits one-shot invocations.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	ttl     time.Duration
}

func New[T any](ttl time.Duration) *Cache[T] {
	return &Cache[T]{
		entries: make(map[string]entry[T]),
		ttl:     ttl,
	}
}

// Get returns the cached value for key, or false if absent or expired.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || e.expired() {
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores value under key, stamping it with the cache TTL.
func (c *Cache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiresAt time.Time
	if c.ttl > 0 {
		expiresAt = time.Now().Add(c.ttl)
	}

	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: expiresAt,
	}
}

// Delete removes the entry for key, if any.
func (c *Cache[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
}

// Clear drops every entry.
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry[T])
}

// Len returns the number of stored entries, counting expired ones that have
// not been overwritten yet.
func (c *Cache[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
