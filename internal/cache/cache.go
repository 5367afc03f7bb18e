// file: internal/cache/cache.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7a8b-9c0d-1e2f3a4b5c6d

package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a generic TTL cache with an optional size bound, safe for concurrent use.
type Cache[K comparable, V any] struct {
	mu         sync.RWMutex
	items      map[K]entry[V]
	defaultTTL time.Duration
	maxEntries int
	now        func() time.Time
}

// New creates a cache with the given default TTL. maxEntries <= 0 means unbounded.
func New[K comparable, V any](defaultTTL time.Duration, maxEntries int) *Cache[K, V] {
	return &Cache[K, V]{
		items:      make(map[K]entry[V]),
		defaultTTL: defaultTTL,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

// Get retrieves a value if it exists and hasn't expired.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	e, ok := c.items[key]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores a value with the default TTL.
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores a value with a specific TTL, evicting the entry closest to
// expiry when the cache is full.
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	now := c.now()
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists && c.maxEntries > 0 && len(c.items) >= c.maxEntries {
		c.evictLocked(now)
	}
	c.items[key] = entry[V]{value: value, expiresAt: now.Add(ttl)}
}

func (c *Cache[K, V]) evictLocked(now time.Time) {
	var (
		victim   K
		earliest time.Time
		found    bool
	)
	for k, e := range c.items {
		if now.After(e.expiresAt) {
			delete(c.items, k)
			continue
		}
		if !found || e.expiresAt.Before(earliest) {
			victim, earliest, found = k, e.expiresAt, true
		}
	}
	if found && len(c.items) >= c.maxEntries {
		delete(c.items, victim)
	}
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Invalidate removes a single key.
func (c *Cache[K, V]) Invalidate(key K) {
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

// InvalidateAll removes all entries.
func (c *Cache[K, V]) InvalidateAll() {
	c.mu.Lock()
	c.items = make(map[K]entry[V])
	c.mu.Unlock()
}
