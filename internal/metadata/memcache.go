package metadata

import (
	"context"
	"sync"
	"time"
)

type memEntry struct {
	value   []byte
	expires time.Time
}

// MemCache is an in-process Store. Entries are dropped lazily on read and by Prune.
type MemCache struct {
	mu      sync.RWMutex
	entries map[string]memEntry
	now     func() time.Time
}

// NewMemCache creates an empty in-memory cache.
func NewMemCache() *MemCache {
	return &MemCache{
		entries: make(map[string]memEntry),
		now:     time.Now,
	}
}

// Get returns the value for key if present and not expired.
func (c *MemCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		return nil, false
	}
	return append([]byte(nil), entry.value...), true
}

// Set stores a copy of value for ttl.
func (c *MemCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memEntry{
		value:   append([]byte(nil), value...),
		expires: c.now().Add(ttl),
	}
	return nil
}

// Prune removes expired entries and returns how many were removed.
func (c *MemCache) Prune(_ context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var n int64
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
			n++
		}
	}
	return n, nil
}
