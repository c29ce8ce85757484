package registry

import "sync"

// Cache is the process-wide memory of which (name, protocol, host, port)
// tuples are known-registered. It is a best-effort local accelerator, not a
// source of truth: the remote registry stays authoritative. Entries live for
// the process lifetime; there is no eviction or expiry.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]struct{}
}

// NewCache creates an empty registration cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[Key]struct{})}
}

// Has reports whether the key is known-registered.
func (c *Cache) Has(key Key) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[key]
	return ok
}

// Mark records the key as registered. Idempotent.
func (c *Cache) Mark(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = struct{}{}
}

// Len returns the number of known-registered tuples.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
