// Package cache provides a small in-memory TTL cache. The web server
// uses it to avoid re-fetching ClickUp data for a period that was just
// generated.
package cache

import (
	"sync"
	"time"
)

// Cache is a TTL cache over string keys.
type Cache[V any] struct {
	mu       sync.RWMutex
	items    map[string]*item[V]
	ttl      time.Duration
	stopChan chan struct{}
}

type item[V any] struct {
	value      V
	expiration time.Time
}

// New creates a cache with the given default TTL and starts its cleanup
// goroutine.
func New[V any](ttl time.Duration) *Cache[V] {
	c := &Cache[V]{
		items:    make(map[string]*item[V]),
		ttl:      ttl,
		stopChan: make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get retrieves a value from the cache.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, exists := c.items[key]
	if !exists || time.Now().After(it.expiration) {
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores a value with the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = &item[V]{
		value:      value,
		expiration: time.Now().Add(c.ttl),
	}
}

// Delete removes a key.
func (c *Cache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all values.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]*item[V])
}

// Size returns the number of stored items, expired ones included until
// the next cleanup tick.
func (c *Cache[V]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Stop terminates the cleanup goroutine.
func (c *Cache[V]) Stop() {
	close(c.stopChan)
}

func (c *Cache[V]) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopChan:
			return
		}
	}
}

func (c *Cache[V]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, it := range c.items {
		if now.After(it.expiration) {
			delete(c.items, key)
		}
	}
}
