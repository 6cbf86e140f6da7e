package cache

import (
	"sync"

	"signcraft/internal/domain"
)

type PageKey struct {
	Page     int
	PageSize int
}

type Entry struct {
	Orders []domain.Order
	Total  int
}

// PageCache is a bounded cache of already-served unfiltered history
// pages. It is a pure optimization: a zero or negative capacity disables
// it entirely and every lookup misses.
//
// Mutating operations on orders must call Invalidate before the next
// read is allowed to hit the cache; readers then refetch transparently.
type PageCache struct {
	mu       sync.RWMutex
	capacity int
	entries  map[PageKey]Entry
	order    []PageKey
}

func NewPageCache(capacity int) *PageCache {
	return &PageCache{
		capacity: capacity,
		entries:  make(map[PageKey]Entry),
	}
}

func (c *PageCache) Get(key PageKey) (Entry, bool) {
	if c.capacity <= 0 {
		return Entry{}, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	return entry, ok
}

func (c *PageCache) Put(key PageKey, entry Entry) {
	if c.capacity <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = entry
}

// Invalidate drops every cached page. Called whenever any order is
// created, changes status, or is deleted.
func (c *PageCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[PageKey]Entry)
	c.order = nil
}

func (c *PageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
