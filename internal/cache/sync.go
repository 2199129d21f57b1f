package cache

import "sync"

// SyncCache is a Cache behind a single coarse mutex, held for the full
// duration of each call. Every operation is O(1) and allocation-free past
// the initial fill, so one lock is enough; per-bucket locking buys nothing
// here because even Get mutates the recency list.
//
// The eviction callback runs with the lock held and must not call back
// into the cache.
type SyncCache[K comparable, V any] struct {
	mu  sync.Mutex
	lru *Cache[K, V]
}

// NewSync creates a concurrency-safe cache holding at most capacity
// entries. onEvict may be nil.
func NewSync[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*SyncCache[K, V], error) {
	lru, err := New(capacity, onEvict)
	if err != nil {
		return nil, err
	}
	return &SyncCache[K, V]{lru: lru}, nil
}

func (c *SyncCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Get(key)
}

func (c *SyncCache[K, V]) Put(key K, value V) (evicted bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Put(key, value)
}

func (c *SyncCache[K, V]) Peek(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Peek(key)
}

func (c *SyncCache[K, V]) Contains(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Contains(key)
}

func (c *SyncCache[K, V]) Remove(key K) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Remove(key)
}

func (c *SyncCache[K, V]) RemoveOldest() (K, V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.RemoveOldest()
}

func (c *SyncCache[K, V]) Keys() []K {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Keys()
}

func (c *SyncCache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lru.Len()
}

func (c *SyncCache[K, V]) Cap() int {
	return c.lru.Cap()
}

func (c *SyncCache[K, V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lru.Purge()
}
