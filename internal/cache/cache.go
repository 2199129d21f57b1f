// Package cache implements a fixed-capacity LRU key-value cache with O(1)
// reads and writes.
//
// The structure is the classic pairing of a hash index and a doubly-linked
// recency list, with one twist: entries live in a single growable arena and
// every link is an integer slot index rather than a pointer. Two permanent
// sentinel slots bound the list, which keeps empty-list and single-element
// handling out of the hot path. Freed slots are recycled through a free
// list, so a cache that has reached capacity stops allocating.
//
// Cache is not safe for concurrent use; SyncCache wraps it behind a single
// mutex for callers that need that.
package cache

import "errors"

// ErrInvalidCapacity is returned by New and NewSync for a non-positive
// capacity.
var ErrInvalidCapacity = errors.New("cache: capacity must be positive")

// EvictCallback is invoked for every entry that leaves the cache, whether
// by capacity eviction, Remove, RemoveOldest, or Purge.
type EvictCallback[K comparable, V any] func(key K, value V)

// Cache is a fixed-capacity LRU cache. The zero value is not usable;
// construct instances with New.
type Cache[K comparable, V any] struct {
	capacity int
	arena    []node[K, V]
	free     []int
	index    map[K]int // key -> arena slot
	onEvict  EvictCallback[K, V]
}

// New creates a cache holding at most capacity entries. onEvict may be nil.
func New[K comparable, V any](capacity int, onEvict EvictCallback[K, V]) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	c := &Cache[K, V]{
		capacity: capacity,
		arena:    make([]node[K, V], 2, 2+capacity),
		index:    make(map[K]int, capacity),
		onEvict:  onEvict,
	}
	c.arena[headSlot] = node[K, V]{newer: noSlot, older: tailSlot}
	c.arena[tailSlot] = node[K, V]{newer: headSlot, older: noSlot}
	return c, nil
}

// Get returns the value stored under key and marks it most recently used.
// A miss is the normal (zero, false) outcome, not an error.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if slot, ok := c.index[key]; ok {
		c.moveToFront(slot)
		return c.arena[slot].value, true
	}
	var zero V
	return zero, false
}

// Put stores value under key and marks it most recently used. Inserting a
// new key into a full cache evicts the least recently used entry; the
// return value reports whether that happened.
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if slot, ok := c.index[key]; ok {
		c.arena[slot].value = value
		c.moveToFront(slot)
		return false
	}

	slot := c.alloc(key, value)
	c.pushFront(slot)
	c.index[key] = slot

	if len(c.index) > c.capacity {
		c.removeSlot(c.oldestSlot())
		return true
	}
	return false
}

// Peek returns the value stored under key without updating its recency.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	if slot, ok := c.index[key]; ok {
		return c.arena[slot].value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present, without updating its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove deletes key from the cache if present and reports whether it was.
func (c *Cache[K, V]) Remove(key K) bool {
	slot, ok := c.index[key]
	if !ok {
		return false
	}
	c.removeSlot(slot)
	return true
}

// RemoveOldest evicts and returns the least recently used entry.
func (c *Cache[K, V]) RemoveOldest() (K, V, bool) {
	slot := c.oldestSlot()
	if slot == noSlot {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	key := c.arena[slot].key
	value := c.arena[slot].value
	c.removeSlot(slot)
	return key, value, true
}

// GetOldest returns the least recently used entry without removing it or
// updating its recency.
func (c *Cache[K, V]) GetOldest() (K, V, bool) {
	slot := c.oldestSlot()
	if slot == noSlot {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return c.arena[slot].key, c.arena[slot].value, true
}

// Keys returns the cached keys ordered from most to least recently used.
func (c *Cache[K, V]) Keys() []K {
	keys := make([]K, 0, len(c.index))
	for slot := c.arena[headSlot].older; slot != tailSlot; slot = c.arena[slot].older {
		keys = append(keys, c.arena[slot].key)
	}
	return keys
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Purge removes every entry, invoking the eviction callback for each.
func (c *Cache[K, V]) Purge() {
	for slot := c.oldestSlot(); slot != noSlot; slot = c.oldestSlot() {
		c.removeSlot(slot)
	}
}

// removeSlot unlinks an entry, drops its index mapping, fires the eviction
// callback, and reclaims the slot. slot must be a live entry.
func (c *Cache[K, V]) removeSlot(slot int) {
	c.unlink(slot)
	delete(c.index, c.arena[slot].key)
	if c.onEvict != nil {
		c.onEvict(c.arena[slot].key, c.arena[slot].value)
	}
	c.release(slot)
}
