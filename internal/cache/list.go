package cache

// Arena slot layout: slot 0 is the head sentinel (most-recent side), slot 1
// is the tail sentinel (least-recent side). Sentinels hold no entry and are
// never freed, so the recency list is never empty and the link operations
// need no nil checks.
const (
	headSlot = 0
	tailSlot = 1
	noSlot   = -1
)

// node is one arena slot. newer points toward the head sentinel, older
// toward the tail sentinel. Links are arena indices, not pointers, so the
// key index can hold the same locators without sharing ownership.
type node[K comparable, V any] struct {
	key   K
	value V
	newer int
	older int
}

// alloc reserves a slot for a new entry, reusing a reclaimed slot when one
// is available and growing the arena otherwise.
func (c *Cache[K, V]) alloc(key K, value V) int {
	if n := len(c.free); n > 0 {
		slot := c.free[n-1]
		c.free = c.free[:n-1]
		c.arena[slot].key = key
		c.arena[slot].value = value
		return slot
	}
	c.arena = append(c.arena, node[K, V]{key: key, value: value, newer: noSlot, older: noSlot})
	return len(c.arena) - 1
}

// release zeroes a slot and puts it on the free list. Zeroing matters for
// pointer-bearing key/value types: a parked slot must not pin them.
func (c *Cache[K, V]) release(slot int) {
	c.arena[slot] = node[K, V]{newer: noSlot, older: noSlot}
	c.free = append(c.free, slot)
}

// pushFront links a detached slot directly after the head sentinel, making
// it the most recently used entry.
func (c *Cache[K, V]) pushFront(slot int) {
	next := c.arena[headSlot].older
	c.arena[slot].newer = headSlot
	c.arena[slot].older = next
	c.arena[next].newer = slot
	c.arena[headSlot].older = slot
}

// unlink detaches a slot by relinking its neighbors to each other. The slot
// must currently be a member of the list.
func (c *Cache[K, V]) unlink(slot int) {
	newer := c.arena[slot].newer
	older := c.arena[slot].older
	c.arena[newer].older = older
	c.arena[older].newer = newer
	c.arena[slot].newer = noSlot
	c.arena[slot].older = noSlot
}

// moveToFront refreshes the recency of an in-list slot.
func (c *Cache[K, V]) moveToFront(slot int) {
	if c.arena[headSlot].older == slot {
		return
	}
	c.unlink(slot)
	c.pushFront(slot)
}

// oldestSlot returns the slot adjacent to the tail sentinel, or noSlot when
// only the sentinels remain.
func (c *Cache[K, V]) oldestSlot() int {
	slot := c.arena[tailSlot].newer
	if slot == headSlot {
		return noSlot
	}
	return slot
}
