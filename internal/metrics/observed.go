package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"lrucache/internal/cache"
)

// Observed is a concurrency-safe cache that records hit, miss, put, and
// eviction counts plus the resident entry count. The core cache package
// stays free of instrumentation; the coupling lives here.
type Observed[K comparable, V any] struct {
	c *cache.SyncCache[K, V]
	m *CacheMetrics
}

// NewObserved builds a SyncCache of the given capacity with its collectors
// registered on reg.
func NewObserved[K comparable, V any](capacity int, namespace string, reg prometheus.Registerer) (*Observed[K, V], error) {
	m := New(namespace, reg)
	c, err := cache.NewSync[K, V](capacity, func(K, V) { m.Evictions.Inc() })
	if err != nil {
		return nil, err
	}
	return &Observed[K, V]{c: c, m: m}, nil
}

func (o *Observed[K, V]) Get(key K) (V, bool) {
	value, ok := o.c.Get(key)
	if ok {
		o.m.Hits.Inc()
	} else {
		o.m.Misses.Inc()
	}
	return value, ok
}

func (o *Observed[K, V]) Put(key K, value V) (evicted bool) {
	evicted = o.c.Put(key, value)
	o.m.Puts.Inc()
	o.m.Entries.Set(float64(o.c.Len()))
	return evicted
}

func (o *Observed[K, V]) Remove(key K) bool {
	removed := o.c.Remove(key)
	o.m.Entries.Set(float64(o.c.Len()))
	return removed
}

func (o *Observed[K, V]) Purge() {
	o.c.Purge()
	o.m.Entries.Set(0)
}

func (o *Observed[K, V]) Len() int { return o.c.Len() }

func (o *Observed[K, V]) Cap() int { return o.c.Cap() }
