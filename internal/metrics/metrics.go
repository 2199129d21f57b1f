// Package metrics exposes Prometheus instrumentation for the cache.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CacheMetrics groups the per-cache Prometheus collectors.
type CacheMetrics struct {
	Hits      prometheus.Counter
	Misses    prometheus.Counter
	Puts      prometheus.Counter
	Evictions prometheus.Counter
	Entries   prometheus.Gauge
}

// New registers a fresh collector set with reg under the given namespace.
func New(namespace string, reg prometheus.Registerer) *CacheMetrics {
	factory := promauto.With(reg)
	return &CacheMetrics{
		Hits: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Total number of lookups served from the cache",
		}),
		Misses: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Total number of lookups for absent keys",
		}),
		Puts: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_puts_total",
			Help:      "Total number of write operations",
		}),
		Evictions: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_evictions_total",
			Help:      "Total number of entries removed to stay within capacity",
		}),
		Entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Number of entries currently resident",
		}),
	}
}
