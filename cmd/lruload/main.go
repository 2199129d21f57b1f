// Command lruload runs a seeded workload against an instrumented cache and
// reports the resulting hit rate and metric values. It is the demo and
// smoke-test harness for the module; there is no network surface.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"lrucache/internal/config"
	"lrucache/internal/logger"
	"lrucache/internal/metrics"
)

func main() {
	cfgPath := flag.String("config", "", "Config path")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("Config Error: %v", err)
	}

	if err := logger.Init(cfg.LogDir, cfg.LogLevel); err != nil {
		log.Fatal(err)
	}
	defer logger.Shutdown()

	reg := prometheus.NewRegistry()
	store, err := metrics.NewObserved[string, string](cfg.CacheCapacity, cfg.MetricsNamespace, reg)
	if err != nil {
		logger.Error("Cache Error: %v", err)
		os.Exit(1)
	}

	logger.Info("Cache ready: capacity=%d keyspace=%d ops=%d",
		cfg.CacheCapacity, cfg.WorkloadKeys, cfg.WorkloadOps)

	rng := rand.New(rand.NewSource(cfg.WorkloadSeed))
	zipf := rand.NewZipf(rng, 1.2, 1, uint64(cfg.WorkloadKeys-1))

	hits := 0
	for i := 0; i < cfg.WorkloadOps; i++ {
		key := fmt.Sprintf("key%d", zipf.Uint64())
		if _, ok := store.Get(key); ok {
			hits++
			continue
		}
		store.Put(key, fmt.Sprintf("value%d", i))
	}

	logger.Info("Workload done: %d/%d hits (%.1f%%), %d entries resident",
		hits, cfg.WorkloadOps, 100*float64(hits)/float64(cfg.WorkloadOps), store.Len())

	families, err := reg.Gather()
	if err != nil {
		logger.Error("Gather Error: %v", err)
		os.Exit(1)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				logger.Info("%s = %.0f", mf.GetName(), m.GetCounter().GetValue())
			case m.GetGauge() != nil:
				logger.Info("%s = %.0f", mf.GetName(), m.GetGauge().GetValue())
			}
		}
	}
}
