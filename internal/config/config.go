package config

import (
	"encoding/json"
	"os"
)

const ConfigTemplate = `{
  "log_dir": "./logs",
  "log_level": "INFO",
  "metrics_namespace": "lrucache",
  "cache_capacity": 1024,
  "workload_keys": 4096,
  "workload_ops": 100000,
  "workload_seed": 1
}`

const (
	DefaultCacheCapacity = 1024
	DefaultWorkloadKeys  = 4096
	DefaultWorkloadOps   = 100000
)

type Config struct {
	LogDir           string `json:"log_dir"`
	LogLevel         string `json:"log_level"`
	MetricsNamespace string `json:"metrics_namespace"`
	CacheCapacity    int    `json:"cache_capacity"`
	WorkloadKeys     int    `json:"workload_keys"`
	WorkloadOps      int    `json:"workload_ops"`
	WorkloadSeed     int64  `json:"workload_seed"`
}

func Load(path string) (Config, error) {
	cfg := Config{
		LogDir:           "./logs",
		LogLevel:         "INFO",
		MetricsNamespace: "lrucache",
		CacheCapacity:    DefaultCacheCapacity,
		WorkloadKeys:     DefaultWorkloadKeys,
		WorkloadOps:      DefaultWorkloadOps,
		WorkloadSeed:     1,
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return cfg, err
		}
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}
