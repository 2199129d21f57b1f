package testing

import (
	"fmt"
	"testing"

	"lrucache/internal/cache"
)

type CacheFactory struct {
	t *testing.T
}

func NewFactory(t *testing.T) *CacheFactory {
	return &CacheFactory{t: t}
}

// Build creates a string cache of the given capacity, failing the test on a
// construction error.
func (f *CacheFactory) Build(capacity int, onEvict cache.EvictCallback[string, string]) *cache.Cache[string, string] {
	c, err := cache.New[string, string](capacity, onEvict)
	if err != nil {
		f.t.Fatalf("Factory failed to build cache: %v", err)
	}
	return c
}

func (f *CacheFactory) BuildSync(capacity int) *cache.SyncCache[string, string] {
	c, err := cache.NewSync[string, string](capacity, nil)
	if err != nil {
		f.t.Fatalf("Factory failed to build sync cache: %v", err)
	}
	return c
}

// Fill inserts n distinct entries and returns their keys in insertion
// order, oldest first.
func (f *CacheFactory) Fill(c *cache.Cache[string, string], n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key%d", i)
		c.Put(keys[i], fmt.Sprintf("value%d", i))
	}
	return keys
}
