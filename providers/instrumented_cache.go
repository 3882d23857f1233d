package providers

import (
	"log/slog"
	"time"

	"weekendly.app/metrics"
	"weekendly.app/models"
	"weekendly.app/providers/cache"
)

// InstrumentedSnapshotCache wraps a snapshot cache with hit/miss/latency metrics
type InstrumentedSnapshotCache struct {
	cache   cache.SnapshotCache
	metrics *metrics.CacheMetrics
}

// NewInstrumentedSnapshotCache wraps the cache, reporting under cacheType
func NewInstrumentedSnapshotCache(inner cache.SnapshotCache, cacheType string) *InstrumentedSnapshotCache {
	return &InstrumentedSnapshotCache{
		cache:   inner,
		metrics: metrics.NewCacheMetrics(cacheType),
	}
}

func (c *InstrumentedSnapshotCache) measureLatency(operation string, fn func()) {
	start := time.Now()
	fn()
	c.metrics.RecordLatency(operation, time.Since(start).Seconds())
}

func (c *InstrumentedSnapshotCache) Get(key string) (*models.WeatherSnapshot, bool) {
	var snapshot *models.WeatherSnapshot
	var found bool

	c.measureLatency("get", func() {
		snapshot, found = c.cache.Get(key)
	})

	if found {
		c.metrics.RecordHit()
		slog.Debug("weather cache hit", "key", key)
	} else {
		c.metrics.RecordMiss()
		slog.Debug("weather cache miss", "key", key)
	}

	return snapshot, found
}

func (c *InstrumentedSnapshotCache) Set(key string, value *models.WeatherSnapshot, ttl time.Duration) {
	c.measureLatency("set", func() {
		c.cache.Set(key, value, ttl)
	})
}

func (c *InstrumentedSnapshotCache) Delete(key string) {
	c.cache.Delete(key)
}

func (c *InstrumentedSnapshotCache) Clear() {
	c.cache.Clear()
}

// Stats returns the cache effectiveness snapshot
func (c *InstrumentedSnapshotCache) Stats() metrics.CacheStats {
	return c.metrics.GetStats()
}

// Stop terminates the wrapped cache's background work, if it has any
func (c *InstrumentedSnapshotCache) Stop() {
	if stoppable, ok := c.cache.(interface{ Stop() }); ok {
		stoppable.Stop()
	}
}
