// Package cache holds the in-process TTL cache for weather snapshots.
package cache

import (
	"sync"
	"time"

	"weekendly.app/models"
)

// SnapshotCache caches weather snapshots by location key
type SnapshotCache interface {
	Get(key string) (*models.WeatherSnapshot, bool)
	Set(key string, value *models.WeatherSnapshot, ttl time.Duration)
	Delete(key string)
	Clear()
}

type cacheEntry struct {
	snapshot  models.WeatherSnapshot
	expiresAt time.Time
}

// MemorySnapshotCache is a mutex-guarded map with TTL eviction on read plus
// a periodic sweep.
type MemorySnapshotCache struct {
	data   map[string]cacheEntry
	mutex  sync.RWMutex
	ticker *time.Ticker
	stopCh chan struct{}
}

// NewMemorySnapshotCache creates a snapshot cache with a background sweeper
func NewMemorySnapshotCache() *MemorySnapshotCache {
	c := &MemorySnapshotCache{
		data:   make(map[string]cacheEntry),
		ticker: time.NewTicker(5 * time.Minute),
		stopCh: make(chan struct{}),
	}

	go c.cleanup()
	return c
}

func (c *MemorySnapshotCache) Get(key string) (*models.WeatherSnapshot, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	entry, exists := c.data[key]
	if !exists {
		return nil, false
	}
	if time.Now().After(entry.expiresAt) {
		return nil, false
	}

	snapshot := entry.snapshot
	return &snapshot, true
}

func (c *MemorySnapshotCache) Set(key string, value *models.WeatherSnapshot, ttl time.Duration) {
	if value == nil || ttl <= 0 {
		return
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.data[key] = cacheEntry{
		snapshot:  *value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *MemorySnapshotCache) Delete(key string) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	delete(c.data, key)
}

func (c *MemorySnapshotCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.data = make(map[string]cacheEntry)
}

// Stop terminates the background sweeper
func (c *MemorySnapshotCache) Stop() {
	c.ticker.Stop()
	close(c.stopCh)
}

func (c *MemorySnapshotCache) cleanup() {
	for {
		select {
		case <-c.ticker.C:
			c.evictExpired()
		case <-c.stopCh:
			return
		}
	}
}

func (c *MemorySnapshotCache) evictExpired() {
	now := time.Now()

	c.mutex.Lock()
	defer c.mutex.Unlock()

	for key, entry := range c.data {
		if now.After(entry.expiresAt) {
			delete(c.data, key)
		}
	}
}
