package providers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weekendly.app/models"
	"weekendly.app/providers/cache"
)

func TestInstrumentedCache_CountsHitsAndMisses(t *testing.T) {
	inner := cache.NewMemorySnapshotCache()
	instrumented := NewInstrumentedSnapshotCache(inner, "memory")
	defer instrumented.Stop()

	_, found := instrumented.Get("missing")
	assert.False(t, found)

	instrumented.Set("k", &models.WeatherSnapshot{City: "London"}, time.Minute)
	got, found := instrumented.Get("k")
	assert.True(t, found)
	assert.Equal(t, "London", got.City)

	stats := instrumented.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
}

func TestInstrumentedCache_DelegatesDeleteAndClear(t *testing.T) {
	inner := cache.NewMemorySnapshotCache()
	instrumented := NewInstrumentedSnapshotCache(inner, "memory")
	defer instrumented.Stop()

	instrumented.Set("a", &models.WeatherSnapshot{City: "A"}, time.Minute)
	instrumented.Delete("a")
	_, found := instrumented.Get("a")
	assert.False(t, found)

	instrumented.Set("b", &models.WeatherSnapshot{City: "B"}, time.Minute)
	instrumented.Clear()
	_, found = instrumented.Get("b")
	assert.False(t, found)
}
