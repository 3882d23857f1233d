package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanMetrics_GetStats(t *testing.T) {
	m := NewPlanMetrics()

	m.RecordMutation("add")
	m.RecordMutation("add")
	m.RecordMutation("delete")
	m.SetActivityCount(2)

	stats := m.GetStats()
	assert.Equal(t, int64(3), stats["total"])

	byOperation, ok := stats["by_operation"].(map[string]int64)
	require.True(t, ok)
	assert.Equal(t, int64(2), byOperation["add"])
	assert.Equal(t, int64(1), byOperation["delete"])
}

func TestSuggestionMetrics_GetStats(t *testing.T) {
	m := NewSuggestionMetrics()

	m.RecordBatch("ai")
	m.RecordBatch("curated")
	m.RecordBatch("curated")

	stats := m.GetStats()
	bySource, ok := stats["by_source"].(map[string]int64)
	require.True(t, ok)
	assert.Equal(t, int64(1), bySource["ai"])
	assert.Equal(t, int64(2), bySource["curated"])
}

func TestCacheMetrics_HitRatio(t *testing.T) {
	m := NewCacheMetrics("test-cache")

	m.RecordHit()
	m.RecordHit()
	m.RecordHit()
	m.RecordMiss()
	m.RecordLatency("get", 0.001)

	stats := m.GetStats()
	assert.Equal(t, "test-cache", stats.CacheType)
	assert.Equal(t, int64(3), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(4), stats.Total)
	assert.InDelta(t, 0.75, stats.HitRatio, 0.0001)
}

func TestCacheMetrics_EmptyStats(t *testing.T) {
	m := NewCacheMetrics("empty")

	stats := m.GetStats()
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.HitRatio)
}

func TestWeatherMetrics_RecordRequest(t *testing.T) {
	m := NewWeatherMetrics()

	// Prometheus counters back these; recording must not panic across outcomes
	m.RecordRequest("success")
	m.RecordRequest("cached")
	m.RecordRequest("error")
}
