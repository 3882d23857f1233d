package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metricsCollector struct {
	PlanMutations     *prometheus.CounterVec
	Suggestions       *prometheus.CounterVec
	WeatherRequests   *prometheus.CounterVec
	CacheHits         *prometheus.CounterVec
	CacheMisses       *prometheus.CounterVec
	CacheLatency      *prometheus.HistogramVec
	ActivitiesPlanned prometheus.Gauge
}

var (
	globalCollector *metricsCollector
	collectorOnce   sync.Once
)

func getCollector() *metricsCollector {
	collectorOnce.Do(func() {
		globalCollector = &metricsCollector{
			PlanMutations: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weekendly_plan_mutations_total",
					Help: "The total number of plan mutations by operation",
				},
				[]string{"operation"},
			),
			Suggestions: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weekendly_suggestions_total",
					Help: "The total number of suggestion batches served by source",
				},
				[]string{"source"},
			),
			WeatherRequests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weekendly_weather_requests_total",
					Help: "The total number of weather snapshot requests by outcome",
				},
				[]string{"outcome"},
			),
			CacheHits: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weekendly_cache_hits_total",
					Help: "The total number of cache hits",
				},
				[]string{"cache_type"},
			),
			CacheMisses: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "weekendly_cache_misses_total",
					Help: "The total number of cache misses",
				},
				[]string{"cache_type"},
			),
			CacheLatency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "weekendly_cache_duration_seconds",
					Help:    "Cache operation duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"cache_type", "operation"},
			),
			ActivitiesPlanned: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "weekendly_activities_planned",
					Help: "The current number of activities across both days",
				},
			),
		}
	})
	return globalCollector
}

// PlanMetrics counts plan mutations by operation
type PlanMetrics struct {
	mu        sync.RWMutex
	mutations map[string]int64
	collector *metricsCollector
}

// NewPlanMetrics creates a plan mutation recorder
func NewPlanMetrics() *PlanMetrics {
	return &PlanMetrics{
		mutations: make(map[string]int64),
		collector: getCollector(),
	}
}

// RecordMutation counts one applied plan mutation
func (m *PlanMetrics) RecordMutation(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.mutations[operation]++
	m.collector.PlanMutations.WithLabelValues(operation).Inc()
}

// SetActivityCount updates the planned-activities gauge
func (m *PlanMetrics) SetActivityCount(count int) {
	m.collector.ActivitiesPlanned.Set(float64(count))
}

// GetStats returns a snapshot of mutation counts
func (m *PlanMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var total int64
	byOperation := make(map[string]int64, len(m.mutations))
	for op, count := range m.mutations {
		byOperation[op] = count
		total += count
	}

	return map[string]interface{}{
		"total":        total,
		"by_operation": byOperation,
	}
}

// SuggestionMetrics counts served suggestion batches by source
type SuggestionMetrics struct {
	mu        sync.RWMutex
	bySource  map[string]int64
	collector *metricsCollector
}

// NewSuggestionMetrics creates a suggestion source recorder
func NewSuggestionMetrics() *SuggestionMetrics {
	return &SuggestionMetrics{
		bySource:  make(map[string]int64),
		collector: getCollector(),
	}
}

// RecordBatch counts one served suggestion batch
func (m *SuggestionMetrics) RecordBatch(source string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bySource[source]++
	m.collector.Suggestions.WithLabelValues(source).Inc()
}

// GetStats returns a snapshot of source counts
func (m *SuggestionMetrics) GetStats() map[string]interface{} {
	m.mu.RLock()
	defer m.mu.RUnlock()

	bySource := make(map[string]int64, len(m.bySource))
	for source, count := range m.bySource {
		bySource[source] = count
	}
	return map[string]interface{}{
		"by_source": bySource,
	}
}

// WeatherMetrics counts weather snapshot requests by outcome
type WeatherMetrics struct {
	collector *metricsCollector
}

// NewWeatherMetrics creates a weather request recorder
func NewWeatherMetrics() *WeatherMetrics {
	return &WeatherMetrics{collector: getCollector()}
}

// RecordRequest counts one weather snapshot request
func (m *WeatherMetrics) RecordRequest(outcome string) {
	m.collector.WeatherRequests.WithLabelValues(outcome).Inc()
}

// CacheStats is a point-in-time view of cache effectiveness
type CacheStats struct {
	CacheType string  `json:"cache_type"`
	Hits      int64   `json:"hits"`
	Misses    int64   `json:"misses"`
	Total     int64   `json:"total"`
	HitRatio  float64 `json:"hit_ratio"`
}

// CacheMetrics tracks hit/miss counts and operation latency for one cache
type CacheMetrics struct {
	cacheType string
	hits      int64
	misses    int64
	total     int64
	collector *metricsCollector
	mu        sync.RWMutex
}

// NewCacheMetrics creates a recorder for the named cache
func NewCacheMetrics(cacheType string) *CacheMetrics {
	return &CacheMetrics{
		cacheType: cacheType,
		collector: getCollector(),
	}
}

func (m *CacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.hits++
	m.total++
	m.collector.CacheHits.WithLabelValues(m.cacheType).Inc()
}

func (m *CacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.misses++
	m.total++
	m.collector.CacheMisses.WithLabelValues(m.cacheType).Inc()
}

func (m *CacheMetrics) RecordLatency(operation string, seconds float64) {
	m.collector.CacheLatency.WithLabelValues(m.cacheType, operation).Observe(seconds)
}

// GetStats returns the current hit/miss snapshot
func (m *CacheMetrics) GetStats() CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var hitRatio float64
	if m.total > 0 {
		hitRatio = float64(m.hits) / float64(m.total)
	}
	return CacheStats{
		CacheType: m.cacheType,
		Hits:      m.hits,
		Misses:    m.misses,
		Total:     m.total,
		HitRatio:  hitRatio,
	}
}
