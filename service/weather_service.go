package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"weekendly.app/errors"
	"weekendly.app/metrics"
	"weekendly.app/models"
	"weekendly.app/providers"
)

// SnapshotCache is the cache surface the weather service consults
type SnapshotCache interface {
	Get(key string) (*models.WeatherSnapshot, bool)
	Set(key string, value *models.WeatherSnapshot, ttl time.Duration)
}

// WeatherService resolves current-weather snapshots through the provider,
// caching results per location. Failures surface as typed errors the caller
// renders as "weather unavailable"; nothing here blocks the rest of the app.
type WeatherService struct {
	provider    providers.WeatherProvider
	cache       SnapshotCache
	cacheTTL    time.Duration
	defaultCity string
	metrics     *metrics.WeatherMetrics
}

// NewWeatherService creates a weather service. The cache may be nil to
// disable caching.
func NewWeatherService(provider providers.WeatherProvider, cache SnapshotCache, cacheTTL time.Duration, defaultCity string) *WeatherService {
	return &WeatherService{
		provider:    provider,
		cache:       cache,
		cacheTTL:    cacheTTL,
		defaultCity: defaultCity,
		metrics:     metrics.NewWeatherMetrics(),
	}
}

// GetSnapshot resolves a snapshot for the query location
func (s *WeatherService) GetSnapshot(ctx context.Context, query providers.WeatherQuery) (*models.WeatherSnapshot, error) {
	if query.City == "" && !query.ByCoordinates() {
		return nil, errors.NewValidationError("either city or lat/lon coordinates are required")
	}

	key := cacheKey(query)
	if s.cache != nil {
		if snapshot, found := s.cache.Get(key); found {
			s.metrics.RecordRequest("cached")
			return snapshot, nil
		}
	}

	snapshot, err := s.provider.GetCurrentWeather(ctx, query)
	if err != nil {
		s.metrics.RecordRequest("error")
		slog.Error("Weather provider error", "error", err, "city", query.City)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(key, snapshot, s.cacheTTL)
	}
	s.metrics.RecordRequest("success")
	return snapshot, nil
}

// GetDefaultCityWeather resolves a snapshot for the configured fallback city,
// used when the client has no location of its own.
func (s *WeatherService) GetDefaultCityWeather(ctx context.Context) (*models.WeatherSnapshot, error) {
	return s.GetSnapshot(ctx, providers.WeatherQuery{City: s.defaultCity})
}

func cacheKey(query providers.WeatherQuery) string {
	if query.ByCoordinates() {
		return fmt.Sprintf("weather:coords:%.4f,%.4f", *query.Lat, *query.Lon)
	}
	return "weather:city:" + query.City
}
