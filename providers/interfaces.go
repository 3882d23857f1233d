// Package providers contains the adapters for the external collaborators:
// the OpenWeatherMap weather service and the suggestion sources (curated
// table and Gemini generative API) arranged as a fallback chain.
package providers

import (
	"context"

	"weekendly.app/models"
)

// WeatherQuery identifies a location either by city name or by coordinates
type WeatherQuery struct {
	City string
	Lat  *float64
	Lon  *float64
}

// ByCoordinates reports whether the query carries a coordinate pair
func (q WeatherQuery) ByCoordinates() bool {
	return q.Lat != nil && q.Lon != nil
}

// WeatherProvider fetches a normalized current-weather snapshot
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, query WeatherQuery) (*models.WeatherSnapshot, error)
}

// SuggestionProvider produces activity suggestions for a mood and context
type SuggestionProvider interface {
	GetSuggestions(ctx context.Context, req SuggestionContext) ([]models.ActivitySuggestion, error)
}

// SuggestionContext carries the inputs driving suggestion generation
type SuggestionContext struct {
	Mood      models.SuggestionMood
	Weather   *models.WeatherSnapshot
	Location  string
	TimeOfDay int
	Limit     int
}

// SuggestionChain defines the interface for the Chain of Responsibility over
// suggestion sources
type SuggestionChain interface {
	Handle(ctx context.Context, req SuggestionContext) ([]models.ActivitySuggestion, string, error)
	SetNext(handler SuggestionChain)
	GetProviderName() string
}

// TextGenerator abstracts the generative model client
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Close() error
}
