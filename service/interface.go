package service

import (
	"context"

	"weekendly.app/models"
	"weekendly.app/providers"
)

// WeatherServiceInterface defines weather snapshot operations
type WeatherServiceInterface interface {
	GetSnapshot(ctx context.Context, query providers.WeatherQuery) (*models.WeatherSnapshot, error)
	GetDefaultCityWeather(ctx context.Context) (*models.WeatherSnapshot, error)
}

// SuggestionServiceInterface defines suggestion generation operations
type SuggestionServiceInterface interface {
	GetSuggestions(ctx context.Context, req models.SuggestionRequest) (*models.SuggestionResponse, error)
}

// PlanServiceInterface defines the plan store operations the API exposes.
// The planner.Store is the production implementation.
type PlanServiceInterface interface {
	Plan() models.WeekendPlan
	AddActivity(ctx context.Context, activity models.Activity) (models.WeekendPlan, error)
	AddSuggestion(ctx context.Context, suggestion models.ActivitySuggestion, day models.Day) (models.Activity, error)
	UpdateActivity(ctx context.Context, activity models.Activity) (models.WeekendPlan, error)
	DeleteActivity(ctx context.Context, id string, day models.Day) models.WeekendPlan
	ToggleComplete(ctx context.Context, id string, day models.Day) models.WeekendPlan
	ReorderActivities(ctx context.Context, day models.Day, ordered []models.Activity) (models.WeekendPlan, error)
	MoveActivity(ctx context.Context, id string, fromDay, toDay models.Day, newIndex *int) models.WeekendPlan
}
