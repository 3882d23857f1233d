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

// SuggestionService produces activity suggestion batches through the
// provider chain, tagging each response with the source that served it.
type SuggestionService struct {
	chain          providers.SuggestionChain
	maxSuggestions int
	metrics        *metrics.SuggestionMetrics
}

// NewSuggestionService creates a suggestion service over the given chain
func NewSuggestionService(chain providers.SuggestionChain, maxSuggestions int) *SuggestionService {
	if maxSuggestions < 1 {
		maxSuggestions = 4
	}
	return &SuggestionService{
		chain:          chain,
		maxSuggestions: maxSuggestions,
		metrics:        metrics.NewSuggestionMetrics(),
	}
}

// GetSuggestions validates the request and runs the chain. The curated
// fallback means an error here is a transport-level total failure.
func (s *SuggestionService) GetSuggestions(ctx context.Context, req models.SuggestionRequest) (*models.SuggestionResponse, error) {
	if req.Mood == "" {
		return nil, errors.NewValidationError("mood parameter is required")
	}
	if !req.Mood.Valid() {
		return nil, errors.NewValidationError(fmt.Sprintf("unknown mood: %s", req.Mood))
	}

	timeOfDay := 0
	if req.TimeOfDay != nil {
		timeOfDay = *req.TimeOfDay
	}

	suggestions, source, err := s.chain.Handle(ctx, providers.SuggestionContext{
		Mood:      req.Mood,
		Weather:   req.Weather,
		Location:  req.Location,
		TimeOfDay: timeOfDay,
		Limit:     s.maxSuggestions,
	})
	if err != nil {
		slog.Error("Suggestion chain error", "error", err, "mood", req.Mood)
		return nil, err
	}

	if len(suggestions) > s.maxSuggestions {
		suggestions = suggestions[:s.maxSuggestions]
	}

	s.metrics.RecordBatch(source)
	return &models.SuggestionResponse{
		Suggestions: suggestions,
		Source:      source,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}, nil
}

// Metrics exposes the service's counters for the metrics endpoint
func (s *SuggestionService) Metrics() *metrics.SuggestionMetrics {
	return s.metrics
}
