package providers

import (
	"context"
	"log/slog"

	"weekendly.app/errors"
	"weekendly.app/models"
)

// BaseSuggestionHandler links a suggestion provider into the fallback chain.
// A failing provider hands the request to the next handler; the handler that
// produces the suggestions names itself as the source.
type BaseSuggestionHandler struct {
	next         SuggestionChain
	provider     SuggestionProvider
	providerName string
}

// NewBaseSuggestionHandler wraps a provider as a chain handler
func NewBaseSuggestionHandler(provider SuggestionProvider, providerName string) *BaseSuggestionHandler {
	return &BaseSuggestionHandler{
		provider:     provider,
		providerName: providerName,
	}
}

func (h *BaseSuggestionHandler) Handle(ctx context.Context, req SuggestionContext) ([]models.ActivitySuggestion, string, error) {
	if h.provider != nil {
		suggestions, err := h.provider.GetSuggestions(ctx, req)
		if err == nil {
			return suggestions, h.providerName, nil
		}

		slog.Info("suggestion provider failed", "provider", h.providerName, "mood", req.Mood, "error", err)

		if h.next == nil {
			return nil, "", err
		}
	}

	if h.next != nil {
		return h.next.Handle(ctx, req)
	}

	return nil, "", errors.NewExternalAPIError("all suggestion providers failed", nil)
}

func (h *BaseSuggestionHandler) SetNext(handler SuggestionChain) {
	h.next = handler
}

func (h *BaseSuggestionHandler) GetProviderName() string {
	return h.providerName
}

// SourceAI and SourceCurated name the suggestion chain handlers in responses
const (
	SourceAI      = "ai"
	SourceCurated = "curated"
)

// NewSuggestionChain builds the fallback chain: the generative provider when
// configured, then the curated table which never fails.
func NewSuggestionChain(gemini *GeminiSuggestionProvider) SuggestionChain {
	curated := NewBaseSuggestionHandler(NewCuratedSuggestionProvider(), SourceCurated)
	if gemini == nil {
		return curated
	}

	ai := NewBaseSuggestionHandler(gemini, SourceAI)
	ai.SetNext(curated)
	return ai
}
