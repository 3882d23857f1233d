package providers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"context"

	"weekendly.app/config"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// OpenWeatherMapProvider fetches current weather from the OpenWeatherMap API
// by city name or coordinates, always in metric units.
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// OpenWeatherMapResponse mirrors the subset of the upstream payload we use
type OpenWeatherMapResponse struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Name    string `json:"name"`
	Message string `json:"message,omitempty"`
}

// NewOpenWeatherMapProvider creates a provider from weather configuration
func NewOpenWeatherMapProvider(cfg *config.WeatherConfig) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// GetCurrentWeather resolves a snapshot for the query location
func (p *OpenWeatherMapProvider) GetCurrentWeather(ctx context.Context, query WeatherQuery) (*models.WeatherSnapshot, error) {
	if p.apiKey == "" {
		return nil, errors.NewExternalAPIError("weather service is not configured: missing API key", nil)
	}
	if query.City == "" && !query.ByCoordinates() {
		return nil, errors.NewValidationError("either city or lat/lon coordinates are required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.buildURL(query), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("build openweathermap request", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("openweathermap API request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Warn("close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, p.handleHTTPError(resp.StatusCode)
	}

	var apiResponse OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResponse); err != nil {
		return nil, errors.NewExternalAPIError("decode openweathermap response", err)
	}

	return p.convertToSnapshot(&apiResponse), nil
}

func (p *OpenWeatherMapProvider) buildURL(query WeatherQuery) string {
	params := url.Values{}
	if query.ByCoordinates() {
		params.Set("lat", fmt.Sprintf("%g", *query.Lat))
		params.Set("lon", fmt.Sprintf("%g", *query.Lon))
	} else {
		params.Set("q", query.City)
	}
	params.Set("appid", p.apiKey)
	params.Set("units", "metric")
	return fmt.Sprintf("%s?%s", p.baseURL, params.Encode())
}

func (p *OpenWeatherMapProvider) handleHTTPError(statusCode int) error {
	switch statusCode {
	case http.StatusUnauthorized:
		return errors.NewExternalAPIError("openweathermap: invalid API key", nil)
	case http.StatusNotFound:
		return errors.NewNotFoundError("openweathermap: city not found")
	case http.StatusTooManyRequests:
		return errors.NewExternalAPIError("openweathermap: rate limit exceeded", nil)
	case http.StatusServiceUnavailable:
		return errors.NewExternalAPIError("openweathermap: service unavailable", nil)
	default:
		return errors.NewExternalAPIError(fmt.Sprintf("openweathermap: HTTP %d error", statusCode), nil)
	}
}

func (p *OpenWeatherMapProvider) convertToSnapshot(apiResp *OpenWeatherMapResponse) *models.WeatherSnapshot {
	condition := ""
	description := "No description"
	if len(apiResp.Weather) > 0 {
		condition = apiResp.Weather[0].Main
		description = apiResp.Weather[0].Description
	}

	return &models.WeatherSnapshot{
		Temperature: math.Round(apiResp.Main.Temp),
		Condition:   strings.ToLower(condition),
		Icon:        IconForCondition(condition),
		Description: description,
		City:        apiResp.Name,
	}
}
