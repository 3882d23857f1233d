package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"
	"weekendly.app/config"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// geminiTextGenerator is the real TextGenerator backed by the Gemini API
type geminiTextGenerator struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiTextGenerator creates a Gemini-backed text generator
func NewGeminiTextGenerator(ctx context.Context, cfg *config.GeminiConfig) (TextGenerator, error) {
	if cfg.APIKey == "" {
		return nil, errors.NewConfigurationError("GEMINI_API_KEY is not set", nil)
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, errors.NewExternalAPIError("create Gemini client", err)
	}

	return &geminiTextGenerator{
		client: client,
		model:  client.GenerativeModel(cfg.Model),
	}, nil
}

func (g *geminiTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", errors.NewExternalAPIError("generate content", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.NewExternalAPIError("no content generated", nil)
	}

	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.NewExternalAPIError("generated content is not text", nil)
	}

	return string(text), nil
}

func (g *geminiTextGenerator) Close() error {
	return g.client.Close()
}

// GeminiSuggestionProvider asks the generative model for activity suggestions
// with a structured-output instruction. Malformed upstream text degrades to
// line-based parsing; only transport-level failure surfaces as an error.
type GeminiSuggestionProvider struct {
	textGen TextGenerator
}

// NewGeminiSuggestionProvider creates a provider over the given text generator
func NewGeminiSuggestionProvider(textGen TextGenerator) *GeminiSuggestionProvider {
	return &GeminiSuggestionProvider{textGen: textGen}
}

// GetSuggestions generates up to req.Limit suggestions for the context
func (p *GeminiSuggestionProvider) GetSuggestions(ctx context.Context, req SuggestionContext) ([]models.ActivitySuggestion, error) {
	text, err := p.textGen.GenerateContent(ctx, buildSuggestionPrompt(req))
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, errors.NewExternalAPIError("empty response from generative model", nil)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 4
	}
	return parseSuggestionResponse(text, limit), nil
}

func buildSuggestionPrompt(req SuggestionContext) string {
	weatherInfo := "Weather: Unknown"
	if req.Weather != nil {
		weatherInfo = fmt.Sprintf("Weather: %s, Temperature: %.0f°C", req.Weather.Condition, req.Weather.Temperature)
	}
	location := req.Location
	if location == "" {
		location = "Unknown"
	}
	timeOfDay := req.TimeOfDay
	if timeOfDay == 0 {
		timeOfDay = time.Now().Hour()
	}

	return fmt.Sprintf(`You are a weekend activity planner AI. Generate exactly 4 personalized activity suggestions based on the following context:

User Mood: %s
%s
Location: %s
Time of Day: %d:00

Requirements:
1. Each suggestion must be realistic and achievable
2. Consider the weather conditions and time
3. Match the user's mood preference (%s)
4. Include a mix of indoor/outdoor activities as appropriate
5. Provide specific time suggestions

Please respond in this exact JSON format:
[
  {
    "title": "Activity name",
    "category": "fun|fitness|food|social|relax",
    "mood": "energetic|happy|calm",
    "time": "HH:MM",
    "weatherDependent": true/false
  }
]

Make each suggestion unique and tailored to the context provided. Focus on weekend-appropriate activities.`,
		req.Mood, weatherInfo, location, timeOfDay, req.Mood)
}

// rawSuggestion is the loosely-typed shape expected in the model output
type rawSuggestion struct {
	Title            string `json:"title"`
	Category         string `json:"category"`
	Mood             string `json:"mood"`
	Time             string `json:"time"`
	WeatherDependent *bool  `json:"weatherDependent"`
}

var jsonArrayRegex = regexp.MustCompile(`\[[\s\S]*\]`)
var listPrefixRegex = regexp.MustCompile(`^\d+\.\s*`)

// parseSuggestionResponse extracts suggestions from the model output. It
// first looks for a well-formed JSON array substring; failing that it treats
// each non-blank line as a suggestion title with synthesized defaults.
func parseSuggestionResponse(text string, limit int) []models.ActivitySuggestion {
	if match := jsonArrayRegex.FindString(text); match != "" {
		var raw []rawSuggestion
		if err := json.Unmarshal([]byte(match), &raw); err == nil {
			suggestions := make([]models.ActivitySuggestion, 0, limit)
			for i, r := range raw {
				if i >= limit {
					break
				}
				suggestions = append(suggestions, normalizeSuggestion(r, i))
			}
			if len(suggestions) > 0 {
				return suggestions
			}
		}
	}

	return parseSuggestionLines(text, limit)
}

func normalizeSuggestion(r rawSuggestion, index int) models.ActivitySuggestion {
	title := strings.TrimSpace(r.Title)
	if title == "" {
		title = fmt.Sprintf("Activity %d", index+1)
	}
	category := models.ActivityCategory(r.Category)
	if !category.Valid() {
		category = models.CategoryFun
	}
	mood := models.ActivityMood(r.Mood)
	if !mood.Valid() {
		mood = models.MoodHappy
	}
	clock := r.Time
	if !models.IsValidClockTime(clock) {
		clock = "10:00"
	}
	// weatherDependent defaults to true when the model omits it
	weatherDependent := r.WeatherDependent == nil || *r.WeatherDependent

	return models.ActivitySuggestion{
		ID:               "ai-suggestion-" + uuid.NewString(),
		Title:            title,
		Category:         category,
		Mood:             mood,
		Time:             clock,
		WeatherDependent: weatherDependent,
	}
}

func parseSuggestionLines(text string, limit int) []models.ActivitySuggestion {
	suggestions := make([]models.ActivitySuggestion, 0, limit)
	for _, line := range strings.Split(text, "\n") {
		if len(suggestions) >= limit {
			break
		}
		title := strings.TrimSpace(listPrefixRegex.ReplaceAllString(strings.TrimSpace(line), ""))
		if title == "" {
			continue
		}
		suggestions = append(suggestions, models.ActivitySuggestion{
			ID:               "ai-suggestion-" + uuid.NewString(),
			Title:            title,
			Category:         models.CategoryFun,
			Mood:             models.MoodHappy,
			Time:             fmt.Sprintf("%02d:00", 10+len(suggestions)*2),
			WeatherDependent: true,
		})
	}

	if len(suggestions) == 0 {
		suggestions = append(suggestions, models.ActivitySuggestion{
			ID:               "ai-suggestion-" + uuid.NewString(),
			Title:            "Explore something new today!",
			Category:         models.CategoryFun,
			Mood:             models.MoodHappy,
			Time:             "10:00",
			WeatherDependent: false,
		})
	}
	return suggestions
}
