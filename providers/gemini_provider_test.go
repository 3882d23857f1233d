package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// MockTextGenerator for testing
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTextGenerator) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestGemini_ParsesJSONArray(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.AnythingOfType("string")).Return(`Here are your suggestions:
[
  {"title": "Sunrise hike", "category": "fitness", "mood": "energetic", "time": "07:30", "weatherDependent": true},
  {"title": "Farmers market brunch", "category": "food", "mood": "happy", "time": "11:00", "weatherDependent": false}
]
Enjoy your weekend!`, nil)

	provider := NewGeminiSuggestionProvider(textGen)
	suggestions, err := provider.GetSuggestions(context.Background(), SuggestionContext{
		Mood:  models.SuggestionMoodAdventurous,
		Limit: 4,
	})
	require.NoError(t, err)
	require.Len(t, suggestions, 2)

	assert.Equal(t, "Sunrise hike", suggestions[0].Title)
	assert.Equal(t, models.CategoryFitness, suggestions[0].Category)
	assert.Equal(t, models.MoodEnergetic, suggestions[0].Mood)
	assert.Equal(t, "07:30", suggestions[0].Time)
	assert.True(t, suggestions[0].WeatherDependent)
	assert.False(t, suggestions[1].WeatherDependent)

	textGen.AssertExpectations(t)
}

func TestGemini_NormalizesInvalidFields(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(
		`[{"title": "  Mystery trip  ", "category": "extreme", "mood": "furious", "time": "25:99"}]`, nil)

	provider := NewGeminiSuggestionProvider(textGen)
	suggestions, err := provider.GetSuggestions(context.Background(), SuggestionContext{Limit: 4})
	require.NoError(t, err)
	require.Len(t, suggestions, 1)

	assert.Equal(t, "Mystery trip", suggestions[0].Title)
	assert.Equal(t, models.CategoryFun, suggestions[0].Category)
	assert.Equal(t, models.MoodHappy, suggestions[0].Mood)
	assert.Equal(t, "10:00", suggestions[0].Time)
	// Omitted weatherDependent defaults to true
	assert.True(t, suggestions[0].WeatherDependent)
}

func TestGemini_TruncatesToLimit(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(
		`[{"title": "A"}, {"title": "B"}, {"title": "C"}]`, nil)

	provider := NewGeminiSuggestionProvider(textGen)
	suggestions, err := provider.GetSuggestions(context.Background(), SuggestionContext{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)
}

func TestGemini_LineFallback(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(`1. Visit the botanical garden
2. Try the new ramen place

3. Evening jazz concert`, nil)

	provider := NewGeminiSuggestionProvider(textGen)
	suggestions, err := provider.GetSuggestions(context.Background(), SuggestionContext{Limit: 4})
	require.NoError(t, err)
	require.Len(t, suggestions, 3)

	assert.Equal(t, "Visit the botanical garden", suggestions[0].Title)
	assert.Equal(t, "10:00", suggestions[0].Time)
	assert.Equal(t, "Try the new ramen place", suggestions[1].Title)
	assert.Equal(t, "12:00", suggestions[1].Time)
	assert.Equal(t, "Evening jazz concert", suggestions[2].Title)
	assert.Equal(t, "14:00", suggestions[2].Time)
}

func TestGemini_EmptyResponseIsError(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return("   \n  ", nil)

	provider := NewGeminiSuggestionProvider(textGen)
	_, err := provider.GetSuggestions(context.Background(), SuggestionContext{Limit: 4})
	require.Error(t, err)
	assert.True(t, errors.IsExternalAPIError(err))
}

func TestGemini_GenerationFailure(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(
		"", errors.NewExternalAPIError("generate content", nil))

	provider := NewGeminiSuggestionProvider(textGen)
	_, err := provider.GetSuggestions(context.Background(), SuggestionContext{Limit: 4})
	require.Error(t, err)
}

func TestBuildSuggestionPrompt(t *testing.T) {
	prompt := buildSuggestionPrompt(SuggestionContext{
		Mood:      models.SuggestionMoodChill,
		Weather:   &models.WeatherSnapshot{Condition: "rain", Temperature: 12},
		Location:  "Berlin",
		TimeOfDay: 14,
	})

	assert.Contains(t, prompt, "User Mood: chill")
	assert.Contains(t, prompt, "Weather: rain, Temperature: 12°C")
	assert.Contains(t, prompt, "Location: Berlin")
	assert.Contains(t, prompt, "Time of Day: 14:00")
}

func TestBuildSuggestionPrompt_Defaults(t *testing.T) {
	prompt := buildSuggestionPrompt(SuggestionContext{Mood: models.SuggestionMoodLazy})

	assert.Contains(t, prompt, "Weather: Unknown")
	assert.Contains(t, prompt, "Location: Unknown")
}

func TestSuggestionChain_AIFirst(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(
		`[{"title": "Kayaking trip", "category": "fitness", "mood": "energetic", "time": "09:00"}]`, nil)

	chain := NewSuggestionChain(NewGeminiSuggestionProvider(textGen))
	suggestions, source, err := chain.Handle(context.Background(), SuggestionContext{
		Mood:  models.SuggestionMoodAdventurous,
		Limit: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceAI, source)
	require.Len(t, suggestions, 1)
	assert.Equal(t, "Kayaking trip", suggestions[0].Title)
}

func TestSuggestionChain_FallsBackToCurated(t *testing.T) {
	textGen := new(MockTextGenerator)
	textGen.On("GenerateContent", mock.Anything, mock.Anything).Return(
		"", errors.NewExternalAPIError("quota exceeded", nil))

	chain := NewSuggestionChain(NewGeminiSuggestionProvider(textGen))
	suggestions, source, err := chain.Handle(context.Background(), SuggestionContext{
		Mood:  models.SuggestionMoodSocial,
		Limit: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceCurated, source)
	assert.Len(t, suggestions, 4)
}

func TestSuggestionChain_CuratedOnlyWithoutGemini(t *testing.T) {
	chain := NewSuggestionChain(nil)
	assert.Equal(t, SourceCurated, chain.GetProviderName())

	suggestions, source, err := chain.Handle(context.Background(), SuggestionContext{
		Mood:  models.SuggestionMoodLazy,
		Limit: 4,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceCurated, source)
	assert.Len(t, suggestions, 4)
}
