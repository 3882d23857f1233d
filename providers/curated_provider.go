package providers

import (
	"context"

	"github.com/google/uuid"
	"weekendly.app/models"
)

type curatedEntry struct {
	title    string
	category models.ActivityCategory
	mood     models.ActivityMood
	time     string
}

// curatedSuggestions is the static table keyed by (suggestion mood, weather
// bucket). Each bucket carries four entries.
var curatedSuggestions = map[models.SuggestionMood]map[models.WeatherBucket][]curatedEntry{
	models.SuggestionMoodLazy: {
		models.BucketSunny: {
			{"Read a book in the garden", models.CategoryRelax, models.MoodCalm, "14:00"},
			{"Watch Netflix series", models.CategoryFun, models.MoodHappy, "20:00"},
			{"Order favorite takeout", models.CategoryFood, models.MoodHappy, "19:00"},
			{"Take a relaxing bath", models.CategoryRelax, models.MoodCalm, "21:00"},
		},
		models.BucketCloudy: {
			{"Binge-watch documentaries", models.CategoryFun, models.MoodCalm, "15:00"},
			{"Cook comfort food", models.CategoryFood, models.MoodHappy, "18:00"},
			{"Indoor yoga session", models.CategoryFitness, models.MoodCalm, "10:00"},
			{"Organize photo albums", models.CategoryRelax, models.MoodCalm, "16:00"},
		},
		models.BucketRainy: {
			{"Make homemade soup", models.CategoryFood, models.MoodHappy, "17:00"},
			{"Read by the window", models.CategoryRelax, models.MoodCalm, "13:00"},
			{"Watch classic movies", models.CategoryFun, models.MoodHappy, "19:30"},
			{"Listen to podcasts", models.CategoryRelax, models.MoodCalm, "11:00"},
		},
	},
	models.SuggestionMoodAdventurous: {
		models.BucketSunny: {
			{"Go hiking", models.CategoryFitness, models.MoodEnergetic, "09:00"},
			{"Outdoor picnic", models.CategoryFood, models.MoodHappy, "12:00"},
			{"Cycling adventure", models.CategoryFitness, models.MoodEnergetic, "08:00"},
			{"Visit local market", models.CategorySocial, models.MoodHappy, "10:30"},
		},
		models.BucketCloudy: {
			{"Explore new neighborhood", models.CategoryFun, models.MoodEnergetic, "14:00"},
			{"Try rock climbing gym", models.CategoryFitness, models.MoodEnergetic, "16:00"},
			{"Visit art gallery", models.CategoryFun, models.MoodHappy, "11:00"},
			{"Food truck hunting", models.CategoryFood, models.MoodHappy, "13:00"},
		},
		models.BucketRainy: {
			{"Indoor escape room", models.CategoryFun, models.MoodEnergetic, "15:00"},
			{"Cooking class", models.CategoryFood, models.MoodHappy, "18:00"},
			{"Museum exploration", models.CategoryFun, models.MoodHappy, "12:00"},
			{"Bowling with friends", models.CategorySocial, models.MoodEnergetic, "19:00"},
		},
	},
	models.SuggestionMoodSocial: {
		models.BucketSunny: {
			{"Outdoor barbecue party", models.CategorySocial, models.MoodHappy, "17:00"},
			{"Beach volleyball", models.CategoryFitness, models.MoodEnergetic, "15:00"},
			{"Park picnic with friends", models.CategorySocial, models.MoodHappy, "12:30"},
			{"Outdoor café meetup", models.CategorySocial, models.MoodHappy, "10:00"},
		},
		models.BucketCloudy: {
			{"Game night at home", models.CategorySocial, models.MoodHappy, "20:00"},
			{"Coffee shop hangout", models.CategorySocial, models.MoodHappy, "14:00"},
			{"Group cooking session", models.CategoryFood, models.MoodHappy, "18:30"},
			{"Visit local brewery", models.CategorySocial, models.MoodHappy, "16:00"},
		},
		models.BucketRainy: {
			{"Indoor movie marathon", models.CategorySocial, models.MoodHappy, "19:00"},
			{"Board game café", models.CategorySocial, models.MoodHappy, "15:00"},
			{"Cozy dinner party", models.CategorySocial, models.MoodHappy, "18:00"},
			{"Karaoke night", models.CategorySocial, models.MoodEnergetic, "21:00"},
		},
	},
	models.SuggestionMoodChill: {
		models.BucketSunny: {
			{"Meditation in the park", models.CategoryRelax, models.MoodCalm, "08:00"},
			{"Gentle nature walk", models.CategoryFitness, models.MoodCalm, "09:30"},
			{"Outdoor sketching", models.CategoryFun, models.MoodCalm, "11:00"},
			{"Sunset photography", models.CategoryFun, models.MoodCalm, "18:30"},
		},
		models.BucketCloudy: {
			{"Spa day at home", models.CategoryRelax, models.MoodCalm, "14:00"},
			{"Gentle yoga flow", models.CategoryFitness, models.MoodCalm, "10:00"},
			{"Journaling session", models.CategoryRelax, models.MoodCalm, "16:00"},
			{"Herbal tea tasting", models.CategoryFood, models.MoodCalm, "15:30"},
		},
		models.BucketRainy: {
			{"Mindfulness meditation", models.CategoryRelax, models.MoodCalm, "09:00"},
			{"Aromatherapy bath", models.CategoryRelax, models.MoodCalm, "20:00"},
			{"Gentle stretching", models.CategoryFitness, models.MoodCalm, "11:00"},
			{"Calming music session", models.CategoryRelax, models.MoodCalm, "17:00"},
		},
	},
}

// CuratedSuggestionProvider serves suggestions from the static table. It is
// fully deterministic apart from the generated ids and never fails, which
// makes it the terminal fallback of the suggestion chain.
type CuratedSuggestionProvider struct{}

// NewCuratedSuggestionProvider creates the curated table provider
func NewCuratedSuggestionProvider() *CuratedSuggestionProvider {
	return &CuratedSuggestionProvider{}
}

// GetSuggestions returns up to req.Limit entries for the mood and weather
// bucket, each stamped with a fresh id. Unknown moods fall back to the chill
// bucket rather than failing.
func (p *CuratedSuggestionProvider) GetSuggestions(_ context.Context, req SuggestionContext) ([]models.ActivitySuggestion, error) {
	byBucket, ok := curatedSuggestions[req.Mood]
	if !ok {
		byBucket = curatedSuggestions[models.SuggestionMoodChill]
	}

	bucket := BucketForWeather(req.Weather)
	entries, ok := byBucket[bucket]
	if !ok {
		entries = byBucket[models.BucketSunny]
	}

	limit := req.Limit
	if limit <= 0 || limit > len(entries) {
		limit = len(entries)
	}

	suggestions := make([]models.ActivitySuggestion, 0, limit)
	for _, entry := range entries[:limit] {
		suggestions = append(suggestions, models.ActivitySuggestion{
			ID:               "suggestion-" + uuid.NewString(),
			Title:            entry.title,
			Category:         entry.category,
			Mood:             entry.mood,
			Time:             entry.time,
			WeatherDependent: true,
		})
	}
	return suggestions, nil
}
