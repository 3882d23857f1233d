// Package models defines data structures used throughout the application
package models

import (
	"fmt"
	"regexp"

	"weekendly.app/errors"
)

// Day identifies one of the two weekend planning buckets
type Day string

const (
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
)

// Days lists all planning buckets in display order
var Days = []Day{Saturday, Sunday}

// Valid reports whether the day is a known planning bucket
func (d Day) Valid() bool {
	return d == Saturday || d == Sunday
}

// ActivityCategory classifies an activity for display and filtering
type ActivityCategory string

const (
	CategoryFun     ActivityCategory = "fun"
	CategoryFood    ActivityCategory = "food"
	CategoryFitness ActivityCategory = "fitness"
	CategoryRelax   ActivityCategory = "relax"
	CategorySocial  ActivityCategory = "social"
)

// Categories lists all activity categories
var Categories = []ActivityCategory{
	CategoryFun, CategoryFood, CategoryFitness, CategoryRelax, CategorySocial,
}

// Valid reports whether the category is known
func (c ActivityCategory) Valid() bool {
	_, ok := categoryConfig[c]
	return ok
}

// ActivityMood describes the vibe attached to a single activity
type ActivityMood string

const (
	MoodHappy     ActivityMood = "happy"
	MoodEnergetic ActivityMood = "energetic"
	MoodCalm      ActivityMood = "calm"
)

// Valid reports whether the mood is known
func (m ActivityMood) Valid() bool {
	return m == MoodHappy || m == MoodEnergetic || m == MoodCalm
}

// SuggestionMood is the user-selected mood driving suggestion lookup
type SuggestionMood string

const (
	SuggestionMoodLazy        SuggestionMood = "lazy"
	SuggestionMoodAdventurous SuggestionMood = "adventurous"
	SuggestionMoodSocial      SuggestionMood = "social"
	SuggestionMoodChill       SuggestionMood = "chill"
)

// Valid reports whether the suggestion mood is known
func (m SuggestionMood) Valid() bool {
	switch m {
	case SuggestionMoodLazy, SuggestionMoodAdventurous, SuggestionMoodSocial, SuggestionMoodChill:
		return true
	}
	return false
}

// WeatherBucket is the coarse weather classification keying suggestion lookup
type WeatherBucket string

const (
	BucketSunny  WeatherBucket = "sunny"
	BucketCloudy WeatherBucket = "cloudy"
	BucketRainy  WeatherBucket = "rainy"
)

// CategoryMeta holds display metadata for an activity category
type CategoryMeta struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// categoryConfig maps every category to its display metadata. Completeness
// against Categories is enforced by init.
var categoryConfig = map[ActivityCategory]CategoryMeta{
	CategoryFun:     {Label: "Fun", Icon: "🎉", Color: "purple"},
	CategoryFood:    {Label: "Food", Icon: "🍽️", Color: "red"},
	CategoryFitness: {Label: "Fitness", Icon: "💪", Color: "green"},
	CategoryRelax:   {Label: "Relax", Icon: "🧘", Color: "blue"},
	CategorySocial:  {Label: "Social", Icon: "👥", Color: "orange"},
}

func init() {
	for _, c := range Categories {
		if _, ok := categoryConfig[c]; !ok {
			panic(fmt.Sprintf("models: missing category metadata for %q", c))
		}
	}
}

// CategoryMetaFor returns display metadata for the given category
func CategoryMetaFor(c ActivityCategory) (CategoryMeta, bool) {
	meta, ok := categoryConfig[c]
	return meta, ok
}

var timeRegex = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// IsValidClockTime validates a zero-padded "HH:MM" string
func IsValidClockTime(t string) bool {
	return timeRegex.MatchString(t)
}

// Activity represents a single planned weekend task
type Activity struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Time      string           `json:"time"`
	Category  ActivityCategory `json:"category"`
	Mood      ActivityMood     `json:"mood"`
	Completed bool             `json:"completed"`
	Day       Day              `json:"day"`
}

// Validate checks activity fields before any state change
func (a *Activity) Validate() error {
	if a.ID == "" {
		return errors.NewValidationError("activity id is required")
	}
	if a.Title == "" {
		return errors.NewValidationError("activity title is required")
	}
	if !IsValidClockTime(a.Time) {
		return errors.NewValidationError("activity time must be in HH:MM format")
	}
	if !a.Category.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown activity category: %s", a.Category))
	}
	if !a.Mood.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown activity mood: %s", a.Mood))
	}
	if !a.Day.Valid() {
		return errors.NewValidationError(fmt.Sprintf("unknown day: %s", a.Day))
	}
	return nil
}

// WeekendPlan holds the two day collections in display order. The manual
// order flags record that a day's order was set explicitly by the user and
// must not be re-sorted until the next structural mutation.
type WeekendPlan struct {
	Saturday            []Activity `json:"saturday"`
	Sunday              []Activity `json:"sunday"`
	SaturdayManualOrder bool       `json:"saturdayManualOrder,omitempty"`
	SundayManualOrder   bool       `json:"sundayManualOrder,omitempty"`
}

// EmptyPlan returns the initial plan state
func EmptyPlan() WeekendPlan {
	return WeekendPlan{Saturday: []Activity{}, Sunday: []Activity{}}
}

// DayActivities returns the collection for the given day
func (p WeekendPlan) DayActivities(day Day) []Activity {
	if day == Saturday {
		return p.Saturday
	}
	return p.Sunday
}

// ManualOrder reports whether the day's order was set explicitly by the user
func (p WeekendPlan) ManualOrder(day Day) bool {
	if day == Saturday {
		return p.SaturdayManualOrder
	}
	return p.SundayManualOrder
}

// TotalActivities counts activities across both days
func (p WeekendPlan) TotalActivities() int {
	return len(p.Saturday) + len(p.Sunday)
}

// ActivitySuggestion is an unpersisted candidate activity. It becomes an
// Activity only when explicitly added to a day.
type ActivitySuggestion struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Category         ActivityCategory `json:"category"`
	Mood             ActivityMood     `json:"mood"`
	Time             string           `json:"time"`
	WeatherDependent bool             `json:"weatherDependent"`
}

// WeatherSnapshot is a transient normalized view of current weather,
// refetched on demand and never persisted
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	City        string  `json:"city"`
}

// AddActivityRequest is the payload for creating an activity
type AddActivityRequest struct {
	ID        string           `json:"id"`
	Title     string           `json:"title" binding:"required"`
	Time      string           `json:"time" binding:"required,clocktime"`
	Category  ActivityCategory `json:"category" binding:"required,oneof=fun food fitness relax social"`
	Mood      ActivityMood     `json:"mood" binding:"required,oneof=happy energetic calm"`
	Completed bool             `json:"completed"`
	Day       Day              `json:"day" binding:"required,oneof=saturday sunday"`
}

// UpdateActivityRequest is the payload for rewriting an activity's fields
type UpdateActivityRequest struct {
	Title     string           `json:"title" binding:"required"`
	Time      string           `json:"time" binding:"required,clocktime"`
	Category  ActivityCategory `json:"category" binding:"required,oneof=fun food fitness relax social"`
	Mood      ActivityMood     `json:"mood" binding:"required,oneof=happy energetic calm"`
	Completed bool             `json:"completed"`
	Day       Day              `json:"day" binding:"required,oneof=saturday sunday"`
}

// ReorderRequest is the payload for an explicit in-day reorder
type ReorderRequest struct {
	Day        Day      `json:"day" binding:"required,oneof=saturday sunday"`
	OrderedIDs []string `json:"orderedIds" binding:"required"`
}

// MoveActivityRequest is the payload for a cross-day transfer
type MoveActivityRequest struct {
	ActivityID string `json:"activityId" binding:"required"`
	FromDay    Day    `json:"fromDay" binding:"required,oneof=saturday sunday"`
	ToDay      Day    `json:"toDay" binding:"required,oneof=saturday sunday"`
	NewIndex   *int   `json:"newIndex"`
}

// AddSuggestionRequest is the payload for accepting a suggestion into a day
type AddSuggestionRequest struct {
	Suggestion ActivitySuggestion `json:"suggestion" binding:"required"`
	Day        Day                `json:"day" binding:"required,oneof=saturday sunday"`
}

// SuggestionRequest is the payload for requesting activity suggestions
type SuggestionRequest struct {
	Mood      SuggestionMood   `json:"mood"`
	Weather   *WeatherSnapshot `json:"weather"`
	Location  string           `json:"location"`
	TimeOfDay *int             `json:"timeOfDay"`
}

// SuggestionResponse carries generated suggestions back to the client
type SuggestionResponse struct {
	Suggestions []ActivitySuggestion `json:"suggestions"`
	Source      string               `json:"source"`
	GeneratedAt string               `json:"generatedAt"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
