package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "12:00", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidClockTime(v), v)
	}

	invalid := []string{"", "9:00", "24:00", "12:60", "12:5", "noon", "12-30", "112:00"}
	for _, v := range invalid {
		assert.False(t, IsValidClockTime(v), v)
	}
}

func TestDayValid(t *testing.T) {
	assert.True(t, Saturday.Valid())
	assert.True(t, Sunday.Valid())
	assert.False(t, Day("monday").Valid())
	assert.False(t, Day("").Valid())
}

func TestActivityValidate(t *testing.T) {
	valid := Activity{
		ID:       "1",
		Title:    "Walk",
		Time:     "10:00",
		Category: CategoryFitness,
		Mood:     MoodCalm,
		Day:      Saturday,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Activity)
	}{
		{"missing id", func(a *Activity) { a.ID = "" }},
		{"missing title", func(a *Activity) { a.Title = "" }},
		{"bad time", func(a *Activity) { a.Time = "10am" }},
		{"bad category", func(a *Activity) { a.Category = "extreme" }},
		{"bad mood", func(a *Activity) { a.Mood = "furious" }},
		{"bad day", func(a *Activity) { a.Day = "friday" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activity := valid
			tt.mutate(&activity)
			assert.Error(t, activity.Validate())
		})
	}
}

func TestCategoryMetaCoversAllCategories(t *testing.T) {
	for _, category := range Categories {
		meta, ok := CategoryMetaFor(category)
		assert.True(t, ok, string(category))
		assert.NotEmpty(t, meta.Label)
		assert.NotEmpty(t, meta.Icon)
		assert.NotEmpty(t, meta.Color)
	}

	_, ok := CategoryMetaFor("extreme")
	assert.False(t, ok)
}

func TestWeekendPlanHelpers(t *testing.T) {
	plan := WeekendPlan{
		Saturday:          []Activity{{ID: "1"}},
		Sunday:            []Activity{{ID: "2"}, {ID: "3"}},
		SundayManualOrder: true,
	}

	assert.Equal(t, 3, plan.TotalActivities())
	assert.Len(t, plan.DayActivities(Saturday), 1)
	assert.Len(t, plan.DayActivities(Sunday), 2)
	assert.False(t, plan.ManualOrder(Saturday))
	assert.True(t, plan.ManualOrder(Sunday))
}

func TestWeekendPlanJSONRoundTrip(t *testing.T) {
	plan := WeekendPlan{
		Saturday: []Activity{{
			ID:       "1",
			Title:    "Walk",
			Time:     "10:00",
			Category: CategoryFitness,
			Mood:     MoodCalm,
			Day:      Saturday,
		}},
		Sunday:              []Activity{},
		SaturdayManualOrder: true,
	}

	data, err := json.Marshal(plan)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"saturdayManualOrder":true`)
	// False manual-order flags are omitted from the payload
	assert.NotContains(t, string(data), "sundayManualOrder")

	var decoded WeekendPlan
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, plan, decoded)
}
