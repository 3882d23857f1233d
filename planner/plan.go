// Package planner implements the weekend plan state: pure reducers over
// immutable plan snapshots, the store owning the current plan, and the
// drag session coordinator.
package planner

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// sortedByTime returns a copy of the list stable-sorted ascending by the
// zero-padded "HH:MM" time string. Ties keep their original relative order.
func sortedByTime(list []models.Activity) []models.Activity {
	sorted := make([]models.Activity, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return sorted
}

// withDay returns a plan with the given day's collection and manual flag replaced
func withDay(plan models.WeekendPlan, day models.Day, list []models.Activity, manual bool) models.WeekendPlan {
	if day == models.Saturday {
		plan.Saturday = list
		plan.SaturdayManualOrder = manual
	} else {
		plan.Sunday = list
		plan.SundayManualOrder = manual
	}
	return plan
}

// FindActivity locates an activity by id across both days
func FindActivity(plan models.WeekendPlan, id string) (models.Activity, models.Day, bool) {
	for _, day := range models.Days {
		for _, activity := range plan.DayActivities(day) {
			if activity.ID == id {
				return activity, day, true
			}
		}
	}
	return models.Activity{}, "", false
}

func indexOf(list []models.Activity, id string) int {
	for i, activity := range list {
		if activity.ID == id {
			return i
		}
	}
	return -1
}

// AddActivity inserts the activity into its day's collection and re-sorts
// that day by time. The id must not already exist anywhere in the plan.
func AddActivity(plan models.WeekendPlan, activity models.Activity) (models.WeekendPlan, error) {
	if err := activity.Validate(); err != nil {
		return plan, err
	}
	if _, _, exists := FindActivity(plan, activity.ID); exists {
		return plan, errors.NewAlreadyExistsError(
			fmt.Sprintf("activity with id %s already exists in the plan", activity.ID))
	}

	list := append(append([]models.Activity{}, plan.DayActivities(activity.Day)...), activity)
	return withDay(plan, activity.Day, sortedByTime(list), false), nil
}

// AddSuggestion synthesizes a new activity from the suggestion and inserts it
// into the given day. A fresh id is always generated; the suggestion's own id
// is ephemeral and never enters the plan.
func AddSuggestion(plan models.WeekendPlan, suggestion models.ActivitySuggestion, day models.Day) (models.WeekendPlan, models.Activity, error) {
	activity := models.Activity{
		ID:        uuid.NewString(),
		Title:     suggestion.Title,
		Time:      suggestion.Time,
		Category:  suggestion.Category,
		Mood:      suggestion.Mood,
		Completed: false,
		Day:       day,
	}

	next, err := AddActivity(plan, activity)
	if err != nil {
		return plan, models.Activity{}, err
	}
	return next, activity, nil
}

// UpdateActivity rewrites the fields of the activity matching the id within
// its day. Day changes are not handled here; callers use MoveActivity for
// collection membership. The day is re-sorted by time after the update.
func UpdateActivity(plan models.WeekendPlan, activity models.Activity) (models.WeekendPlan, error) {
	if err := activity.Validate(); err != nil {
		return plan, err
	}

	current := plan.DayActivities(activity.Day)
	idx := indexOf(current, activity.ID)
	if idx < 0 {
		return plan, errors.NewNotFoundError(
			fmt.Sprintf("activity %s not found in %s", activity.ID, activity.Day))
	}

	list := append([]models.Activity{}, current...)
	list[idx] = activity
	return withDay(plan, activity.Day, sortedByTime(list), false), nil
}

// DeleteActivity removes the matching activity from the day. Unknown ids are
// a silent no-op. Order and the manual flag are preserved.
func DeleteActivity(plan models.WeekendPlan, id string, day models.Day) models.WeekendPlan {
	current := plan.DayActivities(day)
	if indexOf(current, id) < 0 {
		return plan
	}

	list := make([]models.Activity, 0, len(current)-1)
	for _, activity := range current {
		if activity.ID != id {
			list = append(list, activity)
		}
	}
	return withDay(plan, day, list, plan.ManualOrder(day))
}

// ToggleComplete flips the completed flag on the matching activity. Unknown
// ids are a silent no-op. Order and the manual flag are preserved.
func ToggleComplete(plan models.WeekendPlan, id string, day models.Day) models.WeekendPlan {
	current := plan.DayActivities(day)
	idx := indexOf(current, id)
	if idx < 0 {
		return plan
	}

	list := append([]models.Activity{}, current...)
	list[idx].Completed = !list[idx].Completed
	return withDay(plan, day, list, plan.ManualOrder(day))
}

// ReorderActivities replaces the day's collection verbatim with the given
// sequence and marks the day as manually ordered. The sequence must be a
// permutation of the existing day set.
func ReorderActivities(plan models.WeekendPlan, day models.Day, ordered []models.Activity) (models.WeekendPlan, error) {
	current := plan.DayActivities(day)
	if len(ordered) != len(current) {
		return plan, errors.NewValidationError("reordered list must contain the same activities as the day")
	}
	for _, activity := range ordered {
		if indexOf(current, activity.ID) < 0 {
			return plan, errors.NewValidationError(
				fmt.Sprintf("activity %s is not part of %s", activity.ID, day))
		}
	}
	seen := make(map[string]bool, len(ordered))
	for _, activity := range ordered {
		if seen[activity.ID] {
			return plan, errors.NewValidationError(
				fmt.Sprintf("activity %s appears more than once in the reordered list", activity.ID))
		}
		seen[activity.ID] = true
	}

	list := append([]models.Activity{}, ordered...)
	return withDay(plan, day, list, true), nil
}

// MoveActivity relocates the activity from one day to the other, rewriting
// its day field. With an index the activity is spliced into the target's
// current order (manual order); without one it is appended and the target is
// re-sorted by time. Unknown ids are a silent no-op.
func MoveActivity(plan models.WeekendPlan, id string, fromDay, toDay models.Day, newIndex *int) models.WeekendPlan {
	source := plan.DayActivities(fromDay)
	idx := indexOf(source, id)
	if idx < 0 {
		return plan
	}

	moved := source[idx]
	moved.Day = toDay

	remaining := make([]models.Activity, 0, len(source)-1)
	for _, activity := range source {
		if activity.ID != id {
			remaining = append(remaining, activity)
		}
	}
	plan = withDay(plan, fromDay, remaining, plan.ManualOrder(fromDay))

	target := plan.DayActivities(toDay)
	if newIndex != nil && *newIndex >= 0 {
		at := *newIndex
		if at > len(target) {
			at = len(target)
		}
		list := make([]models.Activity, 0, len(target)+1)
		list = append(list, target[:at]...)
		list = append(list, moved)
		list = append(list, target[at:]...)
		return withDay(plan, toDay, list, true)
	}

	list := append(append([]models.Activity{}, target...), moved)
	return withDay(plan, toDay, sortedByTime(list), false)
}

// ArrayMove returns a copy of the list with the element at oldIndex moved to
// newIndex, shifting the elements in between.
func ArrayMove(list []models.Activity, oldIndex, newIndex int) []models.Activity {
	moved := append([]models.Activity{}, list...)
	if oldIndex < 0 || oldIndex >= len(moved) || newIndex < 0 || newIndex >= len(moved) {
		return moved
	}
	item := moved[oldIndex]
	moved = append(moved[:oldIndex], moved[oldIndex+1:]...)
	rest := make([]models.Activity, 0, len(list))
	rest = append(rest, moved[:newIndex]...)
	rest = append(rest, item)
	rest = append(rest, moved[newIndex:]...)
	return rest
}
