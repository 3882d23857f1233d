package planner

import (
	"context"
	"log/slog"
	"sync"

	"weekendly.app/models"
)

// Persister saves and restores the serialized plan. Implementations live in
// the storage package.
type Persister interface {
	Load(ctx context.Context) (models.WeekendPlan, bool, error)
	Save(ctx context.Context, plan models.WeekendPlan) error
}

// MutationRecorder receives a signal for every applied plan mutation
type MutationRecorder interface {
	RecordMutation(operation string)
	SetActivityCount(count int)
}

// Store is the single source of truth for the weekend plan. It applies the
// pure reducers under a lock and writes the new plan to the persister after
// every successful mutation. Persistence failures are logged and never
// surfaced to the mutation caller: the in-memory plan stays authoritative and
// the next mutation overwrites the blob (last write wins).
type Store struct {
	mu        sync.RWMutex
	plan      models.WeekendPlan
	persister Persister
	recorder  MutationRecorder
}

// NewStore creates a plan store backed by the given persister. The recorder
// may be nil.
func NewStore(persister Persister, recorder MutationRecorder) *Store {
	return &Store{
		plan:      models.EmptyPlan(),
		persister: persister,
		recorder:  recorder,
	}
}

// Init restores the plan from the persister. A missing key yields the empty
// plan; a corrupt blob is logged and discarded, never fatal.
func (s *Store) Init(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, found, err := s.persister.Load(ctx)
	if err != nil {
		slog.Warn("Failed to load saved plan, starting empty", "error", err)
		s.plan = models.EmptyPlan()
		return
	}
	if !found {
		s.plan = models.EmptyPlan()
		return
	}

	s.plan = plan
	slog.Info("Weekend plan restored", "activities", plan.TotalActivities())
}

// Plan returns the current plan snapshot. Reducers never mutate slices in
// place, so the snapshot is safe to share.
func (s *Store) Plan() models.WeekendPlan {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.plan
}

func (s *Store) commit(ctx context.Context, operation string, plan models.WeekendPlan) {
	s.plan = plan
	if s.recorder != nil {
		s.recorder.RecordMutation(operation)
		s.recorder.SetActivityCount(plan.TotalActivities())
	}
	if err := s.persister.Save(ctx, plan); err != nil {
		slog.Error("Failed to persist plan", "operation", operation, "error", err)
	}
}

// AddActivity inserts a new activity into its day
func (s *Store) AddActivity(ctx context.Context, activity models.Activity) (models.WeekendPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := AddActivity(s.plan, activity)
	if err != nil {
		return s.plan, err
	}
	s.commit(ctx, "add", next)
	return next, nil
}

// AddSuggestion synthesizes an activity from the suggestion and inserts it
func (s *Store) AddSuggestion(ctx context.Context, suggestion models.ActivitySuggestion, day models.Day) (models.Activity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, activity, err := AddSuggestion(s.plan, suggestion, day)
	if err != nil {
		return models.Activity{}, err
	}
	s.commit(ctx, "add_suggestion", next)
	return activity, nil
}

// UpdateActivity rewrites the fields of an existing activity
func (s *Store) UpdateActivity(ctx context.Context, activity models.Activity) (models.WeekendPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := UpdateActivity(s.plan, activity)
	if err != nil {
		return s.plan, err
	}
	s.commit(ctx, "update", next)
	return next, nil
}

// DeleteActivity removes an activity; unknown ids are a no-op
func (s *Store) DeleteActivity(ctx context.Context, id string, day models.Day) models.WeekendPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := DeleteActivity(s.plan, id, day)
	s.commit(ctx, "delete", next)
	return next
}

// ToggleComplete flips an activity's completed flag; unknown ids are a no-op
func (s *Store) ToggleComplete(ctx context.Context, id string, day models.Day) models.WeekendPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := ToggleComplete(s.plan, id, day)
	s.commit(ctx, "toggle_complete", next)
	return next
}

// ReorderActivities replaces a day's order verbatim
func (s *Store) ReorderActivities(ctx context.Context, day models.Day, ordered []models.Activity) (models.WeekendPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := ReorderActivities(s.plan, day, ordered)
	if err != nil {
		return s.plan, err
	}
	s.commit(ctx, "reorder", next)
	return next, nil
}

// MoveActivity transfers an activity between days; unknown ids are a no-op
func (s *Store) MoveActivity(ctx context.Context, id string, fromDay, toDay models.Day, newIndex *int) models.WeekendPlan {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := MoveActivity(s.plan, id, fromDay, toDay, newIndex)
	s.commit(ctx, "move", next)
	return next
}
