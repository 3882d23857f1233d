package planner

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weekendly.app/errors"
	"weekendly.app/models"
)

// fakePersister is an in-memory Persister with scriptable failures
type fakePersister struct {
	mu      sync.Mutex
	plan    models.WeekendPlan
	found   bool
	loadErr error
	saveErr error
	saves   int
}

func (f *fakePersister) Load(_ context.Context) (models.WeekendPlan, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plan, f.found, f.loadErr
}

func (f *fakePersister) Save(_ context.Context, plan models.WeekendPlan) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.plan = plan
	f.found = true
	return nil
}

type fakeRecorder struct {
	operations []string
	lastCount  int
}

func (f *fakeRecorder) RecordMutation(operation string) {
	f.operations = append(f.operations, operation)
}

func (f *fakeRecorder) SetActivityCount(count int) {
	f.lastCount = count
}

func TestStoreInit_EmptyWhenNothingPersisted(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)
	store.Init(context.Background())

	plan := store.Plan()
	assert.Empty(t, plan.Saturday)
	assert.Empty(t, plan.Sunday)
	assert.NotNil(t, plan.Saturday)
	assert.NotNil(t, plan.Sunday)
}

func TestStoreInit_RestoresPersistedPlan(t *testing.T) {
	saved := models.EmptyPlan()
	saved, err := AddActivity(saved, makeActivity("1", "Walk", "10:00", models.Saturday))
	require.NoError(t, err)

	store := NewStore(&fakePersister{plan: saved, found: true}, nil)
	store.Init(context.Background())

	assert.Equal(t, []string{"1"}, dayIDs(store.Plan(), models.Saturday))
}

func TestStoreInit_CorruptBlobFallsBackToEmpty(t *testing.T) {
	persister := &fakePersister{loadErr: errors.NewStorageError("unmarshal persisted plan", nil)}
	store := NewStore(persister, nil)
	store.Init(context.Background())

	assert.Equal(t, 0, store.Plan().TotalActivities())
}

func TestStore_MutationPersistsAndRecords(t *testing.T) {
	persister := &fakePersister{}
	recorder := &fakeRecorder{}
	store := NewStore(persister, recorder)
	store.Init(context.Background())

	_, err := store.AddActivity(context.Background(), makeActivity("1", "Walk", "10:00", models.Saturday))
	require.NoError(t, err)

	assert.Equal(t, 1, persister.saves)
	assert.Equal(t, []string{"add"}, recorder.operations)
	assert.Equal(t, 1, recorder.lastCount)
	assert.Equal(t, []string{"1"}, dayIDs(persister.plan, models.Saturday))
}

func TestStore_PersistFailureDoesNotSurfaceToCaller(t *testing.T) {
	persister := &fakePersister{saveErr: errors.NewStorageError("write failed", nil)}
	store := NewStore(persister, nil)
	store.Init(context.Background())

	plan, err := store.AddActivity(context.Background(), makeActivity("1", "Walk", "10:00", models.Saturday))
	require.NoError(t, err)

	// In-memory plan stays authoritative even though persistence failed
	assert.Equal(t, []string{"1"}, dayIDs(plan, models.Saturday))
	assert.Equal(t, []string{"1"}, dayIDs(store.Plan(), models.Saturday))
}

func TestStore_FailedMutationDoesNotCommit(t *testing.T) {
	persister := &fakePersister{}
	recorder := &fakeRecorder{}
	store := NewStore(persister, recorder)
	store.Init(context.Background())

	_, err := store.AddActivity(context.Background(), makeActivity("1", "Walk", "bad-time", models.Saturday))
	require.Error(t, err)

	assert.Equal(t, 0, persister.saves)
	assert.Empty(t, recorder.operations)
	assert.Equal(t, 0, store.Plan().TotalActivities())
}

func TestStore_AddSuggestionReturnsActivity(t *testing.T) {
	store := NewStore(&fakePersister{}, nil)
	store.Init(context.Background())

	activity, err := store.AddSuggestion(context.Background(), models.ActivitySuggestion{
		Title:    "Picnic in the park",
		Category: models.CategoryRelax,
		Mood:     models.MoodCalm,
		Time:     "12:00",
	}, models.Sunday)
	require.NoError(t, err)

	assert.NotEmpty(t, activity.ID)
	assert.Equal(t, models.Sunday, activity.Day)
	assert.Equal(t, []string{activity.ID}, dayIDs(store.Plan(), models.Sunday))
}

func TestStore_FullMutationSequence(t *testing.T) {
	recorder := &fakeRecorder{}
	store := NewStore(&fakePersister{}, recorder)
	store.Init(context.Background())
	ctx := context.Background()

	_, err := store.AddActivity(ctx, makeActivity("1", "A", "09:00", models.Saturday))
	require.NoError(t, err)
	_, err = store.AddActivity(ctx, makeActivity("2", "B", "11:00", models.Saturday))
	require.NoError(t, err)

	_, err = store.UpdateActivity(ctx, makeActivity("1", "A2", "12:00", models.Saturday))
	require.NoError(t, err)

	store.ToggleComplete(ctx, "2", models.Saturday)
	store.MoveActivity(ctx, "2", models.Saturday, models.Sunday, nil)
	store.DeleteActivity(ctx, "1", models.Saturday)

	assert.Equal(t, []string{"add", "add", "update", "toggle_complete", "move", "delete"}, recorder.operations)
	assert.Equal(t, 1, store.Plan().TotalActivities())
	assert.Equal(t, []string{"2"}, dayIDs(store.Plan(), models.Sunday))
	assert.True(t, store.Plan().Sunday[0].Completed)
}
