package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weekendly.app/config"
	"weekendly.app/errors"
)

func newTestDatabaseStore(t *testing.T) *DatabaseStore {
	t.Helper()

	store, err := NewDatabaseStore(&config.DatabaseConfig{
		Driver: "sqlite",
		Path:   filepath.Join(t.TempDir(), "weekendly-test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestDatabaseStore_LoadBeforeSave(t *testing.T) {
	store := newTestDatabaseStore(t)

	_, found, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDatabaseStore_SaveLoadRoundTrip(t *testing.T) {
	store := newTestDatabaseStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, samplePlan()))

	loaded, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, samplePlan(), loaded)
}

func TestDatabaseStore_SaveOverwrites(t *testing.T) {
	store := newTestDatabaseStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, samplePlan()))

	updated := samplePlan()
	updated.Saturday[0].Completed = true
	require.NoError(t, store.Save(ctx, updated))

	loaded, _, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.Saturday[0].Completed)
}

func TestDatabaseStore_UnsupportedDriver(t *testing.T) {
	_, err := NewDatabaseStore(&config.DatabaseConfig{Driver: "oracle"})
	require.Error(t, err)
	assert.True(t, errors.IsConfigurationError(err))
}
