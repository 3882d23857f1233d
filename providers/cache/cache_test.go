package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"weekendly.app/models"
)

func snapshot(city string) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{
		Temperature: 18,
		Condition:   "clear",
		Icon:        "☀️",
		Description: "clear sky",
		City:        city,
	}
}

func TestMemoryCache_SetGet(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	c.Set("weather:city:London", snapshot("London"), time.Minute)

	got, found := c.Get("weather:city:London")
	assert.True(t, found)
	assert.Equal(t, "London", got.City)
}

func TestMemoryCache_MissingKey(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	_, found := c.Get("weather:city:Nowhere")
	assert.False(t, found)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	c.Set("k", snapshot("London"), 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, found := c.Get("k")
	assert.False(t, found)
}

func TestMemoryCache_NilAndZeroTTLIgnored(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	c.Set("nil", nil, time.Minute)
	c.Set("zero", snapshot("London"), 0)

	_, found := c.Get("nil")
	assert.False(t, found)
	_, found = c.Get("zero")
	assert.False(t, found)
}

func TestMemoryCache_ReturnsCopy(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	c.Set("k", snapshot("London"), time.Minute)

	first, _ := c.Get("k")
	first.City = "mutated"

	second, _ := c.Get("k")
	assert.Equal(t, "London", second.City)
}

func TestMemoryCache_DeleteAndClear(t *testing.T) {
	c := NewMemorySnapshotCache()
	defer c.Stop()

	c.Set("a", snapshot("A"), time.Minute)
	c.Set("b", snapshot("B"), time.Minute)

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	_, found = c.Get("b")
	assert.False(t, found)
}
