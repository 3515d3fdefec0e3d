package cache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/pkg/cache"
)

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func Test_Store_GetMiss(t *testing.T) {
	store := cache.New[string]()

	_, ok := store.GetValid("absent")
	assert.False(t, ok)

	_, ok = store.Get("absent")
	assert.False(t, ok)
}

func Test_Store_SetAndGetValid(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	store := cache.New[string](cache.WithClock[string](fixedClock(base)))

	store.Set("key", "value", time.Hour)

	value, ok := store.GetValid("key")
	require.True(t, ok)
	assert.Equal(t, "value", value)

	entry, ok := store.Get("key")
	require.True(t, ok)
	assert.Equal(t, base, entry.CreatedAt)
	assert.Equal(t, base.Add(time.Hour), entry.ExpiresAt)
}

func Test_Store_ExpiryBoundary(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := base
	store := cache.New[int](cache.WithClock[int](func() time.Time { return now }))

	store.Set("key", 42, time.Hour)

	now = base.Add(time.Hour - time.Second)
	value, ok := store.GetValid("key")
	require.True(t, ok)
	assert.Equal(t, 42, value)

	// exactly at expiry the entry is no longer servable
	now = base.Add(time.Hour)
	_, ok = store.GetValid("key")
	assert.False(t, ok)

	now = base.Add(time.Hour + time.Second)
	_, ok = store.GetValid("key")
	assert.False(t, ok)

	// the expired entry is still present until swept
	_, present := store.Get("key")
	assert.True(t, present)
	assert.Equal(t, 1, store.Len())
}

func Test_Store_SetOverwritesAndRenewsExpiry(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := base
	store := cache.New[string](cache.WithClock[string](func() time.Time { return now }))

	store.Set("key", "old", time.Hour)

	now = base.Add(2 * time.Hour)
	store.Set("key", "new", time.Hour)

	value, ok := store.GetValid("key")
	require.True(t, ok)
	assert.Equal(t, "new", value)
	assert.Equal(t, 1, store.Len())

	entry, _ := store.Get("key")
	assert.Equal(t, now.Add(time.Hour), entry.ExpiresAt)
}

func Test_Store_SweepRemovesOnlyExpired(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := base
	store := cache.New[int](cache.WithClock[int](func() time.Time { return now }))

	store.Set("expired-a", 1, 10*time.Minute)
	store.Set("expired-b", 2, 30*time.Minute)
	store.Set("fresh", 3, 2*time.Hour)

	now = base.Add(time.Hour)
	removed := store.Sweep()

	assert.Equal(t, 2, removed)
	assert.Equal(t, 1, store.Len())

	value, ok := store.GetValid("fresh")
	require.True(t, ok)
	assert.Equal(t, 3, value)
}

func Test_Store_MaybeSweep(t *testing.T) {
	base := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	now := base
	roll := 0.5
	store := cache.New[int](
		cache.WithClock[int](func() time.Time { return now }),
		cache.WithSweepChance[int](0.1),
		cache.WithRand[int](func() float64 { return roll }),
	)

	store.Set("key", 1, time.Minute)
	now = base.Add(time.Hour)

	// roll above the chance leaves expired entries in place
	assert.False(t, store.MaybeSweep())
	assert.Equal(t, 1, store.Len())

	roll = 0.05
	assert.True(t, store.MaybeSweep())
	assert.Equal(t, 0, store.Len())
}

func Test_Store_IndependentTiers(t *testing.T) {
	strings := cache.New[string]()
	ints := cache.New[int]()

	strings.Set("key", "value", time.Hour)
	ints.Set("key", 7, time.Hour)

	s, ok := strings.GetValid("key")
	require.True(t, ok)
	assert.Equal(t, "value", s)

	i, ok := ints.GetValid("key")
	require.True(t, ok)
	assert.Equal(t, 7, i)
}
