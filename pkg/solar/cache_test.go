package solar

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	cache, err := NewCache(8, nil)
	require.NoError(t, err)
	assert.NotNil(t, cache)
	assert.Equal(t, 0, cache.Len())

	_, err = NewCache(0, nil)
	assert.Error(t, err)
}

func TestCacheMatchesComputeSnapshot(t *testing.T) {
	cache, err := NewCache(8, nil)
	require.NoError(t, err)

	instants := []time.Time{
		equinoxDay(5, 38, 0),
		equinoxDay(12, 0, 0),
		equinoxDay(17, 15, 0),
		equinoxDay(23, 59, 59),
	}

	for _, instant := range instants {
		expected, err := ComputeSnapshot(instant, 45.5)
		require.NoError(t, err)
		got, err := cache.Snapshot(instant, 45.5)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	// Every instant falls on the same day at the same latitude.
	assert.Equal(t, 1, cache.Len())
}

func TestCacheKeysByDayAndLatitude(t *testing.T) {
	cache, err := NewCache(8, nil)
	require.NoError(t, err)

	_, err = cache.Snapshot(equinoxDay(12, 0, 0), 40)
	require.NoError(t, err)
	_, err = cache.Snapshot(equinoxDay(12, 0, 0), 40.0001)
	require.NoError(t, err)
	_, err = cache.Snapshot(equinoxDay(12, 0, 0).AddDate(0, 0, 1), 40)
	require.NoError(t, err)

	assert.Equal(t, 3, cache.Len())
}

func TestCacheEvicts(t *testing.T) {
	cache, err := NewCache(2, nil)
	require.NoError(t, err)

	for day := 0; day < 5; day++ {
		_, err := cache.Snapshot(equinoxDay(12, 0, 0).AddDate(0, 0, day), 40)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, cache.Len())
}

func TestCacheUnavailable(t *testing.T) {
	cache, err := NewCache(2, nil)
	require.NoError(t, err)

	_, err = cache.Snapshot(equinoxDay(12, 0, 0), math.NaN())
	assert.True(t, errors.Is(err, ErrTimingUnavailable))
	assert.Equal(t, 0, cache.Len())
}
