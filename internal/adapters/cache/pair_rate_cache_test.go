package cache

import (
	"testing"
	"time"

	"currex/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestPairRateCache_SetAndGet(t *testing.T) {
	c, err := NewPairRateCache(128)
	require.NoError(t, err)
	defer c.Close()

	pair := domain.Pair{From: "USD", To: "EUR"}
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Set(pair, 0.93, stamp)
	c.cache.Wait()

	got, version, ok := c.Get(pair)
	require.True(t, ok)
	require.InDelta(t, 0.93, got, 1e-9)
	require.True(t, version.Equal(stamp))
}

func TestPairRateCache_GetMissWhenEmpty(t *testing.T) {
	c, err := NewPairRateCache(64)
	require.NoError(t, err)
	defer c.Close()

	rate, version, ok := c.Get(domain.Pair{From: "EUR", To: "USD"})
	require.False(t, ok)
	require.Zero(t, rate)
	require.True(t, version.IsZero())
}

func TestPairRateCache_ClearEvictsEverything(t *testing.T) {
	c, err := NewPairRateCache(256)
	require.NoError(t, err)
	defer c.Close()

	usdeur := domain.Pair{From: "USD", To: "EUR"}
	eurjpy := domain.Pair{From: "EUR", To: "JPY"}
	stamp := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	c.Set(usdeur, 0.93, stamp)
	c.Set(eurjpy, 158.6, stamp)
	c.cache.Wait()

	c.Clear()

	_, _, ok := c.Get(usdeur)
	require.False(t, ok)
	_, _, ok = c.Get(eurjpy)
	require.False(t, ok)
}
