package rate

import (
	"context"
	"errors"
	"testing"
	"time"

	"currex/internal/domain"
	"currex/internal/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Testify mocks ---

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) FetchRates(ctx context.Context) (map[string]float64, error) {
	args := m.Called(ctx)
	rates, _ := args.Get(0).(map[string]float64)
	return rates, args.Error(1)
}

type MockPairRateCache struct{ mock.Mock }

func (m *MockPairRateCache) Get(pair domain.Pair) (float64, time.Time, bool) {
	args := m.Called(pair)
	return args.Get(0).(float64), args.Get(1).(time.Time), args.Bool(2)
}

func (m *MockPairRateCache) Set(pair domain.Pair, rate float64, version time.Time) {
	m.Called(pair, rate, version)
}

func (m *MockPairRateCache) Clear() {
	m.Called()
}

func newTestMetrics() *metrics.Metrics {
	return metrics.New(prometheus.NewRegistry())
}

func TestRefreshRates_FetchError_LeavesCacheUntouched(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockPairCache := new(MockPairRateCache)
	cache := NewCache(testCatalog(), nil)

	mockProvider.On("FetchRates", mock.Anything).Return(nil, errors.New("connection refused")).Once()

	err := RefreshRates(context.Background(), "exec-1", mockProvider, cache, mockPairCache, newTestMetrics())

	require.Error(t, err)
	require.ErrorContains(t, err, "failed to fetch rates")

	snap := cache.Snapshot()
	require.True(t, snap.LastUpdated.IsZero())
	eur, getErr := cache.Get("EUR")
	require.NoError(t, getErr)
	require.InDelta(t, 0.93, eur.Rate, 1e-9)

	mockProvider.AssertExpectations(t)
	mockPairCache.AssertNotCalled(t, "Clear")
}

func TestRefreshRates_Success_AppliesAndClearsPairCache(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockPairCache := new(MockPairRateCache)
	cache := NewCache(testCatalog(), nil)

	mockProvider.On("FetchRates", mock.Anything).Return(map[string]float64{
		"EUR": 0.95,
		"JPY": 151.2,
		"XYZ": 2.0, // unknown, ignored
	}, nil).Once()
	mockPairCache.On("Clear").Return().Once()

	err := RefreshRates(context.Background(), "exec-2", mockProvider, cache, mockPairCache, newTestMetrics())

	require.NoError(t, err)

	eur, getErr := cache.Get("EUR")
	require.NoError(t, getErr)
	require.InDelta(t, 0.95, eur.Rate, 1e-9)

	jpy, getErr := cache.Get("JPY")
	require.NoError(t, getErr)
	require.InDelta(t, 151.2, jpy.Rate, 1e-9)

	require.False(t, cache.Snapshot().LastUpdated.IsZero())

	mockProvider.AssertExpectations(t)
	mockPairCache.AssertExpectations(t)
}

func TestRefreshRates_NothingApplied_SkipsPairCacheClear(t *testing.T) {
	mockProvider := new(MockRateProvider)
	mockPairCache := new(MockPairRateCache)
	cache := NewCache(testCatalog(), nil)

	mockProvider.On("FetchRates", mock.Anything).Return(map[string]float64{
		"XYZ": 2.0,
		"EUR": -3.0,
	}, nil).Once()

	err := RefreshRates(context.Background(), "exec-3", mockProvider, cache, mockPairCache, newTestMetrics())

	require.NoError(t, err)
	require.True(t, cache.Snapshot().LastUpdated.IsZero())
	mockPairCache.AssertNotCalled(t, "Clear")
	mockProvider.AssertExpectations(t)
}
