package rate

import (
	"context"
	"fmt"

	"currex/internal/adapters"
	"currex/internal/metrics"

	"github.com/sirupsen/logrus"
)

// RefreshRates fetches the latest rates from the external provider and
// applies them to the cache as one atomic batch. Pair-rate memos are cleared
// after a successful apply so the next conversion sees the new batch.
func RefreshRates(ctx context.Context, execID string, provider adapters.RateProvider, cache *Cache, pairCache adapters.PairRateCache, m *metrics.Metrics) error {
	rates, err := provider.FetchRates(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch rates: %w", err)
	}

	applied := cache.ApplyBatch(rates)
	if applied > 0 {
		pairCache.Clear()
		m.RatesAppliedTotal.Add(float64(applied))
		m.LastRefreshUnixTime.Set(float64(cache.Snapshot().LastUpdated.Unix()))
	}

	logrus.Infof("%d of %d provider rates applied; execID: %s", applied, len(rates), execID)
	return nil
}
