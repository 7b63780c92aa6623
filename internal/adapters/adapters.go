package adapters

import (
	"context"
	"time"

	"currex/internal/domain"
)

type RateProvider interface {
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// PairRateCache memoizes computed pair rates between refreshes. Each entry
// carries the stamp of the batch it was derived from; callers must treat a
// hit with a stale stamp as a miss. The refresh job clears the store after
// every successful batch apply.
type PairRateCache interface {
	Get(pair domain.Pair) (rate float64, version time.Time, ok bool)
	Set(pair domain.Pair, rate float64, version time.Time)
	Clear()
}

type HistoryStore interface {
	Append(rec domain.ConversionRecord)
	Recent(n int) []domain.ConversionRecord
}
