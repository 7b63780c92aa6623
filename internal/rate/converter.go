package rate

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"currex/internal/adapters"
	"currex/internal/domain"
	"currex/internal/metrics"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// Converter converts amounts between currencies and hands each successful
// conversion to the history store. It never mutates the rate table.
type Converter struct {
	cache     *Cache
	pairCache adapters.PairRateCache
	history   adapters.HistoryStore
	metrics   *metrics.Metrics
	clock     clockwork.Clock
}

func NewConverter(cache *Cache, pairCache adapters.PairRateCache, history adapters.HistoryStore, m *metrics.Metrics, clock clockwork.Clock) *Converter {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Converter{
		cache:     cache,
		pairCache: pairCache,
		history:   history,
		metrics:   m,
		clock:     clock,
	}
}

func (cv *Converter) Convert(from, to string, amount float64) (domain.ConversionRecord, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return domain.ConversionRecord{}, domain.ErrInvalidAmount
	}

	pairRate, err := cv.pairRate(from, to)
	if err != nil {
		return domain.ConversionRecord{}, err
	}

	rec := domain.ConversionRecord{
		ID:        uuid.New(),
		From:      from,
		To:        to,
		Amount:    amount,
		Result:    amount * pairRate,
		CreatedAt: cv.clock.Now(),
	}
	cv.history.Append(rec)
	cv.metrics.ConversionsTotal.Inc()
	return rec, nil
}

// ConvertString parses a caller-supplied amount before converting. A string
// that is not a valid number reports the same ErrInvalidAmount kind.
func (cv *Converter) ConvertString(from, to, amount string) (domain.ConversionRecord, error) {
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil {
		return domain.ConversionRecord{}, fmt.Errorf("%w: %q is not a number", domain.ErrInvalidAmount, amount)
	}
	return cv.Convert(from, to, value)
}

func (cv *Converter) History(limit int) []domain.ConversionRecord {
	return cv.history.Recent(limit)
}

// pairRate serves the pair multiplier from the memo cache when its batch
// stamp still matches the rate table. The memo is cleared after a batch
// apply, but a Set racing that clear can land afterwards; the stamp check
// turns such an entry into a miss instead of serving a pre-refresh rate.
func (cv *Converter) pairRate(from, to string) (float64, error) {
	pair := domain.Pair{From: from, To: to}
	if rate, version, ok := cv.pairCache.Get(pair); ok && version.Equal(cv.cache.LastUpdated()) {
		return rate, nil
	}

	rate, version, err := cv.cache.PairRate(from, to)
	if err != nil {
		return 0, err
	}
	cv.pairCache.Set(pair, rate, version)
	return rate, nil
}
