package cache

import (
	"fmt"
	"time"

	"currex/internal/domain"

	"github.com/dgraph-io/ristretto"
)

// RistrettoPairRateCache memoizes pair rates so repeated conversions of the
// same pair skip the rate table between refreshes. Rates only change on a
// batch apply: the whole cache is cleared right after one, and every entry
// is stamped with the batch it came from so a stale write that slips past
// the clear is detectable.
type RistrettoPairRateCache struct {
	cache *ristretto.Cache
}

type pairRateEntry struct {
	rate    float64
	version time.Time
}

func NewPairRateCache(maxItems int64) (*RistrettoPairRateCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10 * maxItems,
		MaxCost:     maxItems,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("create pair rate cache failed: %w", err)
	}
	return &RistrettoPairRateCache{cache: c}, nil
}

func (c *RistrettoPairRateCache) Get(pair domain.Pair) (float64, time.Time, bool) {
	if v, ok := c.cache.Get(toKey(pair)); ok {
		if e, ok := v.(pairRateEntry); ok {
			return e.rate, e.version, true
		}
	}
	return 0, time.Time{}, false
}

func (c *RistrettoPairRateCache) Set(pair domain.Pair, rate float64, version time.Time) {
	c.cache.Set(toKey(pair), pairRateEntry{rate: rate, version: version}, 1)
}

func (c *RistrettoPairRateCache) Clear() { c.cache.Clear() }

func (c *RistrettoPairRateCache) Close() { c.cache.Close() }

func toKey(p domain.Pair) string { return p.From + ":" + p.To }
