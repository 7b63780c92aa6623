package rate

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"time"

	"currex/internal/domain"

	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
)

// Snapshot is a consistent point-in-time view of the whole rate table.
// LastUpdated is zero until the first successful batch apply.
type Snapshot struct {
	Currencies  []domain.Currency
	LastUpdated time.Time
}

// Cache owns the rate table. The currency set is fixed at construction; the
// refresher mutates rates only through ApplyBatch, any number of readers may
// call the other methods concurrently. A reader either sees a batch fully
// applied or not at all.
type Cache struct {
	clock clockwork.Clock

	mu          sync.RWMutex
	entries     map[string]*domain.Currency
	codes       []string // sorted, fixed at construction
	lastUpdated time.Time
}

func NewCache(catalog []domain.Currency, clock clockwork.Clock) *Cache {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	entries := make(map[string]*domain.Currency, len(catalog))
	codes := make([]string, 0, len(catalog))
	for _, c := range catalog {
		cur := c
		entries[cur.Code] = &cur
		codes = append(codes, cur.Code)
	}
	slices.Sort(codes)

	return &Cache{clock: clock, entries: entries, codes: codes}
}

// Get returns a copy of one entry.
func (c *Cache) Get(code string) (domain.Currency, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[code]
	if !ok {
		return domain.Currency{}, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, code)
	}
	return *entry, nil
}

// Snapshot copies all entries in code order under one read lock, so no entry
// in the result can belong to a newer batch than another.
func (c *Cache) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]domain.Currency, 0, len(c.codes))
	for _, code := range c.codes {
		out = append(out, *c.entries[code])
	}
	return Snapshot{Currencies: out, LastUpdated: c.lastUpdated}
}

type droppedRate struct {
	code   string
	value  float64
	reason string
}

// ApplyBatch validates and applies a provider batch under one write lock.
// Unknown codes and non-positive or non-finite rates are skipped without
// failing the rest of the batch; lastUpdated moves only if at least one rate
// was applied. Returns the number of rates applied.
func (c *Cache) ApplyBatch(rates map[string]float64) int {
	applied := 0
	var dropped []droppedRate

	c.mu.Lock()
	for code, value := range rates {
		entry, ok := c.entries[code]
		if !ok {
			dropped = append(dropped, droppedRate{code, value, "unknown code"})
			continue
		}
		if !(value > 0) || math.IsInf(value, 1) {
			dropped = append(dropped, droppedRate{code, value, "rate must be positive and finite"})
			continue
		}
		entry.Rate = value
		applied++
	}
	if applied > 0 {
		c.lastUpdated = c.clock.Now()
	}
	c.mu.Unlock()

	// Logging happens outside the critical section.
	for _, d := range dropped {
		logrus.Warnf("Dropping rate %s=%v from batch: %s", d.code, d.value, d.reason)
	}
	return applied
}

// PairRate reads both rates under one read lock and returns the multiplier
// that converts an amount of from into to, together with the stamp of the
// batch both rates belong to.
func (c *Cache) PairRate(from, to string) (float64, time.Time, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	fromEntry, ok := c.entries[from]
	if !ok {
		return 0, time.Time{}, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, from)
	}
	toEntry, ok := c.entries[to]
	if !ok {
		return 0, time.Time{}, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, to)
	}
	return toEntry.Rate / fromEntry.Rate, c.lastUpdated, nil
}

// LastUpdated returns the stamp of the most recent applied batch, zero before
// the first one.
func (c *Cache) LastUpdated() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

// Convert computes amount / rate(from) * rate(to) from a single consistent
// view of both rates.
func (c *Cache) Convert(from, to string, amount float64) (float64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return 0, domain.ErrInvalidAmount
	}
	pairRate, _, err := c.PairRate(from, to)
	if err != nil {
		return 0, err
	}
	return amount * pairRate, nil
}

// Codes returns the static currency set, sorted.
func (c *Cache) Codes() []string {
	return slices.Clone(c.codes)
}
