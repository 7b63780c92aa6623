package domain

import (
	"time"

	"github.com/google/uuid"
)

// Currency is a single entry of the rate table. Code, Name and Symbol are
// fixed at startup; Rate is the only field the refresher may change and it is
// always > 0, expressed in units per one base currency unit (base rate = 1.0).
type Currency struct {
	Code   string
	Name   string
	Symbol string
	Rate   float64
}

type Pair struct {
	From string
	To   string
}

// ConversionRecord is an immutable log entry produced by a successful
// conversion. Records are appended only and read newest first.
type ConversionRecord struct {
	ID        uuid.UUID
	From      string
	To        string
	Amount    float64
	Result    float64
	CreatedAt time.Time
}
