package memstore

import (
	"sync"

	"currex/internal/domain"
)

const defaultCapacity = 100

// History is a bounded in-memory conversion log. Records are appended only;
// once capacity is reached the oldest records are discarded.
type History struct {
	mu       sync.RWMutex
	records  []domain.ConversionRecord
	capacity int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &History{
		records:  make([]domain.ConversionRecord, 0, capacity),
		capacity: capacity,
	}
}

func (h *History) Append(rec domain.ConversionRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = append(h.records, rec)
	if len(h.records) > h.capacity {
		h.records = append(h.records[:0], h.records[len(h.records)-h.capacity:]...)
	}
}

// Recent returns up to n records, newest first.
func (h *History) Recent(n int) []domain.ConversionRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if n <= 0 || len(h.records) == 0 {
		return nil
	}
	if n > len(h.records) {
		n = len(h.records)
	}

	out := make([]domain.ConversionRecord, 0, n)
	for i := len(h.records) - 1; i >= len(h.records)-n; i-- {
		out = append(out, h.records[i])
	}
	return out
}
