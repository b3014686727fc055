package quote

import (
	"sync"
	"time"
)

// Tracker owns the published snapshot, the prices seen by the previous cycle
// and the error flag. Published maps are never mutated after Apply returns.
type Tracker struct {
	mu      sync.RWMutex
	current Snapshot
	last    PriceSnapshot
	failed  bool
}

func NewTracker() *Tracker {
	return &Tracker{
		current: emptySnapshot(),
		last:    zeroPrices(),
	}
}

// Begin marks the start of a cycle and clears the error flag.
func (t *Tracker) Begin() {
	t.mu.Lock()
	t.failed = false
	t.mu.Unlock()
}

// Apply publishes a successful cycle. Directions are computed against the
// previous cycle's prices, and only then is the holder replaced.
func (t *Tracker) Apply(q Quotes, cycle string, at time.Time) Snapshot {
	prices, changes := q.Split()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = Snapshot{
		Prices:     prices,
		Changes:    changes,
		Directions: CompareDirections(t.last, prices),
		Cycle:      cycle,
		FetchedAt:  at,
	}
	t.last = prices.clone()
	t.failed = false
	return t.current
}

// Fail sets the error flag and leaves the published snapshot untouched.
func (t *Tracker) Fail() {
	t.mu.Lock()
	t.failed = true
	t.mu.Unlock()
}

func (t *Tracker) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

func (t *Tracker) Failed() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.failed
}

// LastPrices returns a copy of the prices the next cycle will compare against.
func (t *Tracker) LastPrices() PriceSnapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.last.clone()
}
