package quote

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultInterval keeps the request rate under the public API's free limits.
const DefaultInterval = 13 * time.Second

// Observer receives the outcome of every cycle. metrics.Collector satisfies it.
type Observer interface {
	ObserveCycle(result string, elapsed time.Duration)
	ObserveQuote(symbol string, price, change24h float64)
}

type Poller struct {
	provider Provider
	tracker  *Tracker
	interval time.Duration
	log      *zap.Logger
	observer Observer
	now      func() time.Time
	inFlight atomic.Bool
}

type Option func(*Poller)

func WithLogger(l *zap.Logger) Option {
	return func(p *Poller) {
		if l != nil {
			p.log = l
		}
	}
}

func WithObserver(o Observer) Option {
	return func(p *Poller) { p.observer = o }
}

func WithClock(now func() time.Time) Option {
	return func(p *Poller) {
		if now != nil {
			p.now = now
		}
	}
}

func NewPoller(provider Provider, tracker *Tracker, interval time.Duration, opts ...Option) *Poller {
	if tracker == nil {
		tracker = NewTracker()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	p := &Poller{
		provider: provider,
		tracker:  tracker,
		interval: interval,
		log:      zap.NewNop(),
		now:      time.Now,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *Poller) Tracker() *Tracker { return p.tracker }

func (p *Poller) Interval() time.Duration { return p.interval }

// InFlight reports whether a cycle is currently running.
func (p *Poller) InFlight() bool { return p.inFlight.Load() }

// Cycle performs one fetch cycle. Failures set the tracker's error flag and
// are returned for diagnostics only; the previous snapshot stays published.
func (p *Poller) Cycle(ctx context.Context) (Snapshot, error) {
	if !p.inFlight.CompareAndSwap(false, true) {
		return p.tracker.Snapshot(), ErrCycleInFlight
	}
	defer p.inFlight.Store(false)

	id := uuid.NewString()
	p.tracker.Begin()
	start := p.now()

	quotes, err := p.provider.Fetch(ctx)
	elapsed := p.now().Sub(start)
	if err != nil {
		if !errors.Is(err, ErrFetchFailure) {
			err = fmt.Errorf("%w: %w", ErrFetchFailure, err)
		}
		p.tracker.Fail()
		p.log.Warn("fetch cycle failed",
			zap.String("cycle", id),
			zap.String("provider", p.provider.Name()),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		p.observe("error", elapsed, nil)
		return p.tracker.Snapshot(), err
	}

	snap := p.tracker.Apply(quotes, id, p.now())
	p.log.Debug("fetch cycle complete",
		zap.String("cycle", id),
		zap.Duration("elapsed", elapsed))
	p.observe("ok", elapsed, &snap)
	return snap, nil
}

func (p *Poller) observe(result string, elapsed time.Duration, snap *Snapshot) {
	if p.observer == nil {
		return
	}
	p.observer.ObserveCycle(result, elapsed)
	if snap == nil {
		return
	}
	for _, s := range Tracked {
		p.observer.ObserveQuote(string(s), snap.Prices[s], snap.Changes[s])
	}
}

// Run performs one cycle immediately and then one per interval until ctx is
// done. onCycle, when set, sees every completed cycle.
func (p *Poller) Run(ctx context.Context, onCycle func(Snapshot, error)) {
	emit := func() {
		snap, err := p.Cycle(ctx)
		if errors.Is(err, ErrCycleInFlight) {
			return
		}
		if onCycle != nil {
			onCycle(snap, err)
		}
	}

	emit()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit()
		}
	}
}
