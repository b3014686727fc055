// Package wheel is the prize wheel state machine: idle until triggered,
// spinning for a fixed duration, then idle again with a winning label.
package wheel

import (
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

type State string

const (
	Idle     State = "idle"
	Spinning State = "spinning"
)

// DefaultDuration matches the length of the spin animation.
const DefaultDuration = 3 * time.Second

const fullTurns = 5

var DefaultSegments = []string{
	"20% OFF",
	"30% OFF",
	"Free Ticket",
	"50% OFF",
	"Free Ticket",
	"10% OFF",
}

var ErrNoSegments = errors.New("wheel needs at least one segment")

// Spin describes one triggered rotation. From is the resting angle the wheel
// starts at; Rotation is the absolute target in degrees.
type Spin struct {
	ID       int
	From     float64
	Rotation int
	Index    int
	Label    string
}

// Segment is the static layout of one slice of the wheel.
type Segment struct {
	Label         string
	Angle         float64
	LabelRotation float64
	Alternate     bool
}

type Wheel struct {
	segments []string
	duration time.Duration
	randIntN func(n int) int

	state   State
	current Spin
	result  string
	settled bool
	resting float64
	spins   int
}

type Option func(*Wheel)

// WithRand replaces the random source. fn must return a value in [0, n).
func WithRand(fn func(n int) int) Option {
	return func(w *Wheel) {
		if fn != nil {
			w.randIntN = fn
		}
	}
}

func WithDuration(d time.Duration) Option {
	return func(w *Wheel) {
		if d > 0 {
			w.duration = d
		}
	}
}

func New(segments []string, opts ...Option) (*Wheel, error) {
	if len(segments) == 0 {
		return nil, ErrNoSegments
	}
	w := &Wheel{
		segments: append([]string(nil), segments...),
		duration: DefaultDuration,
		randIntN: rand.IntN,
		state:    Idle,
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

func (w *Wheel) State() State { return w.state }

func (w *Wheel) Duration() time.Duration { return w.duration }

func (w *Wheel) Segments() []string { return append([]string(nil), w.segments...) }

// Current is the spin in progress, or the last one once idle.
func (w *Wheel) Current() Spin { return w.current }

// Result is the label published by the last completed spin.
func (w *Wheel) Result() (string, bool) { return w.result, w.settled }

// Resting is the angle the wheel sits at while idle.
func (w *Wheel) Resting() float64 { return w.resting }

// Spin starts a rotation. It is a no-op returning false while spinning.
func (w *Wheel) Spin() (Spin, bool) {
	if w.state == Spinning {
		return Spin{}, false
	}
	w.spins++
	rotation := w.randIntN(360) + 360*fullTurns
	idx := WinningIndex(rotation, len(w.segments))
	w.current = Spin{
		ID:       w.spins,
		From:     w.resting,
		Rotation: rotation,
		Index:    idx,
		Label:    w.segments[idx],
	}
	w.state = Spinning
	return w.current, true
}

// Settle finishes spin id once its animation has run. Stale or repeated
// completions are ignored.
func (w *Wheel) Settle(id int) (string, bool) {
	if w.state != Spinning || id != w.current.ID {
		return "", false
	}
	w.state = Idle
	w.result = w.current.Label
	w.settled = true
	w.resting = float64(w.current.Rotation % 360)
	return w.result, true
}

// Angle returns the displayed rotation of the current spin after elapsed.
func (w *Wheel) Angle(elapsed time.Duration) float64 {
	if w.state != Spinning {
		return w.resting
	}
	return Interpolate(w.current.From, float64(w.current.Rotation), elapsed, w.duration)
}

// Layout returns every segment with its angle and the counter-rotation that
// keeps its label upright.
func (w *Wheel) Layout() []Segment {
	width := SegmentWidth(len(w.segments))
	out := make([]Segment, len(w.segments))
	for i, label := range w.segments {
		angle := float64(i) * width
		out[i] = Segment{
			Label:         label,
			Angle:         angle,
			LabelRotation: -angle,
			Alternate:     i%2 == 1,
		}
	}
	return out
}

// SegmentWidth is the angular size of one of n equal segments.
func SegmentWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// WinningIndex maps an absolute rotation to the segment under the pointer.
func WinningIndex(rotation, n int) int {
	return PointerIndex(float64(rotation), n)
}

// PointerIndex is WinningIndex for fractional angles seen mid-animation.
func PointerIndex(angle float64, n int) int {
	if n <= 0 {
		return 0
	}
	final := math.Mod(angle, 360)
	if final < 0 {
		final += 360
	}
	return int(math.Floor((360-final)/SegmentWidth(n))) % n
}

// Interpolate eases from start to end over duration, decelerating towards
// the end like a CSS ease-out transition.
func Interpolate(start, end float64, elapsed, duration time.Duration) float64 {
	if duration <= 0 || elapsed >= duration {
		return end
	}
	if elapsed <= 0 {
		return start
	}
	t := float64(elapsed) / float64(duration)
	eased := 1 - math.Pow(1-t, 3)
	return start + (end-start)*eased
}
