package quote

import "time"

// Direction classifies a price movement between two consecutive cycles.
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
	Same Direction = "same"
)

// Quote is one coin's reading from the upstream endpoint.
type Quote struct {
	Price     float64
	Change24h float64
}

// Quotes always carries an entry for every tracked symbol.
type Quotes map[Symbol]Quote

type PriceSnapshot map[Symbol]float64

type ChangeSnapshot map[Symbol]float64

type DirectionSnapshot map[Symbol]Direction

// Snapshot is everything one fetch cycle publishes. The three maps are always
// replaced together.
type Snapshot struct {
	Prices     PriceSnapshot
	Changes    ChangeSnapshot
	Directions DirectionSnapshot
	Cycle      string
	FetchedAt  time.Time
}

// Fetched reports whether a cycle has ever succeeded. A zero price from the
// upstream is otherwise indistinguishable from no data.
func (s Snapshot) Fetched() bool { return !s.FetchedAt.IsZero() }

func zeroPrices() PriceSnapshot {
	out := make(PriceSnapshot, len(Tracked))
	for _, s := range Tracked {
		out[s] = 0
	}
	return out
}

func emptySnapshot() Snapshot {
	dirs := make(DirectionSnapshot, len(Tracked))
	for _, s := range Tracked {
		dirs[s] = Same
	}
	return Snapshot{
		Prices:     zeroPrices(),
		Changes:    ChangeSnapshot(zeroPrices()),
		Directions: dirs,
	}
}

// Split separates quotes into price and change snapshots, filling any
// missing symbol with zero.
func (q Quotes) Split() (PriceSnapshot, ChangeSnapshot) {
	prices := make(PriceSnapshot, len(Tracked))
	changes := make(ChangeSnapshot, len(Tracked))
	for _, s := range Tracked {
		v := q[s]
		prices[s] = v.Price
		changes[s] = v.Change24h
	}
	return prices, changes
}

// CompareDirections derives the movement of every tracked symbol from old to
// next. Symbols missing from either side compare as zero.
func CompareDirections(old, next PriceSnapshot) DirectionSnapshot {
	out := make(DirectionSnapshot, len(Tracked))
	for _, s := range Tracked {
		switch prev, cur := old[s], next[s]; {
		case cur > prev:
			out[s] = Up
		case cur < prev:
			out[s] = Down
		default:
			out[s] = Same
		}
	}
	return out
}

func (p PriceSnapshot) clone() PriceSnapshot {
	out := make(PriceSnapshot, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
