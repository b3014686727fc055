package quote

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Symbol identifies one tracked stablecoin.
type Symbol string

const (
	USDC  Symbol = "usdc"
	USDT  Symbol = "usdt"
	DAI   Symbol = "dai"
	GHOST Symbol = "ghost"
	USDG  Symbol = "usdg"
)

// Tracked lists every symbol the widget follows, in request order.
var Tracked = []Symbol{USDC, USDT, DAI, GHOST, USDG}

var assetIDs = map[Symbol]string{
	USDC:  "usd-coin",
	USDT:  "tether",
	DAI:   "dai",
	GHOST: "ghost-by-mcafee",
	USDG:  "usdg",
}

// maxSymbolDistance bounds how far a typed symbol may be from a tracked one.
const maxSymbolDistance = 2

// AssetID returns the upstream identifier used by the quote endpoint.
func (s Symbol) AssetID() string { return assetIDs[s] }

// Label is the upper-case display name.
func (s Symbol) Label() string { return strings.ToUpper(string(s)) }

func (s Symbol) Valid() bool {
	_, ok := assetIDs[s]
	return ok
}

// ParseSymbol resolves a symbol, label or upstream asset id. Small typos are
// tolerated as long as exactly one tracked coin is the closest match.
func ParseSymbol(raw string) (Symbol, error) {
	in := strings.ToLower(strings.TrimSpace(raw))
	if in == "" {
		return "", fmt.Errorf("empty symbol")
	}
	for _, s := range Tracked {
		if in == string(s) || in == s.AssetID() {
			return s, nil
		}
	}

	best, bestDist, tie := Symbol(""), maxSymbolDistance+1, false
	for _, s := range Tracked {
		d := min(levenshtein.ComputeDistance(in, string(s)), levenshtein.ComputeDistance(in, s.AssetID()))
		switch {
		case d < bestDist:
			best, bestDist, tie = s, d, false
		case d == bestDist && s != best:
			tie = true
		}
	}
	if best == "" || tie {
		return "", fmt.Errorf("unknown symbol %q", raw)
	}
	return best, nil
}

// Next returns the tracked symbol after s, wrapping around.
func (s Symbol) Next() Symbol { return s.offset(1) }

// Prev returns the tracked symbol before s, wrapping around.
func (s Symbol) Prev() Symbol { return s.offset(-1) }

func (s Symbol) offset(step int) Symbol {
	n := len(Tracked)
	for i, t := range Tracked {
		if t == s {
			return Tracked[((i+step)%n+n)%n]
		}
	}
	return Tracked[0]
}
