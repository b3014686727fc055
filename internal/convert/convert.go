// Package convert computes cross rates between tracked coins using the most
// recently published prices.
package convert

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jask/pegwatch/internal/quote"
)

// State is the converter form. Polling never touches it.
type State struct {
	Amount float64
	From   quote.Symbol
	To     quote.Symbol
	Result *float64
}

func NewState(from, to quote.Symbol) State {
	return State{From: from, To: to}
}

// ParseAmount reads user input. Anything that is not a finite number is 0;
// negative values are accepted as typed.
func ParseAmount(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Convert returns amount expressed in to, priced through USD. It reports
// false when either price is zero.
func Convert(prices quote.PriceSnapshot, amount float64, from, to quote.Symbol) (float64, bool) {
	src, dst := prices[from], prices[to]
	if src == 0 || dst == 0 {
		return 0, false
	}
	return amount / src * dst, true
}

// Apply computes and publishes a new result. When the prices cannot support
// a conversion the previous result is kept.
func (s *State) Apply(prices quote.PriceSnapshot) bool {
	v, ok := Convert(prices, s.Amount, s.From, s.To)
	if !ok {
		return false
	}
	s.Result = &v
	return true
}

// ResultText formats the last result with four decimals, or "" when none.
func (s State) ResultText() string {
	if s.Result == nil {
		return ""
	}
	return fmt.Sprintf("%.4f %s", *s.Result, s.To.Label())
}
