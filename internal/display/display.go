// Package display turns published price state into rows ready to render.
package display

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/jask/pegwatch/internal/quote"
)

// Class is the highlight applied to a price, keyed by its direction.
type Class string

const (
	ClassPositive Class = "positive"
	ClassNegative Class = "negative"
	ClassNeutral  Class = "neutral"
)

// Banner lines shown while the error flag is set.
var Banner = []string{
	"Oops! Too many requests!",
	"This could take a few minutes.",
}

type Row struct {
	Symbol    quote.Symbol
	Label     string
	Price     string
	Change    string
	Direction quote.Direction
	Class     Class
}

// Rows lists every tracked coin ordered by label.
func Rows(snap quote.Snapshot) []Row {
	symbols := append([]quote.Symbol(nil), quote.Tracked...)
	sort.Slice(symbols, func(i, j int) bool { return symbols[i].Label() < symbols[j].Label() })

	rows := make([]Row, 0, len(symbols))
	for _, s := range symbols {
		dir := snap.Directions[s]
		if dir == "" {
			dir = quote.Same
		}
		price := "--"
		if snap.Fetched() {
			price = FormatPrice(snap.Prices[s])
		}
		rows = append(rows, Row{
			Symbol:    s,
			Label:     s.Label(),
			Price:     price,
			Change:    FormatChange(snap.Changes[s]),
			Direction: dir,
			Class:     ClassFor(dir),
		})
	}
	return rows
}

func ClassFor(d quote.Direction) Class {
	switch d {
	case quote.Up:
		return ClassPositive
	case quote.Down:
		return ClassNegative
	default:
		return ClassNeutral
	}
}

// FormatPrice prints the shortest representation of the price in USD.
func FormatPrice(p float64) string {
	return strconv.FormatFloat(p, 'f', -1, 64) + " USD"
}

// FormatChange prints e.g. +2.45% or -1.23%.
func FormatChange(c float64) string {
	sign := ""
	if c > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, c)
}

// BannerLines returns the banner exactly when failed is set.
func BannerLines(failed bool) []string {
	if !failed {
		return nil
	}
	return append([]string(nil), Banner...)
}
