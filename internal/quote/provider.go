package quote

import "context"

// Provider returns the current quotes for every tracked symbol.
type Provider interface {
	Fetch(ctx context.Context) (Quotes, error)
	Name() string
}
