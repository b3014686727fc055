package quote

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSymbol(t *testing.T) {
	cases := map[string]Symbol{
		"usdc":            USDC,
		" USDT ":          USDT,
		"Dai":             DAI,
		"ghost-by-mcafee": GHOST,
		"usd-coin":        USDC,
		"tether":          USDT,
		"gost":            GHOST,
		"teher":           USDT,
	}
	for in, want := range cases {
		got, err := ParseSymbol(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseSymbolRejects(t *testing.T) {
	for _, in := range []string{"", "bitcoin", "usd"} {
		_, err := ParseSymbol(in)
		require.Error(t, err, in)
	}
}

func TestSymbolCycling(t *testing.T) {
	require.Equal(t, USDT, USDC.Next())
	require.Equal(t, USDC, USDG.Next())
	require.Equal(t, USDG, USDC.Prev())
	require.Equal(t, "GHOST", GHOST.Label())
	require.Equal(t, "ghost-by-mcafee", GHOST.AssetID())
	require.False(t, Symbol("btc").Valid())
}
