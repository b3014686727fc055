package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table aligns pre-styled cells into columns. Align holds one entry per
// column; true right-aligns it.
type Table struct {
	Rows  [][]string
	Align []bool
	Gap   int
}

func (t Table) Render(width, height int) string {
	if width <= 0 || len(t.Rows) == 0 {
		return ""
	}
	gap := t.Gap
	if gap <= 0 {
		gap = 2
	}
	cols := 0
	for _, r := range t.Rows {
		cols = max(cols, len(r))
	}
	widths := make([]int, cols)
	for _, r := range t.Rows {
		for i, cell := range r {
			widths[i] = max(widths[i], ansi.StringWidth(cell))
		}
	}

	lines := make([]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		var b strings.Builder
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			pad := strings.Repeat(" ", widths[i]-ansi.StringWidth(cell))
			if i < len(t.Align) && t.Align[i] {
				b.WriteString(pad + cell)
			} else {
				b.WriteString(cell + pad)
			}
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		lines = append(lines, ansi.Truncate(strings.TrimRight(b.String(), " "), width, "…"))
		if height > 0 && len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}
