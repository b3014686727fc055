package core

import "github.com/charmbracelet/lipgloss"

// Palette is the set of semantic colors one display mode uses.
type Palette struct {
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Base     lipgloss.Color
	Surface  lipgloss.Color
	Accent   lipgloss.Color
	Positive lipgloss.Color
	Negative lipgloss.Color
	Warning  lipgloss.Color
	SegmentA lipgloss.Color
	SegmentB lipgloss.Color
}

// Catppuccin Mocha, https://catppuccin.com/palette
var DarkPalette = Palette{
	Text:     "#cdd6f4",
	Muted:    "#a6adc8",
	Border:   "#585b70",
	Base:     "#1e1e2e",
	Surface:  "#313244",
	Accent:   "#89b4fa",
	Positive: "#a6e3a1",
	Negative: "#f38ba8",
	Warning:  "#f9e2af",
	SegmentA: "#fab387",
	SegmentB: "#94e2d5",
}

// Catppuccin Latte
var LightPalette = Palette{
	Text:     "#4c4f69",
	Muted:    "#6c6f85",
	Border:   "#acb0be",
	Base:     "#eff1f5",
	Surface:  "#ccd0da",
	Accent:   "#1e66f5",
	Positive: "#40a02b",
	Negative: "#d20f39",
	Warning:  "#df8e1d",
	SegmentA: "#fe640b",
	SegmentB: "#179299",
}

func PaletteFor(dark bool) Palette {
	if dark {
		return DarkPalette
	}
	return LightPalette
}

// Colors returns every color of the palette, for validation.
func (p Palette) Colors() []lipgloss.Color {
	return []lipgloss.Color{
		p.Text, p.Muted, p.Border, p.Base, p.Surface, p.Accent,
		p.Positive, p.Negative, p.Warning, p.SegmentA, p.SegmentB,
	}
}
