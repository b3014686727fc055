package core

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Palette Palette

	App      lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Positive lipgloss.Style
	Negative lipgloss.Style
	Neutral  lipgloss.Style
	Banner   lipgloss.Style
	Result   lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style
	Key      lipgloss.Style
	HelpDesc lipgloss.Style
}

func NewStyles(dark bool) Styles {
	p := PaletteFor(dark)
	return Styles{
		Palette: p,

		App:      lipgloss.NewStyle().Foreground(p.Text).Background(p.Base).Padding(1, 2),
		Title:    lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(p.Muted),
		Positive: lipgloss.NewStyle().Foreground(p.Positive),
		Negative: lipgloss.NewStyle().Foreground(p.Negative),
		Neutral:  lipgloss.NewStyle().Foreground(p.Text),
		Banner: lipgloss.NewStyle().
			Foreground(p.Negative).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Negative).
			Padding(0, 1),
		Result: lipgloss.NewStyle().
			Foreground(p.Positive).
			Background(p.Surface).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(p.Base).
			Background(p.Accent).
			Padding(0, 1),
		Focused:  lipgloss.NewStyle().Foreground(p.Accent).Underline(true),
		Key:      lipgloss.NewStyle().Foreground(p.Accent).Bold(true),
		HelpDesc: lipgloss.NewStyle().Foreground(p.Muted),
	}
}

// PriceStyle picks the highlight for a display class name.
func (s Styles) PriceStyle(class string) lipgloss.Style {
	switch class {
	case "positive":
		return s.Positive
	case "negative":
		return s.Negative
	default:
		return s.Neutral
	}
}
