package widgets

import "github.com/charmbracelet/lipgloss"

// Box draws Content inside a rounded border with an optional title line.
type Box struct {
	Title      string
	Content    string
	Border     lipgloss.Color
	TitleStyle lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width <= 4 {
		return ""
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(b.Border).
		Padding(0, 1).
		Width(width - 2)
	if height > 0 {
		style = style.Height(max(1, height-2))
	}
	body := b.Content
	if b.Title != "" {
		body = b.TitleStyle.Render(b.Title) + "\n" + body
	}
	return style.Render(body)
}
