package widgets

import "strings"

// Widget renders itself into the given cell budget. A height of 0 means
// "as tall as the content needs".
type Widget interface {
	Render(width, height int) string
}

// VStack renders widgets top to bottom separated by Spacing blank lines.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets))
	for _, w := range v.Widgets {
		if w == nil {
			continue
		}
		if s := w.Render(width, 0); s != "" {
			parts = append(parts, s)
		}
	}
	out := strings.Join(parts, strings.Repeat("\n", v.Spacing+1))
	if height > 0 {
		lines := strings.Split(out, "\n")
		if len(lines) > height {
			out = strings.Join(lines[:height], "\n")
		}
	}
	return out
}

// Text is a pre-rendered block.
type Text string

func (t Text) Render(width, height int) string { return string(t) }
