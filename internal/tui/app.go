package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pegwatch/core"
)

// App is the root view: it owns the display mode and mounts the price widget.
type App struct {
	prices   *PriceWidget
	keys     *core.KeyRegistry
	dark     bool
	styles   core.Styles
	width    int
	height   int
	quitting bool
}

func New(prices *PriceWidget, keys *core.KeyRegistry, dark bool) *App {
	return &App{
		prices: prices,
		keys:   keys,
		dark:   dark,
		styles: core.NewStyles(dark),
		width:  64,
	}
}

func (a *App) Init() tea.Cmd {
	return a.prices.Init()
}

func (a *App) Dark() bool { return a.dark }

func (a *App) ToggleDark() {
	a.dark = !a.dark
	a.styles = core.NewStyles(a.dark)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil
	case tea.KeyMsg:
		switch a.keys.ActionFor(m, a.prices.Scope()) {
		case core.ActionQuit:
			a.prices.Stop()
			a.quitting = true
			return a, tea.Quit
		case core.ActionToggleTheme:
			a.ToggleDark()
			return a, nil
		}
	}
	return a, a.prices.Update(msg)
}

func (a *App) View() string {
	if a.quitting {
		return ""
	}
	st := a.styles
	inner := max(24, min(a.width, 72)-4)

	mode := "Dark"
	if a.dark {
		mode = "Light"
	}
	header := st.Button.Render("Toggle "+mode+" Mode") + " " + st.HelpDesc.Render("(m)")

	body := lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		a.prices.View(st, inner),
		"",
		helpLine(st, a.keys.HelpPairs(a.prices.Scope())),
	)
	out := st.App.Render(body)
	if a.width > 0 && a.height > 0 {
		out = lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, out,
			lipgloss.WithWhitespaceBackground(st.Palette.Base))
	}
	return out
}

func helpLine(st core.Styles, pairs [][2]string) string {
	items := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := p[0]
		if key == " " {
			key = "space"
		}
		items = append(items, st.Key.Render(key)+" "+st.HelpDesc.Render(p[1]))
	}
	return strings.Join(items, "  ")
}
