package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/wheel"
	"github.com/jask/pegwatch/widgets"
)

const frameInterval = 50 * time.Millisecond

// WheelModel animates a prize wheel. It shares nothing with the price widget.
type WheelModel struct {
	wheel    *wheel.Wheel
	keys     *core.KeyRegistry
	dark     bool
	styles   core.Styles
	now      func() time.Time
	started  time.Time
	angle    float64
	quitting bool
}

func NewWheelModel(w *wheel.Wheel, keys *core.KeyRegistry, dark bool) *WheelModel {
	return &WheelModel{
		wheel:  w,
		keys:   keys,
		dark:   dark,
		styles: core.NewStyles(dark),
		now:    time.Now,
		angle:  w.Resting(),
	}
}

func (m *WheelModel) Init() tea.Cmd { return nil }

func (m *WheelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.ActionFor(msg, core.ScopeWheel) {
		case core.ActionQuit:
			m.quitting = true
			return m, tea.Quit
		case core.ActionToggleTheme:
			m.dark = !m.dark
			m.styles = core.NewStyles(m.dark)
		case core.ActionSpin:
			return m, m.spin()
		}
	case spinFrameMsg:
		if m.wheel.State() != wheel.Spinning || msg.id != m.wheel.Current().ID {
			return m, nil
		}
		m.angle = m.wheel.Angle(m.now().Sub(m.started))
		return m, frame(msg.id)
	case spinDoneMsg:
		if _, ok := m.wheel.Settle(msg.id); ok {
			m.angle = m.wheel.Resting()
		}
	}
	return m, nil
}

func (m *WheelModel) spin() tea.Cmd {
	s, ok := m.wheel.Spin()
	if !ok {
		return nil
	}
	m.started = m.now()
	id := s.ID
	return tea.Batch(
		frame(id),
		tea.Tick(m.wheel.Duration(), func(time.Time) tea.Msg { return spinDoneMsg{id: id} }),
	)
}

func frame(id int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return spinFrameMsg{id: id} })
}

func (m *WheelModel) View() string {
	if m.quitting {
		return ""
	}
	st := m.styles
	layout := m.wheel.Layout()
	pointer := wheel.PointerIndex(m.angle, len(layout))

	rows := make([][]string, 0, len(layout))
	for i, seg := range layout {
		bg := st.Palette.SegmentA
		if seg.Alternate {
			bg = st.Palette.SegmentB
		}
		cell := lipgloss.NewStyle().Background(bg).Foreground(st.Palette.Base).Padding(0, 1).Render(seg.Label)
		marker := "  "
		if i == pointer {
			marker = st.Key.Render("▶ ")
		}
		rows = append(rows, []string{marker + cell, st.Muted.Render(fmt.Sprintf("%3.0f°", seg.Angle))})
	}

	button := st.Button.Render("Spin")
	if m.wheel.State() == wheel.Spinning {
		button = st.Muted.Render("Spinning...")
	}

	lines := []string{
		st.Title.Render("Prize Wheel"),
		"",
		widgets.Table{Rows: rows, Align: []bool{false, true}}.Render(40, 0),
		"",
		st.Muted.Render(fmt.Sprintf("rotation %.0f°", m.angle)),
		button,
	}
	if result, ok := m.wheel.Result(); ok {
		lines = append(lines, "", st.Result.Render("Result: "+result))
	}
	lines = append(lines, "", helpLine(st, m.keys.HelpPairs(core.ScopeWheel)))
	return st.App.Render(strings.Join(lines, "\n"))
}
