package tui

import (
	"context"
	"errors"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/quote"
)

type stubProvider struct {
	mu      sync.Mutex
	results []stubResult
	calls   int
}

type stubResult struct {
	quotes quote.Quotes
	err    error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Fetch(ctx context.Context) (quote.Quotes, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.results[min(s.calls, len(s.results)-1)]
	s.calls++
	return r.quotes, r.err
}

var errUpstream = errors.New("429 too many requests")

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestWidget(results ...stubResult) (*PriceWidget, *stubProvider) {
	prov := &stubProvider{results: results}
	poller := quote.NewPoller(prov, nil, quote.DefaultInterval)
	keys := core.NewKeyRegistry(core.DefaultKeyBindings())
	return NewPriceWidget(context.Background(), poller, keys, nil, quote.USDC, quote.USDT), prov
}

// runCycle starts a cycle the way a tick would and feeds its result back.
func runCycle(w *PriceWidget) {
	cmd := w.startCycle()
	if cmd == nil {
		return
	}
	w.Update(cmd())
}

// finishCycle completes the cycle already marked in flight, as its command would.
func finishCycle(w *PriceWidget) {
	snap, err := w.poller.Cycle(w.ctx)
	w.Update(cycleDoneMsg{snap: snap, err: err})
}
