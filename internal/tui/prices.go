package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/convert"
	"github.com/jask/pegwatch/internal/display"
	"github.com/jask/pegwatch/internal/quote"
	"github.com/jask/pegwatch/widgets"
)

// PriceWidget shows the tracked prices and the converter form. It owns the
// poll schedule: one cycle on Init, then one per interval until Stop.
type PriceWidget struct {
	ctx    context.Context
	cancel context.CancelFunc
	poller *quote.Poller
	keys   *core.KeyRegistry
	log    *zap.Logger

	snap     quote.Snapshot
	failed   bool
	inFlight bool
	pollID   int
	stopped  bool

	conv    convert.State
	amount  textinput.Model
	editing bool
}

func NewPriceWidget(ctx context.Context, poller *quote.Poller, keys *core.KeyRegistry, log *zap.Logger, from, to quote.Symbol) *PriceWidget {
	if log == nil {
		log = zap.NewNop()
	}
	ctx, cancel := context.WithCancel(ctx)

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Enter amount"
	ti.CharLimit = 32
	ti.Width = 16
	ti.SetValue("0")

	return &PriceWidget{
		ctx:    ctx,
		cancel: cancel,
		poller: poller,
		keys:   keys,
		log:    log,
		snap:   poller.Tracker().Snapshot(),
		conv:   convert.NewState(from, to),
		amount: ti,
	}
}

func (w *PriceWidget) Init() tea.Cmd {
	return tea.Batch(w.startCycle(), w.scheduleTick())
}

// Stop cancels the schedule and any in-flight request. Ticks already queued
// are ignored once they arrive.
func (w *PriceWidget) Stop() {
	if w.stopped {
		return
	}
	w.stopped = true
	w.pollID++
	w.cancel()
}

func (w *PriceWidget) Scope() string {
	if w.editing {
		return core.ScopeAmount
	}
	return core.ScopePrices
}

func (w *PriceWidget) Snapshot() quote.Snapshot { return w.snap }

func (w *PriceWidget) Failed() bool { return w.failed }

func (w *PriceWidget) Converter() convert.State { return w.conv }

func (w *PriceWidget) startCycle() tea.Cmd {
	if w.stopped || w.inFlight {
		return nil
	}
	w.inFlight = true
	w.failed = false
	ctx, poller := w.ctx, w.poller
	return func() tea.Msg {
		snap, err := poller.Cycle(ctx)
		return cycleDoneMsg{snap: snap, err: err}
	}
}

func (w *PriceWidget) scheduleTick() tea.Cmd {
	if w.stopped {
		return nil
	}
	id := w.pollID
	return tea.Tick(w.poller.Interval(), func(time.Time) tea.Msg {
		return pollTickMsg{id: id}
	})
}

func (w *PriceWidget) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case pollTickMsg:
		if m.id != w.pollID || w.stopped {
			return nil
		}
		return tea.Batch(w.startCycle(), w.scheduleTick())
	case cycleDoneMsg:
		w.inFlight = false
		switch {
		case errors.Is(m.err, quote.ErrCycleInFlight):
		case m.err != nil:
			w.failed = true
		default:
			w.snap = m.snap
			w.failed = false
		}
		return nil
	case tea.KeyMsg:
		return w.HandleKey(m)
	}
	if w.editing {
		var cmd tea.Cmd
		w.amount, cmd = w.amount.Update(msg)
		return cmd
	}
	return nil
}

func (w *PriceWidget) HandleKey(msg tea.KeyMsg) tea.Cmd {
	switch w.keys.ActionFor(msg, w.Scope()) {
	case core.ActionRefresh:
		return w.startCycle()
	case core.ActionFocusAmount:
		w.editing = true
		return w.amount.Focus()
	case core.ActionBlur:
		w.editing = false
		w.amount.Blur()
		return nil
	case core.ActionConvert:
		w.convertNow()
		return nil
	case core.ActionFromNext:
		w.conv.From = w.conv.From.Next()
		return nil
	case core.ActionFromPrev:
		w.conv.From = w.conv.From.Prev()
		return nil
	case core.ActionToNext:
		w.conv.To = w.conv.To.Next()
		return nil
	case core.ActionToPrev:
		w.conv.To = w.conv.To.Prev()
		return nil
	case core.ActionSwap:
		w.conv.From, w.conv.To = w.conv.To, w.conv.From
		return nil
	}
	if !w.editing {
		return nil
	}
	var cmd tea.Cmd
	w.amount, cmd = w.amount.Update(msg)
	w.conv.Amount = convert.ParseAmount(w.amount.Value())
	return cmd
}

func (w *PriceWidget) convertNow() {
	w.conv.Amount = convert.ParseAmount(w.amount.Value())
	if !w.conv.Apply(w.snap.Prices) {
		w.log.Debug("conversion skipped, missing price",
			zap.String("from", string(w.conv.From)),
			zap.String("to", string(w.conv.To)))
	}
}

func (w *PriceWidget) View(st core.Styles, width int) string {
	parts := []widgets.Widget{}
	if lines := display.BannerLines(w.failed); lines != nil {
		parts = append(parts, widgets.Text(st.Banner.Render(strings.Join([]string{
			st.Negative.Bold(true).Render(lines[0]),
			st.Negative.Render(lines[1]),
		}, "\n"))))
	}
	parts = append(parts, widgets.Box{
		Title:      "Stablecoin Prices",
		TitleStyle: st.Title,
		Content:    w.pricesTable(st).Render(width-4, 0) + "\n" + w.statusLine(st),
		Border:     st.Palette.Border,
	})
	parts = append(parts, widgets.Box{
		Title:      "Stablecoin Converter",
		TitleStyle: st.Title,
		Content:    w.converterView(st),
		Border:     st.Palette.Border,
	})
	return widgets.VStack{Widgets: parts}.Render(width, 0)
}

func (w *PriceWidget) pricesTable(st core.Styles) widgets.Table {
	rows := display.Rows(w.snap)
	cells := make([][]string, 0, len(rows)*2)
	for _, r := range rows {
		cells = append(cells,
			[]string{r.Label + ":", st.PriceStyle(string(r.Class)).Render(r.Price)},
			[]string{st.Muted.Render("24h Change:"), st.Muted.Render(r.Change)},
		)
	}
	return widgets.Table{Rows: cells, Align: []bool{false, true}}
}

func (w *PriceWidget) statusLine(st core.Styles) string {
	switch {
	case w.inFlight && !w.snap.Fetched():
		return st.Muted.Render("loading…")
	case w.snap.Fetched():
		return st.Muted.Render("updated " + w.snap.FetchedAt.Format("15:04:05"))
	default:
		return st.Muted.Render("waiting for first quote")
	}
}

func (w *PriceWidget) converterView(st core.Styles) string {
	amount := w.amount.View()
	label := "Amount"
	if w.editing {
		label = st.Focused.Render(label)
	}
	form := widgets.Table{Rows: [][]string{
		{label, amount},
		{"From", "‹ " + w.conv.From.Label() + " ›"},
		{"To", "‹ " + w.conv.To.Label() + " ›"},
	}}
	out := form.Render(40, 0) + "\n\n" + st.Button.Render("Convert")
	if text := w.conv.ResultText(); text != "" {
		out += "\n\n" + st.Result.Render("Result: "+text)
	}
	return out
}
