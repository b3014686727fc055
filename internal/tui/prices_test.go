package tui

import (
	"strings"
	"testing"

	"github.com/jask/pegwatch/core"
	"github.com/jask/pegwatch/internal/quote"
)

func TestPriceWidgetPublishesCycles(t *testing.T) {
	w, _ := newTestWidget(
		stubResult{quotes: quote.Quotes{quote.USDC: {Price: 10}}},
		stubResult{quotes: quote.Quotes{quote.USDC: {Price: 12, Change24h: 1.5}}},
	)

	runCycle(w)
	if !w.Snapshot().Fetched() {
		t.Fatal("expected snapshot after first cycle")
	}
	runCycle(w)
	snap := w.Snapshot()
	if snap.Directions[quote.USDC] != quote.Up {
		t.Fatalf("direction = %q, want up", snap.Directions[quote.USDC])
	}
	for _, s := range quote.Tracked {
		if _, ok := snap.Prices[s]; !ok {
			t.Fatalf("missing price for %s", s)
		}
		if _, ok := snap.Directions[s]; !ok {
			t.Fatalf("missing direction for %s", s)
		}
	}
	view := w.View(core.NewStyles(false), 60)
	if !strings.Contains(view, "12 USD") || !strings.Contains(view, "+1.50%") {
		t.Fatalf("view missing price row:\n%s", view)
	}
}

func TestPriceWidgetInitFetchesAndSchedules(t *testing.T) {
	w, prov := newTestWidget(
		stubResult{quotes: quote.Quotes{quote.USDC: {Price: 10}}},
		stubResult{quotes: quote.Quotes{quote.USDC: {Price: 9}}},
	)

	if cmd := w.Init(); cmd == nil {
		t.Fatal("Init must return the first cycle and the tick schedule")
	}
	if !w.inFlight {
		t.Fatal("Init must start a cycle immediately")
	}
	finishCycle(w)
	if prov.calls != 1 || !w.Snapshot().Fetched() {
		t.Fatalf("calls = %d, fetched = %v after mount", prov.calls, w.Snapshot().Fetched())
	}

	if cmd := w.Update(pollTickMsg{id: w.pollID}); cmd == nil {
		t.Fatal("a current tick must start a cycle and reschedule")
	}
	if !w.inFlight {
		t.Fatal("tick must start a cycle")
	}
	if again := w.Update(pollTickMsg{id: w.pollID}); again == nil {
		t.Fatal("tick during a running cycle must still reschedule")
	}

	finishCycle(w)
	if prov.calls != 2 {
		t.Fatalf("provider calls = %d, want 2", prov.calls)
	}
	if got := w.Snapshot().Directions[quote.USDC]; got != quote.Down {
		t.Fatalf("direction = %q, want down", got)
	}
}

func TestPriceWidgetFailureKeepsSnapshotAndShowsBanner(t *testing.T) {
	w, _ := newTestWidget(
		stubResult{quotes: quote.Quotes{quote.DAI: {Price: 1.0001}}},
		stubResult{err: errUpstream},
		stubResult{quotes: quote.Quotes{quote.DAI: {Price: 0.9999}}},
	)

	runCycle(w)
	before := w.Snapshot()

	runCycle(w)
	if !w.Failed() {
		t.Fatal("expected error flag after failed cycle")
	}
	if w.Snapshot().Cycle != before.Cycle {
		t.Fatal("failed cycle must not replace the snapshot")
	}
	if view := w.View(core.NewStyles(true), 60); !strings.Contains(view, "Oops! Too many requests!") {
		t.Fatalf("expected banner in view:\n%s", view)
	}

	cmd := w.startCycle()
	if w.Failed() {
		t.Fatal("error flag must clear when the next cycle starts")
	}
	w.Update(cmd())
	if w.Failed() {
		t.Fatal("error flag must stay clear after a successful cycle")
	}
	if got := w.Snapshot().Directions[quote.DAI]; got != quote.Down {
		t.Fatalf("direction = %q, want down", got)
	}
	if view := w.View(core.NewStyles(true), 60); strings.Contains(view, "Oops!") {
		t.Fatalf("banner should be gone:\n%s", view)
	}
}

func TestPriceWidgetSkipsOverlappingCycle(t *testing.T) {
	w, prov := newTestWidget(stubResult{quotes: quote.Quotes{quote.USDC: {Price: 1}}})

	first := w.startCycle()
	if first == nil {
		t.Fatal("expected a cycle command")
	}
	if again := w.startCycle(); again != nil {
		t.Fatal("second cycle must not start while one is in flight")
	}
	w.Update(first())
	if prov.calls != 1 {
		t.Fatalf("provider calls = %d, want 1", prov.calls)
	}
}

func TestPriceWidgetStopIgnoresStaleTicks(t *testing.T) {
	w, prov := newTestWidget(stubResult{quotes: quote.Quotes{quote.USDC: {Price: 1}}})

	id := w.pollID
	if cmd := w.Update(pollTickMsg{id: id + 7}); cmd != nil {
		t.Fatal("tick from another generation must be ignored")
	}
	w.Stop()
	if cmd := w.Update(pollTickMsg{id: id}); cmd != nil {
		t.Fatal("tick after Stop must be ignored")
	}
	if cmd := w.startCycle(); cmd != nil {
		t.Fatal("no cycle may start after Stop")
	}
	if w.ctx.Err() == nil {
		t.Fatal("Stop must cancel in-flight requests")
	}
	if prov.calls != 0 {
		t.Fatalf("provider calls = %d, want 0", prov.calls)
	}
}

func TestPriceWidgetConverterFlow(t *testing.T) {
	w, _ := newTestWidget(stubResult{quotes: quote.Quotes{
		quote.USDC: {Price: 1.00},
		quote.USDT: {Price: 0.98},
	}})

	w.Update(keyMsg("c"))
	if w.Converter().Result != nil {
		t.Fatal("result must stay empty while prices are zero")
	}

	runCycle(w)
	w.Update(keyMsg("a"))
	if w.Scope() != core.ScopeAmount {
		t.Fatalf("scope = %q, want amount", w.Scope())
	}
	// clear the "0" placeholder value
	w.amount.SetValue("")
	for _, r := range "100" {
		w.Update(keyMsg(string(r)))
	}
	if got := w.Converter().Amount; got != 100 {
		t.Fatalf("amount = %v, want 100", got)
	}
	w.Update(keyMsg("enter"))
	if got := w.Converter().ResultText(); got != "98.0000 USDT" {
		t.Fatalf("result = %q, want 98.0000 USDT", got)
	}

	w.Update(keyMsg("esc"))
	if w.Scope() != core.ScopePrices {
		t.Fatalf("scope = %q, want prices", w.Scope())
	}
	if view := w.View(core.NewStyles(false), 60); !strings.Contains(view, "Result: 98.0000 USDT") {
		t.Fatalf("view missing result:\n%s", view)
	}
}

func TestPriceWidgetCoinSelection(t *testing.T) {
	w, _ := newTestWidget(stubResult{quotes: quote.Quotes{}})

	w.Update(keyMsg("f"))
	if w.Converter().From != quote.USDT {
		t.Fatalf("from = %q, want usdt", w.Converter().From)
	}
	w.Update(keyMsg("T"))
	if w.Converter().To != quote.USDC {
		t.Fatalf("to = %q, want usdc", w.Converter().To)
	}
	w.Update(keyMsg("s"))
	if w.Converter().From != quote.USDC || w.Converter().To != quote.USDT {
		t.Fatalf("swap = %s->%s", w.Converter().From, w.Converter().To)
	}
}

func TestPriceWidgetTypingLettersDoesNotTriggerActions(t *testing.T) {
	w, _ := newTestWidget(stubResult{quotes: quote.Quotes{}})
	w.Update(keyMsg("tab"))
	w.amount.SetValue("")
	w.Update(keyMsg("f"))
	if w.Converter().From != quote.USDC {
		t.Fatal("f while typing must not change the source coin")
	}
	if w.Converter().Amount != 0 {
		t.Fatalf("non-numeric amount = %v, want 0", w.Converter().Amount)
	}
}
