package main

import (
	"context"
	"fmt"
	"io"

	"github.com/jask/pegwatch/internal/display"
	"github.com/jask/pegwatch/internal/quote"
	"github.com/jask/pegwatch/widgets"
)

const plainWidth = 60

func runPlain(ctx context.Context, w io.Writer, poller *quote.Poller) {
	poller.Run(ctx, func(snap quote.Snapshot, err error) {
		writeCycle(w, snap, err)
	})
}

// writeCycle prints one poll result. A failed cycle prints the banner
// followed by the prices still on display.
func writeCycle(w io.Writer, snap quote.Snapshot, err error) {
	if lines := display.BannerLines(err != nil); lines != nil {
		for _, l := range lines {
			fmt.Fprintln(w, l)
		}
	}
	rows := display.Rows(snap)
	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Label, r.Price, r.Change, string(r.Direction)})
	}
	fmt.Fprintln(w, widgets.Table{Rows: cells, Align: []bool{false, true, true, false}}.Render(plainWidth, 0))
	if snap.Fetched() {
		fmt.Fprintf(w, "updated %s\n", snap.FetchedAt.Format("15:04:05"))
	}
	fmt.Fprintln(w)
}
