package tui

import "github.com/jask/pegwatch/internal/quote"

// pollTickMsg fires once per poll interval. id ties it to the poll
// generation that scheduled it, so ticks from before Stop are dropped.
type pollTickMsg struct{ id int }

type cycleDoneMsg struct {
	snap quote.Snapshot
	err  error
}

type spinFrameMsg struct{ id int }

type spinDoneMsg struct{ id int }
