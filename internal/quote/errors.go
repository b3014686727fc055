package quote

import (
	"errors"
	"fmt"
)

// ErrFetchFailure matches every failed fetch regardless of cause.
var ErrFetchFailure = errors.New("quote fetch failed")

// ErrCycleInFlight is returned when a cycle is requested while another one
// has not completed yet.
var ErrCycleInFlight = errors.New("fetch cycle already in flight")

// Fetch failure stages.
const (
	StageRequest   = "request"
	StageTransport = "transport"
	StageStatus    = "status"
	StageDecode    = "decode"
)

// FetchError describes why a fetch failed. Status is set only for StageStatus.
type FetchError struct {
	Provider string
	Stage    string
	Status   int
	Err      error
}

func (e *FetchError) Error() string {
	if e.Stage == StageStatus {
		return fmt.Sprintf("%s: http %d", e.Provider, e.Status)
	}
	return fmt.Sprintf("%s: %s: %v", e.Provider, e.Stage, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Is(target error) bool { return target == ErrFetchFailure }
