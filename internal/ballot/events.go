package ballot

import (
	"github.com/zhulik/ballotbox/internal/core"
)

const (
	EventOrderChanged  = "ORDER_CHANGED"
	EventLoadSucceeded = "LOAD_SUCCEEDED"
	EventLoadFailed    = "LOAD_FAILED"
)

type Event interface {
	Type() string
}

// OrderChanged replaces both lists at once.
type OrderChanged struct {
	Unranked []core.Candidate
	Ranked   []core.Candidate
}

func (OrderChanged) Type() string { return EventOrderChanged }

// LoadSucceeded and LoadFailed are produced by the machine when the initial
// fetch completes. Machine.Send rejects them.
type LoadSucceeded struct {
	Candidates []core.Candidate
}

func (LoadSucceeded) Type() string { return EventLoadSucceeded }

type LoadFailed struct {
	Err error
}

func (LoadFailed) Type() string { return EventLoadFailed }

func isContinuation(event Event) bool {
	switch event.(type) {
	case LoadSucceeded, LoadFailed:
		return true
	default:
		return false
	}
}
