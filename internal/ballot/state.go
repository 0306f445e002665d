package ballot

import (
	"slices"

	"github.com/zhulik/ballotbox/internal/core"
)

type Status string

const (
	StatusLoading       Status = "loading"
	StatusVoting        Status = "voting"
	StatusLoadingFailed Status = "loading-failed"
)

// State is the voter's working set. Unranked and Ranked partition the
// candidates of the election once loaded; both are empty before that.
type State struct {
	ElectionID string
	Status     Status

	Unranked []core.Candidate
	Ranked   []core.Candidate

	// Err is set in StatusLoadingFailed.
	Err error
}

func (s State) List(id core.ListID) ([]core.Candidate, bool) {
	switch id {
	case core.ListUnranked:
		return s.Unranked, true
	case core.ListRanked:
		return s.Ranked, true
	default:
		return nil, false
	}
}

func (s State) clone() State {
	s.Unranked = slices.Clone(s.Unranked)
	s.Ranked = slices.Clone(s.Ranked)

	return s
}
