package draft

import (
	"slices"

	"github.com/zhulik/ballotbox/internal/core"
)

type Status string

const (
	StatusEditing    Status = "editing"
	StatusSubmitting Status = "submitting"
	StatusCreated    Status = "created"
)

// Draft is an election that has not been submitted yet. ID is generated once
// and stays stable for the lifetime of the draft.
type Draft struct {
	ID          string
	Name        string
	Description string
	Candidates  []core.Candidate
}

func (d Draft) clone() Draft {
	d.Candidates = slices.Clone(d.Candidates)

	return d
}

type State struct {
	Status Status
	Draft  Draft

	// ElectionID is set once the machine reaches StatusCreated.
	ElectionID string
	// LastError holds the failure of the latest submission attempt, if any.
	LastError error
}

func (s State) InFlight() bool {
	return s.Status == StatusSubmitting
}

func (s State) clone() State {
	s.Draft = s.Draft.clone()

	return s
}
