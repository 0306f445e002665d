package draft

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/core"
)

type Effect int

const (
	EffectNone Effect = iota
	EffectSubmit
	EffectNotifyCreated
)

var statechart = fsm.Events{ //nolint:gochecknoglobals
	{Name: EventNameChanged, Src: []string{string(StatusEditing)}, Dst: string(StatusEditing)},
	{Name: EventDescriptionChanged, Src: []string{string(StatusEditing)}, Dst: string(StatusEditing)},
	{Name: EventCandidateAdded, Src: []string{string(StatusEditing)}, Dst: string(StatusEditing)},
	{Name: EventCandidateRemoved, Src: []string{string(StatusEditing)}, Dst: string(StatusEditing)},
	{Name: EventElectionStarted, Src: []string{string(StatusEditing)}, Dst: string(StatusSubmitting)},
	{Name: EventSubmissionSucceeded, Src: []string{string(StatusSubmitting)}, Dst: string(StatusCreated)},
	{Name: EventSubmissionFailed, Src: []string{string(StatusSubmitting)}, Dst: string(StatusEditing)},
}

func nextStatus(from Status, event string) (Status, error) {
	machine := fsm.NewFSM(string(from), statechart, fsm.Callbacks{})

	err := machine.Event(context.Background(), event)
	if err != nil {
		var noTransition fsm.NoTransitionError
		if !errors.As(err, &noTransition) {
			return from, fmt.Errorf("%w: %s in %s", core.ErrEventRejected, event, from)
		}
	}

	return Status(machine.Current()), nil
}

// Transition computes the state that follows event. It never performs I/O; the
// returned Effect tells the caller which side effect the new state requires.
// On error the given state is returned unchanged.
func Transition(state State, event Event) (State, Effect, error) { //nolint:cyclop
	status, err := nextStatus(state.Status, event.Type())
	if err != nil {
		return state, EffectNone, err
	}

	next := state.clone()
	next.Status = status

	switch event := event.(type) {
	case NameChanged:
		next.Draft.Name = event.Name

	case DescriptionChanged:
		next.Draft.Description = event.Description

	case CandidateAdded:
		exists := lo.ContainsBy(next.Draft.Candidates, func(c core.Candidate) bool { return c.ID == event.ID })
		if exists {
			return state, EffectNone, fmt.Errorf("%w: %s", core.ErrDuplicateCandidate, event.ID)
		}

		next.Draft.Candidates = append(next.Draft.Candidates, core.Candidate{
			ID:          event.ID,
			Name:        event.Name,
			Description: event.Description,
		})

	case CandidateRemoved:
		next.Draft.Candidates = lo.Reject(next.Draft.Candidates, func(c core.Candidate, _ int) bool {
			return c.ID == event.ID
		})

	case ElectionStarted:
		next.LastError = nil

		return next, EffectSubmit, nil

	case SubmissionSucceeded:
		next.ElectionID = event.ElectionID

		return next, EffectNotifyCreated, nil

	case SubmissionFailed:
		next.LastError = event.Err
	}

	return next, EffectNone, nil
}
