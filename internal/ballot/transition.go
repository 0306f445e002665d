package ballot

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/looplab/fsm"
	"github.com/zhulik/ballotbox/internal/core"
)

var statechart = fsm.Events{ //nolint:gochecknoglobals
	{Name: EventLoadSucceeded, Src: []string{string(StatusLoading)}, Dst: string(StatusVoting)},
	{Name: EventLoadFailed, Src: []string{string(StatusLoading)}, Dst: string(StatusLoadingFailed)},
	{Name: EventOrderChanged, Src: []string{string(StatusVoting)}, Dst: string(StatusVoting)},
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

// Transition computes the state that follows event. On error the given
// state is returned unchanged.
func Transition(state State, event Event) (State, error) {
	status, err := nextStatus(state.Status, event.Type())
	if err != nil {
		return state, err
	}

	next := state.clone()
	next.Status = status

	switch event := event.(type) {
	case LoadSucceeded:
		next.Unranked = slices.Clone(event.Candidates)
		next.Ranked = []core.Candidate{}

	case LoadFailed:
		next.Err = event.Err

	case OrderChanged:
		before := core.CandidateIDs(state.Unranked, state.Ranked)
		after := core.CandidateIDs(event.Unranked, event.Ranked)

		if !core.SameCandidateSet(before, after) {
			return state, core.ErrPartitionMismatch
		}

		next.Unranked = slices.Clone(event.Unranked)
		next.Ranked = slices.Clone(event.Ranked)
	}

	return next, nil
}
