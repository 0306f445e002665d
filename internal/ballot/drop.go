package ballot

import (
	"fmt"

	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/transfer"
	"github.com/zhulik/ballotbox/pkg/utils"
)

// DragResult describes a finished drag gesture.
type DragResult struct {
	Source           core.ListID
	SourceIndex      int
	Destination      core.ListID
	DestinationIndex int
}

// OrderFor translates a drag gesture into the OrderChanged event it implies.
// The second return value is false when the gesture must be ignored.
func OrderFor(state State, drop DragResult) (OrderChanged, bool, error) { //nolint:cyclop
	if state.Status != StatusVoting {
		return OrderChanged{}, false, fmt.Errorf("%w: drop in %s", core.ErrEventRejected, state.Status)
	}

	source, ok := state.List(drop.Source)
	if !ok {
		return OrderChanged{}, false, fmt.Errorf("%w: unknown list %q", core.ErrInvalidInput, drop.Source)
	}

	destination, ok := state.List(drop.Destination)
	if !ok {
		return OrderChanged{}, false, fmt.Errorf("%w: unknown list %q", core.ErrInvalidInput, drop.Destination)
	}

	if drop.Source == drop.Destination {
		if drop.SourceIndex == drop.DestinationIndex {
			return OrderChanged{}, false, nil
		}

		if !transfer.InBounds(drop.SourceIndex, len(source)) || !transfer.InBounds(drop.DestinationIndex, len(source)) {
			return OrderChanged{}, false, outOfRange(drop)
		}

		reordered, err := utils.Try(func() ([]core.Candidate, error) {
			return transfer.Reorder(source, drop.SourceIndex, drop.DestinationIndex), nil
		})
		if err != nil {
			return OrderChanged{}, false, fmt.Errorf("%w: %w", core.ErrIndexOutOfRange, err)
		}

		return withList(state, drop.Source, reordered), true, nil
	}

	if !transfer.InBounds(drop.SourceIndex, len(source)) || !transfer.InBounds(drop.DestinationIndex, len(destination)+1) {
		return OrderChanged{}, false, outOfRange(drop)
	}

	from, to, err := utils.Try2(func() ([]core.Candidate, []core.Candidate) {
		return transfer.Move(source, destination, drop.SourceIndex, drop.DestinationIndex)
	})
	if err != nil {
		return OrderChanged{}, false, fmt.Errorf("%w: %w", core.ErrIndexOutOfRange, err)
	}

	event := withList(state, drop.Source, from)
	state.Unranked, state.Ranked = event.Unranked, event.Ranked

	return withList(state, drop.Destination, to), true, nil
}

func withList(state State, id core.ListID, list []core.Candidate) OrderChanged {
	event := OrderChanged{
		Unranked: state.Unranked,
		Ranked:   state.Ranked,
	}

	if id == core.ListUnranked {
		event.Unranked = list
	} else {
		event.Ranked = list
	}

	return event
}

func outOfRange(drop DragResult) error {
	return fmt.Errorf("%w: %s[%d] -> %s[%d]",
		core.ErrIndexOutOfRange, drop.Source, drop.SourceIndex, drop.Destination, drop.DestinationIndex)
}
