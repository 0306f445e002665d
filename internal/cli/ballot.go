package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/ballot"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/iter"
	"github.com/zhulik/ballotbox/pkg/json"
)

const moveParts = 4

type ballotOutput struct {
	ElectionID string   `json:"electionId"`
	Ranked     []string `json:"ranked"`
	Unranked   []string `json:"unranked"`
}

var ballotCMD = &cli.Command{
	Name:     "ballot",
	Aliases:  []string{"b"},
	Usage:    "Load an election's candidates and rank them with drag moves.",
	Category: "User",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     flags.FlagNameElectionID,
			Aliases:  []string{"e"},
			Usage:    "Election `ID`",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    flags.FlagNameMove,
			Aliases: []string{"m"},
			Usage:   "Apply a drag as `SOURCE:INDEX:DESTINATION:INDEX`, eg unranked:0:ranked:0",
		},
	}, flags.ForClient...),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		drops, err := parseMoves(cmd.StringSlice(flags.FlagNameMove))
		if err != nil {
			return err
		}

		injector := initDI(cmd)
		defer injector.Shutdown() //nolint:errcheck

		machine, err := ballot.New(injector, cmd.String(flags.FlagNameElectionID))
		if err != nil {
			return err //nolint:wrapcheck
		}
		defer machine.Stop()

		machine.Start(ctx)
		machine.Wait()

		if state := machine.State(); state.Status != ballot.StatusVoting {
			return fmt.Errorf("failed to load ballot: %w", state.Err)
		}

		for _, drop := range drops {
			_, err := machine.Drop(ctx, drop)
			if err != nil {
				return fmt.Errorf("failed to apply move: %w", err)
			}
		}

		state := machine.State()

		output, err := json.MarshalIndent(ballotOutput{
			ElectionID: state.ElectionID,
			Ranked:     core.CandidateIDs(state.Ranked),
			Unranked:   core.CandidateIDs(state.Unranked),
		}, "", "  ")
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, err = fmt.Fprintln(os.Stdout, string(output))

		return err //nolint:wrapcheck
	},
}

func parseMoves(values []string) ([]ballot.DragResult, error) {
	return iter.MapErr(values, parseMove) //nolint:wrapcheck
}

func parseMove(value string) (ballot.DragResult, error) {
	parts := strings.Split(value, ":")
	if len(parts) != moveParts {
		return ballot.DragResult{}, fmt.Errorf("%w: bad move %q", core.ErrInvalidInput, value)
	}

	from, fromErr := strconv.Atoi(parts[1])
	to, toErr := strconv.Atoi(parts[3])

	if fromErr != nil || toErr != nil {
		return ballot.DragResult{}, fmt.Errorf("%w: bad move index in %q", core.ErrInvalidInput, value)
	}

	return ballot.DragResult{
		Source:           core.ListID(parts[0]),
		SourceIndex:      from,
		Destination:      core.ListID(parts[2]),
		DestinationIndex: to,
	}, nil
}
