package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/di"
	"github.com/zhulik/ballotbox/internal/draft"
	"github.com/zhulik/ballotbox/internal/draftfile"
)

var createCMD = &cli.Command{
	Name:     "create",
	Aliases:  []string{"c"},
	Usage:    "Create and start an election from flags or a draft file.",
	Category: "User",
	Flags: append([]cli.Flag{
		flags.AccountID,
		flags.NatsURL,
		&cli.StringFlag{
			Name:    flags.FlagNameDraftFile,
			Aliases: []string{"f"},
			Usage:   "Load the draft from YAML `FILE`",
		},
		&cli.StringFlag{
			Name:  flags.FlagNameName,
			Usage: "Election `NAME`",
		},
		&cli.StringFlag{
			Name:  flags.FlagNameDescription,
			Usage: "Election `DESCRIPTION`",
		},
		&cli.StringSliceFlag{
			Name:    flags.FlagNameCandidate,
			Aliases: []string{"c"},
			Usage:   "Add a candidate as `NAME[:DESCRIPTION]`, may be repeated",
		},
	}, flags.ForClient...),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		events, err := draftEvents(cmd)
		if err != nil {
			return err
		}

		injector := initDI(cmd)
		defer injector.Shutdown() //nolint:errcheck

		logger := di.Logger(injector)

		machine, err := draft.New(injector)
		if err != nil {
			return err //nolint:wrapcheck
		}
		defer machine.Stop()

		machine.Subscribe(func(state draft.State) {
			logger.WithFields(logrus.Fields{
				"status":     state.Status,
				"candidates": len(state.Draft.Candidates),
			}).Debug("Draft changed")
		})

		for _, event := range append(events, draft.ElectionStarted{}) {
			err := machine.Send(ctx, event)
			if err != nil {
				return fmt.Errorf("failed to apply %s: %w", event.Type(), err)
			}
		}

		machine.Wait()

		state := machine.State()
		if state.Status != draft.StatusCreated {
			return fmt.Errorf("failed to create election: %w", state.LastError)
		}

		_, err = fmt.Fprintln(os.Stdout, state.ElectionID)

		return err //nolint:wrapcheck
	},
}

func draftEvents(cmd *cli.Command) ([]draft.Event, error) {
	if path := cmd.String(flags.FlagNameDraftFile); path != "" {
		return draftfile.Events(path) //nolint:wrapcheck
	}

	events := []draft.Event{
		draft.NameChanged{Name: cmd.String(flags.FlagNameName)},
		draft.DescriptionChanged{Description: cmd.String(flags.FlagNameDescription)},
	}

	for _, value := range cmd.StringSlice(flags.FlagNameCandidate) {
		name, description, _ := strings.Cut(value, ":")

		form := draft.CandidateForm{Name: name, Description: description}
		events = append(events, form.Submit())
	}

	return events, nil
}
