package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/samber/do"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/internal/listing"
	"github.com/zhulik/ballotbox/pkg/json"
)

var listCMD = &cli.Command{
	Name:     "list",
	Aliases:  []string{"ls"},
	Usage:    "List open elections, most recently updated first.",
	Category: "User",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  flags.FlagNameAll,
			Usage: "List elections in every status",
		},
	}, flags.ForClient...),
	Action: func(ctx context.Context, cmd *cli.Command) error {
		injector := initDI(cmd)
		defer injector.Shutdown() //nolint:errcheck

		service := do.MustInvoke[core.ElectionService](injector)

		elections, err := service.ListElections(ctx)
		if err != nil {
			return fmt.Errorf("failed to list elections: %w", err)
		}

		if !cmd.Bool(flags.FlagNameAll) {
			elections = listing.Open(elections)
		}

		output, err := json.MarshalIndent(core.ElectionsResponse{Elections: elections}, "", "  ")
		if err != nil {
			return err //nolint:wrapcheck
		}

		_, err = fmt.Fprintln(os.Stdout, string(output))

		return err //nolint:wrapcheck
	},
}
