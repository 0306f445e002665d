package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/electionclient"
)

var healthcheckCMD = &cli.Command{
	Name:     "healthcheck",
	Aliases:  []string{"hc"},
	Usage:    "Check that the election service is reachable.",
	Category: "Utility",
	Flags:    flags.ForClient,
	Action: func(ctx context.Context, cmd *cli.Command) error {
		injector := initDI(cmd)
		defer injector.Shutdown() //nolint:errcheck

		client, err := electionclient.NewClient(injector)
		if err != nil {
			return err //nolint:wrapcheck
		}

		err = client.Ping(ctx)
		if err != nil {
			return fmt.Errorf("healthcheck failed: %w", err)
		}

		_, err = fmt.Fprintln(os.Stdout, "ok")

		return err //nolint:wrapcheck
	},
}
