package cli

import (
	"context"
	"syscall"

	"github.com/samber/do"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/di"
	"github.com/zhulik/ballotbox/internal/electiond"
)

var serveCMD = &cli.Command{
	Name:     "serve",
	Aliases:  []string{"s"},
	Usage:    "Run an in-memory election service. Listens on HTTP_PORT.",
	Category: "Service",
	Flags:    []cli.Flag{flags.LogLevel},
	Action: func(_ context.Context, cmd *cli.Command) error {
		injector := initDI(cmd)

		logger := di.Logger(injector)

		logger.Info("Starting...")

		server := do.MustInvoke[*electiond.Server](injector)

		go func() {
			err := server.Run()
			if err != nil {
				logger.WithError(err).Fatal("Failed to run server")
			}
		}()

		logger.Info("Running...")

		return injector.ShutdownOnSignals(syscall.SIGINT, syscall.SIGTERM) //nolint:wrapcheck
	},
}
