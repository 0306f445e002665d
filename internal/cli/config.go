package cli

import (
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/cli/flags"
	"github.com/zhulik/ballotbox/internal/config"
	"github.com/zhulik/ballotbox/internal/di"
)

// initDI reads the environment and lets flags override it.
func initDI(cmd *cli.Command) *do.Injector {
	cfg := lo.Must(config.Parse())

	if value := cmd.String(flags.FlagNameServiceURL); value != "" {
		cfg.ServiceURL_ = value
	}

	if value := cmd.String(flags.FlagNameAccountID); value != "" {
		cfg.AccountID_ = value
	}

	if value := cmd.String(flags.FlagNameNATSURL); value != "" {
		cfg.NATSURL = value
	}

	if value := cmd.String(flags.FlagNameLogLevel); value != "" {
		cfg.Loglevel = value
	}

	return di.New(cfg)
}
