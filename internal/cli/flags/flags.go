package flags

import (
	"github.com/urfave/cli/v3"
	"github.com/zhulik/ballotbox/internal/core"
)

const (
	FlagNameServiceURL  = "service-url"
	FlagNameAccountID   = "account-id"
	FlagNameNATSURL     = "nats-url"
	FlagNameLogLevel    = "log-level"
	FlagNameDraftFile   = "file"
	FlagNameName        = "name"
	FlagNameDescription = "description"
	FlagNameCandidate   = "candidate"
	FlagNameElectionID  = "election"
	FlagNameMove        = "move"
	FlagNameAll         = "all"
)

var (
	ServiceURL = &cli.StringFlag{
		Name:    FlagNameServiceURL,
		Aliases: []string{"s"},
		Usage:   "Election service `URL`, eg http://127.0.0.1:8180",
		Value:   "http://127.0.0.1:8180",
		Sources: cli.EnvVars(core.EnvNameServiceURL),
	}

	AccountID = &cli.StringFlag{
		Name:    FlagNameAccountID,
		Aliases: []string{"a"},
		Usage:   "Create elections on behalf of `ACCOUNT`.",
		Value:   "anonymous",
		Sources: cli.EnvVars(core.EnvNameAccountID),
	}

	NatsURL = &cli.StringFlag{
		Name:    FlagNameNATSURL,
		Aliases: []string{"n"},
		Usage:   "Publish created elections to Nats `URL`, eg nats://127.0.0.1:4222",
		Sources: cli.EnvVars(core.EnvNameNatsURL),
	}

	LogLevel = &cli.StringFlag{
		Name:    FlagNameLogLevel,
		Aliases: []string{"l"},
		Usage:   "Set log level to `LEVEL`.",
		Value:   "info",
		Sources: cli.EnvVars(core.EnvNameLogLevel),
	}

	ForClient = []cli.Flag{ServiceURL, LogLevel}
)
