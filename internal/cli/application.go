package cli

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"
)

const VERSION = "0.1.0"

var cmd = &cli.Command{
	Name:    "ballotbox",
	Usage:   "Create ranked-choice elections and rank their candidates.",
	Version: VERSION,
	Commands: []*cli.Command{
		serveCMD,
		createCMD,
		ballotCMD,
		listCMD,
		healthcheckCMD,
	},
}

func Run() {
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
