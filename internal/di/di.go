package di

import (
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/config"
	"github.com/zhulik/ballotbox/internal/electionclient"
	"github.com/zhulik/ballotbox/internal/electiond"
	"github.com/zhulik/ballotbox/internal/logging"
	"github.com/zhulik/ballotbox/internal/notify"
)

func New(cfg config.Config) *do.Injector {
	injector := do.New()

	config.Register(injector, cfg)

	logging.Register(injector)
	electionclient.Register(injector)
	notify.Register(injector)
	electiond.Register(injector)

	return injector
}

func Logger(injector *do.Injector) logrus.FieldLogger {
	return do.MustInvoke[logrus.FieldLogger](injector)
}
