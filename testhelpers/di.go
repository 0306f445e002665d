package testhelpers

import (
	"io"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/config"
	"github.com/zhulik/ballotbox/internal/core"
)

const AccountID = "test-account"

func NewLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(logrus.WarnLevel)

	return logger
}

// NewBaseInjector provides only the config and a silent logger.
func NewBaseInjector(cfg config.Config) *do.Injector {
	injector := do.New()

	if cfg.AccountID_ == "" {
		cfg.AccountID_ = AccountID
	}

	config.Register(injector, cfg)
	do.ProvideValue(injector, NewLogger())

	return injector
}

func NewInjector(service core.ElectionService, notifier core.Notifier) *do.Injector {
	injector := NewBaseInjector(config.Config{})

	do.ProvideValue(injector, service)
	do.ProvideValue(injector, notifier)

	return injector
}
