package logging

import (
	"fmt"
	"os"

	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
)

func NewLogger(config core.Config) (*logrus.Logger, error) {
	logLevel, err := logrus.ParseLevel(config.LogLevel())
	if err != nil {
		return nil, fmt.Errorf("failed parse loglevel: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logLevel)

	return logger, nil
}

func Register(injector *do.Injector) {
	do.Provide[logrus.FieldLogger](injector, func(injector *do.Injector) (logrus.FieldLogger, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		return NewLogger(config)
	})
}
