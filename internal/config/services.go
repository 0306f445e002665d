package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/core"
)

func Parse() (Config, error) {
	var cfg Config

	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Register provides cfg as core.Config. Use Parse to read it from the environment.
func Register(injector *do.Injector, cfg Config) {
	do.ProvideValue[core.Config](injector, cfg)
}
