package electiond

import (
	"time"

	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/core"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (*Store, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		return NewStore(config.AccessTokenTTL(), time.Now), nil
	})

	do.Provide(injector, NewServer)
}
