package notify

import (
	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/core"
)

// Register provides a NATS notifier when NATS_URL is set, a logging one otherwise.
func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (core.Notifier, error) {
		config, err := do.Invoke[core.Config](injector)
		if err != nil {
			return nil, err
		}

		if config.NatsURL() == "" {
			return NewLogNotifier(injector)
		}

		return NewNATSNotifier(injector)
	})
}
