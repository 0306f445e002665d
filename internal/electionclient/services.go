package electionclient

import (
	"github.com/samber/do"
	"github.com/zhulik/ballotbox/internal/core"
)

func Register(injector *do.Injector) {
	do.Provide(injector, func(injector *do.Injector) (core.ElectionService, error) {
		return NewClient(injector)
	})
}
