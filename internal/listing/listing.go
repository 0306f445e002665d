package listing

import (
	"slices"

	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/core"
)

// Open returns the open elections, most recently updated first.
func Open(elections []core.Election) []core.Election {
	open := lo.Filter(elections, func(election core.Election, _ int) bool {
		return election.Status == core.ElectionStatusOpen
	})

	slices.SortStableFunc(open, func(a, b core.Election) int {
		return b.DateUpdated.Compare(a.DateUpdated)
	})

	return open
}
