package core

import (
	"github.com/samber/lo"
)

func CandidateIDs(lists ...[]Candidate) []string {
	return lo.FlatMap(lists, func(list []Candidate, _ int) []string {
		return lo.Map(list, func(c Candidate, _ int) string { return c.ID })
	})
}

// SameCandidateSet reports whether a and b hold exactly the same candidate ids, each once.
func SameCandidateSet(a, b []string) bool {
	if len(a) != len(b) || len(lo.Uniq(a)) != len(a) || len(lo.Uniq(b)) != len(b) {
		return false
	}

	left, right := lo.Difference(a, b)

	return len(left) == 0 && len(right) == 0
}
