package listing_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/internal/listing"
)

var _ = Describe("Open", func() {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	election := func(id string, status core.ElectionStatus, updated int) core.Election {
		return core.Election{ID: id, Status: status, DateUpdated: base.Add(time.Duration(updated) * time.Hour)}
	}

	ids := func(elections []core.Election) []string {
		return lo.Map(elections, func(e core.Election, _ int) string { return e.ID })
	}

	It("keeps only open elections, newest first", func() {
		elections := []core.Election{
			election("old", core.ElectionStatusOpen, 1),
			election("draft", core.ElectionStatusInit, 5),
			election("new", core.ElectionStatusOpen, 3),
			election("closed", core.ElectionStatusClosed, 4),
		}

		Expect(ids(listing.Open(elections))).To(Equal([]string{"new", "old"}))
	})

	It("does not reorder the input", func() {
		elections := []core.Election{
			election("a", core.ElectionStatusOpen, 1),
			election("b", core.ElectionStatusOpen, 2),
		}

		listing.Open(elections)

		Expect(ids(elections)).To(Equal([]string{"a", "b"}))
	})

	It("returns an empty list when nothing is open", func() {
		Expect(listing.Open(nil)).To(BeEmpty())
	})
})
