package draft_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/internal/draft"
)

func apply(state draft.State, events ...draft.Event) draft.State {
	for _, event := range events {
		state, _ = lo.Must2(draft.Transition(state, event))
	}

	return state
}

var _ = Describe("Transition", func() {
	var editing draft.State

	BeforeEach(func() {
		editing = draft.State{
			Status: draft.StatusEditing,
			Draft:  draft.Draft{ID: "draft-1", Candidates: []core.Candidate{}},
		}
	})

	Context("when editing", func() {
		It("replaces name and description", func() {
			state := apply(editing,
				draft.NameChanged{Name: "Board"},
				draft.NameChanged{Name: "Board Vote"},
				draft.DescriptionChanged{Description: "yearly"},
			)

			Expect(state.Status).To(Equal(draft.StatusEditing))
			Expect(state.Draft.Name).To(Equal("Board Vote"))
			Expect(state.Draft.Description).To(Equal("yearly"))
			Expect(state.Draft.ID).To(Equal("draft-1"))
		})

		It("accepts an empty name", func() {
			state := apply(editing, draft.NameChanged{Name: "x"}, draft.NameChanged{Name: ""})

			Expect(state.Draft.Name).To(BeEmpty())
		})

		It("removes a candidate by id", func() {
			state := apply(editing,
				draft.NameChanged{Name: "Board Vote"},
				draft.DescriptionChanged{Description: ""},
				draft.CandidateAdded{ID: "a", Name: "Alice"},
				draft.CandidateAdded{ID: "b", Name: "Bob"},
				draft.CandidateRemoved{ID: "a"},
			)

			Expect(state.Draft.Candidates).To(Equal([]core.Candidate{{ID: "b", Name: "Bob"}}))
		})

		It("keeps insertion order", func() {
			state := apply(editing,
				draft.CandidateAdded{ID: "c", Name: "Carol"},
				draft.CandidateAdded{ID: "a", Name: "Alice"},
				draft.CandidateAdded{ID: "b", Name: "Bob"},
			)

			Expect(core.CandidateIDs(state.Draft.Candidates)).To(Equal([]string{"c", "a", "b"}))
		})

		It("ignores removal of an absent candidate", func() {
			state := apply(editing, draft.CandidateAdded{ID: "a", Name: "Alice"})

			next, effect, err := draft.Transition(state, draft.CandidateRemoved{ID: "zzz"})

			Expect(err).ToNot(HaveOccurred())
			Expect(effect).To(Equal(draft.EffectNone))
			Expect(next.Draft.Candidates).To(Equal(state.Draft.Candidates))
		})

		It("rejects a candidate with a duplicate id", func() {
			state := apply(editing, draft.CandidateAdded{ID: "a", Name: "Alice"})

			next, _, err := draft.Transition(state, draft.CandidateAdded{ID: "a", Name: "Another Alice"})

			Expect(err).To(MatchError(core.ErrDuplicateCandidate))
			Expect(next.Draft.Candidates).To(Equal([]core.Candidate{{ID: "a", Name: "Alice"}}))
		})

		It("never holds duplicate ids after any add/remove sequence", func() {
			state := editing
			ids := []string{"a", "b", "a", "c", "b", "a"}

			for i, id := range ids {
				var event draft.Event = draft.CandidateAdded{ID: id, Name: id}
				if i%3 == 2 {
					event = draft.CandidateRemoved{ID: id}
				}

				next, _, err := draft.Transition(state, event)
				if err == nil {
					state = next
				}

				Expect(lo.Uniq(core.CandidateIDs(state.Draft.Candidates))).
					To(HaveLen(len(state.Draft.Candidates)))
			}
		})

		It("does not modify the previous state", func() {
			state := apply(editing, draft.CandidateAdded{ID: "a", Name: "Alice"})

			apply(state, draft.CandidateAdded{ID: "b", Name: "Bob"}, draft.CandidateRemoved{ID: "a"})

			Expect(state.Draft.Candidates).To(Equal([]core.Candidate{{ID: "a", Name: "Alice"}}))
		})

		It("moves to submitting on ElectionStarted", func() {
			next, effect, err := draft.Transition(editing, draft.ElectionStarted{})

			Expect(err).ToNot(HaveOccurred())
			Expect(effect).To(Equal(draft.EffectSubmit))
			Expect(next.Status).To(Equal(draft.StatusSubmitting))
			Expect(next.InFlight()).To(BeTrue())
		})

		It("rejects submission results", func() {
			_, _, err := draft.Transition(editing, draft.SubmissionSucceeded{ElectionID: "x"})

			Expect(err).To(MatchError(core.ErrEventRejected))
		})
	})

	Context("when submitting", func() {
		var submitting draft.State

		BeforeEach(func() {
			submitting = apply(editing,
				draft.NameChanged{Name: "Board Vote"},
				draft.CandidateAdded{ID: "a", Name: "Alice"},
				draft.ElectionStarted{},
			)
		})

		It("rejects edits", func() {
			for _, event := range []draft.Event{
				draft.NameChanged{Name: "other"},
				draft.DescriptionChanged{Description: "other"},
				draft.CandidateAdded{ID: "b", Name: "Bob"},
				draft.CandidateRemoved{ID: "a"},
				draft.ElectionStarted{},
			} {
				next, _, err := draft.Transition(submitting, event)

				Expect(err).To(MatchError(core.ErrEventRejected))
				Expect(next).To(Equal(submitting))
			}
		})

		It("moves to created on success", func() {
			next, effect, err := draft.Transition(submitting, draft.SubmissionSucceeded{ElectionID: "e-1"})

			Expect(err).ToNot(HaveOccurred())
			Expect(effect).To(Equal(draft.EffectNotifyCreated))
			Expect(next.Status).To(Equal(draft.StatusCreated))
			Expect(next.ElectionID).To(Equal("e-1"))
		})

		It("returns to editing with the draft intact on failure", func() {
			failure := errors.New("boom")

			next, effect, err := draft.Transition(submitting, draft.SubmissionFailed{Err: failure})

			Expect(err).ToNot(HaveOccurred())
			Expect(effect).To(Equal(draft.EffectNone))
			Expect(next.Status).To(Equal(draft.StatusEditing))
			Expect(next.Draft).To(Equal(submitting.Draft))
			Expect(next.LastError).To(MatchError(failure))
		})
	})

	Context("when created", func() {
		It("rejects every event", func() {
			created := apply(editing, draft.ElectionStarted{}, draft.SubmissionSucceeded{ElectionID: "e-1"})

			_, _, err := draft.Transition(created, draft.NameChanged{Name: "late"})

			Expect(err).To(MatchError(core.ErrEventRejected))
		})
	})
})

var _ = Describe("CandidateForm", func() {
	It("produces a candidate with a fresh id and clears the input", func() {
		form := draft.CandidateForm{Name: "Alice", Description: "incumbent"}

		first := form.Submit()

		Expect(first.Name).To(Equal("Alice"))
		Expect(first.Description).To(Equal("incumbent"))
		Expect(first.ID).ToNot(BeEmpty())
		Expect(form).To(Equal(draft.CandidateForm{}))

		form.Name = "Alice"
		second := form.Submit()

		Expect(second.ID).ToNot(Equal(first.ID))
	})
})
