package draftfile_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/zhulik/ballotbox/internal/draft"
	"github.com/zhulik/ballotbox/internal/draftfile"
)

const boardVote = `
version: 1
name: Board Vote
description: Annual
candidates:
  - id: alice
    name: Alice
    description: Chair
  - name: Bob
`

var _ = Describe("Draftfile", func() {
	Describe("Parse", func() {
		It("parses a valid file", func() {
			file, err := draftfile.Parse([]byte(boardVote))
			Expect(err).ToNot(HaveOccurred())

			Expect(file.Name).To(Equal("Board Vote"))
			Expect(file.Candidates).To(HaveLen(2))
			Expect(file.Candidates[1].Description).To(BeEmpty())
		})

		It("accepts a file without a name", func() {
			_, err := draftfile.Parse([]byte("version: 1\ncandidates: []\n"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects an unknown version", func() {
			_, err := draftfile.Parse([]byte("version: 2\n"))
			Expect(err).To(MatchError(draftfile.ErrValidationFailed))
		})

		It("rejects candidates without a name", func() {
			_, err := draftfile.Parse([]byte("version: 1\ncandidates:\n  - description: x\n"))
			Expect(err).To(MatchError(draftfile.ErrValidationFailed))
		})

		It("rejects repeated candidate ids", func() {
			_, err := draftfile.Parse([]byte("version: 1\ncandidates:\n  - {id: a, name: A}\n  - {id: a, name: B}\n"))
			Expect(err).To(MatchError(draftfile.ErrDuplicateID))
		})

		It("allows several candidates without an id", func() {
			_, err := draftfile.Parse([]byte("version: 1\ncandidates:\n  - name: A\n  - name: B\n"))
			Expect(err).ToNot(HaveOccurred())
		})

		It("rejects malformed yaml", func() {
			_, err := draftfile.Parse([]byte("version: [1"))
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Events", func() {
		It("replays the file as draft edits", func() {
			path := filepath.Join(GinkgoT().TempDir(), "draft.yaml")
			Expect(os.WriteFile(path, []byte(boardVote), 0o600)).To(Succeed())

			events, err := draftfile.Events(path)
			Expect(err).ToNot(HaveOccurred())
			Expect(events).To(HaveLen(4))

			Expect(events[0]).To(Equal(draft.NameChanged{Name: "Board Vote"}))
			Expect(events[1]).To(Equal(draft.DescriptionChanged{Description: "Annual"}))
			Expect(events[2]).To(Equal(draft.CandidateAdded{ID: "alice", Name: "Alice", Description: "Chair"}))

			bob, ok := events[3].(draft.CandidateAdded)
			Expect(ok).To(BeTrue())
			Expect(bob.ID).ToNot(BeEmpty())
			Expect(bob.Name).To(Equal("Bob"))
		})

		It("produces a draft that can be applied in order", func() {
			file, err := draftfile.Parse([]byte(boardVote))
			Expect(err).ToNot(HaveOccurred())

			state := draft.State{Status: draft.StatusEditing}

			for _, event := range file.Events() {
				state, _, err = draft.Transition(state, event)
				Expect(err).ToNot(HaveOccurred())
			}

			Expect(state.Draft.Candidates).To(HaveLen(2))
		})

		It("fails for a missing file", func() {
			_, err := draftfile.Events(filepath.Join(GinkgoT().TempDir(), "missing.yaml"))
			Expect(err).To(MatchError(ContainSubstring("failed to read draft file")))
		})
	})
})
