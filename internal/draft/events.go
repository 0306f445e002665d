package draft

const (
	EventNameChanged        = "NAME_CHANGED"
	EventDescriptionChanged = "DESCRIPTION_CHANGED"
	EventCandidateAdded     = "CANDIDATE_ADDED"
	EventCandidateRemoved   = "CANDIDATE_REMOVED"
	EventElectionStarted    = "ELECTION_STARTED"

	EventSubmissionSucceeded = "SUBMISSION_SUCCEEDED"
	EventSubmissionFailed    = "SUBMISSION_FAILED"
)

type Event interface {
	Type() string
}

type NameChanged struct {
	Name string
}

func (NameChanged) Type() string { return EventNameChanged }

type DescriptionChanged struct {
	Description string
}

func (DescriptionChanged) Type() string { return EventDescriptionChanged }

type CandidateAdded struct {
	ID          string
	Name        string
	Description string
}

func (CandidateAdded) Type() string { return EventCandidateAdded }

type CandidateRemoved struct {
	ID string
}

func (CandidateRemoved) Type() string { return EventCandidateRemoved }

type ElectionStarted struct{}

func (ElectionStarted) Type() string { return EventElectionStarted }

// SubmissionSucceeded and SubmissionFailed are produced by the machine itself
// when the creation pipeline completes. Machine.Send rejects them.
type SubmissionSucceeded struct {
	ElectionID string
}

func (SubmissionSucceeded) Type() string { return EventSubmissionSucceeded }

type SubmissionFailed struct {
	Err error
}

func (SubmissionFailed) Type() string { return EventSubmissionFailed }

func isContinuation(event Event) bool {
	switch event.(type) {
	case SubmissionSucceeded, SubmissionFailed:
		return true
	default:
		return false
	}
}
