package draft

import (
	"github.com/google/uuid"
)

// CandidateForm is the "add candidate" input. Submit does not validate.
type CandidateForm struct {
	Name        string
	Description string
}

// Submit turns the current input into a CandidateAdded event with a fresh id
// and clears the form.
func (f *CandidateForm) Submit() CandidateAdded {
	event := CandidateAdded{
		ID:          uuid.NewString(),
		Name:        f.Name,
		Description: f.Description,
	}

	f.Name = ""
	f.Description = ""

	return event
}
