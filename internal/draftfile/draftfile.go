package draftfile

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/draft"
)

var (
	ErrValidationFailed = errors.New("draft file validation failed")
	ErrDuplicateID      = errors.New("duplicate candidate id")
	validate            = validator.New() //nolint:gochecknoglobals
)

type Candidate struct {
	ID          string `yaml:"id"`
	Name        string `validate:"required" yaml:"name"`
	Description string `yaml:"description"`
}

type Draftfile struct {
	Version     int         `validate:"required,eq=1" yaml:"version"`
	Name        string      `yaml:"name"`
	Description string      `yaml:"description"`
	Candidates  []Candidate `validate:"dive"          yaml:"candidates"`
}

func ParseFile(path string) (*Draftfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read draft file: %w", err)
	}

	file, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse draft file %s: %w", path, err)
	}

	return file, nil
}

func Parse(data []byte) (*Draftfile, error) {
	file := Draftfile{}

	err := yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft file: %w", err)
	}

	err = validate.Struct(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidationFailed, err)
	}

	ids := lo.Compact(lo.Map(file.Candidates, func(candidate Candidate, _ int) string {
		return candidate.ID
	}))
	if duplicates := lo.FindDuplicates(ids); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: %w: %v", ErrValidationFailed, ErrDuplicateID, duplicates)
	}

	return &file, nil
}

// Events replays the file as the edits a user would make in the draft form.
// Candidates without an id get a generated one.
func (f *Draftfile) Events() []draft.Event {
	events := []draft.Event{
		draft.NameChanged{Name: f.Name},
		draft.DescriptionChanged{Description: f.Description},
	}

	for _, candidate := range f.Candidates {
		form := draft.CandidateForm{Name: candidate.Name, Description: candidate.Description}
		event := form.Submit()

		if candidate.ID != "" {
			event.ID = candidate.ID
		}

		events = append(events, event)
	}

	return events
}

func Events(path string) ([]draft.Event, error) {
	file, err := ParseFile(path)
	if err != nil {
		return nil, err
	}

	return file.Events(), nil
}
