package core

import (
	"time"

	"github.com/samber/lo"
)

// Candidate is the client-side shape of a roster entry. Description is never absent.
type Candidate struct {
	ID          string `json:"id"          validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

// RemoteCandidate is a candidate as returned by the election service.
type RemoteCandidate struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

func (c RemoteCandidate) Normalize() Candidate {
	return Candidate{
		ID:          c.ID,
		Name:        c.Name,
		Description: lo.FromPtr(c.Description),
	}
}

type StatusTransition struct {
	On     time.Time      `json:"on"`
	Status ElectionStatus `json:"status"`
}

type Election struct {
	ID                string             `json:"id"`
	Name              string             `json:"name"`
	Description       string             `json:"description"`
	Status            ElectionStatus     `json:"status"`
	Candidates        []RemoteCandidate  `json:"candidates"`
	StatusTransitions []StatusTransition `json:"statusTransitions"`
	DateCreated       time.Time          `json:"dateCreated"`
	DateUpdated       time.Time          `json:"dateUpdated"`
}

type ElectionsResponse struct {
	Elections []Election `json:"elections"`
}

type CreateElectionInput struct {
	Name               string      `json:"name"`
	Description        string      `json:"description"`
	Candidates         []Candidate `json:"candidates"         validate:"unique=ID,dive"`
	OriginatingAccount string      `json:"originatingAccount" validate:"required"`
}

type ElectionRef struct {
	ID string `json:"id"`
}

type CreateElectionOutput struct {
	Election   ElectionRef `json:"election"`
	AdminToken string      `json:"adminToken"`
}

type WeakLoginInput struct {
	AdminToken string `json:"adminToken" validate:"required"`
}

type WeakLoginOutput struct {
	AccessToken string `json:"accessToken"`
}

// ElectionCreated is emitted once when a draft has been created and started remotely.
type ElectionCreated struct {
	DraftID    string    `json:"draftId"`
	ElectionID string    `json:"electionId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"createdAt"`
}
