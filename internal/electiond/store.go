package electiond

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/zhulik/ballotbox/internal/core"
)

type accessToken struct {
	electionID string
	expiresAt  time.Time
}

// Store is an in-memory election service.
type Store struct {
	ttl      time.Duration
	now      func() time.Time
	validate *validator.Validate

	mu           sync.Mutex
	order        []string
	elections    map[string]core.Election
	adminTokens  map[string]string
	accessTokens map[string]accessToken
}

func NewStore(ttl time.Duration, now func() time.Time) *Store {
	return &Store{
		ttl:          ttl,
		now:          now,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		elections:    map[string]core.Election{},
		adminTokens:  map[string]string{},
		accessTokens: map[string]accessToken{},
	}
}

func (s *Store) ListElections(_ context.Context) ([]core.Election, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.order, func(id string, _ int) core.Election {
		return cloneElection(s.elections[id])
	}), nil
}

// GetElections returns the known elections among ids, in the order of ids.
func (s *Store) GetElections(_ context.Context, ids []string) ([]core.Election, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := []core.Election{}

	for _, id := range lo.Uniq(ids) {
		if election, ok := s.elections[id]; ok {
			result = append(result, cloneElection(election))
		}
	}

	return result, nil
}

func (s *Store) CreateElection(_ context.Context, input core.CreateElectionInput) (core.CreateElectionOutput, error) { //nolint:lll
	if err := s.validate.Struct(input); err != nil {
		return core.CreateElectionOutput{}, fmt.Errorf("%w: %w", core.ErrInvalidInput, err)
	}

	now := s.now()

	election := core.Election{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		Status:      core.ElectionStatusInit,
		Candidates: lo.Map(input.Candidates, func(candidate core.Candidate, _ int) core.RemoteCandidate {
			return core.RemoteCandidate{
				ID:          candidate.ID,
				Name:        candidate.Name,
				Description: lo.EmptyableToPtr(candidate.Description),
			}
		}),
		StatusTransitions: []core.StatusTransition{{On: now, Status: core.ElectionStatusInit}},
		DateCreated:       now,
		DateUpdated:       now,
	}

	adminToken := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = append(s.order, election.ID)
	s.elections[election.ID] = election
	s.adminTokens[adminToken] = election.ID

	return core.CreateElectionOutput{
		Election:   core.ElectionRef{ID: election.ID},
		AdminToken: adminToken,
	}, nil
}

func (s *Store) WeakLogin(_ context.Context, adminToken string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	electionID, ok := s.adminTokens[adminToken]
	if !ok {
		return "", fmt.Errorf("%w: unknown admin token", core.ErrUnauthorized)
	}

	token := uuid.NewString()
	s.accessTokens[token] = accessToken{
		electionID: electionID,
		expiresAt:  s.now().Add(s.ttl),
	}

	return token, nil
}

func (s *Store) StartElection(_ context.Context, id string, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	election, ok := s.elections[id]
	if !ok {
		return fmt.Errorf("%w: %s", core.ErrElectionNotFound, id)
	}

	access, ok := s.accessTokens[token]

	switch {
	case !ok:
		return fmt.Errorf("%w: unknown access token", core.ErrUnauthorized)
	case access.electionID != id:
		return fmt.Errorf("%w: token belongs to another election", core.ErrUnauthorized)
	case !s.now().Before(access.expiresAt):
		delete(s.accessTokens, token)

		return fmt.Errorf("%w: access token expired", core.ErrUnauthorized)
	}

	if election.Status != core.ElectionStatusInit {
		return fmt.Errorf("%w: election is %s", core.ErrConflict, election.Status)
	}

	now := s.now()

	election.Status = core.ElectionStatusOpen
	election.StatusTransitions = append(slices.Clone(election.StatusTransitions),
		core.StatusTransition{On: now, Status: core.ElectionStatusOpen})
	election.DateUpdated = now

	s.elections[id] = election

	return nil
}

func cloneElection(election core.Election) core.Election {
	election.Candidates = slices.Clone(election.Candidates)
	election.StatusTransitions = slices.Clone(election.StatusTransitions)

	return election
}
