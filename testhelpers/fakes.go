package testhelpers

import (
	"context"
	"slices"
	"sync"

	"github.com/zhulik/ballotbox/internal/core"
)

const (
	CallList   = "ListElections"
	CallGet    = "GetElections"
	CallCreate = "CreateElection"
	CallLogin  = "WeakLogin"
	CallStart  = "StartElection"
)

// FakeElectionService returns scripted results and records every call.
// When Gate is set, every call blocks until Gate is closed.
type FakeElectionService struct {
	Elections []core.Election
	ListErr   error
	GetErr    error

	CreateOutput core.CreateElectionOutput
	CreateErr    error

	AccessToken string
	LoginErr    error

	StartErr error

	Gate chan struct{}

	mu           sync.Mutex
	calls        []string
	createInputs []core.CreateElectionInput
	adminTokens  []string
	startedIDs   []string
	startTokens  []string
}

func NewFakeElectionService() *FakeElectionService {
	return &FakeElectionService{
		CreateOutput: core.CreateElectionOutput{
			Election:   core.ElectionRef{ID: "election-1"},
			AdminToken: "admin-token",
		},
		AccessToken: "access-token",
	}
}

func (f *FakeElectionService) ListElections(ctx context.Context) ([]core.Election, error) {
	f.record(ctx, CallList)

	return slices.Clone(f.Elections), f.ListErr
}

func (f *FakeElectionService) GetElections(ctx context.Context, ids []string) ([]core.Election, error) {
	f.record(ctx, CallGet)

	if f.GetErr != nil {
		return nil, f.GetErr
	}

	var result []core.Election

	for _, election := range f.Elections {
		if slices.Contains(ids, election.ID) {
			result = append(result, election)
		}
	}

	return result, nil
}

func (f *FakeElectionService) CreateElection(ctx context.Context, input core.CreateElectionInput) (core.CreateElectionOutput, error) { //nolint:lll
	f.record(ctx, CallCreate)

	f.mu.Lock()
	f.createInputs = append(f.createInputs, input)
	f.mu.Unlock()

	if f.CreateErr != nil {
		return core.CreateElectionOutput{}, f.CreateErr
	}

	return f.CreateOutput, nil
}

func (f *FakeElectionService) WeakLogin(ctx context.Context, adminToken string) (string, error) {
	f.record(ctx, CallLogin)

	f.mu.Lock()
	f.adminTokens = append(f.adminTokens, adminToken)
	f.mu.Unlock()

	if f.LoginErr != nil {
		return "", f.LoginErr
	}

	return f.AccessToken, nil
}

func (f *FakeElectionService) StartElection(ctx context.Context, id string, accessToken string) error {
	f.record(ctx, CallStart)

	f.mu.Lock()
	f.startedIDs = append(f.startedIDs, id)
	f.startTokens = append(f.startTokens, accessToken)
	f.mu.Unlock()

	return f.StartErr
}

func (f *FakeElectionService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.calls)
}

func (f *FakeElectionService) CreateInputs() []core.CreateElectionInput {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.createInputs)
}

func (f *FakeElectionService) AdminTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.adminTokens)
}

func (f *FakeElectionService) StartedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.startedIDs)
}

func (f *FakeElectionService) StartTokens() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return slices.Clone(f.startTokens)
}

func (f *FakeElectionService) record(ctx context.Context, call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if f.Gate != nil {
		select {
		case <-f.Gate:
		case <-ctx.Done():
		}
	}
}

// RecordingNotifier collects created notifications.
type RecordingNotifier struct {
	Err error

	mu     sync.Mutex
	events []core.ElectionCreated
}

func (n *RecordingNotifier) ElectionCreated(_ context.Context, event core.ElectionCreated) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.events = append(n.events, event)

	return n.Err
}

func (n *RecordingNotifier) Events() []core.ElectionCreated {
	n.mu.Lock()
	defer n.mu.Unlock()

	return slices.Clone(n.events)
}
