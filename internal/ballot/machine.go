package ballot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/utils"
	"go.uber.org/atomic"
)

// Machine runs the ballot workflow for one election. It starts in
// StatusLoading; Start issues the single initial fetch.
type Machine struct {
	electionID string

	service core.ElectionService
	logger  logrus.FieldLogger

	mu        sync.Mutex
	state     State
	listeners []func(State)

	started  atomic.Bool
	stopped  atomic.Bool
	inflight utils.Inflight
}

func New(injector *do.Injector, electionID string) (*Machine, error) {
	service, err := do.Invoke[core.ElectionService](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	return &Machine{
		electionID: electionID,
		service:    service,
		logger: logger.WithFields(logrus.Fields{
			"component":  "ballot.Machine",
			"electionID": electionID,
		}),
		state: State{
			ElectionID: electionID,
			Status:     StatusLoading,
			Unranked:   []core.Candidate{},
			Ranked:     []core.Candidate{},
		},
	}, nil
}

// Start fetches the election in the background. Only the first call has an effect.
func (m *Machine) Start(ctx context.Context) {
	if m.started.Swap(true) {
		return
	}

	m.inflight.Add()

	go m.load(context.WithoutCancel(ctx))
}

func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.clone()
}

// Subscribe registers fn to be called with every committed state. fn must not
// block and must not call Send or Drop synchronously.
func (m *Machine) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

func (m *Machine) Send(_ context.Context, event Event) error {
	if isContinuation(event) {
		return core.ErrEventRejected
	}

	_, err := m.apply(func(State) (Event, bool, error) {
		return event, true, nil
	})

	return err
}

// Drop applies a drag gesture to the current lists. It returns false when the
// gesture did not change anything.
func (m *Machine) Drop(_ context.Context, drop DragResult) (bool, error) {
	return m.apply(func(state State) (Event, bool, error) {
		return OrderFor(state, drop)
	})
}

func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped.Store(true)
}

func (m *Machine) Stopped() bool {
	return m.stopped.Load()
}

// Wait blocks until the initial fetch completes. It is safe to call
// concurrently with Start.
func (m *Machine) Wait() {
	m.inflight.Wait()
}

func (m *Machine) apply(build func(State) (Event, bool, error)) (bool, error) {
	m.mu.Lock()

	if m.stopped.Load() {
		m.mu.Unlock()

		return false, core.ErrMachineStopped
	}

	event, ok, err := build(m.state)
	if err == nil && ok {
		m.state, err = Transition(m.state, event)
	}

	if err != nil || !ok {
		m.mu.Unlock()

		if err != nil {
			m.logger.WithError(err).Warn("Event rejected")
		}

		return false, err
	}

	snapshot := m.state.clone()
	listeners := slices.Clone(m.listeners)

	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"event":    event.Type(),
		"status":   snapshot.Status,
		"unranked": len(snapshot.Unranked),
		"ranked":   len(snapshot.Ranked),
	}).Debug("Event applied")

	for _, listener := range listeners {
		listener(snapshot)
	}

	return true, nil
}

func (m *Machine) load(ctx context.Context) {
	defer m.inflight.Done()

	var event Event

	candidates, err := m.fetch(ctx)
	if err != nil {
		m.logger.WithError(err).Error("Failed to load ballot")

		event = LoadFailed{Err: err}
	} else {
		event = LoadSucceeded{Candidates: candidates}
	}

	_, err = m.apply(func(State) (Event, bool, error) {
		return event, true, nil
	})
	if errors.Is(err, core.ErrMachineStopped) {
		m.logger.Info("Machine stopped, ballot load result dropped")
	}
}

func (m *Machine) fetch(ctx context.Context) ([]core.Candidate, error) {
	elections, err := m.service.GetElections(ctx, []string{m.electionID})
	if err != nil {
		return nil, fmt.Errorf("failed to get election: %w", err)
	}

	election, ok := lo.Find(elections, func(e core.Election) bool { return e.ID == m.electionID })
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrElectionNotFound, m.electionID)
	}

	candidates := lo.Map(election.Candidates, func(c core.RemoteCandidate, _ int) core.Candidate {
		return c.Normalize()
	})

	if duplicates := lo.FindDuplicates(core.CandidateIDs(candidates)); len(duplicates) > 0 {
		return nil, fmt.Errorf("%w: election %s lists %v more than once",
			core.ErrDuplicateCandidate, m.electionID, duplicates)
	}

	return candidates, nil
}
