package draft

import (
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/do"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
	"github.com/zhulik/ballotbox/pkg/utils"
	"go.uber.org/atomic"
)

// Machine runs the election draft workflow. It owns one draft; create a new
// Machine for every creation screen.
type Machine struct {
	pipeline Pipeline
	notifier core.Notifier
	logger   logrus.FieldLogger

	mu        sync.Mutex
	state     State
	listeners []func(State)

	stopped  atomic.Bool
	inflight utils.Inflight
}

func New(injector *do.Injector) (*Machine, error) {
	config, err := do.Invoke[core.Config](injector)
	if err != nil {
		return nil, err
	}

	service, err := do.Invoke[core.ElectionService](injector)
	if err != nil {
		return nil, err
	}

	notifier, err := do.Invoke[core.Notifier](injector)
	if err != nil {
		return nil, err
	}

	logger, err := do.Invoke[logrus.FieldLogger](injector)
	if err != nil {
		return nil, err
	}

	draftID := uuid.NewString()

	logger = logger.WithFields(logrus.Fields{
		"component": "draft.Machine",
		"draftID":   draftID,
	})

	return &Machine{
		pipeline: Pipeline{
			Service:   service,
			AccountID: config.AccountID(),
			Logger:    logger,
		},
		notifier: notifier,
		logger:   logger,
		state: State{
			Status: StatusEditing,
			Draft: Draft{
				ID:         draftID,
				Candidates: []core.Candidate{},
			},
		},
	}, nil
}

// State returns a snapshot of the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.state.clone()
}

// Subscribe registers fn to be called with every committed state. fn must not
// block and must not call Send synchronously.
func (m *Machine) Subscribe(fn func(State)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.listeners = append(m.listeners, fn)
}

// Send applies a user event. ElectionStarted starts the creation pipeline in
// the background; its outcome is applied to the machine when it completes.
func (m *Machine) Send(ctx context.Context, event Event) error {
	if isContinuation(event) {
		return core.ErrEventRejected
	}

	return m.dispatch(ctx, event)
}

// Stop discards the machine. Results of in-flight work are dropped.
func (m *Machine) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped.Store(true)
}

func (m *Machine) Stopped() bool {
	return m.stopped.Load()
}

// Wait blocks until in-flight submission completes. It is safe to call
// concurrently with Send.
func (m *Machine) Wait() {
	m.inflight.Wait()
}

func (m *Machine) dispatch(ctx context.Context, event Event) error {
	m.mu.Lock()

	if m.stopped.Load() {
		m.mu.Unlock()

		return core.ErrMachineStopped
	}

	next, effect, err := Transition(m.state, event)
	if err != nil {
		m.mu.Unlock()

		m.logger.WithError(err).WithField("event", event.Type()).Warn("Event rejected")

		return err
	}

	m.state = next
	snapshot := next.clone()
	listeners := slices.Clone(m.listeners)

	if effect == EffectSubmit {
		m.inflight.Add()
	}

	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"event":  event.Type(),
		"status": snapshot.Status,
	}).Debug("Event applied")

	for _, listener := range listeners {
		listener(snapshot)
	}

	switch effect {
	case EffectSubmit:
		go m.submit(context.WithoutCancel(ctx), snapshot.Draft)
	case EffectNotifyCreated:
		m.notifyCreated(ctx, snapshot)
	case EffectNone:
	}

	return nil
}

func (m *Machine) submit(ctx context.Context, draft Draft) {
	defer m.inflight.Done()

	m.logger.WithField("candidates", len(draft.Candidates)).Info("Submitting election...")

	var event Event

	electionID, err := m.pipeline.Run(ctx, draft)
	if err != nil {
		m.logger.WithError(err).Error("Election submission failed")

		event = SubmissionFailed{Err: err}
	} else {
		event = SubmissionSucceeded{ElectionID: electionID}
	}

	err = m.dispatch(ctx, event)
	if errors.Is(err, core.ErrMachineStopped) {
		m.logger.Info("Machine stopped, submission result dropped")
	}
}

func (m *Machine) notifyCreated(ctx context.Context, state State) {
	err := m.notifier.ElectionCreated(ctx, core.ElectionCreated{
		DraftID:    state.Draft.ID,
		ElectionID: state.ElectionID,
		Name:       state.Draft.Name,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		m.logger.WithError(err).Error("Failed to notify about created election")
	}
}
