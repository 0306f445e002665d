package draft

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zhulik/ballotbox/internal/core"
)

type Step string

const (
	StepCreate Step = "create"
	StepLogin  Step = "login"
	StepStart  Step = "start"
)

// StepError tells which step of the creation pipeline failed.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step failed: %s", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// Pipeline creates an election, exchanges the admin token for an access token
// and starts the election. Steps run strictly in order; a failed step stops
// the pipeline.
type Pipeline struct {
	Service   core.ElectionService
	AccountID string
	Logger    logrus.FieldLogger
}

// Run returns the id of the started election.
func (p Pipeline) Run(ctx context.Context, draft Draft) (string, error) {
	created, err := p.create(ctx, draft)
	if err != nil {
		return "", err
	}

	logger := p.Logger.WithField("electionID", created.Election.ID)

	logger.Debug("Election created, logging in")

	accessToken, err := p.login(ctx, created.AdminToken)
	if err != nil {
		return "", err
	}

	logger.Debug("Logged in, starting election")

	err = p.start(ctx, created.Election.ID, accessToken)
	if err != nil {
		return "", err
	}

	logger.Info("Election started")

	return created.Election.ID, nil
}

func (p Pipeline) create(ctx context.Context, draft Draft) (core.CreateElectionOutput, error) {
	output, err := p.Service.CreateElection(ctx, core.CreateElectionInput{
		Name:               draft.Name,
		Description:        draft.Description,
		Candidates:         draft.Candidates,
		OriginatingAccount: p.AccountID,
	})
	if err != nil {
		return core.CreateElectionOutput{}, &StepError{Step: StepCreate, Err: err}
	}

	return output, nil
}

func (p Pipeline) login(ctx context.Context, adminToken string) (string, error) {
	accessToken, err := p.Service.WeakLogin(ctx, adminToken)
	if err != nil {
		return "", &StepError{Step: StepLogin, Err: err}
	}

	return accessToken, nil
}

func (p Pipeline) start(ctx context.Context, electionID, accessToken string) error {
	err := p.Service.StartElection(ctx, electionID, accessToken)
	if err != nil {
		return &StepError{Step: StepStart, Err: err}
	}

	return nil
}
