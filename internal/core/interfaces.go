package core

import (
	"context"
	"time"
)

type Config interface {
	ServiceURL() string
	AccountID() string
	RequestTimeout() time.Duration

	HTTPPort() int // For the reference service
	AccessTokenTTL() time.Duration

	NatsURL() string
	CreatedSubject() string

	LogLevel() string
}

// ElectionService is the remote election service consumed by the machines.
type ElectionService interface {
	ListElections(ctx context.Context) ([]Election, error)
	GetElections(ctx context.Context, ids []string) ([]Election, error)
	CreateElection(ctx context.Context, input CreateElectionInput) (CreateElectionOutput, error)
	WeakLogin(ctx context.Context, adminToken string) (string, error)
	StartElection(ctx context.Context, id string, accessToken string) error
}

// Notifier tells the surrounding application that an election was created.
type Notifier interface {
	ElectionCreated(ctx context.Context, event ElectionCreated) error
}
