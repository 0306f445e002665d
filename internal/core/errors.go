package core

import (
	"errors"
)

var (
	// Remote service errors.
	ErrElectionNotFound = errors.New("election not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
	ErrConflict         = errors.New("conflict")
	ErrRemote           = errors.New("remote service error")

	// Machine errors.
	ErrEventRejected      = errors.New("event is not accepted in the current state")
	ErrDuplicateCandidate = errors.New("candidate with this id is already on the roster")
	ErrPartitionMismatch  = errors.New("lists do not partition the ballot candidates")
	ErrIndexOutOfRange    = errors.New("index out of range")
	ErrMachineStopped     = errors.New("machine is stopped")
)
