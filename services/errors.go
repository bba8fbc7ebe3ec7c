// Package services holds the dashboard's operations and the store they run against.
// File: services/errors.go
package services

import "errors"

var (
	// ErrNotFound is returned when a referenced document does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when a create would overwrite a document.
	ErrAlreadyExists = errors.New("already exists")
	// ErrAlreadyReviewed is returned when a decided submission is reviewed again.
	ErrAlreadyReviewed = errors.New("submission has already been reviewed")
	// ErrInvalidDecision is returned for decisions other than approved/rejected.
	ErrInvalidDecision = errors.New("decision must be approved or rejected")
	// ErrInvalidInput is returned when a required field is missing or an enum is unknown.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotConfirmed is returned when the reset phrase does not match exactly.
	ErrNotConfirmed = errors.New("confirmation phrase does not match")
	// ErrOrchestratorFailed wraps every failure of the reset orchestrator call.
	ErrOrchestratorFailed = errors.New("reset orchestrator failed")
	// ErrOrphanedAccount means the auth account exists but its profile was not written.
	ErrOrphanedAccount = errors.New("auth account created but profile write failed")
)
