// File: services/reset_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
	"trading-cards-admin/reporter"
)

// RequiredPhrase must be typed exactly before a reset is allowed.
const RequiredPhrase = "RESET ALL DATA"

// ConfirmationGate enables a destructive action only on an exact phrase match.
type ConfirmationGate struct {
	Phrase string
}

// IsConfirmed is a case-sensitive comparison with no trimming.
func (g ConfirmationGate) IsConfirmed(input string) bool {
	return g.Phrase != "" && input == g.Phrase
}

// ResetOrchestrator is the trusted backend that archives and purges an
// event's users, card collections, quest progress and submissions as one
// all-or-nothing operation.
type ResetOrchestrator interface {
	Reset(ctx context.Context, eventID string) error
}

// ResetServiceInterface is what the reset controller depends on.
type ResetServiceInterface interface {
	Trigger(ctx context.Context, operator models.Operator, typed string) error
	Gate() ConfirmationGate
	EventID() string
}

// ResetService guards the orchestrator behind the confirmation gate. It never
// touches any record itself.
type ResetService struct {
	gate         ConfirmationGate
	orchestrator ResetOrchestrator
	eventID      string
	metrics      metrics.Publisher
}

// NewResetService scopes resets to eventID.
func NewResetService(orchestrator ResetOrchestrator, eventID string, pub metrics.Publisher) *ResetService {
	return &ResetService{
		gate:         ConfirmationGate{Phrase: RequiredPhrase},
		orchestrator: orchestrator,
		eventID:      eventID,
		metrics:      pub,
	}
}

// Gate exposes the phrase check so the dashboard can mirror it.
func (s *ResetService) Gate() ConfirmationGate {
	return s.gate
}

// EventID is the scope every reset is issued for.
func (s *ResetService) EventID() string {
	return s.eventID
}

// Trigger makes exactly one orchestrator call when typed matches the phrase.
// Any orchestrator failure is returned wrapped in ErrOrchestratorFailed.
func (s *ResetService) Trigger(ctx context.Context, operator models.Operator, typed string) error {
	if !s.gate.IsConfirmed(typed) {
		logger.Warn.Printf("[ResetService.Trigger] %s submitted a non-matching confirmation", operator.Username)
		return ErrNotConfirmed
	}
	if s.orchestrator == nil {
		return fmt.Errorf("%w: no orchestrator configured", ErrOrchestratorFailed)
	}

	logger.Warn.Printf("[ResetService.Trigger] %s requested a full reset of event %s", operator.Username, s.eventID)
	if err := s.orchestrator.Reset(ctx, s.eventID); err != nil {
		if !errors.Is(err, ErrOrchestratorFailed) {
			err = fmt.Errorf("%w: %v", ErrOrchestratorFailed, err)
		}
		logger.Error.Printf("[ResetService.Trigger] reset of event %s failed: %v", s.eventID, err)
		reporter.Report(err)
		s.metrics.Count(metrics.ResetInvocations, 1, "Outcome", "failed")
		return err
	}

	s.metrics.Count(metrics.ResetInvocations, 1, "Outcome", "succeeded")
	logger.Info.Printf("[ResetService.Trigger] event %s reset completed", s.eventID)
	return nil
}
