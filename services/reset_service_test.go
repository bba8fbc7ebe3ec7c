// file: services/reset_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"trading-cards-admin/metrics"
	"trading-cards-admin/reporter"
)

func TestConfirmationGate_ExactMatchOnly(t *testing.T) {
	gate := ConfirmationGate{Phrase: RequiredPhrase}

	assert.True(t, gate.IsConfirmed("RESET ALL DATA"))
	for _, typed := range []string{
		"", "reset all data", "RESET ALL DATA ", " RESET ALL DATA", "RESET  ALL DATA", "RESET ALL",
	} {
		assert.False(t, gate.IsConfirmed(typed), "%q must not confirm", typed)
	}
	assert.False(t, ConfirmationGate{}.IsConfirmed(""), "an empty phrase never confirms")
}

func TestResetService_NotConfirmedNeverCallsOrchestrator(t *testing.T) {
	orch := new(MockResetOrchestrator)
	svc := NewResetService(orch, "current_event_id", metrics.Nop{})

	err := svc.Trigger(context.Background(), operator, "reset all data")

	assert.ErrorIs(t, err, ErrNotConfirmed)
	orch.AssertNotCalled(t, "Reset", mock.Anything, mock.Anything)
}

func TestResetService_ConfirmedCallsOnceWithEvent(t *testing.T) {
	orch := new(MockResetOrchestrator)
	orch.On("Reset", mock.Anything, "current_event_id").Return(nil).Once()
	rec := &recordingMetrics{}
	svc := NewResetService(orch, "current_event_id", rec)

	require.NoError(t, svc.Trigger(context.Background(), operator, RequiredPhrase))

	orch.AssertNumberOfCalls(t, "Reset", 1)
	orch.AssertExpectations(t)
	assert.Equal(t, float64(1), rec.total(metrics.ResetInvocations))
	assert.Equal(t, "current_event_id", svc.EventID())
}

func TestResetService_OrchestratorFailureIsReported(t *testing.T) {
	rep := &recordingReporter{}
	reporter.Register(rep)
	defer reporter.Reset()

	orch := new(MockResetOrchestrator)
	orch.On("Reset", mock.Anything, "evt").Return(errors.New("internal")).Once()
	svc := NewResetService(orch, "evt", metrics.Nop{})

	err := svc.Trigger(context.Background(), operator, RequiredPhrase)

	assert.ErrorIs(t, err, ErrOrchestratorFailed)
	assert.Contains(t, err.Error(), "internal")
	assert.Len(t, rep.reported(), 1)
	orch.AssertNumberOfCalls(t, "Reset", 1)
}

func TestResetService_NoOrchestratorConfigured(t *testing.T) {
	svc := NewResetService(nil, "evt", metrics.Nop{})

	err := svc.Trigger(context.Background(), operator, RequiredPhrase)
	assert.ErrorIs(t, err, ErrOrchestratorFailed)
}
