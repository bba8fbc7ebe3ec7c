package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"trading-cards-admin/models"
)

// ✅ Ensure the mocks implement their interfaces
var (
	_ UserServiceInterface   = (*MockUserService)(nil)
	_ QuestServiceInterface  = (*MockQuestService)(nil)
	_ ReviewServiceInterface = (*MockReviewService)(nil)
	_ ResetServiceInterface  = (*MockResetService)(nil)
	_ ResetOrchestrator      = (*MockResetOrchestrator)(nil)
)

// MockUserService is a mock implementation for controller tests.
type MockUserService struct {
	mock.Mock
}

// Create (Mocked)
func (m *MockUserService) Create(ctx context.Context, operator models.Operator, profile models.UserProfile) (string, error) {
	args := m.Called(ctx, operator, profile)
	return args.String(0), args.Error(1)
}

// List (Mocked)
func (m *MockUserService) List(ctx context.Context) ([]models.UserAccount, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]models.UserAccount)
	return users, args.Error(1)
}

// MockQuestService is a mock implementation for controller tests.
type MockQuestService struct {
	mock.Mock
}

// Create (Mocked)
func (m *MockQuestService) Create(ctx context.Context, operator models.Operator, draft models.QuestDraft) (string, error) {
	args := m.Called(ctx, operator, draft)
	return args.String(0), args.Error(1)
}

// Delete (Mocked)
func (m *MockQuestService) Delete(ctx context.Context, operator models.Operator, questID string) error {
	args := m.Called(ctx, operator, questID)
	return args.Error(0)
}

// List (Mocked)
func (m *MockQuestService) List(ctx context.Context) ([]models.Quest, error) {
	args := m.Called(ctx)
	quests, _ := args.Get(0).([]models.Quest)
	return quests, args.Error(1)
}

// QRCode (Mocked)
func (m *MockQuestService) QRCode(ctx context.Context, questID string, size int) ([]byte, error) {
	args := m.Called(ctx, questID, size)
	png, _ := args.Get(0).([]byte)
	return png, args.Error(1)
}

// MockReviewService is a mock implementation for controller tests.
type MockReviewService struct {
	mock.Mock
}

// Review (Mocked)
func (m *MockReviewService) Review(ctx context.Context, operator models.Operator, submissionID string, decision models.SubmissionStatus) error {
	args := m.Called(ctx, operator, submissionID, decision)
	return args.Error(0)
}

// Pending (Mocked)
func (m *MockReviewService) Pending(ctx context.Context) ([]models.PendingView, error) {
	args := m.Called(ctx)
	views, _ := args.Get(0).([]models.PendingView)
	return views, args.Error(1)
}

// SubscribePending (Mocked)
func (m *MockReviewService) SubscribePending(ctx context.Context) (*Subscription, error) {
	args := m.Called(ctx)
	sub, _ := args.Get(0).(*Subscription)
	return sub, args.Error(1)
}

// Enrich (Mocked)
func (m *MockReviewService) Enrich(ctx context.Context, subs []models.P2PSubmission) []models.PendingView {
	args := m.Called(ctx, subs)
	views, _ := args.Get(0).([]models.PendingView)
	return views
}

// MockResetService is a mock implementation for controller tests.
type MockResetService struct {
	mock.Mock
}

// Trigger (Mocked)
func (m *MockResetService) Trigger(ctx context.Context, operator models.Operator, typed string) error {
	args := m.Called(ctx, operator, typed)
	return args.Error(0)
}

// Gate returns the real phrase so views render the same hint.
func (m *MockResetService) Gate() ConfirmationGate {
	return ConfirmationGate{Phrase: RequiredPhrase}
}

// EventID (Mocked)
func (m *MockResetService) EventID() string {
	args := m.Called()
	return args.String(0)
}

// MockResetOrchestrator records reset calls.
type MockResetOrchestrator struct {
	mock.Mock
}

// Reset (Mocked)
func (m *MockResetOrchestrator) Reset(ctx context.Context, eventID string) error {
	args := m.Called(ctx, eventID)
	return args.Error(0)
}
