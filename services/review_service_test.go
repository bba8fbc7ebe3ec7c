// file: services/review_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
)

func newReviewFixture(t *testing.T) (*ReviewService, *MemoryStore, *recordingMetrics) {
	t.Helper()
	store := NewMemoryStore()
	require.NoError(t, store.CreateUser(context.Background(), models.UserAccount{ID: "u1", Username: "alice"}))
	require.NoError(t, store.CreateUser(context.Background(), models.UserAccount{ID: "u2", Username: "bob"}))
	rec := &recordingMetrics{}
	return NewReviewService(store, store, rec), store, rec
}

func TestReviewService_ApproveStampsDecision(t *testing.T) {
	svc, store, rec := newReviewFixture(t)
	seedSubmission(t, store, "s1", time.Now())
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	require.NoError(t, svc.Review(context.Background(), operator, "s1", models.StatusApproved))

	sub, err := store.GetSubmission("s1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, sub.Status)
	require.NotNil(t, sub.ReviewedAt)
	assert.True(t, fixed.Equal(*sub.ReviewedAt))
	assert.Equal(t, "admin", sub.ReviewedBy)
	assert.Equal(t, float64(1), rec.total(metrics.ReviewDecisions))
}

func TestReviewService_RejectsInvalidDecision(t *testing.T) {
	svc, store, _ := newReviewFixture(t)
	seedSubmission(t, store, "s1", time.Now())

	for _, d := range []models.SubmissionStatus{models.StatusPending, "archived", ""} {
		err := svc.Review(context.Background(), operator, "s1", d)
		assert.ErrorIs(t, err, ErrInvalidDecision)
	}

	sub, _ := store.GetSubmission("s1")
	assert.Equal(t, models.StatusPending, sub.Status)
}

func TestReviewService_SecondReviewRejected(t *testing.T) {
	svc, store, _ := newReviewFixture(t)
	seedSubmission(t, store, "s1", time.Now())

	require.NoError(t, svc.Review(context.Background(), operator, "s1", models.StatusRejected))
	err := svc.Review(context.Background(), operator, "s1", models.StatusApproved)
	assert.ErrorIs(t, err, ErrAlreadyReviewed)

	sub, _ := store.GetSubmission("s1")
	assert.Equal(t, models.StatusRejected, sub.Status, "first decision stands")
}

func TestReviewService_UnknownSubmission(t *testing.T) {
	svc, _, _ := newReviewFixture(t)

	assert.ErrorIs(t, svc.Review(context.Background(), operator, "ghost", models.StatusApproved), ErrNotFound)
	assert.ErrorIs(t, svc.Review(context.Background(), operator, "", models.StatusApproved), ErrInvalidInput)
}

func TestReviewService_PendingEnrichesNames(t *testing.T) {
	svc, store, _ := newReviewFixture(t)
	require.NoError(t, store.AddSubmission(models.P2PSubmission{
		ID: "s1", User1ID: "u1", User2ID: "u-gone", SubmittedAt: time.Now(),
	}))

	views, err := svc.Pending(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "alice", views[0].User1Name)
	assert.Equal(t, "u-gone", views[0].User2Name, "unknown users fall back to their id")
}

func TestReviewService_PendingEmptyIsNotNil(t *testing.T) {
	svc, _, _ := newReviewFixture(t)

	views, err := svc.Pending(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)
}

func TestReviewService_SubscribePendingReflectsDecisions(t *testing.T) {
	svc, store, _ := newReviewFixture(t)
	seedSubmission(t, store, "s1", time.Now())

	sub, err := svc.SubscribePending(context.Background())
	require.NoError(t, err)
	defer sub.Close()

	require.Len(t, waitForUpdate(t, sub), 1)
	require.NoError(t, svc.Review(context.Background(), operator, "s1", models.StatusApproved))
	assert.Empty(t, waitForUpdate(t, sub))
}
