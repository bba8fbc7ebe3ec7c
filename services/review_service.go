// File: services/review_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
)

// ReviewServiceInterface is what the P2P controller and live feed depend on.
type ReviewServiceInterface interface {
	Review(ctx context.Context, operator models.Operator, submissionID string, decision models.SubmissionStatus) error
	Pending(ctx context.Context) ([]models.PendingView, error)
	SubscribePending(ctx context.Context) (*Subscription, error)
	Enrich(ctx context.Context, subs []models.P2PSubmission) []models.PendingView
}

// ReviewService moderates P2P submissions. Granting rewards for approved
// submissions is done by a backend trigger on the status change.
type ReviewService struct {
	submissions SubmissionStore
	users       UserStore
	metrics     metrics.Publisher
	now         func() time.Time
}

// NewReviewService wires the submission and user stores.
func NewReviewService(submissions SubmissionStore, users UserStore, pub metrics.Publisher) *ReviewService {
	return &ReviewService{
		submissions: submissions,
		users:       users,
		metrics:     pub,
		now:         time.Now,
	}
}

// Review moves a pending submission to approved or rejected and stamps the
// decision time. Decided submissions are never re-reviewed.
func (s *ReviewService) Review(ctx context.Context, operator models.Operator, submissionID string, decision models.SubmissionStatus) error {
	if strings.TrimSpace(submissionID) == "" {
		return fmt.Errorf("submission id is required: %w", ErrInvalidInput)
	}
	if !decision.IsDecision() {
		return fmt.Errorf("%q: %w", decision, ErrInvalidDecision)
	}

	if err := s.submissions.ReviewSubmission(ctx, submissionID, decision, s.now(), operator.Username); err != nil {
		if errors.Is(err, ErrAlreadyReviewed) || errors.Is(err, ErrNotFound) {
			logger.Warn.Printf("[ReviewService.Review] %s could not review %s: %v", operator.Username, submissionID, err)
		} else {
			logger.Error.Printf("[ReviewService.Review] review of %s failed: %v", submissionID, err)
		}
		return err
	}

	s.metrics.Count(metrics.ReviewDecisions, 1, "Decision", string(decision))
	logger.Info.Printf("[ReviewService.Review] %s marked submission %s as %s", operator.Username, submissionID, decision)
	return nil
}

// Pending returns a point-in-time view of the pending queue.
func (s *ReviewService) Pending(ctx context.Context) ([]models.PendingView, error) {
	subs, err := s.submissions.ListPending(ctx)
	if err != nil {
		return nil, err
	}
	return s.Enrich(ctx, subs), nil
}

// SubscribePending opens a live pending-queue listener. Callers own the
// returned handle and must Close it.
func (s *ReviewService) SubscribePending(ctx context.Context) (*Subscription, error) {
	return s.submissions.SubscribePending(ctx)
}

// Enrich attaches player usernames, falling back to the raw ids.
func (s *ReviewService) Enrich(ctx context.Context, subs []models.P2PSubmission) []models.PendingView {
	names := make(map[string]string)
	lookup := func(id string) string {
		if name, ok := names[id]; ok {
			return name
		}
		name := id
		if user, err := s.users.GetUser(ctx, id); err == nil && user.Username != "" {
			name = user.Username
		}
		names[id] = name
		return name
	}

	views := make([]models.PendingView, 0, len(subs))
	for _, sub := range subs {
		views = append(views, models.PendingView{
			P2PSubmission: sub,
			User1Name:     lookup(sub.User1ID),
			User2Name:     lookup(sub.User2ID),
		})
	}
	s.metrics.Count(metrics.PendingSubmissions, float64(len(views)))
	return views
}
