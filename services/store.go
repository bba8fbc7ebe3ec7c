// File: services/store.go
package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"trading-cards-admin/models"
)

// Firestore collection names.
const (
	UsersCollection       = "users"
	QuestsCollection      = "quests_master"
	SubmissionsCollection = "p2p_submissions"
)

// UserStore persists account profiles.
type UserStore interface {
	CreateUser(ctx context.Context, user models.UserAccount) error
	GetUser(ctx context.Context, id string) (models.UserAccount, error)
	ListUsers(ctx context.Context) ([]models.UserAccount, error)
}

// QuestStore persists quest definitions.
type QuestStore interface {
	CreateQuest(ctx context.Context, quest models.Quest) error
	GetQuest(ctx context.Context, id string) (models.Quest, error)
	ListQuests(ctx context.Context) ([]models.Quest, error)
	DeleteQuest(ctx context.Context, id string) error
}

// SubmissionStore persists P2P submissions and streams the pending set.
type SubmissionStore interface {
	// ReviewSubmission moves a pending submission to decision atomically.
	// It returns ErrNotFound or ErrAlreadyReviewed without writing.
	ReviewSubmission(ctx context.Context, id string, decision models.SubmissionStatus, reviewedAt time.Time, reviewedBy string) error
	ListPending(ctx context.Context) ([]models.P2PSubmission, error)
	SubscribePending(ctx context.Context) (*Subscription, error)
}

// Store is the full document store the dashboard needs.
type Store interface {
	UserStore
	QuestStore
	SubmissionStore
	Close() error
}

// ------------------ live subscriptions ------------------

// Subscription is a handle on a live query. Updates carries the full result
// set each time it changes; only the latest snapshot is kept if the reader
// falls behind. Close must be called to release the underlying listener.
type Subscription struct {
	updates chan []models.P2PSubmission
	errs    chan error
	cancel  context.CancelFunc
	done    chan struct{}
	once    sync.Once
	release func()
}

func newSubscription(cancel context.CancelFunc, release func()) *Subscription {
	return &Subscription{
		updates: make(chan []models.P2PSubmission, 1),
		errs:    make(chan error, 1),
		cancel:  cancel,
		done:    make(chan struct{}),
		release: release,
	}
}

// Updates delivers pending snapshots.
func (s *Subscription) Updates() <-chan []models.P2PSubmission {
	return s.updates
}

// Err delivers at most one terminal error from the listener.
func (s *Subscription) Err() <-chan error {
	return s.errs
}

// Done is closed once the subscription has been released.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

// Close releases the listener. It is safe to call more than once.
func (s *Subscription) Close() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
		if s.release != nil {
			s.release()
		}
		close(s.done)
	})
}

// publish replaces any unread snapshot with subs.
func (s *Subscription) publish(subs []models.P2PSubmission) {
	select {
	case <-s.done:
		return
	default:
	}
	for {
		select {
		case s.updates <- subs:
			return
		default:
		}
		select {
		case <-s.updates:
		default:
		}
	}
}

func (s *Subscription) fail(err error) {
	select {
	case s.errs <- err:
	default:
	}
}

// sortByArrival orders submissions by submittedAt, breaking ties by id.
func sortByArrival(subs []models.P2PSubmission) {
	sort.SliceStable(subs, func(i, j int) bool {
		if subs[i].SubmittedAt.Equal(subs[j].SubmittedAt) {
			return subs[i].ID < subs[j].ID
		}
		return subs[i].SubmittedAt.Before(subs[j].SubmittedAt)
	})
}
