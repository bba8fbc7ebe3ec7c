// File: services/memory_store.go
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"trading-cards-admin/logger"
	"trading-cards-admin/models"
)

// MemoryStore is an in-process Store for local development and tests.
// Collections keep insertion order so listings are stable.
type MemoryStore struct {
	mu          sync.Mutex
	users       *linkedhashmap.Map
	quests      *linkedhashmap.Map
	submissions *linkedhashmap.Map
	subscribers map[*Subscription]struct{}
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:       linkedhashmap.New(),
		quests:      linkedhashmap.New(),
		submissions: linkedhashmap.New(),
		subscribers: make(map[*Subscription]struct{}),
	}
}

// ------------------ users ------------------

// CreateUser stores a profile under its auth UID.
func (m *MemoryStore) CreateUser(_ context.Context, user models.UserAccount) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users.Get(user.ID); exists {
		return fmt.Errorf("user %s: %w", user.ID, ErrAlreadyExists)
	}
	m.users.Put(user.ID, user)
	return nil
}

// GetUser fetches one profile.
func (m *MemoryStore) GetUser(_ context.Context, id string) (models.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.users.Get(id)
	if !ok {
		return models.UserAccount{}, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	return v.(models.UserAccount), nil
}

// ListUsers returns profiles in creation order.
func (m *MemoryStore) ListUsers(_ context.Context) ([]models.UserAccount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.UserAccount, 0, m.users.Size())
	for _, v := range m.users.Values() {
		out = append(out, v.(models.UserAccount))
	}
	return out, nil
}

// ------------------ quests ------------------

// CreateQuest stores a quest; an existing id is never overwritten.
func (m *MemoryStore) CreateQuest(_ context.Context, quest models.Quest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.quests.Get(quest.ID); exists {
		return fmt.Errorf("quest %s: %w", quest.ID, ErrAlreadyExists)
	}
	m.quests.Put(quest.ID, quest)
	return nil
}

// GetQuest fetches one quest.
func (m *MemoryStore) GetQuest(_ context.Context, id string) (models.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.quests.Get(id)
	if !ok {
		return models.Quest{}, fmt.Errorf("quest %s: %w", id, ErrNotFound)
	}
	return v.(models.Quest), nil
}

// ListQuests returns quests in creation order.
func (m *MemoryStore) ListQuests(_ context.Context) ([]models.Quest, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Quest, 0, m.quests.Size())
	for _, v := range m.quests.Values() {
		out = append(out, v.(models.Quest))
	}
	return out, nil
}

// DeleteQuest removes a quest. Deleting a missing quest is not an error,
// matching Firestore's delete semantics.
func (m *MemoryStore) DeleteQuest(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quests.Remove(id)
	return nil
}

// ------------------ submissions ------------------

// AddSubmission inserts a submission as the player-facing app would.
func (m *MemoryStore) AddSubmission(sub models.P2PSubmission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.submissions.Get(sub.ID); exists {
		return fmt.Errorf("submission %s: %w", sub.ID, ErrAlreadyExists)
	}
	if sub.Status == "" {
		sub.Status = models.StatusPending
	}
	m.submissions.Put(sub.ID, sub)
	m.notifyLocked()
	return nil
}

// GetSubmission fetches one submission regardless of status.
func (m *MemoryStore) GetSubmission(id string) (models.P2PSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.submissions.Get(id)
	if !ok {
		return models.P2PSubmission{}, fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	return v.(models.P2PSubmission), nil
}

// ReviewSubmission applies a decision to a pending submission.
func (m *MemoryStore) ReviewSubmission(_ context.Context, id string, decision models.SubmissionStatus, reviewedAt time.Time, reviewedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.submissions.Get(id)
	if !ok {
		return fmt.Errorf("submission %s: %w", id, ErrNotFound)
	}
	sub := v.(models.P2PSubmission)
	if sub.Status != models.StatusPending {
		return fmt.Errorf("submission %s is %s: %w", id, sub.Status, ErrAlreadyReviewed)
	}
	sub.Status = decision
	sub.ReviewedAt = &reviewedAt
	sub.ReviewedBy = reviewedBy
	m.submissions.Put(id, sub)
	m.notifyLocked()
	return nil
}

// ListPending returns pending submissions ordered by arrival.
func (m *MemoryStore) ListPending(_ context.Context) ([]models.P2PSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pendingLocked(), nil
}

// SubscribePending streams the pending set, starting with the current one.
func (m *MemoryStore) SubscribePending(ctx context.Context) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	var sub *Subscription
	sub = newSubscription(cancel, func() {
		m.mu.Lock()
		delete(m.subscribers, sub)
		m.mu.Unlock()
	})

	m.mu.Lock()
	m.subscribers[sub] = struct{}{}
	sub.publish(m.pendingLocked())
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		sub.Close()
	}()

	logger.Debug.Println("[MemoryStore.SubscribePending] listener registered")
	return sub, nil
}

// Subscribers reports how many live listeners are registered.
func (m *MemoryStore) Subscribers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.subscribers)
}

// Close releases every listener.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	subs := make([]*Subscription, 0, len(m.subscribers))
	for s := range m.subscribers {
		subs = append(subs, s)
	}
	m.mu.Unlock()

	for _, s := range subs {
		s.Close()
	}
	return nil
}

func (m *MemoryStore) pendingLocked() []models.P2PSubmission {
	var out []models.P2PSubmission
	for _, v := range m.submissions.Values() {
		sub := v.(models.P2PSubmission)
		if sub.Status == models.StatusPending {
			out = append(out, sub)
		}
	}
	sortByArrival(out)
	return out
}

func (m *MemoryStore) notifyLocked() {
	pending := m.pendingLocked()
	for s := range m.subscribers {
		s.publish(pending)
	}
}
