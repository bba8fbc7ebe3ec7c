// File: services/firestore_store.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"trading-cards-admin/logger"
	"trading-cards-admin/models"
)

// FirestoreStore is the production Store backed by Cloud Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore wraps a connected client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// translateErr maps gRPC status codes onto the package's sentinel errors.
func translateErr(what string, err error) error {
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", what, ErrAlreadyExists)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

// ------------------ users ------------------

// CreateUser writes users/<uid>.
func (f *FirestoreStore) CreateUser(ctx context.Context, user models.UserAccount) error {
	if _, err := f.client.Collection(UsersCollection).Doc(user.ID).Create(ctx, user); err != nil {
		return translateErr("create user "+user.ID, err)
	}
	return nil
}

// GetUser reads users/<uid>.
func (f *FirestoreStore) GetUser(ctx context.Context, id string) (models.UserAccount, error) {
	snap, err := f.client.Collection(UsersCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.UserAccount{}, translateErr("get user "+id, err)
	}
	var user models.UserAccount
	if err := snap.DataTo(&user); err != nil {
		return models.UserAccount{}, fmt.Errorf("decode user %s: %w", id, err)
	}
	user.ID = snap.Ref.ID
	return user, nil
}

// ListUsers reads the whole users collection.
func (f *FirestoreStore) ListUsers(ctx context.Context) ([]models.UserAccount, error) {
	snaps, err := f.client.Collection(UsersCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, translateErr("list users", err)
	}
	users := make([]models.UserAccount, 0, len(snaps))
	for _, snap := range snaps {
		var user models.UserAccount
		if err := snap.DataTo(&user); err != nil {
			return nil, fmt.Errorf("decode user %s: %w", snap.Ref.ID, err)
		}
		user.ID = snap.Ref.ID
		users = append(users, user)
	}
	return users, nil
}

// ------------------ quests ------------------

// CreateQuest writes quests_master/<id>, failing if it already exists.
func (f *FirestoreStore) CreateQuest(ctx context.Context, quest models.Quest) error {
	if _, err := f.client.Collection(QuestsCollection).Doc(quest.ID).Create(ctx, quest); err != nil {
		return translateErr("create quest "+quest.ID, err)
	}
	return nil
}

// GetQuest reads quests_master/<id>.
func (f *FirestoreStore) GetQuest(ctx context.Context, id string) (models.Quest, error) {
	snap, err := f.client.Collection(QuestsCollection).Doc(id).Get(ctx)
	if err != nil {
		return models.Quest{}, translateErr("get quest "+id, err)
	}
	var quest models.Quest
	if err := snap.DataTo(&quest); err != nil {
		return models.Quest{}, fmt.Errorf("decode quest %s: %w", id, err)
	}
	quest.ID = snap.Ref.ID
	return quest, nil
}

// ListQuests reads the whole quests_master collection.
func (f *FirestoreStore) ListQuests(ctx context.Context) ([]models.Quest, error) {
	snaps, err := f.client.Collection(QuestsCollection).Documents(ctx).GetAll()
	if err != nil {
		return nil, translateErr("list quests", err)
	}
	quests := make([]models.Quest, 0, len(snaps))
	for _, snap := range snaps {
		var quest models.Quest
		if err := snap.DataTo(&quest); err != nil {
			return nil, fmt.Errorf("decode quest %s: %w", snap.Ref.ID, err)
		}
		quest.ID = snap.Ref.ID
		quests = append(quests, quest)
	}
	return quests, nil
}

// DeleteQuest removes quests_master/<id>.
func (f *FirestoreStore) DeleteQuest(ctx context.Context, id string) error {
	if _, err := f.client.Collection(QuestsCollection).Doc(id).Delete(ctx); err != nil {
		return translateErr("delete quest "+id, err)
	}
	return nil
}

// ------------------ submissions ------------------

// ReviewSubmission runs the pending → decision transition in a transaction so
// a concurrent review of the same document cannot apply twice.
func (f *FirestoreStore) ReviewSubmission(ctx context.Context, id string, decision models.SubmissionStatus, reviewedAt time.Time, reviewedBy string) error {
	ref := f.client.Collection(SubmissionsCollection).Doc(id)
	return f.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			return translateErr("get submission "+id, err)
		}
		current, err := snap.DataAt("status")
		if err != nil {
			return fmt.Errorf("read status of submission %s: %w", id, err)
		}
		if s, _ := current.(string); models.SubmissionStatus(s) != models.StatusPending {
			return fmt.Errorf("submission %s is %v: %w", id, current, ErrAlreadyReviewed)
		}
		return tx.Update(ref, []firestore.Update{
			{Path: "status", Value: string(decision)},
			{Path: "reviewedAt", Value: reviewedAt},
			{Path: "reviewedBy", Value: reviewedBy},
		})
	})
}

func (f *FirestoreStore) pendingQuery() firestore.Query {
	return f.client.Collection(SubmissionsCollection).Where("status", "==", string(models.StatusPending))
}

// ListPending fetches the pending set once.
func (f *FirestoreStore) ListPending(ctx context.Context) ([]models.P2PSubmission, error) {
	return decodeSubmissions(f.pendingQuery().Documents(ctx))
}

// SubscribePending attaches a snapshot listener to the pending query.
func (f *FirestoreStore) SubscribePending(ctx context.Context) (*Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)
	it := f.pendingQuery().Snapshots(ctx)
	sub := newSubscription(cancel, it.Stop)

	go func() {
		defer sub.Close()
		for {
			qs, err := it.Next()
			if err != nil {
				if ctx.Err() != nil || status.Code(err) == codes.Canceled || errors.Is(err, iterator.Done) {
					logger.Debug.Println("[FirestoreStore.SubscribePending] listener released")
					return
				}
				logger.Error.Printf("[FirestoreStore.SubscribePending] snapshot error: %v", err)
				sub.fail(err)
				return
			}
			subs, err := decodeSubmissions(qs.Documents)
			if err != nil {
				logger.Error.Printf("[FirestoreStore.SubscribePending] decode error: %v", err)
				sub.fail(err)
				return
			}
			sub.publish(subs)
		}
	}()
	return sub, nil
}

// Close closes the Firestore client.
func (f *FirestoreStore) Close() error {
	return f.client.Close()
}

func decodeSubmissions(docs *firestore.DocumentIterator) ([]models.P2PSubmission, error) {
	defer docs.Stop()
	var subs []models.P2PSubmission
	for {
		snap, err := docs.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, translateErr("list pending submissions", err)
		}
		var sub models.P2PSubmission
		if err := snap.DataTo(&sub); err != nil {
			return nil, fmt.Errorf("decode submission %s: %w", snap.Ref.ID, err)
		}
		sub.ID = snap.Ref.ID
		subs = append(subs, sub)
	}
	sortByArrival(subs)
	return subs, nil
}
