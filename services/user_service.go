// File: services/user_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/models"
	"trading-cards-admin/reporter"
)

const tradingKeyLength = 10

// UserServiceInterface is what the user controller depends on.
type UserServiceInterface interface {
	Create(ctx context.Context, operator models.Operator, profile models.UserProfile) (string, error)
	List(ctx context.Context) ([]models.UserAccount, error)
}

// UserService provisions attendee accounts.
type UserService struct {
	accounts AccountCreator
	users    UserStore
	metrics  metrics.Publisher
	now      func() time.Time
	newKey   func() (string, error)
}

// NewUserService wires the auth collaborator and the profile store.
func NewUserService(accounts AccountCreator, users UserStore, pub metrics.Publisher) *UserService {
	return &UserService{
		accounts: accounts,
		users:    users,
		metrics:  pub,
		now:      time.Now,
		newKey:   func() (string, error) { return gonanoid.New(tradingKeyLength) },
	}
}

// Create registers the auth account, then writes its profile. A failed auth
// step leaves nothing behind; a failed profile write after a successful auth
// step returns ErrOrphanedAccount with the dangling UID.
func (s *UserService) Create(ctx context.Context, operator models.Operator, profile models.UserProfile) (string, error) {
	if strings.TrimSpace(profile.Username) == "" || strings.TrimSpace(profile.Email) == "" ||
		profile.Password == "" || strings.TrimSpace(profile.PreAssignedCardID) == "" {
		return "", fmt.Errorf("username, email, password and pre-assigned card are required: %w", ErrInvalidInput)
	}

	tradingKey, err := s.newKey()
	if err != nil {
		return "", fmt.Errorf("generate trading key: %w", err)
	}

	uid, err := s.accounts.CreateAccount(ctx, NewAccount{
		Email:       profile.Email,
		Password:    profile.Password,
		DisplayName: profile.Username,
	})
	if err != nil {
		logger.Warn.Printf("[UserService.Create] auth account for %s failed: %v", profile.Email, err)
		return "", err
	}

	account := models.UserAccount{
		ID:                uid,
		Username:          profile.Username,
		Email:             profile.Email,
		TradingKey:        tradingKey,
		PreAssignedCardID: profile.PreAssignedCardID,
		Role:              models.RoleAttendee,
		CreatedAt:         s.now(),
	}
	if err := s.users.CreateUser(ctx, account); err != nil {
		orphan := fmt.Errorf("uid %s (%s): %w: %v", uid, profile.Email, ErrOrphanedAccount, err)
		logger.Error.Printf("[UserService.Create] %v", orphan)
		reporter.Report(orphan)
		return uid, orphan
	}

	s.metrics.Count(metrics.UsersProvisioned, 1)
	logger.Info.Printf("[UserService.Create] %s created user %s (uid=%s)", operator.Username, profile.Username, uid)
	return uid, nil
}

// List returns every profile.
func (s *UserService) List(ctx context.Context) ([]models.UserAccount, error) {
	return s.users.ListUsers(ctx)
}

// IsOrphaned reports whether err left an auth account without a profile.
func IsOrphaned(err error) bool {
	return errors.Is(err, ErrOrphanedAccount)
}
