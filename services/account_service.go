// File: services/account_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
)

// NewAccount is what the auth collaborator needs to register a login.
type NewAccount struct {
	Email       string
	Password    string
	DisplayName string
}

// AccountCreator registers sign-in accounts in a privileged context that is
// separate from the operator's own session, returning the new account's UID.
type AccountCreator interface {
	CreateAccount(ctx context.Context, account NewAccount) (string, error)
}

// FirebaseAccountCreator creates accounts through the Firebase Admin SDK.
type FirebaseAccountCreator struct {
	client *auth.Client
}

// NewFirebaseAccountCreator wraps an Admin SDK auth client.
func NewFirebaseAccountCreator(client *auth.Client) *FirebaseAccountCreator {
	return &FirebaseAccountCreator{client: client}
}

// CreateAccount creates an email/password account.
func (f *FirebaseAccountCreator) CreateAccount(ctx context.Context, account NewAccount) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(account.Email).
		Password(account.Password).
		DisplayName(account.DisplayName)

	record, err := f.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return "", fmt.Errorf("email %s is already registered: %w", account.Email, err)
		}
		return "", err
	}
	return record.UID, nil
}

// MemoryAccountCreator is the auth collaborator used with the memory backend.
// It enforces unique emails and Firebase's six-character password minimum.
type MemoryAccountCreator struct {
	mu     sync.Mutex
	emails map[string]string
}

// NewMemoryAccountCreator creates an empty account registry.
func NewMemoryAccountCreator() *MemoryAccountCreator {
	return &MemoryAccountCreator{emails: make(map[string]string)}
}

// CreateAccount registers the email and hands out a random UID.
func (m *MemoryAccountCreator) CreateAccount(_ context.Context, account NewAccount) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	email := strings.ToLower(account.Email)
	if !strings.Contains(email, "@") {
		return "", fmt.Errorf("invalid email %q", account.Email)
	}
	if len(account.Password) < 6 {
		return "", fmt.Errorf("weak password: must be at least 6 characters")
	}
	if _, exists := m.emails[email]; exists {
		return "", fmt.Errorf("email %s is already registered", account.Email)
	}
	uid := strings.ReplaceAll(uuid.NewString(), "-", "")
	m.emails[email] = uid
	return uid, nil
}
