// file: services/helpers_test.go
package services

import (
	"context"
	"errors"
	"sync"

	"trading-cards-admin/models"
)

type countedMetric struct {
	name  string
	value float64
	dims  []string
}

// recordingMetrics captures published metrics.
type recordingMetrics struct {
	mu     sync.Mutex
	counts []countedMetric
}

func (r *recordingMetrics) Count(name string, value float64, dims ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = append(r.counts, countedMetric{name: name, value: value, dims: dims})
}

func (r *recordingMetrics) total(name string) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum float64
	for _, c := range r.counts {
		if c.name == name {
			sum += c.value
		}
	}
	return sum
}

// recordingReporter captures reported errors.
type recordingReporter struct {
	mu   sync.Mutex
	errs []error
}

func (r *recordingReporter) Report(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recordingReporter) reported() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

// failingUserStore fails every profile write.
type failingUserStore struct {
	*MemoryStore
}

var errWriteFailed = errors.New("firestore unavailable")

func (f failingUserStore) CreateUser(context.Context, models.UserAccount) error {
	return errWriteFailed
}

// failingAccounts rejects every account.
type failingAccounts struct {
	calls int
}

func (f *failingAccounts) CreateAccount(context.Context, NewAccount) (string, error) {
	f.calls++
	return "", errors.New("email already registered")
}
