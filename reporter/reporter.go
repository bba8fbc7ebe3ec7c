// Package reporter forwards operation-fatal errors to Sentry.
// file: reporter/reporter.go
package reporter

import (
	"sync"
	"time"

	"github.com/getsentry/sentry-go"
	"trading-cards-admin/logger"
)

// Reporter receives errors worth a human's attention.
type Reporter interface {
	Report(error)
}

type sentryReporter struct{}

func (sentryReporter) Report(err error) {
	sentry.CaptureException(err)
}

var (
	mu        sync.RWMutex
	reporters []Reporter
)

// InitSentry registers a Sentry reporter. An empty DSN leaves reporting off.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		logger.Warn.Println("InitSentry: empty DSN, error reporting disabled")
		return nil
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: environment}); err != nil {
		return err
	}
	Register(sentryReporter{})
	logger.Info.Println("InitSentry: sentry error reporter initialized")
	return nil
}

// Register adds r to the set of reporters.
func Register(r Reporter) {
	mu.Lock()
	defer mu.Unlock()
	reporters = append(reporters, r)
}

// Reset drops every registered reporter.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	reporters = nil
}

// Report sends err to every registered reporter. nil is ignored.
func Report(err error) {
	if err == nil {
		return
	}
	mu.RLock()
	defer mu.RUnlock()
	for _, r := range reporters {
		r.Report(err)
	}
}

// Flush waits for buffered Sentry events, used on shutdown.
func Flush() {
	sentry.Flush(2 * time.Second)
}
