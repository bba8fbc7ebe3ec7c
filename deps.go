// deps.go
package main

import (
	"context"
	"fmt"
	"net/http"

	firebase "firebase.google.com/go/v4"
	"github.com/aws/aws-xray-sdk-go/xray"
	"trading-cards-admin/config"
	"trading-cards-admin/logger"
	"trading-cards-admin/metrics"
	"trading-cards-admin/services"
	"trading-cards-admin/websocket"
)

// deps is everything the router needs.
type deps struct {
	Store   services.Store
	Users   *services.UserService
	Quests  *services.QuestService
	Reviews *services.ReviewService
	Reset   *services.ResetService
	Feed    *websocket.Feed
}

// buildDeps connects the configured backend and wires the services over it.
func buildDeps(ctx context.Context, cfg *config.Config) (*deps, error) {
	pub, err := newPublisher(cfg)
	if err != nil {
		return nil, err
	}

	var (
		store    services.Store
		accounts services.AccountCreator
	)
	switch cfg.StoreBackend {
	case config.BackendMemory:
		logger.Warn.Println("buildDeps: using the in-memory backend; nothing is persisted")
		store = services.NewMemoryStore()
		accounts = services.NewMemoryAccountCreator()
	default:
		app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID})
		if err != nil {
			return nil, fmt.Errorf("firebase app: %w", err)
		}
		fs, err := app.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("firestore client: %w", err)
		}
		authClient, err := app.Auth(ctx)
		if err != nil {
			_ = fs.Close()
			return nil, fmt.Errorf("auth client: %w", err)
		}
		store = services.NewFirestoreStore(fs)
		accounts = services.NewFirebaseAccountCreator(authClient)
	}

	reviews := services.NewReviewService(store, store, pub)
	websocket.AllowOrigins(cfg.AllowedOrigins...)

	return &deps{
		Store:   store,
		Users:   services.NewUserService(accounts, store, pub),
		Quests:  services.NewQuestService(store, pub, cfg.PublicAppURL),
		Reviews: reviews,
		Reset:   services.NewResetService(newOrchestrator(ctx, cfg), cfg.EventID, pub),
		Feed:    websocket.NewFeed(reviews, pub),
	}, nil
}

func newPublisher(cfg *config.Config) (metrics.Publisher, error) {
	if !cfg.MetricsEnabled {
		return metrics.Nop{}, nil
	}
	cw, err := metrics.NewCloudWatch(cfg.MetricsNamespace, cfg.EventID)
	if err != nil {
		return nil, fmt.Errorf("cloudwatch: %w", err)
	}
	return cw, nil
}

// newOrchestrator returns nil when no reset function is configured; the reset
// service then refuses every request.
func newOrchestrator(ctx context.Context, cfg *config.Config) services.ResetOrchestrator {
	if cfg.ResetFunctionURL == "" {
		logger.Warn.Println("newOrchestrator: RESET_FUNCTION_URL not set, resets are disabled")
		return nil
	}

	client, err := services.NewIDTokenClient(ctx, cfg.ResetFunctionURL, cfg.ResetTimeout)
	if err != nil {
		// emulator and local runs have no service account to mint tokens with
		logger.Warn.Printf("newOrchestrator: %v; calling the reset function without an ID token", err)
		client = &http.Client{Timeout: cfg.ResetTimeout}
	}
	if cfg.XRayEnabled {
		client = xray.Client(client)
	}
	return services.NewHTTPResetOrchestrator(cfg.ResetFunctionURL, client)
}
