// main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"trading-cards-admin/config"
	"trading-cards-admin/logger"
	"trading-cards-admin/reporter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := logger.InitLogger(cfg.LogDir); err != nil {
		log.Fatalf("Failed to initialise logger: %v", err)
	}
	logger.SetLogLevel(cfg.Env)

	if err := reporter.InitSentry(cfg.SentryDSN, cfg.Env); err != nil {
		logger.Error.Printf("main: sentry init failed, continuing without error reporting: %v", err)
	}
	defer reporter.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := buildDeps(ctx, cfg)
	if err != nil {
		logger.Error.Printf("main: failed to initialise services: %v", err)
		log.Fatalf("Failed to initialise services: %v", err)
	}
	defer func() {
		if err := deps.Store.Close(); err != nil {
			logger.Warn.Printf("main: closing store: %v", err)
		}
	}()

	router := setupRouter(cfg, deps)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           withTracing(cfg, router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info.Printf("main: listening on :%s (backend=%s, event=%s)", cfg.Port, cfg.StoreBackend, cfg.EventID)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info.Println("main: shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error.Printf("main: graceful shutdown failed: %v", err)
	}
}
