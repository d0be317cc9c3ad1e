// Leadline server: receives WhatsApp webhook traffic, runs the reasoning
// pipeline per conversation, schedules follow-ups and serves the operator
// surface.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/leadline-ai/leadline/pkg/api"
	"github.com/leadline-ai/leadline/pkg/cleanup"
	"github.com/leadline-ai/leadline/pkg/config"
	"github.com/leadline-ai/leadline/pkg/database"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/llm"
	"github.com/leadline-ai/leadline/pkg/orchestrator"
	"github.com/leadline-ai/leadline/pkg/pipeline"
	"github.com/leadline-ai/leadline/pkg/scheduler"
	"github.com/leadline-ai/leadline/pkg/store"
	"github.com/leadline-ai/leadline/pkg/version"
	"github.com/leadline-ai/leadline/pkg/whatsapp"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica logging.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file, continuing with existing environment", "error", err)
	}

	podID := resolvePodID()
	slog.Info("Starting leadline", "version", version.Full(), "pod_id", podID)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (connect + migrate)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	st := store.NewEntStore(dbClient.Client)

	// 3. LLM client and pipeline
	llmConfig, err := llm.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load LLM config", "error", err)
		os.Exit(1)
	}
	chatClient, err := llm.NewClient(llmConfig)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}
	pipe := pipeline.New(chatClient, pipeline.Config{
		MaxAttempts:    llmConfig.MaxAttempts,
		RetryBaseDelay: 500 * time.Millisecond,
	})
	slog.Info("LLM pipeline initialized", "model", llmConfig.Model)

	// 4. Outbound transport
	sender := whatsapp.NewClient(whatsapp.Config{
		BaseURL:     getEnv("WHATSAPP_API_BASE", ""),
		APIVersion:  getEnv("WHATSAPP_API_VERSION", ""),
		AccessToken: os.Getenv("WHATSAPP_ACCESS_TOKEN"),
	})

	// 5. Operator event bus
	bus := events.NewBus(10 * time.Second)
	publisher := events.NewPublisher(bus)

	// 6. Orchestrator and scheduler
	ladder := scheduler.NewLadder(st, cfg.LadderOffsets)
	orch := orchestrator.New(st, pipe, sender, ladder, publisher, orchestrator.Config{
		MaxWords:            cfg.MaxWords,
		QuestionsPerMessage: cfg.QuestionsPerMessage,
	})

	worker := scheduler.NewWorker(st, orch, scheduler.WorkerConfig{
		PollInterval: cfg.PollInterval,
		ClaimLimit:   cfg.ClaimLimit,
	})
	worker.Start(ctx)

	// 7. Retention sweep
	sweeper := cleanup.NewService(st, cfg.ActionRetention, time.Hour)
	sweeper.Start(ctx)

	// 8. HTTP server
	httpServer := api.NewServer(cfg, dbClient, orch, bus)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.HTTPAddr)
		if err := httpServer.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Leadline started", "pod_id", podID)

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop accepting traffic, then stop the timer
	// worker, then drain the conversation lanes.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	worker.Stop()
	sweeper.Stop()
	orch.Close()

	slog.Info("Shutdown complete")
}
