// Package cleanup enforces data retention for finished scheduled actions.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/leadline-ai/leadline/pkg/store"
)

// Service periodically deletes FIRED and CANCELLED scheduled actions past
// their retention window. PENDING rows are never touched. Idempotent and
// safe to run from multiple replicas.
type Service struct {
	store     store.Store
	retention time.Duration
	interval  time.Duration

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the retention sweeper.
func NewService(st store.Store, retention, interval time.Duration) *Service {
	if retention <= 0 {
		retention = 7 * 24 * time.Hour
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &Service{
		store:     st,
		retention: retention,
		interval:  interval,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"action_retention", s.retention,
		"interval", s.interval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	cutoff := time.Now().Add(-s.retention)
	count, err := s.store.SweepFinishedActions(ctx, cutoff)
	if err != nil {
		slog.Error("Retention: action sweep failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: swept finished actions", "count", count)
	}
}
