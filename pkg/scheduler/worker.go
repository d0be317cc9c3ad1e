package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/pkg/store"
)

// fanOutLimit bounds how many claimed actions are handled concurrently.
// Each handler occupies a conversation lane and an LLM call slot.
const fanOutLimit = 4

// TimerDispatcher receives claimed actions. Implemented by the orchestrator;
// the call runs the timer fire on the conversation's serial lane and blocks
// until the handler finishes.
type TimerDispatcher interface {
	HandleTimerFire(ctx context.Context, action *ent.ScheduledAction) error
}

// WorkerConfig holds the poll loop settings.
type WorkerConfig struct {
	PollInterval time.Duration
	ClaimLimit   int
}

// Worker polls for due scheduled actions and dispatches them. The claim is
// atomic in the store, so running one worker per replica is safe: an action
// fires at most once across the fleet.
type Worker struct {
	store      store.Store
	dispatcher TimerDispatcher
	cfg        WorkerConfig
	logger     *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a scheduler worker.
func NewWorker(st store.Store, dispatcher TimerDispatcher, cfg WorkerConfig) *Worker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 5 * time.Second
	}
	if cfg.ClaimLimit < 1 {
		cfg.ClaimLimit = 10
	}
	return &Worker{
		store:      st,
		dispatcher: dispatcher,
		cfg:        cfg,
		logger:     slog.Default().With("component", "scheduler-worker"),
		stopCh:     make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for in-flight fires to finish.
// Safe to call multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()
	w.logger.Info("Scheduler worker started",
		"poll_interval", w.cfg.PollInterval, "claim_limit", w.cfg.ClaimLimit)

	for {
		select {
		case <-w.stopCh:
			w.logger.Info("Scheduler worker shutting down")
			return
		case <-ctx.Done():
			w.logger.Info("Context cancelled, scheduler worker shutting down")
			return
		default:
			if err := w.pollOnce(ctx); err != nil {
				w.logger.Error("Scheduler poll failed", "error", err)
				w.sleep(time.Second)
				continue
			}
			w.sleep(w.jitteredInterval())
		}
	}
}

// pollOnce claims one batch of due actions and fans them out, bounded.
func (w *Worker) pollOnce(ctx context.Context) error {
	claimed, err := w.store.ClaimDueActions(ctx, time.Now(), w.cfg.ClaimLimit)
	if err != nil {
		return fmt.Errorf("claim due actions: %w", err)
	}
	if len(claimed) == 0 {
		return nil
	}

	w.logger.Debug("Claimed due actions", "count", len(claimed))

	g, fireCtx := errgroup.WithContext(ctx)
	g.SetLimit(fanOutLimit)
	for _, action := range claimed {
		g.Go(func() error {
			w.fire(fireCtx, action)
			return nil
		})
	}
	return g.Wait()
}

// fire runs the staleness gate and hands the action to the orchestrator.
// The orchestrator re-checks staleness and suppression on the lane; this
// pre-check just saves a lane hop for actions that are already obsolete.
func (w *Worker) fire(ctx context.Context, action *ent.ScheduledAction) {
	log := w.logger.With("action_id", action.ID, "conversation_id", action.ConversationID)

	conv, err := w.store.GetConversation(ctx, action.ConversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Conversation gone; the action is an orphan.
			_ = w.store.DeleteScheduledAction(ctx, action.ID)
			return
		}
		log.Error("Failed to load conversation for timer fire", "error", err)
		return
	}

	if IsStale(action, conv) {
		log.Info("Discarding stale action",
			"created_at", action.CreatedAt,
			"last_user_message_at", conv.LastUserMessageAt)
		if err := w.store.DeleteScheduledAction(ctx, action.ID); err != nil {
			log.Error("Failed to delete stale action", "error", err)
		}
		return
	}

	if err := w.dispatcher.HandleTimerFire(ctx, action); err != nil {
		log.Error("Timer fire handler failed", "error", err)
	}
}

// IsStale applies the staleness gate: the action was created before the
// conversation's latest user message, so the user has already spoken since
// scheduling and the nudge is obsolete.
func IsStale(action *ent.ScheduledAction, conv *ent.Conversation) bool {
	return conv.LastUserMessageAt != nil && action.CreatedAt.Before(*conv.LastUserMessageAt)
}

// jitteredInterval spreads replicas' polls apart: base ± 20%.
func (w *Worker) jitteredInterval() time.Duration {
	base := w.cfg.PollInterval
	jitter := time.Duration(rand.Int64N(int64(base) / 5))
	if rand.IntN(2) == 0 {
		return base - jitter
	}
	return base + jitter
}

func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}
