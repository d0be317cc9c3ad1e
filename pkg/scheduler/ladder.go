// Package scheduler owns the durable follow-up timers: enrolling the static
// ladder after a turn and firing due actions through an atomic claim.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/store"
)

// Ladder enrols the static follow-up ladder for a conversation.
type Ladder struct {
	store   store.Store
	offsets []time.Duration
	logger  *slog.Logger
}

// NewLadder creates a ladder over the given offsets, ascending from now.
func NewLadder(st store.Store, offsets []time.Duration) *Ladder {
	if len(offsets) == 0 {
		panic("scheduler.NewLadder: at least one offset is required")
	}
	return &Ladder{
		store:   st,
		offsets: offsets,
		logger:  slog.Default().With("component", "scheduler"),
	}
}

// Size returns the number of rungs in the ladder.
func (l *Ladder) Size() int {
	return len(l.offsets)
}

// Suppressed reports whether the conversation must not receive follow-ups:
// human mode, raised attention, or a terminal stage.
func Suppressed(conv *ent.Conversation) bool {
	return conv.Mode == conversation.ModeHuman ||
		conv.NeedsHumanAttention ||
		models.IsTerminalStage(conv.Stage)
}

// Enrol cancels any pending actions and inserts the full ladder at the
// configured offsets from now. Suppressed conversations only get the cancel.
// Returns the number of actions created.
func (l *Ladder) Enrol(ctx context.Context, conv *ent.Conversation, now time.Time) (int, error) {
	// Cancel is mandatory even when suppressed: a stale ladder must never
	// outlive the decision that suppressed it.
	if _, err := l.store.CancelPendingActions(ctx, conv.ID); err != nil {
		return 0, fmt.Errorf("cancel pending actions: %w", err)
	}

	if Suppressed(conv) {
		l.logger.Debug("follow-up ladder suppressed",
			"conversation_id", conv.ID,
			"mode", conv.Mode,
			"stage", conv.Stage,
			"needs_human_attention", conv.NeedsHumanAttention)
		return 0, nil
	}

	specs := make([]store.ActionSpec, 0, len(l.offsets))
	for i, offset := range l.offsets {
		specs = append(specs, store.ActionSpec{
			ConversationID: conv.ID,
			Kind:           scheduledaction.KindFollowup,
			FireAt:         now.Add(offset),
			CreatedAt:      now,
			Context:        models.NewFollowupContext(i+1, int(offset.Minutes())).ToMap(),
		})
	}

	created, err := l.store.CreateScheduledActions(ctx, specs)
	if err != nil {
		return 0, fmt.Errorf("create ladder actions: %w", err)
	}

	l.logger.Info("follow-up ladder enrolled",
		"conversation_id", conv.ID,
		"rungs", len(created),
		"first_fire_at", now.Add(l.offsets[0]))
	return len(created), nil
}
