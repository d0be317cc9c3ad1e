package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/models"
)

// Takeover switches the conversation to human mode, muting the bot for every
// subsequent event on the lane, and clears the pending ladder.
func (o *Orchestrator) Takeover(ctx context.Context, conversationID string) error {
	return o.lanes.Do(ctx, conversationID, func(ctx context.Context) error {
		mode := conversation.ModeHuman
		conv, err := o.store.UpdateConversation(ctx, conversationID, models.ConversationPatch{
			Mode: &mode,
		})
		if err != nil {
			return fmt.Errorf("set human mode: %w", err)
		}
		if _, err := o.store.CancelPendingActions(ctx, conversationID); err != nil {
			return fmt.Errorf("cancel ladder on takeover: %w", err)
		}
		o.logger.Info("operator takeover", "conversation_id", conversationID)
		o.publishConversationUpdated(conv)
		return nil
	})
}

// Release hands the conversation back to the bot. The ladder is not
// re-enrolled; the next user message owns that.
func (o *Orchestrator) Release(ctx context.Context, conversationID string) error {
	return o.lanes.Do(ctx, conversationID, func(ctx context.Context) error {
		mode := conversation.ModeBot
		conv, err := o.store.UpdateConversation(ctx, conversationID, models.ConversationPatch{
			Mode: &mode,
		})
		if err != nil {
			return fmt.Errorf("set bot mode: %w", err)
		}
		o.logger.Info("operator release", "conversation_id", conversationID)
		o.publishConversationUpdated(conv)
		return nil
	})
}

// ResolveAttention clears the attention flag and stamps the resolution time.
// Only this verb clears the flag; the bot never un-escalates itself. Mode is
// untouched: takeover and release are separate decisions.
func (o *Orchestrator) ResolveAttention(ctx context.Context, conversationID string) error {
	return o.lanes.Do(ctx, conversationID, func(ctx context.Context) error {
		flag := false
		now := time.Now()
		conv, err := o.store.UpdateConversation(ctx, conversationID, models.ConversationPatch{
			NeedsHumanAttention:      &flag,
			HumanAttentionResolvedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("resolve attention: %w", err)
		}
		o.logger.Info("operator resolved attention", "conversation_id", conversationID)
		o.publisher.AttentionResolved(conv.OrgID, events.AttentionPayload{
			ConversationID: conv.ID,
			LeadID:         conv.LeadID,
			Timestamp:      events.Timestamp(now),
		})
		return nil
	})
}
