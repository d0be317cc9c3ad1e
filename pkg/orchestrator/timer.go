package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/pipeline"
	"github.com/leadline-ai/leadline/pkg/scheduler"
	"github.com/leadline-ai/leadline/pkg/store"
)

// HandleTimerFire processes one claimed follow-up action on the
// conversation's serial lane. The scheduler worker already pre-checked
// staleness, but the lane may have queued a user message since the claim, so
// every gate runs again here.
func (o *Orchestrator) HandleTimerFire(ctx context.Context, action *ent.ScheduledAction) error {
	return o.lanes.Do(ctx, action.ConversationID, func(ctx context.Context) error {
		return o.handleTimerFireOnLane(ctx, action)
	})
}

func (o *Orchestrator) handleTimerFireOnLane(ctx context.Context, action *ent.ScheduledAction) error {
	log := o.logger.With("conversation_id", action.ConversationID, "action_id", action.ID)
	followup := models.FollowupContextFromMap(action.Context)

	conv, err := o.store.GetConversation(ctx, action.ConversationID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			_ = o.store.DeleteScheduledAction(ctx, action.ID)
			return errConversationGone
		}
		return fmt.Errorf("load conversation: %w", err)
	}

	// Staleness gate: the user spoke after this action was scheduled.
	if scheduler.IsStale(action, conv) {
		log.Info("timer fire stale, discarding", "rung", followup.Rung)
		return o.store.DeleteScheduledAction(ctx, action.ID)
	}

	// Suppression gate: muted, escalated or finished conversations get no
	// nudges, and their remaining ladder is cleared.
	if scheduler.Suppressed(conv) {
		log.Info("timer fire suppressed, discarding",
			"mode", conv.Mode,
			"stage", conv.Stage,
			"needs_human_attention", conv.NeedsHumanAttention)
		if _, err := o.store.CancelPendingActions(ctx, conv.ID); err != nil {
			log.Error("failed to cancel remaining ladder", "error", err)
		}
		return o.store.DeleteScheduledAction(ctx, action.ID)
	}

	integ, err := o.store.GetIntegrationByOrg(ctx, conv.OrgID)
	if err != nil {
		return fmt.Errorf("load integration: %w", err)
	}
	ld, err := o.store.GetLead(ctx, conv.LeadID)
	if err != nil {
		return fmt.Errorf("load lead: %w", err)
	}

	input, err := o.buildInput(ctx, integ, conv, time.Now())
	if err != nil {
		return fmt.Errorf("build pipeline input: %w", err)
	}

	cls, err := o.pipe.Classify(ctx, input)
	if err != nil {
		// Protocol failures on a nudge drop silently: the user asked for
		// nothing, so nothing is the safe answer.
		log.Warn("classify failed on timer fire, dropping", "error", err)
		return nil
	}

	if cls.NeedsHumanAttention || cls.HighRiskOrLowConfidence() {
		log.Info("timer fire escalated to human attention", "confidence", cls.Confidence)
		o.raiseAttention(ctx, log, conv, cls.SituationSummary)
		return nil
	}

	if cls.Action != models.ActionSendNow || !cls.ShouldRespond {
		log.Debug("timer fire consumed without dispatch", "action", cls.Action)
		return nil
	}

	o.dispatchNudge(ctx, log, integ, ld, conv, action, input, cls, followup)
	return nil
}

// dispatchNudge generates and sends a follow-up message. Between Classify
// returning and the send, a user message may have landed on the store (it is
// queued behind us on the lane, but its webhook sibling for another replica
// is not), so staleness is re-checked one last time before dispatch.
func (o *Orchestrator) dispatchNudge(ctx context.Context, log *slog.Logger, integ *ent.Integration, ld *ent.Lead, conv *ent.Conversation, action *ent.ScheduledAction, input *pipeline.Input, cls *pipeline.ClassifyOutput, followup models.FollowupContext) {
	gen, err := o.pipe.Generate(ctx, input, cls)
	if err != nil {
		log.Warn("generate failed on timer fire, dropping", "error", err)
		return
	}
	if !gen.Sendable() {
		log.Info("nudge rejected by self check", "violations", gen.Violations)
		return
	}

	fresh, err := o.store.GetConversation(ctx, conv.ID)
	if err != nil {
		log.Error("failed to re-read conversation before nudge", "error", err)
		return
	}
	if scheduler.IsStale(action, fresh) {
		log.Info("nudge aborted, user spoke during generation")
		_ = o.store.DeleteScheduledAction(ctx, action.ID)
		return
	}

	providerMsgID, err := o.sender.SendText(ctx, integ.PhoneNumberID, integ.AccessToken, ld.Phone, gen.MessageText)
	if err != nil {
		log.Error("nudge send failed, raising human attention", "error", err)
		o.raiseAttention(ctx, log, fresh, "outbound delivery failed")
		return
	}

	sentAt := time.Now()
	outbound, err := o.store.AppendMessage(ctx, store.AppendMessageInput{
		ConversationID: conv.ID,
		Sender:         message.SenderBot,
		Direction:      message.DirectionOutbound,
		Text:           gen.MessageText,
		Timestamp:      sentAt,
		ProviderMsgID:  providerMsgID,
	})
	if err != nil {
		log.Error("failed to record nudge message", "error", err)
	} else {
		o.publishMessageCreated(fresh, outbound)
	}

	updated, err := o.store.UpdateConversation(ctx, conv.ID, models.ConversationPatch{
		LastBotMessageAt:    &sentAt,
		AddFollowupCount24h: 1,
		AddTotalNudges:      1,
	})
	if err != nil {
		log.Error("failed to update nudge counters", "error", err)
		updated = fresh
	}

	log.Info("nudge dispatched", "rung", followup.Rung, "reason", followup.Reason)
	o.summarize(ctx, log, updated, "", gen.MessageText, string(models.ActionSendNow))
}
