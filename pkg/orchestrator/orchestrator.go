// Package orchestrator is the per-conversation state machine. It binds
// inbound messages, timer fires and operator verbs to one serial lane per
// conversation, runs the reasoning pipeline, and applies the outcome:
// outbound dispatch, follow-up ladders, attention flags, operator events.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/pipeline"
	"github.com/leadline-ai/leadline/pkg/scheduler"
	"github.com/leadline-ai/leadline/pkg/store"
	"github.com/leadline-ai/leadline/pkg/whatsapp"
)

// Sender dispatches outbound text through the messaging transport.
// Implemented by whatsapp.Client.
type Sender interface {
	SendText(ctx context.Context, phoneNumberID, accessToken, to, body string) (string, error)
}

// Config holds the orchestrator knobs.
type Config struct {
	MaxWords            int
	QuestionsPerMessage int
	LaneIdleTTL         time.Duration
}

// Orchestrator handles UserMessage and TimerFire events plus operator verbs.
type Orchestrator struct {
	store     store.Store
	pipe      *pipeline.Pipeline
	sender    Sender
	ladder    *scheduler.Ladder
	publisher *events.Publisher
	lanes     *Lanes
	logger    *slog.Logger

	maxWords            int
	questionsPerMessage int
}

// New creates the orchestrator. publisher may be built over a nil bus in
// tests; every publish is best-effort.
func New(st store.Store, pipe *pipeline.Pipeline, sender Sender, ladder *scheduler.Ladder, publisher *events.Publisher, cfg Config) *Orchestrator {
	if cfg.MaxWords < 1 {
		cfg.MaxWords = 80
	}
	if cfg.QuestionsPerMessage < 0 {
		cfg.QuestionsPerMessage = 1
	}
	return &Orchestrator{
		store:               st,
		pipe:                pipe,
		sender:              sender,
		ladder:              ladder,
		publisher:           publisher,
		lanes:               NewLanes(cfg.LaneIdleTTL),
		logger:              slog.Default().With("component", "orchestrator"),
		maxWords:            cfg.MaxWords,
		questionsPerMessage: cfg.QuestionsPerMessage,
	}
}

// Close drains the conversation lanes. Call after every event source
// (HTTP server, scheduler worker) has stopped.
func (o *Orchestrator) Close() {
	o.lanes.Close()
}

// HandleUserMessage processes one inbound message end to end. Returns an
// error only when the message could not be recorded; once the transcript row
// exists, failures degrade to silence plus operator notification.
func (o *Orchestrator) HandleUserMessage(ctx context.Context, msg whatsapp.InboundMessage) error {
	integ, err := o.store.ResolveIntegration(ctx, msg.PhoneNumberID)
	if err != nil {
		return fmt.Errorf("resolve integration for %s: %w", msg.PhoneNumberID, err)
	}

	ld, err := o.store.UpsertLead(ctx, integ.OrgID, msg.From, msg.SenderName)
	if err != nil {
		return fmt.Errorf("upsert lead: %w", err)
	}

	conv, created, err := o.store.GetOrCreateConversation(ctx, integ.OrgID, ld.ID)
	if err != nil {
		return fmt.Errorf("get or create conversation: %w", err)
	}
	if created {
		o.logger.Info("conversation created", "conversation_id", conv.ID, "lead_id", ld.ID)
	}

	return o.lanes.Do(ctx, conv.ID, func(ctx context.Context) error {
		return o.handleUserMessageOnLane(ctx, integ, ld, conv.ID, msg)
	})
}

func (o *Orchestrator) handleUserMessageOnLane(ctx context.Context, integ *ent.Integration, ld *ent.Lead, convID string, msg whatsapp.InboundMessage) error {
	log := o.logger.With("conversation_id", convID)
	ts := msg.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	// Record the inbound row first. Everything after this point degrades to
	// silence; only a failure here propagates so the provider redelivers.
	inbound, err := o.store.AppendMessage(ctx, store.AppendMessageInput{
		ConversationID: convID,
		Sender:         message.SenderLead,
		Direction:      message.DirectionInbound,
		Text:           msg.Text,
		Timestamp:      ts,
		ProviderMsgID:  msg.ProviderMsgID,
	})
	if err != nil {
		return fmt.Errorf("append inbound message: %w", err)
	}

	// The inbound row is recorded; from here on nothing propagates, or the
	// provider would redeliver a message we already have.
	conv, err := o.store.UpdateConversation(ctx, convID, models.ConversationPatch{
		LastUserMessageAt: &ts,
	})
	if err != nil {
		log.Error("failed to update last_user_message_at", "error", err)
		conv, err = o.store.GetConversation(ctx, convID)
		if err != nil {
			log.Error("failed to load conversation, turn degrades to silence", "error", err)
			return nil
		}
	}

	// A new user message obsoletes any prior ladder.
	if _, err := o.store.CancelPendingActions(ctx, convID); err != nil {
		log.Error("failed to cancel pending actions", "error", err)
		return nil
	}

	o.publishMessageCreated(conv, inbound)

	if conv.Mode == conversation.ModeHuman {
		log.Debug("conversation in human mode, pipeline skipped")
		return nil
	}

	now := time.Now()
	input, err := o.buildInput(ctx, integ, conv, now)
	if err != nil {
		log.Error("failed to build pipeline input", "error", err)
		return nil
	}

	cls, fellBack := o.classifyWithFallback(ctx, log, input)

	finalStage := pipeline.ApplyStageOverride(log, conv.Stage, cls.NewStage, analyzerStage(cls, conv.Stage), cls.Confidence)

	// The fallback verdict carries zero confidence but is a deterministic
	// local decision, not a model judgment; it never escalates on its own.
	needsAttention := conv.NeedsHumanAttention || cls.NeedsHumanAttention ||
		(!fellBack && cls.HighRiskOrLowConfidence())

	patch := models.ConversationPatch{
		Stage:               &finalStage,
		IntentLevel:         &cls.IntentLevel,
		UserSentiment:       &cls.UserSentiment,
		NeedsHumanAttention: &needsAttention,
	}
	conv, err = o.store.UpdateConversation(ctx, convID, patch)
	if err != nil {
		log.Error("failed to apply classification patch", "error", err)
		return nil
	}
	o.publishConversationUpdated(conv)

	if needsAttention || cls.Action == models.ActionFlagAttention || cls.Action == models.ActionHandoffHuman {
		log.Info("human attention raised",
			"action", cls.Action,
			"confidence", cls.Confidence,
			"risk_high", cls.RiskFlags.AnyHigh())
		o.publishAttentionRaised(conv, cls.SituationSummary)
		// Invariant: raised attention leaves zero pending follow-ups.
		if _, err := o.store.CancelPendingActions(ctx, convID); err != nil {
			log.Error("failed to cancel actions after attention", "error", err)
		}
		o.summarize(ctx, log, conv, msg.Text, "", string(cls.Action))
		return nil
	}

	var botText string
	if cls.ShouldRespond && cls.Action.RequiresReply() {
		botText = o.generateAndDispatch(ctx, log, integ, ld, conv, input, cls)
		conv = o.refreshConversation(ctx, conv)
	}

	// The ladder is owned by user-message handling. Enrolment re-checks
	// suppression against the freshly patched conversation.
	if _, err := o.ladder.Enrol(ctx, conv, time.Now()); err != nil {
		log.Error("failed to enrol follow-up ladder", "error", err)
	}

	o.summarize(ctx, log, conv, msg.Text, botText, string(cls.Action))
	return nil
}

// classifyWithFallback runs Classify and degrades protocol failures to the
// safe fallback decision: stay silent, keep the ladder. The second return
// reports whether the fallback was applied.
func (o *Orchestrator) classifyWithFallback(ctx context.Context, log *slog.Logger, input *pipeline.Input) (*pipeline.ClassifyOutput, bool) {
	cls, err := o.pipe.Classify(ctx, input)
	if err != nil {
		log.Warn("classify failed, applying safe fallback", "error", err)
		return pipeline.SafeFallbackClassification(input), true
	}
	return cls, false
}

// generateAndDispatch runs Generate and sends the reply. Returns the sent
// text, or empty when the turn degraded to silence. A transport failure
// raises human attention instead of retrying: delivery state is unknown and
// a double send is worse than silence.
func (o *Orchestrator) generateAndDispatch(ctx context.Context, log *slog.Logger, integ *ent.Integration, ld *ent.Lead, conv *ent.Conversation, input *pipeline.Input, cls *pipeline.ClassifyOutput) string {
	gen, err := o.pipe.Generate(ctx, input, cls)
	if err != nil {
		log.Warn("generate failed, turn degrades to silence", "error", err)
		return ""
	}
	if !gen.Sendable() {
		log.Info("generated reply rejected by self check", "violations", gen.Violations)
		return ""
	}

	providerMsgID, err := o.sender.SendText(ctx, integ.PhoneNumberID, integ.AccessToken, ld.Phone, gen.MessageText)
	if err != nil {
		log.Error("outbound send failed, raising human attention", "error", err)
		o.raiseAttention(ctx, log, conv, "outbound delivery failed")
		return ""
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
		// The send went out; the transcript row is the part we can retry on
		// the next turn's summarize. Log loudly, do not fail the turn.
		log.Error("failed to record outbound message", "error", err)
	} else {
		o.publishMessageCreated(conv, outbound)
	}

	if _, err := o.store.UpdateConversation(ctx, conv.ID, models.ConversationPatch{
		LastBotMessageAt: &sentAt,
	}); err != nil {
		log.Error("failed to update last_bot_message_at", "error", err)
	}

	return gen.MessageText
}

// summarize runs the Memory stage on the lane before the handler returns, so
// the next event's Classify always sees the committed summary. Failures fall
// back to the dirty append.
func (o *Orchestrator) summarize(ctx context.Context, log *slog.Logger, conv *ent.Conversation, userMsg, botMsg, actionTaken string) {
	summary, err := o.pipe.Summarize(ctx, conv.RollingSummary, userMsg, botMsg, actionTaken)
	if err != nil {
		log.Warn("summarize failed, dirty-appending", "error", err)
		summary = pipeline.DirtyAppendSummary(conv.RollingSummary, userMsg, botMsg)
	}
	if summary == conv.RollingSummary {
		return
	}
	if _, err := o.store.UpdateConversation(ctx, conv.ID, models.ConversationPatch{
		RollingSummary: &summary,
	}); err != nil {
		log.Error("failed to persist rolling summary", "error", err)
	}
}

// raiseAttention flags the conversation, clears its ladder and notifies
// operators. Used for outbound transport failures.
func (o *Orchestrator) raiseAttention(ctx context.Context, log *slog.Logger, conv *ent.Conversation, reason string) {
	flag := true
	updated, err := o.store.UpdateConversation(ctx, conv.ID, models.ConversationPatch{
		NeedsHumanAttention: &flag,
	})
	if err != nil {
		log.Error("failed to set needs_human_attention", "error", err)
		updated = conv
	}
	if _, err := o.store.CancelPendingActions(ctx, conv.ID); err != nil {
		log.Error("failed to cancel actions after attention", "error", err)
	}
	o.publishAttentionRaised(updated, reason)
}

// refreshConversation re-reads the conversation after dispatch so ladder
// suppression and summarize see the latest state.
func (o *Orchestrator) refreshConversation(ctx context.Context, conv *ent.Conversation) *ent.Conversation {
	fresh, err := o.store.GetConversation(ctx, conv.ID)
	if err != nil {
		o.logger.Error("failed to refresh conversation", "conversation_id", conv.ID, "error", err)
		return conv
	}
	return fresh
}

// analyzerStage derives a funnel stage from the intent analysis. HIGH intent
// argues for at least PRICING; it only wins over the model's suggestion at
// confidence >= 0.7 and only ever forward.
func analyzerStage(cls *pipeline.ClassifyOutput, current conversation.Stage) conversation.Stage {
	if cls.IntentLevel == conversation.IntentLevelHigh && models.StageOrder(current) < models.StageOrder(conversation.StagePricing) {
		return conversation.StagePricing
	}
	return ""
}

func (o *Orchestrator) publishMessageCreated(conv *ent.Conversation, m *ent.Message) {
	o.publisher.MessageCreated(conv.OrgID, events.MessageCreatedPayload{
		MessageID:      m.ID,
		ConversationID: conv.ID,
		LeadID:         conv.LeadID,
		Sender:         string(m.Sender),
		Direction:      string(m.Direction),
		Text:           m.Text,
		Timestamp:      events.Timestamp(m.CreatedAt),
	})
}

func (o *Orchestrator) publishConversationUpdated(conv *ent.Conversation) {
	o.publisher.ConversationUpdated(conv.OrgID, events.ConversationUpdatedPayload{
		ConversationID:      conv.ID,
		LeadID:              conv.LeadID,
		Mode:                string(conv.Mode),
		Stage:               string(conv.Stage),
		IntentLevel:         string(conv.IntentLevel),
		UserSentiment:       string(conv.UserSentiment),
		NeedsHumanAttention: conv.NeedsHumanAttention,
		Timestamp:           events.Timestamp(time.Now()),
	})
}

func (o *Orchestrator) publishAttentionRaised(conv *ent.Conversation, reason string) {
	o.publisher.AttentionRaised(conv.OrgID, events.AttentionPayload{
		ConversationID: conv.ID,
		LeadID:         conv.LeadID,
		Reason:         reason,
		Timestamp:      events.Timestamp(time.Now()),
	})
}

// errConversationGone marks timer fires whose conversation disappeared.
var errConversationGone = errors.New("conversation no longer exists")
