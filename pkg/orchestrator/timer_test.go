package orchestrator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/store"
	"github.com/leadline-ai/leadline/pkg/whatsapp"
)

// claimRungOne seeds a one-rung ladder and claims it, mirroring what the
// scheduler worker hands the orchestrator.
func claimRungOne(t *testing.T, f *fixture, convID string, createdAt time.Time) *ent.ScheduledAction {
	t.Helper()
	_, err := f.mem.CreateScheduledActions(context.Background(), []store.ActionSpec{{
		ConversationID: convID,
		FireAt:         time.Now().Add(-time.Second),
		CreatedAt:      createdAt,
		Context:        models.NewFollowupContext(1, 10).ToMap(),
	}})
	require.NoError(t, err)

	claimed, err := f.mem.ClaimDueActions(context.Background(), time.Now(), 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	return claimed[0]
}

func TestHandleTimerFireDispatchesNudge(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.Stage = conversation.StageQualification
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))

	f.chat.push(
		classifyReply("SEND_NOW", "followup", "medium", true, 0.9),
		generateReply("Just checking in, still interested?"),
		summarizeReply("Bot nudged the lead."),
	)

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	require.Len(t, f.sender.sent(), 1)
	conv := f.conversation(t, "conv-1")
	assert.Equal(t, 1, conv.TotalNudges)
	assert.Equal(t, 1, conv.FollowupCount24h)
	require.NotNil(t, conv.LastBotMessageAt)
	assert.Equal(t, "Bot nudged the lead.", conv.RollingSummary)

	// A timer fire never schedules more follow-ups.
	assert.Empty(t, f.mem.PendingActions("conv-1"))
	assert.Len(t, f.mem.MessagesBySender("conv-1", "bot"), 1)
}

func TestHandleTimerFireStale(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Minute)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	// Scheduled before the user's latest message.
	action := claimRungOne(t, f, "conv-1", lastUser.Add(-time.Hour))

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	assert.Equal(t, 0, f.chat.callCount(), "stale fires never reach the pipeline")
	assert.Empty(t, f.sender.sent())
	_, exists := f.mem.Actions[action.ID]
	assert.False(t, exists)
}

func TestHandleTimerFireSuppressed(t *testing.T) {
	f := newFixture(t)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.Mode = conversation.ModeHuman
	})
	action := claimRungOne(t, f, "conv-1", time.Now().Add(-time.Hour))
	seedPendingLadder(t, f, "conv-1")

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	assert.Equal(t, 0, f.chat.callCount())
	assert.Empty(t, f.sender.sent())
	// The remaining ladder is cleared along with the fired action.
	assert.Empty(t, f.mem.PendingActions("conv-1"))
	_, exists := f.mem.Actions[action.ID]
	assert.False(t, exists)
}

func TestHandleTimerFireConversationGone(t *testing.T) {
	f := newFixture(t)
	action := claimRungOne(t, f, "conv-gone", time.Now().Add(-time.Hour))

	err := f.orch.HandleTimerFire(context.Background(), action)
	require.ErrorIs(t, err, errConversationGone)
	_, exists := f.mem.Actions[action.ID]
	assert.False(t, exists)
}

func TestHandleTimerFireWaitVerdict(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))

	f.chat.push(classifyReply("WAIT_SCHEDULE", "greeting", "low", false, 0.8))

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	conv := f.conversation(t, "conv-1")
	assert.Empty(t, f.sender.sent())
	// Counters only move when a nudge actually goes out.
	assert.Equal(t, 0, conv.TotalNudges)
	assert.Equal(t, 0, conv.FollowupCount24h)
}

func TestHandleTimerFireEscalates(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))
	seedPendingLadder(t, f, "conv-1")

	f.chat.push(classifyReply("SEND_NOW", "qualification", "medium", true, 0.1))

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	conv := f.conversation(t, "conv-1")
	assert.True(t, conv.NeedsHumanAttention)
	assert.Empty(t, f.sender.sent())
	assert.Empty(t, f.mem.PendingActions("conv-1"))
	assert.Equal(t, 1, f.bcast.eventCount(events.EventTypeAttentionRaised))
}

func TestHandleTimerFireClassifyFailureDropsSilently(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))

	// Empty script: classify fails. The user asked for nothing, so nothing
	// is the safe answer.
	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	conv := f.conversation(t, "conv-1")
	assert.Empty(t, f.sender.sent())
	assert.False(t, conv.NeedsHumanAttention)
}

func TestHandleTimerFireAbortsWhenUserSpeaksMidGeneration(t *testing.T) {
	f := newFixture(t)
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))

	f.chat.push(
		classifyReply("SEND_NOW", "followup", "medium", true, 0.9),
		scriptedReply{
			content: `{"message_text": "Still interested?", "self_check_passed": true}`,
			before: func() {
				// A user message lands on another replica while Generate runs.
				now := time.Now()
				_, err := f.mem.UpdateConversation(context.Background(), "conv-1", models.ConversationPatch{
					LastUserMessageAt: &now,
				})
				require.NoError(t, err)
			},
		},
	)

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	assert.Empty(t, f.sender.sent(), "nudge aborted after the user spoke")
	conv := f.conversation(t, "conv-1")
	assert.Equal(t, 0, conv.TotalNudges)
	_, exists := f.mem.Actions[action.ID]
	assert.False(t, exists)
}

func TestHandleTimerFireTransportFailure(t *testing.T) {
	f := newFixture(t)
	f.sender.err = whatsapp.ErrTransport
	lastUser := time.Now().Add(-time.Hour)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.LastUserMessageAt = &lastUser
	})
	action := claimRungOne(t, f, "conv-1", lastUser.Add(time.Minute))

	f.chat.push(
		classifyReply("SEND_NOW", "followup", "medium", true, 0.9),
		generateReply("Checking in!"),
	)

	require.NoError(t, f.orch.HandleTimerFire(context.Background(), action))

	conv := f.conversation(t, "conv-1")
	assert.True(t, conv.NeedsHumanAttention)
	assert.Equal(t, 0, conv.TotalNudges)
	assert.Equal(t, 1, f.bcast.eventCount(events.EventTypeAttentionRaised))
}
