package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/store"
)

func TestTakeover(t *testing.T) {
	f := newFixture(t)
	f.seedConversation(t, nil)
	seedPendingLadder(t, f, "conv-1")

	require.NoError(t, f.orch.Takeover(context.Background(), "conv-1"))

	conv := f.conversation(t, "conv-1")
	assert.Equal(t, conversation.ModeHuman, conv.Mode)
	assert.Empty(t, f.mem.PendingActions("conv-1"), "takeover clears the ladder")
	assert.Equal(t, 1, f.bcast.eventCount(events.EventTypeConversationUpdated))
}

func TestRelease(t *testing.T) {
	f := newFixture(t)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.Mode = conversation.ModeHuman
	})

	require.NoError(t, f.orch.Release(context.Background(), "conv-1"))

	conv := f.conversation(t, "conv-1")
	assert.Equal(t, conversation.ModeBot, conv.Mode)
	// The next user message owns re-enrolment, not the release.
	assert.Empty(t, f.mem.PendingActions("conv-1"))
}

func TestResolveAttention(t *testing.T) {
	f := newFixture(t)
	f.seedConversation(t, func(c *ent.Conversation) {
		c.Mode = conversation.ModeHuman
		c.NeedsHumanAttention = true
	})

	require.NoError(t, f.orch.ResolveAttention(context.Background(), "conv-1"))

	conv := f.conversation(t, "conv-1")
	assert.False(t, conv.NeedsHumanAttention)
	require.NotNil(t, conv.HumanAttentionResolvedAt)
	// Mode is untouched: takeover and release are separate decisions.
	assert.Equal(t, conversation.ModeHuman, conv.Mode)
	assert.Equal(t, 1, f.bcast.eventCount(events.EventTypeAttentionResolved))
}

func TestOperatorVerbsUnknownConversation(t *testing.T) {
	f := newFixture(t)

	assert.ErrorIs(t, f.orch.Takeover(context.Background(), "nope"), store.ErrNotFound)
	assert.ErrorIs(t, f.orch.Release(context.Background(), "nope"), store.ErrNotFound)
	assert.ErrorIs(t, f.orch.ResolveAttention(context.Background(), "nope"), store.ErrNotFound)
}
