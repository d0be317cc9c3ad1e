package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/store/storetest"
)

var testOffsets = []time.Duration{10 * time.Minute, 3 * time.Hour, 6 * time.Hour}

func activeConversation(id string) *ent.Conversation {
	return &ent.Conversation{
		ID:            id,
		OrgID:         "org-1",
		LeadID:        "lead-1",
		Mode:          conversation.ModeBot,
		Stage:         conversation.StageQualification,
		IntentLevel:   conversation.IntentLevelMedium,
		UserSentiment: conversation.UserSentimentNeutral,
	}
}

func TestLadderEnrol(t *testing.T) {
	mem := storetest.New()
	ladder := NewLadder(mem, testOffsets)
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	created, err := ladder.Enrol(context.Background(), conv, now)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	pending := mem.PendingActions("conv-1")
	require.Len(t, pending, 3)
	assert.Equal(t, now.Add(10*time.Minute), pending[0].FireAt)
	assert.Equal(t, now.Add(3*time.Hour), pending[1].FireAt)
	assert.Equal(t, now.Add(6*time.Hour), pending[2].FireAt)
	for i, a := range pending {
		assert.Equal(t, now, a.CreatedAt)
		followup := models.FollowupContextFromMap(a.Context)
		assert.Equal(t, i+1, followup.Rung, "rung is 1-based")
		assert.Contains(t, followup.Reason, "nudge")
	}
}

func TestLadderEnrolReplacesPrevious(t *testing.T) {
	mem := storetest.New()
	ladder := NewLadder(mem, testOffsets)
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)

	_, err := ladder.Enrol(context.Background(), conv, time.Now())
	require.NoError(t, err)
	_, err = ladder.Enrol(context.Background(), conv, time.Now())
	require.NoError(t, err)

	// Re-enrolment never stacks ladders.
	assert.Len(t, mem.PendingActions("conv-1"), 3)
}

func TestLadderSuppression(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ent.Conversation)
	}{
		{"human mode", func(c *ent.Conversation) { c.Mode = conversation.ModeHuman }},
		{"needs attention", func(c *ent.Conversation) { c.NeedsHumanAttention = true }},
		{"closed", func(c *ent.Conversation) { c.Stage = conversation.StageClosed }},
		{"lost", func(c *ent.Conversation) { c.Stage = conversation.StageLost }},
		{"ghosted", func(c *ent.Conversation) { c.Stage = conversation.StageGhosted }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := storetest.New()
			ladder := NewLadder(mem, testOffsets)
			conv := activeConversation("conv-1")
			mem.SeedConversation(conv)

			// Pre-existing ladder from an earlier turn.
			_, err := ladder.Enrol(context.Background(), conv, time.Now())
			require.NoError(t, err)
			require.Len(t, mem.PendingActions("conv-1"), 3)

			tt.mutate(conv)
			created, err := ladder.Enrol(context.Background(), conv, time.Now())
			require.NoError(t, err)
			assert.Equal(t, 0, created)
			// The cancel half still runs: suppression clears the old ladder.
			assert.Empty(t, mem.PendingActions("conv-1"))
		})
	}
}

func TestSuppressed(t *testing.T) {
	conv := activeConversation("c")
	assert.False(t, Suppressed(conv))

	conv.Mode = conversation.ModeHuman
	assert.True(t, Suppressed(conv))
}

func TestNewLadderPanicsWithoutOffsets(t *testing.T) {
	assert.Panics(t, func() { NewLadder(storetest.New(), nil) })
}

func TestIsStale(t *testing.T) {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	action := &ent.ScheduledAction{CreatedAt: base}

	t.Run("user never spoke", func(t *testing.T) {
		assert.False(t, IsStale(action, &ent.Conversation{}))
	})

	t.Run("user spoke before scheduling", func(t *testing.T) {
		earlier := base.Add(-time.Minute)
		assert.False(t, IsStale(action, &ent.Conversation{LastUserMessageAt: &earlier}))
	})

	t.Run("user spoke after scheduling", func(t *testing.T) {
		later := base.Add(time.Minute)
		assert.True(t, IsStale(action, &ent.Conversation{LastUserMessageAt: &later}))
	})

	t.Run("same instant is not stale", func(t *testing.T) {
		same := base
		assert.False(t, IsStale(action, &ent.Conversation{LastUserMessageAt: &same}))
	})
}
