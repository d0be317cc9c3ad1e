package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/test/util"
)

func newTestStore(t *testing.T) (*EntStore, *ent.Client) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping database integration test in short mode")
	}
	client, _ := util.SetupTestDatabase(t)
	return NewEntStore(client), client
}

func seedIntegration(t *testing.T, client *ent.Client, orgID, phoneNumberID string) *ent.Integration {
	t.Helper()
	integ, err := client.Integration.Create().
		SetID("integ-" + orgID).
		SetOrgID(orgID).
		SetPhoneNumberID(phoneNumberID).
		SetBusinessName("Acme Tutoring").
		Save(context.Background())
	require.NoError(t, err)
	return integ
}

// seedConversation creates a lead and its conversation through the store's
// own paths so the FK chain is satisfied.
func seedConversation(t *testing.T, s *EntStore, orgID string) *ent.Conversation {
	t.Helper()
	ctx := context.Background()
	l, err := s.UpsertLead(ctx, orgID, "15551230001", "Maya")
	require.NoError(t, err)
	conv, created, err := s.GetOrCreateConversation(ctx, orgID, l.ID)
	require.NoError(t, err)
	require.True(t, created)
	return conv
}

func TestEntStoreResolveIntegration(t *testing.T) {
	s, client := newTestStore(t)
	ctx := context.Background()
	seedIntegration(t, client, "org-1", "pn-1")

	integ, err := s.ResolveIntegration(ctx, "pn-1")
	require.NoError(t, err)
	assert.Equal(t, "org-1", integ.OrgID)

	_, err = s.ResolveIntegration(ctx, "pn-unknown")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.ResolveIntegration(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	byOrg, err := s.GetIntegrationByOrg(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, "pn-1", byOrg.PhoneNumberID)

	_, err = s.GetIntegrationByOrg(ctx, "org-unknown")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStoreUpsertLead(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	first, err := s.UpsertLead(ctx, "org-1", "15551230001", "")
	require.NoError(t, err)

	again, err := s.UpsertLead(ctx, "org-1", "15551230001", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	// A non-empty display name refreshes the stored one.
	named, err := s.UpsertLead(ctx, "org-1", "15551230001", "Maya")
	require.NoError(t, err)
	assert.Equal(t, first.ID, named.ID)
	assert.Equal(t, "Maya", named.DisplayName)

	// Same phone in another org is a different lead.
	other, err := s.UpsertLead(ctx, "org-2", "15551230001", "")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	_, err = s.UpsertLead(ctx, "", "15551230001", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntStoreUpsertLeadConcurrent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	const n = 8
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			l, err := s.UpsertLead(ctx, "org-1", "15559990000", "")
			assert.NoError(t, err)
			if l != nil {
				ids[i] = l.ID
			}
		}(i)
	}
	wg.Wait()

	// Every racer resolved to the same row.
	for i := 1; i < n; i++ {
		assert.Equal(t, ids[0], ids[i])
	}
}

func TestEntStoreGetOrCreateConversation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	l, err := s.UpsertLead(ctx, "org-1", "15551230001", "")
	require.NoError(t, err)

	conv, created, err := s.GetOrCreateConversation(ctx, "org-1", l.ID)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, conversation.ModeBot, conv.Mode)
	assert.Equal(t, conversation.StageGreeting, conv.Stage)
	assert.Equal(t, conversation.IntentLevelUnknown, conv.IntentLevel)
	assert.Equal(t, conversation.UserSentimentNeutral, conv.UserSentiment)
	assert.False(t, conv.NeedsHumanAttention)

	same, created, err := s.GetOrCreateConversation(ctx, "org-1", l.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, conv.ID, same.ID)
}

func TestEntStoreUpdateConversation(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	conv := seedConversation(t, s, "org-1")

	stage := conversation.StagePricing
	mode := conversation.ModeHuman
	summary := "Asked about pricing for two kids."
	now := time.Now().Truncate(time.Millisecond)

	updated, err := s.UpdateConversation(ctx, conv.ID, models.ConversationPatch{
		Stage:               &stage,
		Mode:                &mode,
		RollingSummary:      &summary,
		LastUserMessageAt:   &now,
		AddTotalNudges:      1,
		AddFollowupCount24h: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, conversation.StagePricing, updated.Stage)
	assert.Equal(t, conversation.ModeHuman, updated.Mode)
	assert.Equal(t, summary, updated.RollingSummary)
	assert.Equal(t, 1, updated.TotalNudges)
	assert.Equal(t, 1, updated.FollowupCount24h)
	require.NotNil(t, updated.LastUserMessageAt)
	assert.WithinDuration(t, now, *updated.LastUserMessageAt, time.Second)

	// Counters accumulate across patches.
	again, err := s.UpdateConversation(ctx, conv.ID, models.ConversationPatch{AddTotalNudges: 1})
	require.NoError(t, err)
	assert.Equal(t, 2, again.TotalNudges)
	assert.Equal(t, 1, again.FollowupCount24h)

	// An empty patch is a read, not a write.
	same, err := s.UpdateConversation(ctx, conv.ID, models.ConversationPatch{})
	require.NoError(t, err)
	assert.Equal(t, 2, same.TotalNudges)

	_, err = s.UpdateConversation(ctx, "missing", models.ConversationPatch{AddTotalNudges: 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEntStoreMessages(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	conv := seedConversation(t, s, "org-1")

	base := time.Now().Add(-time.Hour)
	texts := []string{"hi", "hello, how can I help?", "what are your prices?", "group classes start at $30"}
	for i, text := range texts {
		sender := message.SenderLead
		direction := message.DirectionInbound
		if i%2 == 1 {
			sender = message.SenderBot
			direction = message.DirectionOutbound
		}
		_, err := s.AppendMessage(ctx, AppendMessageInput{
			ConversationID: conv.ID,
			Sender:         sender,
			Direction:      direction,
			Text:           text,
			Timestamp:      base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	// The newest n rows come back oldest first.
	msgs, err := s.ListRecentMessages(ctx, conv.ID, 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "hello, how can I help?", msgs[0].Text)
	assert.Equal(t, "group classes start at $30", msgs[2].Text)

	all, err := s.ListRecentMessages(ctx, conv.ID, 50)
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = s.AppendMessage(ctx, AppendMessageInput{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEntStoreLadderLifecycle(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	conv := seedConversation(t, s, "org-1")

	now := time.Now()
	created, err := s.CreateScheduledActions(ctx, []ActionSpec{
		{ConversationID: conv.ID, FireAt: now.Add(10 * time.Minute), CreatedAt: now, Context: map[string]interface{}{"rung": 1}},
		{ConversationID: conv.ID, FireAt: now.Add(3 * time.Hour), CreatedAt: now, Context: map[string]interface{}{"rung": 2}},
		{ConversationID: conv.ID, FireAt: now.Add(6 * time.Hour), CreatedAt: now, Context: map[string]interface{}{"rung": 3}},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)
	for _, a := range created {
		assert.Equal(t, scheduledaction.StatusPending, a.Status)
		assert.Equal(t, scheduledaction.KindFollowup, a.Kind)
	}

	// Nothing is due yet.
	due, err := s.ClaimDueActions(ctx, now, 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// The first rung comes due; the claim flips it to FIRED.
	due, err = s.ClaimDueActions(ctx, now.Add(11*time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, scheduledaction.StatusFired, due[0].Status)

	// A second claim at the same instant finds nothing.
	due, err = s.ClaimDueActions(ctx, now.Add(11*time.Minute), 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// Cancelling clears the remaining PENDING rungs only.
	n, err := s.CancelPendingActions(ctx, conv.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	due, err = s.ClaimDueActions(ctx, now.Add(7*time.Hour), 10)
	require.NoError(t, err)
	assert.Empty(t, due)

	// Deleting is idempotent.
	require.NoError(t, s.DeleteScheduledAction(ctx, created[0].ID))
	require.NoError(t, s.DeleteScheduledAction(ctx, created[0].ID))

	// The sweep removes old FIRED and CANCELLED rows.
	swept, err := s.SweepFinishedActions(ctx, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 2, swept)
}

func TestEntStoreClaimConcurrent(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()
	conv := seedConversation(t, s, "org-1")

	now := time.Now()
	specs := make([]ActionSpec, 10)
	for i := range specs {
		specs[i] = ActionSpec{
			ConversationID: conv.ID,
			FireAt:         now.Add(-time.Duration(i+1) * time.Minute),
			CreatedAt:      now.Add(-time.Hour),
		}
	}
	_, err := s.CreateScheduledActions(ctx, specs)
	require.NoError(t, err)

	// Competing pollers must never claim the same row twice.
	var mu sync.Mutex
	seen := make(map[string]int)
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				claimed, err := s.ClaimDueActions(ctx, now, 3)
				assert.NoError(t, err)
				if len(claimed) == 0 {
					return
				}
				mu.Lock()
				for _, a := range claimed {
					seen[a.ID]++
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, 10)
	for id, count := range seen {
		assert.Equalf(t, 1, count, "action %s claimed %d times", id, count)
	}
}
