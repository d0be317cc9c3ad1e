package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/store"
	"github.com/leadline-ai/leadline/pkg/store/storetest"
)

// recordingDispatcher captures dispatched actions.
type recordingDispatcher struct {
	mu      sync.Mutex
	actions []*ent.ScheduledAction
}

func (d *recordingDispatcher) HandleTimerFire(_ context.Context, action *ent.ScheduledAction) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions = append(d.actions, action)
	return nil
}

func (d *recordingDispatcher) fired() []*ent.ScheduledAction {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]*ent.ScheduledAction(nil), d.actions...)
}

func seedDueAction(t *testing.T, mem *storetest.Memory, convID string, fireAt, createdAt time.Time) *ent.ScheduledAction {
	t.Helper()
	created, err := mem.CreateScheduledActions(context.Background(), []store.ActionSpec{{
		ConversationID: convID,
		Kind:           scheduledaction.KindFollowup,
		FireAt:         fireAt,
		CreatedAt:      createdAt,
	}})
	require.NoError(t, err)
	require.Len(t, created, 1)
	return created[0]
}

func TestWorkerDispatchesDueActions(t *testing.T) {
	mem := storetest.New()
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)

	past := time.Now().Add(-time.Minute)
	seedDueAction(t, mem, "conv-1", past, past.Add(-10*time.Minute))
	// Not due yet; must stay pending.
	seedDueAction(t, mem, "conv-1", time.Now().Add(time.Hour), past)

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: time.Second, ClaimLimit: 10})

	require.NoError(t, w.pollOnce(context.Background()))

	fired := disp.fired()
	require.Len(t, fired, 1)
	assert.Equal(t, scheduledaction.StatusFired, fired[0].Status)
	assert.Len(t, mem.PendingActions("conv-1"), 1)
}

func TestWorkerClaimIsConsumed(t *testing.T) {
	mem := storetest.New()
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)

	past := time.Now().Add(-time.Minute)
	seedDueAction(t, mem, "conv-1", past, past.Add(-10*time.Minute))

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: time.Second, ClaimLimit: 10})

	require.NoError(t, w.pollOnce(context.Background()))
	require.NoError(t, w.pollOnce(context.Background()))

	// The claim flipped the row to FIRED; a second poll finds nothing.
	assert.Len(t, disp.fired(), 1)
}

func TestWorkerStalePreCheck(t *testing.T) {
	mem := storetest.New()
	conv := activeConversation("conv-1")
	spoke := time.Now().Add(-time.Minute)
	conv.LastUserMessageAt = &spoke
	mem.SeedConversation(conv)

	// Scheduled before the user's latest message: stale.
	past := time.Now().Add(-time.Second)
	action := seedDueAction(t, mem, "conv-1", past, spoke.Add(-time.Hour))

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: time.Second, ClaimLimit: 10})

	require.NoError(t, w.pollOnce(context.Background()))

	assert.Empty(t, disp.fired(), "stale actions never reach the dispatcher")
	_, exists := mem.Actions[action.ID]
	assert.False(t, exists, "stale actions are deleted")
}

func TestWorkerOrphanedAction(t *testing.T) {
	mem := storetest.New()
	// No conversation seeded: the action is an orphan.
	past := time.Now().Add(-time.Minute)
	action := seedDueAction(t, mem, "conv-gone", past, past)

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: time.Second, ClaimLimit: 10})

	require.NoError(t, w.pollOnce(context.Background()))

	assert.Empty(t, disp.fired())
	_, exists := mem.Actions[action.ID]
	assert.False(t, exists)
}

func TestWorkerClaimLimit(t *testing.T) {
	mem := storetest.New()
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)

	past := time.Now().Add(-time.Minute)
	for i := 0; i < 5; i++ {
		seedDueAction(t, mem, "conv-1", past.Add(time.Duration(i)*time.Second), past.Add(-time.Hour))
	}

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: time.Second, ClaimLimit: 2})

	require.NoError(t, w.pollOnce(context.Background()))
	assert.Len(t, disp.fired(), 2)

	require.NoError(t, w.pollOnce(context.Background()))
	assert.Len(t, disp.fired(), 4)
}

func TestWorkerStartStop(t *testing.T) {
	mem := storetest.New()
	conv := activeConversation("conv-1")
	mem.SeedConversation(conv)

	past := time.Now().Add(-time.Minute)
	seedDueAction(t, mem, "conv-1", past, past.Add(-10*time.Minute))

	disp := &recordingDispatcher{}
	w := NewWorker(mem, disp, WorkerConfig{PollInterval: 10 * time.Millisecond, ClaimLimit: 10})

	w.Start(context.Background())
	require.Eventually(t, func() bool {
		return len(disp.fired()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	w.Stop()
	// Stop is idempotent.
	w.Stop()
}

func TestJitteredInterval(t *testing.T) {
	w := NewWorker(storetest.New(), &recordingDispatcher{}, WorkerConfig{PollInterval: time.Second})
	for i := 0; i < 50; i++ {
		got := w.jitteredInterval()
		assert.GreaterOrEqual(t, got, 800*time.Millisecond)
		assert.LessOrEqual(t, got, 1200*time.Millisecond)
	}
}
