package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/store"
	"github.com/leadline-ai/leadline/pkg/store/storetest"
)

func seedAction(t *testing.T, mem *storetest.Memory, status scheduledaction.Status, createdAt time.Time) string {
	t.Helper()
	created, err := mem.CreateScheduledActions(context.Background(), []store.ActionSpec{{
		ConversationID: "conv-1",
		FireAt:         createdAt.Add(10 * time.Minute),
		CreatedAt:      createdAt,
	}})
	require.NoError(t, err)
	mem.Actions[created[0].ID].Status = status
	return created[0].ID
}

func TestSweep(t *testing.T) {
	mem := storetest.New()
	old := time.Now().Add(-10 * 24 * time.Hour)
	fresh := time.Now().Add(-time.Hour)

	oldFired := seedAction(t, mem, scheduledaction.StatusFired, old)
	oldCancelled := seedAction(t, mem, scheduledaction.StatusCancelled, old)
	oldPending := seedAction(t, mem, scheduledaction.StatusPending, old)
	freshFired := seedAction(t, mem, scheduledaction.StatusFired, fresh)

	svc := NewService(mem, 7*24*time.Hour, time.Hour)
	svc.sweep(context.Background())

	assert.False(t, mem.ActionExists(oldFired))
	assert.False(t, mem.ActionExists(oldCancelled))
	// PENDING rows are never touched, no matter how old.
	assert.True(t, mem.ActionExists(oldPending))
	assert.True(t, mem.ActionExists(freshFired))
}

func TestServiceStartStop(t *testing.T) {
	mem := storetest.New()
	old := time.Now().Add(-10 * 24 * time.Hour)
	oldFired := seedAction(t, mem, scheduledaction.StatusFired, old)

	svc := NewService(mem, 7*24*time.Hour, time.Hour)
	svc.Start(context.Background())

	// The first sweep runs at startup, not after the first tick.
	require.Eventually(t, func() bool {
		return !mem.ActionExists(oldFired)
	}, 2*time.Second, 10*time.Millisecond)

	svc.Stop()
	// Second Stop returns immediately.
	svc.Stop()
}

func TestServiceDefaults(t *testing.T) {
	svc := NewService(storetest.New(), 0, 0)
	assert.Equal(t, 7*24*time.Hour, svc.retention)
	assert.Equal(t, time.Hour, svc.interval)
}
