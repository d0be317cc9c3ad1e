package events

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureBroadcaster struct {
	mu     sync.Mutex
	orgIDs []string
	frames [][]byte
}

func (c *captureBroadcaster) Broadcast(orgID string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.orgIDs = append(c.orgIDs, orgID)
	c.frames = append(c.frames, data)
}

func TestPublisherEnvelope(t *testing.T) {
	capture := &captureBroadcaster{}
	pub := NewPublisher(capture)

	pub.MessageCreated("org-1", MessageCreatedPayload{
		MessageID:      "m-1",
		ConversationID: "c-1",
		LeadID:         "l-1",
		Sender:         "bot",
		Direction:      "outbound",
		Text:           "hello",
		Timestamp:      Timestamp(time.Now()),
	})

	require.Len(t, capture.frames, 1)
	assert.Equal(t, "org-1", capture.orgIDs[0])

	var env struct {
		Event   string                `json:"event"`
		Payload MessageCreatedPayload `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(capture.frames[0], &env))
	assert.Equal(t, EventTypeMessageCreated, env.Event)
	assert.Equal(t, "m-1", env.Payload.MessageID)
	assert.Equal(t, "outbound", env.Payload.Direction)
}

func TestPublisherEventTypes(t *testing.T) {
	capture := &captureBroadcaster{}
	pub := NewPublisher(capture)

	pub.ConversationUpdated("org-1", ConversationUpdatedPayload{ConversationID: "c-1"})
	pub.AttentionRaised("org-1", AttentionPayload{ConversationID: "c-1", Reason: "risk"})
	pub.AttentionResolved("org-1", AttentionPayload{ConversationID: "c-1"})

	require.Len(t, capture.frames, 3)
	events := make([]string, 0, 3)
	for _, frame := range capture.frames {
		var env Envelope
		require.NoError(t, json.Unmarshal(frame, &env))
		events = append(events, env.Event)
	}
	assert.Equal(t, []string{
		EventTypeConversationUpdated,
		EventTypeAttentionRaised,
		EventTypeAttentionResolved,
	}, events)
}

func TestPublisherNilSafety(t *testing.T) {
	// A nil publisher or a publisher without a bus is a no-op, never a panic:
	// the orchestrator must not fail a turn over a dashboard.
	var nilPub *Publisher
	nilPub.MessageCreated("org-1", MessageCreatedPayload{})

	NewPublisher(nil).ConversationUpdated("org-1", ConversationUpdatedPayload{})
}

func TestTimestampFormat(t *testing.T) {
	ts := Timestamp(time.Date(2026, 3, 10, 9, 30, 0, 123456789, time.FixedZone("X", 3600)))
	parsed, err := time.Parse(time.RFC3339Nano, ts)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, parsed.Location())
	assert.Equal(t, 8, parsed.Hour(), "timestamps normalize to UTC")
}
