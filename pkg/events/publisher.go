package events

import (
	"encoding/json"
	"log/slog"
	"time"
)

// Broadcaster is the fan-out half of the bus; the publisher only needs this.
type Broadcaster interface {
	Broadcast(orgID string, data []byte)
}

// Publisher wraps payloads in the wire envelope and hands them to the bus.
// Every publish is fire-and-forget: marshalling failures are logged, never
// returned, because the orchestrator must not fail a turn over a dashboard.
type Publisher struct {
	bus Broadcaster
}

// NewPublisher creates a publisher over a bus.
func NewPublisher(bus Broadcaster) *Publisher {
	return &Publisher{bus: bus}
}

// Timestamp formats the publish time the way every payload carries it.
func Timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func (p *Publisher) publish(orgID, event string, payload interface{}) {
	if p == nil || p.bus == nil {
		return
	}
	data, err := json.Marshal(Envelope{Event: event, Payload: payload})
	if err != nil {
		slog.Warn("Failed to marshal operator event", "event", event, "error", err)
		return
	}
	p.bus.Broadcast(orgID, data)
}

// MessageCreated publishes a message.created event.
func (p *Publisher) MessageCreated(orgID string, payload MessageCreatedPayload) {
	p.publish(orgID, EventTypeMessageCreated, payload)
}

// ConversationUpdated publishes a conversation.updated event.
func (p *Publisher) ConversationUpdated(orgID string, payload ConversationUpdatedPayload) {
	p.publish(orgID, EventTypeConversationUpdated, payload)
}

// AttentionRaised publishes a conversation.attention_raised event.
func (p *Publisher) AttentionRaised(orgID string, payload AttentionPayload) {
	p.publish(orgID, EventTypeAttentionRaised, payload)
}

// AttentionResolved publishes a conversation.attention_resolved event.
func (p *Publisher) AttentionResolved(orgID string, payload AttentionPayload) {
	p.publish(orgID, EventTypeAttentionResolved, payload)
}
