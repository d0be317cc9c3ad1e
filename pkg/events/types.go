// Package events delivers conversation state changes to connected operator
// dashboards over WebSocket. Delivery is best-effort and in-process only:
// the store holds the ground truth, so a missed frame costs nothing but a
// dashboard refresh.
package events

// Operator event types.
const (
	EventTypeMessageCreated        = "message.created"
	EventTypeConversationUpdated   = "conversation.updated"
	EventTypeAttentionRaised       = "conversation.attention_raised"
	EventTypeAttentionResolved     = "conversation.attention_resolved"
	EventTypeConnectionEstablished = "connection.established"
)

// Envelope is the server → client frame shape.
type Envelope struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// ClientMessage is the client → server frame shape. Clients may ping; every
// other action is accepted and ignored.
type ClientMessage struct {
	Action string `json:"action"`
}
