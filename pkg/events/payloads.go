package events

// MessageCreatedPayload is the payload for message.created events.
// Published on every transcript append the operator can see: inbound lead
// messages and outbound bot replies.
type MessageCreatedPayload struct {
	MessageID      string `json:"message_id"`
	ConversationID string `json:"conversation_id"`
	LeadID         string `json:"lead_id"`
	Sender         string `json:"sender"`    // lead, bot, human
	Direction      string `json:"direction"` // inbound, outbound
	Text           string `json:"text"`
	Timestamp      string `json:"timestamp"` // RFC3339Nano
}

// ConversationUpdatedPayload is the payload for conversation.updated events.
// Published after an event's coalesced patch lands, and on operator
// takeover/release.
type ConversationUpdatedPayload struct {
	ConversationID      string `json:"conversation_id"`
	LeadID              string `json:"lead_id"`
	Mode                string `json:"mode"`
	Stage               string `json:"stage"`
	IntentLevel         string `json:"intent_level"`
	UserSentiment       string `json:"user_sentiment"`
	NeedsHumanAttention bool   `json:"needs_human_attention"`
	Timestamp           string `json:"timestamp"` // RFC3339Nano
}

// AttentionPayload is the payload for conversation.attention_raised and
// conversation.attention_resolved events.
type AttentionPayload struct {
	ConversationID string `json:"conversation_id"`
	LeadID         string `json:"lead_id"`
	Reason         string `json:"reason,omitempty"` // raised only
	Timestamp      string `json:"timestamp"`        // RFC3339Nano
}
