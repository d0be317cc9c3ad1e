package whatsapp

import (
	"strconv"
	"time"
)

// WebhookEnvelope is the provider-shaped POST body:
// entry[].changes[].value.{metadata, contacts[], messages[], statuses[]}.
type WebhookEnvelope struct {
	Object string         `json:"object"`
	Entry  []WebhookEntry `json:"entry"`
}

// WebhookEntry is one entry of the envelope.
type WebhookEntry struct {
	ID      string          `json:"id"`
	Changes []WebhookChange `json:"changes"`
}

// WebhookChange is one change of an entry.
type WebhookChange struct {
	Field string       `json:"field"`
	Value WebhookValue `json:"value"`
}

// WebhookValue carries the messages and routing metadata.
type WebhookValue struct {
	MessagingProduct string           `json:"messaging_product"`
	Metadata         WebhookMetadata  `json:"metadata"`
	Contacts         []WebhookContact `json:"contacts"`
	Messages         []WebhookMessage `json:"messages"`
	Statuses         []WebhookStatus  `json:"statuses"`
}

// WebhookMetadata identifies the receiving phone number.
type WebhookMetadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// WebhookContact carries the sender's profile.
type WebhookContact struct {
	WaID    string `json:"wa_id"`
	Profile struct {
		Name string `json:"name"`
	} `json:"profile"`
}

// WebhookMessage is one inbound message.
type WebhookMessage struct {
	From      string `json:"from"`
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"` // unix seconds as a string
	Type      string `json:"type"`
	Text      struct {
		Body string `json:"body"`
	} `json:"text"`
}

// WebhookStatus is a delivery receipt. Acknowledged and ignored.
type WebhookStatus struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// InboundMessage is one extracted text message ready for the orchestrator.
type InboundMessage struct {
	PhoneNumberID string
	From          string
	SenderName    string
	Text          string
	ProviderMsgID string
	Timestamp     time.Time
}

// ExtractMessages flattens the envelope into inbound text messages.
// Non-text messages and status-only callbacks fall out silently; the caller
// still acknowledges the delivery.
func (e *WebhookEnvelope) ExtractMessages(now time.Time) []InboundMessage {
	var out []InboundMessage
	for _, entry := range e.Entry {
		for _, change := range entry.Changes {
			v := change.Value
			if v.Metadata.PhoneNumberID == "" || len(v.Messages) == 0 {
				continue
			}

			names := make(map[string]string, len(v.Contacts))
			for _, c := range v.Contacts {
				if c.WaID != "" {
					names[c.WaID] = c.Profile.Name
				}
			}

			for _, m := range v.Messages {
				if m.Type != "text" && m.Type != "" {
					continue
				}
				if m.From == "" || m.Text.Body == "" {
					continue
				}
				out = append(out, InboundMessage{
					PhoneNumberID: v.Metadata.PhoneNumberID,
					From:          m.From,
					SenderName:    names[m.From],
					Text:          m.Text.Body,
					ProviderMsgID: m.ID,
					Timestamp:     parseProviderTimestamp(m.Timestamp, now),
				})
			}
		}
	}
	return out
}

// parseProviderTimestamp converts the provider's unix-seconds string,
// falling back to the receive time when it is missing or garbled.
func parseProviderTimestamp(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Unix(secs, 0).UTC()
}
