package models

import (
	"time"

	"github.com/leadline-ai/leadline/ent/conversation"
)

// ConversationPatch is the coalesced field-set one event applies to a
// conversation. Nil fields are untouched; the store applies the whole patch
// in a single UPDATE so a failed turn never leaves partial state behind.
type ConversationPatch struct {
	Mode                     *conversation.Mode
	Stage                    *conversation.Stage
	IntentLevel              *conversation.IntentLevel
	UserSentiment            *conversation.UserSentiment
	RollingSummary           *string
	NeedsHumanAttention      *bool
	HumanAttentionResolvedAt *time.Time
	LastUserMessageAt        *time.Time
	LastBotMessageAt         *time.Time

	// Counters are increments, not absolute values.
	AddFollowupCount24h int
	AddTotalNudges      int
}

// IsEmpty reports whether applying the patch would be a no-op.
func (p *ConversationPatch) IsEmpty() bool {
	return p.Mode == nil &&
		p.Stage == nil &&
		p.IntentLevel == nil &&
		p.UserSentiment == nil &&
		p.RollingSummary == nil &&
		p.NeedsHumanAttention == nil &&
		p.HumanAttentionResolvedAt == nil &&
		p.LastUserMessageAt == nil &&
		p.LastBotMessageAt == nil &&
		p.AddFollowupCount24h == 0 &&
		p.AddTotalNudges == 0
}

// CTAOption is one entry of an integration's call-to-action catalog.
type CTAOption struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Kind  string `json:"kind"`
}

// CTAOptionsFromJSON converts the integration's raw ctas payload into typed
// options, skipping entries without an id.
func CTAOptionsFromJSON(raw []map[string]interface{}) []CTAOption {
	if len(raw) == 0 {
		return nil
	}
	out := make([]CTAOption, 0, len(raw))
	for _, m := range raw {
		opt := CTAOption{}
		if v, ok := m["id"].(string); ok {
			opt.ID = v
		}
		if v, ok := m["label"].(string); ok {
			opt.Label = v
		}
		if v, ok := m["kind"].(string); ok {
			opt.Kind = v
		}
		if opt.ID != "" {
			out = append(out, opt)
		}
	}
	return out
}
