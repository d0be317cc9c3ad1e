package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-ai/leadline/ent/conversation"
)

func TestConversationPatchIsEmpty(t *testing.T) {
	assert.True(t, (&ConversationPatch{}).IsEmpty())

	mode := conversation.ModeHuman
	assert.False(t, (&ConversationPatch{Mode: &mode}).IsEmpty())

	now := time.Now()
	assert.False(t, (&ConversationPatch{LastUserMessageAt: &now}).IsEmpty())
	assert.False(t, (&ConversationPatch{AddTotalNudges: 1}).IsEmpty())
	assert.False(t, (&ConversationPatch{AddFollowupCount24h: 1}).IsEmpty())
}

func TestCTAOptionsFromJSON(t *testing.T) {
	raw := []map[string]interface{}{
		{"id": "book-call", "label": "Book a call", "kind": "calendar"},
		{"label": "no id, dropped"},
		{"id": "brochure", "kind": "document"},
	}

	opts := CTAOptionsFromJSON(raw)
	assert.Len(t, opts, 2)
	assert.Equal(t, CTAOption{ID: "book-call", Label: "Book a call", Kind: "calendar"}, opts[0])
	assert.Equal(t, CTAOption{ID: "brochure", Kind: "document"}, opts[1])

	assert.Nil(t, CTAOptionsFromJSON(nil))
	assert.Nil(t, CTAOptionsFromJSON([]map[string]interface{}{}))
}
