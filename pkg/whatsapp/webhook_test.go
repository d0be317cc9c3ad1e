package whatsapp

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleEnvelope = `{
	"object": "whatsapp_business_account",
	"entry": [{
		"id": "entry-1",
		"changes": [{
			"field": "messages",
			"value": {
				"messaging_product": "whatsapp",
				"metadata": {"display_phone_number": "15550000000", "phone_number_id": "pn-1"},
				"contacts": [{"wa_id": "15551230001", "profile": {"name": "Sam"}}],
				"messages": [{
					"from": "15551230001",
					"id": "wamid.MSG1",
					"timestamp": "1767950000",
					"type": "text",
					"text": {"body": "Hi, do you deliver?"}
				}]
			}
		}]
	}]
}`

func TestExtractMessages(t *testing.T) {
	var env WebhookEnvelope
	require.NoError(t, json.Unmarshal([]byte(sampleEnvelope), &env))

	now := time.Now()
	msgs := env.ExtractMessages(now)
	require.Len(t, msgs, 1)

	m := msgs[0]
	assert.Equal(t, "pn-1", m.PhoneNumberID)
	assert.Equal(t, "15551230001", m.From)
	assert.Equal(t, "Sam", m.SenderName)
	assert.Equal(t, "Hi, do you deliver?", m.Text)
	assert.Equal(t, "wamid.MSG1", m.ProviderMsgID)
	assert.Equal(t, time.Unix(1767950000, 0).UTC(), m.Timestamp)
}

func TestExtractMessagesSkipsNonText(t *testing.T) {
	payload := `{
		"entry": [{"changes": [{"value": {
			"metadata": {"phone_number_id": "pn-1"},
			"messages": [
				{"from": "1", "id": "wamid.A", "type": "image"},
				{"from": "1", "id": "wamid.B", "type": "audio"},
				{"from": "1", "id": "wamid.C", "type": "text", "text": {"body": "words"}}
			]
		}}]}]
	}`
	var env WebhookEnvelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))

	msgs := env.ExtractMessages(time.Now())
	require.Len(t, msgs, 1)
	assert.Equal(t, "wamid.C", msgs[0].ProviderMsgID)
}

func TestExtractMessagesStatusOnly(t *testing.T) {
	payload := `{
		"entry": [{"changes": [{"value": {
			"metadata": {"phone_number_id": "pn-1"},
			"statuses": [{"id": "wamid.X", "status": "delivered"}]
		}}]}]
	}`
	var env WebhookEnvelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))

	assert.Empty(t, env.ExtractMessages(time.Now()))
}

func TestExtractMessagesEmptyEnvelope(t *testing.T) {
	var env WebhookEnvelope
	assert.Empty(t, env.ExtractMessages(time.Now()))
}

func TestExtractMessagesDropsBlankFields(t *testing.T) {
	payload := `{
		"entry": [{"changes": [{"value": {
			"metadata": {"phone_number_id": "pn-1"},
			"messages": [
				{"from": "", "id": "wamid.A", "type": "text", "text": {"body": "x"}},
				{"from": "1", "id": "wamid.B", "type": "text", "text": {"body": ""}}
			]
		}}]}]
	}`
	var env WebhookEnvelope
	require.NoError(t, json.Unmarshal([]byte(payload), &env))

	assert.Empty(t, env.ExtractMessages(time.Now()))
}

func TestParseProviderTimestamp(t *testing.T) {
	fallback := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Unix(1767950000, 0).UTC(), parseProviderTimestamp("1767950000", fallback))
	assert.Equal(t, fallback, parseProviderTimestamp("", fallback))
	assert.Equal(t, fallback, parseProviderTimestamp("not-a-number", fallback))
	assert.Equal(t, fallback, parseProviderTimestamp("-5", fallback))
}
