package pipeline

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]interface{}
		wantErr bool
	}{
		{
			name:  "strict object",
			input: `{"action": "SEND_NOW", "confidence": 0.9}`,
			want:  map[string]interface{}{"action": "SEND_NOW", "confidence": 0.9},
		},
		{
			name:  "leading and trailing whitespace",
			input: "  \n {\"action\": \"WAIT_SCHEDULE\"} \n",
			want:  map[string]interface{}{"action": "WAIT_SCHEDULE"},
		},
		{
			name:  "fenced json block",
			input: "Here is my answer:\n```json\n{\"action\": \"SEND_NOW\"}\n```\nHope that helps.",
			want:  map[string]interface{}{"action": "SEND_NOW"},
		},
		{
			name:  "fenced block without language tag",
			input: "```\n{\"intent_level\": \"high\"}\n```",
			want:  map[string]interface{}{"intent_level": "high"},
		},
		{
			name:  "object buried in prose",
			input: `Sure! Based on the conversation, {"action": "WAIT_SCHEDULE", "followup_in_minutes": 120} is my call.`,
			want:  map[string]interface{}{"action": "WAIT_SCHEDULE", "followup_in_minutes": 120.0},
		},
		{
			name:  "nested object in prose",
			input: `Thinking... {"risk_flags": {"spam": "LOW"}, "confidence": 0.8} done.`,
			want:  map[string]interface{}{"risk_flags": map[string]interface{}{"spam": "LOW"}, "confidence": 0.8},
		},
		{
			name:  "single quotes repaired",
			input: `{'action': 'SEND_NOW', 'confidence': 0.5}`,
			want:  map[string]interface{}{"action": "SEND_NOW", "confidence": 0.5},
		},
		{
			name:  "trailing comma repaired",
			input: `{"action": "SEND_NOW", "confidence": 0.5,}`,
			want:  map[string]interface{}{"action": "SEND_NOW", "confidence": 0.5},
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
		{
			name:    "whitespace only",
			input:   "   \n\t ",
			wantErr: true,
		},
		{
			name:    "no object at all",
			input:   "I am sorry, I cannot answer that.",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := ExtractJSON(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrProtocol)
				return
			}
			require.NoError(t, err)

			var got map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeObject(t *testing.T) {
	var out struct {
		Action string `json:"action"`
	}
	require.NoError(t, decodeObject([]byte(`{"action":"SEND_NOW"}`), &out))
	assert.Equal(t, "SEND_NOW", out.Action)

	err := decodeObject([]byte(`{"action": 42}`), &out)
	assert.ErrorIs(t, err, ErrProtocol)
}
