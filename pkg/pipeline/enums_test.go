package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

func TestParseStage(t *testing.T) {
	tests := []struct {
		input    string
		fallback conversation.Stage
		want     conversation.Stage
	}{
		{"GREETING", conversation.StagePricing, conversation.StageGreeting},
		{"qualification", conversation.StageGreeting, conversation.StageQualification},
		{"Qualifying", conversation.StageGreeting, conversation.StageQualification},
		{"PRICING", conversation.StageGreeting, conversation.StagePricing},
		{"quote", conversation.StageGreeting, conversation.StagePricing},
		{"CTA", conversation.StageGreeting, conversation.StageCta},
		{"call-to-action", conversation.StageGreeting, conversation.StageCta},
		{"FOLLOW_UP", conversation.StageGreeting, conversation.StageFollowup},
		{"closed", conversation.StageCta, conversation.StageClosed},
		{"won", conversation.StageCta, conversation.StageClosed},
		{"LOST", conversation.StageCta, conversation.StageLost},
		{"ghosted", conversation.StageCta, conversation.StageGhosted},
		// Garbage keeps the fallback so a typo can never move the funnel.
		{"banana", conversation.StagePricing, conversation.StagePricing},
		{"", conversation.StageQualification, conversation.StageQualification},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseStage(tt.input, tt.fallback))
		})
	}
}

func TestParseIntentLevel(t *testing.T) {
	assert.Equal(t, conversation.IntentLevelHigh, ParseIntentLevel("HIGH", conversation.IntentLevelUnknown))
	assert.Equal(t, conversation.IntentLevelHigh, ParseIntentLevel("hot", conversation.IntentLevelUnknown))
	assert.Equal(t, conversation.IntentLevelMedium, ParseIntentLevel("med", conversation.IntentLevelUnknown))
	assert.Equal(t, conversation.IntentLevelLow, ParseIntentLevel("Low", conversation.IntentLevelUnknown))
	assert.Equal(t, conversation.IntentLevelUnknown, ParseIntentLevel("none", conversation.IntentLevelHigh))
	// Garbage keeps the current signal instead of erasing it.
	assert.Equal(t, conversation.IntentLevelMedium, ParseIntentLevel("???", conversation.IntentLevelMedium))
}

func TestParseSentiment(t *testing.T) {
	assert.Equal(t, conversation.UserSentimentNegative, ParseSentiment("angry", conversation.UserSentimentNeutral))
	assert.Equal(t, conversation.UserSentimentPositive, ParseSentiment("POSITIVE", conversation.UserSentimentNeutral))
	assert.Equal(t, conversation.UserSentimentNeutral, ParseSentiment("mixed", conversation.UserSentimentPositive))
	assert.Equal(t, conversation.UserSentimentPositive, ParseSentiment("gibberish", conversation.UserSentimentPositive))
}

func TestParseRisk(t *testing.T) {
	assert.Equal(t, models.RiskHigh, ParseRisk("HIGH"))
	assert.Equal(t, models.RiskHigh, ParseRisk("critical"))
	assert.Equal(t, models.RiskMed, ParseRisk("Medium"))
	assert.Equal(t, models.RiskMed, ParseRisk("moderate"))
	assert.Equal(t, models.RiskLow, ParseRisk("low"))
	// An ungradeable flag must not escalate on its own.
	assert.Equal(t, models.RiskLow, ParseRisk("unsure"))
	assert.Equal(t, models.RiskLow, ParseRisk(""))
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		input string
		want  models.PipelineAction
	}{
		{"SEND_NOW", models.ActionSendNow},
		{"send now", models.ActionSendNow},
		{"Send-Now.", models.ActionSendNow},
		{"reply", models.ActionSendNow},
		{"WAIT_SCHEDULE", models.ActionWaitSchedule},
		{"wait and schedule", models.ActionWaitSchedule},
		{"INITIATE_CTA", models.ActionInitiateCTA},
		{"FLAG_ATTENTION", models.ActionFlagAttention},
		{"HANDOFF_HUMAN", models.ActionHandoffHuman},
		{"escalate", models.ActionHandoffHuman},
		// Unknown verdicts default to the safest one.
		{"DO_SOMETHING", models.ActionWaitSchedule},
		{"", models.ActionWaitSchedule},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAction(tt.input))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "sendnow", normalizeToken(" SEND_NOW. "))
	assert.Equal(t, "sendnow", normalizeToken("send-now"))
	assert.Equal(t, "", normalizeToken("  ___ "))
}
