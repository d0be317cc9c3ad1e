package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-ai/leadline/ent/conversation"
)

func TestApplyStageOverride(t *testing.T) {
	tests := []struct {
		name       string
		current    conversation.Stage
		llmStage   conversation.Stage
		analyzer   conversation.Stage
		confidence float64
		want       conversation.Stage
	}{
		{
			name:       "model moves the funnel forward",
			current:    conversation.StageGreeting,
			llmStage:   conversation.StageQualification,
			confidence: 0.9,
			want:       conversation.StageQualification,
		},
		{
			name:       "model keeps the stage",
			current:    conversation.StagePricing,
			llmStage:   conversation.StagePricing,
			confidence: 0.9,
			want:       conversation.StagePricing,
		},
		{
			name:       "regression is blocked",
			current:    conversation.StagePricing,
			llmStage:   conversation.StageGreeting,
			confidence: 0.9,
			want:       conversation.StagePricing,
		},
		{
			name:       "confident analyzer wins over the model",
			current:    conversation.StageQualification,
			llmStage:   conversation.StageQualification,
			analyzer:   conversation.StagePricing,
			confidence: 0.8,
			want:       conversation.StagePricing,
		},
		{
			name:       "analyzer ignored below the confidence bar",
			current:    conversation.StageQualification,
			llmStage:   conversation.StageQualification,
			analyzer:   conversation.StagePricing,
			confidence: 0.6,
			want:       conversation.StageQualification,
		},
		{
			name:       "analyzer at exactly the bar wins",
			current:    conversation.StageQualification,
			llmStage:   conversation.StageQualification,
			analyzer:   conversation.StagePricing,
			confidence: 0.7,
			want:       conversation.StagePricing,
		},
		{
			name:       "analyzer never moves backwards",
			current:    conversation.StageCta,
			llmStage:   conversation.StageCta,
			analyzer:   conversation.StagePricing,
			confidence: 0.95,
			want:       conversation.StageCta,
		},
		{
			name:       "cta and followup share a rank",
			current:    conversation.StageCta,
			llmStage:   conversation.StageFollowup,
			confidence: 0.9,
			want:       conversation.StageFollowup,
		},
		{
			name:       "terminal stage accepted forward",
			current:    conversation.StageCta,
			llmStage:   conversation.StageClosed,
			confidence: 0.9,
			want:       conversation.StageClosed,
		},
		{
			name:       "no leaving a terminal stage",
			current:    conversation.StageClosed,
			llmStage:   conversation.StageQualification,
			confidence: 0.9,
			want:       conversation.StageClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyStageOverride(nil, tt.current, tt.llmStage, tt.analyzer, tt.confidence)
			assert.Equal(t, tt.want, got)
		})
	}
}
