package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leadline-ai/leadline/ent/conversation"
)

func TestStageOrder(t *testing.T) {
	assert.Less(t, StageOrder(conversation.StageGreeting), StageOrder(conversation.StageQualification))
	assert.Less(t, StageOrder(conversation.StageQualification), StageOrder(conversation.StagePricing))
	assert.Less(t, StageOrder(conversation.StagePricing), StageOrder(conversation.StageCta))
	// CTA and FOLLOWUP share a rank: neither transition is a regression.
	assert.Equal(t, StageOrder(conversation.StageCta), StageOrder(conversation.StageFollowup))
	assert.Less(t, StageOrder(conversation.StageCta), StageOrder(conversation.StageClosed))
	assert.Equal(t, StageOrder(conversation.StageClosed), StageOrder(conversation.StageLost))
	assert.Equal(t, StageOrder(conversation.StageClosed), StageOrder(conversation.StageGhosted))
	// Unknown stages rank lowest so they can never force a forward move.
	assert.Equal(t, 0, StageOrder(conversation.Stage("limbo")))
}

func TestIsTerminalStage(t *testing.T) {
	assert.True(t, IsTerminalStage(conversation.StageClosed))
	assert.True(t, IsTerminalStage(conversation.StageLost))
	assert.True(t, IsTerminalStage(conversation.StageGhosted))
	assert.False(t, IsTerminalStage(conversation.StageCta))
	assert.False(t, IsTerminalStage(conversation.StageGreeting))
}
