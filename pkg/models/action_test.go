package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowupContextRoundTrip(t *testing.T) {
	c := NewFollowupContext(2, 180)
	assert.Equal(t, 2, c.Rung)
	assert.Equal(t, 180, c.OffsetMinutes)
	assert.Equal(t, "180m nudge", c.Reason)

	// The store's JSON column hands numbers back as float64.
	data, err := json.Marshal(c.ToMap())
	require.NoError(t, err)
	var stored map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &stored))

	assert.Equal(t, c, FollowupContextFromMap(stored))
}

func TestFollowupContextFromMapDefensive(t *testing.T) {
	assert.Equal(t, FollowupContext{}, FollowupContextFromMap(nil))
	assert.Equal(t, FollowupContext{}, FollowupContextFromMap(map[string]interface{}{"rung": "two"}))
}

func TestPipelineAction(t *testing.T) {
	assert.True(t, ActionSendNow.IsValid())
	assert.True(t, ActionHandoffHuman.IsValid())
	assert.False(t, PipelineAction("SHRUG").IsValid())

	assert.True(t, ActionSendNow.RequiresReply())
	assert.True(t, ActionInitiateCTA.RequiresReply())
	assert.False(t, ActionWaitSchedule.RequiresReply())
	assert.False(t, ActionFlagAttention.RequiresReply())
	assert.False(t, ActionHandoffHuman.RequiresReply())
}

func TestRiskFlags(t *testing.T) {
	assert.False(t, RiskFlags{Spam: RiskLow, Policy: RiskMed, Hallucination: RiskLow}.AnyHigh())
	assert.True(t, RiskFlags{Spam: RiskLow, Policy: RiskLow, Hallucination: RiskHigh}.AnyHigh())
	assert.False(t, RiskLevel("EXTREME").IsValid())
	assert.True(t, RiskMed.IsValid())
}
