package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("WHATSAPP_VERIFY_TOKEN", "verify")
	t.Setenv("OPERATOR_TOKEN", "operator")
}

func TestLoadFromEnvDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []time.Duration{10 * time.Minute, 180 * time.Minute, 360 * time.Minute}, cfg.LadderOffsets)
	assert.Equal(t, DefaultMaxWords, cfg.MaxWords)
	assert.Equal(t, DefaultQuestionsPerMessage, cfg.QuestionsPerMessage)
	assert.Equal(t, DefaultPollInterval, cfg.PollInterval)
	assert.Equal(t, DefaultClaimLimit, cfg.ClaimLimit)
	assert.Equal(t, DefaultActionRetention, cfg.ActionRetention)
}

func TestLoadFromEnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("FOLLOWUP_LADDER_MINUTES", "5, 30, 120")
	t.Setenv("PIPELINE_MAX_WORDS", "40")
	t.Setenv("SCHEDULER_POLL_INTERVAL_SECONDS", "2")
	t.Setenv("ACTION_RETENTION_DAYS", "30")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, []time.Duration{5 * time.Minute, 30 * time.Minute, 120 * time.Minute}, cfg.LadderOffsets)
	assert.Equal(t, 40, cfg.MaxWords)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.ActionRetention)
}

func TestLoadFromEnvValidation(t *testing.T) {
	t.Run("verify token required", func(t *testing.T) {
		t.Setenv("WHATSAPP_VERIFY_TOKEN", "")
		t.Setenv("OPERATOR_TOKEN", "operator")
		_, err := LoadFromEnv()
		assert.ErrorContains(t, err, "WHATSAPP_VERIFY_TOKEN")
	})

	t.Run("operator token required", func(t *testing.T) {
		t.Setenv("WHATSAPP_VERIFY_TOKEN", "verify")
		t.Setenv("OPERATOR_TOKEN", "")
		_, err := LoadFromEnv()
		assert.ErrorContains(t, err, "OPERATOR_TOKEN")
	})

	t.Run("ladder must ascend", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FOLLOWUP_LADDER_MINUTES", "60,30")
		_, err := LoadFromEnv()
		assert.ErrorContains(t, err, "ascending")
	})

	t.Run("ladder rejects garbage", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FOLLOWUP_LADDER_MINUTES", "ten,20")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})

	t.Run("ladder rejects non-positive offsets", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("FOLLOWUP_LADDER_MINUTES", "0,10")
		_, err := LoadFromEnv()
		require.Error(t, err)
	})
}

func TestParseLadder(t *testing.T) {
	offsets, err := parseLadder("10,180,360")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{10 * time.Minute, 3 * time.Hour, 6 * time.Hour}, offsets)

	offsets, err = parseLadder(" 15 , 45 ")
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{15 * time.Minute, 45 * time.Minute}, offsets)
}
