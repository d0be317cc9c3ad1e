package pipeline

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

func TestHighRiskOrLowConfidence(t *testing.T) {
	base := ClassifyOutput{
		RiskFlags:  models.RiskFlags{Spam: models.RiskLow, Policy: models.RiskLow, Hallucination: models.RiskLow},
		Confidence: 0.9,
	}

	t.Run("clean verdict passes", func(t *testing.T) {
		c := base
		assert.False(t, c.HighRiskOrLowConfidence())
	})

	t.Run("any high risk escalates", func(t *testing.T) {
		c := base
		c.RiskFlags.Policy = models.RiskHigh
		assert.True(t, c.HighRiskOrLowConfidence())
	})

	t.Run("medium risk does not escalate", func(t *testing.T) {
		c := base
		c.RiskFlags.Spam = models.RiskMed
		assert.False(t, c.HighRiskOrLowConfidence())
	})

	t.Run("low confidence escalates", func(t *testing.T) {
		c := base
		c.Confidence = 0.29
		assert.True(t, c.HighRiskOrLowConfidence())
	})

	t.Run("boundary confidence passes", func(t *testing.T) {
		c := base
		c.Confidence = 0.3
		assert.False(t, c.HighRiskOrLowConfidence())
	})
}

func TestSendable(t *testing.T) {
	assert.True(t, (&GenerateOutput{MessageText: "hi", SelfCheckPassed: true}).Sendable())
	assert.False(t, (&GenerateOutput{MessageText: "hi", SelfCheckPassed: false}).Sendable())
	assert.False(t, (&GenerateOutput{MessageText: "   ", SelfCheckPassed: true}).Sendable())
	assert.False(t, (&GenerateOutput{SelfCheckPassed: true}).Sendable())
}

func TestSafeFallbackClassification(t *testing.T) {
	input := &Input{
		Stage:         conversation.StagePricing,
		IntentLevel:   conversation.IntentLevelMedium,
		UserSentiment: conversation.UserSentimentPositive,
	}

	cls := SafeFallbackClassification(input)

	assert.Equal(t, models.ActionWaitSchedule, cls.Action)
	assert.False(t, cls.ShouldRespond)
	assert.Equal(t, defaultFollowupMinutes, cls.FollowupInMinutes)
	// Existing state is preserved, never reset.
	assert.Equal(t, conversation.StagePricing, cls.NewStage)
	assert.Equal(t, conversation.IntentLevelMedium, cls.IntentLevel)
	assert.Equal(t, conversation.UserSentimentPositive, cls.UserSentiment)
	assert.False(t, cls.NeedsHumanAttention)
	assert.False(t, cls.RiskFlags.AnyHigh())
}

func TestDirtyAppendSummary(t *testing.T) {
	t.Run("appends both sides", func(t *testing.T) {
		got := DirtyAppendSummary("Lead asked about pricing.", "Is there a discount?", "We offer 10% off annual plans.")
		assert.Equal(t, "Lead asked about pricing.\n[PENDING] User: Is there a discount? | Bot: We offer 10% off annual plans.", got)
	})

	t.Run("silent turn marks no response", func(t *testing.T) {
		got := DirtyAppendSummary("Prev.", "hello?", "")
		assert.Equal(t, "Prev.\n[PENDING] User: hello? | Bot: (No response sent)", got)
	})

	t.Run("empty previous summary", func(t *testing.T) {
		got := DirtyAppendSummary("", "hi", "hello")
		assert.Equal(t, "\n[PENDING] User: hi | Bot: hello", got)
	})

	t.Run("bounded above clean limit", func(t *testing.T) {
		prev := strings.Repeat("x", DirtySummaryMaxChars)
		got := DirtyAppendSummary(prev, "user text", "bot text")
		require.Len(t, got, DirtySummaryMaxChars)
		assert.True(t, strings.HasPrefix(got, "xxx"))
	})

	t.Run("multibyte summary truncates on a rune boundary", func(t *testing.T) {
		// 1200 Devanagari runes, 3 bytes each. The bound must count
		// characters, not bytes, or the cut lands inside a rune and the
		// store rejects the rolling_summary write as invalid UTF-8.
		prev := strings.Repeat("ग्राहक", 200)
		got := DirtyAppendSummary(prev, "नमस्ते", "")
		assert.True(t, utf8.ValidString(got))
		assert.Equal(t, DirtySummaryMaxChars, utf8.RuneCountInString(got))
	})

	t.Run("byte length over the bound is fine while runes fit", func(t *testing.T) {
		// 480 runes but 1440 bytes: nothing to cut.
		prev := strings.Repeat("ग्राहक", 80)
		got := DirtyAppendSummary(prev, "नमस्ते", "")
		assert.True(t, utf8.ValidString(got))
		assert.True(t, strings.HasSuffix(got, "(No response sent)"))
	})
}

func TestReplyWindowOpen(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("open within 24h", func(t *testing.T) {
		last := now.Add(-23 * time.Hour)
		assert.True(t, ReplyWindowOpen(now, &last))
	})

	t.Run("closed at exactly 24h", func(t *testing.T) {
		last := now.Add(-24 * time.Hour)
		assert.False(t, ReplyWindowOpen(now, &last))
	})

	t.Run("closed after 24h", func(t *testing.T) {
		last := now.Add(-25 * time.Hour)
		assert.False(t, ReplyWindowOpen(now, &last))
	})

	t.Run("closed when the user never wrote", func(t *testing.T) {
		assert.False(t, ReplyWindowOpen(now, nil))
	})
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcde", truncate("abcdefgh", 5))
	assert.Equal(t, "", truncate("", 5))

	// Rune-counted, never mid-character.
	assert.Equal(t, "नमस्त", truncate("नमस्ते दुनिया", 5))
	assert.Equal(t, "héllo", truncate("héllo", 5))
	assert.True(t, utf8.ValidString(truncate(strings.Repeat("界", 400), 1000)))
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0.0, clampConfidence(-0.5))
	assert.Equal(t, 0.7, clampConfidence(0.7))
	assert.Equal(t, 1.0, clampConfidence(1.8))
}
