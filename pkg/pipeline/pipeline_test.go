package pipeline

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/llm"
	"github.com/leadline-ai/leadline/pkg/models"
)

// scriptedChat returns canned completions in order. When the script runs out
// it returns an error, which the pipeline treats as a provider failure.
type scriptedChat struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
}

type scriptedReply struct {
	content string
	err     error
}

func (s *scriptedChat) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if len(s.replies) == 0 {
		return "", errors.New("script exhausted")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	return r.content, r.err
}

func (s *scriptedChat) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func testPipeline(chat llm.ChatClient) *Pipeline {
	return New(chat, Config{MaxAttempts: 2, RetryBaseDelay: time.Millisecond})
}

func classifyInput() *Input {
	return &Input{
		BusinessName:  "Acme Tutoring",
		Stage:         conversation.StageGreeting,
		IntentLevel:   conversation.IntentLevelUnknown,
		UserSentiment: conversation.UserSentimentNeutral,
		AvailableCTAs: []models.CTAOption{{ID: "book-call", Label: "Book a call", Kind: "calendar"}},
		Constraints:   Constraints{MaxWords: 80, QuestionsPerMessage: 1, LanguagePref: "en"},
	}
}

const validClassifyJSON = `{
	"thought_process": "User asked for pricing details.",
	"situation_summary": "Lead wants a quote.",
	"intent_level": "high",
	"user_sentiment": "positive",
	"risk_flags": {"spam": "LOW", "policy": "LOW", "hallucination": "LOW"},
	"action": "SEND_NOW",
	"new_stage": "PRICING",
	"should_respond": true,
	"followup_in_minutes": 60,
	"confidence": 0.85
}`

func TestClassify(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: validClassifyJSON}}}
		cls, err := testPipeline(chat).Classify(context.Background(), classifyInput())
		require.NoError(t, err)

		assert.Equal(t, models.ActionSendNow, cls.Action)
		assert.Equal(t, conversation.StagePricing, cls.NewStage)
		assert.Equal(t, conversation.IntentLevelHigh, cls.IntentLevel)
		assert.Equal(t, conversation.UserSentimentPositive, cls.UserSentiment)
		assert.True(t, cls.ShouldRespond)
		assert.Equal(t, 0.85, cls.Confidence)
		assert.False(t, cls.HighRiskOrLowConfidence())
		// SEND_NOW never carries a follow-up interval.
		assert.Equal(t, 0, cls.FollowupInMinutes)
	})

	t.Run("retries a protocol violation once", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{
			{content: "I cannot answer in JSON, sorry."},
			{content: validClassifyJSON},
		}}
		cls, err := testPipeline(chat).Classify(context.Background(), classifyInput())
		require.NoError(t, err)
		assert.Equal(t, models.ActionSendNow, cls.Action)
		assert.Equal(t, 2, chat.callCount())
	})

	t.Run("fails after retries are exhausted", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{
			{content: "no json here"},
			{content: "still no json"},
		}}
		_, err := testPipeline(chat).Classify(context.Background(), classifyInput())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProtocol)
		assert.Equal(t, 2, chat.callCount())
	})

	t.Run("recovers output from the provider error payload", func(t *testing.T) {
		// Some providers reject JSON-mode output but return the malformed
		// completion inside the error body.
		chat := &scriptedChat{replies: []scriptedReply{
			{err: &openai.APIError{
				HTTPStatusCode: 400,
				Message:        "failed_generation: " + validClassifyJSON,
			}},
		}}
		cls, err := testPipeline(chat).Classify(context.Background(), classifyInput())
		require.NoError(t, err)
		assert.Equal(t, models.ActionSendNow, cls.Action)
		assert.Equal(t, 1, chat.callCount(), "recovery must not burn a retry")
	})
}

func TestNormalizeClassify(t *testing.T) {
	input := classifyInput()

	t.Run("wait schedule defaults the followup interval", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{Action: "WAIT_SCHEDULE", Confidence: 0.8})
		assert.Equal(t, models.ActionWaitSchedule, out.Action)
		assert.Equal(t, defaultFollowupMinutes, out.FollowupInMinutes)
		assert.False(t, out.ShouldRespond)
	})

	t.Run("negative followup is clamped", func(t *testing.T) {
		neg := -30.0
		out := normalizeClassify(input, &classifyWire{Action: "INITIATE_CTA", FollowupInMinutes: &neg, Confidence: 0.8})
		assert.Equal(t, 0, out.FollowupInMinutes)
	})

	t.Run("should_respond derived from the action when missing", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{Action: "SEND_NOW", Confidence: 0.8})
		assert.True(t, out.ShouldRespond)

		out = normalizeClassify(input, &classifyWire{Action: "FLAG_ATTENTION", Confidence: 0.8})
		assert.False(t, out.ShouldRespond)
	})

	t.Run("explicit should_respond wins", func(t *testing.T) {
		no := false
		out := normalizeClassify(input, &classifyWire{Action: "SEND_NOW", ShouldRespond: &no, Confidence: 0.8})
		assert.False(t, out.ShouldRespond)
	})

	t.Run("cta without a pick defaults to the first catalog entry", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{Action: "INITIATE_CTA", Confidence: 0.8})
		assert.Equal(t, "book-call", out.SelectedCTAID)
	})

	t.Run("escalation actions force the attention flag", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{Action: "HANDOFF_HUMAN", Confidence: 0.8})
		assert.True(t, out.NeedsHumanAttention)
	})

	t.Run("risk flag alias keys are honored", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{
			Action:     "SEND_NOW",
			RiskFlags:  riskFlagsWire{SpamRisk: "HIGH"},
			Confidence: 0.9,
		})
		assert.Equal(t, models.RiskHigh, out.RiskFlags.Spam)
		assert.True(t, out.HighRiskOrLowConfidence())
	})

	t.Run("null strings are cleaned", func(t *testing.T) {
		out := normalizeClassify(input, &classifyWire{Action: "SEND_NOW", SelectedCTAID: "null", Confidence: 0.8})
		assert.Empty(t, out.SelectedCTAID)
	})
}

func TestGenerate(t *testing.T) {
	cls := &ClassifyOutput{Action: models.ActionSendNow, ShouldRespond: true}

	t.Run("happy path", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"message_text": "We have slots this week. Want me to book one?",
			"message_language": "en",
			"self_check_passed": true
		}`}}}
		gen, err := testPipeline(chat).Generate(context.Background(), classifyInput(), cls)
		require.NoError(t, err)
		assert.True(t, gen.Sendable())
		assert.Equal(t, "en", gen.MessageLanguage)
	})

	t.Run("word limit enforced deterministically", func(t *testing.T) {
		long := strings.Repeat("word ", 100)
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"message_text": "` + strings.TrimSpace(long) + `",
			"self_check_passed": true
		}`}}}
		gen, err := testPipeline(chat).Generate(context.Background(), classifyInput(), cls)
		require.NoError(t, err)
		assert.False(t, gen.Sendable())
		assert.Contains(t, gen.Violations, "message exceeds max words")
	})

	t.Run("question limit enforced deterministically", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"message_text": "What is your budget? And when do you start? Also, why?",
			"self_check_passed": true
		}`}}}
		gen, err := testPipeline(chat).Generate(context.Background(), classifyInput(), cls)
		require.NoError(t, err)
		assert.False(t, gen.Sendable())
		assert.Contains(t, gen.Violations, "message asks too many questions")
	})

	t.Run("model self check failure is preserved", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"message_text": "ok",
			"self_check_passed": false,
			"violations": ["made up a price"]
		}`}}}
		gen, err := testPipeline(chat).Generate(context.Background(), classifyInput(), cls)
		require.NoError(t, err)
		assert.False(t, gen.Sendable())
		assert.Contains(t, gen.Violations, "made up a price")
	})

	t.Run("language falls back to the preference", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"message_text": "hola",
			"self_check_passed": true
		}`}}}
		input := classifyInput()
		input.Constraints.LanguagePref = "es"
		gen, err := testPipeline(chat).Generate(context.Background(), input, cls)
		require.NoError(t, err)
		assert.Equal(t, "es", gen.MessageLanguage)
	})
}

func TestSummarize(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{{content: `{
			"updated_rolling_summary": "Lead asked for pricing; bot quoted the annual plan."
		}`}}}
		summary, err := testPipeline(chat).Summarize(context.Background(), "prev", "how much?", "it is $99", "SEND_NOW")
		require.NoError(t, err)
		assert.Equal(t, "Lead asked for pricing; bot quoted the annual plan.", summary)
	})

	t.Run("summary is bounded", func(t *testing.T) {
		long := strings.Repeat("s", SummaryMaxChars+200)
		chat := &scriptedChat{replies: []scriptedReply{{content: `{"updated_rolling_summary": "` + long + `"}`}}}
		summary, err := testPipeline(chat).Summarize(context.Background(), "", "u", "b", "SEND_NOW")
		require.NoError(t, err)
		assert.Len(t, summary, SummaryMaxChars)
	})

	t.Run("multibyte summary bounded by characters", func(t *testing.T) {
		long := strings.Repeat("ग", SummaryMaxChars+100)
		chat := &scriptedChat{replies: []scriptedReply{{content: `{"updated_rolling_summary": "` + long + `"}`}}}
		summary, err := testPipeline(chat).Summarize(context.Background(), "", "u", "b", "SEND_NOW")
		require.NoError(t, err)
		assert.True(t, utf8.ValidString(summary))
		assert.Equal(t, SummaryMaxChars, utf8.RuneCountInString(summary))
	})

	t.Run("empty summary is a protocol violation", func(t *testing.T) {
		chat := &scriptedChat{replies: []scriptedReply{
			{content: `{"updated_rolling_summary": "  "}`},
		}}
		_, err := testPipeline(chat).Summarize(context.Background(), "", "u", "b", "SEND_NOW")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrProtocol)
	})
}

func TestNewPanicsWithoutClient(t *testing.T) {
	assert.Panics(t, func() { New(nil, DefaultConfig()) })
}
