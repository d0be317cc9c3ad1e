package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/leadline-ai/leadline/pkg/llm"
)

// Config holds pipeline retry configuration
type Config struct {
	MaxAttempts    int
	RetryBaseDelay time.Duration
}

// DefaultConfig returns the standard retry behavior: two attempts, 0.5s base
// delay doubling between them.
func DefaultConfig() Config {
	return Config{
		MaxAttempts:    2,
		RetryBaseDelay: 500 * time.Millisecond,
	}
}

// Pipeline runs the three reasoning stages against the chat provider.
type Pipeline struct {
	chat   llm.ChatClient
	cfg    Config
	logger *slog.Logger
}

// New creates a pipeline over a chat client.
func New(chat llm.ChatClient, cfg Config) *Pipeline {
	if chat == nil {
		panic("pipeline.New: chat client must not be nil")
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = 500 * time.Millisecond
	}
	return &Pipeline{
		chat:   chat,
		cfg:    cfg,
		logger: slog.Default().With("component", "pipeline"),
	}
}

const (
	classifyTemperature  = 0.2
	generateTemperature  = 0.7
	summarizeTemperature = 0.3

	classifyMaxTokens  = 1024
	generateMaxTokens  = 512
	summarizeMaxTokens = 1000
)

// callStage performs one stage call with retries and JSON extraction.
// Provider errors that embed the malformed completion ("failed_generation")
// are mined for JSON before an attempt is burned on retry.
func (p *Pipeline) callStage(ctx context.Context, stage string, req llm.CompletionRequest) ([]byte, error) {
	var raw []byte

	err := retry.Do(
		func() error {
			content, err := p.chat.Complete(ctx, req)
			if err != nil {
				if txt := llm.ProviderErrorText(err); txt != "" {
					if extracted, xerr := ExtractJSON(txt); xerr == nil {
						p.logger.Info("recovered stage output from provider error payload", "stage", stage)
						raw = extracted
						return nil
					}
				}
				return err
			}

			extracted, xerr := ExtractJSON(content)
			if xerr != nil {
				return xerr
			}
			raw = extracted
			return nil
		},
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, ErrProtocol) || llm.IsRetryable(err)
		}),
		retry.Attempts(uint(p.cfg.MaxAttempts)),
		retry.Delay(p.cfg.RetryBaseDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.MaxDelay(4*time.Second),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			p.logger.Warn("stage attempt failed, retrying", "stage", stage, "attempt", n+1, "error", err)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s stage failed: %w", stage, err)
	}
	return raw, nil
}

type riskFlagsWire struct {
	Spam              string `json:"spam"`
	Policy            string `json:"policy"`
	Hallucination     string `json:"hallucination"`
	SpamRisk          string `json:"spam_risk"`
	PolicyRisk        string `json:"policy_risk"`
	HallucinationRisk string `json:"hallucination_risk"`
}

type classifyWire struct {
	ThoughtProcess      string        `json:"thought_process"`
	SituationSummary    string        `json:"situation_summary"`
	IntentLevel         string        `json:"intent_level"`
	UserSentiment       string        `json:"user_sentiment"`
	RiskFlags           riskFlagsWire `json:"risk_flags"`
	Action              string        `json:"action"`
	NewStage            string        `json:"new_stage"`
	ShouldRespond       *bool         `json:"should_respond"`
	SelectedCTAID       string        `json:"selected_cta_id"`
	CTAScheduledAt      string        `json:"cta_scheduled_at"`
	FollowupInMinutes   *float64      `json:"followup_in_minutes"`
	FollowupReason      string        `json:"followup_reason"`
	Confidence          float64       `json:"confidence"`
	NeedsHumanAttention bool          `json:"needs_human_attention"`
}

// Classify runs the Brain: one call deciding what to do with the turn.
func (p *Pipeline) Classify(ctx context.Context, input *Input) (*ClassifyOutput, error) {
	system, user := buildClassifyPrompts(input)

	raw, err := p.callStage(ctx, "classify", llm.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: classifyTemperature,
		MaxTokens:   classifyMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	var wire classifyWire
	if err := decodeObject(raw, &wire); err != nil {
		return nil, fmt.Errorf("classify stage failed: %w", err)
	}
	return normalizeClassify(input, &wire), nil
}

func normalizeClassify(input *Input, wire *classifyWire) *ClassifyOutput {
	action := ParseAction(wire.Action)

	out := &ClassifyOutput{
		ThoughtProcess:      truncate(wire.ThoughtProcess, thoughtMaxChars),
		SituationSummary:    truncate(wire.SituationSummary, situationMaxChars),
		IntentLevel:         ParseIntentLevel(wire.IntentLevel, input.IntentLevel),
		UserSentiment:       ParseSentiment(wire.UserSentiment, input.UserSentiment),
		Action:              action,
		NewStage:            ParseStage(wire.NewStage, input.Stage),
		SelectedCTAID:       cleanNullable(wire.SelectedCTAID),
		CTAScheduledAt:      cleanNullable(wire.CTAScheduledAt),
		FollowupReason:      truncate(wire.FollowupReason, followupReasonMaxChars),
		Confidence:          clampConfidence(wire.Confidence),
		NeedsHumanAttention: wire.NeedsHumanAttention,
	}

	out.RiskFlags.Spam = ParseRisk(coalesce(wire.RiskFlags.Spam, wire.RiskFlags.SpamRisk))
	out.RiskFlags.Policy = ParseRisk(coalesce(wire.RiskFlags.Policy, wire.RiskFlags.PolicyRisk))
	out.RiskFlags.Hallucination = ParseRisk(coalesce(wire.RiskFlags.Hallucination, wire.RiskFlags.HallucinationRisk))

	if wire.ShouldRespond != nil {
		out.ShouldRespond = *wire.ShouldRespond
	} else {
		out.ShouldRespond = action.RequiresReply()
	}

	followup := 0
	if wire.FollowupInMinutes != nil {
		followup = int(*wire.FollowupInMinutes)
	}
	switch {
	case action == "SEND_NOW":
		followup = 0
	case action == "WAIT_SCHEDULE" && followup <= 0:
		followup = defaultFollowupMinutes
	case followup < 0:
		followup = 0
	}
	out.FollowupInMinutes = followup

	// INITIATE_CTA without a pick defaults to the first catalog entry.
	if action == "INITIATE_CTA" && out.SelectedCTAID == "" && len(input.AvailableCTAs) > 0 {
		out.SelectedCTAID = input.AvailableCTAs[0].ID
	}

	if action == "FLAG_ATTENTION" || action == "HANDOFF_HUMAN" {
		out.NeedsHumanAttention = true
	}

	return out
}

type generateWire struct {
	MessageText           string   `json:"message_text"`
	MessageLanguage       string   `json:"message_language"`
	SelectedCTAID         string   `json:"selected_cta_id"`
	NextFollowupInMinutes *float64 `json:"next_followup_in_minutes"`
	SelfCheckPassed       *bool    `json:"self_check_passed"`
	Violations            []string `json:"violations"`
}

// Generate runs the Mouth: writes the customer-facing reply for a turn
// Classify marked as respondable.
func (p *Pipeline) Generate(ctx context.Context, input *Input, cls *ClassifyOutput) (*GenerateOutput, error) {
	system, user := buildGeneratePrompts(input, cls)

	raw, err := p.callStage(ctx, "generate", llm.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: generateTemperature,
		MaxTokens:   generateMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, err
	}

	var wire generateWire
	if err := decodeObject(raw, &wire); err != nil {
		return nil, fmt.Errorf("generate stage failed: %w", err)
	}
	return normalizeGenerate(input, &wire), nil
}

func normalizeGenerate(input *Input, wire *generateWire) *GenerateOutput {
	out := &GenerateOutput{
		MessageText:     strings.TrimSpace(wire.MessageText),
		MessageLanguage: coalesce(wire.MessageLanguage, input.Constraints.LanguagePref, "en"),
		SelectedCTAID:   cleanNullable(wire.SelectedCTAID),
		SelfCheckPassed: true,
		Violations:      wire.Violations,
	}
	if wire.NextFollowupInMinutes != nil && *wire.NextFollowupInMinutes > 0 {
		out.NextFollowupInMinutes = int(*wire.NextFollowupInMinutes)
	}
	if wire.SelfCheckPassed != nil {
		out.SelfCheckPassed = *wire.SelfCheckPassed
	}

	// Deterministic guardrails on top of the model's own check.
	if max := input.Constraints.MaxWords; max > 0 && len(strings.Fields(out.MessageText)) > max {
		out.SelfCheckPassed = false
		out.Violations = append(out.Violations, "message exceeds max words")
	}
	if max := input.Constraints.QuestionsPerMessage; max >= 0 && strings.Count(out.MessageText, "?") > max {
		out.SelfCheckPassed = false
		out.Violations = append(out.Violations, "message asks too many questions")
	}

	return out
}

type summaryWire struct {
	UpdatedRollingSummary string `json:"updated_rolling_summary"`
}

// Summarize runs the Memory: compacts the turn into the rolling summary.
// Callers handle failure with DirtyAppendSummary.
func (p *Pipeline) Summarize(ctx context.Context, prevSummary, userMsg, botMsg, actionTaken string) (string, error) {
	system, user := buildSummarizePrompts(prevSummary, userMsg, botMsg, actionTaken)

	raw, err := p.callStage(ctx, "summarize", llm.CompletionRequest{
		System:      system,
		User:        user,
		Temperature: summarizeTemperature,
		MaxTokens:   summarizeMaxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return "", err
	}

	var wire summaryWire
	if err := decodeObject(raw, &wire); err != nil {
		return "", fmt.Errorf("summarize stage failed: %w", err)
	}

	summary := strings.TrimSpace(wire.UpdatedRollingSummary)
	if summary == "" {
		return "", fmt.Errorf("summarize stage failed: %w", ErrProtocol)
	}
	return truncate(summary, SummaryMaxChars), nil
}

func cleanNullable(s string) string {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "null") || strings.EqualFold(s, "none") {
		return ""
	}
	return s
}

func coalesce(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
