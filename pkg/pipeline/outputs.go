package pipeline

import (
	"strings"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

const (
	thoughtMaxChars        = 2000
	situationMaxChars      = 1000
	followupReasonMaxChars = 100

	// SummaryMaxChars bounds a clean rolling summary.
	SummaryMaxChars = 500
	// DirtySummaryMaxChars bounds a summary carrying [PENDING] debris; the
	// next successful Summarize compacts it back under SummaryMaxChars.
	DirtySummaryMaxChars = 1000

	// defaultFollowupMinutes is applied when WAIT_SCHEDULE comes back
	// without a usable followup interval.
	defaultFollowupMinutes = 120
)

// ClassifyOutput is the validated verdict of the Classify stage.
type ClassifyOutput struct {
	ThoughtProcess   string
	SituationSummary string
	IntentLevel      conversation.IntentLevel
	UserSentiment    conversation.UserSentiment
	RiskFlags        models.RiskFlags

	Action        models.PipelineAction
	NewStage      conversation.Stage
	ShouldRespond bool

	SelectedCTAID     string
	CTAScheduledAt    string
	FollowupInMinutes int
	FollowupReason    string

	Confidence          float64
	NeedsHumanAttention bool
}

// HighRiskOrLowConfidence reports whether the turn must be escalated instead
// of answered: any HIGH risk flag or confidence below 0.3.
func (c *ClassifyOutput) HighRiskOrLowConfidence() bool {
	return c.RiskFlags.AnyHigh() || c.Confidence < 0.3
}

// GenerateOutput is the validated reply of the Generate stage.
type GenerateOutput struct {
	MessageText           string
	MessageLanguage       string
	SelectedCTAID         string
	NextFollowupInMinutes int
	SelfCheckPassed       bool
	Violations            []string
}

// Sendable reports whether the reply survived the self check and has text.
func (g *GenerateOutput) Sendable() bool {
	return g.SelfCheckPassed && strings.TrimSpace(g.MessageText) != ""
}

// SafeFallbackClassification is applied when Classify is unparseable after
// all retries: stay silent, keep the ladder, touch nothing else.
func SafeFallbackClassification(input *Input) *ClassifyOutput {
	return &ClassifyOutput{
		ThoughtProcess:    "classification unavailable, safe fallback applied",
		SituationSummary:  "pipeline failure fallback",
		IntentLevel:       input.IntentLevel,
		UserSentiment:     input.UserSentiment,
		RiskFlags:         models.RiskFlags{Spam: models.RiskLow, Policy: models.RiskLow, Hallucination: models.RiskLow},
		Action:            models.ActionWaitSchedule,
		NewStage:          input.Stage,
		ShouldRespond:     false,
		FollowupInMinutes: defaultFollowupMinutes,
		FollowupReason:    "fallback after pipeline failure",
		Confidence:        0,
	}
}

// DirtyAppendSummary is the Summarize failure fallback: keep the raw
// exchange appended to the previous summary, bounded, so the next
// successful run can compact it.
func DirtyAppendSummary(prev, userMsg, botMsg string) string {
	if botMsg == "" {
		botMsg = "(No response sent)"
	}
	s := prev + "\n[PENDING] User: " + userMsg + " | Bot: " + botMsg
	return truncate(s, DirtySummaryMaxChars)
}

// truncate bounds s to max characters. Counts runes, not bytes: a byte slice
// can cut a multibyte character in half and the store rejects invalid UTF-8.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func clampConfidence(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
