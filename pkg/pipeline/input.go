// Package pipeline runs the three-stage reasoning flow (Classify → Generate
// → Summarize) against an OpenAI-compatible provider, with retries, JSON
// extraction and fuzzy schema validation.
package pipeline

import (
	"time"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

// TranscriptEntry is one message in the prompt's recent-history window.
type TranscriptEntry struct {
	Sender    string
	Text      string
	Timestamp time.Time
}

// Timing carries the clock facts Classify reasons about.
type Timing struct {
	Now               time.Time
	LastUserMessageAt *time.Time
	LastBotMessageAt  *time.Time
	WindowOpen        bool
}

// Nudges carries the anti-spam counters.
type Nudges struct {
	FollowupCount24h int
	TotalNudges      int
}

// Constraints bound the generated reply.
type Constraints struct {
	MaxWords            int
	QuestionsPerMessage int
	LanguagePref        string
}

// Input is the immutable context bundle one pipeline run consumes. The
// context builder assembles it; the pipeline never reads the store.
type Input struct {
	BusinessName        string
	BusinessDescription string
	FlowPrompt          string
	AvailableCTAs       []models.CTAOption

	RollingSummary string
	LastMessages   []TranscriptEntry

	Stage         conversation.Stage
	Mode          conversation.Mode
	IntentLevel   conversation.IntentLevel
	UserSentiment conversation.UserSentiment

	Timing      Timing
	Nudges      Nudges
	Constraints Constraints
}

// ReplyWindowOpen computes the 24-hour transport rule: open while now is
// within 24h of the last user message; closed when the user never wrote.
func ReplyWindowOpen(now time.Time, lastUserMessageAt *time.Time) bool {
	if lastUserMessageAt == nil {
		return false
	}
	return now.Before(lastUserMessageAt.Add(24 * time.Hour))
}
