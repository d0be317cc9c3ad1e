package pipeline

import (
	"strings"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

// normalizeToken lowercases and strips everything but letters and digits so
// "SEND NOW", "send_now" and "send-now." all compare equal.
func normalizeToken(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseStage maps a model-emitted stage string onto a known stage; unknown
// strings keep the fallback so a typo can never move the funnel.
func ParseStage(s string, fallback conversation.Stage) conversation.Stage {
	switch normalizeToken(s) {
	case "greeting", "greet", "hello":
		return conversation.StageGreeting
	case "qualification", "qualify", "qualifying":
		return conversation.StageQualification
	case "pricing", "price", "quote":
		return conversation.StagePricing
	case "cta", "calltoaction":
		return conversation.StageCta
	case "followup", "followups":
		return conversation.StageFollowup
	case "closed", "close", "won":
		return conversation.StageClosed
	case "lost", "lose":
		return conversation.StageLost
	case "ghosted", "ghost":
		return conversation.StageGhosted
	default:
		return fallback
	}
}

// ParseIntentLevel defaults to the current value so a garbled field never
// erases signal.
func ParseIntentLevel(s string, fallback conversation.IntentLevel) conversation.IntentLevel {
	switch normalizeToken(s) {
	case "unknown", "none":
		return conversation.IntentLevelUnknown
	case "low":
		return conversation.IntentLevelLow
	case "medium", "med", "mid":
		return conversation.IntentLevelMedium
	case "high", "hot":
		return conversation.IntentLevelHigh
	default:
		return fallback
	}
}

// ParseSentiment defaults to neutral.
func ParseSentiment(s string, fallback conversation.UserSentiment) conversation.UserSentiment {
	switch normalizeToken(s) {
	case "negative", "neg", "bad", "angry":
		return conversation.UserSentimentNegative
	case "neutral", "ok", "mixed":
		return conversation.UserSentimentNeutral
	case "positive", "pos", "good", "happy":
		return conversation.UserSentimentPositive
	default:
		return fallback
	}
}

// ParseRisk defaults to LOW; an ungradeable flag must not escalate on its own.
func ParseRisk(s string) models.RiskLevel {
	switch normalizeToken(s) {
	case "high", "hi", "severe", "critical":
		return models.RiskHigh
	case "med", "medium", "mid", "moderate":
		return models.RiskMed
	default:
		return models.RiskLow
	}
}

// ParseAction defaults to WAIT_SCHEDULE, the safest verdict: no outbound,
// ladder still enrolled.
func ParseAction(s string) models.PipelineAction {
	switch normalizeToken(s) {
	case "sendnow", "send", "reply", "respond":
		return models.ActionSendNow
	case "waitschedule", "wait", "schedule", "waitandschedule":
		return models.ActionWaitSchedule
	case "initiatecta", "cta", "ctainitiate":
		return models.ActionInitiateCTA
	case "flagattention", "flag", "attention":
		return models.ActionFlagAttention
	case "handoffhuman", "handoff", "humanhandoff", "escalate":
		return models.ActionHandoffHuman
	default:
		return models.ActionWaitSchedule
	}
}
