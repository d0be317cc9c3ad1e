package pipeline

import (
	"fmt"
	"strings"
	"time"
)

const classifySystemPrompt = `You are the strategist of a WhatsApp sales assistant. You observe one conversation turn and decide what happens next. You never write the customer-facing reply yourself.

Respond with exactly one JSON object and nothing else. Schema:
{
  "thought_process": string,
  "situation_summary": string,
  "intent_level": "UNKNOWN"|"LOW"|"MEDIUM"|"HIGH",
  "user_sentiment": "NEGATIVE"|"NEUTRAL"|"POSITIVE",
  "risk_flags": {"spam": "LOW"|"MED"|"HIGH", "policy": "LOW"|"MED"|"HIGH", "hallucination": "LOW"|"MED"|"HIGH"},
  "action": "SEND_NOW"|"WAIT_SCHEDULE"|"INITIATE_CTA"|"FLAG_ATTENTION"|"HANDOFF_HUMAN",
  "new_stage": "GREETING"|"QUALIFICATION"|"PRICING"|"CTA"|"FOLLOWUP"|"CLOSED"|"LOST"|"GHOSTED",
  "should_respond": boolean,
  "selected_cta_id": string|null,
  "cta_scheduled_at": string|null,
  "followup_in_minutes": integer,
  "followup_reason": string,
  "confidence": number between 0 and 1,
  "needs_human_attention": boolean
}

Rules:
- HANDOFF_HUMAN or FLAG_ATTENTION whenever the user asks for a person, is upset, or anything looks risky.
- Never suggest an earlier stage than the current one.
- If the reply window is closed, do not choose SEND_NOW.
- Be conservative: when unsure, WAIT_SCHEDULE with should_respond=false.`

const generateSystemPromptTemplate = `You are the voice of %s on WhatsApp.
%s

Constraints:
- At most %d words.
- At most %d questions in the message.
- Language: %s.
- Casual, warm, no emojis unless the customer used them first. Never invent prices, availability or facts that are not in the context.

Respond with exactly one JSON object and nothing else. Schema:
{
  "message_text": string,
  "message_language": string,
  "selected_cta_id": string|null,
  "next_followup_in_minutes": integer,
  "self_check_passed": boolean,
  "violations": [string]
}

Set self_check_passed=false and list violations if your own draft breaks any constraint.`

const summarizeSystemPrompt = `You compress a sales conversation into a rolling summary for the next turn's strategist.

Respond with exactly one JSON object and nothing else. Schema:
{"updated_rolling_summary": string}

Rules:
- At most 500 characters.
- Keep: who the customer is, what they want, objections, agreed next steps.
- Fold any [PENDING] lines from the previous summary into clean prose.`

func buildClassifyPrompts(input *Input) (string, string) {
	var b strings.Builder

	fmt.Fprintf(&b, "## Business\nName: %s\n", input.BusinessName)
	if input.BusinessDescription != "" {
		fmt.Fprintf(&b, "Description: %s\n", input.BusinessDescription)
	}
	if input.FlowPrompt != "" {
		fmt.Fprintf(&b, "\n## Sales Playbook\n%s\n", input.FlowPrompt)
	}

	fmt.Fprintf(&b, "\n## Conversation State\nRolling Summary: %s\n", orDefault(input.RollingSummary, "No prior summary"))
	fmt.Fprintf(&b, "Current Stage: %s\nIntent Level: %s\nUser Sentiment: %s\n",
		strings.ToUpper(string(input.Stage)),
		strings.ToUpper(string(input.IntentLevel)),
		strings.ToUpper(string(input.UserSentiment)))

	fmt.Fprintf(&b, "\n## Timing\nNow: %s\nLast user message: %s\nLast bot message: %s\nReply window open: %t\n",
		input.Timing.Now.Format(time.RFC3339),
		formatOptionalTime(input.Timing.LastUserMessageAt),
		formatOptionalTime(input.Timing.LastBotMessageAt),
		input.Timing.WindowOpen)

	fmt.Fprintf(&b, "\n## Nudges\nFollow-ups in last 24h: %d\nTotal nudges: %d\n",
		input.Nudges.FollowupCount24h, input.Nudges.TotalNudges)

	fmt.Fprintf(&b, "\n## Available CTAs\n%s\n", formatCTAs(input))
	fmt.Fprintf(&b, "\n## Recent Messages\n%s\n", formatTranscript(input.LastMessages))
	b.WriteString("\nDecide the next action for this conversation.")

	return classifySystemPrompt, b.String()
}

func buildGeneratePrompts(input *Input, cls *ClassifyOutput) (string, string) {
	system := fmt.Sprintf(generateSystemPromptTemplate,
		input.BusinessName,
		input.BusinessDescription,
		input.Constraints.MaxWords,
		input.Constraints.QuestionsPerMessage,
		orDefault(input.Constraints.LanguagePref, "match the customer"))

	var b strings.Builder
	fmt.Fprintf(&b, "## Plan from the strategist\nAction: %s\nSituation: %s\n", cls.Action, cls.SituationSummary)
	if cls.SelectedCTAID != "" {
		fmt.Fprintf(&b, "Attach CTA: %s\n", cls.SelectedCTAID)
	}
	fmt.Fprintf(&b, "\n## Conversation State\nStage: %s\nRolling Summary: %s\n",
		strings.ToUpper(string(input.Stage)),
		orDefault(input.RollingSummary, "No prior summary"))
	fmt.Fprintf(&b, "\n## Available CTAs\n%s\n", formatCTAs(input))
	fmt.Fprintf(&b, "\n## Recent Messages\n%s\n", formatTranscript(input.LastMessages))
	b.WriteString("\nWrite the reply following the plan.")

	return system, b.String()
}

func buildSummarizePrompts(prevSummary, userMsg, botMsg, actionTaken string) (string, string) {
	var b strings.Builder
	fmt.Fprintf(&b, "## Current Rolling Summary\n%s\n", orDefault(prevSummary, "No prior summary"))
	fmt.Fprintf(&b, "\n## New Exchange\nUser: %s\nBot: %s\n", userMsg, orDefault(botMsg, "(No response sent)"))
	fmt.Fprintf(&b, "\n## Action Taken\n%s\n", actionTaken)
	b.WriteString("\nUpdate the rolling summary to include this exchange.")

	return summarizeSystemPrompt, b.String()
}

func formatTranscript(entries []TranscriptEntry) string {
	if len(entries) == 0 {
		return "(no messages yet)"
	}
	var b strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&b, "[%s] %s: %s\n", e.Timestamp.Format("2006-01-02 15:04"), e.Sender, e.Text)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatCTAs(input *Input) string {
	if len(input.AvailableCTAs) == 0 {
		return "(none)"
	}
	var b strings.Builder
	for _, c := range input.AvailableCTAs {
		fmt.Fprintf(&b, "- %s: %s (%s)\n", c.ID, c.Label, c.Kind)
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatOptionalTime(t *time.Time) string {
	if t == nil {
		return "never"
	}
	return t.Format(time.RFC3339)
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
