package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/pipeline"
)

// transcriptWindow is how many recent messages the pipeline sees.
const transcriptWindow = 3

// buildInput assembles the immutable context bundle one pipeline run
// consumes: business profile, CTA catalog, rolling summary, the recent
// transcript oldest-first, conversation state, timing and constraints.
func (o *Orchestrator) buildInput(ctx context.Context, integ *ent.Integration, conv *ent.Conversation, now time.Time) (*pipeline.Input, error) {
	recent, err := o.store.ListRecentMessages(ctx, conv.ID, transcriptWindow)
	if err != nil {
		return nil, fmt.Errorf("list recent messages: %w", err)
	}

	transcript := make([]pipeline.TranscriptEntry, 0, len(recent))
	for _, m := range recent {
		transcript = append(transcript, pipeline.TranscriptEntry{
			Sender:    string(m.Sender),
			Text:      m.Text,
			Timestamp: m.CreatedAt,
		})
	}

	languagePref := integ.LanguagePref
	if languagePref == "" {
		languagePref = "auto"
	}

	return &pipeline.Input{
		BusinessName:        integ.BusinessName,
		BusinessDescription: integ.BusinessDescription,
		FlowPrompt:          integ.FlowPrompt,
		AvailableCTAs:       models.CTAOptionsFromJSON(integ.Ctas),

		RollingSummary: conv.RollingSummary,
		LastMessages:   transcript,

		Stage:         conv.Stage,
		Mode:          conv.Mode,
		IntentLevel:   conv.IntentLevel,
		UserSentiment: conv.UserSentiment,

		Timing: pipeline.Timing{
			Now:               now,
			LastUserMessageAt: conv.LastUserMessageAt,
			LastBotMessageAt:  conv.LastBotMessageAt,
			WindowOpen:        pipeline.ReplyWindowOpen(now, conv.LastUserMessageAt),
		},
		Nudges: pipeline.Nudges{
			FollowupCount24h: conv.FollowupCount24h,
			TotalNudges:      conv.TotalNudges,
		},
		Constraints: pipeline.Constraints{
			MaxWords:            o.maxWords,
			QuestionsPerMessage: o.questionsPerMessage,
			LanguagePref:        languagePref,
		},
	}, nil
}
