package pipeline

import (
	"log/slog"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

// ApplyStageOverride resolves the final stage from the model's suggestion.
// A high-confidence analyzer recommendation wins when it moves the funnel
// forward; regressions are blocked and logged; everything else takes the
// model's suggestion. analyzerStage may be empty when no separate analyzer
// ran, which disables the first rule.
func ApplyStageOverride(logger *slog.Logger, current, llmStage, analyzerStage conversation.Stage, confidence float64) conversation.Stage {
	if logger == nil {
		logger = slog.Default()
	}

	curOrder := models.StageOrder(current)
	llmOrder := models.StageOrder(llmStage)

	if analyzerStage != "" && confidence >= 0.7 && models.StageOrder(analyzerStage) > curOrder {
		logger.Info("stage override: trusting analyzer over model",
			"analyzer_stage", analyzerStage,
			"llm_stage", llmStage,
			"confidence", confidence)
		return analyzerStage
	}

	if llmOrder < curOrder {
		logger.Warn("stage regression blocked",
			"current_stage", current,
			"llm_stage", llmStage)
		return current
	}

	return llmStage
}
