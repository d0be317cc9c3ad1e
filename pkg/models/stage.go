package models

import (
	"github.com/leadline-ai/leadline/ent/conversation"
)

// stageOrder ranks funnel stages for the monotonicity rule. CTA and FOLLOWUP
// share a rank; the terminal states share the top rank.
var stageOrder = map[conversation.Stage]int{
	conversation.StageGreeting:      0,
	conversation.StageQualification: 1,
	conversation.StagePricing:       2,
	conversation.StageCta:           3,
	conversation.StageFollowup:      3,
	conversation.StageClosed:        4,
	conversation.StageLost:          4,
	conversation.StageGhosted:       4,
}

// StageOrder returns the funnel rank of a stage. Unknown stages rank lowest
// so they can never force a forward transition.
func StageOrder(s conversation.Stage) int {
	if o, ok := stageOrder[s]; ok {
		return o
	}
	return 0
}

// IsTerminalStage reports whether the conversation has left the active funnel.
func IsTerminalStage(s conversation.Stage) bool {
	switch s {
	case conversation.StageClosed, conversation.StageLost, conversation.StageGhosted:
		return true
	default:
		return false
	}
}
