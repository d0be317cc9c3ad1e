package models

// PipelineAction is the Classify verdict on what to do with the current turn.
type PipelineAction string

const (
	// ActionSendNow replies immediately
	ActionSendNow PipelineAction = "SEND_NOW"
	// ActionWaitSchedule stays silent and relies on the follow-up ladder
	ActionWaitSchedule PipelineAction = "WAIT_SCHEDULE"
	// ActionInitiateCTA replies with a call-to-action attached
	ActionInitiateCTA PipelineAction = "INITIATE_CTA"
	// ActionFlagAttention marks the conversation for operator review
	ActionFlagAttention PipelineAction = "FLAG_ATTENTION"
	// ActionHandoffHuman hands the conversation to a human operator
	ActionHandoffHuman PipelineAction = "HANDOFF_HUMAN"
)

// IsValid checks if the pipeline action is valid
func (a PipelineAction) IsValid() bool {
	switch a {
	case ActionSendNow, ActionWaitSchedule, ActionInitiateCTA, ActionFlagAttention, ActionHandoffHuman:
		return true
	default:
		return false
	}
}

// RequiresReply reports whether the action implies running Generate.
func (a PipelineAction) RequiresReply() bool {
	return a == ActionSendNow || a == ActionInitiateCTA
}

// RiskLevel grades a single risk dimension of an inbound turn.
type RiskLevel string

const (
	RiskLow  RiskLevel = "LOW"
	RiskMed  RiskLevel = "MED"
	RiskHigh RiskLevel = "HIGH"
)

// IsValid checks if the risk level is valid
func (r RiskLevel) IsValid() bool {
	return r == RiskLow || r == RiskMed || r == RiskHigh
}

// RiskFlags carries the three Classify risk dimensions.
type RiskFlags struct {
	Spam          RiskLevel `json:"spam"`
	Policy        RiskLevel `json:"policy"`
	Hallucination RiskLevel `json:"hallucination"`
}

// AnyHigh reports whether any dimension is graded HIGH.
func (f RiskFlags) AnyHigh() bool {
	return f.Spam == RiskHigh || f.Policy == RiskHigh || f.Hallucination == RiskHigh
}
