package models

import "fmt"

// FollowupContext is the opaque payload stored with a scheduled follow-up.
// Rung is 1-based position in the ladder.
type FollowupContext struct {
	Rung          int    `json:"rung"`
	OffsetMinutes int    `json:"offset_minutes"`
	Reason        string `json:"reason"`
}

// NewFollowupContext builds the payload for one ladder rung with the
// human-readable reason operators see ("10m nudge", "180m nudge", ...).
func NewFollowupContext(rung, offsetMinutes int) FollowupContext {
	return FollowupContext{
		Rung:          rung,
		OffsetMinutes: offsetMinutes,
		Reason:        fmt.Sprintf("%dm nudge", offsetMinutes),
	}
}

// ToMap converts the payload for the store's JSON column.
func (c FollowupContext) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"rung":           c.Rung,
		"offset_minutes": c.OffsetMinutes,
		"reason":         c.Reason,
	}
}

// FollowupContextFromMap restores a payload read back from the store. JSON
// numbers arrive as float64.
func FollowupContextFromMap(m map[string]interface{}) FollowupContext {
	c := FollowupContext{}
	if m == nil {
		return c
	}
	if v, ok := m["rung"].(float64); ok {
		c.Rung = int(v)
	}
	if v, ok := m["offset_minutes"].(float64); ok {
		c.OffsetMinutes = int(v)
	}
	if v, ok := m["reason"].(string); ok {
		c.Reason = v
	}
	return c
}
