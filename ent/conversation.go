// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/lead"
)

// Conversation is the model entity for the Conversation schema.
type Conversation struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// OrgID holds the value of the "org_id" field.
	OrgID string `json:"org_id,omitempty"`
	// LeadID holds the value of the "lead_id" field.
	LeadID string `json:"lead_id,omitempty"`
	// human mutes the bot entirely
	Mode conversation.Mode `json:"mode,omitempty"`
	// Non-regressing except via operator action
	Stage conversation.Stage `json:"stage,omitempty"`
	// IntentLevel holds the value of the "intent_level" field.
	IntentLevel conversation.IntentLevel `json:"intent_level,omitempty"`
	// UserSentiment holds the value of the "user_sentiment" field.
	UserSentiment conversation.UserSentiment `json:"user_sentiment,omitempty"`
	// Compact memory, target <=500 chars
	RollingSummary string `json:"rolling_summary,omitempty"`
	// NeedsHumanAttention holds the value of the "needs_human_attention" field.
	NeedsHumanAttention bool `json:"needs_human_attention,omitempty"`
	// HumanAttentionResolvedAt holds the value of the "human_attention_resolved_at" field.
	HumanAttentionResolvedAt *time.Time `json:"human_attention_resolved_at,omitempty"`
	// Monotone witness for the staleness gate
	LastUserMessageAt *time.Time `json:"last_user_message_at,omitempty"`
	// LastBotMessageAt holds the value of the "last_bot_message_at" field.
	LastBotMessageAt *time.Time `json:"last_bot_message_at,omitempty"`
	// FollowupCount24h holds the value of the "followup_count_24h" field.
	FollowupCount24h int `json:"followup_count_24h,omitempty"`
	// TotalNudges holds the value of the "total_nudges" field.
	TotalNudges int `json:"total_nudges,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ConversationQuery when eager-loading is set.
	Edges        ConversationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ConversationEdges holds the relations/edges for other nodes in the graph.
type ConversationEdges struct {
	// Lead holds the value of the lead edge.
	Lead *Lead `json:"lead,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*Message `json:"messages,omitempty"`
	// ScheduledActions holds the value of the scheduled_actions edge.
	ScheduledActions []*ScheduledAction `json:"scheduled_actions,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// LeadOrErr returns the Lead value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ConversationEdges) LeadOrErr() (*Lead, error) {
	if e.Lead != nil {
		return e.Lead, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: lead.Label}
	}
	return nil, &NotLoadedError{edge: "lead"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) MessagesOrErr() ([]*Message, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// ScheduledActionsOrErr returns the ScheduledActions value or an error if the edge
// was not loaded in eager-loading.
func (e ConversationEdges) ScheduledActionsOrErr() ([]*ScheduledAction, error) {
	if e.loadedTypes[2] {
		return e.ScheduledActions, nil
	}
	return nil, &NotLoadedError{edge: "scheduled_actions"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Conversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case conversation.FieldNeedsHumanAttention:
			values[i] = new(sql.NullBool)
		case conversation.FieldFollowupCount24h, conversation.FieldTotalNudges:
			values[i] = new(sql.NullInt64)
		case conversation.FieldID, conversation.FieldOrgID, conversation.FieldLeadID, conversation.FieldMode, conversation.FieldStage, conversation.FieldIntentLevel, conversation.FieldUserSentiment, conversation.FieldRollingSummary:
			values[i] = new(sql.NullString)
		case conversation.FieldHumanAttentionResolvedAt, conversation.FieldLastUserMessageAt, conversation.FieldLastBotMessageAt, conversation.FieldCreatedAt, conversation.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Conversation fields.
func (_m *Conversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case conversation.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case conversation.FieldOrgID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field org_id", values[i])
			} else if value.Valid {
				_m.OrgID = value.String
			}
		case conversation.FieldLeadID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field lead_id", values[i])
			} else if value.Valid {
				_m.LeadID = value.String
			}
		case conversation.FieldMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field mode", values[i])
			} else if value.Valid {
				_m.Mode = conversation.Mode(value.String)
			}
		case conversation.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = conversation.Stage(value.String)
			}
		case conversation.FieldIntentLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field intent_level", values[i])
			} else if value.Valid {
				_m.IntentLevel = conversation.IntentLevel(value.String)
			}
		case conversation.FieldUserSentiment:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_sentiment", values[i])
			} else if value.Valid {
				_m.UserSentiment = conversation.UserSentiment(value.String)
			}
		case conversation.FieldRollingSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rolling_summary", values[i])
			} else if value.Valid {
				_m.RollingSummary = value.String
			}
		case conversation.FieldNeedsHumanAttention:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_human_attention", values[i])
			} else if value.Valid {
				_m.NeedsHumanAttention = value.Bool
			}
		case conversation.FieldHumanAttentionResolvedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field human_attention_resolved_at", values[i])
			} else if value.Valid {
				_m.HumanAttentionResolvedAt = new(time.Time)
				*_m.HumanAttentionResolvedAt = value.Time
			}
		case conversation.FieldLastUserMessageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_user_message_at", values[i])
			} else if value.Valid {
				_m.LastUserMessageAt = new(time.Time)
				*_m.LastUserMessageAt = value.Time
			}
		case conversation.FieldLastBotMessageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_bot_message_at", values[i])
			} else if value.Valid {
				_m.LastBotMessageAt = new(time.Time)
				*_m.LastBotMessageAt = value.Time
			}
		case conversation.FieldFollowupCount24h:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field followup_count_24h", values[i])
			} else if value.Valid {
				_m.FollowupCount24h = int(value.Int64)
			}
		case conversation.FieldTotalNudges:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_nudges", values[i])
			} else if value.Valid {
				_m.TotalNudges = int(value.Int64)
			}
		case conversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case conversation.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Conversation.
// This includes values selected through modifiers, order, etc.
func (_m *Conversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryLead queries the "lead" edge of the Conversation entity.
func (_m *Conversation) QueryLead() *LeadQuery {
	return NewConversationClient(_m.config).QueryLead(_m)
}

// QueryMessages queries the "messages" edge of the Conversation entity.
func (_m *Conversation) QueryMessages() *MessageQuery {
	return NewConversationClient(_m.config).QueryMessages(_m)
}

// QueryScheduledActions queries the "scheduled_actions" edge of the Conversation entity.
func (_m *Conversation) QueryScheduledActions() *ScheduledActionQuery {
	return NewConversationClient(_m.config).QueryScheduledActions(_m)
}

// Update returns a builder for updating this Conversation.
// Note that you need to call Conversation.Unwrap() before calling this method if this Conversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Conversation) Update() *ConversationUpdateOne {
	return NewConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Conversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Conversation) Unwrap() *Conversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Conversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Conversation) String() string {
	var builder strings.Builder
	builder.WriteString("Conversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("org_id=")
	builder.WriteString(_m.OrgID)
	builder.WriteString(", ")
	builder.WriteString("lead_id=")
	builder.WriteString(_m.LeadID)
	builder.WriteString(", ")
	builder.WriteString("mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mode))
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(fmt.Sprintf("%v", _m.Stage))
	builder.WriteString(", ")
	builder.WriteString("intent_level=")
	builder.WriteString(fmt.Sprintf("%v", _m.IntentLevel))
	builder.WriteString(", ")
	builder.WriteString("user_sentiment=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserSentiment))
	builder.WriteString(", ")
	builder.WriteString("rolling_summary=")
	builder.WriteString(_m.RollingSummary)
	builder.WriteString(", ")
	builder.WriteString("needs_human_attention=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsHumanAttention))
	builder.WriteString(", ")
	if v := _m.HumanAttentionResolvedAt; v != nil {
		builder.WriteString("human_attention_resolved_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastUserMessageAt; v != nil {
		builder.WriteString("last_user_message_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.LastBotMessageAt; v != nil {
		builder.WriteString("last_bot_message_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("followup_count_24h=")
	builder.WriteString(fmt.Sprintf("%v", _m.FollowupCount24h))
	builder.WriteString(", ")
	builder.WriteString("total_nudges=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalNudges))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Conversations is a parsable slice of Conversation.
type Conversations []*Conversation
