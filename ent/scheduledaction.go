// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

// ScheduledAction is the model entity for the ScheduledAction schema.
type ScheduledAction struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ConversationID holds the value of the "conversation_id" field.
	ConversationID string `json:"conversation_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind scheduledaction.Kind `json:"kind,omitempty"`
	// Status holds the value of the "status" field.
	Status scheduledaction.Status `json:"status,omitempty"`
	// FireAt holds the value of the "fire_at" field.
	FireAt time.Time `json:"fire_at,omitempty"`
	// Compared against last_user_message_at by the staleness gate
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Opaque payload: ladder rung, offset, human-readable reason
	Context map[string]interface{} `json:"context,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ScheduledActionQuery when eager-loading is set.
	Edges        ScheduledActionEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ScheduledActionEdges holds the relations/edges for other nodes in the graph.
type ScheduledActionEdges struct {
	// Conversation holds the value of the conversation edge.
	Conversation *Conversation `json:"conversation,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationOrErr returns the Conversation value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ScheduledActionEdges) ConversationOrErr() (*Conversation, error) {
	if e.Conversation != nil {
		return e.Conversation, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: conversation.Label}
	}
	return nil, &NotLoadedError{edge: "conversation"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ScheduledAction) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case scheduledaction.FieldContext:
			values[i] = new([]byte)
		case scheduledaction.FieldID, scheduledaction.FieldConversationID, scheduledaction.FieldKind, scheduledaction.FieldStatus:
			values[i] = new(sql.NullString)
		case scheduledaction.FieldFireAt, scheduledaction.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ScheduledAction fields.
func (_m *ScheduledAction) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case scheduledaction.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case scheduledaction.FieldConversationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conversation_id", values[i])
			} else if value.Valid {
				_m.ConversationID = value.String
			}
		case scheduledaction.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = scheduledaction.Kind(value.String)
			}
		case scheduledaction.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = scheduledaction.Status(value.String)
			}
		case scheduledaction.FieldFireAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fire_at", values[i])
			} else if value.Valid {
				_m.FireAt = value.Time
			}
		case scheduledaction.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case scheduledaction.FieldContext:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field context", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Context); err != nil {
					return fmt.Errorf("unmarshal field context: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ScheduledAction.
// This includes values selected through modifiers, order, etc.
func (_m *ScheduledAction) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversation queries the "conversation" edge of the ScheduledAction entity.
func (_m *ScheduledAction) QueryConversation() *ConversationQuery {
	return NewScheduledActionClient(_m.config).QueryConversation(_m)
}

// Update returns a builder for updating this ScheduledAction.
// Note that you need to call ScheduledAction.Unwrap() before calling this method if this ScheduledAction
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ScheduledAction) Update() *ScheduledActionUpdateOne {
	return NewScheduledActionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ScheduledAction entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ScheduledAction) Unwrap() *ScheduledAction {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ScheduledAction is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ScheduledAction) String() string {
	var builder strings.Builder
	builder.WriteString("ScheduledAction(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("conversation_id=")
	builder.WriteString(_m.ConversationID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("fire_at=")
	builder.WriteString(_m.FireAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("context=")
	builder.WriteString(fmt.Sprintf("%v", _m.Context))
	builder.WriteByte(')')
	return builder.String()
}

// ScheduledActions is a parsable slice of ScheduledAction.
type ScheduledActions []*ScheduledAction
