package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ScheduledAction holds the schema definition for the ScheduledAction entity.
// Durable follow-up timer. PENDING rows for one conversation form the ladder;
// the claim worker flips PENDING to FIRED atomically so an action fires at
// most once across replicas.
type ScheduledAction struct {
	ent.Schema
}

// Fields of the ScheduledAction.
func (ScheduledAction) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("action_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("kind").
			Values("followup").
			Default("followup"),
		field.Enum("status").
			Values("pending", "fired", "cancelled").
			Default("pending"),
		field.Time("fire_at"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Compared against last_user_message_at by the staleness gate"),
		field.JSON("context", map[string]interface{}{}).
			Optional().
			Comment("Opaque payload: ladder rung, offset, human-readable reason"),
	}
}

// Edges of the ScheduledAction.
func (ScheduledAction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("scheduled_actions").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ScheduledAction.
func (ScheduledAction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "fire_at"),
		index.Fields("conversation_id", "status"),
	}
}
