package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message holds the schema definition for the Message entity.
// Append-only transcript row; created on inbound receipt and outbound send.
type Message struct {
	ent.Schema
}

// Fields of the Message.
func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("message_id").
			Unique().
			Immutable(),
		field.String("conversation_id").
			Immutable(),
		field.Enum("sender").
			Values("lead", "bot", "human"),
		field.Enum("direction").
			Values("inbound", "outbound"),
		field.Text("text"),
		field.String("provider_msg_id").
			Optional().
			Nillable().
			Comment("Provider message id; inbound dedup key, outbound receipt"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Provider timestamp for inbound, send time for outbound"),
	}
}

// Edges of the Message.
func (Message) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", Conversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Message.
func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
		index.Fields("provider_msg_id"),
	}
}
