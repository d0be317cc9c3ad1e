package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Conversation holds the schema definition for the Conversation entity.
// Central aggregate: one per (org, lead), owner of the per-lead state machine.
type Conversation struct {
	ent.Schema
}

// Fields of the Conversation.
func (Conversation) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("conversation_id").
			Unique().
			Immutable(),
		field.String("org_id"),
		field.String("lead_id").
			Immutable(),
		field.Enum("mode").
			Values("bot", "human").
			Default("bot").
			Comment("human mutes the bot entirely"),
		field.Enum("stage").
			Values("greeting", "qualification", "pricing", "cta", "followup", "closed", "lost", "ghosted").
			Default("greeting").
			Comment("Non-regressing except via operator action"),
		field.Enum("intent_level").
			Values("unknown", "low", "medium", "high").
			Default("unknown"),
		field.Enum("user_sentiment").
			Values("negative", "neutral", "positive").
			Default("neutral"),
		field.Text("rolling_summary").
			Default("").
			Comment("Compact memory, target <=500 chars"),
		field.Bool("needs_human_attention").
			Default(false),
		field.Time("human_attention_resolved_at").
			Optional().
			Nillable(),
		field.Time("last_user_message_at").
			Optional().
			Nillable().
			Comment("Monotone witness for the staleness gate"),
		field.Time("last_bot_message_at").
			Optional().
			Nillable(),
		field.Int("followup_count_24h").
			Default(0),
		field.Int("total_nudges").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Conversation.
func (Conversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("lead", Lead.Type).
			Ref("conversations").
			Field("lead_id").
			Unique().
			Required().
			Immutable(),
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("scheduled_actions", ScheduledAction.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Conversation.
func (Conversation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
		index.Fields("org_id", "lead_id").
			Unique(),
		index.Fields("needs_human_attention").
			Annotations(entsql.IndexWhere("needs_human_attention")),
	}
}
