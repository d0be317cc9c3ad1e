package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Integration holds the schema definition for the Integration entity.
// One row binds a WhatsApp Cloud API phone number to an organization and
// carries the business profile the pipeline prompts are built from.
type Integration struct {
	ent.Schema
}

// Fields of the Integration.
func (Integration) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("integration_id").
			Unique().
			Immutable(),
		field.String("org_id").
			Comment("Owning organization"),
		field.String("phone_number_id").
			Unique().
			Comment("Provider phone number id, webhook routing key"),
		field.String("access_token").
			Optional().
			Sensitive().
			Comment("Per-number token; falls back to process-wide token when empty"),
		field.String("business_name"),
		field.Text("business_description").
			Optional(),
		field.Text("flow_prompt").
			Optional().
			Comment("Sales playbook text injected into Classify"),
		field.JSON("ctas", []map[string]interface{}{}).
			Optional().
			Comment("Available CTAs [{id, label, kind}]"),
		field.String("language_pref").
			Default("auto"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Integration.
func (Integration) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("org_id"),
	}
}
