// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"bot", "human"}, Default: "bot"},
		{Name: "stage", Type: field.TypeEnum, Enums: []string{"greeting", "qualification", "pricing", "cta", "followup", "closed", "lost", "ghosted"}, Default: "greeting"},
		{Name: "intent_level", Type: field.TypeEnum, Enums: []string{"unknown", "low", "medium", "high"}, Default: "unknown"},
		{Name: "user_sentiment", Type: field.TypeEnum, Enums: []string{"negative", "neutral", "positive"}, Default: "neutral"},
		{Name: "rolling_summary", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "needs_human_attention", Type: field.TypeBool, Default: false},
		{Name: "human_attention_resolved_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_user_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_bot_message_at", Type: field.TypeTime, Nullable: true},
		{Name: "followup_count_24h", Type: field.TypeInt, Default: 0},
		{Name: "total_nudges", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "lead_id", Type: field.TypeString},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversations_leads_conversations",
				Columns:    []*schema.Column{ConversationsColumns[15]},
				RefColumns: []*schema.Column{LeadsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_org_id",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[1]},
			},
			{
				Name:    "conversation_org_id_lead_id",
				Unique:  true,
				Columns: []*schema.Column{ConversationsColumns[1], ConversationsColumns[15]},
			},
			{
				Name:    "conversation_needs_human_attention",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[7]},
				Annotation: &entsql.IndexAnnotation{
					Where: "needs_human_attention",
				},
			},
		},
	}
	// IntegrationsColumns holds the columns for the "integrations" table.
	IntegrationsColumns = []*schema.Column{
		{Name: "integration_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "phone_number_id", Type: field.TypeString, Unique: true},
		{Name: "access_token", Type: field.TypeString, Nullable: true},
		{Name: "business_name", Type: field.TypeString},
		{Name: "business_description", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "flow_prompt", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "ctas", Type: field.TypeJSON, Nullable: true},
		{Name: "language_pref", Type: field.TypeString, Default: "auto"},
		{Name: "created_at", Type: field.TypeTime},
	}
	// IntegrationsTable holds the schema information for the "integrations" table.
	IntegrationsTable = &schema.Table{
		Name:       "integrations",
		Columns:    IntegrationsColumns,
		PrimaryKey: []*schema.Column{IntegrationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "integration_org_id",
				Unique:  false,
				Columns: []*schema.Column{IntegrationsColumns[1]},
			},
		},
	}
	// LeadsColumns holds the columns for the "leads" table.
	LeadsColumns = []*schema.Column{
		{Name: "lead_id", Type: field.TypeString, Unique: true},
		{Name: "org_id", Type: field.TypeString},
		{Name: "phone", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// LeadsTable holds the schema information for the "leads" table.
	LeadsTable = &schema.Table{
		Name:       "leads",
		Columns:    LeadsColumns,
		PrimaryKey: []*schema.Column{LeadsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lead_org_id_phone",
				Unique:  true,
				Columns: []*schema.Column{LeadsColumns[1], LeadsColumns[2]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "sender", Type: field.TypeEnum, Enums: []string{"lead", "bot", "human"}},
		{Name: "direction", Type: field.TypeEnum, Enums: []string{"inbound", "outbound"}},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "provider_msg_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[6], MessagesColumns[5]},
			},
			{
				Name:    "message_provider_msg_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[4]},
			},
		},
	}
	// ScheduledActionsColumns holds the columns for the "scheduled_actions" table.
	ScheduledActionsColumns = []*schema.Column{
		{Name: "action_id", Type: field.TypeString, Unique: true},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"followup"}, Default: "followup"},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "fired", "cancelled"}, Default: "pending"},
		{Name: "fire_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "context", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// ScheduledActionsTable holds the schema information for the "scheduled_actions" table.
	ScheduledActionsTable = &schema.Table{
		Name:       "scheduled_actions",
		Columns:    ScheduledActionsColumns,
		PrimaryKey: []*schema.Column{ScheduledActionsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scheduled_actions_conversations_scheduled_actions",
				Columns:    []*schema.Column{ScheduledActionsColumns[6]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scheduledaction_status_fire_at",
				Unique:  false,
				Columns: []*schema.Column{ScheduledActionsColumns[2], ScheduledActionsColumns[3]},
			},
			{
				Name:    "scheduledaction_conversation_id_status",
				Unique:  false,
				Columns: []*schema.Column{ScheduledActionsColumns[6], ScheduledActionsColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ConversationsTable,
		IntegrationsTable,
		LeadsTable,
		MessagesTable,
		ScheduledActionsTable,
	}
)

func init() {
	ConversationsTable.ForeignKeys[0].RefTable = LeadsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
	ScheduledActionsTable.ForeignKeys[0].RefTable = ConversationsTable
}
