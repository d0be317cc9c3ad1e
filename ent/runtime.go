// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/integration"
	"github.com/leadline-ai/leadline/ent/lead"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescRollingSummary is the schema descriptor for rolling_summary field.
	conversationDescRollingSummary := conversationFields[7].Descriptor()
	// conversation.DefaultRollingSummary holds the default value on creation for the rolling_summary field.
	conversation.DefaultRollingSummary = conversationDescRollingSummary.Default.(string)
	// conversationDescNeedsHumanAttention is the schema descriptor for needs_human_attention field.
	conversationDescNeedsHumanAttention := conversationFields[8].Descriptor()
	// conversation.DefaultNeedsHumanAttention holds the default value on creation for the needs_human_attention field.
	conversation.DefaultNeedsHumanAttention = conversationDescNeedsHumanAttention.Default.(bool)
	// conversationDescFollowupCount24h is the schema descriptor for followup_count_24h field.
	conversationDescFollowupCount24h := conversationFields[12].Descriptor()
	// conversation.DefaultFollowupCount24h holds the default value on creation for the followup_count_24h field.
	conversation.DefaultFollowupCount24h = conversationDescFollowupCount24h.Default.(int)
	// conversationDescTotalNudges is the schema descriptor for total_nudges field.
	conversationDescTotalNudges := conversationFields[13].Descriptor()
	// conversation.DefaultTotalNudges holds the default value on creation for the total_nudges field.
	conversation.DefaultTotalNudges = conversationDescTotalNudges.Default.(int)
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[14].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[15].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	// conversation.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	conversation.UpdateDefaultUpdatedAt = conversationDescUpdatedAt.UpdateDefault.(func() time.Time)
	integrationFields := schema.Integration{}.Fields()
	_ = integrationFields
	// integrationDescLanguagePref is the schema descriptor for language_pref field.
	integrationDescLanguagePref := integrationFields[8].Descriptor()
	// integration.DefaultLanguagePref holds the default value on creation for the language_pref field.
	integration.DefaultLanguagePref = integrationDescLanguagePref.Default.(string)
	// integrationDescCreatedAt is the schema descriptor for created_at field.
	integrationDescCreatedAt := integrationFields[9].Descriptor()
	// integration.DefaultCreatedAt holds the default value on creation for the created_at field.
	integration.DefaultCreatedAt = integrationDescCreatedAt.Default.(func() time.Time)
	leadFields := schema.Lead{}.Fields()
	_ = leadFields
	// leadDescCreatedAt is the schema descriptor for created_at field.
	leadDescCreatedAt := leadFields[4].Descriptor()
	// lead.DefaultCreatedAt holds the default value on creation for the created_at field.
	lead.DefaultCreatedAt = leadDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[6].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	scheduledactionFields := schema.ScheduledAction{}.Fields()
	_ = scheduledactionFields
	// scheduledactionDescCreatedAt is the schema descriptor for created_at field.
	scheduledactionDescCreatedAt := scheduledactionFields[5].Descriptor()
	// scheduledaction.DefaultCreatedAt holds the default value on creation for the created_at field.
	scheduledaction.DefaultCreatedAt = scheduledactionDescCreatedAt.Default.(func() time.Time)
}
