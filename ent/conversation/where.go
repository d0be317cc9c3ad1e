// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadline-ai/leadline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldOrgID, v))
}

// LeadID applies equality check predicate on the "lead_id" field. It's identical to LeadIDEQ.
func LeadID(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// RollingSummary applies equality check predicate on the "rolling_summary" field. It's identical to RollingSummaryEQ.
func RollingSummary(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRollingSummary, v))
}

// NeedsHumanAttention applies equality check predicate on the "needs_human_attention" field. It's identical to NeedsHumanAttentionEQ.
func NeedsHumanAttention(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNeedsHumanAttention, v))
}

// HumanAttentionResolvedAt applies equality check predicate on the "human_attention_resolved_at" field. It's identical to HumanAttentionResolvedAtEQ.
func HumanAttentionResolvedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldHumanAttentionResolvedAt, v))
}

// LastUserMessageAt applies equality check predicate on the "last_user_message_at" field. It's identical to LastUserMessageAtEQ.
func LastUserMessageAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastUserMessageAt, v))
}

// LastBotMessageAt applies equality check predicate on the "last_bot_message_at" field. It's identical to LastBotMessageAtEQ.
func LastBotMessageAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastBotMessageAt, v))
}

// FollowupCount24h applies equality check predicate on the "followup_count_24h" field. It's identical to FollowupCount24hEQ.
func FollowupCount24h(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFollowupCount24h, v))
}

// TotalNudges applies equality check predicate on the "total_nudges" field. It's identical to TotalNudgesEQ.
func TotalNudges(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalNudges, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldOrgID, v))
}

// LeadIDEQ applies the EQ predicate on the "lead_id" field.
func LeadIDEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLeadID, v))
}

// LeadIDNEQ applies the NEQ predicate on the "lead_id" field.
func LeadIDNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLeadID, v))
}

// LeadIDIn applies the In predicate on the "lead_id" field.
func LeadIDIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLeadID, vs...))
}

// LeadIDNotIn applies the NotIn predicate on the "lead_id" field.
func LeadIDNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLeadID, vs...))
}

// LeadIDGT applies the GT predicate on the "lead_id" field.
func LeadIDGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLeadID, v))
}

// LeadIDGTE applies the GTE predicate on the "lead_id" field.
func LeadIDGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLeadID, v))
}

// LeadIDLT applies the LT predicate on the "lead_id" field.
func LeadIDLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLeadID, v))
}

// LeadIDLTE applies the LTE predicate on the "lead_id" field.
func LeadIDLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLeadID, v))
}

// LeadIDContains applies the Contains predicate on the "lead_id" field.
func LeadIDContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldLeadID, v))
}

// LeadIDHasPrefix applies the HasPrefix predicate on the "lead_id" field.
func LeadIDHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldLeadID, v))
}

// LeadIDHasSuffix applies the HasSuffix predicate on the "lead_id" field.
func LeadIDHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldLeadID, v))
}

// LeadIDEqualFold applies the EqualFold predicate on the "lead_id" field.
func LeadIDEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldLeadID, v))
}

// LeadIDContainsFold applies the ContainsFold predicate on the "lead_id" field.
func LeadIDContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldLeadID, v))
}

// ModeEQ applies the EQ predicate on the "mode" field.
func ModeEQ(v Mode) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldMode, v))
}

// ModeNEQ applies the NEQ predicate on the "mode" field.
func ModeNEQ(v Mode) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldMode, v))
}

// ModeIn applies the In predicate on the "mode" field.
func ModeIn(vs ...Mode) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldMode, vs...))
}

// ModeNotIn applies the NotIn predicate on the "mode" field.
func ModeNotIn(vs ...Mode) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldMode, vs...))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v Stage) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v Stage) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...Stage) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...Stage) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldStage, vs...))
}

// IntentLevelEQ applies the EQ predicate on the "intent_level" field.
func IntentLevelEQ(v IntentLevel) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldIntentLevel, v))
}

// IntentLevelNEQ applies the NEQ predicate on the "intent_level" field.
func IntentLevelNEQ(v IntentLevel) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldIntentLevel, v))
}

// IntentLevelIn applies the In predicate on the "intent_level" field.
func IntentLevelIn(vs ...IntentLevel) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldIntentLevel, vs...))
}

// IntentLevelNotIn applies the NotIn predicate on the "intent_level" field.
func IntentLevelNotIn(vs ...IntentLevel) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldIntentLevel, vs...))
}

// UserSentimentEQ applies the EQ predicate on the "user_sentiment" field.
func UserSentimentEQ(v UserSentiment) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUserSentiment, v))
}

// UserSentimentNEQ applies the NEQ predicate on the "user_sentiment" field.
func UserSentimentNEQ(v UserSentiment) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUserSentiment, v))
}

// UserSentimentIn applies the In predicate on the "user_sentiment" field.
func UserSentimentIn(vs ...UserSentiment) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUserSentiment, vs...))
}

// UserSentimentNotIn applies the NotIn predicate on the "user_sentiment" field.
func UserSentimentNotIn(vs ...UserSentiment) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUserSentiment, vs...))
}

// RollingSummaryEQ applies the EQ predicate on the "rolling_summary" field.
func RollingSummaryEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldRollingSummary, v))
}

// RollingSummaryNEQ applies the NEQ predicate on the "rolling_summary" field.
func RollingSummaryNEQ(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldRollingSummary, v))
}

// RollingSummaryIn applies the In predicate on the "rolling_summary" field.
func RollingSummaryIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldRollingSummary, vs...))
}

// RollingSummaryNotIn applies the NotIn predicate on the "rolling_summary" field.
func RollingSummaryNotIn(vs ...string) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldRollingSummary, vs...))
}

// RollingSummaryGT applies the GT predicate on the "rolling_summary" field.
func RollingSummaryGT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldRollingSummary, v))
}

// RollingSummaryGTE applies the GTE predicate on the "rolling_summary" field.
func RollingSummaryGTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldRollingSummary, v))
}

// RollingSummaryLT applies the LT predicate on the "rolling_summary" field.
func RollingSummaryLT(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldRollingSummary, v))
}

// RollingSummaryLTE applies the LTE predicate on the "rolling_summary" field.
func RollingSummaryLTE(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldRollingSummary, v))
}

// RollingSummaryContains applies the Contains predicate on the "rolling_summary" field.
func RollingSummaryContains(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContains(FieldRollingSummary, v))
}

// RollingSummaryHasPrefix applies the HasPrefix predicate on the "rolling_summary" field.
func RollingSummaryHasPrefix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasPrefix(FieldRollingSummary, v))
}

// RollingSummaryHasSuffix applies the HasSuffix predicate on the "rolling_summary" field.
func RollingSummaryHasSuffix(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldHasSuffix(FieldRollingSummary, v))
}

// RollingSummaryEqualFold applies the EqualFold predicate on the "rolling_summary" field.
func RollingSummaryEqualFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldEqualFold(FieldRollingSummary, v))
}

// RollingSummaryContainsFold applies the ContainsFold predicate on the "rolling_summary" field.
func RollingSummaryContainsFold(v string) predicate.Conversation {
	return predicate.Conversation(sql.FieldContainsFold(FieldRollingSummary, v))
}

// NeedsHumanAttentionEQ applies the EQ predicate on the "needs_human_attention" field.
func NeedsHumanAttentionEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldNeedsHumanAttention, v))
}

// NeedsHumanAttentionNEQ applies the NEQ predicate on the "needs_human_attention" field.
func NeedsHumanAttentionNEQ(v bool) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldNeedsHumanAttention, v))
}

// HumanAttentionResolvedAtEQ applies the EQ predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtNEQ applies the NEQ predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtIn applies the In predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldHumanAttentionResolvedAt, vs...))
}

// HumanAttentionResolvedAtNotIn applies the NotIn predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldHumanAttentionResolvedAt, vs...))
}

// HumanAttentionResolvedAtGT applies the GT predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtGTE applies the GTE predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtLT applies the LT predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtLTE applies the LTE predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldHumanAttentionResolvedAt, v))
}

// HumanAttentionResolvedAtIsNil applies the IsNil predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldHumanAttentionResolvedAt))
}

// HumanAttentionResolvedAtNotNil applies the NotNil predicate on the "human_attention_resolved_at" field.
func HumanAttentionResolvedAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldHumanAttentionResolvedAt))
}

// LastUserMessageAtEQ applies the EQ predicate on the "last_user_message_at" field.
func LastUserMessageAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastUserMessageAt, v))
}

// LastUserMessageAtNEQ applies the NEQ predicate on the "last_user_message_at" field.
func LastUserMessageAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastUserMessageAt, v))
}

// LastUserMessageAtIn applies the In predicate on the "last_user_message_at" field.
func LastUserMessageAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastUserMessageAt, vs...))
}

// LastUserMessageAtNotIn applies the NotIn predicate on the "last_user_message_at" field.
func LastUserMessageAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastUserMessageAt, vs...))
}

// LastUserMessageAtGT applies the GT predicate on the "last_user_message_at" field.
func LastUserMessageAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastUserMessageAt, v))
}

// LastUserMessageAtGTE applies the GTE predicate on the "last_user_message_at" field.
func LastUserMessageAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastUserMessageAt, v))
}

// LastUserMessageAtLT applies the LT predicate on the "last_user_message_at" field.
func LastUserMessageAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastUserMessageAt, v))
}

// LastUserMessageAtLTE applies the LTE predicate on the "last_user_message_at" field.
func LastUserMessageAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastUserMessageAt, v))
}

// LastUserMessageAtIsNil applies the IsNil predicate on the "last_user_message_at" field.
func LastUserMessageAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastUserMessageAt))
}

// LastUserMessageAtNotNil applies the NotNil predicate on the "last_user_message_at" field.
func LastUserMessageAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastUserMessageAt))
}

// LastBotMessageAtEQ applies the EQ predicate on the "last_bot_message_at" field.
func LastBotMessageAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldLastBotMessageAt, v))
}

// LastBotMessageAtNEQ applies the NEQ predicate on the "last_bot_message_at" field.
func LastBotMessageAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldLastBotMessageAt, v))
}

// LastBotMessageAtIn applies the In predicate on the "last_bot_message_at" field.
func LastBotMessageAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldLastBotMessageAt, vs...))
}

// LastBotMessageAtNotIn applies the NotIn predicate on the "last_bot_message_at" field.
func LastBotMessageAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldLastBotMessageAt, vs...))
}

// LastBotMessageAtGT applies the GT predicate on the "last_bot_message_at" field.
func LastBotMessageAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldLastBotMessageAt, v))
}

// LastBotMessageAtGTE applies the GTE predicate on the "last_bot_message_at" field.
func LastBotMessageAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldLastBotMessageAt, v))
}

// LastBotMessageAtLT applies the LT predicate on the "last_bot_message_at" field.
func LastBotMessageAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldLastBotMessageAt, v))
}

// LastBotMessageAtLTE applies the LTE predicate on the "last_bot_message_at" field.
func LastBotMessageAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldLastBotMessageAt, v))
}

// LastBotMessageAtIsNil applies the IsNil predicate on the "last_bot_message_at" field.
func LastBotMessageAtIsNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldIsNull(FieldLastBotMessageAt))
}

// LastBotMessageAtNotNil applies the NotNil predicate on the "last_bot_message_at" field.
func LastBotMessageAtNotNil() predicate.Conversation {
	return predicate.Conversation(sql.FieldNotNull(FieldLastBotMessageAt))
}

// FollowupCount24hEQ applies the EQ predicate on the "followup_count_24h" field.
func FollowupCount24hEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldFollowupCount24h, v))
}

// FollowupCount24hNEQ applies the NEQ predicate on the "followup_count_24h" field.
func FollowupCount24hNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldFollowupCount24h, v))
}

// FollowupCount24hIn applies the In predicate on the "followup_count_24h" field.
func FollowupCount24hIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldFollowupCount24h, vs...))
}

// FollowupCount24hNotIn applies the NotIn predicate on the "followup_count_24h" field.
func FollowupCount24hNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldFollowupCount24h, vs...))
}

// FollowupCount24hGT applies the GT predicate on the "followup_count_24h" field.
func FollowupCount24hGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldFollowupCount24h, v))
}

// FollowupCount24hGTE applies the GTE predicate on the "followup_count_24h" field.
func FollowupCount24hGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldFollowupCount24h, v))
}

// FollowupCount24hLT applies the LT predicate on the "followup_count_24h" field.
func FollowupCount24hLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldFollowupCount24h, v))
}

// FollowupCount24hLTE applies the LTE predicate on the "followup_count_24h" field.
func FollowupCount24hLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldFollowupCount24h, v))
}

// TotalNudgesEQ applies the EQ predicate on the "total_nudges" field.
func TotalNudgesEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldTotalNudges, v))
}

// TotalNudgesNEQ applies the NEQ predicate on the "total_nudges" field.
func TotalNudgesNEQ(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldTotalNudges, v))
}

// TotalNudgesIn applies the In predicate on the "total_nudges" field.
func TotalNudgesIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldTotalNudges, vs...))
}

// TotalNudgesNotIn applies the NotIn predicate on the "total_nudges" field.
func TotalNudgesNotIn(vs ...int) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldTotalNudges, vs...))
}

// TotalNudgesGT applies the GT predicate on the "total_nudges" field.
func TotalNudgesGT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldTotalNudges, v))
}

// TotalNudgesGTE applies the GTE predicate on the "total_nudges" field.
func TotalNudgesGTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldTotalNudges, v))
}

// TotalNudgesLT applies the LT predicate on the "total_nudges" field.
func TotalNudgesLT(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldTotalNudges, v))
}

// TotalNudgesLTE applies the LTE predicate on the "total_nudges" field.
func TotalNudgesLTE(v int) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldTotalNudges, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Conversation {
	return predicate.Conversation(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasLead applies the HasEdge predicate on the "lead" edge.
func HasLead() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasLeadWith applies the HasEdge predicate on the "lead" edge with a given conditions (other predicates).
func HasLeadWith(preds ...predicate.Lead) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newLeadStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasScheduledActions applies the HasEdge predicate on the "scheduled_actions" edge.
func HasScheduledActions() predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ScheduledActionsTable, ScheduledActionsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasScheduledActionsWith applies the HasEdge predicate on the "scheduled_actions" edge with a given conditions (other predicates).
func HasScheduledActionsWith(preds ...predicate.ScheduledAction) predicate.Conversation {
	return predicate.Conversation(func(s *sql.Selector) {
		step := newScheduledActionsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Conversation) predicate.Conversation {
	return predicate.Conversation(sql.NotPredicates(p))
}
