// Code generated by ent, DO NOT EDIT.

package conversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the conversation type in the database.
	Label = "conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "conversation_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldLeadID holds the string denoting the lead_id field in the database.
	FieldLeadID = "lead_id"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldIntentLevel holds the string denoting the intent_level field in the database.
	FieldIntentLevel = "intent_level"
	// FieldUserSentiment holds the string denoting the user_sentiment field in the database.
	FieldUserSentiment = "user_sentiment"
	// FieldRollingSummary holds the string denoting the rolling_summary field in the database.
	FieldRollingSummary = "rolling_summary"
	// FieldNeedsHumanAttention holds the string denoting the needs_human_attention field in the database.
	FieldNeedsHumanAttention = "needs_human_attention"
	// FieldHumanAttentionResolvedAt holds the string denoting the human_attention_resolved_at field in the database.
	FieldHumanAttentionResolvedAt = "human_attention_resolved_at"
	// FieldLastUserMessageAt holds the string denoting the last_user_message_at field in the database.
	FieldLastUserMessageAt = "last_user_message_at"
	// FieldLastBotMessageAt holds the string denoting the last_bot_message_at field in the database.
	FieldLastBotMessageAt = "last_bot_message_at"
	// FieldFollowupCount24h holds the string denoting the followup_count_24h field in the database.
	FieldFollowupCount24h = "followup_count_24h"
	// FieldTotalNudges holds the string denoting the total_nudges field in the database.
	FieldTotalNudges = "total_nudges"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeLead holds the string denoting the lead edge name in mutations.
	EdgeLead = "lead"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeScheduledActions holds the string denoting the scheduled_actions edge name in mutations.
	EdgeScheduledActions = "scheduled_actions"
	// LeadFieldID holds the string denoting the ID field of the Lead.
	LeadFieldID = "lead_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// ScheduledActionFieldID holds the string denoting the ID field of the ScheduledAction.
	ScheduledActionFieldID = "action_id"
	// Table holds the table name of the conversation in the database.
	Table = "conversations"
	// LeadTable is the table that holds the lead relation/edge.
	LeadTable = "conversations"
	// LeadInverseTable is the table name for the Lead entity.
	// It exists in this package in order to avoid circular dependency with the "lead" package.
	LeadInverseTable = "leads"
	// LeadColumn is the table column denoting the lead relation/edge.
	LeadColumn = "lead_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
	// ScheduledActionsTable is the table that holds the scheduled_actions relation/edge.
	ScheduledActionsTable = "scheduled_actions"
	// ScheduledActionsInverseTable is the table name for the ScheduledAction entity.
	// It exists in this package in order to avoid circular dependency with the "scheduledaction" package.
	ScheduledActionsInverseTable = "scheduled_actions"
	// ScheduledActionsColumn is the table column denoting the scheduled_actions relation/edge.
	ScheduledActionsColumn = "conversation_id"
)

// Columns holds all SQL columns for conversation fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldLeadID,
	FieldMode,
	FieldStage,
	FieldIntentLevel,
	FieldUserSentiment,
	FieldRollingSummary,
	FieldNeedsHumanAttention,
	FieldHumanAttentionResolvedAt,
	FieldLastUserMessageAt,
	FieldLastBotMessageAt,
	FieldFollowupCount24h,
	FieldTotalNudges,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultRollingSummary holds the default value on creation for the "rolling_summary" field.
	DefaultRollingSummary string
	// DefaultNeedsHumanAttention holds the default value on creation for the "needs_human_attention" field.
	DefaultNeedsHumanAttention bool
	// DefaultFollowupCount24h holds the default value on creation for the "followup_count_24h" field.
	DefaultFollowupCount24h int
	// DefaultTotalNudges holds the default value on creation for the "total_nudges" field.
	DefaultTotalNudges int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeBot is the default value of the Mode enum.
const DefaultMode = ModeBot

// Mode values.
const (
	ModeBot   Mode = "bot"
	ModeHuman Mode = "human"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeBot, ModeHuman:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for mode field: %q", m)
	}
}

// Stage defines the type for the "stage" enum field.
type Stage string

// StageGreeting is the default value of the Stage enum.
const DefaultStage = StageGreeting

// Stage values.
const (
	StageGreeting      Stage = "greeting"
	StageQualification Stage = "qualification"
	StagePricing       Stage = "pricing"
	StageCta           Stage = "cta"
	StageFollowup      Stage = "followup"
	StageClosed        Stage = "closed"
	StageLost          Stage = "lost"
	StageGhosted       Stage = "ghosted"
)

func (s Stage) String() string {
	return string(s)
}

// StageValidator is a validator for the "stage" field enum values. It is called by the builders before save.
func StageValidator(s Stage) error {
	switch s {
	case StageGreeting, StageQualification, StagePricing, StageCta, StageFollowup, StageClosed, StageLost, StageGhosted:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for stage field: %q", s)
	}
}

// IntentLevel defines the type for the "intent_level" enum field.
type IntentLevel string

// IntentLevelUnknown is the default value of the IntentLevel enum.
const DefaultIntentLevel = IntentLevelUnknown

// IntentLevel values.
const (
	IntentLevelUnknown IntentLevel = "unknown"
	IntentLevelLow     IntentLevel = "low"
	IntentLevelMedium  IntentLevel = "medium"
	IntentLevelHigh    IntentLevel = "high"
)

func (il IntentLevel) String() string {
	return string(il)
}

// IntentLevelValidator is a validator for the "intent_level" field enum values. It is called by the builders before save.
func IntentLevelValidator(il IntentLevel) error {
	switch il {
	case IntentLevelUnknown, IntentLevelLow, IntentLevelMedium, IntentLevelHigh:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for intent_level field: %q", il)
	}
}

// UserSentiment defines the type for the "user_sentiment" enum field.
type UserSentiment string

// UserSentimentNeutral is the default value of the UserSentiment enum.
const DefaultUserSentiment = UserSentimentNeutral

// UserSentiment values.
const (
	UserSentimentNegative UserSentiment = "negative"
	UserSentimentNeutral  UserSentiment = "neutral"
	UserSentimentPositive UserSentiment = "positive"
)

func (us UserSentiment) String() string {
	return string(us)
}

// UserSentimentValidator is a validator for the "user_sentiment" field enum values. It is called by the builders before save.
func UserSentimentValidator(us UserSentiment) error {
	switch us {
	case UserSentimentNegative, UserSentimentNeutral, UserSentimentPositive:
		return nil
	default:
		return fmt.Errorf("conversation: invalid enum value for user_sentiment field: %q", us)
	}
}

// OrderOption defines the ordering options for the Conversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByLeadID orders the results by the lead_id field.
func ByLeadID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeadID, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByIntentLevel orders the results by the intent_level field.
func ByIntentLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIntentLevel, opts...).ToFunc()
}

// ByUserSentiment orders the results by the user_sentiment field.
func ByUserSentiment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserSentiment, opts...).ToFunc()
}

// ByRollingSummary orders the results by the rolling_summary field.
func ByRollingSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRollingSummary, opts...).ToFunc()
}

// ByNeedsHumanAttention orders the results by the needs_human_attention field.
func ByNeedsHumanAttention(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsHumanAttention, opts...).ToFunc()
}

// ByHumanAttentionResolvedAt orders the results by the human_attention_resolved_at field.
func ByHumanAttentionResolvedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHumanAttentionResolvedAt, opts...).ToFunc()
}

// ByLastUserMessageAt orders the results by the last_user_message_at field.
func ByLastUserMessageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUserMessageAt, opts...).ToFunc()
}

// ByLastBotMessageAt orders the results by the last_bot_message_at field.
func ByLastBotMessageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastBotMessageAt, opts...).ToFunc()
}

// ByFollowupCount24h orders the results by the followup_count_24h field.
func ByFollowupCount24h(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFollowupCount24h, opts...).ToFunc()
}

// ByTotalNudges orders the results by the total_nudges field.
func ByTotalNudges(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalNudges, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLeadField orders the results by lead field.
func ByLeadField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newLeadStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByScheduledActionsCount orders the results by scheduled_actions count.
func ByScheduledActionsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newScheduledActionsStep(), opts...)
	}
}

// ByScheduledActions orders the results by scheduled_actions terms.
func ByScheduledActions(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newScheduledActionsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newLeadStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(LeadInverseTable, LeadFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, LeadTable, LeadColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newScheduledActionsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ScheduledActionsInverseTable, ScheduledActionFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ScheduledActionsTable, ScheduledActionsColumn),
	)
}
