// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/integration"
	"github.com/leadline-ai/leadline/ent/lead"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/predicate"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeConversation    = "Conversation"
	TypeIntegration     = "Integration"
	TypeLead            = "Lead"
	TypeMessage         = "Message"
	TypeScheduledAction = "ScheduledAction"
)

// ConversationMutation represents an operation that mutates the Conversation nodes in the graph.
type ConversationMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	org_id                      *string
	mode                        *conversation.Mode
	stage                       *conversation.Stage
	intent_level                *conversation.IntentLevel
	user_sentiment              *conversation.UserSentiment
	rolling_summary             *string
	needs_human_attention       *bool
	human_attention_resolved_at *time.Time
	last_user_message_at        *time.Time
	last_bot_message_at         *time.Time
	followup_count_24h          *int
	addfollowup_count_24h       *int
	total_nudges                *int
	addtotal_nudges             *int
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	lead                        *string
	clearedlead                 bool
	messages                    map[string]struct{}
	removedmessages             map[string]struct{}
	clearedmessages             bool
	scheduled_actions           map[string]struct{}
	removedscheduled_actions    map[string]struct{}
	clearedscheduled_actions    bool
	done                        bool
	oldValue                    func(context.Context) (*Conversation, error)
	predicates                  []predicate.Conversation
}

var _ ent.Mutation = (*ConversationMutation)(nil)

// conversationOption allows management of the mutation configuration using functional options.
type conversationOption func(*ConversationMutation)

// newConversationMutation creates new mutation for the Conversation entity.
func newConversationMutation(c config, op Op, opts ...conversationOption) *ConversationMutation {
	m := &ConversationMutation{
		config:        c,
		op:            op,
		typ:           TypeConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationID sets the ID field of the mutation.
func withConversationID(id string) conversationOption {
	return func(m *ConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *Conversation
		)
		m.oldValue = func(ctx context.Context) (*Conversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Conversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversation sets the old Conversation of the mutation.
func withConversation(node *Conversation) conversationOption {
	return func(m *ConversationMutation) {
		m.oldValue = func(context.Context) (*Conversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Conversation entities.
func (m *ConversationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Conversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *ConversationMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *ConversationMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *ConversationMutation) ResetOrgID() {
	m.org_id = nil
}

// SetLeadID sets the "lead_id" field.
func (m *ConversationMutation) SetLeadID(s string) {
	m.lead = &s
}

// LeadID returns the value of the "lead_id" field in the mutation.
func (m *ConversationMutation) LeadID() (r string, exists bool) {
	v := m.lead
	if v == nil {
		return
	}
	return *v, true
}

// OldLeadID returns the old "lead_id" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLeadID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeadID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeadID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeadID: %w", err)
	}
	return oldValue.LeadID, nil
}

// ResetLeadID resets all changes to the "lead_id" field.
func (m *ConversationMutation) ResetLeadID() {
	m.lead = nil
}

// SetMode sets the "mode" field.
func (m *ConversationMutation) SetMode(c conversation.Mode) {
	m.mode = &c
}

// Mode returns the value of the "mode" field in the mutation.
func (m *ConversationMutation) Mode() (r conversation.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldMode(ctx context.Context) (v conversation.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *ConversationMutation) ResetMode() {
	m.mode = nil
}

// SetStage sets the "stage" field.
func (m *ConversationMutation) SetStage(c conversation.Stage) {
	m.stage = &c
}

// Stage returns the value of the "stage" field in the mutation.
func (m *ConversationMutation) Stage() (r conversation.Stage, exists bool) {
	v := m.stage
	if v == nil {
		return
	}
	return *v, true
}

// OldStage returns the old "stage" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldStage(ctx context.Context) (v conversation.Stage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage: %w", err)
	}
	return oldValue.Stage, nil
}

// ResetStage resets all changes to the "stage" field.
func (m *ConversationMutation) ResetStage() {
	m.stage = nil
}

// SetIntentLevel sets the "intent_level" field.
func (m *ConversationMutation) SetIntentLevel(cl conversation.IntentLevel) {
	m.intent_level = &cl
}

// IntentLevel returns the value of the "intent_level" field in the mutation.
func (m *ConversationMutation) IntentLevel() (r conversation.IntentLevel, exists bool) {
	v := m.intent_level
	if v == nil {
		return
	}
	return *v, true
}

// OldIntentLevel returns the old "intent_level" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldIntentLevel(ctx context.Context) (v conversation.IntentLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntentLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntentLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntentLevel: %w", err)
	}
	return oldValue.IntentLevel, nil
}

// ResetIntentLevel resets all changes to the "intent_level" field.
func (m *ConversationMutation) ResetIntentLevel() {
	m.intent_level = nil
}

// SetUserSentiment sets the "user_sentiment" field.
func (m *ConversationMutation) SetUserSentiment(cs conversation.UserSentiment) {
	m.user_sentiment = &cs
}

// UserSentiment returns the value of the "user_sentiment" field in the mutation.
func (m *ConversationMutation) UserSentiment() (r conversation.UserSentiment, exists bool) {
	v := m.user_sentiment
	if v == nil {
		return
	}
	return *v, true
}

// OldUserSentiment returns the old "user_sentiment" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUserSentiment(ctx context.Context) (v conversation.UserSentiment, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserSentiment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserSentiment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserSentiment: %w", err)
	}
	return oldValue.UserSentiment, nil
}

// ResetUserSentiment resets all changes to the "user_sentiment" field.
func (m *ConversationMutation) ResetUserSentiment() {
	m.user_sentiment = nil
}

// SetRollingSummary sets the "rolling_summary" field.
func (m *ConversationMutation) SetRollingSummary(s string) {
	m.rolling_summary = &s
}

// RollingSummary returns the value of the "rolling_summary" field in the mutation.
func (m *ConversationMutation) RollingSummary() (r string, exists bool) {
	v := m.rolling_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldRollingSummary returns the old "rolling_summary" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldRollingSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRollingSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRollingSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRollingSummary: %w", err)
	}
	return oldValue.RollingSummary, nil
}

// ResetRollingSummary resets all changes to the "rolling_summary" field.
func (m *ConversationMutation) ResetRollingSummary() {
	m.rolling_summary = nil
}

// SetNeedsHumanAttention sets the "needs_human_attention" field.
func (m *ConversationMutation) SetNeedsHumanAttention(b bool) {
	m.needs_human_attention = &b
}

// NeedsHumanAttention returns the value of the "needs_human_attention" field in the mutation.
func (m *ConversationMutation) NeedsHumanAttention() (r bool, exists bool) {
	v := m.needs_human_attention
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsHumanAttention returns the old "needs_human_attention" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldNeedsHumanAttention(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsHumanAttention is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsHumanAttention requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsHumanAttention: %w", err)
	}
	return oldValue.NeedsHumanAttention, nil
}

// ResetNeedsHumanAttention resets all changes to the "needs_human_attention" field.
func (m *ConversationMutation) ResetNeedsHumanAttention() {
	m.needs_human_attention = nil
}

// SetHumanAttentionResolvedAt sets the "human_attention_resolved_at" field.
func (m *ConversationMutation) SetHumanAttentionResolvedAt(t time.Time) {
	m.human_attention_resolved_at = &t
}

// HumanAttentionResolvedAt returns the value of the "human_attention_resolved_at" field in the mutation.
func (m *ConversationMutation) HumanAttentionResolvedAt() (r time.Time, exists bool) {
	v := m.human_attention_resolved_at
	if v == nil {
		return
	}
	return *v, true
}

// OldHumanAttentionResolvedAt returns the old "human_attention_resolved_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldHumanAttentionResolvedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumanAttentionResolvedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumanAttentionResolvedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumanAttentionResolvedAt: %w", err)
	}
	return oldValue.HumanAttentionResolvedAt, nil
}

// ClearHumanAttentionResolvedAt clears the value of the "human_attention_resolved_at" field.
func (m *ConversationMutation) ClearHumanAttentionResolvedAt() {
	m.human_attention_resolved_at = nil
	m.clearedFields[conversation.FieldHumanAttentionResolvedAt] = struct{}{}
}

// HumanAttentionResolvedAtCleared returns if the "human_attention_resolved_at" field was cleared in this mutation.
func (m *ConversationMutation) HumanAttentionResolvedAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldHumanAttentionResolvedAt]
	return ok
}

// ResetHumanAttentionResolvedAt resets all changes to the "human_attention_resolved_at" field.
func (m *ConversationMutation) ResetHumanAttentionResolvedAt() {
	m.human_attention_resolved_at = nil
	delete(m.clearedFields, conversation.FieldHumanAttentionResolvedAt)
}

// SetLastUserMessageAt sets the "last_user_message_at" field.
func (m *ConversationMutation) SetLastUserMessageAt(t time.Time) {
	m.last_user_message_at = &t
}

// LastUserMessageAt returns the value of the "last_user_message_at" field in the mutation.
func (m *ConversationMutation) LastUserMessageAt() (r time.Time, exists bool) {
	v := m.last_user_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUserMessageAt returns the old "last_user_message_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastUserMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUserMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUserMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUserMessageAt: %w", err)
	}
	return oldValue.LastUserMessageAt, nil
}

// ClearLastUserMessageAt clears the value of the "last_user_message_at" field.
func (m *ConversationMutation) ClearLastUserMessageAt() {
	m.last_user_message_at = nil
	m.clearedFields[conversation.FieldLastUserMessageAt] = struct{}{}
}

// LastUserMessageAtCleared returns if the "last_user_message_at" field was cleared in this mutation.
func (m *ConversationMutation) LastUserMessageAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastUserMessageAt]
	return ok
}

// ResetLastUserMessageAt resets all changes to the "last_user_message_at" field.
func (m *ConversationMutation) ResetLastUserMessageAt() {
	m.last_user_message_at = nil
	delete(m.clearedFields, conversation.FieldLastUserMessageAt)
}

// SetLastBotMessageAt sets the "last_bot_message_at" field.
func (m *ConversationMutation) SetLastBotMessageAt(t time.Time) {
	m.last_bot_message_at = &t
}

// LastBotMessageAt returns the value of the "last_bot_message_at" field in the mutation.
func (m *ConversationMutation) LastBotMessageAt() (r time.Time, exists bool) {
	v := m.last_bot_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastBotMessageAt returns the old "last_bot_message_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldLastBotMessageAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastBotMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastBotMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastBotMessageAt: %w", err)
	}
	return oldValue.LastBotMessageAt, nil
}

// ClearLastBotMessageAt clears the value of the "last_bot_message_at" field.
func (m *ConversationMutation) ClearLastBotMessageAt() {
	m.last_bot_message_at = nil
	m.clearedFields[conversation.FieldLastBotMessageAt] = struct{}{}
}

// LastBotMessageAtCleared returns if the "last_bot_message_at" field was cleared in this mutation.
func (m *ConversationMutation) LastBotMessageAtCleared() bool {
	_, ok := m.clearedFields[conversation.FieldLastBotMessageAt]
	return ok
}

// ResetLastBotMessageAt resets all changes to the "last_bot_message_at" field.
func (m *ConversationMutation) ResetLastBotMessageAt() {
	m.last_bot_message_at = nil
	delete(m.clearedFields, conversation.FieldLastBotMessageAt)
}

// SetFollowupCount24h sets the "followup_count_24h" field.
func (m *ConversationMutation) SetFollowupCount24h(i int) {
	m.followup_count_24h = &i
	m.addfollowup_count_24h = nil
}

// FollowupCount24h returns the value of the "followup_count_24h" field in the mutation.
func (m *ConversationMutation) FollowupCount24h() (r int, exists bool) {
	v := m.followup_count_24h
	if v == nil {
		return
	}
	return *v, true
}

// OldFollowupCount24h returns the old "followup_count_24h" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldFollowupCount24h(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFollowupCount24h is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFollowupCount24h requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFollowupCount24h: %w", err)
	}
	return oldValue.FollowupCount24h, nil
}

// AddFollowupCount24h adds i to the "followup_count_24h" field.
func (m *ConversationMutation) AddFollowupCount24h(i int) {
	if m.addfollowup_count_24h != nil {
		*m.addfollowup_count_24h += i
	} else {
		m.addfollowup_count_24h = &i
	}
}

// AddedFollowupCount24h returns the value that was added to the "followup_count_24h" field in this mutation.
func (m *ConversationMutation) AddedFollowupCount24h() (r int, exists bool) {
	v := m.addfollowup_count_24h
	if v == nil {
		return
	}
	return *v, true
}

// ResetFollowupCount24h resets all changes to the "followup_count_24h" field.
func (m *ConversationMutation) ResetFollowupCount24h() {
	m.followup_count_24h = nil
	m.addfollowup_count_24h = nil
}

// SetTotalNudges sets the "total_nudges" field.
func (m *ConversationMutation) SetTotalNudges(i int) {
	m.total_nudges = &i
	m.addtotal_nudges = nil
}

// TotalNudges returns the value of the "total_nudges" field in the mutation.
func (m *ConversationMutation) TotalNudges() (r int, exists bool) {
	v := m.total_nudges
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalNudges returns the old "total_nudges" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldTotalNudges(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalNudges is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalNudges requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalNudges: %w", err)
	}
	return oldValue.TotalNudges, nil
}

// AddTotalNudges adds i to the "total_nudges" field.
func (m *ConversationMutation) AddTotalNudges(i int) {
	if m.addtotal_nudges != nil {
		*m.addtotal_nudges += i
	} else {
		m.addtotal_nudges = &i
	}
}

// AddedTotalNudges returns the value that was added to the "total_nudges" field in this mutation.
func (m *ConversationMutation) AddedTotalNudges() (r int, exists bool) {
	v := m.addtotal_nudges
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalNudges resets all changes to the "total_nudges" field.
func (m *ConversationMutation) ResetTotalNudges() {
	m.total_nudges = nil
	m.addtotal_nudges = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ConversationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ConversationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Conversation entity.
// If the Conversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ConversationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLead clears the "lead" edge to the Lead entity.
func (m *ConversationMutation) ClearLead() {
	m.clearedlead = true
	m.clearedFields[conversation.FieldLeadID] = struct{}{}
}

// LeadCleared reports if the "lead" edge to the Lead entity was cleared.
func (m *ConversationMutation) LeadCleared() bool {
	return m.clearedlead
}

// LeadIDs returns the "lead" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LeadID instead. It exists only for internal usage by the builders.
func (m *ConversationMutation) LeadIDs() (ids []string) {
	if id := m.lead; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLead resets all changes to the "lead" edge.
func (m *ConversationMutation) ResetLead() {
	m.lead = nil
	m.clearedlead = false
}

// AddMessageIDs adds the "messages" edge to the Message entity by ids.
func (m *ConversationMutation) AddMessageIDs(ids ...string) {
	if m.messages == nil {
		m.messages = make(map[string]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the Message entity.
func (m *ConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the Message entity was cleared.
func (m *ConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the Message entity by IDs.
func (m *ConversationMutation) RemoveMessageIDs(ids ...string) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the Message entity.
func (m *ConversationMutation) RemovedMessagesIDs() (ids []string) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *ConversationMutation) MessagesIDs() (ids []string) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *ConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddScheduledActionIDs adds the "scheduled_actions" edge to the ScheduledAction entity by ids.
func (m *ConversationMutation) AddScheduledActionIDs(ids ...string) {
	if m.scheduled_actions == nil {
		m.scheduled_actions = make(map[string]struct{})
	}
	for i := range ids {
		m.scheduled_actions[ids[i]] = struct{}{}
	}
}

// ClearScheduledActions clears the "scheduled_actions" edge to the ScheduledAction entity.
func (m *ConversationMutation) ClearScheduledActions() {
	m.clearedscheduled_actions = true
}

// ScheduledActionsCleared reports if the "scheduled_actions" edge to the ScheduledAction entity was cleared.
func (m *ConversationMutation) ScheduledActionsCleared() bool {
	return m.clearedscheduled_actions
}

// RemoveScheduledActionIDs removes the "scheduled_actions" edge to the ScheduledAction entity by IDs.
func (m *ConversationMutation) RemoveScheduledActionIDs(ids ...string) {
	if m.removedscheduled_actions == nil {
		m.removedscheduled_actions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.scheduled_actions, ids[i])
		m.removedscheduled_actions[ids[i]] = struct{}{}
	}
}

// RemovedScheduledActions returns the removed IDs of the "scheduled_actions" edge to the ScheduledAction entity.
func (m *ConversationMutation) RemovedScheduledActionsIDs() (ids []string) {
	for id := range m.removedscheduled_actions {
		ids = append(ids, id)
	}
	return
}

// ScheduledActionsIDs returns the "scheduled_actions" edge IDs in the mutation.
func (m *ConversationMutation) ScheduledActionsIDs() (ids []string) {
	for id := range m.scheduled_actions {
		ids = append(ids, id)
	}
	return
}

// ResetScheduledActions resets all changes to the "scheduled_actions" edge.
func (m *ConversationMutation) ResetScheduledActions() {
	m.scheduled_actions = nil
	m.clearedscheduled_actions = false
	m.removedscheduled_actions = nil
}

// Where appends a list predicates to the ConversationMutation builder.
func (m *ConversationMutation) Where(ps ...predicate.Conversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Conversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Conversation).
func (m *ConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.org_id != nil {
		fields = append(fields, conversation.FieldOrgID)
	}
	if m.lead != nil {
		fields = append(fields, conversation.FieldLeadID)
	}
	if m.mode != nil {
		fields = append(fields, conversation.FieldMode)
	}
	if m.stage != nil {
		fields = append(fields, conversation.FieldStage)
	}
	if m.intent_level != nil {
		fields = append(fields, conversation.FieldIntentLevel)
	}
	if m.user_sentiment != nil {
		fields = append(fields, conversation.FieldUserSentiment)
	}
	if m.rolling_summary != nil {
		fields = append(fields, conversation.FieldRollingSummary)
	}
	if m.needs_human_attention != nil {
		fields = append(fields, conversation.FieldNeedsHumanAttention)
	}
	if m.human_attention_resolved_at != nil {
		fields = append(fields, conversation.FieldHumanAttentionResolvedAt)
	}
	if m.last_user_message_at != nil {
		fields = append(fields, conversation.FieldLastUserMessageAt)
	}
	if m.last_bot_message_at != nil {
		fields = append(fields, conversation.FieldLastBotMessageAt)
	}
	if m.followup_count_24h != nil {
		fields = append(fields, conversation.FieldFollowupCount24h)
	}
	if m.total_nudges != nil {
		fields = append(fields, conversation.FieldTotalNudges)
	}
	if m.created_at != nil {
		fields = append(fields, conversation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, conversation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldOrgID:
		return m.OrgID()
	case conversation.FieldLeadID:
		return m.LeadID()
	case conversation.FieldMode:
		return m.Mode()
	case conversation.FieldStage:
		return m.Stage()
	case conversation.FieldIntentLevel:
		return m.IntentLevel()
	case conversation.FieldUserSentiment:
		return m.UserSentiment()
	case conversation.FieldRollingSummary:
		return m.RollingSummary()
	case conversation.FieldNeedsHumanAttention:
		return m.NeedsHumanAttention()
	case conversation.FieldHumanAttentionResolvedAt:
		return m.HumanAttentionResolvedAt()
	case conversation.FieldLastUserMessageAt:
		return m.LastUserMessageAt()
	case conversation.FieldLastBotMessageAt:
		return m.LastBotMessageAt()
	case conversation.FieldFollowupCount24h:
		return m.FollowupCount24h()
	case conversation.FieldTotalNudges:
		return m.TotalNudges()
	case conversation.FieldCreatedAt:
		return m.CreatedAt()
	case conversation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversation.FieldOrgID:
		return m.OldOrgID(ctx)
	case conversation.FieldLeadID:
		return m.OldLeadID(ctx)
	case conversation.FieldMode:
		return m.OldMode(ctx)
	case conversation.FieldStage:
		return m.OldStage(ctx)
	case conversation.FieldIntentLevel:
		return m.OldIntentLevel(ctx)
	case conversation.FieldUserSentiment:
		return m.OldUserSentiment(ctx)
	case conversation.FieldRollingSummary:
		return m.OldRollingSummary(ctx)
	case conversation.FieldNeedsHumanAttention:
		return m.OldNeedsHumanAttention(ctx)
	case conversation.FieldHumanAttentionResolvedAt:
		return m.OldHumanAttentionResolvedAt(ctx)
	case conversation.FieldLastUserMessageAt:
		return m.OldLastUserMessageAt(ctx)
	case conversation.FieldLastBotMessageAt:
		return m.OldLastBotMessageAt(ctx)
	case conversation.FieldFollowupCount24h:
		return m.OldFollowupCount24h(ctx)
	case conversation.FieldTotalNudges:
		return m.OldTotalNudges(ctx)
	case conversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case conversation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Conversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case conversation.FieldLeadID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeadID(v)
		return nil
	case conversation.FieldMode:
		v, ok := value.(conversation.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case conversation.FieldStage:
		v, ok := value.(conversation.Stage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage(v)
		return nil
	case conversation.FieldIntentLevel:
		v, ok := value.(conversation.IntentLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntentLevel(v)
		return nil
	case conversation.FieldUserSentiment:
		v, ok := value.(conversation.UserSentiment)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserSentiment(v)
		return nil
	case conversation.FieldRollingSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRollingSummary(v)
		return nil
	case conversation.FieldNeedsHumanAttention:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsHumanAttention(v)
		return nil
	case conversation.FieldHumanAttentionResolvedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumanAttentionResolvedAt(v)
		return nil
	case conversation.FieldLastUserMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUserMessageAt(v)
		return nil
	case conversation.FieldLastBotMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastBotMessageAt(v)
		return nil
	case conversation.FieldFollowupCount24h:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFollowupCount24h(v)
		return nil
	case conversation.FieldTotalNudges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalNudges(v)
		return nil
	case conversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case conversation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMutation) AddedFields() []string {
	var fields []string
	if m.addfollowup_count_24h != nil {
		fields = append(fields, conversation.FieldFollowupCount24h)
	}
	if m.addtotal_nudges != nil {
		fields = append(fields, conversation.FieldTotalNudges)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case conversation.FieldFollowupCount24h:
		return m.AddedFollowupCount24h()
	case conversation.FieldTotalNudges:
		return m.AddedTotalNudges()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case conversation.FieldFollowupCount24h:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFollowupCount24h(v)
		return nil
	case conversation.FieldTotalNudges:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalNudges(v)
		return nil
	}
	return fmt.Errorf("unknown Conversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversation.FieldHumanAttentionResolvedAt) {
		fields = append(fields, conversation.FieldHumanAttentionResolvedAt)
	}
	if m.FieldCleared(conversation.FieldLastUserMessageAt) {
		fields = append(fields, conversation.FieldLastUserMessageAt)
	}
	if m.FieldCleared(conversation.FieldLastBotMessageAt) {
		fields = append(fields, conversation.FieldLastBotMessageAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMutation) ClearField(name string) error {
	switch name {
	case conversation.FieldHumanAttentionResolvedAt:
		m.ClearHumanAttentionResolvedAt()
		return nil
	case conversation.FieldLastUserMessageAt:
		m.ClearLastUserMessageAt()
		return nil
	case conversation.FieldLastBotMessageAt:
		m.ClearLastBotMessageAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMutation) ResetField(name string) error {
	switch name {
	case conversation.FieldOrgID:
		m.ResetOrgID()
		return nil
	case conversation.FieldLeadID:
		m.ResetLeadID()
		return nil
	case conversation.FieldMode:
		m.ResetMode()
		return nil
	case conversation.FieldStage:
		m.ResetStage()
		return nil
	case conversation.FieldIntentLevel:
		m.ResetIntentLevel()
		return nil
	case conversation.FieldUserSentiment:
		m.ResetUserSentiment()
		return nil
	case conversation.FieldRollingSummary:
		m.ResetRollingSummary()
		return nil
	case conversation.FieldNeedsHumanAttention:
		m.ResetNeedsHumanAttention()
		return nil
	case conversation.FieldHumanAttentionResolvedAt:
		m.ResetHumanAttentionResolvedAt()
		return nil
	case conversation.FieldLastUserMessageAt:
		m.ResetLastUserMessageAt()
		return nil
	case conversation.FieldLastBotMessageAt:
		m.ResetLastBotMessageAt()
		return nil
	case conversation.FieldFollowupCount24h:
		m.ResetFollowupCount24h()
		return nil
	case conversation.FieldTotalNudges:
		m.ResetTotalNudges()
		return nil
	case conversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case conversation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Conversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.lead != nil {
		edges = append(edges, conversation.EdgeLead)
	}
	if m.messages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.scheduled_actions != nil {
		edges = append(edges, conversation.EdgeScheduledActions)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeLead:
		if id := m.lead; id != nil {
			return []ent.Value{*id}
		}
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeScheduledActions:
		ids := make([]ent.Value, 0, len(m.scheduled_actions))
		for id := range m.scheduled_actions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.removedscheduled_actions != nil {
		edges = append(edges, conversation.EdgeScheduledActions)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case conversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case conversation.EdgeScheduledActions:
		ids := make([]ent.Value, 0, len(m.removedscheduled_actions))
		for id := range m.removedscheduled_actions {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedlead {
		edges = append(edges, conversation.EdgeLead)
	}
	if m.clearedmessages {
		edges = append(edges, conversation.EdgeMessages)
	}
	if m.clearedscheduled_actions {
		edges = append(edges, conversation.EdgeScheduledActions)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case conversation.EdgeLead:
		return m.clearedlead
	case conversation.EdgeMessages:
		return m.clearedmessages
	case conversation.EdgeScheduledActions:
		return m.clearedscheduled_actions
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMutation) ClearEdge(name string) error {
	switch name {
	case conversation.EdgeLead:
		m.ClearLead()
		return nil
	}
	return fmt.Errorf("unknown Conversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMutation) ResetEdge(name string) error {
	switch name {
	case conversation.EdgeLead:
		m.ResetLead()
		return nil
	case conversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case conversation.EdgeScheduledActions:
		m.ResetScheduledActions()
		return nil
	}
	return fmt.Errorf("unknown Conversation edge %s", name)
}

// IntegrationMutation represents an operation that mutates the Integration nodes in the graph.
type IntegrationMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	org_id               *string
	phone_number_id      *string
	access_token         *string
	business_name        *string
	business_description *string
	flow_prompt          *string
	ctas                 *[]map[string]interface{}
	appendctas           []map[string]interface{}
	language_pref        *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*Integration, error)
	predicates           []predicate.Integration
}

var _ ent.Mutation = (*IntegrationMutation)(nil)

// integrationOption allows management of the mutation configuration using functional options.
type integrationOption func(*IntegrationMutation)

// newIntegrationMutation creates new mutation for the Integration entity.
func newIntegrationMutation(c config, op Op, opts ...integrationOption) *IntegrationMutation {
	m := &IntegrationMutation{
		config:        c,
		op:            op,
		typ:           TypeIntegration,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withIntegrationID sets the ID field of the mutation.
func withIntegrationID(id string) integrationOption {
	return func(m *IntegrationMutation) {
		var (
			err   error
			once  sync.Once
			value *Integration
		)
		m.oldValue = func(ctx context.Context) (*Integration, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Integration.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withIntegration sets the old Integration of the mutation.
func withIntegration(node *Integration) integrationOption {
	return func(m *IntegrationMutation) {
		m.oldValue = func(context.Context) (*Integration, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m IntegrationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m IntegrationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Integration entities.
func (m *IntegrationMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *IntegrationMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *IntegrationMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Integration.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *IntegrationMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *IntegrationMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *IntegrationMutation) ResetOrgID() {
	m.org_id = nil
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (m *IntegrationMutation) SetPhoneNumberID(s string) {
	m.phone_number_id = &s
}

// PhoneNumberID returns the value of the "phone_number_id" field in the mutation.
func (m *IntegrationMutation) PhoneNumberID() (r string, exists bool) {
	v := m.phone_number_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPhoneNumberID returns the old "phone_number_id" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldPhoneNumberID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhoneNumberID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhoneNumberID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhoneNumberID: %w", err)
	}
	return oldValue.PhoneNumberID, nil
}

// ResetPhoneNumberID resets all changes to the "phone_number_id" field.
func (m *IntegrationMutation) ResetPhoneNumberID() {
	m.phone_number_id = nil
}

// SetAccessToken sets the "access_token" field.
func (m *IntegrationMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *IntegrationMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ClearAccessToken clears the value of the "access_token" field.
func (m *IntegrationMutation) ClearAccessToken() {
	m.access_token = nil
	m.clearedFields[integration.FieldAccessToken] = struct{}{}
}

// AccessTokenCleared returns if the "access_token" field was cleared in this mutation.
func (m *IntegrationMutation) AccessTokenCleared() bool {
	_, ok := m.clearedFields[integration.FieldAccessToken]
	return ok
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *IntegrationMutation) ResetAccessToken() {
	m.access_token = nil
	delete(m.clearedFields, integration.FieldAccessToken)
}

// SetBusinessName sets the "business_name" field.
func (m *IntegrationMutation) SetBusinessName(s string) {
	m.business_name = &s
}

// BusinessName returns the value of the "business_name" field in the mutation.
func (m *IntegrationMutation) BusinessName() (r string, exists bool) {
	v := m.business_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessName returns the old "business_name" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldBusinessName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessName: %w", err)
	}
	return oldValue.BusinessName, nil
}

// ResetBusinessName resets all changes to the "business_name" field.
func (m *IntegrationMutation) ResetBusinessName() {
	m.business_name = nil
}

// SetBusinessDescription sets the "business_description" field.
func (m *IntegrationMutation) SetBusinessDescription(s string) {
	m.business_description = &s
}

// BusinessDescription returns the value of the "business_description" field in the mutation.
func (m *IntegrationMutation) BusinessDescription() (r string, exists bool) {
	v := m.business_description
	if v == nil {
		return
	}
	return *v, true
}

// OldBusinessDescription returns the old "business_description" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldBusinessDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBusinessDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBusinessDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBusinessDescription: %w", err)
	}
	return oldValue.BusinessDescription, nil
}

// ClearBusinessDescription clears the value of the "business_description" field.
func (m *IntegrationMutation) ClearBusinessDescription() {
	m.business_description = nil
	m.clearedFields[integration.FieldBusinessDescription] = struct{}{}
}

// BusinessDescriptionCleared returns if the "business_description" field was cleared in this mutation.
func (m *IntegrationMutation) BusinessDescriptionCleared() bool {
	_, ok := m.clearedFields[integration.FieldBusinessDescription]
	return ok
}

// ResetBusinessDescription resets all changes to the "business_description" field.
func (m *IntegrationMutation) ResetBusinessDescription() {
	m.business_description = nil
	delete(m.clearedFields, integration.FieldBusinessDescription)
}

// SetFlowPrompt sets the "flow_prompt" field.
func (m *IntegrationMutation) SetFlowPrompt(s string) {
	m.flow_prompt = &s
}

// FlowPrompt returns the value of the "flow_prompt" field in the mutation.
func (m *IntegrationMutation) FlowPrompt() (r string, exists bool) {
	v := m.flow_prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowPrompt returns the old "flow_prompt" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldFlowPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowPrompt: %w", err)
	}
	return oldValue.FlowPrompt, nil
}

// ClearFlowPrompt clears the value of the "flow_prompt" field.
func (m *IntegrationMutation) ClearFlowPrompt() {
	m.flow_prompt = nil
	m.clearedFields[integration.FieldFlowPrompt] = struct{}{}
}

// FlowPromptCleared returns if the "flow_prompt" field was cleared in this mutation.
func (m *IntegrationMutation) FlowPromptCleared() bool {
	_, ok := m.clearedFields[integration.FieldFlowPrompt]
	return ok
}

// ResetFlowPrompt resets all changes to the "flow_prompt" field.
func (m *IntegrationMutation) ResetFlowPrompt() {
	m.flow_prompt = nil
	delete(m.clearedFields, integration.FieldFlowPrompt)
}

// SetCtas sets the "ctas" field.
func (m *IntegrationMutation) SetCtas(value []map[string]interface{}) {
	m.ctas = &value
	m.appendctas = nil
}

// Ctas returns the value of the "ctas" field in the mutation.
func (m *IntegrationMutation) Ctas() (r []map[string]interface{}, exists bool) {
	v := m.ctas
	if v == nil {
		return
	}
	return *v, true
}

// OldCtas returns the old "ctas" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldCtas(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCtas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCtas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCtas: %w", err)
	}
	return oldValue.Ctas, nil
}

// AppendCtas adds value to the "ctas" field.
func (m *IntegrationMutation) AppendCtas(value []map[string]interface{}) {
	m.appendctas = append(m.appendctas, value...)
}

// AppendedCtas returns the list of values that were appended to the "ctas" field in this mutation.
func (m *IntegrationMutation) AppendedCtas() ([]map[string]interface{}, bool) {
	if len(m.appendctas) == 0 {
		return nil, false
	}
	return m.appendctas, true
}

// ClearCtas clears the value of the "ctas" field.
func (m *IntegrationMutation) ClearCtas() {
	m.ctas = nil
	m.appendctas = nil
	m.clearedFields[integration.FieldCtas] = struct{}{}
}

// CtasCleared returns if the "ctas" field was cleared in this mutation.
func (m *IntegrationMutation) CtasCleared() bool {
	_, ok := m.clearedFields[integration.FieldCtas]
	return ok
}

// ResetCtas resets all changes to the "ctas" field.
func (m *IntegrationMutation) ResetCtas() {
	m.ctas = nil
	m.appendctas = nil
	delete(m.clearedFields, integration.FieldCtas)
}

// SetLanguagePref sets the "language_pref" field.
func (m *IntegrationMutation) SetLanguagePref(s string) {
	m.language_pref = &s
}

// LanguagePref returns the value of the "language_pref" field in the mutation.
func (m *IntegrationMutation) LanguagePref() (r string, exists bool) {
	v := m.language_pref
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguagePref returns the old "language_pref" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldLanguagePref(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguagePref is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguagePref requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguagePref: %w", err)
	}
	return oldValue.LanguagePref, nil
}

// ResetLanguagePref resets all changes to the "language_pref" field.
func (m *IntegrationMutation) ResetLanguagePref() {
	m.language_pref = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *IntegrationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *IntegrationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Integration entity.
// If the Integration object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *IntegrationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *IntegrationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the IntegrationMutation builder.
func (m *IntegrationMutation) Where(ps ...predicate.Integration) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the IntegrationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *IntegrationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Integration, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *IntegrationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *IntegrationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Integration).
func (m *IntegrationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *IntegrationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.org_id != nil {
		fields = append(fields, integration.FieldOrgID)
	}
	if m.phone_number_id != nil {
		fields = append(fields, integration.FieldPhoneNumberID)
	}
	if m.access_token != nil {
		fields = append(fields, integration.FieldAccessToken)
	}
	if m.business_name != nil {
		fields = append(fields, integration.FieldBusinessName)
	}
	if m.business_description != nil {
		fields = append(fields, integration.FieldBusinessDescription)
	}
	if m.flow_prompt != nil {
		fields = append(fields, integration.FieldFlowPrompt)
	}
	if m.ctas != nil {
		fields = append(fields, integration.FieldCtas)
	}
	if m.language_pref != nil {
		fields = append(fields, integration.FieldLanguagePref)
	}
	if m.created_at != nil {
		fields = append(fields, integration.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *IntegrationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case integration.FieldOrgID:
		return m.OrgID()
	case integration.FieldPhoneNumberID:
		return m.PhoneNumberID()
	case integration.FieldAccessToken:
		return m.AccessToken()
	case integration.FieldBusinessName:
		return m.BusinessName()
	case integration.FieldBusinessDescription:
		return m.BusinessDescription()
	case integration.FieldFlowPrompt:
		return m.FlowPrompt()
	case integration.FieldCtas:
		return m.Ctas()
	case integration.FieldLanguagePref:
		return m.LanguagePref()
	case integration.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *IntegrationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case integration.FieldOrgID:
		return m.OldOrgID(ctx)
	case integration.FieldPhoneNumberID:
		return m.OldPhoneNumberID(ctx)
	case integration.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case integration.FieldBusinessName:
		return m.OldBusinessName(ctx)
	case integration.FieldBusinessDescription:
		return m.OldBusinessDescription(ctx)
	case integration.FieldFlowPrompt:
		return m.OldFlowPrompt(ctx)
	case integration.FieldCtas:
		return m.OldCtas(ctx)
	case integration.FieldLanguagePref:
		return m.OldLanguagePref(ctx)
	case integration.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Integration field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case integration.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case integration.FieldPhoneNumberID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhoneNumberID(v)
		return nil
	case integration.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case integration.FieldBusinessName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessName(v)
		return nil
	case integration.FieldBusinessDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBusinessDescription(v)
		return nil
	case integration.FieldFlowPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowPrompt(v)
		return nil
	case integration.FieldCtas:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCtas(v)
		return nil
	case integration.FieldLanguagePref:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguagePref(v)
		return nil
	case integration.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *IntegrationMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *IntegrationMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *IntegrationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Integration numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *IntegrationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(integration.FieldAccessToken) {
		fields = append(fields, integration.FieldAccessToken)
	}
	if m.FieldCleared(integration.FieldBusinessDescription) {
		fields = append(fields, integration.FieldBusinessDescription)
	}
	if m.FieldCleared(integration.FieldFlowPrompt) {
		fields = append(fields, integration.FieldFlowPrompt)
	}
	if m.FieldCleared(integration.FieldCtas) {
		fields = append(fields, integration.FieldCtas)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *IntegrationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *IntegrationMutation) ClearField(name string) error {
	switch name {
	case integration.FieldAccessToken:
		m.ClearAccessToken()
		return nil
	case integration.FieldBusinessDescription:
		m.ClearBusinessDescription()
		return nil
	case integration.FieldFlowPrompt:
		m.ClearFlowPrompt()
		return nil
	case integration.FieldCtas:
		m.ClearCtas()
		return nil
	}
	return fmt.Errorf("unknown Integration nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *IntegrationMutation) ResetField(name string) error {
	switch name {
	case integration.FieldOrgID:
		m.ResetOrgID()
		return nil
	case integration.FieldPhoneNumberID:
		m.ResetPhoneNumberID()
		return nil
	case integration.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case integration.FieldBusinessName:
		m.ResetBusinessName()
		return nil
	case integration.FieldBusinessDescription:
		m.ResetBusinessDescription()
		return nil
	case integration.FieldFlowPrompt:
		m.ResetFlowPrompt()
		return nil
	case integration.FieldCtas:
		m.ResetCtas()
		return nil
	case integration.FieldLanguagePref:
		m.ResetLanguagePref()
		return nil
	case integration.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Integration field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *IntegrationMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *IntegrationMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *IntegrationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *IntegrationMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *IntegrationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *IntegrationMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *IntegrationMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Integration unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *IntegrationMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Integration edge %s", name)
}

// LeadMutation represents an operation that mutates the Lead nodes in the graph.
type LeadMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	org_id               *string
	phone                *string
	display_name         *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	conversations        map[string]struct{}
	removedconversations map[string]struct{}
	clearedconversations bool
	done                 bool
	oldValue             func(context.Context) (*Lead, error)
	predicates           []predicate.Lead
}

var _ ent.Mutation = (*LeadMutation)(nil)

// leadOption allows management of the mutation configuration using functional options.
type leadOption func(*LeadMutation)

// newLeadMutation creates new mutation for the Lead entity.
func newLeadMutation(c config, op Op, opts ...leadOption) *LeadMutation {
	m := &LeadMutation{
		config:        c,
		op:            op,
		typ:           TypeLead,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLeadID sets the ID field of the mutation.
func withLeadID(id string) leadOption {
	return func(m *LeadMutation) {
		var (
			err   error
			once  sync.Once
			value *Lead
		)
		m.oldValue = func(ctx context.Context) (*Lead, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Lead.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLead sets the old Lead of the mutation.
func withLead(node *Lead) leadOption {
	return func(m *LeadMutation) {
		m.oldValue = func(context.Context) (*Lead, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LeadMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LeadMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Lead entities.
func (m *LeadMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LeadMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LeadMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Lead.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetOrgID sets the "org_id" field.
func (m *LeadMutation) SetOrgID(s string) {
	m.org_id = &s
}

// OrgID returns the value of the "org_id" field in the mutation.
func (m *LeadMutation) OrgID() (r string, exists bool) {
	v := m.org_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOrgID returns the old "org_id" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldOrgID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOrgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOrgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOrgID: %w", err)
	}
	return oldValue.OrgID, nil
}

// ResetOrgID resets all changes to the "org_id" field.
func (m *LeadMutation) ResetOrgID() {
	m.org_id = nil
}

// SetPhone sets the "phone" field.
func (m *LeadMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *LeadMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ResetPhone resets all changes to the "phone" field.
func (m *LeadMutation) ResetPhone() {
	m.phone = nil
}

// SetDisplayName sets the "display_name" field.
func (m *LeadMutation) SetDisplayName(s string) {
	m.display_name = &s
}

// DisplayName returns the value of the "display_name" field in the mutation.
func (m *LeadMutation) DisplayName() (r string, exists bool) {
	v := m.display_name
	if v == nil {
		return
	}
	return *v, true
}

// OldDisplayName returns the old "display_name" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldDisplayName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDisplayName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDisplayName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDisplayName: %w", err)
	}
	return oldValue.DisplayName, nil
}

// ClearDisplayName clears the value of the "display_name" field.
func (m *LeadMutation) ClearDisplayName() {
	m.display_name = nil
	m.clearedFields[lead.FieldDisplayName] = struct{}{}
}

// DisplayNameCleared returns if the "display_name" field was cleared in this mutation.
func (m *LeadMutation) DisplayNameCleared() bool {
	_, ok := m.clearedFields[lead.FieldDisplayName]
	return ok
}

// ResetDisplayName resets all changes to the "display_name" field.
func (m *LeadMutation) ResetDisplayName() {
	m.display_name = nil
	delete(m.clearedFields, lead.FieldDisplayName)
}

// SetCreatedAt sets the "created_at" field.
func (m *LeadMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LeadMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Lead entity.
// If the Lead object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LeadMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LeadMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddConversationIDs adds the "conversations" edge to the Conversation entity by ids.
func (m *LeadMutation) AddConversationIDs(ids ...string) {
	if m.conversations == nil {
		m.conversations = make(map[string]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the Conversation entity.
func (m *LeadMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the Conversation entity was cleared.
func (m *LeadMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the Conversation entity by IDs.
func (m *LeadMutation) RemoveConversationIDs(ids ...string) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the Conversation entity.
func (m *LeadMutation) RemovedConversationsIDs() (ids []string) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *LeadMutation) ConversationsIDs() (ids []string) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *LeadMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// Where appends a list predicates to the LeadMutation builder.
func (m *LeadMutation) Where(ps ...predicate.Lead) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LeadMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LeadMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Lead, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LeadMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LeadMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Lead).
func (m *LeadMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LeadMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.org_id != nil {
		fields = append(fields, lead.FieldOrgID)
	}
	if m.phone != nil {
		fields = append(fields, lead.FieldPhone)
	}
	if m.display_name != nil {
		fields = append(fields, lead.FieldDisplayName)
	}
	if m.created_at != nil {
		fields = append(fields, lead.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LeadMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case lead.FieldOrgID:
		return m.OrgID()
	case lead.FieldPhone:
		return m.Phone()
	case lead.FieldDisplayName:
		return m.DisplayName()
	case lead.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LeadMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case lead.FieldOrgID:
		return m.OldOrgID(ctx)
	case lead.FieldPhone:
		return m.OldPhone(ctx)
	case lead.FieldDisplayName:
		return m.OldDisplayName(ctx)
	case lead.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Lead field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) SetField(name string, value ent.Value) error {
	switch name {
	case lead.FieldOrgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOrgID(v)
		return nil
	case lead.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case lead.FieldDisplayName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDisplayName(v)
		return nil
	case lead.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LeadMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LeadMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LeadMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LeadMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(lead.FieldDisplayName) {
		fields = append(fields, lead.FieldDisplayName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LeadMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LeadMutation) ClearField(name string) error {
	switch name {
	case lead.FieldDisplayName:
		m.ClearDisplayName()
		return nil
	}
	return fmt.Errorf("unknown Lead nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LeadMutation) ResetField(name string) error {
	switch name {
	case lead.FieldOrgID:
		m.ResetOrgID()
		return nil
	case lead.FieldPhone:
		m.ResetPhone()
		return nil
	case lead.FieldDisplayName:
		m.ResetDisplayName()
		return nil
	case lead.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Lead field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LeadMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversations != nil {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LeadMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LeadMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedconversations != nil {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LeadMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case lead.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LeadMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversations {
		edges = append(edges, lead.EdgeConversations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LeadMutation) EdgeCleared(name string) bool {
	switch name {
	case lead.EdgeConversations:
		return m.clearedconversations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LeadMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Lead unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LeadMutation) ResetEdge(name string) error {
	switch name {
	case lead.EdgeConversations:
		m.ResetConversations()
		return nil
	}
	return fmt.Errorf("unknown Lead edge %s", name)
}

// MessageMutation represents an operation that mutates the Message nodes in the graph.
type MessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	sender              *message.Sender
	direction           *message.Direction
	text                *string
	provider_msg_id     *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*Message, error)
	predicates          []predicate.Message
}

var _ ent.Mutation = (*MessageMutation)(nil)

// messageOption allows management of the mutation configuration using functional options.
type messageOption func(*MessageMutation)

// newMessageMutation creates new mutation for the Message entity.
func newMessageMutation(c config, op Op, opts ...messageOption) *MessageMutation {
	m := &MessageMutation{
		config:        c,
		op:            op,
		typ:           TypeMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMessageID sets the ID field of the mutation.
func withMessageID(id string) messageOption {
	return func(m *MessageMutation) {
		var (
			err   error
			once  sync.Once
			value *Message
		)
		m.oldValue = func(ctx context.Context) (*Message, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Message.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMessage sets the old Message of the mutation.
func withMessage(node *Message) messageOption {
	return func(m *MessageMutation) {
		m.oldValue = func(context.Context) (*Message, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Message entities.
func (m *MessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Message.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *MessageMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *MessageMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *MessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetSender sets the "sender" field.
func (m *MessageMutation) SetSender(value message.Sender) {
	m.sender = &value
}

// Sender returns the value of the "sender" field in the mutation.
func (m *MessageMutation) Sender() (r message.Sender, exists bool) {
	v := m.sender
	if v == nil {
		return
	}
	return *v, true
}

// OldSender returns the old "sender" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldSender(ctx context.Context) (v message.Sender, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSender is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSender requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSender: %w", err)
	}
	return oldValue.Sender, nil
}

// ResetSender resets all changes to the "sender" field.
func (m *MessageMutation) ResetSender() {
	m.sender = nil
}

// SetDirection sets the "direction" field.
func (m *MessageMutation) SetDirection(value message.Direction) {
	m.direction = &value
}

// Direction returns the value of the "direction" field in the mutation.
func (m *MessageMutation) Direction() (r message.Direction, exists bool) {
	v := m.direction
	if v == nil {
		return
	}
	return *v, true
}

// OldDirection returns the old "direction" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldDirection(ctx context.Context) (v message.Direction, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDirection is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDirection requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDirection: %w", err)
	}
	return oldValue.Direction, nil
}

// ResetDirection resets all changes to the "direction" field.
func (m *MessageMutation) ResetDirection() {
	m.direction = nil
}

// SetText sets the "text" field.
func (m *MessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *MessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *MessageMutation) ResetText() {
	m.text = nil
}

// SetProviderMsgID sets the "provider_msg_id" field.
func (m *MessageMutation) SetProviderMsgID(s string) {
	m.provider_msg_id = &s
}

// ProviderMsgID returns the value of the "provider_msg_id" field in the mutation.
func (m *MessageMutation) ProviderMsgID() (r string, exists bool) {
	v := m.provider_msg_id
	if v == nil {
		return
	}
	return *v, true
}

// OldProviderMsgID returns the old "provider_msg_id" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldProviderMsgID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProviderMsgID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProviderMsgID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProviderMsgID: %w", err)
	}
	return oldValue.ProviderMsgID, nil
}

// ClearProviderMsgID clears the value of the "provider_msg_id" field.
func (m *MessageMutation) ClearProviderMsgID() {
	m.provider_msg_id = nil
	m.clearedFields[message.FieldProviderMsgID] = struct{}{}
}

// ProviderMsgIDCleared returns if the "provider_msg_id" field was cleared in this mutation.
func (m *MessageMutation) ProviderMsgIDCleared() bool {
	_, ok := m.clearedFields[message.FieldProviderMsgID]
	return ok
}

// ResetProviderMsgID resets all changes to the "provider_msg_id" field.
func (m *MessageMutation) ResetProviderMsgID() {
	m.provider_msg_id = nil
	delete(m.clearedFields, message.FieldProviderMsgID)
}

// SetCreatedAt sets the "created_at" field.
func (m *MessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Message entity.
// If the Message object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *MessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[message.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *MessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *MessageMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *MessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the MessageMutation builder.
func (m *MessageMutation) Where(ps ...predicate.Message) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Message, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Message).
func (m *MessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MessageMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, message.FieldConversationID)
	}
	if m.sender != nil {
		fields = append(fields, message.FieldSender)
	}
	if m.direction != nil {
		fields = append(fields, message.FieldDirection)
	}
	if m.text != nil {
		fields = append(fields, message.FieldText)
	}
	if m.provider_msg_id != nil {
		fields = append(fields, message.FieldProviderMsgID)
	}
	if m.created_at != nil {
		fields = append(fields, message.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case message.FieldConversationID:
		return m.ConversationID()
	case message.FieldSender:
		return m.Sender()
	case message.FieldDirection:
		return m.Direction()
	case message.FieldText:
		return m.Text()
	case message.FieldProviderMsgID:
		return m.ProviderMsgID()
	case message.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case message.FieldConversationID:
		return m.OldConversationID(ctx)
	case message.FieldSender:
		return m.OldSender(ctx)
	case message.FieldDirection:
		return m.OldDirection(ctx)
	case message.FieldText:
		return m.OldText(ctx)
	case message.FieldProviderMsgID:
		return m.OldProviderMsgID(ctx)
	case message.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Message field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case message.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case message.FieldSender:
		v, ok := value.(message.Sender)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSender(v)
		return nil
	case message.FieldDirection:
		v, ok := value.(message.Direction)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDirection(v)
		return nil
	case message.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case message.FieldProviderMsgID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProviderMsgID(v)
		return nil
	case message.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Message numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(message.FieldProviderMsgID) {
		fields = append(fields, message.FieldProviderMsgID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MessageMutation) ClearField(name string) error {
	switch name {
	case message.FieldProviderMsgID:
		m.ClearProviderMsgID()
		return nil
	}
	return fmt.Errorf("unknown Message nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MessageMutation) ResetField(name string) error {
	switch name {
	case message.FieldConversationID:
		m.ResetConversationID()
		return nil
	case message.FieldSender:
		m.ResetSender()
		return nil
	case message.FieldDirection:
		m.ResetDirection()
		return nil
	case message.FieldText:
		m.ResetText()
		return nil
	case message.FieldProviderMsgID:
		m.ResetProviderMsgID()
		return nil
	case message.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Message field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case message.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, message.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MessageMutation) EdgeCleared(name string) bool {
	switch name {
	case message.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MessageMutation) ClearEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown Message unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MessageMutation) ResetEdge(name string) error {
	switch name {
	case message.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown Message edge %s", name)
}

// ScheduledActionMutation represents an operation that mutates the ScheduledAction nodes in the graph.
type ScheduledActionMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	kind                *scheduledaction.Kind
	status              *scheduledaction.Status
	fire_at             *time.Time
	created_at          *time.Time
	context             *map[string]interface{}
	clearedFields       map[string]struct{}
	conversation        *string
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*ScheduledAction, error)
	predicates          []predicate.ScheduledAction
}

var _ ent.Mutation = (*ScheduledActionMutation)(nil)

// scheduledactionOption allows management of the mutation configuration using functional options.
type scheduledactionOption func(*ScheduledActionMutation)

// newScheduledActionMutation creates new mutation for the ScheduledAction entity.
func newScheduledActionMutation(c config, op Op, opts ...scheduledactionOption) *ScheduledActionMutation {
	m := &ScheduledActionMutation{
		config:        c,
		op:            op,
		typ:           TypeScheduledAction,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScheduledActionID sets the ID field of the mutation.
func withScheduledActionID(id string) scheduledactionOption {
	return func(m *ScheduledActionMutation) {
		var (
			err   error
			once  sync.Once
			value *ScheduledAction
		)
		m.oldValue = func(ctx context.Context) (*ScheduledAction, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScheduledAction.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScheduledAction sets the old ScheduledAction of the mutation.
func withScheduledAction(node *ScheduledAction) scheduledactionOption {
	return func(m *ScheduledActionMutation) {
		m.oldValue = func(context.Context) (*ScheduledAction, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScheduledActionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScheduledActionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScheduledAction entities.
func (m *ScheduledActionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScheduledActionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScheduledActionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScheduledAction.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ScheduledActionMutation) SetConversationID(s string) {
	m.conversation = &s
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ScheduledActionMutation) ConversationID() (r string, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldConversationID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ScheduledActionMutation) ResetConversationID() {
	m.conversation = nil
}

// SetKind sets the "kind" field.
func (m *ScheduledActionMutation) SetKind(s scheduledaction.Kind) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ScheduledActionMutation) Kind() (r scheduledaction.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldKind(ctx context.Context) (v scheduledaction.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ScheduledActionMutation) ResetKind() {
	m.kind = nil
}

// SetStatus sets the "status" field.
func (m *ScheduledActionMutation) SetStatus(s scheduledaction.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScheduledActionMutation) Status() (r scheduledaction.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldStatus(ctx context.Context) (v scheduledaction.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ScheduledActionMutation) ResetStatus() {
	m.status = nil
}

// SetFireAt sets the "fire_at" field.
func (m *ScheduledActionMutation) SetFireAt(t time.Time) {
	m.fire_at = &t
}

// FireAt returns the value of the "fire_at" field in the mutation.
func (m *ScheduledActionMutation) FireAt() (r time.Time, exists bool) {
	v := m.fire_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFireAt returns the old "fire_at" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldFireAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFireAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFireAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFireAt: %w", err)
	}
	return oldValue.FireAt, nil
}

// ResetFireAt resets all changes to the "fire_at" field.
func (m *ScheduledActionMutation) ResetFireAt() {
	m.fire_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ScheduledActionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ScheduledActionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ScheduledActionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetContext sets the "context" field.
func (m *ScheduledActionMutation) SetContext(value map[string]interface{}) {
	m.context = &value
}

// Context returns the value of the "context" field in the mutation.
func (m *ScheduledActionMutation) Context() (r map[string]interface{}, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the ScheduledAction entity.
// If the ScheduledAction object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScheduledActionMutation) OldContext(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *ScheduledActionMutation) ClearContext() {
	m.context = nil
	m.clearedFields[scheduledaction.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *ScheduledActionMutation) ContextCleared() bool {
	_, ok := m.clearedFields[scheduledaction.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *ScheduledActionMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, scheduledaction.FieldContext)
}

// ClearConversation clears the "conversation" edge to the Conversation entity.
func (m *ScheduledActionMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[scheduledaction.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the Conversation entity was cleared.
func (m *ScheduledActionMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ScheduledActionMutation) ConversationIDs() (ids []string) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ScheduledActionMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ScheduledActionMutation builder.
func (m *ScheduledActionMutation) Where(ps ...predicate.ScheduledAction) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScheduledActionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScheduledActionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScheduledAction, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScheduledActionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScheduledActionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScheduledAction).
func (m *ScheduledActionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScheduledActionMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.conversation != nil {
		fields = append(fields, scheduledaction.FieldConversationID)
	}
	if m.kind != nil {
		fields = append(fields, scheduledaction.FieldKind)
	}
	if m.status != nil {
		fields = append(fields, scheduledaction.FieldStatus)
	}
	if m.fire_at != nil {
		fields = append(fields, scheduledaction.FieldFireAt)
	}
	if m.created_at != nil {
		fields = append(fields, scheduledaction.FieldCreatedAt)
	}
	if m.context != nil {
		fields = append(fields, scheduledaction.FieldContext)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScheduledActionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scheduledaction.FieldConversationID:
		return m.ConversationID()
	case scheduledaction.FieldKind:
		return m.Kind()
	case scheduledaction.FieldStatus:
		return m.Status()
	case scheduledaction.FieldFireAt:
		return m.FireAt()
	case scheduledaction.FieldCreatedAt:
		return m.CreatedAt()
	case scheduledaction.FieldContext:
		return m.Context()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScheduledActionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scheduledaction.FieldConversationID:
		return m.OldConversationID(ctx)
	case scheduledaction.FieldKind:
		return m.OldKind(ctx)
	case scheduledaction.FieldStatus:
		return m.OldStatus(ctx)
	case scheduledaction.FieldFireAt:
		return m.OldFireAt(ctx)
	case scheduledaction.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case scheduledaction.FieldContext:
		return m.OldContext(ctx)
	}
	return nil, fmt.Errorf("unknown ScheduledAction field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledActionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scheduledaction.FieldConversationID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case scheduledaction.FieldKind:
		v, ok := value.(scheduledaction.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case scheduledaction.FieldStatus:
		v, ok := value.(scheduledaction.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scheduledaction.FieldFireAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFireAt(v)
		return nil
	case scheduledaction.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case scheduledaction.FieldContext:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	}
	return fmt.Errorf("unknown ScheduledAction field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScheduledActionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScheduledActionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScheduledActionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ScheduledAction numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScheduledActionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scheduledaction.FieldContext) {
		fields = append(fields, scheduledaction.FieldContext)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScheduledActionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScheduledActionMutation) ClearField(name string) error {
	switch name {
	case scheduledaction.FieldContext:
		m.ClearContext()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAction nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScheduledActionMutation) ResetField(name string) error {
	switch name {
	case scheduledaction.FieldConversationID:
		m.ResetConversationID()
		return nil
	case scheduledaction.FieldKind:
		m.ResetKind()
		return nil
	case scheduledaction.FieldStatus:
		m.ResetStatus()
		return nil
	case scheduledaction.FieldFireAt:
		m.ResetFireAt()
		return nil
	case scheduledaction.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case scheduledaction.FieldContext:
		m.ResetContext()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAction field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScheduledActionMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, scheduledaction.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScheduledActionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scheduledaction.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScheduledActionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScheduledActionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScheduledActionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, scheduledaction.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScheduledActionMutation) EdgeCleared(name string) bool {
	switch name {
	case scheduledaction.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScheduledActionMutation) ClearEdge(name string) error {
	switch name {
	case scheduledaction.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAction unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScheduledActionMutation) ResetEdge(name string) error {
	switch name {
	case scheduledaction.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ScheduledAction edge %s", name)
}
