// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/predicate"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

// ConversationUpdate is the builder for updating Conversation entities.
type ConversationUpdate struct {
	config
	hooks    []Hook
	mutation *ConversationMutation
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdate) Where(ps ...predicate.Conversation) *ConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *ConversationUpdate) SetOrgID(v string) *ConversationUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableOrgID(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ConversationUpdate) SetMode(v conversation.Mode) *ConversationUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableMode(v *conversation.Mode) *ConversationUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ConversationUpdate) SetStage(v conversation.Stage) *ConversationUpdate {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableStage(v *conversation.Stage) *ConversationUpdate {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetIntentLevel sets the "intent_level" field.
func (_u *ConversationUpdate) SetIntentLevel(v conversation.IntentLevel) *ConversationUpdate {
	_u.mutation.SetIntentLevel(v)
	return _u
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableIntentLevel(v *conversation.IntentLevel) *ConversationUpdate {
	if v != nil {
		_u.SetIntentLevel(*v)
	}
	return _u
}

// SetUserSentiment sets the "user_sentiment" field.
func (_u *ConversationUpdate) SetUserSentiment(v conversation.UserSentiment) *ConversationUpdate {
	_u.mutation.SetUserSentiment(v)
	return _u
}

// SetNillableUserSentiment sets the "user_sentiment" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableUserSentiment(v *conversation.UserSentiment) *ConversationUpdate {
	if v != nil {
		_u.SetUserSentiment(*v)
	}
	return _u
}

// SetRollingSummary sets the "rolling_summary" field.
func (_u *ConversationUpdate) SetRollingSummary(v string) *ConversationUpdate {
	_u.mutation.SetRollingSummary(v)
	return _u
}

// SetNillableRollingSummary sets the "rolling_summary" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableRollingSummary(v *string) *ConversationUpdate {
	if v != nil {
		_u.SetRollingSummary(*v)
	}
	return _u
}

// SetNeedsHumanAttention sets the "needs_human_attention" field.
func (_u *ConversationUpdate) SetNeedsHumanAttention(v bool) *ConversationUpdate {
	_u.mutation.SetNeedsHumanAttention(v)
	return _u
}

// SetNillableNeedsHumanAttention sets the "needs_human_attention" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableNeedsHumanAttention(v *bool) *ConversationUpdate {
	if v != nil {
		_u.SetNeedsHumanAttention(*v)
	}
	return _u
}

// SetHumanAttentionResolvedAt sets the "human_attention_resolved_at" field.
func (_u *ConversationUpdate) SetHumanAttentionResolvedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetHumanAttentionResolvedAt(v)
	return _u
}

// SetNillableHumanAttentionResolvedAt sets the "human_attention_resolved_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableHumanAttentionResolvedAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetHumanAttentionResolvedAt(*v)
	}
	return _u
}

// ClearHumanAttentionResolvedAt clears the value of the "human_attention_resolved_at" field.
func (_u *ConversationUpdate) ClearHumanAttentionResolvedAt() *ConversationUpdate {
	_u.mutation.ClearHumanAttentionResolvedAt()
	return _u
}

// SetLastUserMessageAt sets the "last_user_message_at" field.
func (_u *ConversationUpdate) SetLastUserMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastUserMessageAt(v)
	return _u
}

// SetNillableLastUserMessageAt sets the "last_user_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastUserMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastUserMessageAt(*v)
	}
	return _u
}

// ClearLastUserMessageAt clears the value of the "last_user_message_at" field.
func (_u *ConversationUpdate) ClearLastUserMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastUserMessageAt()
	return _u
}

// SetLastBotMessageAt sets the "last_bot_message_at" field.
func (_u *ConversationUpdate) SetLastBotMessageAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetLastBotMessageAt(v)
	return _u
}

// SetNillableLastBotMessageAt sets the "last_bot_message_at" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableLastBotMessageAt(v *time.Time) *ConversationUpdate {
	if v != nil {
		_u.SetLastBotMessageAt(*v)
	}
	return _u
}

// ClearLastBotMessageAt clears the value of the "last_bot_message_at" field.
func (_u *ConversationUpdate) ClearLastBotMessageAt() *ConversationUpdate {
	_u.mutation.ClearLastBotMessageAt()
	return _u
}

// SetFollowupCount24h sets the "followup_count_24h" field.
func (_u *ConversationUpdate) SetFollowupCount24h(v int) *ConversationUpdate {
	_u.mutation.ResetFollowupCount24h()
	_u.mutation.SetFollowupCount24h(v)
	return _u
}

// SetNillableFollowupCount24h sets the "followup_count_24h" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableFollowupCount24h(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetFollowupCount24h(*v)
	}
	return _u
}

// AddFollowupCount24h adds value to the "followup_count_24h" field.
func (_u *ConversationUpdate) AddFollowupCount24h(v int) *ConversationUpdate {
	_u.mutation.AddFollowupCount24h(v)
	return _u
}

// SetTotalNudges sets the "total_nudges" field.
func (_u *ConversationUpdate) SetTotalNudges(v int) *ConversationUpdate {
	_u.mutation.ResetTotalNudges()
	_u.mutation.SetTotalNudges(v)
	return _u
}

// SetNillableTotalNudges sets the "total_nudges" field if the given value is not nil.
func (_u *ConversationUpdate) SetNillableTotalNudges(v *int) *ConversationUpdate {
	if v != nil {
		_u.SetTotalNudges(*v)
	}
	return _u
}

// AddTotalNudges adds value to the "total_nudges" field.
func (_u *ConversationUpdate) AddTotalNudges(v int) *ConversationUpdate {
	_u.mutation.AddTotalNudges(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdate) SetUpdatedAt(v time.Time) *ConversationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdate) AddMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdate) AddMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddScheduledActionIDs adds the "scheduled_actions" edge to the ScheduledAction entity by IDs.
func (_u *ConversationUpdate) AddScheduledActionIDs(ids ...string) *ConversationUpdate {
	_u.mutation.AddScheduledActionIDs(ids...)
	return _u
}

// AddScheduledActions adds the "scheduled_actions" edges to the ScheduledAction entity.
func (_u *ConversationUpdate) AddScheduledActions(v ...*ScheduledAction) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledActionIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdate) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdate) ClearMessages() *ConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdate) RemoveMessageIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdate) RemoveMessages(v ...*Message) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearScheduledActions clears all "scheduled_actions" edges to the ScheduledAction entity.
func (_u *ConversationUpdate) ClearScheduledActions() *ConversationUpdate {
	_u.mutation.ClearScheduledActions()
	return _u
}

// RemoveScheduledActionIDs removes the "scheduled_actions" edge to ScheduledAction entities by IDs.
func (_u *ConversationUpdate) RemoveScheduledActionIDs(ids ...string) *ConversationUpdate {
	_u.mutation.RemoveScheduledActionIDs(ids...)
	return _u
}

// RemoveScheduledActions removes "scheduled_actions" edges to ScheduledAction entities.
func (_u *ConversationUpdate) RemoveScheduledActions(v ...*ScheduledAction) *ConversationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledActionIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ConversationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := conversation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Conversation.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := conversation.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Conversation.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntentLevel(); ok {
		if err := conversation.IntentLevelValidator(v); err != nil {
			return &ValidationError{Name: "intent_level", err: fmt.Errorf(`ent: validator failed for field "Conversation.intent_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserSentiment(); ok {
		if err := conversation.UserSentimentValidator(v); err != nil {
			return &ValidationError{Name: "user_sentiment", err: fmt.Errorf(`ent: validator failed for field "Conversation.user_sentiment": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.lead"`)
	}
	return nil
}

func (_u *ConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(conversation.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(conversation.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(conversation.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentLevel(); ok {
		_spec.SetField(conversation.FieldIntentLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserSentiment(); ok {
		_spec.SetField(conversation.FieldUserSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RollingSummary(); ok {
		_spec.SetField(conversation.FieldRollingSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsHumanAttention(); ok {
		_spec.SetField(conversation.FieldNeedsHumanAttention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HumanAttentionResolvedAt(); ok {
		_spec.SetField(conversation.FieldHumanAttentionResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanAttentionResolvedAtCleared() {
		_spec.ClearField(conversation.FieldHumanAttentionResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUserMessageAt(); ok {
		_spec.SetField(conversation.FieldLastUserMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastUserMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastUserMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBotMessageAt(); ok {
		_spec.SetField(conversation.FieldLastBotMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastBotMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastBotMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowupCount24h(); ok {
		_spec.SetField(conversation.FieldFollowupCount24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupCount24h(); ok {
		_spec.AddField(conversation.FieldFollowupCount24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalNudges(); ok {
		_spec.SetField(conversation.FieldTotalNudges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNudges(); ok {
		_spec.AddField(conversation.FieldTotalNudges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledActionsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ConversationUpdateOne is the builder for updating a single Conversation entity.
type ConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ConversationMutation
}

// SetOrgID sets the "org_id" field.
func (_u *ConversationUpdateOne) SetOrgID(v string) *ConversationUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableOrgID(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *ConversationUpdateOne) SetMode(v conversation.Mode) *ConversationUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableMode(v *conversation.Mode) *ConversationUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStage sets the "stage" field.
func (_u *ConversationUpdateOne) SetStage(v conversation.Stage) *ConversationUpdateOne {
	_u.mutation.SetStage(v)
	return _u
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableStage(v *conversation.Stage) *ConversationUpdateOne {
	if v != nil {
		_u.SetStage(*v)
	}
	return _u
}

// SetIntentLevel sets the "intent_level" field.
func (_u *ConversationUpdateOne) SetIntentLevel(v conversation.IntentLevel) *ConversationUpdateOne {
	_u.mutation.SetIntentLevel(v)
	return _u
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableIntentLevel(v *conversation.IntentLevel) *ConversationUpdateOne {
	if v != nil {
		_u.SetIntentLevel(*v)
	}
	return _u
}

// SetUserSentiment sets the "user_sentiment" field.
func (_u *ConversationUpdateOne) SetUserSentiment(v conversation.UserSentiment) *ConversationUpdateOne {
	_u.mutation.SetUserSentiment(v)
	return _u
}

// SetNillableUserSentiment sets the "user_sentiment" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableUserSentiment(v *conversation.UserSentiment) *ConversationUpdateOne {
	if v != nil {
		_u.SetUserSentiment(*v)
	}
	return _u
}

// SetRollingSummary sets the "rolling_summary" field.
func (_u *ConversationUpdateOne) SetRollingSummary(v string) *ConversationUpdateOne {
	_u.mutation.SetRollingSummary(v)
	return _u
}

// SetNillableRollingSummary sets the "rolling_summary" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableRollingSummary(v *string) *ConversationUpdateOne {
	if v != nil {
		_u.SetRollingSummary(*v)
	}
	return _u
}

// SetNeedsHumanAttention sets the "needs_human_attention" field.
func (_u *ConversationUpdateOne) SetNeedsHumanAttention(v bool) *ConversationUpdateOne {
	_u.mutation.SetNeedsHumanAttention(v)
	return _u
}

// SetNillableNeedsHumanAttention sets the "needs_human_attention" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableNeedsHumanAttention(v *bool) *ConversationUpdateOne {
	if v != nil {
		_u.SetNeedsHumanAttention(*v)
	}
	return _u
}

// SetHumanAttentionResolvedAt sets the "human_attention_resolved_at" field.
func (_u *ConversationUpdateOne) SetHumanAttentionResolvedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetHumanAttentionResolvedAt(v)
	return _u
}

// SetNillableHumanAttentionResolvedAt sets the "human_attention_resolved_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableHumanAttentionResolvedAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetHumanAttentionResolvedAt(*v)
	}
	return _u
}

// ClearHumanAttentionResolvedAt clears the value of the "human_attention_resolved_at" field.
func (_u *ConversationUpdateOne) ClearHumanAttentionResolvedAt() *ConversationUpdateOne {
	_u.mutation.ClearHumanAttentionResolvedAt()
	return _u
}

// SetLastUserMessageAt sets the "last_user_message_at" field.
func (_u *ConversationUpdateOne) SetLastUserMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastUserMessageAt(v)
	return _u
}

// SetNillableLastUserMessageAt sets the "last_user_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastUserMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastUserMessageAt(*v)
	}
	return _u
}

// ClearLastUserMessageAt clears the value of the "last_user_message_at" field.
func (_u *ConversationUpdateOne) ClearLastUserMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastUserMessageAt()
	return _u
}

// SetLastBotMessageAt sets the "last_bot_message_at" field.
func (_u *ConversationUpdateOne) SetLastBotMessageAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetLastBotMessageAt(v)
	return _u
}

// SetNillableLastBotMessageAt sets the "last_bot_message_at" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableLastBotMessageAt(v *time.Time) *ConversationUpdateOne {
	if v != nil {
		_u.SetLastBotMessageAt(*v)
	}
	return _u
}

// ClearLastBotMessageAt clears the value of the "last_bot_message_at" field.
func (_u *ConversationUpdateOne) ClearLastBotMessageAt() *ConversationUpdateOne {
	_u.mutation.ClearLastBotMessageAt()
	return _u
}

// SetFollowupCount24h sets the "followup_count_24h" field.
func (_u *ConversationUpdateOne) SetFollowupCount24h(v int) *ConversationUpdateOne {
	_u.mutation.ResetFollowupCount24h()
	_u.mutation.SetFollowupCount24h(v)
	return _u
}

// SetNillableFollowupCount24h sets the "followup_count_24h" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableFollowupCount24h(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetFollowupCount24h(*v)
	}
	return _u
}

// AddFollowupCount24h adds value to the "followup_count_24h" field.
func (_u *ConversationUpdateOne) AddFollowupCount24h(v int) *ConversationUpdateOne {
	_u.mutation.AddFollowupCount24h(v)
	return _u
}

// SetTotalNudges sets the "total_nudges" field.
func (_u *ConversationUpdateOne) SetTotalNudges(v int) *ConversationUpdateOne {
	_u.mutation.ResetTotalNudges()
	_u.mutation.SetTotalNudges(v)
	return _u
}

// SetNillableTotalNudges sets the "total_nudges" field if the given value is not nil.
func (_u *ConversationUpdateOne) SetNillableTotalNudges(v *int) *ConversationUpdateOne {
	if v != nil {
		_u.SetTotalNudges(*v)
	}
	return _u
}

// AddTotalNudges adds value to the "total_nudges" field.
func (_u *ConversationUpdateOne) AddTotalNudges(v int) *ConversationUpdateOne {
	_u.mutation.AddTotalNudges(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ConversationUpdateOne) SetUpdatedAt(v time.Time) *ConversationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_u *ConversationUpdateOne) AddMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) AddMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddScheduledActionIDs adds the "scheduled_actions" edge to the ScheduledAction entity by IDs.
func (_u *ConversationUpdateOne) AddScheduledActionIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.AddScheduledActionIDs(ids...)
	return _u
}

// AddScheduledActions adds the "scheduled_actions" edges to the ScheduledAction entity.
func (_u *ConversationUpdateOne) AddScheduledActions(v ...*ScheduledAction) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddScheduledActionIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_u *ConversationUpdateOne) Mutation() *ConversationMutation {
	return _u.mutation
}

// ClearMessages clears all "messages" edges to the Message entity.
func (_u *ConversationUpdateOne) ClearMessages() *ConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to Message entities by IDs.
func (_u *ConversationUpdateOne) RemoveMessageIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to Message entities.
func (_u *ConversationUpdateOne) RemoveMessages(v ...*Message) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearScheduledActions clears all "scheduled_actions" edges to the ScheduledAction entity.
func (_u *ConversationUpdateOne) ClearScheduledActions() *ConversationUpdateOne {
	_u.mutation.ClearScheduledActions()
	return _u
}

// RemoveScheduledActionIDs removes the "scheduled_actions" edge to ScheduledAction entities by IDs.
func (_u *ConversationUpdateOne) RemoveScheduledActionIDs(ids ...string) *ConversationUpdateOne {
	_u.mutation.RemoveScheduledActionIDs(ids...)
	return _u
}

// RemoveScheduledActions removes "scheduled_actions" edges to ScheduledAction entities.
func (_u *ConversationUpdateOne) RemoveScheduledActions(v ...*ScheduledAction) *ConversationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveScheduledActionIDs(ids...)
}

// Where appends a list predicates to the ConversationUpdate builder.
func (_u *ConversationUpdateOne) Where(ps ...predicate.Conversation) *ConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ConversationUpdateOne) Select(field string, fields ...string) *ConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Conversation entity.
func (_u *ConversationUpdateOne) Save(ctx context.Context) (*Conversation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ConversationUpdateOne) SaveX(ctx context.Context) *Conversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ConversationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := conversation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := conversation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Conversation.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Stage(); ok {
		if err := conversation.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Conversation.stage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntentLevel(); ok {
		if err := conversation.IntentLevelValidator(v); err != nil {
			return &ValidationError{Name: "intent_level", err: fmt.Errorf(`ent: validator failed for field "Conversation.intent_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserSentiment(); ok {
		if err := conversation.UserSentimentValidator(v); err != nil {
			return &ValidationError{Name: "user_sentiment", err: fmt.Errorf(`ent: validator failed for field "Conversation.user_sentiment": %w`, err)}
		}
	}
	if _u.mutation.LeadCleared() && len(_u.mutation.LeadIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Conversation.lead"`)
	}
	return nil
}

func (_u *ConversationUpdateOne) sqlSave(ctx context.Context) (_node *Conversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(conversation.Table, conversation.Columns, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Conversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, conversation.FieldID)
		for _, f := range fields {
			if !conversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != conversation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(conversation.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(conversation.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Stage(); ok {
		_spec.SetField(conversation.FieldStage, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.IntentLevel(); ok {
		_spec.SetField(conversation.FieldIntentLevel, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UserSentiment(); ok {
		_spec.SetField(conversation.FieldUserSentiment, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RollingSummary(); ok {
		_spec.SetField(conversation.FieldRollingSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.NeedsHumanAttention(); ok {
		_spec.SetField(conversation.FieldNeedsHumanAttention, field.TypeBool, value)
	}
	if value, ok := _u.mutation.HumanAttentionResolvedAt(); ok {
		_spec.SetField(conversation.FieldHumanAttentionResolvedAt, field.TypeTime, value)
	}
	if _u.mutation.HumanAttentionResolvedAtCleared() {
		_spec.ClearField(conversation.FieldHumanAttentionResolvedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastUserMessageAt(); ok {
		_spec.SetField(conversation.FieldLastUserMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastUserMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastUserMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastBotMessageAt(); ok {
		_spec.SetField(conversation.FieldLastBotMessageAt, field.TypeTime, value)
	}
	if _u.mutation.LastBotMessageAtCleared() {
		_spec.ClearField(conversation.FieldLastBotMessageAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FollowupCount24h(); ok {
		_spec.SetField(conversation.FieldFollowupCount24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFollowupCount24h(); ok {
		_spec.AddField(conversation.FieldFollowupCount24h, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalNudges(); ok {
		_spec.SetField(conversation.FieldTotalNudges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalNudges(); ok {
		_spec.AddField(conversation.FieldTotalNudges, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.MessagesTable,
			Columns: []string{conversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(message.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ScheduledActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedScheduledActionsIDs(); len(nodes) > 0 && !_u.mutation.ScheduledActionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ScheduledActionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   conversation.ScheduledActionsTable,
			Columns: []string{conversation.ScheduledActionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Conversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{conversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
