// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/lead"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

// ConversationCreate is the builder for creating a Conversation entity.
type ConversationCreate struct {
	config
	mutation *ConversationMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *ConversationCreate) SetOrgID(v string) *ConversationCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetLeadID sets the "lead_id" field.
func (_c *ConversationCreate) SetLeadID(v string) *ConversationCreate {
	_c.mutation.SetLeadID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *ConversationCreate) SetMode(v conversation.Mode) *ConversationCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableMode(v *conversation.Mode) *ConversationCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetStage sets the "stage" field.
func (_c *ConversationCreate) SetStage(v conversation.Stage) *ConversationCreate {
	_c.mutation.SetStage(v)
	return _c
}

// SetNillableStage sets the "stage" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableStage(v *conversation.Stage) *ConversationCreate {
	if v != nil {
		_c.SetStage(*v)
	}
	return _c
}

// SetIntentLevel sets the "intent_level" field.
func (_c *ConversationCreate) SetIntentLevel(v conversation.IntentLevel) *ConversationCreate {
	_c.mutation.SetIntentLevel(v)
	return _c
}

// SetNillableIntentLevel sets the "intent_level" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableIntentLevel(v *conversation.IntentLevel) *ConversationCreate {
	if v != nil {
		_c.SetIntentLevel(*v)
	}
	return _c
}

// SetUserSentiment sets the "user_sentiment" field.
func (_c *ConversationCreate) SetUserSentiment(v conversation.UserSentiment) *ConversationCreate {
	_c.mutation.SetUserSentiment(v)
	return _c
}

// SetNillableUserSentiment sets the "user_sentiment" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUserSentiment(v *conversation.UserSentiment) *ConversationCreate {
	if v != nil {
		_c.SetUserSentiment(*v)
	}
	return _c
}

// SetRollingSummary sets the "rolling_summary" field.
func (_c *ConversationCreate) SetRollingSummary(v string) *ConversationCreate {
	_c.mutation.SetRollingSummary(v)
	return _c
}

// SetNillableRollingSummary sets the "rolling_summary" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableRollingSummary(v *string) *ConversationCreate {
	if v != nil {
		_c.SetRollingSummary(*v)
	}
	return _c
}

// SetNeedsHumanAttention sets the "needs_human_attention" field.
func (_c *ConversationCreate) SetNeedsHumanAttention(v bool) *ConversationCreate {
	_c.mutation.SetNeedsHumanAttention(v)
	return _c
}

// SetNillableNeedsHumanAttention sets the "needs_human_attention" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableNeedsHumanAttention(v *bool) *ConversationCreate {
	if v != nil {
		_c.SetNeedsHumanAttention(*v)
	}
	return _c
}

// SetHumanAttentionResolvedAt sets the "human_attention_resolved_at" field.
func (_c *ConversationCreate) SetHumanAttentionResolvedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetHumanAttentionResolvedAt(v)
	return _c
}

// SetNillableHumanAttentionResolvedAt sets the "human_attention_resolved_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableHumanAttentionResolvedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetHumanAttentionResolvedAt(*v)
	}
	return _c
}

// SetLastUserMessageAt sets the "last_user_message_at" field.
func (_c *ConversationCreate) SetLastUserMessageAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastUserMessageAt(v)
	return _c
}

// SetNillableLastUserMessageAt sets the "last_user_message_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastUserMessageAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastUserMessageAt(*v)
	}
	return _c
}

// SetLastBotMessageAt sets the "last_bot_message_at" field.
func (_c *ConversationCreate) SetLastBotMessageAt(v time.Time) *ConversationCreate {
	_c.mutation.SetLastBotMessageAt(v)
	return _c
}

// SetNillableLastBotMessageAt sets the "last_bot_message_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableLastBotMessageAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetLastBotMessageAt(*v)
	}
	return _c
}

// SetFollowupCount24h sets the "followup_count_24h" field.
func (_c *ConversationCreate) SetFollowupCount24h(v int) *ConversationCreate {
	_c.mutation.SetFollowupCount24h(v)
	return _c
}

// SetNillableFollowupCount24h sets the "followup_count_24h" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableFollowupCount24h(v *int) *ConversationCreate {
	if v != nil {
		_c.SetFollowupCount24h(*v)
	}
	return _c
}

// SetTotalNudges sets the "total_nudges" field.
func (_c *ConversationCreate) SetTotalNudges(v int) *ConversationCreate {
	_c.mutation.SetTotalNudges(v)
	return _c
}

// SetNillableTotalNudges sets the "total_nudges" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableTotalNudges(v *int) *ConversationCreate {
	if v != nil {
		_c.SetTotalNudges(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ConversationCreate) SetCreatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableCreatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ConversationCreate) SetUpdatedAt(v time.Time) *ConversationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ConversationCreate) SetNillableUpdatedAt(v *time.Time) *ConversationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ConversationCreate) SetID(v string) *ConversationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetLead sets the "lead" edge to the Lead entity.
func (_c *ConversationCreate) SetLead(v *Lead) *ConversationCreate {
	return _c.SetLeadID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the Message entity by IDs.
func (_c *ConversationCreate) AddMessageIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the Message entity.
func (_c *ConversationCreate) AddMessages(v ...*Message) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddScheduledActionIDs adds the "scheduled_actions" edge to the ScheduledAction entity by IDs.
func (_c *ConversationCreate) AddScheduledActionIDs(ids ...string) *ConversationCreate {
	_c.mutation.AddScheduledActionIDs(ids...)
	return _c
}

// AddScheduledActions adds the "scheduled_actions" edges to the ScheduledAction entity.
func (_c *ConversationCreate) AddScheduledActions(v ...*ScheduledAction) *ConversationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddScheduledActionIDs(ids...)
}

// Mutation returns the ConversationMutation object of the builder.
func (_c *ConversationCreate) Mutation() *ConversationMutation {
	return _c.mutation
}

// Save creates the Conversation in the database.
func (_c *ConversationCreate) Save(ctx context.Context) (*Conversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ConversationCreate) SaveX(ctx context.Context) *Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ConversationCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := conversation.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Stage(); !ok {
		v := conversation.DefaultStage
		_c.mutation.SetStage(v)
	}
	if _, ok := _c.mutation.IntentLevel(); !ok {
		v := conversation.DefaultIntentLevel
		_c.mutation.SetIntentLevel(v)
	}
	if _, ok := _c.mutation.UserSentiment(); !ok {
		v := conversation.DefaultUserSentiment
		_c.mutation.SetUserSentiment(v)
	}
	if _, ok := _c.mutation.RollingSummary(); !ok {
		v := conversation.DefaultRollingSummary
		_c.mutation.SetRollingSummary(v)
	}
	if _, ok := _c.mutation.NeedsHumanAttention(); !ok {
		v := conversation.DefaultNeedsHumanAttention
		_c.mutation.SetNeedsHumanAttention(v)
	}
	if _, ok := _c.mutation.FollowupCount24h(); !ok {
		v := conversation.DefaultFollowupCount24h
		_c.mutation.SetFollowupCount24h(v)
	}
	if _, ok := _c.mutation.TotalNudges(); !ok {
		v := conversation.DefaultTotalNudges
		_c.mutation.SetTotalNudges(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := conversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := conversation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ConversationCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Conversation.org_id"`)}
	}
	if _, ok := _c.mutation.LeadID(); !ok {
		return &ValidationError{Name: "lead_id", err: errors.New(`ent: missing required field "Conversation.lead_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Conversation.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := conversation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Conversation.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stage(); !ok {
		return &ValidationError{Name: "stage", err: errors.New(`ent: missing required field "Conversation.stage"`)}
	}
	if v, ok := _c.mutation.Stage(); ok {
		if err := conversation.StageValidator(v); err != nil {
			return &ValidationError{Name: "stage", err: fmt.Errorf(`ent: validator failed for field "Conversation.stage": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntentLevel(); !ok {
		return &ValidationError{Name: "intent_level", err: errors.New(`ent: missing required field "Conversation.intent_level"`)}
	}
	if v, ok := _c.mutation.IntentLevel(); ok {
		if err := conversation.IntentLevelValidator(v); err != nil {
			return &ValidationError{Name: "intent_level", err: fmt.Errorf(`ent: validator failed for field "Conversation.intent_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserSentiment(); !ok {
		return &ValidationError{Name: "user_sentiment", err: errors.New(`ent: missing required field "Conversation.user_sentiment"`)}
	}
	if v, ok := _c.mutation.UserSentiment(); ok {
		if err := conversation.UserSentimentValidator(v); err != nil {
			return &ValidationError{Name: "user_sentiment", err: fmt.Errorf(`ent: validator failed for field "Conversation.user_sentiment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RollingSummary(); !ok {
		return &ValidationError{Name: "rolling_summary", err: errors.New(`ent: missing required field "Conversation.rolling_summary"`)}
	}
	if _, ok := _c.mutation.NeedsHumanAttention(); !ok {
		return &ValidationError{Name: "needs_human_attention", err: errors.New(`ent: missing required field "Conversation.needs_human_attention"`)}
	}
	if _, ok := _c.mutation.FollowupCount24h(); !ok {
		return &ValidationError{Name: "followup_count_24h", err: errors.New(`ent: missing required field "Conversation.followup_count_24h"`)}
	}
	if _, ok := _c.mutation.TotalNudges(); !ok {
		return &ValidationError{Name: "total_nudges", err: errors.New(`ent: missing required field "Conversation.total_nudges"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Conversation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Conversation.updated_at"`)}
	}
	if len(_c.mutation.LeadIDs()) == 0 {
		return &ValidationError{Name: "lead", err: errors.New(`ent: missing required edge "Conversation.lead"`)}
	}
	return nil
}

func (_c *ConversationCreate) sqlSave(ctx context.Context) (*Conversation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Conversation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ConversationCreate) createSpec() (*Conversation, *sqlgraph.CreateSpec) {
	var (
		_node = &Conversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(conversation.Table, sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(conversation.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(conversation.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Stage(); ok {
		_spec.SetField(conversation.FieldStage, field.TypeEnum, value)
		_node.Stage = value
	}
	if value, ok := _c.mutation.IntentLevel(); ok {
		_spec.SetField(conversation.FieldIntentLevel, field.TypeEnum, value)
		_node.IntentLevel = value
	}
	if value, ok := _c.mutation.UserSentiment(); ok {
		_spec.SetField(conversation.FieldUserSentiment, field.TypeEnum, value)
		_node.UserSentiment = value
	}
	if value, ok := _c.mutation.RollingSummary(); ok {
		_spec.SetField(conversation.FieldRollingSummary, field.TypeString, value)
		_node.RollingSummary = value
	}
	if value, ok := _c.mutation.NeedsHumanAttention(); ok {
		_spec.SetField(conversation.FieldNeedsHumanAttention, field.TypeBool, value)
		_node.NeedsHumanAttention = value
	}
	if value, ok := _c.mutation.HumanAttentionResolvedAt(); ok {
		_spec.SetField(conversation.FieldHumanAttentionResolvedAt, field.TypeTime, value)
		_node.HumanAttentionResolvedAt = &value
	}
	if value, ok := _c.mutation.LastUserMessageAt(); ok {
		_spec.SetField(conversation.FieldLastUserMessageAt, field.TypeTime, value)
		_node.LastUserMessageAt = &value
	}
	if value, ok := _c.mutation.LastBotMessageAt(); ok {
		_spec.SetField(conversation.FieldLastBotMessageAt, field.TypeTime, value)
		_node.LastBotMessageAt = &value
	}
	if value, ok := _c.mutation.FollowupCount24h(); ok {
		_spec.SetField(conversation.FieldFollowupCount24h, field.TypeInt, value)
		_node.FollowupCount24h = value
	}
	if value, ok := _c.mutation.TotalNudges(); ok {
		_spec.SetField(conversation.FieldTotalNudges, field.TypeInt, value)
		_node.TotalNudges = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(conversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(conversation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.LeadIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   conversation.LeadTable,
			Columns: []string{conversation.LeadColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(lead.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.LeadID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ScheduledActionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ConversationCreateBulk is the builder for creating many Conversation entities in bulk.
type ConversationCreateBulk struct {
	config
	err      error
	builders []*ConversationCreate
}

// Save creates the Conversation entities in the database.
func (_c *ConversationCreateBulk) Save(ctx context.Context) ([]*Conversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Conversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ConversationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ConversationCreateBulk) SaveX(ctx context.Context) []*Conversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
