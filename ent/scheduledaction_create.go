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
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

// ScheduledActionCreate is the builder for creating a ScheduledAction entity.
type ScheduledActionCreate struct {
	config
	mutation *ScheduledActionMutation
	hooks    []Hook
}

// SetConversationID sets the "conversation_id" field.
func (_c *ScheduledActionCreate) SetConversationID(v string) *ScheduledActionCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ScheduledActionCreate) SetKind(v scheduledaction.Kind) *ScheduledActionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_c *ScheduledActionCreate) SetNillableKind(v *scheduledaction.Kind) *ScheduledActionCreate {
	if v != nil {
		_c.SetKind(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *ScheduledActionCreate) SetStatus(v scheduledaction.Status) *ScheduledActionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ScheduledActionCreate) SetNillableStatus(v *scheduledaction.Status) *ScheduledActionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFireAt sets the "fire_at" field.
func (_c *ScheduledActionCreate) SetFireAt(v time.Time) *ScheduledActionCreate {
	_c.mutation.SetFireAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ScheduledActionCreate) SetCreatedAt(v time.Time) *ScheduledActionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ScheduledActionCreate) SetNillableCreatedAt(v *time.Time) *ScheduledActionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetContext sets the "context" field.
func (_c *ScheduledActionCreate) SetContext(v map[string]interface{}) *ScheduledActionCreate {
	_c.mutation.SetContext(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ScheduledActionCreate) SetID(v string) *ScheduledActionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetConversation sets the "conversation" edge to the Conversation entity.
func (_c *ScheduledActionCreate) SetConversation(v *Conversation) *ScheduledActionCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ScheduledActionMutation object of the builder.
func (_c *ScheduledActionCreate) Mutation() *ScheduledActionMutation {
	return _c.mutation
}

// Save creates the ScheduledAction in the database.
func (_c *ScheduledActionCreate) Save(ctx context.Context) (*ScheduledAction, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ScheduledActionCreate) SaveX(ctx context.Context) *ScheduledAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledActionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledActionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ScheduledActionCreate) defaults() {
	if _, ok := _c.mutation.Kind(); !ok {
		v := scheduledaction.DefaultKind
		_c.mutation.SetKind(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := scheduledaction.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := scheduledaction.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ScheduledActionCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ScheduledAction.conversation_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ScheduledAction.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := scheduledaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ScheduledAction.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := scheduledaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FireAt(); !ok {
		return &ValidationError{Name: "fire_at", err: errors.New(`ent: missing required field "ScheduledAction.fire_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ScheduledAction.created_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ScheduledAction.conversation"`)}
	}
	return nil
}

func (_c *ScheduledActionCreate) sqlSave(ctx context.Context) (*ScheduledAction, error) {
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
			return nil, fmt.Errorf("unexpected ScheduledAction.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ScheduledActionCreate) createSpec() (*ScheduledAction, *sqlgraph.CreateSpec) {
	var (
		_node = &ScheduledAction{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(scheduledaction.Table, sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(scheduledaction.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(scheduledaction.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FireAt(); ok {
		_spec.SetField(scheduledaction.FieldFireAt, field.TypeTime, value)
		_node.FireAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(scheduledaction.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Context(); ok {
		_spec.SetField(scheduledaction.FieldContext, field.TypeJSON, value)
		_node.Context = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   scheduledaction.ConversationTable,
			Columns: []string{scheduledaction.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ScheduledActionCreateBulk is the builder for creating many ScheduledAction entities in bulk.
type ScheduledActionCreateBulk struct {
	config
	err      error
	builders []*ScheduledActionCreate
}

// Save creates the ScheduledAction entities in the database.
func (_c *ScheduledActionCreateBulk) Save(ctx context.Context) ([]*ScheduledAction, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ScheduledAction, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ScheduledActionMutation)
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
func (_c *ScheduledActionCreateBulk) SaveX(ctx context.Context) []*ScheduledAction {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ScheduledActionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ScheduledActionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
