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
	"github.com/leadline-ai/leadline/ent/predicate"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
)

// ScheduledActionUpdate is the builder for updating ScheduledAction entities.
type ScheduledActionUpdate struct {
	config
	hooks    []Hook
	mutation *ScheduledActionMutation
}

// Where appends a list predicates to the ScheduledActionUpdate builder.
func (_u *ScheduledActionUpdate) Where(ps ...predicate.ScheduledAction) *ScheduledActionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *ScheduledActionUpdate) SetKind(v scheduledaction.Kind) *ScheduledActionUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledActionUpdate) SetNillableKind(v *scheduledaction.Kind) *ScheduledActionUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledActionUpdate) SetStatus(v scheduledaction.Status) *ScheduledActionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledActionUpdate) SetNillableStatus(v *scheduledaction.Status) *ScheduledActionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFireAt sets the "fire_at" field.
func (_u *ScheduledActionUpdate) SetFireAt(v time.Time) *ScheduledActionUpdate {
	_u.mutation.SetFireAt(v)
	return _u
}

// SetNillableFireAt sets the "fire_at" field if the given value is not nil.
func (_u *ScheduledActionUpdate) SetNillableFireAt(v *time.Time) *ScheduledActionUpdate {
	if v != nil {
		_u.SetFireAt(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ScheduledActionUpdate) SetContext(v map[string]interface{}) *ScheduledActionUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ScheduledActionUpdate) ClearContext() *ScheduledActionUpdate {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the ScheduledActionMutation object of the builder.
func (_u *ScheduledActionUpdate) Mutation() *ScheduledActionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ScheduledActionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledActionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ScheduledActionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledActionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledActionUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledAction.conversation"`)
	}
	return nil
}

func (_u *ScheduledActionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledaction.Table, scheduledaction.Columns, sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledaction.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FireAt(); ok {
		_spec.SetField(scheduledaction.FieldFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(scheduledaction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(scheduledaction.FieldContext, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ScheduledActionUpdateOne is the builder for updating a single ScheduledAction entity.
type ScheduledActionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ScheduledActionMutation
}

// SetKind sets the "kind" field.
func (_u *ScheduledActionUpdateOne) SetKind(v scheduledaction.Kind) *ScheduledActionUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ScheduledActionUpdateOne) SetNillableKind(v *scheduledaction.Kind) *ScheduledActionUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *ScheduledActionUpdateOne) SetStatus(v scheduledaction.Status) *ScheduledActionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ScheduledActionUpdateOne) SetNillableStatus(v *scheduledaction.Status) *ScheduledActionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFireAt sets the "fire_at" field.
func (_u *ScheduledActionUpdateOne) SetFireAt(v time.Time) *ScheduledActionUpdateOne {
	_u.mutation.SetFireAt(v)
	return _u
}

// SetNillableFireAt sets the "fire_at" field if the given value is not nil.
func (_u *ScheduledActionUpdateOne) SetNillableFireAt(v *time.Time) *ScheduledActionUpdateOne {
	if v != nil {
		_u.SetFireAt(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *ScheduledActionUpdateOne) SetContext(v map[string]interface{}) *ScheduledActionUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *ScheduledActionUpdateOne) ClearContext() *ScheduledActionUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// Mutation returns the ScheduledActionMutation object of the builder.
func (_u *ScheduledActionUpdateOne) Mutation() *ScheduledActionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ScheduledActionUpdate builder.
func (_u *ScheduledActionUpdateOne) Where(ps ...predicate.ScheduledAction) *ScheduledActionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ScheduledActionUpdateOne) Select(field string, fields ...string) *ScheduledActionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ScheduledAction entity.
func (_u *ScheduledActionUpdateOne) Save(ctx context.Context) (*ScheduledAction, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ScheduledActionUpdateOne) SaveX(ctx context.Context) *ScheduledAction {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ScheduledActionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ScheduledActionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ScheduledActionUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := scheduledaction.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := scheduledaction.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ScheduledAction.status": %w`, err)}
		}
	}
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ScheduledAction.conversation"`)
	}
	return nil
}

func (_u *ScheduledActionUpdateOne) sqlSave(ctx context.Context) (_node *ScheduledAction, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(scheduledaction.Table, scheduledaction.Columns, sqlgraph.NewFieldSpec(scheduledaction.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ScheduledAction.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, scheduledaction.FieldID)
		for _, f := range fields {
			if !scheduledaction.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != scheduledaction.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(scheduledaction.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(scheduledaction.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FireAt(); ok {
		_spec.SetField(scheduledaction.FieldFireAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(scheduledaction.FieldContext, field.TypeJSON, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(scheduledaction.FieldContext, field.TypeJSON)
	}
	_node = &ScheduledAction{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{scheduledaction.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
