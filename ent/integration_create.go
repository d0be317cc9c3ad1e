// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/leadline-ai/leadline/ent/integration"
)

// IntegrationCreate is the builder for creating a Integration entity.
type IntegrationCreate struct {
	config
	mutation *IntegrationMutation
	hooks    []Hook
}

// SetOrgID sets the "org_id" field.
func (_c *IntegrationCreate) SetOrgID(v string) *IntegrationCreate {
	_c.mutation.SetOrgID(v)
	return _c
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_c *IntegrationCreate) SetPhoneNumberID(v string) *IntegrationCreate {
	_c.mutation.SetPhoneNumberID(v)
	return _c
}

// SetAccessToken sets the "access_token" field.
func (_c *IntegrationCreate) SetAccessToken(v string) *IntegrationCreate {
	_c.mutation.SetAccessToken(v)
	return _c
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableAccessToken(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetAccessToken(*v)
	}
	return _c
}

// SetBusinessName sets the "business_name" field.
func (_c *IntegrationCreate) SetBusinessName(v string) *IntegrationCreate {
	_c.mutation.SetBusinessName(v)
	return _c
}

// SetBusinessDescription sets the "business_description" field.
func (_c *IntegrationCreate) SetBusinessDescription(v string) *IntegrationCreate {
	_c.mutation.SetBusinessDescription(v)
	return _c
}

// SetNillableBusinessDescription sets the "business_description" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableBusinessDescription(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetBusinessDescription(*v)
	}
	return _c
}

// SetFlowPrompt sets the "flow_prompt" field.
func (_c *IntegrationCreate) SetFlowPrompt(v string) *IntegrationCreate {
	_c.mutation.SetFlowPrompt(v)
	return _c
}

// SetNillableFlowPrompt sets the "flow_prompt" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableFlowPrompt(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetFlowPrompt(*v)
	}
	return _c
}

// SetCtas sets the "ctas" field.
func (_c *IntegrationCreate) SetCtas(v []map[string]interface{}) *IntegrationCreate {
	_c.mutation.SetCtas(v)
	return _c
}

// SetLanguagePref sets the "language_pref" field.
func (_c *IntegrationCreate) SetLanguagePref(v string) *IntegrationCreate {
	_c.mutation.SetLanguagePref(v)
	return _c
}

// SetNillableLanguagePref sets the "language_pref" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableLanguagePref(v *string) *IntegrationCreate {
	if v != nil {
		_c.SetLanguagePref(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *IntegrationCreate) SetCreatedAt(v time.Time) *IntegrationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *IntegrationCreate) SetNillableCreatedAt(v *time.Time) *IntegrationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *IntegrationCreate) SetID(v string) *IntegrationCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the IntegrationMutation object of the builder.
func (_c *IntegrationCreate) Mutation() *IntegrationMutation {
	return _c.mutation
}

// Save creates the Integration in the database.
func (_c *IntegrationCreate) Save(ctx context.Context) (*Integration, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *IntegrationCreate) SaveX(ctx context.Context) *Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *IntegrationCreate) defaults() {
	if _, ok := _c.mutation.LanguagePref(); !ok {
		v := integration.DefaultLanguagePref
		_c.mutation.SetLanguagePref(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := integration.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *IntegrationCreate) check() error {
	if _, ok := _c.mutation.OrgID(); !ok {
		return &ValidationError{Name: "org_id", err: errors.New(`ent: missing required field "Integration.org_id"`)}
	}
	if _, ok := _c.mutation.PhoneNumberID(); !ok {
		return &ValidationError{Name: "phone_number_id", err: errors.New(`ent: missing required field "Integration.phone_number_id"`)}
	}
	if _, ok := _c.mutation.BusinessName(); !ok {
		return &ValidationError{Name: "business_name", err: errors.New(`ent: missing required field "Integration.business_name"`)}
	}
	if _, ok := _c.mutation.LanguagePref(); !ok {
		return &ValidationError{Name: "language_pref", err: errors.New(`ent: missing required field "Integration.language_pref"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Integration.created_at"`)}
	}
	return nil
}

func (_c *IntegrationCreate) sqlSave(ctx context.Context) (*Integration, error) {
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
			return nil, fmt.Errorf("unexpected Integration.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *IntegrationCreate) createSpec() (*Integration, *sqlgraph.CreateSpec) {
	var (
		_node = &Integration{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(integration.Table, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OrgID(); ok {
		_spec.SetField(integration.FieldOrgID, field.TypeString, value)
		_node.OrgID = value
	}
	if value, ok := _c.mutation.PhoneNumberID(); ok {
		_spec.SetField(integration.FieldPhoneNumberID, field.TypeString, value)
		_node.PhoneNumberID = value
	}
	if value, ok := _c.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
		_node.AccessToken = value
	}
	if value, ok := _c.mutation.BusinessName(); ok {
		_spec.SetField(integration.FieldBusinessName, field.TypeString, value)
		_node.BusinessName = value
	}
	if value, ok := _c.mutation.BusinessDescription(); ok {
		_spec.SetField(integration.FieldBusinessDescription, field.TypeString, value)
		_node.BusinessDescription = value
	}
	if value, ok := _c.mutation.FlowPrompt(); ok {
		_spec.SetField(integration.FieldFlowPrompt, field.TypeString, value)
		_node.FlowPrompt = value
	}
	if value, ok := _c.mutation.Ctas(); ok {
		_spec.SetField(integration.FieldCtas, field.TypeJSON, value)
		_node.Ctas = value
	}
	if value, ok := _c.mutation.LanguagePref(); ok {
		_spec.SetField(integration.FieldLanguagePref, field.TypeString, value)
		_node.LanguagePref = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(integration.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// IntegrationCreateBulk is the builder for creating many Integration entities in bulk.
type IntegrationCreateBulk struct {
	config
	err      error
	builders []*IntegrationCreate
}

// Save creates the Integration entities in the database.
func (_c *IntegrationCreateBulk) Save(ctx context.Context) ([]*Integration, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Integration, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*IntegrationMutation)
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
func (_c *IntegrationCreateBulk) SaveX(ctx context.Context) []*Integration {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *IntegrationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *IntegrationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
