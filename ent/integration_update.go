// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/leadline-ai/leadline/ent/integration"
	"github.com/leadline-ai/leadline/ent/predicate"
)

// IntegrationUpdate is the builder for updating Integration entities.
type IntegrationUpdate struct {
	config
	hooks    []Hook
	mutation *IntegrationMutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdate) Where(ps ...predicate.Integration) *IntegrationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOrgID sets the "org_id" field.
func (_u *IntegrationUpdate) SetOrgID(v string) *IntegrationUpdate {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableOrgID(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_u *IntegrationUpdate) SetPhoneNumberID(v string) *IntegrationUpdate {
	_u.mutation.SetPhoneNumberID(v)
	return _u
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillablePhoneNumberID(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetPhoneNumberID(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *IntegrationUpdate) SetAccessToken(v string) *IntegrationUpdate {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableAccessToken(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *IntegrationUpdate) ClearAccessToken() *IntegrationUpdate {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *IntegrationUpdate) SetBusinessName(v string) *IntegrationUpdate {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableBusinessName(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetBusinessDescription sets the "business_description" field.
func (_u *IntegrationUpdate) SetBusinessDescription(v string) *IntegrationUpdate {
	_u.mutation.SetBusinessDescription(v)
	return _u
}

// SetNillableBusinessDescription sets the "business_description" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableBusinessDescription(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetBusinessDescription(*v)
	}
	return _u
}

// ClearBusinessDescription clears the value of the "business_description" field.
func (_u *IntegrationUpdate) ClearBusinessDescription() *IntegrationUpdate {
	_u.mutation.ClearBusinessDescription()
	return _u
}

// SetFlowPrompt sets the "flow_prompt" field.
func (_u *IntegrationUpdate) SetFlowPrompt(v string) *IntegrationUpdate {
	_u.mutation.SetFlowPrompt(v)
	return _u
}

// SetNillableFlowPrompt sets the "flow_prompt" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableFlowPrompt(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetFlowPrompt(*v)
	}
	return _u
}

// ClearFlowPrompt clears the value of the "flow_prompt" field.
func (_u *IntegrationUpdate) ClearFlowPrompt() *IntegrationUpdate {
	_u.mutation.ClearFlowPrompt()
	return _u
}

// SetCtas sets the "ctas" field.
func (_u *IntegrationUpdate) SetCtas(v []map[string]interface{}) *IntegrationUpdate {
	_u.mutation.SetCtas(v)
	return _u
}

// AppendCtas appends value to the "ctas" field.
func (_u *IntegrationUpdate) AppendCtas(v []map[string]interface{}) *IntegrationUpdate {
	_u.mutation.AppendCtas(v)
	return _u
}

// ClearCtas clears the value of the "ctas" field.
func (_u *IntegrationUpdate) ClearCtas() *IntegrationUpdate {
	_u.mutation.ClearCtas()
	return _u
}

// SetLanguagePref sets the "language_pref" field.
func (_u *IntegrationUpdate) SetLanguagePref(v string) *IntegrationUpdate {
	_u.mutation.SetLanguagePref(v)
	return _u
}

// SetNillableLanguagePref sets the "language_pref" field if the given value is not nil.
func (_u *IntegrationUpdate) SetNillableLanguagePref(v *string) *IntegrationUpdate {
	if v != nil {
		_u.SetLanguagePref(*v)
	}
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdate) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *IntegrationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *IntegrationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntegrationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OrgID(); ok {
		_spec.SetField(integration.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumberID(); ok {
		_spec.SetField(integration.FieldPhoneNumberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(integration.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(integration.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessDescription(); ok {
		_spec.SetField(integration.FieldBusinessDescription, field.TypeString, value)
	}
	if _u.mutation.BusinessDescriptionCleared() {
		_spec.ClearField(integration.FieldBusinessDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FlowPrompt(); ok {
		_spec.SetField(integration.FieldFlowPrompt, field.TypeString, value)
	}
	if _u.mutation.FlowPromptCleared() {
		_spec.ClearField(integration.FieldFlowPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Ctas(); ok {
		_spec.SetField(integration.FieldCtas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCtas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integration.FieldCtas, value)
		})
	}
	if _u.mutation.CtasCleared() {
		_spec.ClearField(integration.FieldCtas, field.TypeJSON)
	}
	if value, ok := _u.mutation.LanguagePref(); ok {
		_spec.SetField(integration.FieldLanguagePref, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// IntegrationUpdateOne is the builder for updating a single Integration entity.
type IntegrationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *IntegrationMutation
}

// SetOrgID sets the "org_id" field.
func (_u *IntegrationUpdateOne) SetOrgID(v string) *IntegrationUpdateOne {
	_u.mutation.SetOrgID(v)
	return _u
}

// SetNillableOrgID sets the "org_id" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableOrgID(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetOrgID(*v)
	}
	return _u
}

// SetPhoneNumberID sets the "phone_number_id" field.
func (_u *IntegrationUpdateOne) SetPhoneNumberID(v string) *IntegrationUpdateOne {
	_u.mutation.SetPhoneNumberID(v)
	return _u
}

// SetNillablePhoneNumberID sets the "phone_number_id" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillablePhoneNumberID(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetPhoneNumberID(*v)
	}
	return _u
}

// SetAccessToken sets the "access_token" field.
func (_u *IntegrationUpdateOne) SetAccessToken(v string) *IntegrationUpdateOne {
	_u.mutation.SetAccessToken(v)
	return _u
}

// SetNillableAccessToken sets the "access_token" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableAccessToken(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetAccessToken(*v)
	}
	return _u
}

// ClearAccessToken clears the value of the "access_token" field.
func (_u *IntegrationUpdateOne) ClearAccessToken() *IntegrationUpdateOne {
	_u.mutation.ClearAccessToken()
	return _u
}

// SetBusinessName sets the "business_name" field.
func (_u *IntegrationUpdateOne) SetBusinessName(v string) *IntegrationUpdateOne {
	_u.mutation.SetBusinessName(v)
	return _u
}

// SetNillableBusinessName sets the "business_name" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableBusinessName(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetBusinessName(*v)
	}
	return _u
}

// SetBusinessDescription sets the "business_description" field.
func (_u *IntegrationUpdateOne) SetBusinessDescription(v string) *IntegrationUpdateOne {
	_u.mutation.SetBusinessDescription(v)
	return _u
}

// SetNillableBusinessDescription sets the "business_description" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableBusinessDescription(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetBusinessDescription(*v)
	}
	return _u
}

// ClearBusinessDescription clears the value of the "business_description" field.
func (_u *IntegrationUpdateOne) ClearBusinessDescription() *IntegrationUpdateOne {
	_u.mutation.ClearBusinessDescription()
	return _u
}

// SetFlowPrompt sets the "flow_prompt" field.
func (_u *IntegrationUpdateOne) SetFlowPrompt(v string) *IntegrationUpdateOne {
	_u.mutation.SetFlowPrompt(v)
	return _u
}

// SetNillableFlowPrompt sets the "flow_prompt" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableFlowPrompt(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetFlowPrompt(*v)
	}
	return _u
}

// ClearFlowPrompt clears the value of the "flow_prompt" field.
func (_u *IntegrationUpdateOne) ClearFlowPrompt() *IntegrationUpdateOne {
	_u.mutation.ClearFlowPrompt()
	return _u
}

// SetCtas sets the "ctas" field.
func (_u *IntegrationUpdateOne) SetCtas(v []map[string]interface{}) *IntegrationUpdateOne {
	_u.mutation.SetCtas(v)
	return _u
}

// AppendCtas appends value to the "ctas" field.
func (_u *IntegrationUpdateOne) AppendCtas(v []map[string]interface{}) *IntegrationUpdateOne {
	_u.mutation.AppendCtas(v)
	return _u
}

// ClearCtas clears the value of the "ctas" field.
func (_u *IntegrationUpdateOne) ClearCtas() *IntegrationUpdateOne {
	_u.mutation.ClearCtas()
	return _u
}

// SetLanguagePref sets the "language_pref" field.
func (_u *IntegrationUpdateOne) SetLanguagePref(v string) *IntegrationUpdateOne {
	_u.mutation.SetLanguagePref(v)
	return _u
}

// SetNillableLanguagePref sets the "language_pref" field if the given value is not nil.
func (_u *IntegrationUpdateOne) SetNillableLanguagePref(v *string) *IntegrationUpdateOne {
	if v != nil {
		_u.SetLanguagePref(*v)
	}
	return _u
}

// Mutation returns the IntegrationMutation object of the builder.
func (_u *IntegrationUpdateOne) Mutation() *IntegrationMutation {
	return _u.mutation
}

// Where appends a list predicates to the IntegrationUpdate builder.
func (_u *IntegrationUpdateOne) Where(ps ...predicate.Integration) *IntegrationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *IntegrationUpdateOne) Select(field string, fields ...string) *IntegrationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Integration entity.
func (_u *IntegrationUpdateOne) Save(ctx context.Context) (*Integration, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *IntegrationUpdateOne) SaveX(ctx context.Context) *Integration {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *IntegrationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *IntegrationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *IntegrationUpdateOne) sqlSave(ctx context.Context) (_node *Integration, err error) {
	_spec := sqlgraph.NewUpdateSpec(integration.Table, integration.Columns, sqlgraph.NewFieldSpec(integration.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Integration.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, integration.FieldID)
		for _, f := range fields {
			if !integration.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != integration.FieldID {
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
		_spec.SetField(integration.FieldOrgID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PhoneNumberID(); ok {
		_spec.SetField(integration.FieldPhoneNumberID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AccessToken(); ok {
		_spec.SetField(integration.FieldAccessToken, field.TypeString, value)
	}
	if _u.mutation.AccessTokenCleared() {
		_spec.ClearField(integration.FieldAccessToken, field.TypeString)
	}
	if value, ok := _u.mutation.BusinessName(); ok {
		_spec.SetField(integration.FieldBusinessName, field.TypeString, value)
	}
	if value, ok := _u.mutation.BusinessDescription(); ok {
		_spec.SetField(integration.FieldBusinessDescription, field.TypeString, value)
	}
	if _u.mutation.BusinessDescriptionCleared() {
		_spec.ClearField(integration.FieldBusinessDescription, field.TypeString)
	}
	if value, ok := _u.mutation.FlowPrompt(); ok {
		_spec.SetField(integration.FieldFlowPrompt, field.TypeString, value)
	}
	if _u.mutation.FlowPromptCleared() {
		_spec.ClearField(integration.FieldFlowPrompt, field.TypeString)
	}
	if value, ok := _u.mutation.Ctas(); ok {
		_spec.SetField(integration.FieldCtas, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCtas(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, integration.FieldCtas, value)
		})
	}
	if _u.mutation.CtasCleared() {
		_spec.ClearField(integration.FieldCtas, field.TypeJSON)
	}
	if value, ok := _u.mutation.LanguagePref(); ok {
		_spec.SetField(integration.FieldLanguagePref, field.TypeString, value)
	}
	_node = &Integration{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{integration.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
