// Code generated by ent, DO NOT EDIT.

package integration

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/leadline-ai/leadline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldID, id))
}

// OrgID applies equality check predicate on the "org_id" field. It's identical to OrgIDEQ.
func OrgID(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldOrgID, v))
}

// PhoneNumberID applies equality check predicate on the "phone_number_id" field. It's identical to PhoneNumberIDEQ.
func PhoneNumberID(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldPhoneNumberID, v))
}

// AccessToken applies equality check predicate on the "access_token" field. It's identical to AccessTokenEQ.
func AccessToken(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldAccessToken, v))
}

// BusinessName applies equality check predicate on the "business_name" field. It's identical to BusinessNameEQ.
func BusinessName(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessDescription applies equality check predicate on the "business_description" field. It's identical to BusinessDescriptionEQ.
func BusinessDescription(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldBusinessDescription, v))
}

// FlowPrompt applies equality check predicate on the "flow_prompt" field. It's identical to FlowPromptEQ.
func FlowPrompt(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldFlowPrompt, v))
}

// LanguagePref applies equality check predicate on the "language_pref" field. It's identical to LanguagePrefEQ.
func LanguagePref(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldLanguagePref, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldCreatedAt, v))
}

// OrgIDEQ applies the EQ predicate on the "org_id" field.
func OrgIDEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldOrgID, v))
}

// OrgIDNEQ applies the NEQ predicate on the "org_id" field.
func OrgIDNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldOrgID, v))
}

// OrgIDIn applies the In predicate on the "org_id" field.
func OrgIDIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldOrgID, vs...))
}

// OrgIDNotIn applies the NotIn predicate on the "org_id" field.
func OrgIDNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldOrgID, vs...))
}

// OrgIDGT applies the GT predicate on the "org_id" field.
func OrgIDGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldOrgID, v))
}

// OrgIDGTE applies the GTE predicate on the "org_id" field.
func OrgIDGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldOrgID, v))
}

// OrgIDLT applies the LT predicate on the "org_id" field.
func OrgIDLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldOrgID, v))
}

// OrgIDLTE applies the LTE predicate on the "org_id" field.
func OrgIDLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldOrgID, v))
}

// OrgIDContains applies the Contains predicate on the "org_id" field.
func OrgIDContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldOrgID, v))
}

// OrgIDHasPrefix applies the HasPrefix predicate on the "org_id" field.
func OrgIDHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldOrgID, v))
}

// OrgIDHasSuffix applies the HasSuffix predicate on the "org_id" field.
func OrgIDHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldOrgID, v))
}

// OrgIDEqualFold applies the EqualFold predicate on the "org_id" field.
func OrgIDEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldOrgID, v))
}

// OrgIDContainsFold applies the ContainsFold predicate on the "org_id" field.
func OrgIDContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldOrgID, v))
}

// PhoneNumberIDEQ applies the EQ predicate on the "phone_number_id" field.
func PhoneNumberIDEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDNEQ applies the NEQ predicate on the "phone_number_id" field.
func PhoneNumberIDNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldPhoneNumberID, v))
}

// PhoneNumberIDIn applies the In predicate on the "phone_number_id" field.
func PhoneNumberIDIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDNotIn applies the NotIn predicate on the "phone_number_id" field.
func PhoneNumberIDNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldPhoneNumberID, vs...))
}

// PhoneNumberIDGT applies the GT predicate on the "phone_number_id" field.
func PhoneNumberIDGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldPhoneNumberID, v))
}

// PhoneNumberIDGTE applies the GTE predicate on the "phone_number_id" field.
func PhoneNumberIDGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldPhoneNumberID, v))
}

// PhoneNumberIDLT applies the LT predicate on the "phone_number_id" field.
func PhoneNumberIDLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldPhoneNumberID, v))
}

// PhoneNumberIDLTE applies the LTE predicate on the "phone_number_id" field.
func PhoneNumberIDLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldPhoneNumberID, v))
}

// PhoneNumberIDContains applies the Contains predicate on the "phone_number_id" field.
func PhoneNumberIDContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldPhoneNumberID, v))
}

// PhoneNumberIDHasPrefix applies the HasPrefix predicate on the "phone_number_id" field.
func PhoneNumberIDHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldPhoneNumberID, v))
}

// PhoneNumberIDHasSuffix applies the HasSuffix predicate on the "phone_number_id" field.
func PhoneNumberIDHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldPhoneNumberID, v))
}

// PhoneNumberIDEqualFold applies the EqualFold predicate on the "phone_number_id" field.
func PhoneNumberIDEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldPhoneNumberID, v))
}

// PhoneNumberIDContainsFold applies the ContainsFold predicate on the "phone_number_id" field.
func PhoneNumberIDContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldPhoneNumberID, v))
}

// AccessTokenEQ applies the EQ predicate on the "access_token" field.
func AccessTokenEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldAccessToken, v))
}

// AccessTokenNEQ applies the NEQ predicate on the "access_token" field.
func AccessTokenNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldAccessToken, v))
}

// AccessTokenIn applies the In predicate on the "access_token" field.
func AccessTokenIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldAccessToken, vs...))
}

// AccessTokenNotIn applies the NotIn predicate on the "access_token" field.
func AccessTokenNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldAccessToken, vs...))
}

// AccessTokenGT applies the GT predicate on the "access_token" field.
func AccessTokenGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldAccessToken, v))
}

// AccessTokenGTE applies the GTE predicate on the "access_token" field.
func AccessTokenGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldAccessToken, v))
}

// AccessTokenLT applies the LT predicate on the "access_token" field.
func AccessTokenLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldAccessToken, v))
}

// AccessTokenLTE applies the LTE predicate on the "access_token" field.
func AccessTokenLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldAccessToken, v))
}

// AccessTokenContains applies the Contains predicate on the "access_token" field.
func AccessTokenContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldAccessToken, v))
}

// AccessTokenHasPrefix applies the HasPrefix predicate on the "access_token" field.
func AccessTokenHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldAccessToken, v))
}

// AccessTokenHasSuffix applies the HasSuffix predicate on the "access_token" field.
func AccessTokenHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldAccessToken, v))
}

// AccessTokenIsNil applies the IsNil predicate on the "access_token" field.
func AccessTokenIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldAccessToken))
}

// AccessTokenNotNil applies the NotNil predicate on the "access_token" field.
func AccessTokenNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldAccessToken))
}

// AccessTokenEqualFold applies the EqualFold predicate on the "access_token" field.
func AccessTokenEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldAccessToken, v))
}

// AccessTokenContainsFold applies the ContainsFold predicate on the "access_token" field.
func AccessTokenContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldAccessToken, v))
}

// BusinessNameEQ applies the EQ predicate on the "business_name" field.
func BusinessNameEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldBusinessName, v))
}

// BusinessNameNEQ applies the NEQ predicate on the "business_name" field.
func BusinessNameNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldBusinessName, v))
}

// BusinessNameIn applies the In predicate on the "business_name" field.
func BusinessNameIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldBusinessName, vs...))
}

// BusinessNameNotIn applies the NotIn predicate on the "business_name" field.
func BusinessNameNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldBusinessName, vs...))
}

// BusinessNameGT applies the GT predicate on the "business_name" field.
func BusinessNameGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldBusinessName, v))
}

// BusinessNameGTE applies the GTE predicate on the "business_name" field.
func BusinessNameGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldBusinessName, v))
}

// BusinessNameLT applies the LT predicate on the "business_name" field.
func BusinessNameLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldBusinessName, v))
}

// BusinessNameLTE applies the LTE predicate on the "business_name" field.
func BusinessNameLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldBusinessName, v))
}

// BusinessNameContains applies the Contains predicate on the "business_name" field.
func BusinessNameContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldBusinessName, v))
}

// BusinessNameHasPrefix applies the HasPrefix predicate on the "business_name" field.
func BusinessNameHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldBusinessName, v))
}

// BusinessNameHasSuffix applies the HasSuffix predicate on the "business_name" field.
func BusinessNameHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldBusinessName, v))
}

// BusinessNameEqualFold applies the EqualFold predicate on the "business_name" field.
func BusinessNameEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldBusinessName, v))
}

// BusinessNameContainsFold applies the ContainsFold predicate on the "business_name" field.
func BusinessNameContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldBusinessName, v))
}

// BusinessDescriptionEQ applies the EQ predicate on the "business_description" field.
func BusinessDescriptionEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldBusinessDescription, v))
}

// BusinessDescriptionNEQ applies the NEQ predicate on the "business_description" field.
func BusinessDescriptionNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldBusinessDescription, v))
}

// BusinessDescriptionIn applies the In predicate on the "business_description" field.
func BusinessDescriptionIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldBusinessDescription, vs...))
}

// BusinessDescriptionNotIn applies the NotIn predicate on the "business_description" field.
func BusinessDescriptionNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldBusinessDescription, vs...))
}

// BusinessDescriptionGT applies the GT predicate on the "business_description" field.
func BusinessDescriptionGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldBusinessDescription, v))
}

// BusinessDescriptionGTE applies the GTE predicate on the "business_description" field.
func BusinessDescriptionGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldBusinessDescription, v))
}

// BusinessDescriptionLT applies the LT predicate on the "business_description" field.
func BusinessDescriptionLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldBusinessDescription, v))
}

// BusinessDescriptionLTE applies the LTE predicate on the "business_description" field.
func BusinessDescriptionLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldBusinessDescription, v))
}

// BusinessDescriptionContains applies the Contains predicate on the "business_description" field.
func BusinessDescriptionContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldBusinessDescription, v))
}

// BusinessDescriptionHasPrefix applies the HasPrefix predicate on the "business_description" field.
func BusinessDescriptionHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldBusinessDescription, v))
}

// BusinessDescriptionHasSuffix applies the HasSuffix predicate on the "business_description" field.
func BusinessDescriptionHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldBusinessDescription, v))
}

// BusinessDescriptionIsNil applies the IsNil predicate on the "business_description" field.
func BusinessDescriptionIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldBusinessDescription))
}

// BusinessDescriptionNotNil applies the NotNil predicate on the "business_description" field.
func BusinessDescriptionNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldBusinessDescription))
}

// BusinessDescriptionEqualFold applies the EqualFold predicate on the "business_description" field.
func BusinessDescriptionEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldBusinessDescription, v))
}

// BusinessDescriptionContainsFold applies the ContainsFold predicate on the "business_description" field.
func BusinessDescriptionContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldBusinessDescription, v))
}

// FlowPromptEQ applies the EQ predicate on the "flow_prompt" field.
func FlowPromptEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldFlowPrompt, v))
}

// FlowPromptNEQ applies the NEQ predicate on the "flow_prompt" field.
func FlowPromptNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldFlowPrompt, v))
}

// FlowPromptIn applies the In predicate on the "flow_prompt" field.
func FlowPromptIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldFlowPrompt, vs...))
}

// FlowPromptNotIn applies the NotIn predicate on the "flow_prompt" field.
func FlowPromptNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldFlowPrompt, vs...))
}

// FlowPromptGT applies the GT predicate on the "flow_prompt" field.
func FlowPromptGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldFlowPrompt, v))
}

// FlowPromptGTE applies the GTE predicate on the "flow_prompt" field.
func FlowPromptGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldFlowPrompt, v))
}

// FlowPromptLT applies the LT predicate on the "flow_prompt" field.
func FlowPromptLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldFlowPrompt, v))
}

// FlowPromptLTE applies the LTE predicate on the "flow_prompt" field.
func FlowPromptLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldFlowPrompt, v))
}

// FlowPromptContains applies the Contains predicate on the "flow_prompt" field.
func FlowPromptContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldFlowPrompt, v))
}

// FlowPromptHasPrefix applies the HasPrefix predicate on the "flow_prompt" field.
func FlowPromptHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldFlowPrompt, v))
}

// FlowPromptHasSuffix applies the HasSuffix predicate on the "flow_prompt" field.
func FlowPromptHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldFlowPrompt, v))
}

// FlowPromptIsNil applies the IsNil predicate on the "flow_prompt" field.
func FlowPromptIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldFlowPrompt))
}

// FlowPromptNotNil applies the NotNil predicate on the "flow_prompt" field.
func FlowPromptNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldFlowPrompt))
}

// FlowPromptEqualFold applies the EqualFold predicate on the "flow_prompt" field.
func FlowPromptEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldFlowPrompt, v))
}

// FlowPromptContainsFold applies the ContainsFold predicate on the "flow_prompt" field.
func FlowPromptContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldFlowPrompt, v))
}

// CtasIsNil applies the IsNil predicate on the "ctas" field.
func CtasIsNil() predicate.Integration {
	return predicate.Integration(sql.FieldIsNull(FieldCtas))
}

// CtasNotNil applies the NotNil predicate on the "ctas" field.
func CtasNotNil() predicate.Integration {
	return predicate.Integration(sql.FieldNotNull(FieldCtas))
}

// LanguagePrefEQ applies the EQ predicate on the "language_pref" field.
func LanguagePrefEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldLanguagePref, v))
}

// LanguagePrefNEQ applies the NEQ predicate on the "language_pref" field.
func LanguagePrefNEQ(v string) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldLanguagePref, v))
}

// LanguagePrefIn applies the In predicate on the "language_pref" field.
func LanguagePrefIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldLanguagePref, vs...))
}

// LanguagePrefNotIn applies the NotIn predicate on the "language_pref" field.
func LanguagePrefNotIn(vs ...string) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldLanguagePref, vs...))
}

// LanguagePrefGT applies the GT predicate on the "language_pref" field.
func LanguagePrefGT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldLanguagePref, v))
}

// LanguagePrefGTE applies the GTE predicate on the "language_pref" field.
func LanguagePrefGTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldLanguagePref, v))
}

// LanguagePrefLT applies the LT predicate on the "language_pref" field.
func LanguagePrefLT(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldLanguagePref, v))
}

// LanguagePrefLTE applies the LTE predicate on the "language_pref" field.
func LanguagePrefLTE(v string) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldLanguagePref, v))
}

// LanguagePrefContains applies the Contains predicate on the "language_pref" field.
func LanguagePrefContains(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContains(FieldLanguagePref, v))
}

// LanguagePrefHasPrefix applies the HasPrefix predicate on the "language_pref" field.
func LanguagePrefHasPrefix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasPrefix(FieldLanguagePref, v))
}

// LanguagePrefHasSuffix applies the HasSuffix predicate on the "language_pref" field.
func LanguagePrefHasSuffix(v string) predicate.Integration {
	return predicate.Integration(sql.FieldHasSuffix(FieldLanguagePref, v))
}

// LanguagePrefEqualFold applies the EqualFold predicate on the "language_pref" field.
func LanguagePrefEqualFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldEqualFold(FieldLanguagePref, v))
}

// LanguagePrefContainsFold applies the ContainsFold predicate on the "language_pref" field.
func LanguagePrefContainsFold(v string) predicate.Integration {
	return predicate.Integration(sql.FieldContainsFold(FieldLanguagePref, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Integration {
	return predicate.Integration(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Integration) predicate.Integration {
	return predicate.Integration(sql.NotPredicates(p))
}
