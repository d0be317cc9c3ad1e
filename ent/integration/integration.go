// Code generated by ent, DO NOT EDIT.

package integration

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the integration type in the database.
	Label = "integration"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "integration_id"
	// FieldOrgID holds the string denoting the org_id field in the database.
	FieldOrgID = "org_id"
	// FieldPhoneNumberID holds the string denoting the phone_number_id field in the database.
	FieldPhoneNumberID = "phone_number_id"
	// FieldAccessToken holds the string denoting the access_token field in the database.
	FieldAccessToken = "access_token"
	// FieldBusinessName holds the string denoting the business_name field in the database.
	FieldBusinessName = "business_name"
	// FieldBusinessDescription holds the string denoting the business_description field in the database.
	FieldBusinessDescription = "business_description"
	// FieldFlowPrompt holds the string denoting the flow_prompt field in the database.
	FieldFlowPrompt = "flow_prompt"
	// FieldCtas holds the string denoting the ctas field in the database.
	FieldCtas = "ctas"
	// FieldLanguagePref holds the string denoting the language_pref field in the database.
	FieldLanguagePref = "language_pref"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the integration in the database.
	Table = "integrations"
)

// Columns holds all SQL columns for integration fields.
var Columns = []string{
	FieldID,
	FieldOrgID,
	FieldPhoneNumberID,
	FieldAccessToken,
	FieldBusinessName,
	FieldBusinessDescription,
	FieldFlowPrompt,
	FieldCtas,
	FieldLanguagePref,
	FieldCreatedAt,
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
	// DefaultLanguagePref holds the default value on creation for the "language_pref" field.
	DefaultLanguagePref string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Integration queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOrgID orders the results by the org_id field.
func ByOrgID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOrgID, opts...).ToFunc()
}

// ByPhoneNumberID orders the results by the phone_number_id field.
func ByPhoneNumberID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhoneNumberID, opts...).ToFunc()
}

// ByAccessToken orders the results by the access_token field.
func ByAccessToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccessToken, opts...).ToFunc()
}

// ByBusinessName orders the results by the business_name field.
func ByBusinessName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessName, opts...).ToFunc()
}

// ByBusinessDescription orders the results by the business_description field.
func ByBusinessDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBusinessDescription, opts...).ToFunc()
}

// ByFlowPrompt orders the results by the flow_prompt field.
func ByFlowPrompt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowPrompt, opts...).ToFunc()
}

// ByLanguagePref orders the results by the language_pref field.
func ByLanguagePref(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguagePref, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
