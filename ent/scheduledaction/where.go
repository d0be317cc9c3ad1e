// Code generated by ent, DO NOT EDIT.

package scheduledaction

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/leadline-ai/leadline/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldContainsFold(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldConversationID, v))
}

// FireAt applies equality check predicate on the "fire_at" field. It's identical to FireAtEQ.
func FireAt(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldFireAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldConversationID, vs...))
}

// ConversationIDGT applies the GT predicate on the "conversation_id" field.
func ConversationIDGT(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGT(FieldConversationID, v))
}

// ConversationIDGTE applies the GTE predicate on the "conversation_id" field.
func ConversationIDGTE(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGTE(FieldConversationID, v))
}

// ConversationIDLT applies the LT predicate on the "conversation_id" field.
func ConversationIDLT(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLT(FieldConversationID, v))
}

// ConversationIDLTE applies the LTE predicate on the "conversation_id" field.
func ConversationIDLTE(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLTE(FieldConversationID, v))
}

// ConversationIDContains applies the Contains predicate on the "conversation_id" field.
func ConversationIDContains(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldContains(FieldConversationID, v))
}

// ConversationIDHasPrefix applies the HasPrefix predicate on the "conversation_id" field.
func ConversationIDHasPrefix(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldHasPrefix(FieldConversationID, v))
}

// ConversationIDHasSuffix applies the HasSuffix predicate on the "conversation_id" field.
func ConversationIDHasSuffix(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldHasSuffix(FieldConversationID, v))
}

// ConversationIDEqualFold applies the EqualFold predicate on the "conversation_id" field.
func ConversationIDEqualFold(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEqualFold(FieldConversationID, v))
}

// ConversationIDContainsFold applies the ContainsFold predicate on the "conversation_id" field.
func ConversationIDContainsFold(v string) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldContainsFold(FieldConversationID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldKind, vs...))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldStatus, vs...))
}

// FireAtEQ applies the EQ predicate on the "fire_at" field.
func FireAtEQ(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldFireAt, v))
}

// FireAtNEQ applies the NEQ predicate on the "fire_at" field.
func FireAtNEQ(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldFireAt, v))
}

// FireAtIn applies the In predicate on the "fire_at" field.
func FireAtIn(vs ...time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldFireAt, vs...))
}

// FireAtNotIn applies the NotIn predicate on the "fire_at" field.
func FireAtNotIn(vs ...time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldFireAt, vs...))
}

// FireAtGT applies the GT predicate on the "fire_at" field.
func FireAtGT(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGT(FieldFireAt, v))
}

// FireAtGTE applies the GTE predicate on the "fire_at" field.
func FireAtGTE(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGTE(FieldFireAt, v))
}

// FireAtLT applies the LT predicate on the "fire_at" field.
func FireAtLT(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLT(FieldFireAt, v))
}

// FireAtLTE applies the LTE predicate on the "fire_at" field.
func FireAtLTE(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLTE(FieldFireAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldLTE(FieldCreatedAt, v))
}

// ContextIsNil applies the IsNil predicate on the "context" field.
func ContextIsNil() predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldIsNull(FieldContext))
}

// ContextNotNil applies the NotNil predicate on the "context" field.
func ContextNotNil() predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.FieldNotNull(FieldContext))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ScheduledAction {
	return predicate.ScheduledAction(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.Conversation) predicate.ScheduledAction {
	return predicate.ScheduledAction(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ScheduledAction) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ScheduledAction) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ScheduledAction) predicate.ScheduledAction {
	return predicate.ScheduledAction(sql.NotPredicates(p))
}
