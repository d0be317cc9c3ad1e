// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Integration is the predicate function for integration builders.
type Integration func(*sql.Selector)

// Lead is the predicate function for lead builders.
type Lead func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// ScheduledAction is the predicate function for scheduledaction builders.
type ScheduledAction func(*sql.Selector)
