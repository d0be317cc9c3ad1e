// Package store is the persistence port: the narrow interface the
// orchestrator and scheduler depend on, backed by Ent/PostgreSQL.
package store

import (
	"context"
	"time"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/models"
)

// AppendMessageInput contains the fields for one transcript row.
type AppendMessageInput struct {
	ConversationID string
	Sender         message.Sender
	Direction      message.Direction
	Text           string
	Timestamp      time.Time
	ProviderMsgID  string
}

// ActionSpec describes one scheduled action to create.
type ActionSpec struct {
	ConversationID string
	Kind           scheduledaction.Kind
	FireAt         time.Time
	CreatedAt      time.Time
	Context        map[string]interface{}
}

// Store is the persistence port. Implementations must make ClaimDueActions
// an atomic PENDING→FIRED transition so an action fires at most once across
// replicas, and UpdateConversation a single atomic patch.
type Store interface {
	ResolveIntegration(ctx context.Context, phoneNumberID string) (*ent.Integration, error)
	GetIntegrationByOrg(ctx context.Context, orgID string) (*ent.Integration, error)

	UpsertLead(ctx context.Context, orgID, phone, displayName string) (*ent.Lead, error)
	GetLead(ctx context.Context, leadID string) (*ent.Lead, error)

	GetOrCreateConversation(ctx context.Context, orgID, leadID string) (*ent.Conversation, bool, error)
	GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error)
	UpdateConversation(ctx context.Context, conversationID string, patch models.ConversationPatch) (*ent.Conversation, error)

	AppendMessage(ctx context.Context, input AppendMessageInput) (*ent.Message, error)
	ListRecentMessages(ctx context.Context, conversationID string, n int) ([]*ent.Message, error)

	CancelPendingActions(ctx context.Context, conversationID string) (int, error)
	CreateScheduledActions(ctx context.Context, specs []ActionSpec) ([]*ent.ScheduledAction, error)
	ClaimDueActions(ctx context.Context, now time.Time, limit int) ([]*ent.ScheduledAction, error)
	DeleteScheduledAction(ctx context.Context, actionID string) error

	SweepFinishedActions(ctx context.Context, olderThan time.Time) (int, error)
}
