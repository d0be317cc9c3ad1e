package store

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/integration"
	"github.com/leadline-ai/leadline/ent/lead"
	"github.com/leadline-ai/leadline/ent/message"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/models"
)

// EntStore implements Store on top of the Ent client.
type EntStore struct {
	client *ent.Client
}

// NewEntStore creates the Ent-backed store.
func NewEntStore(client *ent.Client) *EntStore {
	if client == nil {
		panic("NewEntStore: client must not be nil")
	}
	return &EntStore{client: client}
}

// ResolveIntegration looks up the integration owning a provider phone number.
func (s *EntStore) ResolveIntegration(ctx context.Context, phoneNumberID string) (*ent.Integration, error) {
	if phoneNumberID == "" {
		return nil, fmt.Errorf("%w: phone_number_id is required", ErrInvalidInput)
	}

	integ, err := s.client.Integration.Query().
		Where(integration.PhoneNumberIDEQ(phoneNumberID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query integration: %w", err)
	}
	return integ, nil
}

// GetIntegrationByOrg returns the organization's integration.
func (s *EntStore) GetIntegrationByOrg(ctx context.Context, orgID string) (*ent.Integration, error) {
	integ, err := s.client.Integration.Query().
		Where(integration.OrgIDEQ(orgID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query integration by org: %w", err)
	}
	return integ, nil
}

// UpsertLead finds the lead by (org, phone) or creates it. A non-empty
// display name refreshes a stale or missing one.
func (s *EntStore) UpsertLead(ctx context.Context, orgID, phone, displayName string) (*ent.Lead, error) {
	if orgID == "" || phone == "" {
		return nil, fmt.Errorf("%w: org_id and phone are required", ErrInvalidInput)
	}

	existing, err := s.client.Lead.Query().
		Where(lead.OrgIDEQ(orgID), lead.PhoneEQ(phone)).
		Only(ctx)
	if err == nil {
		if displayName != "" && existing.DisplayName != displayName {
			updated, uerr := existing.Update().SetDisplayName(displayName).Save(ctx)
			if uerr != nil {
				return nil, fmt.Errorf("failed to update lead name: %w", uerr)
			}
			return updated, nil
		}
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query lead: %w", err)
	}

	created, err := s.client.Lead.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetPhone(phone).
		SetDisplayName(displayName).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Race: another event created the lead first, fetch it
			existing, qerr := s.client.Lead.Query().
				Where(lead.OrgIDEQ(orgID), lead.PhoneEQ(phone)).
				Only(ctx)
			if qerr != nil {
				return nil, fmt.Errorf("failed to query lead after constraint error: %w", qerr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}
	return created, nil
}

// GetLead fetches a lead by id.
func (s *EntStore) GetLead(ctx context.Context, leadID string) (*ent.Lead, error) {
	l, err := s.client.Lead.Get(ctx, leadID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	return l, nil
}

// GetOrCreateConversation returns the (org, lead) conversation, creating it
// lazily on the first inbound message.
func (s *EntStore) GetOrCreateConversation(ctx context.Context, orgID, leadID string) (*ent.Conversation, bool, error) {
	if orgID == "" || leadID == "" {
		return nil, false, fmt.Errorf("%w: org_id and lead_id are required", ErrInvalidInput)
	}

	existing, err := s.client.Conversation.Query().
		Where(conversation.OrgIDEQ(orgID), conversation.LeadIDEQ(leadID)).
		Only(ctx)
	if err == nil {
		return existing, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to query conversation: %w", err)
	}

	created, err := s.client.Conversation.Create().
		SetID(uuid.New().String()).
		SetOrgID(orgID).
		SetLeadID(leadID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, qerr := s.client.Conversation.Query().
				Where(conversation.OrgIDEQ(orgID), conversation.LeadIDEQ(leadID)).
				Only(ctx)
			if qerr != nil {
				return nil, false, fmt.Errorf("failed to query conversation after constraint error: %w", qerr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("failed to create conversation: %w", err)
	}
	return created, true, nil
}

// GetConversation fetches a conversation by id.
func (s *EntStore) GetConversation(ctx context.Context, conversationID string) (*ent.Conversation, error) {
	conv, err := s.client.Conversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// UpdateConversation applies the whole patch in one UPDATE so a failing turn
// never leaves partial state behind.
func (s *EntStore) UpdateConversation(ctx context.Context, conversationID string, patch models.ConversationPatch) (*ent.Conversation, error) {
	if patch.IsEmpty() {
		return s.GetConversation(ctx, conversationID)
	}

	upd := s.client.Conversation.UpdateOneID(conversationID)
	if patch.Mode != nil {
		upd.SetMode(*patch.Mode)
	}
	if patch.Stage != nil {
		upd.SetStage(*patch.Stage)
	}
	if patch.IntentLevel != nil {
		upd.SetIntentLevel(*patch.IntentLevel)
	}
	if patch.UserSentiment != nil {
		upd.SetUserSentiment(*patch.UserSentiment)
	}
	if patch.RollingSummary != nil {
		upd.SetRollingSummary(*patch.RollingSummary)
	}
	if patch.NeedsHumanAttention != nil {
		upd.SetNeedsHumanAttention(*patch.NeedsHumanAttention)
	}
	if patch.HumanAttentionResolvedAt != nil {
		upd.SetHumanAttentionResolvedAt(*patch.HumanAttentionResolvedAt)
	}
	if patch.LastUserMessageAt != nil {
		upd.SetLastUserMessageAt(*patch.LastUserMessageAt)
	}
	if patch.LastBotMessageAt != nil {
		upd.SetLastBotMessageAt(*patch.LastBotMessageAt)
	}
	if patch.AddFollowupCount24h != 0 {
		upd.AddFollowupCount24h(patch.AddFollowupCount24h)
	}
	if patch.AddTotalNudges != 0 {
		upd.AddTotalNudges(patch.AddTotalNudges)
	}

	conv, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update conversation: %w", err)
	}
	return conv, nil
}

// AppendMessage records one transcript row.
func (s *EntStore) AppendMessage(ctx context.Context, input AppendMessageInput) (*ent.Message, error) {
	if input.ConversationID == "" {
		return nil, fmt.Errorf("%w: conversation_id is required", ErrInvalidInput)
	}

	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetConversationID(input.ConversationID).
		SetSender(input.Sender).
		SetDirection(input.Direction).
		SetText(input.Text).
		SetCreatedAt(ts)
	if input.ProviderMsgID != "" {
		builder.SetProviderMsgID(input.ProviderMsgID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to append message: %w", err)
	}
	return msg, nil
}

// ListRecentMessages returns the newest n messages, oldest first, ready for
// prompt assembly.
func (s *EntStore) ListRecentMessages(ctx context.Context, conversationID string, n int) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.ConversationIDEQ(conversationID)).
		Order(ent.Desc(message.FieldCreatedAt)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	// Reverse newest-first into chronological order.
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// CancelPendingActions cancels the conversation's whole pending ladder.
func (s *EntStore) CancelPendingActions(ctx context.Context, conversationID string) (int, error) {
	n, err := s.client.ScheduledAction.Update().
		Where(
			scheduledaction.ConversationIDEQ(conversationID),
			scheduledaction.StatusEQ(scheduledaction.StatusPending),
		).
		SetStatus(scheduledaction.StatusCancelled).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel pending actions: %w", err)
	}
	return n, nil
}

// CreateScheduledActions inserts a set of actions in one bulk statement.
func (s *EntStore) CreateScheduledActions(ctx context.Context, specs []ActionSpec) ([]*ent.ScheduledAction, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	builders := make([]*ent.ScheduledActionCreate, 0, len(specs))
	for _, spec := range specs {
		if spec.ConversationID == "" {
			return nil, fmt.Errorf("%w: conversation_id is required", ErrInvalidInput)
		}
		kind := spec.Kind
		if kind == "" {
			kind = scheduledaction.KindFollowup
		}
		createdAt := spec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		b := s.client.ScheduledAction.Create().
			SetID(uuid.New().String()).
			SetConversationID(spec.ConversationID).
			SetKind(kind).
			SetStatus(scheduledaction.StatusPending).
			SetFireAt(spec.FireAt).
			SetCreatedAt(createdAt)
		if spec.Context != nil {
			b.SetContext(spec.Context)
		}
		builders = append(builders, b)
	}

	actions, err := s.client.ScheduledAction.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduled actions: %w", err)
	}
	return actions, nil
}

// ClaimDueActions atomically flips due PENDING actions to FIRED and returns
// them. SELECT ... FOR UPDATE SKIP LOCKED keeps concurrent pollers from
// claiming the same rows.
func (s *EntStore) ClaimDueActions(ctx context.Context, now time.Time, limit int) ([]*ent.ScheduledAction, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	due, err := tx.ScheduledAction.Query().
		Where(
			scheduledaction.StatusEQ(scheduledaction.StatusPending),
			scheduledaction.FireAtLTE(now),
		).
		Order(ent.Asc(scheduledaction.FieldFireAt)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query due actions: %w", err)
	}
	if len(due) == 0 {
		return nil, nil
	}

	claimed := make([]*ent.ScheduledAction, 0, len(due))
	for _, a := range due {
		fired, uerr := a.Update().
			SetStatus(scheduledaction.StatusFired).
			Save(ctx)
		if uerr != nil {
			return nil, fmt.Errorf("failed to claim action %s: %w", a.ID, uerr)
		}
		claimed = append(claimed, fired)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// DeleteScheduledAction removes an action outright (stale or suppressed fires).
func (s *EntStore) DeleteScheduledAction(ctx context.Context, actionID string) error {
	err := s.client.ScheduledAction.DeleteOneID(actionID).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete scheduled action: %w", err)
	}
	return nil
}

// SweepFinishedActions deletes FIRED and CANCELLED rows created before the
// cutoff. Retention hygiene; pending rows are never touched.
func (s *EntStore) SweepFinishedActions(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.client.ScheduledAction.Delete().
		Where(
			scheduledaction.StatusIn(scheduledaction.StatusFired, scheduledaction.StatusCancelled),
			scheduledaction.CreatedAtLT(olderThan),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep finished actions: %w", err)
	}
	return n, nil
}
