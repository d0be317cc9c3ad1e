// Package storetest provides an in-memory Store implementation for tests.
// It mirrors the Ent store's observable behavior (atomic claims, cancel
// counts, oldest-first transcripts) without a database.
package storetest

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/ent/scheduledaction"
	"github.com/leadline-ai/leadline/pkg/models"
	"github.com/leadline-ai/leadline/pkg/store"
)

// Memory is an in-memory store.Store. All methods are safe for concurrent
// use. Err* fields inject failures per method for error-path tests.
type Memory struct {
	mu sync.Mutex

	Integrations  map[string]*ent.Integration // keyed by phone_number_id
	Leads         map[string]*ent.Lead
	Conversations map[string]*ent.Conversation
	Messages      []*ent.Message
	Actions       map[string]*ent.ScheduledAction

	ErrAppendMessage      error
	ErrUpdateConversation error
	ErrClaim              error
}

// New creates an empty in-memory store.
func New() *Memory {
	return &Memory{
		Integrations:  make(map[string]*ent.Integration),
		Leads:         make(map[string]*ent.Lead),
		Conversations: make(map[string]*ent.Conversation),
		Actions:       make(map[string]*ent.ScheduledAction),
	}
}

var _ store.Store = (*Memory)(nil)

// AddIntegration seeds an integration row.
func (m *Memory) AddIntegration(integ *ent.Integration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Integrations[integ.PhoneNumberID] = integ
}

// SeedConversation seeds a conversation row directly.
func (m *Memory) SeedConversation(conv *ent.Conversation) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *conv
	m.Conversations[conv.ID] = &cp
}

// SeedLead seeds a lead row directly.
func (m *Memory) SeedLead(ld *ent.Lead) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *ld
	m.Leads[ld.ID] = &cp
}

func (m *Memory) ResolveIntegration(_ context.Context, phoneNumberID string) (*ent.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	integ, ok := m.Integrations[phoneNumberID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *integ
	return &cp, nil
}

func (m *Memory) GetIntegrationByOrg(_ context.Context, orgID string) (*ent.Integration, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, integ := range m.Integrations {
		if integ.OrgID == orgID {
			cp := *integ
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *Memory) UpsertLead(_ context.Context, orgID, phone, displayName string) (*ent.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ld := range m.Leads {
		if ld.OrgID == orgID && ld.Phone == phone {
			if displayName != "" {
				ld.DisplayName = displayName
			}
			cp := *ld
			return &cp, nil
		}
	}
	ld := &ent.Lead{
		ID:          uuid.New().String(),
		OrgID:       orgID,
		Phone:       phone,
		DisplayName: displayName,
		CreatedAt:   time.Now(),
	}
	m.Leads[ld.ID] = ld
	cp := *ld
	return &cp, nil
}

func (m *Memory) GetLead(_ context.Context, leadID string) (*ent.Lead, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ld, ok := m.Leads[leadID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *ld
	return &cp, nil
}

func (m *Memory) GetOrCreateConversation(_ context.Context, orgID, leadID string) (*ent.Conversation, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, conv := range m.Conversations {
		if conv.OrgID == orgID && conv.LeadID == leadID {
			cp := *conv
			return &cp, false, nil
		}
	}
	now := time.Now()
	conv := &ent.Conversation{
		ID:            uuid.New().String(),
		OrgID:         orgID,
		LeadID:        leadID,
		Mode:          conversation.ModeBot,
		Stage:         conversation.StageGreeting,
		IntentLevel:   conversation.IntentLevelUnknown,
		UserSentiment: conversation.UserSentimentNeutral,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	m.Conversations[conv.ID] = conv
	cp := *conv
	return &cp, true, nil
}

func (m *Memory) GetConversation(_ context.Context, conversationID string) (*ent.Conversation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv, ok := m.Conversations[conversationID]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *conv
	return &cp, nil
}

func (m *Memory) UpdateConversation(_ context.Context, conversationID string, patch models.ConversationPatch) (*ent.Conversation, error) {
	if m.ErrUpdateConversation != nil {
		return nil, m.ErrUpdateConversation
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	conv, ok := m.Conversations[conversationID]
	if !ok {
		return nil, store.ErrNotFound
	}
	if patch.Mode != nil {
		conv.Mode = *patch.Mode
	}
	if patch.Stage != nil {
		conv.Stage = *patch.Stage
	}
	if patch.IntentLevel != nil {
		conv.IntentLevel = *patch.IntentLevel
	}
	if patch.UserSentiment != nil {
		conv.UserSentiment = *patch.UserSentiment
	}
	if patch.RollingSummary != nil {
		conv.RollingSummary = *patch.RollingSummary
	}
	if patch.NeedsHumanAttention != nil {
		conv.NeedsHumanAttention = *patch.NeedsHumanAttention
	}
	if patch.HumanAttentionResolvedAt != nil {
		t := *patch.HumanAttentionResolvedAt
		conv.HumanAttentionResolvedAt = &t
	}
	if patch.LastUserMessageAt != nil {
		t := *patch.LastUserMessageAt
		conv.LastUserMessageAt = &t
	}
	if patch.LastBotMessageAt != nil {
		t := *patch.LastBotMessageAt
		conv.LastBotMessageAt = &t
	}
	conv.FollowupCount24h += patch.AddFollowupCount24h
	conv.TotalNudges += patch.AddTotalNudges
	conv.UpdatedAt = time.Now()
	cp := *conv
	return &cp, nil
}

func (m *Memory) AppendMessage(_ context.Context, input store.AppendMessageInput) (*ent.Message, error) {
	if m.ErrAppendMessage != nil {
		return nil, m.ErrAppendMessage
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	ts := input.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	msg := &ent.Message{
		ID:             uuid.New().String(),
		ConversationID: input.ConversationID,
		Sender:         input.Sender,
		Direction:      input.Direction,
		Text:           input.Text,
		CreatedAt:      ts,
	}
	if input.ProviderMsgID != "" {
		id := input.ProviderMsgID
		msg.ProviderMsgID = &id
	}
	m.Messages = append(m.Messages, msg)
	cp := *msg
	return &cp, nil
}

func (m *Memory) ListRecentMessages(_ context.Context, conversationID string, n int) ([]*ent.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var all []*ent.Message
	for _, msg := range m.Messages {
		if msg.ConversationID == conversationID {
			cp := *msg
			all = append(all, &cp)
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.Before(all[j].CreatedAt) })
	if len(all) > n {
		all = all[len(all)-n:]
	}
	return all, nil
}

func (m *Memory) CancelPendingActions(_ context.Context, conversationID string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, a := range m.Actions {
		if a.ConversationID == conversationID && a.Status == scheduledaction.StatusPending {
			a.Status = scheduledaction.StatusCancelled
			count++
		}
	}
	return count, nil
}

func (m *Memory) CreateScheduledActions(_ context.Context, specs []store.ActionSpec) ([]*ent.ScheduledAction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	created := make([]*ent.ScheduledAction, 0, len(specs))
	for _, spec := range specs {
		if spec.ConversationID == "" {
			return nil, fmt.Errorf("%w: conversation_id is required", store.ErrInvalidInput)
		}
		kind := spec.Kind
		if kind == "" {
			kind = scheduledaction.KindFollowup
		}
		createdAt := spec.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now()
		}
		a := &ent.ScheduledAction{
			ID:             uuid.New().String(),
			ConversationID: spec.ConversationID,
			Kind:           kind,
			Status:         scheduledaction.StatusPending,
			FireAt:         spec.FireAt,
			CreatedAt:      createdAt,
			Context:        jsonRoundTrip(spec.Context),
		}
		m.Actions[a.ID] = a
		cp := *a
		created = append(created, &cp)
	}
	return created, nil
}

func (m *Memory) ClaimDueActions(_ context.Context, now time.Time, limit int) ([]*ent.ScheduledAction, error) {
	if m.ErrClaim != nil {
		return nil, m.ErrClaim
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var due []*ent.ScheduledAction
	for _, a := range m.Actions {
		if a.Status == scheduledaction.StatusPending && !a.FireAt.After(now) {
			due = append(due, a)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].FireAt.Before(due[j].FireAt) })
	if len(due) > limit {
		due = due[:limit]
	}
	claimed := make([]*ent.ScheduledAction, 0, len(due))
	for _, a := range due {
		a.Status = scheduledaction.StatusFired
		cp := *a
		claimed = append(claimed, &cp)
	}
	return claimed, nil
}

func (m *Memory) DeleteScheduledAction(_ context.Context, actionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.Actions, actionID)
	return nil
}

func (m *Memory) SweepFinishedActions(_ context.Context, olderThan time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for id, a := range m.Actions {
		if a.Status != scheduledaction.StatusPending && a.CreatedAt.Before(olderThan) {
			delete(m.Actions, id)
			count++
		}
	}
	return count, nil
}

// jsonRoundTrip normalizes a context payload the way the database JSON column
// would: numbers come back as float64.
func jsonRoundTrip(m map[string]interface{}) map[string]interface{} {
	if m == nil {
		return nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return m
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		return m
	}
	return out
}

// PendingActions returns the conversation's PENDING actions sorted by fire
// time. Test helper.
func (m *Memory) PendingActions(conversationID string) []*ent.ScheduledAction {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.ScheduledAction
	for _, a := range m.Actions {
		if a.ConversationID == conversationID && a.Status == scheduledaction.StatusPending {
			cp := *a
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FireAt.Before(out[j].FireAt) })
	return out
}

// ActionExists reports whether an action row is still present. Test helper.
func (m *Memory) ActionExists(actionID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Actions[actionID]
	return ok
}

// CountMessages returns the number of stored messages from one sender across
// all conversations. Test helper.
func (m *Memory) CountMessages(sender string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, msg := range m.Messages {
		if string(msg.Sender) == sender {
			n++
		}
	}
	return n
}

// MessagesBySender returns the conversation's messages from one sender.
// Test helper.
func (m *Memory) MessagesBySender(conversationID, sender string) []*ent.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*ent.Message
	for _, msg := range m.Messages {
		if msg.ConversationID == conversationID && string(msg.Sender) == sender {
			cp := *msg
			out = append(out, &cp)
		}
	}
	return out
}
