package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/llm"
	"github.com/leadline-ai/leadline/pkg/pipeline"
	"github.com/leadline-ai/leadline/pkg/scheduler"
	"github.com/leadline-ai/leadline/pkg/store/storetest"
	"github.com/leadline-ai/leadline/pkg/whatsapp"
)

// scriptedChat returns canned completions in order; an optional before hook
// runs ahead of each reply so tests can mutate state mid-flow.
type scriptedChat struct {
	mu      sync.Mutex
	replies []scriptedReply
	calls   int
}

type scriptedReply struct {
	content string
	err     error
	before  func()
}

func (s *scriptedChat) Complete(_ context.Context, _ llm.CompletionRequest) (string, error) {
	s.mu.Lock()
	s.calls++
	if len(s.replies) == 0 {
		s.mu.Unlock()
		return "", errors.New("script exhausted")
	}
	r := s.replies[0]
	s.replies = s.replies[1:]
	s.mu.Unlock()

	if r.before != nil {
		r.before()
	}
	return r.content, r.err
}

func (s *scriptedChat) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *scriptedChat) push(replies ...scriptedReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = append(s.replies, replies...)
}

// fakeSender records outbound sends; err makes every send fail.
type fakeSender struct {
	mu    sync.Mutex
	sends []sentMessage
	err   error
}

type sentMessage struct {
	PhoneNumberID string
	To            string
	Body          string
}

func (f *fakeSender) SendText(_ context.Context, phoneNumberID, _, to, body string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	f.sends = append(f.sends, sentMessage{PhoneNumberID: phoneNumberID, To: to, Body: body})
	return "wamid." + uuid.New().String(), nil
}

func (f *fakeSender) sent() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sends...)
}

// captureBroadcaster records every broadcast frame by event type.
type captureBroadcaster struct {
	mu     sync.Mutex
	frames []capturedFrame
}

type capturedFrame struct {
	OrgID string
	Event string
}

func (c *captureBroadcaster) Broadcast(orgID string, data []byte) {
	var env struct {
		Event string `json:"event"`
	}
	_ = json.Unmarshal(data, &env)
	c.mu.Lock()
	defer c.mu.Unlock()
	c.frames = append(c.frames, capturedFrame{OrgID: orgID, Event: env.Event})
}

func (c *captureBroadcaster) eventCount(event string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, f := range c.frames {
		if f.Event == event {
			n++
		}
	}
	return n
}

type fixture struct {
	mem    *storetest.Memory
	chat   *scriptedChat
	sender *fakeSender
	bcast  *captureBroadcaster
	orch   *Orchestrator
}

var testLadderOffsets = []time.Duration{10 * time.Minute, 3 * time.Hour, 6 * time.Hour}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mem := storetest.New()
	mem.AddIntegration(&ent.Integration{
		ID:                  "integ-1",
		OrgID:               "org-1",
		PhoneNumberID:       "pn-1",
		AccessToken:         "tok",
		BusinessName:        "Acme Tutoring",
		BusinessDescription: "After-school math tutoring",
		FlowPrompt:          "Qualify the parent, then offer a trial lesson.",
		Ctas: []map[string]interface{}{
			{"id": "book-call", "label": "Book a call", "kind": "calendar"},
		},
		LanguagePref: "en",
	})

	chat := &scriptedChat{}
	pipe := pipeline.New(chat, pipeline.Config{MaxAttempts: 1, RetryBaseDelay: time.Millisecond})
	sender := &fakeSender{}
	bcast := &captureBroadcaster{}

	orch := New(mem, pipe, sender, scheduler.NewLadder(mem, testLadderOffsets), events.NewPublisher(bcast), Config{
		MaxWords:            80,
		QuestionsPerMessage: 1,
	})
	t.Cleanup(orch.Close)

	return &fixture{mem: mem, chat: chat, sender: sender, bcast: bcast, orch: orch}
}

const leadPhone = "15551230001"

func testInbound(text string) whatsapp.InboundMessage {
	return whatsapp.InboundMessage{
		PhoneNumberID: "pn-1",
		From:          leadPhone,
		SenderName:    "Sam",
		Text:          text,
		ProviderMsgID: "wamid." + uuid.New().String(),
		Timestamp:     time.Now(),
	}
}

// seedConversation creates a lead and conversation matching testInbound's
// routing, so HandleUserMessage lands on it instead of creating a new one.
func (f *fixture) seedConversation(t *testing.T, mutate func(*ent.Conversation)) *ent.Conversation {
	t.Helper()
	f.mem.SeedLead(&ent.Lead{ID: "lead-1", OrgID: "org-1", Phone: leadPhone, DisplayName: "Sam"})
	conv := &ent.Conversation{
		ID:            "conv-1",
		OrgID:         "org-1",
		LeadID:        "lead-1",
		Mode:          conversation.ModeBot,
		Stage:         conversation.StageGreeting,
		IntentLevel:   conversation.IntentLevelUnknown,
		UserSentiment: conversation.UserSentimentNeutral,
	}
	if mutate != nil {
		mutate(conv)
	}
	f.mem.SeedConversation(conv)
	return conv
}

func (f *fixture) conversation(t *testing.T, id string) *ent.Conversation {
	t.Helper()
	conv, err := f.mem.GetConversation(context.Background(), id)
	require.NoError(t, err)
	return conv
}

// onlyConversation returns the single conversation in the store.
func (f *fixture) onlyConversation(t *testing.T) *ent.Conversation {
	t.Helper()
	require.Len(t, f.mem.Conversations, 1)
	for id := range f.mem.Conversations {
		return f.conversation(t, id)
	}
	return nil
}

func classifyReply(action, stage, intent string, shouldRespond bool, confidence float64) scriptedReply {
	return scriptedReply{content: fmt.Sprintf(`{
		"thought_process": "t",
		"situation_summary": "s",
		"intent_level": %q,
		"user_sentiment": "neutral",
		"risk_flags": {"spam": "LOW", "policy": "LOW", "hallucination": "LOW"},
		"action": %q,
		"new_stage": %q,
		"should_respond": %t,
		"confidence": %g
	}`, intent, action, stage, shouldRespond, confidence)}
}

func generateReply(text string) scriptedReply {
	data, _ := json.Marshal(map[string]interface{}{
		"message_text":      text,
		"message_language":  "en",
		"self_check_passed": true,
	})
	return scriptedReply{content: string(data)}
}

func summarizeReply(summary string) scriptedReply {
	data, _ := json.Marshal(map[string]string{"updated_rolling_summary": summary})
	return scriptedReply{content: string(data)}
}
