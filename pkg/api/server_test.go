package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent"
	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/config"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/llm"
	"github.com/leadline-ai/leadline/pkg/orchestrator"
	"github.com/leadline-ai/leadline/pkg/pipeline"
	"github.com/leadline-ai/leadline/pkg/scheduler"
	"github.com/leadline-ai/leadline/pkg/store/storetest"
)

const (
	testVerifyToken   = "verify-secret"
	testOperatorToken = "operator-secret"
)

// failingChat always errors; inbound turns degrade to the classify fallback,
// which is all the HTTP tests need.
type failingChat struct{}

func (failingChat) Complete(context.Context, llm.CompletionRequest) (string, error) {
	return "", errors.New("no model in tests")
}

type noopSender struct{}

func (noopSender) SendText(context.Context, string, string, string, string) (string, error) {
	return "wamid." + uuid.New().String(), nil
}

type serverFixture struct {
	mem *storetest.Memory
	srv *Server
	ts  *httptest.Server
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()

	mem := storetest.New()
	mem.AddIntegration(&ent.Integration{
		ID:            "integ-1",
		OrgID:         "org-1",
		PhoneNumberID: "pn-1",
		BusinessName:  "Acme Tutoring",
	})

	cfg := &config.Config{
		VerifyToken:   testVerifyToken,
		OperatorToken: testOperatorToken,
		LadderOffsets: []time.Duration{10 * time.Minute, 3 * time.Hour, 6 * time.Hour},
		MaxWords:      80,
	}

	pipe := pipeline.New(failingChat{}, pipeline.Config{MaxAttempts: 1, RetryBaseDelay: time.Millisecond})
	ladder := scheduler.NewLadder(mem, cfg.LadderOffsets)
	bus := events.NewBus(time.Second)
	orch := orchestrator.New(mem, pipe, noopSender{}, ladder, events.NewPublisher(bus), orchestrator.Config{
		MaxWords: cfg.MaxWords,
	})
	t.Cleanup(orch.Close)

	srv := NewServer(cfg, nil, orch, bus)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &serverFixture{mem: mem, srv: srv, ts: ts}
}

func TestHealthEndpoint(t *testing.T) {
	f := newServerFixture(t)

	resp, err := http.Get(f.ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["version"])
}

func (f *serverFixture) seedConversation(convID string) {
	f.mem.SeedLead(&ent.Lead{ID: "lead-1", OrgID: "org-1", Phone: "15551230001"})
	f.mem.SeedConversation(&ent.Conversation{
		ID:            convID,
		OrgID:         "org-1",
		LeadID:        "lead-1",
		Mode:          conversation.ModeBot,
		Stage:         conversation.StageGreeting,
		IntentLevel:   conversation.IntentLevelUnknown,
		UserSentiment: conversation.UserSentimentNeutral,
	})
}
