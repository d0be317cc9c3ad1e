package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newBusServer serves the bus over a test HTTP endpoint; org membership comes
// from the org_id query parameter, the way the API layer passes it after auth.
func newBusServer(t *testing.T, bus *Bus) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		bus.HandleConnection(r.Context(), conn, r.URL.Query().Get("org_id"))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func dialBus(t *testing.T, srv *httptest.Server, orgID string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := strings.Replace(srv.URL, "http", "ws", 1) + "?org_id=" + orgID
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readEnvelope(t *testing.T, conn *websocket.Conn) Envelope {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var env Envelope
	require.NoError(t, json.Unmarshal(data, &env))
	return env
}

func TestBusConnectionEstablished(t *testing.T) {
	bus := NewBus(time.Second)
	srv := newBusServer(t, bus)

	conn := dialBus(t, srv, "org-a")
	env := readEnvelope(t, conn)

	assert.Equal(t, EventTypeConnectionEstablished, env.Event)
	payload, ok := env.Payload.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "org-a", payload["org_id"])
	assert.NotEmpty(t, payload["connection_id"])
}

func TestBusBroadcastScopedToOrg(t *testing.T) {
	bus := NewBus(time.Second)
	srv := newBusServer(t, bus)

	a1 := dialBus(t, srv, "org-a")
	a2 := dialBus(t, srv, "org-a")
	b := dialBus(t, srv, "org-b")
	readEnvelope(t, a1)
	readEnvelope(t, a2)
	readEnvelope(t, b)

	require.Eventually(t, func() bool {
		return bus.orgSessionCount("org-a") == 2 && bus.orgSessionCount("org-b") == 1
	}, 2*time.Second, 10*time.Millisecond)

	bus.Broadcast("org-a", []byte(`{"event":"conversation.updated","payload":{}}`))

	assert.Equal(t, EventTypeConversationUpdated, readEnvelope(t, a1).Event)
	assert.Equal(t, EventTypeConversationUpdated, readEnvelope(t, a2).Event)

	// org-b's next frame is its own broadcast, proving the org-a frame never
	// reached it.
	bus.Broadcast("org-b", []byte(`{"event":"message.created","payload":{}}`))
	assert.Equal(t, EventTypeMessageCreated, readEnvelope(t, b).Event)
}

func TestBusBroadcastToEmptyOrg(t *testing.T) {
	bus := NewBus(time.Second)
	// No sessions at all; must not panic.
	bus.Broadcast("org-nobody", []byte(`{}`))
}

func TestBusUnregisterOnClose(t *testing.T) {
	bus := NewBus(time.Second)
	srv := newBusServer(t, bus)

	conn := dialBus(t, srv, "org-a")
	readEnvelope(t, conn)
	require.Eventually(t, func() bool { return bus.ActiveSessions() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close(websocket.StatusNormalClosure, "done"))

	require.Eventually(t, func() bool {
		return bus.ActiveSessions() == 0 && bus.orgSessionCount("org-a") == 0
	}, 2*time.Second, 10*time.Millisecond)
}

func TestBusPingPong(t *testing.T) {
	bus := NewBus(time.Second)
	srv := newBusServer(t, bus)

	conn := dialBus(t, srv, "org-a")
	readEnvelope(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"action":"ping"}`)))

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"pong"}`, string(data))
}

func TestBusIgnoresUnknownFrames(t *testing.T) {
	bus := NewBus(time.Second)
	srv := newBusServer(t, bus)

	conn := dialBus(t, srv, "org-a")
	readEnvelope(t, conn)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`not json`)))
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte(`{"action":"dance"}`)))

	// The session survives garbage and still receives broadcasts.
	require.Eventually(t, func() bool { return bus.orgSessionCount("org-a") == 1 }, 2*time.Second, 10*time.Millisecond)
	bus.Broadcast("org-a", []byte(`{"event":"message.created","payload":{}}`))
	assert.Equal(t, EventTypeMessageCreated, readEnvelope(t, conn).Event)
}
