package api

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/pkg/events"
)

func dialOperator(t *testing.T, f *serverFixture, query string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := strings.Replace(f.ts.URL, "http", "ws", 1) + "/ws/operator?" + query
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)
	var frame map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func TestOperatorWebSocket(t *testing.T) {
	f := newServerFixture(t)

	conn := dialOperator(t, f, "token="+testOperatorToken+"&org_id=org-1")
	frame := readFrame(t, conn)
	assert.Equal(t, events.EventTypeConnectionEstablished, frame["event"])
}

func TestOperatorWebSocketRejectsBadToken(t *testing.T) {
	f := newServerFixture(t)

	conn := dialOperator(t, f, "token=wrong&org_id=org-1")
	// The upgrade succeeds so the client can read why it is being dropped.
	frame := readFrame(t, conn)
	assert.Equal(t, "unauthorized", frame["error"])
}

func TestOperatorWebSocketRequiresOrg(t *testing.T) {
	f := newServerFixture(t)

	conn := dialOperator(t, f, "token="+testOperatorToken)
	frame := readFrame(t, conn)
	assert.Equal(t, "unauthorized", frame["error"])
}

func TestOperatorWebSocketReceivesEvents(t *testing.T) {
	f := newServerFixture(t)

	conn := dialOperator(t, f, "token="+testOperatorToken+"&org_id=org-1")
	readFrame(t, conn) // connection.established

	require.Eventually(t, func() bool {
		return f.srv.bus.ActiveSessions() == 1
	}, 2*time.Second, 10*time.Millisecond)

	// An inbound webhook message surfaces on the dashboard socket.
	f.postWebhook(t, webhookBody("wamid.WS1", "hello dashboard"))

	frame := readFrame(t, conn)
	assert.Equal(t, events.EventTypeMessageCreated, frame["event"])
}
