package events

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// Bus fans operator events out to connected WebSocket sessions. Each process
// has one Bus instance; sessions are grouped by the organization their token
// resolved to, and a broadcast only reaches that organization's sessions.
type Bus struct {
	// Active connections: connection_id → *session
	sessions map[string]*session
	mu       sync.RWMutex

	// Organization membership: org_id → set of connection_ids
	orgs  map[string]map[string]bool
	orgMu sync.RWMutex

	writeTimeout time.Duration
}

// session is a single connected operator dashboard.
type session struct {
	id    string
	orgID string
	conn  *websocket.Conn
	ctx   context.Context
}

// NewBus creates an operator event bus.
func NewBus(writeTimeout time.Duration) *Bus {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Bus{
		sessions:     make(map[string]*session),
		orgs:         make(map[string]map[string]bool),
		writeTimeout: writeTimeout,
	}
}

// HandleConnection manages the lifecycle of one authenticated WebSocket
// session. Called by the HTTP handler after upgrade and token validation.
// Blocks until the connection closes.
func (b *Bus) HandleConnection(parentCtx context.Context, conn *websocket.Conn, orgID string) {
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	s := &session{
		id:    uuid.New().String(),
		orgID: orgID,
		conn:  conn,
		ctx:   ctx,
	}

	b.register(s)
	defer b.unregister(s)

	b.sendJSON(s, Envelope{
		Event: EventTypeConnectionEstablished,
		Payload: map[string]string{
			"connection_id": s.id,
			"org_id":        orgID,
		},
	})

	// Read loop. Client frames are best-effort: ping gets a pong, anything
	// else is accepted and dropped.
	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid operator WebSocket frame", "connection_id", s.id, "error", err)
			continue
		}
		if msg.Action == "ping" {
			b.sendJSON(s, map[string]string{"type": "pong"})
		}
	}
}

// Broadcast sends a raw frame to every session of one organization.
func (b *Bus) Broadcast(orgID string, data []byte) {
	b.orgMu.RLock()
	members, exists := b.orgs[orgID]
	if !exists {
		b.orgMu.RUnlock()
		return
	}
	ids := make([]string, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	b.orgMu.RUnlock()

	// Snapshot session pointers under the lock, release before sending: a
	// slow client may hold a write for up to writeTimeout and must not
	// stall register/unregister.
	b.mu.RLock()
	targets := make([]*session, 0, len(ids))
	for _, id := range ids {
		if s, ok := b.sessions[id]; ok {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range targets {
		if err := b.sendRaw(s, data); err != nil {
			slog.Warn("Failed to send operator event",
				"connection_id", s.id, "org_id", orgID, "error", err)
		}
	}
}

// ActiveSessions returns the count of connected operator sessions.
func (b *Bus) ActiveSessions() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.sessions)
}

// orgSessionCount returns the subscriber count of one organization.
// Unexported; used by tests to poll instead of sleeping.
func (b *Bus) orgSessionCount(orgID string) int {
	b.orgMu.RLock()
	defer b.orgMu.RUnlock()
	return len(b.orgs[orgID])
}

func (b *Bus) register(s *session) {
	b.mu.Lock()
	b.sessions[s.id] = s
	b.mu.Unlock()

	b.orgMu.Lock()
	if _, ok := b.orgs[s.orgID]; !ok {
		b.orgs[s.orgID] = make(map[string]bool)
	}
	b.orgs[s.orgID][s.id] = true
	b.orgMu.Unlock()
}

func (b *Bus) unregister(s *session) {
	b.orgMu.Lock()
	if members, ok := b.orgs[s.orgID]; ok {
		delete(members, s.id)
		if len(members) == 0 {
			delete(b.orgs, s.orgID)
		}
	}
	b.orgMu.Unlock()

	b.mu.Lock()
	delete(b.sessions, s.id)
	b.mu.Unlock()

	_ = s.conn.Close(websocket.StatusNormalClosure, "")
}

func (b *Bus) sendJSON(s *session, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Warn("Failed to marshal operator event", "connection_id", s.id, "error", err)
		return
	}
	if err := b.sendRaw(s, data); err != nil {
		slog.Warn("Failed to send operator frame", "connection_id", s.id, "error", err)
	}
}

func (b *Bus) sendRaw(s *session, data []byte) error {
	writeCtx, cancel := context.WithTimeout(s.ctx, b.writeTimeout)
	defer cancel()
	return s.conn.Write(writeCtx, websocket.MessageText, data)
}
