// Package api is the HTTP surface: the WhatsApp webhook pair, the operator
// control verbs, the operator WebSocket and health.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/leadline-ai/leadline/pkg/config"
	"github.com/leadline-ai/leadline/pkg/database"
	"github.com/leadline-ai/leadline/pkg/events"
	"github.com/leadline-ai/leadline/pkg/masking"
	"github.com/leadline-ai/leadline/pkg/orchestrator"
	"github.com/leadline-ai/leadline/pkg/version"
)

const (
	// dedupSize and dedupTTL bound the webhook seen-set. The provider
	// redelivers within minutes; an hour of memory is plenty.
	dedupSize = 4096
	dedupTTL  = time.Hour

	// inboundTimeout bounds one detached inbound processing run: three LLM
	// calls plus persistence.
	inboundTimeout = 2 * time.Minute
)

// Server is the HTTP server.
type Server struct {
	cfg    *config.Config
	db     *database.Client
	orch   *orchestrator.Orchestrator
	bus    *events.Bus
	logger *slog.Logger
	mask   *masking.Service

	// Webhook dedup seen-set keyed by provider message id.
	seen *lru.LRU[string, struct{}]

	engine *gin.Engine
	http   *http.Server
}

// NewServer creates the HTTP server and wires the routes.
func NewServer(cfg *config.Config, db *database.Client, orch *orchestrator.Orchestrator, bus *events.Bus) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:    cfg,
		db:     db,
		orch:   orch,
		bus:    bus,
		logger: slog.Default().With("component", "api"),
		mask:   masking.NewService(),
		seen:   lru.NewLRU[string, struct{}](dedupSize, nil, dedupTTL),
		engine: engine,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.engine.GET("/health", s.healthHandler)

	s.engine.GET("/webhook/whatsapp", s.webhookVerifyHandler)
	s.engine.POST("/webhook/whatsapp", s.webhookReceiveHandler)

	s.engine.GET("/ws/operator", s.wsHandler)

	ops := s.engine.Group("/api", s.operatorAuth())
	ops.POST("/conversations/:id/takeover", s.takeoverHandler)
	ops.POST("/conversations/:id/release", s.releaseHandler)
	ops.POST("/conversations/:id/resolve-attention", s.resolveAttentionHandler)
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start(addr string) error {
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) healthHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, gin.H{
			"status":            "healthy",
			"version":           version.Full(),
			"operator_sessions": s.bus.ActiveSessions(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":            "healthy",
		"version":           version.Full(),
		"database":          dbHealth,
		"operator_sessions": s.bus.ActiveSessions(),
	})
}
