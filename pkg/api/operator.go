package api

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leadline-ai/leadline/pkg/store"
)

// operatorAuth guards the operator verbs with the shared operator token,
// accepted as "Authorization: Bearer <token>" or a ?token= query parameter.
// Identity and per-user authorization live at the trusted edge in front of
// this service; the token only separates operators from the open internet.
func (s *Server) operatorAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.validOperatorToken(extractToken(c)) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

func (s *Server) validOperatorToken(token string) bool {
	return token != "" &&
		subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.OperatorToken)) == 1
}

func extractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		if t, ok := strings.CutPrefix(auth, "Bearer "); ok {
			return t
		}
	}
	return c.Query("token")
}

func (s *Server) takeoverHandler(c *gin.Context) {
	s.operatorVerb(c, s.orch.Takeover)
}

func (s *Server) releaseHandler(c *gin.Context) {
	s.operatorVerb(c, s.orch.Release)
}

func (s *Server) resolveAttentionHandler(c *gin.Context) {
	s.operatorVerb(c, s.orch.ResolveAttention)
}

// operatorVerb runs one conversation verb on its serial lane and maps store
// errors to HTTP statuses.
func (s *Server) operatorVerb(c *gin.Context, verb func(ctx context.Context, conversationID string) error) {
	conversationID := c.Param("id")
	if conversationID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "conversation id is required"})
		return
	}

	if err := verb(c.Request.Context(), conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
			return
		}
		s.logger.Error("operator verb failed",
			"conversation_id", conversationID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}
