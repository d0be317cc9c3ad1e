package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/leadline-ai/leadline/pkg/whatsapp"
)

// webhookVerifyHandler handles the provider's subscription handshake:
// GET /webhook/whatsapp?hub.mode=subscribe&hub.verify_token=…&hub.challenge=…
// The challenge is echoed back verbatim on a token match.
func (s *Server) webhookVerifyHandler(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "" || token == "" {
		c.String(http.StatusBadRequest, "missing hub parameters")
		return
	}
	if mode != "subscribe" || token != s.cfg.VerifyToken {
		s.logger.Warn("webhook verification rejected", "mode", mode)
		c.String(http.StatusForbidden, "verification failed")
		return
	}

	s.logger.Info("webhook verified")
	c.String(http.StatusOK, challenge)
}

// webhookReceiveHandler accepts the provider envelope and acknowledges
// immediately; processing runs detached on the conversation's serial lane.
// Malformed payloads are dropped with a log; returning an error would only
// make the provider redeliver the same garbage.
func (s *Server) webhookReceiveHandler(c *gin.Context) {
	var envelope whatsapp.WebhookEnvelope
	if err := c.ShouldBindJSON(&envelope); err != nil {
		s.logger.Warn("malformed webhook payload dropped", "error", err)
		c.Status(http.StatusOK)
		return
	}

	// Status-only callbacks (delivery receipts) extract to nothing and are
	// acknowledged here.
	messages := envelope.ExtractMessages(time.Now())
	for _, msg := range messages {
		if msg.ProviderMsgID != "" {
			if _, dup := s.seen.Get(msg.ProviderMsgID); dup {
				s.logger.Debug("duplicate webhook message suppressed",
					"provider_msg_id", msg.ProviderMsgID)
				continue
			}
			s.seen.Add(msg.ProviderMsgID, struct{}{})
		}
		s.logger.Info("inbound message accepted",
			"phone_number_id", msg.PhoneNumberID,
			"from", s.mask.MaskPhone(msg.From),
			"provider_msg_id", msg.ProviderMsgID)
		go s.processInbound(msg)
	}

	c.Status(http.StatusOK)
}

// processInbound runs one inbound message through the orchestrator, detached
// from the webhook request. On failure the dedup entry is dropped so the
// provider's redelivery gets another attempt.
func (s *Server) processInbound(msg whatsapp.InboundMessage) {
	ctx, cancel := context.WithTimeout(context.Background(), inboundTimeout)
	defer cancel()

	if err := s.orch.HandleUserMessage(ctx, msg); err != nil {
		s.logger.Error("inbound message processing failed",
			"phone_number_id", msg.PhoneNumberID,
			"provider_msg_id", msg.ProviderMsgID,
			"error", err)
		if msg.ProviderMsgID != "" {
			s.seen.Remove(msg.ProviderMsgID)
		}
	}
}
