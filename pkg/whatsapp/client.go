// Package whatsapp speaks the WhatsApp Cloud API: outbound text sends and
// the inbound webhook envelope.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/leadline-ai/leadline/pkg/masking"
)

// ErrTransport marks a send failure where delivery state is unknown. The
// orchestrator reacts by raising human attention instead of retrying: a
// retry risks a double send, and silence is the cheaper failure.
var ErrTransport = errors.New("whatsapp transport error")

// Config holds the Cloud API endpoint settings.
type Config struct {
	BaseURL     string
	APIVersion  string
	AccessToken string // process-wide fallback when the integration row has none
	Timeout     time.Duration
}

// DefaultConfig returns the Graph API defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL:    "https://graph.facebook.com",
		APIVersion: "v19.0",
		Timeout:    10 * time.Second,
	}
}

// Client sends messages through the Cloud API.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
	mask   *masking.Service
}

// NewClient creates a Cloud API client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultConfig().BaseURL
	}
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultConfig().APIVersion
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: slog.Default().With("component", "whatsapp"),
		mask:   masking.NewService(),
	}
}

type sendRequest struct {
	MessagingProduct string   `json:"messaging_product"`
	To               string   `json:"to"`
	Type             string   `json:"type"`
	Text             sendText `json:"text"`
}

type sendText struct {
	Body string `json:"body"`
}

type sendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// SendText posts one text message from a phone number to a recipient.
// accessToken may be empty, in which case the process-wide token is used.
// Returns the provider message id on success.
func (c *Client) SendText(ctx context.Context, phoneNumberID, accessToken, to, body string) (string, error) {
	if to == "" || body == "" {
		return "", fmt.Errorf("whatsapp send: recipient and body are required")
	}
	token := accessToken
	if token == "" {
		token = c.cfg.AccessToken
	}
	if token == "" {
		return "", fmt.Errorf("whatsapp send: no access token configured")
	}

	payload, err := json.Marshal(sendRequest{
		MessagingProduct: "whatsapp",
		To:               to,
		Type:             "text",
		Text:             sendText{Body: body},
	})
	if err != nil {
		return "", fmt.Errorf("whatsapp send: marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/messages", c.cfg.BaseURL, c.cfg.APIVersion, phoneNumberID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("whatsapp send: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: read response: %v", ErrTransport, err)
	}

	var parsed sendResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return "", fmt.Errorf("%w: unparseable success response", ErrTransport)
		}
		return "", fmt.Errorf("%w: status %d", ErrTransport, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 || parsed.Error != nil {
		msg := "unknown error"
		if parsed.Error != nil {
			msg = parsed.Error.Message
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrTransport, resp.StatusCode, msg)
	}
	if len(parsed.Messages) == 0 {
		return "", fmt.Errorf("%w: response carried no message id", ErrTransport)
	}

	c.logger.Debug("message sent",
		"phone_number_id", phoneNumberID,
		"to", c.mask.MaskPhone(to),
		"duration_ms", time.Since(start).Milliseconds())

	return parsed.Messages[0].ID, nil
}
