package whatsapp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody sendRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.ABC123"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, APIVersion: "v19.0"})
	id, err := c.SendText(context.Background(), "pn-1", "integ-token", "15551230001", "hello there")
	require.NoError(t, err)

	assert.Equal(t, "wamid.ABC123", id)
	assert.Equal(t, "/v19.0/pn-1/messages", gotPath)
	assert.Equal(t, "Bearer integ-token", gotAuth)
	assert.Equal(t, "whatsapp", gotBody.MessagingProduct)
	assert.Equal(t, "15551230001", gotBody.To)
	assert.Equal(t, "text", gotBody.Type)
	assert.Equal(t, "hello there", gotBody.Text.Body)
}

func TestSendTextTokenFallback(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"messages":[{"id":"wamid.X"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, AccessToken: "process-token"})
	_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
	require.NoError(t, err)
	assert.Equal(t, "Bearer process-token", gotAuth)
}

func TestSendTextErrors(t *testing.T) {
	t.Run("provider error response", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":{"message":"invalid token","type":"OAuthException","code":190}}`))
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL, AccessToken: "t"})
		_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrTransport)
		assert.Contains(t, err.Error(), "invalid token")
	})

	t.Run("non json failure body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream exploded"))
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL, AccessToken: "t"})
		_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("success without message id", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"messages":[]}`))
		}))
		defer srv.Close()

		c := NewClient(Config{BaseURL: srv.URL, AccessToken: "t"})
		_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("connection refused", func(t *testing.T) {
		c := NewClient(Config{BaseURL: "http://127.0.0.1:1", AccessToken: "t", Timeout: time.Second})
		_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
		assert.ErrorIs(t, err, ErrTransport)
	})

	t.Run("missing recipient or body", func(t *testing.T) {
		c := NewClient(Config{AccessToken: "t"})
		_, err := c.SendText(context.Background(), "pn-1", "", "", "hi")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrTransport, "validation failures are not transport failures")

		_, err = c.SendText(context.Background(), "pn-1", "", "15551230001", "")
		require.Error(t, err)
	})

	t.Run("no token anywhere", func(t *testing.T) {
		c := NewClient(Config{})
		_, err := c.SendText(context.Background(), "pn-1", "", "15551230001", "hi")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrTransport)
	})
}
