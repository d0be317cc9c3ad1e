package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leadline-ai/leadline/ent/conversation"
	"github.com/leadline-ai/leadline/pkg/models"
)

func (f *serverFixture) postVerb(t *testing.T, path, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestOperatorAuth(t *testing.T) {
	f := newServerFixture(t)
	f.seedConversation("conv-1")

	t.Run("missing token", func(t *testing.T) {
		rec := f.postVerb(t, "/api/conversations/conv-1/takeover", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong token", func(t *testing.T) {
		rec := f.postVerb(t, "/api/conversations/conv-1/takeover", "nope")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("query token accepted", func(t *testing.T) {
		rec := f.postVerb(t, "/api/conversations/conv-1/release?token="+testOperatorToken, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOperatorTakeoverAndRelease(t *testing.T) {
	f := newServerFixture(t)
	f.seedConversation("conv-1")

	rec := f.postVerb(t, "/api/conversations/conv-1/takeover", testOperatorToken)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["ok"])

	conv, err := f.mem.GetConversation(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Equal(t, conversation.ModeHuman, conv.Mode)

	rec = f.postVerb(t, "/api/conversations/conv-1/release", testOperatorToken)
	require.Equal(t, http.StatusOK, rec.Code)

	conv, err = f.mem.GetConversation(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.Equal(t, conversation.ModeBot, conv.Mode)
}

func TestOperatorResolveAttention(t *testing.T) {
	f := newServerFixture(t)
	f.seedConversation("conv-1")
	flag := true
	_, err := f.mem.UpdateConversation(context.Background(), "conv-1", models.ConversationPatch{
		NeedsHumanAttention: &flag,
	})
	require.NoError(t, err)

	rec := f.postVerb(t, "/api/conversations/conv-1/resolve-attention", testOperatorToken)
	require.Equal(t, http.StatusOK, rec.Code)

	conv, err := f.mem.GetConversation(context.Background(), "conv-1")
	require.NoError(t, err)
	assert.False(t, conv.NeedsHumanAttention)
	assert.NotNil(t, conv.HumanAttentionResolvedAt)
}

func TestOperatorVerbUnknownConversation(t *testing.T) {
	f := newServerFixture(t)

	rec := f.postVerb(t, "/api/conversations/missing/takeover", testOperatorToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
