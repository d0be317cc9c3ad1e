package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookVerify(t *testing.T) {
	f := newServerFixture(t)

	get := func(query string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/webhook/whatsapp?"+query, nil)
		rec := httptest.NewRecorder()
		f.srv.Handler().ServeHTTP(rec, req)
		return rec
	}

	t.Run("valid handshake echoes the challenge", func(t *testing.T) {
		rec := get("hub.mode=subscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=12345")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "12345", rec.Body.String())
	})

	t.Run("wrong token is rejected", func(t *testing.T) {
		rec := get("hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("wrong mode is rejected", func(t *testing.T) {
		rec := get("hub.mode=unsubscribe&hub.verify_token=" + testVerifyToken + "&hub.challenge=12345")
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing parameters", func(t *testing.T) {
		rec := get("hub.challenge=12345")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func webhookBody(providerMsgID, text string) string {
	return fmt.Sprintf(`{
		"object": "whatsapp_business_account",
		"entry": [{"changes": [{"value": {
			"metadata": {"phone_number_id": "pn-1"},
			"contacts": [{"wa_id": "15551230001", "profile": {"name": "Sam"}}],
			"messages": [{
				"from": "15551230001",
				"id": %q,
				"timestamp": "1767950000",
				"type": "text",
				"text": {"body": %q}
			}]
		}}]}]
	}`, providerMsgID, text)
}

func (f *serverFixture) postWebhook(t *testing.T, body string) int {
	t.Helper()
	resp, err := http.Post(f.ts.URL+"/webhook/whatsapp", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
	return resp.StatusCode
}

func (f *serverFixture) inboundCount() int {
	return f.mem.CountMessages("lead")
}

func TestWebhookReceive(t *testing.T) {
	f := newServerFixture(t)

	code := f.postWebhook(t, webhookBody("wamid.R1", "hi there"))
	assert.Equal(t, http.StatusOK, code, "always acknowledged immediately")

	// Processing is detached from the request.
	require.Eventually(t, func() bool {
		return f.inboundCount() == 1
	}, 5*time.Second, 10*time.Millisecond)
}

func TestWebhookReceiveDeduplicates(t *testing.T) {
	f := newServerFixture(t)

	f.postWebhook(t, webhookBody("wamid.DUP", "hello"))
	require.Eventually(t, func() bool {
		return f.inboundCount() == 1
	}, 5*time.Second, 10*time.Millisecond)

	// The provider redelivers the same message id.
	f.postWebhook(t, webhookBody("wamid.DUP", "hello"))
	assert.Never(t, func() bool {
		return f.inboundCount() > 1
	}, 300*time.Millisecond, 20*time.Millisecond)
}

func TestWebhookReceiveMalformedDropped(t *testing.T) {
	f := newServerFixture(t)

	code := f.postWebhook(t, `this is not json at all`)
	// Returning an error would only make the provider redeliver the same
	// garbage.
	assert.Equal(t, http.StatusOK, code)
	assert.Never(t, func() bool {
		return f.inboundCount() > 0
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestWebhookReceiveStatusOnly(t *testing.T) {
	f := newServerFixture(t)

	code := f.postWebhook(t, `{
		"entry": [{"changes": [{"value": {
			"metadata": {"phone_number_id": "pn-1"},
			"statuses": [{"id": "wamid.S", "status": "delivered"}]
		}}]}]
	}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Never(t, func() bool {
		return f.inboundCount() > 0
	}, 200*time.Millisecond, 20*time.Millisecond)
}

func TestWebhookReceiveUnknownIntegrationRetriable(t *testing.T) {
	f := newServerFixture(t)

	body := bytes.ReplaceAll([]byte(webhookBody("wamid.U1", "hi")), []byte("pn-1"), []byte("pn-unknown"))
	code := f.postWebhook(t, string(body))
	assert.Equal(t, http.StatusOK, code)

	// Processing failed, so the dedup entry is dropped and a redelivery gets
	// another attempt.
	require.Eventually(t, func() bool {
		_, dup := f.srv.seen.Get("wamid.U1")
		return !dup
	}, 5*time.Second, 10*time.Millisecond)
}
