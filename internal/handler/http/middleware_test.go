package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Session middleware
// ============================================================================

func sessionProbe(captured *string) http.Handler {
	return Session(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sid, ok := sessionFromContext(r.Context()); ok {
			*captured = sid
		}
		w.WriteHeader(http.StatusOK)
	}))
}

func TestSession_MintsIDAndSetsCookie(t *testing.T) {
	var sid string
	handler := sessionProbe(&sid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, sid)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookieName, cookies[0].Name)
	assert.Equal(t, sid, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSession_ReadsCookie(t *testing.T) {
	var sid string
	handler := sessionProbe(&sid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-cookie"})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "sess-cookie", sid)
	assert.Empty(t, rec.Result().Cookies(), "existing session must not be re-minted")
}

func TestSession_ReadsHeader(t *testing.T) {
	var sid string
	handler := sessionProbe(&sid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(SessionHeaderName, "sess-header")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "sess-header", sid)
}

func TestSession_CookieWinsOverHeader(t *testing.T) {
	var sid string
	handler := sessionProbe(&sid)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "sess-cookie"})
	req.Header.Set(SessionHeaderName, "sess-header")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "sess-cookie", sid)
}

func TestSessionFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	sid, ok := sessionFromContext(req.Context())
	assert.False(t, ok)
	assert.Empty(t, sid)
}

// ============================================================================
// ContentTypeJSON middleware
// ============================================================================

func TestContentTypeJSON_RejectsNonJSON(t *testing.T) {
	called := false
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("data")))
	req.Header.Set("Content-Type", "text/plain")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)
	assert.False(t, called, "handler should not have been called")
}

func TestContentTypeJSON_AcceptsJSON(t *testing.T) {
	called := false
	handler := ContentTypeJSON(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called, "handler should have been called")
}
