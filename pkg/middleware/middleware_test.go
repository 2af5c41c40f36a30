package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/utafrali/StorefrontGo/pkg/logger"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func TestRecovery_PanicReturns500(t *testing.T) {
	l := logger.New("test", "error")
	h := Recovery(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestRecovery_PassThrough(t *testing.T) {
	l := logger.New("test", "error")
	h := Recovery(l)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequestLogging_SetsCorrelationIDHeader(t *testing.T) {
	l := logger.New("test", "error")
	h := RequestLogging(l)(okHandler())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
}

func TestRequestLogging_PreservesInboundCorrelationID(t *testing.T) {
	l := logger.New("test", "error")
	h := RequestLogging(l)(okHandler())

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Correlation-ID", "corr-42")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, "corr-42", rec.Header().Get("X-Correlation-ID"))
}

func TestCORS_Preflight(t *testing.T) {
	h := CORS(DefaultCORSConfig())(okHandler())

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/cart", nil)
	r.Header.Set("Origin", "http://localhost:5173")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "X-Session-ID")
}

func TestCORS_RestrictedOrigin(t *testing.T) {
	cfg := CORSConfig{
		AllowedOrigins: []string{"https://shop.example.com"},
		Environment:    "production",
	}
	h := CORS(cfg)(okHandler())

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Origin", "https://evil.example.com")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	r.Header.Set("Origin", "https://shop.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	assert.Equal(t, "https://shop.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
