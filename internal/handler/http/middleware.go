package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/StorefrontGo/pkg/httputil"
	"github.com/utafrali/StorefrontGo/pkg/logger"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey string

// sessionIDKey is the context key for the browsing session ID.
const sessionIDKey contextKey = "session_id"

// SessionCookieName is the cookie carrying the browsing session ID.
const SessionCookieName = "sid"

// SessionHeaderName is the header alternative for clients that do not use
// cookies (mobile apps, API consumers).
const SessionHeaderName = "X-Session-ID"

// sessionCookieMaxAge keeps the anonymous session for 30 days.
const sessionCookieMaxAge = 30 * 24 * time.Hour

// Session is middleware that resolves the browsing session identity. It reads
// the session cookie or the X-Session-ID header; when neither is present it
// mints a new session ID and sets the cookie, so a first-time visitor gets a
// working cart without any signup. The resolved ID is stored in the request
// context and attached to the logging context.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := ""
		if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
			sid = c.Value
		}
		if sid == "" {
			sid = r.Header.Get(SessionHeaderName)
		}
		if sid == "" {
			sid = uuid.New().String()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookieName,
				Value:    sid,
				Path:     "/",
				MaxAge:   int(sessionCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sid)
		ctx = logger.WithSessionID(ctx, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext extracts the browsing session ID from the request
// context. Returns the ID and true if present.
func sessionFromContext(ctx context.Context) (string, bool) {
	sid, ok := ctx.Value(sessionIDKey).(string)
	return sid, ok && sid != ""
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodPatch {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{
						Code:    "UNSUPPORTED_MEDIA_TYPE",
						Message: "Content-Type must be application/json",
					},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
