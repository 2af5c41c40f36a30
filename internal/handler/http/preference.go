package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/utafrali/StorefrontGo/internal/service"
	"github.com/utafrali/StorefrontGo/pkg/httputil"
)

// PreferenceHandler handles HTTP requests for session preference endpoints.
type PreferenceHandler struct {
	service *service.PreferenceService
	logger  *slog.Logger
}

// NewPreferenceHandler creates a new preference HTTP handler.
func NewPreferenceHandler(svc *service.PreferenceService, logger *slog.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		service: svc,
		logger:  logger,
	}
}

// SetThemeRequest is the JSON request body for updating the theme.
type SetThemeRequest struct {
	Theme string `json:"theme"`
}

// GetTheme handles GET /api/v1/preferences/theme
func (h *PreferenceHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	theme, err := h.service.GetTheme(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"theme": theme}})
}

// SetTheme handles PUT /api/v1/preferences/theme
func (h *PreferenceHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := h.service.SetTheme(r.Context(), sid, req.Theme); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"theme": req.Theme}})
}
