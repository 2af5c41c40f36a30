package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/StorefrontGo/internal/service"
	"github.com/utafrali/StorefrontGo/pkg/httputil"
	"github.com/utafrali/StorefrontGo/pkg/validator"
)

// CheckoutHandler handles HTTP requests for checkout and order endpoints.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// Quote handles GET /api/v1/checkout/quote
func (h *CheckoutHandler) Quote(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	totals, err := h.service.Quote(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: totals})
}

// PlaceOrder handles POST /api/v1/checkout
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req service.PlaceOrderInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	order, err := h.service.PlaceOrder(r.Context(), sid, req)
	if err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			httputil.WriteValidationError(w, err)
			return
		}
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

// GetOrder handles GET /api/v1/orders/{id}
func (h *CheckoutHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "id")

	order, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: order})
}
