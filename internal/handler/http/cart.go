package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/StorefrontGo/internal/domain"
	"github.com/utafrali/StorefrontGo/internal/service"
	"github.com/utafrali/StorefrontGo/pkg/httputil"
	"github.com/utafrali/StorefrontGo/pkg/validator"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// --- Request DTOs ---

// AddItemRequest is the JSON request body for adding one unit of a product.
// There is no quantity field: repeat the call to add more units.
type AddItemRequest struct {
	ProductID     int64  `json:"product_id" validate:"required,gt=0"`
	Variant       string `json:"variant"`
	Name          string `json:"name" validate:"required,min=1,max=500"`
	Image         string `json:"image"`
	Price         int64  `json:"price" validate:"gte=0"`
	OriginalPrice int64  `json:"original_price" validate:"gte=0"`
}

// UpdateQuantityRequest is the JSON request body for setting a line's quantity.
// A quantity of zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int    `json:"quantity"`
	Variant  string `json:"variant"`
}

// SetOpenRequest is the JSON request body for the cart drawer flag.
type SetOpenRequest struct {
	Open bool `json:"open"`
}

// --- Handlers ---

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	cart, err := h.service.Get(r.Context(), sid)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartPayload(cart)})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	input := service.AddItemInput{
		ProductID:     req.ProductID,
		Variant:       req.Variant,
		Name:          req.Name,
		Image:         req.Image,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
	}

	cart, err := h.service.AddItem(r.Context(), sid, input)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartPayload(cart)})
}

// UpdateItemQuantity handles PUT /api/v1/cart/items/{productID}
func (h *CartHandler) UpdateItemQuantity(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	var req UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	cart, err := h.service.UpdateQuantity(r.Context(), sid, productID, req.Variant, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartPayload(cart)})
}

// RemoveItem handles DELETE /api/v1/cart/items/{productID}?variant=
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	productID, ok := parseProductID(w, r)
	if !ok {
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), sid, productID, r.URL.Query().Get("variant"))
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartPayload(cart)})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	if err := h.service.Clear(r.Context(), sid); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: map[string]string{"status": "cleared"}})
}

// SetOpen handles PUT /api/v1/cart/open
func (h *CartHandler) SetOpen(w http.ResponseWriter, r *http.Request) {
	sid, ok := sessionFromContext(r.Context())
	if !ok {
		writeMissingSession(w)
		return
	}

	var req SetOpenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	cart, err := h.service.SetOpen(r.Context(), sid, req.Open)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: cartPayload(cart)})
}

// --- Helpers ---

// cartResponse decorates a cart with its derived totals so clients never have
// to compute them. Recomputed on every response.
type cartResponse struct {
	Cart      *domain.Cart `json:"cart"`
	ItemCount int          `json:"item_count"`
	Subtotal  int64        `json:"subtotal"`
}

func cartPayload(cart *domain.Cart) cartResponse {
	return cartResponse{
		Cart:      cart,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}
}

func parseProductID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "INVALID_PARAMETER", Message: "invalid product id: " + raw},
		})
		return 0, false
	}
	return id, true
}

func writeMissingSession(w http.ResponseWriter) {
	httputil.WriteJSON(w, http.StatusBadRequest, httputil.Response{
		Error: &httputil.ErrorResponse{Code: "INVALID_INPUT", Message: "session could not be resolved"},
	})
}
