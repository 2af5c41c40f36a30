package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/StorefrontGo/internal/domain"
	"github.com/utafrali/StorefrontGo/internal/event"
	"github.com/utafrali/StorefrontGo/internal/repository"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
	"github.com/utafrali/StorefrontGo/pkg/validator"
)

// PlaceOrderInput carries the checkout form. Field names mirror the form the
// storefront renders. Payment details are validated for shape only; nothing
// beyond the card's last four digits is ever stored.
type PlaceOrderInput struct {
	Email      string `json:"email" validate:"required,email"`
	FirstName  string `json:"firstName" validate:"required,min=1,max=100"`
	LastName   string `json:"lastName" validate:"required,min=1,max=100"`
	Phone      string `json:"phone" validate:"required,min=7,max=20"`
	Address    string `json:"address" validate:"required,min=1,max=200"`
	City       string `json:"city" validate:"required,min=1,max=100"`
	State      string `json:"state" validate:"required,min=2,max=50"`
	ZipCode    string `json:"zipCode" validate:"required,min=4,max=10"`
	CardNumber string `json:"cardNumber" validate:"required,min=13,max=19,numeric"`
	ExpiryDate string `json:"expiryDate" validate:"required,len=5"`
	CVV        string `json:"cvv" validate:"required,min=3,max=4,numeric"`
	NameOnCard string `json:"nameOnCard" validate:"required,min=1,max=200"`
}

// CheckoutService quotes and places orders from the session's live cart.
type CheckoutService struct {
	carts    repository.CartRepository
	orders   repository.OrderRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(carts repository.CartRepository, orders repository.OrderRepository, producer *event.Producer, logger *slog.Logger) *CheckoutService {
	return &CheckoutService{
		carts:    carts,
		orders:   orders,
		producer: producer,
		logger:   logger,
	}
}

// Quote returns the order summary for the session's current cart without
// placing an order. Totals are derived from the live cart lines, so a quote
// is never stale relative to the cart it summarizes.
func (s *CheckoutService) Quote(ctx context.Context, sessionID string) (*domain.Totals, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			totals := domain.CalculateTotals(0)
			return &totals, nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	totals := domain.CalculateTotals(cart.Subtotal())
	return &totals, nil
}

// PlaceOrder validates the checkout form, snapshots the session's cart into
// an immutable order, clears the cart, and returns the order. Placing an
// order with an empty cart is rejected.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sessionID string, input PlaceOrderInput) (*domain.Order, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if err := validator.Validate(input); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.InvalidInput("cart is empty")
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	if len(cart.Items) == 0 {
		return nil, apperrors.InvalidInput("cart is empty")
	}

	items := make([]domain.LineItem, len(cart.Items))
	copy(items, cart.Items)

	order := &domain.Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Email:     input.Email,
		Shipping: domain.Address{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Phone:     input.Phone,
			Street:    input.Address,
			City:      input.City,
			State:     input.State,
			ZipCode:   input.ZipCode,
		},
		CardLastFour: lastFour(input.CardNumber),
		Items:        items,
		Totals:       domain.CalculateTotals(cart.Subtotal()),
		Status:       domain.OrderStatusPlaced,
		PlacedAt:     time.Now().UTC(),
	}

	if err := s.orders.Save(ctx, order); err != nil {
		return nil, fmt.Errorf("save order: %w", err)
	}

	if err := s.carts.Delete(ctx, sessionID); err != nil {
		// The order is already placed; a stale cart is recoverable.
		s.logger.ErrorContext(ctx, "failed to clear cart after order placement",
			slog.String("session_id", sessionID),
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish order.placed event",
			slog.String("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "order placed",
		slog.String("session_id", sessionID),
		slog.String("order_id", order.ID),
		slog.Int64("total", order.Totals.Total),
		slog.Int("lines", len(order.Items)),
	)

	return order, nil
}

// GetOrder returns a previously placed order.
func (s *CheckoutService) GetOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	if orderID == "" {
		return nil, apperrors.InvalidInput("order id is required")
	}

	order, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return order, nil
}

// lastFour returns the last four digits of a card number, ignoring spaces.
func lastFour(cardNumber string) string {
	digits := strings.ReplaceAll(cardNumber, " ", "")
	if len(digits) <= 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
