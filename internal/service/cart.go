package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/utafrali/StorefrontGo/internal/domain"
	"github.com/utafrali/StorefrontGo/internal/event"
	"github.com/utafrali/StorefrontGo/internal/repository"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// Cart operation upper-bound limits to prevent abuse.
const (
	// MaxQuantityPerLine is the maximum quantity allowed for a single cart line.
	MaxQuantityPerLine = 100
	// MaxLinesPerCart is the maximum number of distinct lines allowed in a cart.
	MaxLinesPerCart = 50
	// MaxPriceCents is the maximum price in cents (100,000.00) allowed per item.
	MaxPriceCents = 100_000_00
)

// AddItemInput holds the parameters for adding one unit of a product to the
// cart. There is no quantity field: each call adds exactly one unit, merging
// into an existing line when the product+variant key matches.
type AddItemInput struct {
	ProductID     int64  `json:"product_id" validate:"required,gt=0"`
	Variant       string `json:"variant"`
	Name          string `json:"name" validate:"required,min=1,max=500"`
	Image         string `json:"image"`
	Price         int64  `json:"price" validate:"gte=0"`
	OriginalPrice int64  `json:"original_price" validate:"gte=0"`
}

// CartService implements the business logic for cart operations. It is the
// single writer for cart state; every UI surface reads back through it.
type CartService struct {
	repo     repository.CartRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(repo repository.CartRepository, producer *event.Producer, logger *slog.Logger) *CartService {
	return &CartService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// Get retrieves the cart for a session. If no cart exists, returns an empty cart.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds one unit of a product to the session's cart. If a line with
// the same product+variant key exists, its quantity is incremented by exactly
// one; otherwise a new line with quantity 1 is appended. The display fields
// on an existing line are kept as captured at first add.
func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddItemInput) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if input.ProductID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if input.Name == "" {
		return nil, apperrors.InvalidInput("name is required")
	}
	if input.Price < 0 {
		return nil, apperrors.InvalidInput("price must not be negative")
	}
	if input.Price > MaxPriceCents {
		return nil, apperrors.InvalidInput(fmt.Sprintf("price must not exceed %d cents", MaxPriceCents))
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if i := cart.FindLineIndex(input.ProductID, input.Variant); i >= 0 {
		if cart.Items[i].Quantity+1 > MaxQuantityPerLine {
			return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
		}
	} else if len(cart.Items) >= MaxLinesPerCart {
		return nil, apperrors.InvalidInput(fmt.Sprintf("cart must not contain more than %d lines", MaxLinesPerCart))
	}

	cart.AddLine(domain.LineItem{
		ProductID:     input.ProductID,
		Variant:       input.Variant,
		Name:          input.Name,
		Image:         input.Image,
		Price:         input.Price,
		OriginalPrice: input.OriginalPrice,
	})
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", input.ProductID),
		slog.String("variant", input.Variant),
		slog.Int("item_count", cart.ItemCount()),
	)

	return cart, nil
}

// UpdateQuantity sets the quantity of a cart line to exactly qty. A qty of
// zero or less removes the line. Updating a line that does not exist is a
// no-op: the store never synthesizes a line from an update call.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID string, productID int64, variant string, qty int) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}
	if qty > MaxQuantityPerLine {
		return nil, apperrors.InvalidInput(fmt.Sprintf("quantity must not exceed %d", MaxQuantityPerLine))
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.SetQuantity(productID, variant, qty) {
		// Nonexistent line: leave the cart untouched.
		return cart, nil
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "cart line quantity updated",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.String("variant", variant),
		slog.Int("quantity", qty),
	)

	return cart, nil
}

// RemoveItem removes a line from the cart entirely, regardless of its
// quantity. Removing a line that does not exist is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int64, variant string) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if !cart.RemoveLine(productID, variant) {
		return cart, nil
	}
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	s.publishCartUpdated(ctx, cart)

	s.logger.InfoContext(ctx, "item removed from cart",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.String("variant", variant),
	)

	return cart, nil
}

// Clear removes all lines from the session's cart. Idempotent.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return apperrors.InvalidInput("session id is required")
	}

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, sessionID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("session_id", sessionID),
	)

	return nil
}

// SetOpen sets the cart drawer open flag. The flag is independent of cart
// contents; it is colocated here so every surface observes the same value.
func (s *CartService) SetOpen(ctx context.Context, sessionID string, open bool) (*domain.Cart, error) {
	if sessionID == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}

	cart, err := s.getOrCreateCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	cart.Open = open
	cart.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	return cart, nil
}

// publishCartUpdated emits a cart.updated event. Publishing is advisory:
// a failure is logged and never fails the mutation that triggered it.
func (s *CartService) publishCartUpdated(ctx context.Context, cart *domain.Cart) {
	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", cart.SessionID),
			slog.String("error", err.Error()),
		)
	}
}

// getOrCreateCart retrieves the cart for a session, creating an empty one if
// it does not exist.
func (s *CartService) getOrCreateCart(ctx context.Context, sessionID string) (*domain.Cart, error) {
	cart, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return newEmptyCart(sessionID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// newEmptyCart creates a new empty cart for the given session.
func newEmptyCart(sessionID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		SessionID: sessionID,
		Items:     []domain.LineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}
