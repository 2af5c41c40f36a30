package repository

import (
	"context"

	"github.com/utafrali/StorefrontGo/internal/domain"
)

// CartRepository defines the interface for cart storage. Implementations must
// return defensive copies: a cart handed out by Get is a snapshot, and
// mutating it has no effect until it is passed back to Save.
type CartRepository interface {
	// Get retrieves the cart for a session. Returns a NotFound error when the
	// session has no cart yet.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)

	// Save persists a cart, overwriting any existing cart for the session.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes the cart for a session. Not an error when absent.
	Delete(ctx context.Context, sessionID string) error
}

// CatalogRepository provides read access to the product catalog.
type CatalogRepository interface {
	// List returns all products in seed order.
	List(ctx context.Context) ([]domain.Product, error)

	// GetByID returns the product with the given ID, or a NotFound error.
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
}

// OrderRepository stores placed orders.
type OrderRepository interface {
	// Save persists an order.
	Save(ctx context.Context, order *domain.Order) error

	// Get returns the order with the given ID, or a NotFound error.
	Get(ctx context.Context, id string) (*domain.Order, error)
}

// PreferenceRepository stores per-session UI preferences.
type PreferenceRepository interface {
	// GetTheme returns the stored theme for a session, or a NotFound error
	// when the session has no stored preference.
	GetTheme(ctx context.Context, sessionID string) (string, error)

	// SetTheme stores the theme for a session.
	SetTheme(ctx context.Context, sessionID, theme string) error
}
