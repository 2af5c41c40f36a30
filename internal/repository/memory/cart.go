package memory

import (
	"context"
	"sync"

	"github.com/utafrali/StorefrontGo/internal/domain"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// CartRepository implements repository.CartRepository with an in-process map.
// Carts live only for the lifetime of the process, matching the
// session-scoped cart lifecycle. All methods are safe for concurrent use and
// every cart crossing the boundary is deep-copied, so callers only ever hold
// snapshots.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]*domain.Cart
}

// NewCartRepository creates an empty in-memory cart repository.
func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]*domain.Cart),
	}
}

// Get retrieves the cart for a session.
func (r *CartRepository) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cart, ok := r.carts[sessionID]
	if !ok {
		return nil, apperrors.NotFound("cart", sessionID)
	}
	return cart.Clone(), nil
}

// Save persists a cart, overwriting any existing cart for the session.
func (r *CartRepository) Save(ctx context.Context, cart *domain.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[cart.SessionID] = cart.Clone()
	return nil
}

// Delete removes the cart for a session. Not an error when absent.
func (r *CartRepository) Delete(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

// Len returns the number of stored carts.
func (r *CartRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}
