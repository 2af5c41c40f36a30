package memory

import (
	"context"
	"sync"

	"github.com/utafrali/StorefrontGo/internal/domain"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// OrderRepository implements repository.OrderRepository with an in-process
// map keyed by order ID.
type OrderRepository struct {
	mu     sync.RWMutex
	orders map[string]*domain.Order
}

// NewOrderRepository creates an empty in-memory order repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		orders: make(map[string]*domain.Order),
	}
}

// Save persists an order.
func (r *OrderRepository) Save(ctx context.Context, order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *order
	clone.Items = make([]domain.LineItem, len(order.Items))
	copy(clone.Items, order.Items)
	r.orders[order.ID] = &clone
	return nil
}

// Get returns the order with the given ID.
func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return nil, apperrors.NotFound("order", id)
	}

	clone := *order
	clone.Items = make([]domain.LineItem, len(order.Items))
	copy(clone.Items, order.Items)
	return &clone, nil
}
