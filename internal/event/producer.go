package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/utafrali/StorefrontGo/internal/domain"
	pkgkafka "github.com/utafrali/StorefrontGo/pkg/kafka"
)

// Kafka topic constants for storefront domain events. Consumers (e.g. a
// notification service) may react to these; publishing is advisory and never
// blocks or fails a mutation.
const (
	TopicCartUpdated = "storefront.cart.updated"
	TopicCartCleared = "storefront.cart.cleared"
	TopicOrderPlaced = "storefront.order.placed"
)

// Aggregate type constants.
const (
	AggregateTypeCart  = "cart"
	AggregateTypeOrder = "order"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront"

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string         `json:"session_id"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Subtotal  int64          `json:"subtotal"`
}

// CartItemData is the line payload within cart events.
type CartItemData struct {
	ProductID int64  `json:"product_id"`
	Variant   string `json:"variant,omitempty"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	SessionID string `json:"session_id"`
}

// OrderPlacedData is the payload for an order.placed event.
type OrderPlacedData struct {
	OrderID   string `json:"order_id"`
	SessionID string `json:"session_id"`
	Email     string `json:"email"`
	ItemCount int    `json:"item_count"`
	Total     int64  `json:"total"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductID: item.ProductID,
			Variant:   item.Variant,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		}
	}

	data := CartUpdatedData{
		SessionID: cart.SessionID,
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  cart.Subtotal(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.SessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("session_id", cart.SessionID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, sessionID string) error {
	data := CartClearedData{SessionID: sessionID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, sessionID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("session_id", sessionID),
	)

	return nil
}

// PublishOrderPlaced publishes an order.placed event.
func (p *Producer) PublishOrderPlaced(ctx context.Context, order *domain.Order) error {
	itemCount := 0
	for _, item := range order.Items {
		itemCount += item.Quantity
	}

	data := OrderPlacedData{
		OrderID:   order.ID,
		SessionID: order.SessionID,
		Email:     order.Email,
		ItemCount: itemCount,
		Total:     order.Totals.Total,
	}

	event, err := pkgkafka.NewEvent(TopicOrderPlaced, order.ID, AggregateTypeOrder, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create order.placed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicOrderPlaced, event); err != nil {
		return fmt.Errorf("publish order.placed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published order.placed event",
		slog.String("order_id", order.ID),
		slog.String("session_id", order.SessionID),
	)

	return nil
}
