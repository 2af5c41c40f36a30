package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/StorefrontGo/internal/domain"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
	"github.com/utafrali/StorefrontGo/pkg/validator"
)

// --- Mock Order Repository ---

type mockOrderRepository struct {
	mock.Mock
}

func (m *mockOrderRepository) Save(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, id string) (*domain.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

// --- Test Helpers ---

func newTestCheckoutService(carts *mockCartRepository, orders *mockOrderRepository) *CheckoutService {
	logger := newTestLogger()
	return NewCheckoutService(carts, orders, newTestProducer(logger), logger)
}

func validPlaceOrderInput() PlaceOrderInput {
	return PlaceOrderInput{
		Email:      "jane.doe@example.com",
		FirstName:  "Jane",
		LastName:   "Doe",
		Phone:      "5551234567",
		Address:    "123 Main St",
		City:       "Austin",
		State:      "TX",
		ZipCode:    "78701",
		CardNumber: "4242424242424242",
		ExpiryDate: "12/29",
		CVV:        "123",
		NameOnCard: "Jane Doe",
	}
}

// --- Quote ---

func TestQuote_AboveFreeShippingThreshold(t *testing.T) {
	carts := new(mockCartRepository)
	svc := newTestCheckoutService(carts, new(mockOrderRepository))
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(newCartWithLine("sess-1"), nil)

	totals, err := svc.Quote(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, int64(259800), totals.Subtotal)
	assert.Equal(t, int64(0), totals.Shipping)
	assert.Equal(t, int64(20784), totals.Tax)
	assert.Equal(t, int64(280584), totals.Total)
}

func TestQuote_BelowFreeShippingThreshold(t *testing.T) {
	carts := new(mockCartRepository)
	svc := newTestCheckoutService(carts, new(mockOrderRepository))
	ctx := context.Background()

	cart := newCartWithLine("sess-1")
	cart.Items[0].Price = 2500
	cart.Items[0].Quantity = 1
	carts.On("Get", ctx, "sess-1").Return(cart, nil)

	totals, err := svc.Quote(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, int64(2500), totals.Subtotal)
	assert.Equal(t, int64(999), totals.Shipping)
	assert.Equal(t, int64(200), totals.Tax)
	assert.Equal(t, int64(3699), totals.Total)
}

func TestQuote_EmptyCart(t *testing.T) {
	carts := new(mockCartRepository)
	svc := newTestCheckoutService(carts, new(mockOrderRepository))
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(nil, apperrors.NotFound("cart", "sess-1"))

	totals, err := svc.Quote(ctx, "sess-1")

	require.NoError(t, err)
	assert.Equal(t, int64(0), totals.Subtotal)
	assert.Equal(t, int64(999), totals.Shipping)
}

// --- PlaceOrder ---

func TestPlaceOrder(t *testing.T) {
	carts := new(mockCartRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(carts, orders)
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(newCartWithLine("sess-1"), nil)
	carts.On("Delete", ctx, "sess-1").Return(nil)
	orders.On("Save", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	order, err := svc.PlaceOrder(ctx, "sess-1", validPlaceOrderInput())

	require.NoError(t, err)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, "sess-1", order.SessionID)
	assert.Equal(t, "jane.doe@example.com", order.Email)
	assert.Equal(t, "4242", order.CardLastFour)
	assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	require.Len(t, order.Items, 1)
	assert.Equal(t, int64(259800), order.Totals.Subtotal)
	assert.Equal(t, "Austin", order.Shipping.City)
	assert.NotZero(t, order.PlacedAt)

	carts.AssertExpectations(t)
	orders.AssertExpectations(t)
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	carts := new(mockCartRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(carts, orders)
	ctx := context.Background()

	empty := newCartWithLine("sess-1")
	empty.Items = nil
	carts.On("Get", ctx, "sess-1").Return(empty, nil)

	_, err := svc.PlaceOrder(ctx, "sess-1", validPlaceOrderInput())

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	orders.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestPlaceOrder_NoCart(t *testing.T) {
	carts := new(mockCartRepository)
	svc := newTestCheckoutService(carts, new(mockOrderRepository))
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(nil, apperrors.NotFound("cart", "sess-1"))

	_, err := svc.PlaceOrder(ctx, "sess-1", validPlaceOrderInput())
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestPlaceOrder_InvalidForm(t *testing.T) {
	svc := newTestCheckoutService(new(mockCartRepository), new(mockOrderRepository))
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*PlaceOrderInput)
		field  string
	}{
		{"bad email", func(in *PlaceOrderInput) { in.Email = "not-an-email" }, "Email"},
		{"missing first name", func(in *PlaceOrderInput) { in.FirstName = "" }, "FirstName"},
		{"card number too short", func(in *PlaceOrderInput) { in.CardNumber = "1234" }, "CardNumber"},
		{"card number not numeric", func(in *PlaceOrderInput) { in.CardNumber = "4242abcd42424242" }, "CardNumber"},
		{"cvv too long", func(in *PlaceOrderInput) { in.CVV = "12345" }, "CVV"},
		{"expiry wrong length", func(in *PlaceOrderInput) { in.ExpiryDate = "12/2029" }, "ExpiryDate"},
		{"missing zip", func(in *PlaceOrderInput) { in.ZipCode = "" }, "ZipCode"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validPlaceOrderInput()
			tc.mutate(&input)

			_, err := svc.PlaceOrder(ctx, "sess-1", input)

			require.Error(t, err)
			var vErr *validator.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Fields(), tc.field)
		})
	}
}

func TestPlaceOrder_ClearsCartAfterPlacement(t *testing.T) {
	carts := new(mockCartRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(carts, orders)
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(newCartWithLine("sess-1"), nil)
	carts.On("Delete", ctx, "sess-1").Return(nil)
	orders.On("Save", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	_, err := svc.PlaceOrder(ctx, "sess-1", validPlaceOrderInput())

	require.NoError(t, err)
	carts.AssertCalled(t, "Delete", ctx, "sess-1")
}

func TestPlaceOrder_CardLastFour(t *testing.T) {
	carts := new(mockCartRepository)
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(carts, orders)
	ctx := context.Background()

	carts.On("Get", ctx, "sess-1").Return(newCartWithLine("sess-1"), nil)
	carts.On("Delete", ctx, "sess-1").Return(nil)
	orders.On("Save", ctx, mock.AnythingOfType("*domain.Order")).Return(nil)

	input := validPlaceOrderInput()
	input.CardNumber = "4242424242421881"

	order, err := svc.PlaceOrder(ctx, "sess-1", input)

	require.NoError(t, err)
	assert.Equal(t, "1881", order.CardLastFour)
}

// --- GetOrder ---

func TestGetOrder(t *testing.T) {
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(new(mockCartRepository), orders)
	ctx := context.Background()

	expected := &domain.Order{ID: "order-1", Status: domain.OrderStatusPlaced}
	orders.On("Get", ctx, "order-1").Return(expected, nil)

	order, err := svc.GetOrder(ctx, "order-1")

	require.NoError(t, err)
	assert.Equal(t, expected, order)
}

func TestGetOrder_NotFound(t *testing.T) {
	orders := new(mockOrderRepository)
	svc := newTestCheckoutService(new(mockCartRepository), orders)
	ctx := context.Background()

	orders.On("Get", ctx, "missing").Return(nil, apperrors.NotFound("order", "missing"))

	_, err := svc.GetOrder(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
