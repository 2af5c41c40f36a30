package domain

import "time"

// Order status constants.
const (
	OrderStatusPlaced = "placed"
)

// Pricing rules applied at checkout. Amounts are integer cents.
const (
	// TaxRatePercent is the fixed sales tax applied to the subtotal.
	TaxRatePercent = 8
	// FreeShippingThresholdCents is the subtotal above which shipping is free.
	FreeShippingThresholdCents = 99_00
	// FlatShippingCents is the shipping charge below the free threshold.
	FlatShippingCents = 9_99
)

// Order is an immutable snapshot of a cart at the moment it was placed.
type Order struct {
	ID           string     `json:"id"`
	SessionID    string     `json:"session_id"`
	Email        string     `json:"email"`
	Shipping     Address    `json:"shipping_address"`
	CardLastFour string     `json:"card_last_four"`
	Items        []LineItem `json:"items"`
	Totals       Totals     `json:"totals"`
	Status       string     `json:"status"`
	PlacedAt     time.Time  `json:"placed_at"`
}

// Address is the shipping address collected by the checkout form.
type Address struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zip_code"`
}

// Totals is the order summary derived from a cart subtotal. All fields are
// integer cents.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Shipping int64 `json:"shipping"`
	Tax      int64 `json:"tax"`
	Total    int64 `json:"total"`
}

// CalculateTotals derives the order summary from a subtotal: shipping is free
// above the threshold and flat below it, tax is the fixed percentage of the
// subtotal.
func CalculateTotals(subtotal int64) Totals {
	var shipping int64
	if subtotal <= FreeShippingThresholdCents {
		shipping = FlatShippingCents
	}

	tax := subtotal * TaxRatePercent / 100

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
