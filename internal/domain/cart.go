package domain

import "time"

// LineItem represents one row in the shopping cart. A line is keyed by the
// product ID plus the optional variant name; the display fields are captured
// when the line is first added and are not re-synced with the catalog.
type LineItem struct {
	ProductID     int64  `json:"product_id"`
	Variant       string `json:"variant,omitempty"`
	Name          string `json:"name"`
	Image         string `json:"image,omitempty"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"original_price,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Cart holds the line items for a single browser session.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	Open      bool       `json:"open"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ItemCount returns the total number of items in the cart, summed over line
// quantities. Recomputed on every call, never cached.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal calculates the total price of all items in the cart (in cents).
// OriginalPrice is display-only and never enters the total.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}

// FindLineIndex returns the index of the line matching the given product ID
// and variant, or -1 if not found.
func (c *Cart) FindLineIndex(productID int64, variant string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID && c.Items[i].Variant == variant {
			return i
		}
	}
	return -1
}

// AddLine adds one unit of the given item. If a line with the same product ID
// and variant already exists its quantity is incremented by exactly one and
// the captured display fields are left untouched; otherwise a new line with
// quantity 1 is appended. Merging never changes line order.
func (c *Cart) AddLine(item LineItem) {
	if i := c.FindLineIndex(item.ProductID, item.Variant); i >= 0 {
		c.Items[i].Quantity++
		return
	}
	item.Quantity = 1
	c.Items = append(c.Items, item)
}

// SetQuantity sets the quantity of the matching line to exactly qty. A qty of
// zero or less removes the line. Returns false (leaving the cart unchanged)
// when no line matches.
func (c *Cart) SetQuantity(productID int64, variant string, qty int) bool {
	i := c.FindLineIndex(productID, variant)
	if i < 0 {
		return false
	}
	if qty <= 0 {
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return true
	}
	c.Items[i].Quantity = qty
	return true
}

// RemoveLine removes the matching line entirely, regardless of its quantity.
// Returns false when no line matches.
func (c *Cart) RemoveLine(productID int64, variant string) bool {
	i := c.FindLineIndex(productID, variant)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// ClearLines removes all lines. Idempotent.
func (c *Cart) ClearLines() {
	c.Items = c.Items[:0]
}

// Clone returns a deep copy of the cart. Callers receive snapshots, so
// mutating a returned cart never affects stored state.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = make([]LineItem, len(c.Items))
	copy(clone.Items, c.Items)
	return &clone
}
