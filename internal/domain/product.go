package domain

// Product category constants matching the marketplace filter values.
const (
	CategoryAllInOne = "aio"
	CategoryLaptops  = "laptops"
	CategoryGaming   = "gaming"
	CategoryPrinters = "printers"
	CategoryScanners = "scanners"
)

// Product represents a catalog product. All prices are integer cents; display
// formatting (currency symbol, thousands separators) is the client's concern.
type Product struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	Price         int64     `json:"price"`
	OriginalPrice int64     `json:"original_price,omitempty"`
	Rating        float64   `json:"rating"`
	Reviews       int       `json:"reviews"`
	Category      string    `json:"category"`
	Image         string    `json:"image"`
	Badge         string    `json:"badge,omitempty"`
	Specs         []string  `json:"specs,omitempty"`
	Description   string    `json:"description,omitempty"`
	Stock         int       `json:"stock"`
	Variants      []Variant `json:"variants,omitempty"`
}

// Variant is an optional sub-selection of a product (e.g. a memory
// configuration) with its own price and availability.
type Variant struct {
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Available bool   `json:"available"`
}

// ValidCategories returns the set of known product categories.
func ValidCategories() []string {
	return []string{CategoryAllInOne, CategoryLaptops, CategoryGaming, CategoryPrinters, CategoryScanners}
}

// IsValidCategory checks whether the given category string is known.
func IsValidCategory(category string) bool {
	for _, c := range ValidCategories() {
		if c == category {
			return true
		}
	}
	return false
}

// FindVariant returns the variant with the given name, or nil if the product
// has no such variant.
func (p *Product) FindVariant(name string) *Variant {
	for i := range p.Variants {
		if p.Variants[i].Name == name {
			return &p.Variants[i]
		}
	}
	return nil
}
