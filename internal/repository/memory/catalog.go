package memory

import (
	"context"
	"strconv"

	"github.com/utafrali/StorefrontGo/internal/domain"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// CatalogRepository implements repository.CatalogRepository over a static
// product list seeded at construction time. The catalog is read-only after
// seeding, so no locking is needed.
type CatalogRepository struct {
	products []domain.Product
	byID     map[int64]int
}

// NewCatalogRepository creates a catalog repository with the given products.
func NewCatalogRepository(products []domain.Product) *CatalogRepository {
	byID := make(map[int64]int, len(products))
	for i, p := range products {
		byID[p.ID] = i
	}
	return &CatalogRepository{
		products: products,
		byID:     byID,
	}
}

// NewSeededCatalogRepository creates a catalog repository with the built-in
// storefront product set.
func NewSeededCatalogRepository() *CatalogRepository {
	return NewCatalogRepository(SeedProducts())
}

// List returns all products in seed order.
func (r *CatalogRepository) List(ctx context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID returns the product with the given ID.
func (r *CatalogRepository) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, apperrors.NotFound("product", strconv.FormatInt(id, 10))
	}
	p := r.products[i]
	return &p, nil
}

// SeedProducts returns the static storefront catalog. Prices are integer
// cents; display formatting happens client-side.
func SeedProducts() []domain.Product {
	return []domain.Product{
		{
			ID:            1,
			Name:          "HP EliteOne 800 G9 AiO",
			Slug:          "hp-eliteone-800-g9-aio",
			Price:         129900,
			OriginalPrice: 149900,
			Rating:        4.5,
			Reviews:       128,
			Category:      domain.CategoryAllInOne,
			Image:         "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
			Badge:         "Bestseller",
			Specs:         []string{"Intel i7", "16GB RAM", "512GB SSD", `23.8" Display`},
			Description:   "All-in-one desktop with a 23.8-inch display, built for the modern office.",
			Stock:         18,
		},
		{
			ID:            2,
			Name:          "HP Pavilion 15 Laptop",
			Slug:          "hp-pavilion-15-laptop",
			Price:         89900,
			OriginalPrice: 109900,
			Rating:        4.3,
			Reviews:       256,
			Category:      domain.CategoryLaptops,
			Image:         "https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
			Badge:         "New",
			Specs:         []string{"Intel i5", "8GB RAM", "256GB SSD", `15.6" FHD`},
			Description:   "Everyday laptop balancing performance and portability for work and study.",
			Stock:         42,
			Variants: []domain.Variant{
				{Name: "8GB RAM", Price: 89900, Available: true},
				{Name: "16GB RAM", Price: 99900, Available: true},
				{Name: "32GB RAM", Price: 119900, Available: false},
			},
		},
		{
			ID:            3,
			Name:          "HP OMEN 16 Gaming Laptop",
			Slug:          "hp-omen-16-gaming-laptop",
			Price:         159900,
			OriginalPrice: 189900,
			Rating:        4.7,
			Reviews:       89,
			Category:      domain.CategoryGaming,
			Image:         "https://images.unsplash.com/photo-1518770660439-4636190af475",
			Badge:         "Gaming",
			Specs:         []string{"AMD Ryzen 7", "16GB RAM", "1TB SSD", "RTX 4060"},
			Description:   "High-refresh gaming laptop with dedicated RTX graphics.",
			Stock:         7,
		},
		{
			ID:            4,
			Name:          "HP LaserJet Pro M404n",
			Slug:          "hp-laserjet-pro-m404n",
			Price:         29900,
			OriginalPrice: 34900,
			Rating:        4.4,
			Reviews:       167,
			Category:      domain.CategoryPrinters,
			Image:         "https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
			Badge:         "Reliable",
			Specs:         []string{"Laser Printer", "38 ppm", "Wi-Fi", "Auto Duplex"},
			Description:   "Workgroup laser printer with automatic duplexing.",
			Stock:         31,
		},
		{
			ID:            5,
			Name:          "HP ScanJet Pro 2500 f1",
			Slug:          "hp-scanjet-pro-2500-f1",
			Price:         19900,
			OriginalPrice: 22900,
			Rating:        4.2,
			Reviews:       43,
			Category:      domain.CategoryScanners,
			Image:         "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
			Badge:         "Compact",
			Specs:         []string{"Flatbed Scanner", "1200 DPI", "USB 3.0", "Auto Feed"},
			Description:   "Compact flatbed scanner with an automatic document feeder.",
			Stock:         12,
		},
		{
			ID:            6,
			Name:          "HP Spectre x360 14",
			Slug:          "hp-spectre-x360-14",
			Price:         129900,
			OriginalPrice: 159900,
			Rating:        4.8,
			Reviews:       94,
			Category:      domain.CategoryLaptops,
			Image:         "https://images.unsplash.com/photo-1531297484001-80022131f5a1",
			Badge:         "Premium",
			Specs:         []string{"Intel Evo", "16GB RAM", "512GB SSD", "2-in-1 Design"},
			Description:   "Premium convertible with an OLED touch display and all-day battery.",
			Stock:         12,
			Variants: []domain.Variant{
				{Name: "8GB RAM", Price: 109900, Available: true},
				{Name: "16GB RAM", Price: 129900, Available: true},
				{Name: "32GB RAM", Price: 159900, Available: false},
			},
		},
	}
}
