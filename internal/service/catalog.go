package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/utafrali/StorefrontGo/internal/domain"
	"github.com/utafrali/StorefrontGo/internal/repository"
	apperrors "github.com/utafrali/StorefrontGo/pkg/errors"
)

// Sort order values accepted by List.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

// ListProductsInput holds the optional filter and sort parameters for a
// catalog listing.
type ListProductsInput struct {
	Category string
	Sort     string
}

// CatalogService serves the product catalog.
type CatalogService struct {
	repo   repository.CatalogRepository
	logger *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:   repo,
		logger: logger,
	}
}

// List returns catalog products, optionally filtered by category and sorted.
// An empty category means all products; an empty or "newest" sort keeps the
// catalog's native order. Sorts are stable so equal keys keep catalog order.
func (s *CatalogService) List(ctx context.Context, input ListProductsInput) ([]domain.Product, error) {
	if input.Category != "" && !domain.IsValidCategory(input.Category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown category %q", input.Category))
	}

	switch input.Sort {
	case "", SortNewest, SortPriceAsc, SortPriceDesc, SortRating:
	default:
		return nil, apperrors.InvalidInput(fmt.Sprintf("unknown sort %q", input.Sort))
	}

	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	if input.Category != "" {
		filtered := make([]domain.Product, 0, len(products))
		for _, p := range products {
			if p.Category == input.Category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	switch input.Sort {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool { return products[i].Rating > products[j].Rating })
	}

	return products, nil
}

// GetByID returns a single product.
func (s *CatalogService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("product id is required")
	}

	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// Categories returns the known category filter values.
func (s *CatalogService) Categories() []string {
	return domain.ValidCategories()
}
