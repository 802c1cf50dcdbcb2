package ports

import (
	"context"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
)

// ListQuery selects a filtered, optionally truncated slice of the catalog.
type ListQuery struct {
	Criteria domain.Criteria
	Limit    int
}

// Facets lists the values a shopper can filter by.
type Facets struct {
	Categories []domain.Category
	Sizes      []domain.Size
	Palette    []domain.Swatch
}

// Service exposes catalog use cases to adapters.
type Service interface {
	ListProducts(ctx context.Context, query ListQuery) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	Recommendations(ctx context.Context, id string) ([]domain.Product, error)
	Facets(ctx context.Context) Facets
}
