package ports

import (
	"context"
	"errors"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
	reviewdomain "github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
)

var ErrNotFound = errors.New("shell state not found")

// StateRepository keeps one shell state per session.
type StateRepository interface {
	Load(ctx context.Context, sessionID string) (domain.State, error)
	Save(ctx context.Context, state domain.State) error
}

// Products is the slice of the catalog the shell reads.
type Products interface {
	ListProducts(ctx context.Context, query catalogports.ListQuery) ([]catalogdomain.Product, error)
	GetProduct(ctx context.Context, id string) (*catalogdomain.Product, error)
}

// ReviewMounter resets a product's review list when its page opens.
type ReviewMounter interface {
	Mount(ctx context.Context, sessionID, productID string) ([]reviewdomain.Review, error)
}

// Service exposes shell use cases to adapters.
type Service interface {
	State(ctx context.Context, sessionID string) (domain.State, error)
	SetSearch(ctx context.Context, sessionID, query string) (domain.Navigation, error)
	Navigate(ctx context.Context, sessionID string, view domain.View, productID string) (domain.Navigation, error)
	ToggleFilter(ctx context.Context, sessionID string, dimension catalogdomain.Dimension, token string) (domain.State, error)
	ClearFilters(ctx context.Context, sessionID string) (domain.State, error)
	Products(ctx context.Context, sessionID string, limit int) ([]catalogdomain.Product, error)
}
