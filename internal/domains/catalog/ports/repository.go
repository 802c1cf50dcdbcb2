package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository exposes the read-only product catalog in display order.
type Repository interface {
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}
