package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
)

var ErrProductNotFound = errors.New("product not found")

// ProductCatalog resolves the product snapshot stored on a new line item.
type ProductCatalog interface {
	Product(ctx context.Context, id string) (domain.Product, error)
}
