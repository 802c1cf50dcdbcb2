package catalog

import (
	"context"
	"errors"
	"fmt"

	cartdomain "github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

var _ cartports.ProductCatalog = (*Lookup)(nil)

// Lookup resolves cart product snapshots through the catalog service.
type Lookup struct {
	catalog catalogports.Service
}

func NewLookup(catalog catalogports.Service) *Lookup {
	return &Lookup{catalog: catalog}
}

func (l *Lookup) Product(ctx context.Context, id string) (cartdomain.Product, error) {
	p, err := l.catalog.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, catalogports.ErrNotFound) {
			return cartdomain.Product{}, fmt.Errorf("%w: %s", cartports.ErrProductNotFound, id)
		}
		return cartdomain.Product{}, err
	}
	return cartdomain.Product{
		ID:               p.ID,
		Name:             p.Name,
		Category:         string(p.Category),
		Description:      p.Description,
		Price:            p.Price,
		Colors:           append([]string(nil), p.Colors...),
		Sizes:            p.SizeCodes(),
		Image:            p.Image,
		AdditionalImages: append([]string(nil), p.AdditionalImages...),
		Weight:           p.Weight,
		Dimensions:       p.Dimensions,
	}, nil
}
