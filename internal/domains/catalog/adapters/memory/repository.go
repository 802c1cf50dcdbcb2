package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory, ordered product catalog.
type Repository struct {
	mu       sync.RWMutex
	products []domain.Product
	index    map[string]int
}

// NewRepository loads the given products; invalid entries are rejected.
func NewRepository(products ...domain.Product) (*Repository, error) {
	r := &Repository{index: map[string]int{}}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if i, ok := r.index[p.ID]; ok {
			r.products[i] = p.Clone()
			continue
		}
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p.Clone())
	}
	return r, nil
}

// NewSeededRepository serves the built-in catalog.
func NewSeededRepository() *Repository {
	r, err := NewRepository(domain.StaticCatalog()...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Repository) List(_ context.Context) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		list = append(list, p.Clone())
	}
	return list, nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := r.products[i].Clone()
	return &clone, nil
}
