package application

import (
	"context"
	"strings"

	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

// MaxRecommendations caps the "you may also like" list.
const MaxRecommendations = 4

// Service orchestrates catalog browsing use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts filters the catalog and truncates it to the query limit.
func (s *Service) ListProducts(ctx context.Context, query ports.ListQuery) ([]domain.Product, error) {
	if query.Limit < 0 {
		return nil, mapError(ErrInvalidLimit)
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Limit(domain.Filter(products, query.Criteria), query.Limit), nil
}

func (s *Service) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if strings.TrimSpace(id) == "" {
		return nil, mapError(domain.ErrEmptyProductID)
	}
	return s.repo.GetByID(ctx, id)
}

// Recommendations lists other products of the same category.
func (s *Service) Recommendations(ctx context.Context, id string) ([]domain.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.Recommend(products, *product, MaxRecommendations), nil
}

func (s *Service) Facets(_ context.Context) ports.Facets {
	return ports.Facets{
		Categories: domain.Categories(),
		Sizes:      domain.Sizes(),
		Palette:    domain.Palette(),
	}
}

var _ ports.Service = (*Service)(nil)
