package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/reviews/ports"
)

// Service manages per-session, per-product review lists.
type Service struct {
	repo  ports.Repository
	auth  ports.Authenticator
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock overrides the time source for deterministic testing.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides review identifier generation.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

func NewService(repo ports.Repository, auth ports.Authenticator, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		auth:  auth,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Mount resets the product's list to the seed reviews, as happens each
// time the product detail view is entered.
func (s *Service) Mount(ctx context.Context, sessionID, productID string) ([]domain.Review, error) {
	seeds := domain.SeedReviews()
	if err := s.repo.Replace(ctx, sessionID, productID, seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// List returns the current list, newest first, mounting it if needed.
func (s *Service) List(ctx context.Context, sessionID, productID string) ([]domain.Review, error) {
	list, err := s.repo.List(ctx, sessionID, productID)
	if errors.Is(err, ports.ErrNotFound) {
		return s.Mount(ctx, sessionID, productID)
	}
	return list, err
}

// Add prepends a review. Only authenticated sessions may post.
func (s *Service) Add(ctx context.Context, sessionID, productID string, draft domain.Draft) (domain.Review, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.Review{}, ErrUnauthenticated
	}
	ok, err := s.auth.IsAuthenticated(ctx, sessionID)
	if err != nil {
		return domain.Review{}, err
	}
	if !ok {
		return domain.Review{}, ErrUnauthenticated
	}
	review, err := domain.NewReview(s.newID(), draft, s.now())
	if err != nil {
		return domain.Review{}, mapError(err)
	}
	if _, err := s.List(ctx, sessionID, productID); err != nil {
		return domain.Review{}, err
	}
	if err := s.repo.Prepend(ctx, sessionID, productID, review); err != nil {
		return domain.Review{}, err
	}
	return review, nil
}

var _ ports.Service = (*Service)(nil)
