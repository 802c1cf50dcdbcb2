package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"
)

var ErrNotFound = errors.New("review list not found")

// Repository keeps one review list per (session, product).
type Repository interface {
	List(ctx context.Context, sessionID, productID string) ([]domain.Review, error)
	Replace(ctx context.Context, sessionID, productID string, reviews []domain.Review) error
	Prepend(ctx context.Context, sessionID, productID string, review domain.Review) error
}

// Authenticator reports whether a session is logged in.
type Authenticator interface {
	IsAuthenticated(ctx context.Context, sessionID string) (bool, error)
}

// Service exposes review use cases to adapters.
type Service interface {
	Mount(ctx context.Context, sessionID, productID string) ([]domain.Review, error)
	List(ctx context.Context, sessionID, productID string) ([]domain.Review, error)
	Add(ctx context.Context, sessionID, productID string, draft domain.Draft) (domain.Review, error)
}
