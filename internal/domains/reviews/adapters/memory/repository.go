package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/reviews/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/reviews/ports"
)

var _ ports.Repository = (*Repository)(nil)

type listKey struct {
	session string
	product string
}

// Repository holds review lists in process memory only.
type Repository struct {
	mu    sync.RWMutex
	lists map[listKey][]domain.Review
}

func NewRepository() *Repository {
	return &Repository{lists: map[listKey][]domain.Review{}}
}

func (r *Repository) List(_ context.Context, sessionID, productID string) ([]domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list, ok := r.lists[listKey{sessionID, productID}]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return append([]domain.Review(nil), list...), nil
}

func (r *Repository) Replace(_ context.Context, sessionID, productID string, reviews []domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lists[listKey{sessionID, productID}] = append([]domain.Review(nil), reviews...)
	return nil
}

func (r *Repository) Prepend(_ context.Context, sessionID, productID string, review domain.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := listKey{sessionID, productID}
	list, ok := r.lists[key]
	if !ok {
		return ports.ErrNotFound
	}
	r.lists[key] = append([]domain.Review{review}, list...)
	return nil
}
