package application

import (
	"context"
	"errors"
	"sync"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
)

// Observer reacts to an applied cart mutation. Observers run synchronously,
// in subscription order, while the store is still locked.
type Observer func(ctx context.Context, change domain.Change) error

// Store owns one session's cart and broadcasts every applied mutation to
// its observers.
type Store struct {
	sessionID string

	mu        sync.Mutex
	cart      *domain.Cart
	observers []Observer
}

// NewStore builds a store over already hydrated items.
func NewStore(sessionID string, items []domain.LineItem, observers ...Observer) *Store {
	return &Store{
		sessionID: sessionID,
		cart:      domain.NewCart(items),
		observers: append([]Observer(nil), observers...),
	}
}

// Subscribe appends an observer.
func (s *Store) Subscribe(o Observer) {
	if o == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// Add merges or appends the variant. The mutation stays applied even when
// an observer fails; the observer error is returned.
func (s *Store) Add(ctx context.Context, product domain.Product, quantity int, color, size string) (domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, err := s.cart.Add(product, quantity, color, size)
	if err != nil {
		return domain.LineItem{}, mapError(err)
	}
	return item, s.publish(ctx, domain.Change{Kind: domain.ChangeAdded, Item: item, Quantity: quantity})
}

// Remove deletes the line. Absent keys are ignored.
func (s *Store) Remove(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cart.Remove(cartID)
	if !ok {
		return nil
	}
	return s.publish(ctx, domain.Change{Kind: domain.ChangeRemoved, Item: item})
}

// UpdateQuantity shifts the line quantity, clamped at one. Absent keys are
// ignored.
func (s *Store) UpdateQuantity(ctx context.Context, cartID string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.cart.UpdateQuantity(cartID, delta)
	if !ok {
		return nil
	}
	return s.publish(ctx, domain.Change{Kind: domain.ChangeQuantityUpdated, Item: item, Quantity: delta})
}

// Items returns a copy of the current lines.
func (s *Store) Items() []domain.LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items()
}

// Totals returns the derived figures.
func (s *Store) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Totals()
}

// view reads items and totals under one lock.
func (s *Store) view() ([]domain.LineItem, domain.Totals) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Items(), s.cart.Totals()
}

func (s *Store) publish(ctx context.Context, change domain.Change) error {
	change.SessionID = s.sessionID
	change.Items = s.cart.Items()
	var errs error
	for _, o := range s.observers {
		errs = errors.Join(errs, o(ctx, change))
	}
	return errs
}
