package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"

	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/storefront/ports"
)

// Shell owns each session's search box, current view and filter panel.
type Shell struct {
	states   ports.StateRepository
	products ports.Products
	reviews  ports.ReviewMounter
	logger   *slog.Logger

	// mu serializes read-modify-write cycles on session state.
	mu sync.Mutex
}

type Option func(*Shell)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewShell(states ports.StateRepository, products ports.Products, reviews ports.ReviewMounter, opts ...Option) *Shell {
	s := &Shell{
		states:   states,
		products: products,
		reviews:  reviews,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Shell) State(ctx context.Context, sessionID string) (domain.State, error) {
	if strings.TrimSpace(sessionID) == "" {
		return domain.State{}, ErrInvalidSession
	}
	return s.load(ctx, sessionID)
}

func (s *Shell) SetSearch(ctx context.Context, sessionID, query string) (domain.Navigation, error) {
	var nav domain.Navigation
	err := s.update(ctx, sessionID, func(st *domain.State) error {
		nav = st.SetSearch(query)
		return nil
	})
	return nav, err
}

func (s *Shell) Navigate(ctx context.Context, sessionID string, view domain.View, productID string) (domain.Navigation, error) {
	if view == domain.ViewProductDetail {
		if strings.TrimSpace(productID) == "" {
			return domain.Navigation{}, mapError(domain.ErrMissingProductID)
		}
		if _, err := s.products.GetProduct(ctx, productID); err != nil {
			return domain.Navigation{}, err
		}
	}
	var t domain.Transition
	err := s.update(ctx, sessionID, func(st *domain.State) error {
		var err error
		t, err = st.Navigate(view, productID)
		return err
	})
	if err != nil {
		return domain.Navigation{}, err
	}
	if t.MountReviews && s.reviews != nil {
		if _, err := s.reviews.Mount(ctx, sessionID, t.ProductID); err != nil {
			return domain.Navigation{}, err
		}
	}
	if t.FiltersReset {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "filters reset on navigation",
			slog.String("session.id", sessionID), slog.String("view", string(t.View)))
	}
	return t.Navigation, nil
}

func (s *Shell) ToggleFilter(ctx context.Context, sessionID string, dimension catalogdomain.Dimension, token string) (domain.State, error) {
	var out domain.State
	err := s.update(ctx, sessionID, func(st *domain.State) error {
		if err := st.Filters.Toggle(dimension, token); err != nil {
			return err
		}
		out = st.Clone()
		return nil
	})
	return out, err
}

func (s *Shell) ClearFilters(ctx context.Context, sessionID string) (domain.State, error) {
	var out domain.State
	err := s.update(ctx, sessionID, func(st *domain.State) error {
		st.Filters.Clear()
		out = st.Clone()
		return nil
	})
	return out, err
}

// Products renders the catalog the session currently sees.
func (s *Shell) Products(ctx context.Context, sessionID string, limit int) ([]catalogdomain.Product, error) {
	st, err := s.State(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.products.ListProducts(ctx, catalogports.ListQuery{Criteria: st.Criteria(), Limit: limit})
}

func (s *Shell) update(ctx context.Context, sessionID string, fn func(*domain.State) error) error {
	if strings.TrimSpace(sessionID) == "" {
		return ErrInvalidSession
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := fn(&st); err != nil {
		return mapError(err)
	}
	return s.states.Save(ctx, st)
}

func (s *Shell) load(ctx context.Context, sessionID string) (domain.State, error) {
	st, err := s.states.Load(ctx, sessionID)
	if errors.Is(err, ports.ErrNotFound) {
		return domain.NewState(sessionID), nil
	}
	return st, err
}

var _ ports.Service = (*Shell)(nil)
