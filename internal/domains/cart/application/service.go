package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

const (
	// DefaultStorageKey is the key the cart is stored under in each session namespace.
	DefaultStorageKey = "uch_cart"
	// DefaultDisplayCurrency is the secondary currency totals are shown in.
	DefaultDisplayCurrency = "NPR"
)

// DefaultExchangeRate converts USD totals into DefaultDisplayCurrency.
var DefaultExchangeRate = decimal.RequireFromString("133.5")

// Service manages one Store per session, hydrating it lazily from the
// key-value store. With idle eviction enabled, stores unused for longer
// than the idle period are dropped and rehydrated on the next request.
type Service struct {
	kv         ports.KeyValueStore
	catalog    ports.ProductCatalog
	notifier   ports.Notifier
	storageKey string
	currency   string
	rate       decimal.Decimal
	logger     *slog.Logger
	observers  []Observer
	now        func() time.Time
	idle       time.Duration

	mu        sync.Mutex
	stores    map[string]*cachedStore
	lastSweep time.Time
}

type cachedStore struct {
	store    *Store
	lastUsed time.Time
}

type Option func(*Service)

func WithStorageKey(key string) Option {
	return func(s *Service) {
		if strings.TrimSpace(key) != "" {
			s.storageKey = key
		}
	}
}

func WithNotifier(n ports.Notifier) Option {
	return func(s *Service) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithDisplayCurrency(code string, rate decimal.Decimal) Option {
	return func(s *Service) {
		if strings.TrimSpace(code) != "" {
			s.currency = code
		}
		if rate.IsPositive() {
			s.rate = rate
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIdleEviction drops session stores not used for d. Zero keeps them
// for the life of the process.
func WithIdleEviction(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.idle = d
		}
	}
}

// WithClock overrides the time source used for idle eviction.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithObserver subscribes an extra observer to every session store, after
// persistence and notification.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observers = append(s.observers, o)
		}
	}
}

func NewService(kv ports.KeyValueStore, catalog ports.ProductCatalog, opts ...Option) *Service {
	s := &Service{
		kv:         kv,
		catalog:    catalog,
		notifier:   ports.NoopNotifier,
		storageKey: DefaultStorageKey,
		currency:   DefaultDisplayCurrency,
		rate:       DefaultExchangeRate,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:        time.Now,
		stores:     map[string]*cachedStore{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *Service) AddToCart(ctx context.Context, sessionID string, req ports.AddItem) (*ports.Snapshot, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, mapError(domain.ErrEmptyProductID)
	}
	store, err := s.Store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	product, err := s.catalog.Product(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if _, err := store.Add(ctx, product, req.Quantity, req.Color, req.Size); err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, store), nil
}

func (s *Service) RemoveFromCart(ctx context.Context, sessionID, cartID string) (*ports.Snapshot, error) {
	store, err := s.Store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := store.Remove(ctx, cartID); err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, store), nil
}

func (s *Service) UpdateQuantity(ctx context.Context, sessionID, cartID string, delta int) (*ports.Snapshot, error) {
	store, err := s.Store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := store.UpdateQuantity(ctx, cartID, delta); err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, store), nil
}

func (s *Service) Cart(ctx context.Context, sessionID string) (*ports.Snapshot, error) {
	store, err := s.Store(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(sessionID, store), nil
}

func (s *Service) Notification(_ context.Context, sessionID string) (domain.Notification, bool) {
	return s.notifier.Current(sessionID)
}

// Store returns the session's store, hydrating it on first use.
func (s *Service) Store(ctx context.Context, sessionID string) (*Store, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, mapError(ErrInvalidSession)
	}
	if store, ok := s.cached(sessionID); ok {
		return store, nil
	}

	items, err := s.hydrate(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	observers := append([]Observer{PersistTo(s.kv, s.storageKey), NotifyAdds(s.notifier)}, s.observers...)

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	if existing, ok := s.stores[sessionID]; ok {
		existing.lastUsed = now
		return existing.store, nil
	}
	store := NewStore(sessionID, items, observers...)
	s.stores[sessionID] = &cachedStore{store: store, lastUsed: now}
	return store, nil
}

func (s *Service) cached(sessionID string) (*Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.evictIdleLocked(now)
	entry, ok := s.stores[sessionID]
	if !ok {
		return nil, false
	}
	entry.lastUsed = now
	return entry.store, true
}

// evictIdleLocked sweeps at most once per idle period.
func (s *Service) evictIdleLocked(now time.Time) {
	if s.idle <= 0 || now.Sub(s.lastSweep) < s.idle {
		return
	}
	s.lastSweep = now
	for id, entry := range s.stores {
		if now.Sub(entry.lastUsed) > s.idle {
			delete(s.stores, id)
		}
	}
}

// hydrate reads the stored cart. Missing or malformed data yields an empty
// cart; only store failures are returned.
func (s *Service) hydrate(ctx context.Context, sessionID string) ([]domain.LineItem, error) {
	data, err := s.kv.Get(ctx, sessionID, s.storageKey)
	if errors.Is(err, ports.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	items, err := domain.Decode(data)
	if err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "discarding malformed stored cart",
			slog.String("session.id", sessionID), slog.String("error", err.Error()))
		return nil, nil
	}
	return items, nil
}

func (s *Service) snapshot(sessionID string, store *Store) *ports.Snapshot {
	items, totals := store.view()
	return &ports.Snapshot{
		SessionID: sessionID,
		Items:     items,
		Totals:    totals,
		Display: ports.DisplayAmount{
			Currency: s.currency,
			Amount:   totals.Total.Mul(s.rate).Round(2),
		},
	}
}

var _ ports.Service = (*Service)(nil)
