package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	storefrontserver "github.com/Apurer/go-gin-storefront/go"

	accountmemory "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/memory"
	accountobs "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/observability"
	accountpostgres "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/persistence/postgres"
	accountapp "github.com/Apurer/go-gin-storefront/internal/domains/accounts/application"
	accountports "github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
	cartcatalog "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/memory"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/notify"
	cartobs "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/observability"
	cartpostgres "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/persistence/postgres"
	cartapp "github.com/Apurer/go-gin-storefront/internal/domains/cart/application"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
	catalogmemory "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/observability"
	catalogpostgres "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/persistence/postgres"
	catalogapp "github.com/Apurer/go-gin-storefront/internal/domains/catalog/application"
	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
	reviewmemory "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/memory"
	reviewobs "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/observability"
	reviewapp "github.com/Apurer/go-gin-storefront/internal/domains/reviews/application"
	shellmemory "github.com/Apurer/go-gin-storefront/internal/domains/storefront/adapters/memory"
	shellapp "github.com/Apurer/go-gin-storefront/internal/domains/storefront/application"
	platformobservability "github.com/Apurer/go-gin-storefront/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-storefront/internal/platform/postgres"
)

const serviceName = "storefront-api"

// Run boots the storefront HTTP API and blocks until ctx is cancelled or
// the server fails.
func Run(ctx context.Context, cfg Config) error {
	instruments, shutdown, err := platformobservability.Init(ctx, platformobservability.Options{
		ServiceName: serviceName,
		Environment: cfg.Environment,
		LogLevel:    cfg.LogLevel,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, cleanupDB := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	defer cleanupDB()
	storage := buildStorage(ctx, db, cfg, logger)

	catalog := catalogobs.New(
		catalogapp.NewService(storage.products),
		catalogobs.WithLogger(logger),
		catalogobs.WithTracer(instruments.Tracer("internal.catalog.application")),
		catalogobs.WithMeter(instruments.Meter("internal.catalog.application")),
	)
	accounts := accountobs.New(
		accountapp.NewService(storage.sessions),
		accountobs.WithLogger(logger),
		accountobs.WithTracer(instruments.Tracer("internal.accounts.application")),
		accountobs.WithMeter(instruments.Meter("internal.accounts.application")),
	)
	reviews := reviewobs.New(
		reviewapp.NewService(reviewmemory.NewRepository(), accounts),
		reviewobs.WithLogger(logger),
		reviewobs.WithTracer(instruments.Tracer("internal.reviews.application")),
		reviewobs.WithMeter(instruments.Meter("internal.reviews.application")),
	)

	toasts := notify.NewToasts(cfg.CartNotification)
	defer toasts.Close()
	cart := cartobs.New(
		cartapp.NewService(storage.kv, cartcatalog.NewLookup(catalog),
			cartapp.WithStorageKey(cfg.CartStorageKey),
			cartapp.WithNotifier(toasts),
			cartapp.WithDisplayCurrency(cfg.DisplayCurrency, cfg.DisplayExchangeRate),
			cartapp.WithLogger(logger),
			cartapp.WithIdleEviction(min(cfg.SessionTTL, cfg.CartRetention)),
			cartapp.WithObserver(cartobs.MutationRecorder(instruments.Meter("internal.cart.store"))),
		),
		cartobs.WithLogger(logger),
		cartobs.WithTracer(instruments.Tracer("internal.cart.application")),
	)
	shell := shellapp.NewShell(shellmemory.NewStateRepository(), catalog, reviews, shellapp.WithLogger(logger))

	handlers := storefrontserver.ApiHandleFunctions{
		CatalogAPI: storefrontserver.NewCatalogAPI(catalog),
		ReviewAPI:  storefrontserver.NewReviewAPI(reviews, catalog),
		CartAPI:    storefrontserver.NewCartAPI(cart),
		SessionAPI: storefrontserver.NewSessionAPI(shell),
		AuthAPI:    storefrontserver.NewAuthAPI(accounts),
		Sessions: storefrontserver.SessionConfig{
			CookieName: cfg.SessionCookieName,
			TTL:        cfg.SessionTTL,
			Secure:     cfg.SessionCookieSecure,
		},
	}

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("storefront API listening", slog.String("addr", server.Addr))
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("storefront API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down storefront API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

type storage struct {
	products catalogports.Repository
	kv       cartports.KeyValueStore
	sessions accountports.SessionStore
}

// buildStorage picks postgres adapters when a database is available and
// in-memory ones otherwise.
func buildStorage(ctx context.Context, db *gorm.DB, cfg Config, logger *slog.Logger) storage {
	if db == nil {
		logger.Info("storefront storage configured in memory")
		return storage{
			products: catalogmemory.NewSeededRepository(),
			kv:       cartmemory.NewKeyValueStore(),
			sessions: accountmemory.NewSessionStore(),
		}
	}
	products := catalogpostgres.NewRepository(db)
	seeded, err := products.SeedIfEmpty(ctx, catalogdomain.StaticCatalog())
	if err != nil {
		logger.Warn("failed to seed catalog, serving the built-in catalog from memory", slog.String("error", err.Error()))
		return storage{
			products: catalogmemory.NewSeededRepository(),
			kv:       cartpostgres.NewKeyValueStore(db),
			sessions: accountpostgres.NewSessionStore(db, cfg.SessionTTL),
		}
	}
	if seeded {
		logger.Info("catalog seeded")
	}
	logger.Info("storefront storage configured with postgres")
	return storage{
		products: products,
		kv:       cartpostgres.NewKeyValueStore(db),
		sessions: accountpostgres.NewSessionStore(db, cfg.SessionTTL),
	}
}
