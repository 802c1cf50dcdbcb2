package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/Apurer/go-gin-storefront/internal/app/api"
	accountpostgres "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/persistence/postgres"
	cartpostgres "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/persistence/postgres"
	platformobservability "github.com/Apurer/go-gin-storefront/internal/platform/observability"
	platformpostgres "github.com/Apurer/go-gin-storefront/internal/platform/postgres"
)

func main() {
	envFile := pflag.String("env-file", ".env", "optional dotenv file loaded before reading configuration")
	sessionsOnly := pflag.Bool("sessions-only", false, "purge expired logins but keep stored carts")
	pflag.Parse()

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("failed to load %s: %v", *envFile, err)
	}
	cfg, err := api.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := platformobservability.NewLogger(os.Stdout, cfg.LogLevel).With(slog.String("service", "session-purger"))
	if err := purge(ctx, cfg, logger, *sessionsOnly); err != nil {
		logger.Error("purge failed", slog.String("error", err.Error()))
		cancel()
		os.Exit(1)
	}
}

func purge(ctx context.Context, cfg api.Config, logger *slog.Logger, sessionsOnly bool) error {
	db, cleanup := platformpostgres.Open(ctx, cfg.PostgresDSN, logger)
	defer cleanup()
	if db == nil {
		return errors.New("POSTGRES_DSN not set or connection failed; cannot purge sessions")
	}

	sessions, err := accountpostgres.NewSessionStore(db, cfg.SessionTTL).PurgeExpired(ctx)
	if err != nil {
		return fmt.Errorf("purge sessions: %w", err)
	}
	logger.Info("expired logins purged", slog.Int64("count", sessions))
	if sessionsOnly {
		return nil
	}

	cutoff := time.Now().Add(-cfg.CartRetention)
	carts, err := cartpostgres.NewKeyValueStore(db).PurgeBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("purge carts: %w", err)
	}
	logger.Info("stale carts purged", slog.Int64("count", carts), slog.Time("cutoff", cutoff))
	return nil
}
