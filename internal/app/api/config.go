package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port        string
	PostgresDSN string
	Environment string
	LogLevel    string

	CartStorageKey      string
	CartNotification    time.Duration
	CartRetention       time.Duration
	DisplayCurrency     string
	DisplayExchangeRate decimal.Decimal

	SessionCookieName   string
	SessionCookieSecure bool
	SessionTTL          time.Duration
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                envDefault("PORT", "8080"),
		PostgresDSN:         strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		Environment:         envDefault("ENVIRONMENT", "local"),
		LogLevel:            envDefault("LOG_LEVEL", "info"),
		CartStorageKey:      envDefault("CART_STORAGE_KEY", "uch_cart"),
		DisplayCurrency:     strings.ToUpper(envDefault("DISPLAY_CURRENCY", "NPR")),
		SessionCookieName:   envDefault("SESSION_COOKIE_NAME", "uch_session"),
		SessionCookieSecure: isTruthy(os.Getenv("SESSION_COOKIE_SECURE")),
	}

	seconds, err := positiveInt("CART_NOTIFICATION_SECONDS", 3)
	if err != nil {
		return Config{}, err
	}
	cfg.CartNotification = time.Duration(seconds) * time.Second

	days, err := positiveInt("CART_RETENTION_DAYS", 30)
	if err != nil {
		return Config{}, err
	}
	cfg.CartRetention = time.Duration(days) * 24 * time.Hour

	hours, err := positiveInt("SESSION_TTL_HOURS", 24)
	if err != nil {
		return Config{}, err
	}
	cfg.SessionTTL = time.Duration(hours) * time.Hour

	rate, err := decimal.NewFromString(envDefault("DISPLAY_EXCHANGE_RATE", "133.5"))
	if err != nil || !rate.IsPositive() {
		return Config{}, fmt.Errorf("DISPLAY_EXCHANGE_RATE must be a positive decimal")
	}
	cfg.DisplayExchangeRate = rate

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("PORT must be numeric")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

func positiveInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer", key)
	}
	return n, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
