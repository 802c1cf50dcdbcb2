package api

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "POSTGRES_DSN", "ENVIRONMENT", "LOG_LEVEL", "CART_STORAGE_KEY",
		"CART_NOTIFICATION_SECONDS", "CART_RETENTION_DAYS", "DISPLAY_CURRENCY",
		"DISPLAY_EXCHANGE_RATE", "SESSION_COOKIE_NAME", "SESSION_COOKIE_SECURE", "SESSION_TTL_HOURS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Empty(t, cfg.PostgresDSN)
	assert.Equal(t, "local", cfg.Environment)
	assert.Equal(t, "uch_cart", cfg.CartStorageKey)
	assert.Equal(t, 3*time.Second, cfg.CartNotification)
	assert.Equal(t, 30*24*time.Hour, cfg.CartRetention)
	assert.Equal(t, "NPR", cfg.DisplayCurrency)
	assert.True(t, decimal.RequireFromString("133.5").Equal(cfg.DisplayExchangeRate))
	assert.Equal(t, "uch_session", cfg.SessionCookieName)
	assert.False(t, cfg.SessionCookieSecure)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CART_NOTIFICATION_SECONDS", "5")
	t.Setenv("DISPLAY_CURRENCY", "inr")
	t.Setenv("DISPLAY_EXCHANGE_RATE", "83.2")
	t.Setenv("SESSION_COOKIE_SECURE", "yes")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, 5*time.Second, cfg.CartNotification)
	assert.Equal(t, "INR", cfg.DisplayCurrency)
	assert.Equal(t, "83.2", cfg.DisplayExchangeRate.String())
	assert.True(t, cfg.SessionCookieSecure)
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                      "http",
		"CART_NOTIFICATION_SECONDS": "0",
		"SESSION_TTL_HOURS":         "-1",
		"DISPLAY_EXCHANGE_RATE":     "free",
		"CART_RETENTION_DAYS":       "soon",
	}
	for key, value := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}
