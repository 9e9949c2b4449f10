package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceshop/shop-api/internal/config"
)

// validSecret satisfies the 32-character minimum for JWT secrets.
var validSecret = strings.Repeat("s", 32)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", validSecret)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Contains(t, cfg.Database.URL, "grace_shopper")
	assert.Equal(t, 60, cfg.Auth.TokenLifetimeMinutes)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", validSecret)
	t.Setenv("SHOP_SERVER_PORT", "9090")
	t.Setenv("SHOP_SERVER_LOG_LEVEL", "debug")
	t.Setenv("SHOP_AUTH_BCRYPT_COST", "12")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
}

func TestLoadDatabaseURLTakesPrecedence(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", validSecret)
	t.Setenv("SHOP_DATABASE_URL", "postgres://prefixed:5432/db")
	t.Setenv("DATABASE_URL", "postgres://platform:5432/db")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://platform:5432/db", cfg.Database.URL)
}

func TestLoadRejectsMissingSecret(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	t.Setenv("SHOP_AUTH_JWT_SECRET", validSecret)
	t.Setenv("SHOP_SERVER_LOG_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
}
