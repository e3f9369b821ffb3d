package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"HTTP_ADDR", "GRPC_ADDR", "CORS_ALLOWED_ORIGINS", "SHUTDOWN_TIMEOUT",
		"DB_DRIVER", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_MIGRATE",
		"STOREFRONT_API_URL", "CART_STORE", "CURRENCY",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":4000", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
	assert.Equal(t, 25, cfg.Database.MaxIdleConns)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.True(t, cfg.Database.Migrate)
	assert.Equal(t, "http://localhost:4000", cfg.Storefront.APIURL)
	assert.Equal(t, CartStoreFile, cfg.Storefront.CartStore)
	assert.Equal(t, currency.USD, cfg.Storefront.Currency)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:shop.db")
	t.Setenv("DB_MAX_OPEN_CONNS", "4")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("STOREFRONT_API_URL", "https://shop.test/api/")
	t.Setenv("CART_STORE", "redis")
	t.Setenv("CURRENCY", "EUR")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:shop.db", cfg.Database.DSN)
	assert.Equal(t, 4, cfg.Database.MaxOpenConns)
	assert.False(t, cfg.Database.Migrate)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "https://shop.test/api", cfg.Storefront.APIURL)
	assert.Equal(t, CartStoreRedis, cfg.Storefront.CartStore)
	assert.Equal(t, currency.EUR, cfg.Storefront.Currency)
}

func TestLoad_ReportsEveryInvalidValue(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	t.Setenv("READ_TIMEOUT", "soon")
	t.Setenv("DB_MIGRATE", "maybe")
	t.Setenv("CURRENCY", "XXXX")
	t.Setenv("DB_DRIVER", "oracle")
	t.Setenv("CART_STORE", "cookie")

	cfg, err := Load()
	require.Error(t, err)
	assert.Nil(t, cfg)

	for _, key := range []string{"DB_MAX_OPEN_CONNS", "READ_TIMEOUT", "DB_MIGRATE", "CURRENCY", "DB_DRIVER", "CART_STORE"} {
		assert.Contains(t, err.Error(), "config: "+key+":")
	}
}
