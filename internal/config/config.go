// Package config reads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr           string
	GRPCAddr           string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	ShutdownTimeout    time.Duration

	Database   Database
	Storefront Storefront
}

type Database struct {
	Driver          string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	Migrate         bool
}

type Storefront struct {
	APIURL        string
	CartStore     string
	CartDir       string
	RedisAddr     string
	RedisPassword string
	Currency      currency.Unit
	FetchTimeout  time.Duration
}

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	CartStoreFile   = "file"
	CartStoreRedis  = "redis"
	CartStoreMemory = "memory"
)

// Load builds a Config from environment variables, falling back to defaults
// for anything unset.
func Load() (*Config, error) {
	var p parser

	cfg := &Config{
		HTTPAddr:           getEnv("HTTP_ADDR", ":4000"),
		GRPCAddr:           getEnv("GRPC_ADDR", ":50051"),
		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),
		ReadTimeout:        p.duration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:       p.duration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout:    p.duration("SHUTDOWN_TIMEOUT", 5*time.Second),
		Database: Database{
			Driver:          getEnv("DB_DRIVER", DriverMySQL),
			DSN:             getEnv("DB_DSN", "root:root@tcp(localhost:3306)/webstore?parseTime=true"),
			MaxOpenConns:    p.int("DB_MAX_OPEN_CONNS", 50),
			MaxIdleConns:    p.int("DB_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: p.duration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			Migrate:         p.bool("DB_MIGRATE", true),
		},
		Storefront: Storefront{
			APIURL:        strings.TrimRight(getEnv("STOREFRONT_API_URL", "http://localhost:4000"), "/"),
			CartStore:     getEnv("CART_STORE", CartStoreFile),
			CartDir:       getEnv("CART_DIR", ".storefront"),
			RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			Currency:      p.currency("CURRENCY", currency.USD),
			FetchTimeout:  p.duration("FETCH_TIMEOUT", 10*time.Second),
		},
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		p.fail("DB_DRIVER", fmt.Errorf("unsupported driver %q", cfg.Database.Driver))
	}
	switch cfg.Storefront.CartStore {
	case CartStoreFile, CartStoreRedis, CartStoreMemory:
	default:
		p.fail("CART_STORE", fmt.Errorf("unsupported store %q", cfg.Storefront.CartStore))
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parser collects every malformed variable so Load can report them together.
type parser struct {
	errs []error
}

func (p *parser) fail(key string, err error) {
	p.errs = append(p.errs, fmt.Errorf("config: %s: %w", key, err))
}

func (p *parser) int(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return n
}

func (p *parser) bool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return b
}

func (p *parser) duration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return d
}

func (p *parser) currency(key string, def currency.Unit) currency.Unit {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	u, err := currency.ParseISO(v)
	if err != nil {
		p.fail(key, err)
		return def
	}
	return u
}
