package config

import (
	"fmt"
	"os"
)

// Store backend selectors.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// Config holds service configuration.
type Config struct {
	DatabaseURL   string
	ServerAddr    string
	StoreBackend  string
	MigrationsDir string
	OfferPolicy   string
	ReplyMarker   string
}

// Load reads configuration from environment.
func Load() (*Config, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		user := getenv("POSTGRES_USER", "tractor_bot")
		pass := getenv("POSTGRES_PASSWORD", "tractor_bot_pass")
		db := getenv("POSTGRES_DB", "tractor_bot")
		host := getenv("POSTGRES_HOST", "localhost")
		port := getenv("POSTGRES_PORT", "5432")
		sslmode := getenv("DATABASE_SSLMODE", "disable")
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", user, pass, host, port, db, sslmode)
	}

	backend := getenv("STORE_BACKEND", StorePostgres)
	if backend != StorePostgres && backend != StoreMemory {
		return nil, fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	return &Config{
		DatabaseURL:   dsn,
		ServerAddr:    getenv("SERVER_ADDR", "0.0.0.0:8080"),
		StoreBackend:  backend,
		MigrationsDir: getenv("MIGRATIONS_DIR", "internal/migrations"),
		OfferPolicy:   os.Getenv("OFFER_POLICY"),
		ReplyMarker:   os.Getenv("REPLY_MARKER"),
	}, nil
}

func getenv(key, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}
