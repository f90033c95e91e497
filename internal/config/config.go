// Package config collects the service-level settings read from the
// environment. Database settings live with the db package.
package config

import (
	"os"
	"strconv"
)

// DefaultMaxSlots bounds the number of asset slots per portfolio so every
// valuation, drift check and rebalance runs in bounded time.
const DefaultMaxSlots = 5

// Config holds service configuration
type Config struct {
	ServerPort string
	// StoreBackend selects the persistence backend: "memory" or "db".
	StoreBackend string
	AdminToken   string
	MaxSlots     int
}

// New creates a new service configuration from environment variables
func New() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		StoreBackend: getEnv("STORE_BACKEND", "db"),
		AdminToken:   os.Getenv("ADMIN_TOKEN"),
		MaxSlots:     getEnvInt("MAX_ASSET_SLOTS", DefaultMaxSlots),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
