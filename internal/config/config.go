// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Store driver names accepted by STORE_DRIVER.
const (
	DriverMemory   = "memory"
	DriverFile     = "file"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration values for the API server.
// Values are populated by Load from environment variables.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string

	// StoreDriver selects the persistence backend:
	// memory, file, sqlite or postgres. Defaults to "file".
	StoreDriver string

	// DataDir is where the file and sqlite backends keep their data.
	// Defaults to "./data".
	DataDir string

	// DatabaseURL is the Postgres connection string.
	// Required when StoreDriver is "postgres", ignored otherwise.
	DatabaseURL string

	// BaseURL is the public origin used to build invite links.
	// Defaults to "http://localhost:5173".
	BaseURL string

	// JWTSecret signs session tokens. Defaults to a development-only value;
	// set JWT_SECRET in any real deployment.
	JWTSecret string

	// TokenTTL bounds session token validity. Defaults to 24h.
	TokenTTL time.Duration

	// SimulatedLatency is the fixed artificial delay applied to operations
	// that model remote calls. Defaults to 0 (no delay).
	SimulatedLatency time.Duration

	// PasswordHashing selects the credential store: "plain" or "bcrypt".
	// Defaults to "plain" for compatibility with existing stored records.
	PasswordHashing string

	// MaxBodyBytes caps incoming request body sizes. Defaults to 1 MiB.
	MaxBodyBytes int64
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error listing invalid or missing values.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		CORSOrigins:     splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173")),
		StoreDriver:     getEnv("STORE_DRIVER", DriverFile),
		DataDir:         getEnv("DATA_DIR", "./data"),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		BaseURL:         getEnv("BASE_URL", "http://localhost:5173"),
		JWTSecret:       getEnv("JWT_SECRET", "tripsync-dev-secret"),
		PasswordHashing: getEnv("PASSWORD_HASHING", "plain"),
	}

	switch cfg.StoreDriver {
	case DriverMemory, DriverFile, DriverSQLite, DriverPostgres:
	default:
		return Config{}, fmt.Errorf("invalid STORE_DRIVER %q: must be one of memory, file, sqlite, postgres", cfg.StoreDriver)
	}

	if cfg.StoreDriver == DriverPostgres && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("required environment variables not set: DATABASE_URL")
	}

	switch cfg.PasswordHashing {
	case "plain", "bcrypt":
	default:
		return Config{}, fmt.Errorf("invalid PASSWORD_HASHING %q: must be plain or bcrypt", cfg.PasswordHashing)
	}

	var err error
	if cfg.TokenTTL, err = getDuration("TOKEN_TTL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SimulatedLatency, err = getDuration("SIMULATED_LATENCY", 0); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes, err = getInt64("MAX_BODY_BYTES", 1<<20); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// getDuration parses the environment variable named by key as a time.Duration
// (e.g. "300ms", "2s"), or returns fallback when it is not set.
func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return d, nil
}

// getInt64 parses the environment variable named by key as an int64,
// or returns fallback when it is not set.
func getInt64(key string, fallback int64) (int64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
