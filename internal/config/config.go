package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// sessionExpiry is fixed: sessions are stateless and cannot be revoked
// early, so they stay short-lived.
const sessionExpiry = 8 * time.Hour

const devSessionSecret = "dev-secret-change-in-production"

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	SessionSecret string
	SessionExpiry time.Duration
	LogLevel      string
	RateLimitRPS  float64
}

// Load reads configuration from the environment. Development defaults keep
// local startup frictionless; in production a missing session secret or
// database password is fatal at startup, never a per-request failure.
func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		SessionSecret: getEnv("SESSION_SECRET", devSessionSecret),
		SessionExpiry: sessionExpiry,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		RateLimitRPS:  5,
		DatabaseDSN:   buildDSN(),
	}

	if cfg.Env == "production" && cfg.SessionSecret == devSessionSecret {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}
	if cfg.Env == "production" && os.Getenv("DB_PASSWORD") == "" {
		slog.Error("DB_PASSWORD must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

// buildDSN assembles the MySQL DSN from the DB_* variables. parseTime keeps
// timestamps as time.Time in dynamic result rows; the timeout parameters
// bound connect and query I/O so a dead database never hangs a request.
func buildDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?parseTime=true&timeout=15s&readTimeout=30s&writeTimeout=30s",
		getEnv("DB_USER", "root"),
		getEnv("DB_PASSWORD", "password"),
		getEnv("DB_HOST", "127.0.0.1"),
		getEnv("DB_PORT", "3306"),
		getEnv("DB_NAME", "isdnc"),
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
