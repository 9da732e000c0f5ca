package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aussiebroadwan/accounts/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/accounts/pkg/jwtx"
)

// ErrMissingJWTSecret means AUTH_JWT_SECRET was not set. The service refuses
// to start rather than minting tokens nobody can verify.
var ErrMissingJWTSecret = errors.New("AUTH_JWT_SECRET is required")

type Config struct {
	JWTSecret string // Required: shared HMAC-SHA512 secret for access tokens

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./accounts.db)
	AccessTokenTTL       time.Duration // Optional: access token lifetime (default: 15m)
	RefreshTokenTTL      time.Duration // Optional: refresh token lifetime (default: 168h)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

// LoadConfig reads the configuration from the environment. A missing JWT
// secret is a config error, not a panic, so main can report it cleanly.
func LoadConfig() (Config, error) {
	cfg := Config{
		JWTSecret:            os.Getenv("AUTH_JWT_SECRET"),
		DatabaseFile:         getEnvOrDefault("AUTH_DATABASE_FILE", "accounts.db"),
		AccessTokenTTL:       getEnvDurationOrDefault("AUTH_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTokenTTL:      getEnvDurationOrDefault("AUTH_REFRESH_TOKEN_TTL", sqlite.DefaultRefreshTokenTTL),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}

	if cfg.JWTSecret == "" {
		return Config{}, ErrMissingJWTSecret
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept duration strings (e.g. "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Accept bare integers as minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
