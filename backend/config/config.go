// ABOUTME: Configuration loader for backend service
// ABOUTME: Loads settings from environment variables and an optional .env file with defaults

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read by LoadWithEnvFile when present; process env wins over it
const DefaultEnvFile = ".env"

type Config struct {
	// Server
	Port               string
	CacheTTL           int      // seconds, memoized calculation results (default 300)
	SessionTTL         int      // seconds of idle time before an editor session expires (default 3600)
	DiagramMaxCabinets int      // largest wall a wiring plan is traversed for (default 1000)
	CORSAllowedOrigins []string // allowed CORS origins (empty = block all cross-origin)

	// Rate Limiting
	RateLimitEnabled bool // Enable rate limiting (default: true)
	RateLimitWrite   int  // Requests per minute for session-mutating endpoints (default: 60)
	RateLimitDefault int  // Requests per minute for all other endpoints (default: 100)
}

// CacheDuration returns CacheTTL as a duration
func (c *Config) CacheDuration() time.Duration {
	return time.Duration(c.CacheTTL) * time.Second
}

// SessionDuration returns SessionTTL as a duration
func (c *Config) SessionDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}

// Load reads configuration from the environment after merging DefaultEnvFile
func Load() (*Config, error) {
	return LoadWithEnvFile(DefaultEnvFile)
}

// LoadWithEnvFile merges envFile into the environment (missing file is fine) and loads the config.
// Variables already set in the process environment are not overridden.
func LoadWithEnvFile(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		CacheTTL:           getEnvInt("CACHE_TTL", 300),
		SessionTTL:         getEnvInt("SESSION_TTL", 3600),
		DiagramMaxCabinets: getEnvInt("DIAGRAM_MAX_CABINETS", 1000),
		CORSAllowedOrigins: getEnvStringList("CORS_ALLOWED_ORIGINS"),

		RateLimitEnabled: getEnvBool("RATE_LIMIT_ENABLED", true),
		RateLimitWrite:   getEnvInt("RATE_LIMIT_WRITE", 60),
		RateLimitDefault: getEnvInt("RATE_LIMIT_DEFAULT", 100),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges of numeric settings
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}

	for _, ttl := range []struct {
		name  string
		value int
	}{
		{"CACHE_TTL", c.CacheTTL},
		{"SESSION_TTL", c.SessionTTL},
		{"DIAGRAM_MAX_CABINETS", c.DiagramMaxCabinets},
	} {
		if ttl.value < 1 {
			return fmt.Errorf("%s must be positive, got %d", ttl.name, ttl.value)
		}
	}

	for _, rl := range []struct {
		name  string
		value int
	}{
		{"RATE_LIMIT_WRITE", c.RateLimitWrite},
		{"RATE_LIMIT_DEFAULT", c.RateLimitDefault},
	} {
		if rl.value < 1 || rl.value > 10000 {
			return fmt.Errorf("%s must be between 1 and 10000, got %d", rl.name, rl.value)
		}
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvStringList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
