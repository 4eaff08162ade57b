package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings read from the environment. A .env file
// in the working directory is honored when present.
type Config struct {
	BaseURL     string
	UserAgent   string
	HTTPTimeout time.Duration
	LogLevel    string
}

func Load() *Config {
	// Missing .env is fine; plain environment variables still apply.
	_ = godotenv.Load()

	return &Config{
		BaseURL:     getEnv("DUELVIZ_BASE_URL", ""),
		UserAgent:   getEnv("DUELVIZ_USER_AGENT", ""),
		HTTPTimeout: getDuration("DUELVIZ_HTTP_TIMEOUT", 15*time.Second),
		LogLevel:    getEnv("DUELVIZ_LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
