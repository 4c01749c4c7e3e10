package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string
	Env  string
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string
}

// MetricsConfig holds Prometheus configuration.
type MetricsConfig struct {
	Prefix string
}

// Config is the full application configuration, read from the
// environment (a .env file is honored when present).
type Config struct {
	DatabaseURL string
	Server      ServerConfig
	Log         LogConfig
	Metrics     MetricsConfig
}

// Load reads configuration from the environment. DATABASE_URL is the
// only required setting.
func Load() (*Config, error) {
	// Missing .env is fine; real environments set variables directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	return &Config{
		DatabaseURL: databaseURL,
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Metrics: MetricsConfig{
			Prefix: getEnv("METRICS_PREFIX", "texmart"),
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
