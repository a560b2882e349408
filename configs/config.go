package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration
type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	BackendBaseURL string
	BackendTimeout time.Duration
	MaxUploadBytes int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		BackendBaseURL: getEnv("RETAILBRAIN_BACKEND_URL", "http://127.0.0.1:8000"),
		BackendTimeout: durationFromEnv("RETAILBRAIN_BACKEND_TIMEOUT", 30*time.Second),
		MaxUploadBytes: int64FromEnv("RETAILBRAIN_MAX_UPLOAD_BYTES", 10<<20),
	}

	parsed, err := url.Parse(cfg.BackendBaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("RETAILBRAIN_BACKEND_URL must be a valid absolute URL")
	}
	cfg.BackendBaseURL = strings.TrimRight(parsed.String(), "/")

	if cfg.BackendTimeout <= 0 {
		return nil, fmt.Errorf("RETAILBRAIN_BACKEND_TIMEOUT must be > 0")
	}

	return cfg, nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func durationFromEnv(key string, fallback time.Duration) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	if parsed, err := time.ParseDuration(value); err == nil {
		return parsed
	}

	// Accept plain integers as seconds for convenience (e.g. "30" => 30s).
	if seconds, err := strconv.Atoi(value); err == nil && seconds >= 0 {
		return time.Duration(seconds) * time.Second
	}

	return fallback
}

func int64FromEnv(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}

	if parsed, err := strconv.ParseInt(value, 10, 64); err == nil && parsed > 0 {
		return parsed
	}

	return fallback
}
