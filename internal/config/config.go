// Package config handles application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    int
	BaseURL string

	// Database
	DatabaseURL string

	// Authentication. Access tokens are HS256 JWTs signed by the identity
	// provider; the shared secret is all this API needs to verify them.
	JWTSecret string

	// Model provider
	OpenAIAPIKey  string
	OpenAIBaseURL string // optional override for OpenAI-compatible endpoints
	Model         string // validated against the allow-list at client creation

	// Generation overrides. Zero values mean "use the per-use-case default".
	TemperatureOverride float32
	MaxTokensOverride   int

	// Website fetcher
	FetchTimeout  time.Duration
	FetchMaxPages int

	// CORS
	CORSOrigins []string

	// Object storage for the Helix segment catalog (optional)
	StorageEnabled   bool
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageRegion    string
	SegmentCatalogKey string
}

// Load reads configuration from environment variables. Missing required
// secrets are configuration errors and fail startup.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnvInt("PORT", 8080),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8080"),
		DatabaseURL: getEnv("DATABASE_URL", "file:branding.db?_journal=WAL&_timeout=5000"),
		JWTSecret:   getEnv("JWT_SECRET", ""),

		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		Model:         getEnv("OPENAI_MODEL", ""),

		MaxTokensOverride: getEnvInt("OPENAI_MAX_TOKENS", 0),

		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 12*time.Second),
		FetchMaxPages: getEnvInt("FETCH_MAX_PAGES", 5),

		CORSOrigins: getEnvSlice("CORS_ORIGINS", []string{"http://localhost:3000"}),

		StorageEndpoint:   getEnv("AWS_ENDPOINT_URL_S3", ""),
		StorageAccessKey:  getEnv("AWS_ACCESS_KEY_ID", ""),
		StorageSecretKey:  getEnv("AWS_SECRET_ACCESS_KEY", ""),
		StorageBucket:     getEnvWithFallback("BUCKET_NAME", "STORAGE_BUCKET", ""),
		StorageRegion:     getEnv("AWS_REGION", "auto"),
		SegmentCatalogKey: getEnv("SEGMENT_CATALOG_KEY", "config/helix_segments.json"),
	}

	if v := os.Getenv("OPENAI_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil && f >= 0 && f <= 2 {
			cfg.TemperatureOverride = float32(f)
		}
	}

	// Segment catalog loading is enabled only when a bucket is configured
	cfg.StorageEnabled = cfg.StorageBucket != "" && cfg.StorageEndpoint != ""

	if cfg.OpenAIAPIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return defaultValue
}

func getEnvWithFallback(primary, fallback, defaultValue string) string {
	if value := os.Getenv(primary); value != "" {
		return value
	}
	if value := os.Getenv(fallback); value != "" {
		return value
	}
	return defaultValue
}
