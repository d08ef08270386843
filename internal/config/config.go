// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"example.com/fitplan/internal/domain"
)

// Config captures runtime configuration values for the fitplan services.
type Config struct {
	HTTPAddress            string
	PostgresURL            string
	DgraphURL              string
	CatalogLimit           int
	JWTSecret              string
	JWTIssuer              string
	HTTPTimeout            time.Duration
	CacheInvalidationURL   string
	CacheInvalidationToken string
	KafkaBrokers           []string
	ProgramEventsTopic     string
	ConsumerGroup          string
	ConsumerTopics         []string
	MetricsAddress         string
	DefaultVariant         domain.Variant
	CORSAllowedOrigins     []string
}

// Load reads a .env file when present, then environment variables, and
// applies defaults. Variables already set in the environment win over the
// file.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return FromEnv()
}

// FromEnv reads the current environment without touching .env files.
func FromEnv() Config {
	return Config{
		HTTPAddress:            getEnv("HTTP_ADDRESS", ":8095"),
		PostgresURL:            getEnv("POSTGRES_URL", ""),
		DgraphURL:              getEnv("DGRAPH_URL", ""),
		CatalogLimit:           getIntEnv("CATALOG_LIMIT", 500),
		JWTSecret:              getEnv("JWT_SECRET", "dev-secret-change-me"),
		JWTIssuer:              getEnv("JWT_ISSUER", "i5e.identity"),
		HTTPTimeout:            getDurationEnv("HTTP_TIMEOUT", 5*time.Second),
		CacheInvalidationURL:   getEnv("CACHE_INVALIDATION_URL", ""),
		CacheInvalidationToken: getEnv("CACHE_INVALIDATION_TOKEN", ""),
		KafkaBrokers:           splitAndTrim(getEnv("KAFKA_BROKERS", "kafka:9092")),
		ProgramEventsTopic:     getEnv("PROGRAM_EVENTS_TOPIC", ""),
		ConsumerGroup:          getEnv("CONSUMER_GROUP_ID", "fitplan-questionnaire-consumer"),
		ConsumerTopics:         splitAndTrim(getEnv("CONSUMER_TOPICS", "questionnaire_events")),
		MetricsAddress:         getEnv("METRICS_ADDRESS", ":9196"),
		DefaultVariant:         getVariantEnv("DEFAULT_VARIANT", domain.VariantV1),
		CORSAllowedOrigins:     splitAndTrim(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
	}
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getVariantEnv(key string, fallback domain.Variant) domain.Variant {
	v := domain.Variant(strings.ToLower(getEnv(key, string(fallback))))
	if !v.Valid() {
		log.Printf("config: unknown %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return v
}
