package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"example.com/fitplan/internal/domain"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDRESS", "POSTGRES_URL", "DEFAULT_VARIANT", "CONSUMER_TOPICS", "HTTP_TIMEOUT", "CATALOG_LIMIT"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()
	assert.Equal(t, ":8095", cfg.HTTPAddress)
	assert.Empty(t, cfg.PostgresURL)
	assert.Equal(t, domain.VariantV1, cfg.DefaultVariant)
	assert.Equal(t, []string{"questionnaire_events"}, cfg.ConsumerTopics)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, 500, cfg.CatalogLimit)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("DEFAULT_VARIANT", "V2")
	t.Setenv("KAFKA_BROKERS", " a:9092, ,b:9092 ")
	t.Setenv("HTTP_TIMEOUT", "750ms")
	t.Setenv("CATALOG_LIMIT", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com,https://admin.example.com")

	cfg := FromEnv()
	assert.Equal(t, domain.VariantV2, cfg.DefaultVariant)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 750*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, 500, cfg.CatalogLimit)
	assert.Len(t, cfg.CORSAllowedOrigins, 2)
}

func TestUnknownVariantFallsBack(t *testing.T) {
	t.Setenv("DEFAULT_VARIANT", "v9")
	assert.Equal(t, domain.VariantV1, FromEnv().DefaultVariant)
}

func TestDotEnvFileDoesNotOverrideEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PROGRAM_EVENTS_TOPIC=program_events\nHTTP_ADDRESS=:1234\n"), 0o600))

	t.Setenv("HTTP_ADDRESS", ":9999")
	t.Setenv("PROGRAM_EVENTS_TOPIC", "")
	require.NoError(t, os.Unsetenv("PROGRAM_EVENTS_TOPIC"))
	require.NoError(t, godotenv.Load(path))

	cfg := FromEnv()
	assert.Equal(t, ":9999", cfg.HTTPAddress)
	assert.Equal(t, "program_events", cfg.ProgramEventsTopic)
}
