package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "newsdesk", cfg.DBName)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.TracingEnabled)
	assert.Equal(t, 1.0, cfg.SamplerRatio)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "newsdesk_test")
	t.Setenv("REDIS_URL", "redis://example:6379/2")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "newsdesk_test", cfg.DBName)
	assert.Equal(t, "redis://example:6379/2", cfg.RedisURL)
}

func TestValidate(t *testing.T) {
	t.Run("production rejects the default password", func(t *testing.T) {
		cfg := &Config{Port: "9090", DBName: "newsdesk", DBPassword: "password", Env: "production"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("production accepts a real password", func(t *testing.T) {
		cfg := &Config{Port: "9090", DBName: "newsdesk", DBPassword: "s3cr3t-enough", Env: "production"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port is rejected", func(t *testing.T) {
		cfg := &Config{DBName: "newsdesk"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing db name is rejected", func(t *testing.T) {
		cfg := &Config{Port: "9090"}
		assert.Error(t, cfg.Validate())
	})
}

func TestDSN(t *testing.T) {
	cfg := &Config{
		DBHost:     "db.internal",
		DBPort:     "5433",
		DBUser:     "svc",
		DBPassword: "pw",
		DBName:     "newsdesk",
		DBSSLMode:  "require",
	}
	assert.Equal(t,
		"host=db.internal port=5433 user=svc password=pw dbname=newsdesk sslmode=require",
		cfg.DSN())

	cfg.DBSSLMode = ""
	assert.Contains(t, cfg.DSN(), "sslmode=disable")
}
