package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SESSION_SECRET", "DB_DRIVER", "PORT", "GEMINI_MODEL", "SESSION_TTL"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Len(t, cfg.SessionSecret, 64, "a random secret is generated when none is configured")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("API_KEY", "gm-key")
	t.Setenv("SESSION_SECRET", "s3cret")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "gm-key", cfg.APIKey)
	assert.Equal(t, "s3cret", cfg.SessionSecret)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestConfig_Validate(t *testing.T) {
	base := Config{DBDriver: "sqlite", SQLiteDSN: ":memory:", SessionTTL: time.Hour}

	t.Run("sqlite ok", func(t *testing.T) {
		assert.NoError(t, base.Validate())
	})

	t.Run("mysql needs credentials", func(t *testing.T) {
		cfg := base
		cfg.DBDriver = "mysql"
		assert.Error(t, cfg.Validate())

		cfg.DBUser, cfg.DBHost, cfg.DBName = "root", "db", "reybanpac"
		assert.NoError(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := base
		cfg.DBDriver = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		cfg := base
		cfg.SessionTTL = 0
		assert.Error(t, cfg.Validate())
	})
}

func TestConfig_AllowedOrigins(t *testing.T) {
	cfg := Config{CORSOrigins: " https://app.reybanpac.com , ,http://localhost:5173"}
	assert.Equal(t, []string{"https://app.reybanpac.com", "http://localhost:5173"}, cfg.AllowedOrigins())
}
