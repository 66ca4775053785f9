package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// No t.Parallel here: the tests mutate the process environment.

func TestInit_Defaults(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing-config")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 60, cfg.App.SecondsPerQuestion)
	assert.Equal(t, time.Duration(0), cfg.App.LoginDelay)
	assert.Equal(t, "admin@example.com", cfg.App.DemoAdminEmail)
	assert.Equal(t, "sqlite3", cfg.DB.Driver)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Empty(t, cfg.BotToken)
}

func TestInit_EnvOverrides(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing-config")
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_DSN", "postgres://quiz@localhost/quiz?sslmode=disable")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("TELEGRAM_OWNER_CHAT_ID", "42")

	cfg, err := Init()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, int64(42), cfg.Telegram.OwnerChatID)
}

func TestInit_InvalidDriver(t *testing.T) {
	t.Setenv("CONFIG_NAME", "missing-config")
	t.Setenv("DB_DRIVER", "mysql")

	_, err := Init()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}
