package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_VERSION": "1.2.3",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/home/alice/.local/share/peerfold/peerfold.db",

		"ENGINE_DATA_DIR":                "/home/alice/.peerfold",
		"ENGINE_CLIPBOARD_POLL_INTERVAL": "5s",

		"WORKERS_NOTIFICATION_BUFFER": "32",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "/home/alice/.local/share/peerfold/peerfold.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/home/alice/.peerfold", cfg.Engine.DataDir)
	assert.Equal(t, 5*time.Second, cfg.Engine.ClipboardPollInterval)
	assert.Equal(t, 32, cfg.Workers.NotificationBuffer)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"STORAGE_DB_DATABASE_URI": "peerfold.db",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.NoError(t, err)
	assert.Equal(t, "peerfold.db", cfg.Storage.DB.DSN)
	assert.Empty(t, cfg.App.Version)
	assert.Empty(t, cfg.Engine.DataDir)
	assert.Zero(t, cfg.Workers.NotificationBuffer)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ENGINE_CLIPBOARD_POLL_INTERVAL": "not-a-duration",
	})

	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	require.Error(t, err)
}
