package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{"string duration", `"30s"`, 30 * time.Second, false},
		{"string hours", `"1h"`, time.Hour, false},
		{"numeric nanoseconds", `1000000000`, time.Second, false},
		{"bad string", `"soon"`, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}

func TestParseJSON_FullFile(t *testing.T) {
	var fileCfg StructuredJSONConfig
	fileCfg.App.Version = "0.3.0"
	fileCfg.Storage.DB.DSN = "sessions.db"
	fileCfg.Engine.DataDir = "/var/lib/peerfold"
	fileCfg.Engine.ClipboardPollInterval = Duration(4 * time.Second)
	fileCfg.Workers.NotificationBuffer = 8
	path := writeTempJSONConfig(t, fileCfg)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "sessions.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/var/lib/peerfold", cfg.Engine.DataDir)
	assert.Equal(t, 4*time.Second, cfg.Engine.ClipboardPollInterval)
	assert.Equal(t, 8, cfg.Workers.NotificationBuffer)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}
