package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the semantic version string shown in diagnostics.
	Version string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path used for the session store.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientEngine groups local sync engine settings.
type ClientEngine struct {
	// DataDir is the engine's private data directory.
	DataDir string
	// ClipboardPollInterval is the clipboard monitor sampling cadence.
	ClipboardPollInterval time.Duration
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// NotificationBuffer is the coordinator notification queue capacity.
	NotificationBuffer int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Storage contains client storage settings.
	Storage ClientStorage
	// Engine contains local sync engine settings.
	Engine ClientEngine
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Engine: ClientEngine{
			DataDir:               cfg.Engine.DataDir,
			ClipboardPollInterval: cfg.Engine.ClipboardPollInterval,
		},
		Workers: ClientWorkers{
			NotificationBuffer: cfg.Workers.NotificationBuffer,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	return clientCfg, nil
}
