package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for peerfold.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, an optional JSON file,
// and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the version string.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Engine holds configuration for the local sync engine: its data
	// directory and clipboard polling cadence.
	Engine Engine `envPrefix:"ENGINE_"`

	// Workers holds configuration for background processing.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the persistence backends.
type Storage struct {
	// DB holds the local session database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite session store.
type DB struct {
	// DSN is the SQLite file path (or full DSN) of the session store
	// (e.g. "peerfold.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Engine holds settings for the local sync engine.
type Engine struct {
	// DataDir is the directory where the engine keeps node identity and
	// other engine-private files.
	// Env: ENGINE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// ClipboardPollInterval is how often the clipboard monitor samples the
	// system clipboard while clipboard sharing is enabled (e.g. "2s").
	// Env: ENGINE_CLIPBOARD_POLL_INTERVAL
	ClipboardPollInterval time.Duration `env:"CLIPBOARD_POLL_INTERVAL"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// NotificationBuffer is the capacity of the coordinator's user-visible
	// notification queue.
	// Env: WORKERS_NOTIFICATION_BUFFER
	NotificationBuffer int `env:"NOTIFICATION_BUFFER"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
