package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-d database DSN (SQLite file path)
//	-data-dir engine data directory
//	-clipboard-poll clipboard poll interval (e.g., "2s")
//	-notification-buffer notification queue capacity
//	-version application version string
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var databaseDSN string
	var dataDir string
	var clipboardPoll time.Duration
	var notificationBuffer int
	var version string
	var jsonConfigPath string

	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&dataDir, "data-dir", "", "Engine data directory")
	flag.DurationVar(&clipboardPoll, "clipboard-poll", 0, "Clipboard poll interval (e.g., 2s)")
	flag.IntVar(&notificationBuffer, "notification-buffer", 0, "Notification queue capacity")
	flag.StringVar(&version, "version", "", "Application version string")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Version: version,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Engine: Engine{
			DataDir:               dataDir,
			ClipboardPollInterval: clipboardPoll,
		},
		Workers: Workers{
			NotificationBuffer: notificationBuffer,
		},
		JSONFilePath: jsonConfigPath,
	}
}
