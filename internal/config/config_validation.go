package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Deliberately lenient: per-view validation happens when the structured
// config is mapped (see [ClientConfig.validate]).
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Engine.DataDir == "" || cfg.Engine.ClipboardPollInterval <= 0 {
		return ErrInvalidEngineConfigs
	}

	if cfg.Workers.NotificationBuffer <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
