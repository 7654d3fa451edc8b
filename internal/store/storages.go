package store

import (
	"context"
	"fmt"

	"github.com/peerfold/peerfold/internal/config"
	"github.com/peerfold/peerfold/internal/logger"
)

// ClientStorages groups all client-side storage backends into a single value
// that can be passed around the coordinator layer. Currently it holds only
// [SessionStore]; additional stores can be added here as the feature set
// grows.
type ClientStorages struct {
	// Session is the SQLite-backed key/value store holding session
	// settings such as the sync folder path and the gossip ticket.
	Session SessionStore
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [SessionStore].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Session: NewSessionStore(db, logger),
	}, nil
}
