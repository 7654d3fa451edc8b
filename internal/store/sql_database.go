package store

import (
	"database/sql"

	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/migrations"
)

type DB struct {
	*sql.DB
	logger *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
