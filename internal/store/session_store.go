package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/peerfold/peerfold/internal/logger"
)

// sessionStore is the SQLite-backed implementation of [SessionStore]. All
// values live in a single key/value table; writes are staged in memory and
// flushed to the database in one transaction by Commit.
type sessionStore struct {
	*DB
	logger *logger.Logger

	mu     sync.Mutex
	staged map[string]json.RawMessage
}

func NewSessionStore(db *DB, logger *logger.Logger) SessionStore {
	return &sessionStore{
		DB:     db,
		logger: logger,
		staged: make(map[string]json.RawMessage),
	}
}

func (s *sessionStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	raw, isStaged := s.staged[key]
	s.mu.Unlock()

	if !isStaged {
		query, args, err := buildSelectValueQuery(ctx, key)
		if err != nil {
			log.Err(err).Str("func", "sessionStore.Get").Str("key", key).Msg("failed to build select query")
			return false, err
		}

		var stored []byte
		row := s.DB.QueryRowContext(ctx, query, args...)
		if scanErr := row.Scan(&stored); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return false, nil
			}
			log.Err(scanErr).Str("func", "sessionStore.Get").Str("key", key).Msg("failed to scan session value")
			return false, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		raw = stored
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		log.Err(err).Str("func", "sessionStore.Get").Str("key", key).Msg("failed to decode session value")
		return false, fmt.Errorf("%w (key=%s): %w", ErrDecodingValue, key, err)
	}

	return true, nil
}

func (s *sessionStore) Set(ctx context.Context, key string, value any) error {
	log := logger.FromContext(ctx)

	raw, err := json.Marshal(value)
	if err != nil {
		log.Err(err).Str("func", "sessionStore.Set").Str("key", key).Msg("failed to encode session value")
		return fmt.Errorf("%w (key=%s): %w", ErrEncodingValue, key, err)
	}

	s.mu.Lock()
	s.staged[key] = raw
	s.mu.Unlock()

	return nil
}

func (s *sessionStore) Commit(ctx context.Context) error {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.staged) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "sessionStore.Commit").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	// stable write order keeps transaction behaviour reproducible
	keys := make([]string, 0, len(s.staged))
	for key := range s.staged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		query, args, buildErr := buildUpsertValueQuery(ctx, key, s.staged[key])
		if buildErr != nil {
			tx.Rollback()
			log.Err(buildErr).Str("func", "sessionStore.Commit").Str("key", key).Msg("failed to build upsert query")
			return buildErr
		}

		if _, execErr := tx.ExecContext(ctx, query, args...); execErr != nil {
			tx.Rollback()
			log.Err(execErr).Str("func", "sessionStore.Commit").Str("key", key).Msg("failed to execute upsert")
			return fmt.Errorf("%w (key=%s): %w", ErrExecutingStatement, key, execErr)
		}
	}

	if commitErr := tx.Commit(); commitErr != nil {
		log.Err(commitErr).Str("func", "sessionStore.Commit").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, commitErr)
	}

	s.staged = make(map[string]json.RawMessage)
	return nil
}

func (s *sessionStore) Discard() {
	s.mu.Lock()
	s.staged = make(map[string]json.RawMessage)
	s.mu.Unlock()
}

func (s *sessionStore) Close() error {
	return s.DB.DB.Close()
}
