package store

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const sessionValuesTable = "session_values"

// buildSelectValueQuery builds a SELECT returning the JSON payload stored
// under the given key.
func buildSelectValueQuery(_ context.Context, key string) (string, []any, error) {
	query, args, err := sq.Select("value").
		From(sessionValuesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpsertValueQuery builds an INSERT that replaces the existing value for
// the key if one is already stored.
func buildUpsertValueQuery(_ context.Context, key string, value json.RawMessage) (string, []any, error) {
	query, args, err := sq.Insert(sessionValuesTable).
		Columns("key", "value").
		Values(key, []byte(value)).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
