package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SessionStore is the durable key/value store backing session settings.
//
// Writes are staged in memory by [SessionStore.Set] and become durable only
// when [SessionStore.Commit] succeeds. Reads observe staged values before
// persisted ones, so a caller always sees its own uncommitted writes.
type SessionStore interface {
	// Get loads the value stored under key into dest, which must be a
	// pointer suitable for JSON decoding. The boolean result reports
	// whether the key was present at all.
	Get(ctx context.Context, key string, dest any) (bool, error)

	// Set stages a new value for key. The value is serialised to JSON
	// immediately; nothing is written to disk until Commit.
	Set(ctx context.Context, key string, value any) error

	// Commit flushes all staged writes in a single transaction. On success
	// the staged set is cleared; on failure it is kept so the caller may
	// retry or discard.
	Commit(ctx context.Context) error

	// Discard drops all staged writes without touching persisted state.
	Discard()

	// Close releases the underlying database connection.
	Close() error
}
