package coordinator

import "errors"

// Error taxonomy of the session coordinator. All four kinds are recovered
// locally: they surface as user-visible notifications and the coordinator's
// configuration stays at its last known good value. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrStoreUnavailable is returned when the persisted session store
	// failed to load, save or commit. During the one-time initial load it
	// is the only error that blocks forward progress entirely.
	ErrStoreUnavailable = errors.New("session store is unavailable")

	// ErrInvalidInput is returned for empty tickets, missing folder
	// selections and similar guard failures.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEngineCallFailed is returned when a sync engine operation was
	// rejected or errored.
	ErrEngineCallFailed = errors.New("sync engine call failed")

	// ErrFilesystemReadFailed is returned when a directory listing failed.
	ErrFilesystemReadFailed = errors.New("filesystem read failed")
)
