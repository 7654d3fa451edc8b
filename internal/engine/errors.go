package engine

import "errors"

// Sentinel errors returned by engine methods. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrNotSetUp is returned when an operation requiring node identity is
	// called before a successful Setup.
	ErrNotSetUp = errors.New("engine is not set up")

	// ErrNoFolderBound is returned when an operation requires a bound sync
	// folder and none has been bound yet.
	ErrNoFolderBound = errors.New("no sync folder is bound")

	// ErrInvalidTicket is returned when a gossip ticket cannot be decoded
	// or names no nodes to join.
	ErrInvalidTicket = errors.New("invalid gossip ticket")

	// ErrEngineClosed is returned when an operation is attempted after
	// Close.
	ErrEngineClosed = errors.New("engine is closed")

	// ErrWatcherFailed is returned when the filesystem watcher cannot be
	// started for the bound folder.
	ErrWatcherFailed = errors.New("failed to start filesystem watcher")
)
