package models

// FsEventKind classifies a filesystem notification from the sync engine.
type FsEventKind int

const (
	// FsCreate means a file or directory appeared under the sync folder.
	FsCreate FsEventKind = iota + 1

	// FsModify means content or metadata of an existing entry changed.
	FsModify

	// FsRemove means an entry disappeared from the sync folder.
	FsRemove

	// FsError means the watcher itself reported a failure; Path is empty.
	FsError

	// FsOther covers access and other kinds that carry no sync-relevant
	// state change.
	FsOther
)

// String returns a short label for logging.
func (k FsEventKind) String() string {
	switch k {
	case FsCreate:
		return "create"
	case FsModify:
		return "modify"
	case FsRemove:
		return "remove"
	case FsError:
		return "error"
	default:
		return "other"
	}
}

// FsEvent is a single filesystem change notification emitted by the sync
// engine's folder watcher.
type FsEvent struct {
	Kind FsEventKind `json:"kind"`
	Path string      `json:"path"`
}
