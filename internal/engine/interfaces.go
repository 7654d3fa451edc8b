package engine

import (
	"context"

	"github.com/peerfold/peerfold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/engine_mock.go -package=mock

// SyncEngine is the backend responsible for filesystem watching, gossip group
// membership and clipboard sharing. The coordinator drives it through this
// interface; failures are reported through explicit error returns, never
// through timeouts.
type SyncEngine interface {
	// BindFolder points the engine's watcher and transport at path.
	// Binding the same folder twice is a no-op.
	BindFolder(ctx context.Context, path string) error

	// Setup prepares the engine's node identity and transport. Idempotent:
	// calling it again after a successful setup does nothing.
	Setup(ctx context.Context) error

	// CreateTicket mints a new shareable group credential for this node.
	// Requires a prior Setup and a bound folder.
	CreateTicket(ctx context.Context) (string, error)

	// JoinGroup joins the sync group named by ticket. Requires a prior
	// Setup and a bound folder. On success a signal is delivered on the
	// Ready channel.
	JoinGroup(ctx context.Context, ticket string) error

	// NodeStatus reports a diagnostic snapshot of the engine's node.
	NodeStatus(ctx context.Context) (models.NodeStatus, error)

	// ClipboardSharingEnabled reports whether clipboard text is currently
	// shared with the group.
	ClipboardSharingEnabled(ctx context.Context) (bool, error)
	EnableClipboardSharing(ctx context.Context) error
	DisableClipboardSharing(ctx context.Context) error

	// FsEvents streams filesystem changes under the bound folder.
	FsEvents() <-chan models.FsEvent

	// Ready signals a successful gossip group join.
	Ready() <-chan struct{}

	// Close stops the watcher and releases engine resources.
	Close() error
}
