// Package coordinator owns the session lifecycle of the client: the journey
// from an unconfigured process through onboarding (folder selection, gossip
// setup) to an active synchronized session. It is the single writer of the
// session configuration; every state transition is serialized through one
// coordinator instance.
package coordinator

import (
	"context"
	"fmt"
	"sync"

	"github.com/peerfold/peerfold/internal/engine"
	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/internal/store"
	"github.com/peerfold/peerfold/models"
)

// State is the coordinator's lifecycle position.
type State int

const (
	// StateUninitialized is the state before Load has run.
	StateUninitialized State = iota
	// StateOnboarding covers the folder-selection and gossip-setup steps.
	StateOnboarding
	// StateActive is a fully configured, running session.
	StateActive
	// StateStoreFailed is the persistent error state entered when the
	// session store cannot be read during the initial load.
	StateStoreFailed
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateOnboarding:
		return "onboarding"
	case StateActive:
		return "active"
	case StateStoreFailed:
		return "store failed"
	default:
		return "unknown"
	}
}

// NotificationLevel marks a notification as routine or as a failure report.
type NotificationLevel int

const (
	LevelInfo NotificationLevel = iota
	LevelError
)

// Notification is a user-visible event emitted by the coordinator: a
// completed action, a ready signal or a recovered failure.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// Coordinator is the single owner of the session state machine. All mutating
// operations lock the coordinator for their full duration, so no two
// transitions can interleave destructively; directory listings alone run
// outside the lock and are re-validated before their result is installed.
type Coordinator struct {
	store  store.SessionStore
	engine engine.SyncEngine
	logger *logger.Logger

	mu         sync.Mutex
	state      State
	cfg        models.SessionConfig
	onboarding models.Onboarding
	snapshot   models.DirectorySnapshot
	version    uint64
	loaded     bool

	notifications chan Notification
}

func New(sessionStore store.SessionStore, syncEngine engine.SyncEngine, log *logger.Logger, notificationBuffer int) *Coordinator {
	if notificationBuffer <= 0 {
		notificationBuffer = 16
	}

	return &Coordinator{
		store:         sessionStore,
		engine:        syncEngine,
		logger:        log,
		state:         StateUninitialized,
		notifications: make(chan Notification, notificationBuffer),
	}
}

// State returns the coordinator's current lifecycle state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Config returns a copy of the current session configuration.
func (c *Coordinator) Config() models.SessionConfig {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// OnboardingView returns a copy of the onboarding progress.
func (c *Coordinator) OnboardingView() models.Onboarding {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.onboarding
}

// Snapshot returns the last installed directory snapshot.
func (c *Coordinator) Snapshot() models.DirectorySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	entries := make([]models.DirEntry, len(c.snapshot.Entries))
	copy(entries, c.snapshot.Entries)

	return models.DirectorySnapshot{Path: c.snapshot.Path, Entries: entries}
}

// Version returns a counter bumped on every externally visible change. The
// presentation layer polls it to decide when to re-read state.
func (c *Coordinator) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Notifications returns the bounded stream of user-visible events.
func (c *Coordinator) Notifications() <-chan Notification {
	return c.notifications
}

// bump records an externally visible change. Callers must hold c.mu.
func (c *Coordinator) bump() {
	c.version++
}

// notify delivers a notification without ever blocking a transition; when
// the consumer is behind, the oldest pending notification is sacrificed to
// make room for the new one.
func (c *Coordinator) notify(level NotificationLevel, message string) {
	n := Notification{Level: level, Message: message}

	for {
		select {
		case c.notifications <- n:
			return
		default:
			select {
			case <-c.notifications:
				c.logger.Warn().Str("func", "Coordinator.notify").Msg("dropping oldest notification: consumer is behind")
			default:
			}
		}
	}
}

// Load performs the one-time initial read of the persisted session. It
// decides whether the process resumes an active session or enters
// onboarding. A store failure here is terminal for the session: the
// coordinator enters [StateStoreFailed] and stays there.
func (c *Coordinator) Load(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.loaded {
		return nil
	}

	cfg, err := c.readSessionConfig(ctx)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.Load").Msg("initial session load failed")
		c.state = StateStoreFailed
		c.loaded = true
		c.bump()
		c.notify(LevelError, "session storage is unavailable; cannot continue")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.cfg = cfg
	c.loaded = true

	if cfg.Configured() {
		c.state = StateActive
		c.resumeEngine(ctx)
	} else {
		c.state = StateOnboarding
		c.onboarding = models.Onboarding{Step: models.StepFolderSelection}
	}

	c.bump()
	log.Info().Str("func", "Coordinator.Load").Str("state", c.state.String()).Msg("session loaded")

	return nil
}

// readSessionConfig loads all session keys from the store. A missing key
// leaves the zero value in place; only store-level failures are errors.
func (c *Coordinator) readSessionConfig(ctx context.Context) (models.SessionConfig, error) {
	var cfg models.SessionConfig

	reads := []struct {
		key  string
		dest any
	}{
		{models.StoreKeySyncFolderPath, &cfg.SyncFolderPath},
		{models.StoreKeyGossipTicket, &cfg.GossipTicket},
		{models.StoreKeyAutoSync, &cfg.AutoSyncEnabled},
		{models.StoreKeyClipboardSharing, &cfg.ClipboardSharingEnabled},
	}

	for _, r := range reads {
		if _, err := c.store.Get(ctx, r.key, r.dest); err != nil {
			return models.SessionConfig{}, fmt.Errorf("failed to read %s: %w", r.key, err)
		}
	}

	return cfg, nil
}

// resumeEngine re-establishes the engine side of a previously configured
// session: identity, folder watching and group membership. Failures are
// surfaced as notifications; the stored configuration stays authoritative.
// Callers must hold c.mu.
func (c *Coordinator) resumeEngine(ctx context.Context) {
	log := logger.FromContext(ctx)

	if err := c.engine.Setup(ctx); err != nil {
		log.Err(err).Str("func", "Coordinator.resumeEngine").Msg("engine setup failed on resume")
		c.notify(LevelError, "sync engine setup failed")
		return
	}

	if err := c.engine.BindFolder(ctx, c.cfg.SyncFolderPath); err != nil {
		log.Err(err).Str("func", "Coordinator.resumeEngine").Str("path", c.cfg.SyncFolderPath).Msg("folder bind failed on resume")
		c.notify(LevelError, "failed to watch the sync folder")
	}

	if err := c.engine.JoinGroup(ctx, c.cfg.GossipTicket); err != nil {
		log.Err(err).Str("func", "Coordinator.resumeEngine").Msg("group join failed on resume")
		c.notify(LevelError, "failed to rejoin the sync group")
	}

	if c.cfg.ClipboardSharingEnabled {
		if err := c.engine.EnableClipboardSharing(ctx); err != nil {
			log.Err(err).Str("func", "Coordinator.resumeEngine").Msg("clipboard sharing enable failed on resume")
			c.notify(LevelError, "failed to re-enable clipboard sharing")
		}
	}

	c.installSnapshotLocked(ctx, c.cfg.SyncFolderPath)
}
