package coordinator

import (
	"context"
	"fmt"
	"strings"

	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/models"
)

// SelectFolder validates path, durably records it as the sync folder and
// points the engine's watcher at it. The onboarding step does not advance;
// the user may re-select a different folder any number of times, and the
// durable value is always the most recently committed one.
func (c *Coordinator) SelectFolder(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	path = strings.TrimSpace(path)
	if path == "" {
		c.notify(LevelError, "select a folder to synchronize")
		return fmt.Errorf("%w: empty folder path", ErrInvalidInput)
	}

	entries, err := listDirectory(path)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.SelectFolder").Str("path", path).Msg("folder is not readable")
		c.notify(LevelError, "folder is not accessible")
		return fmt.Errorf("%w: %w", ErrFilesystemReadFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	previous := c.cfg.SyncFolderPath
	c.cfg.SyncFolderPath = path

	if err := c.persist(ctx, models.StoreKeySyncFolderPath, path); err != nil {
		c.cfg.SyncFolderPath = previous
		log.Err(err).Str("func", "Coordinator.SelectFolder").Str("path", path).Msg("failed to persist folder selection")
		c.notify(LevelError, "failed to save the folder selection")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	if err := c.engine.BindFolder(ctx, path); err != nil {
		// the committed selection stands; watching is retried on resume
		log.Err(err).Str("func", "Coordinator.SelectFolder").Str("path", path).Msg("engine folder bind failed")
		c.notify(LevelError, "failed to start watching the folder")
	}

	c.snapshot = models.DirectorySnapshot{Path: path, Entries: entries}
	c.bump()
	c.notify(LevelInfo, "sync folder selected")

	return nil
}

// ContinueToGossip advances onboarding from folder selection to gossip
// setup. It requires a chosen folder and a successful (idempotent) engine
// setup.
func (c *Coordinator) ContinueToGossip(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.SyncFolderPath == "" {
		c.notify(LevelError, "choose a sync folder first")
		return fmt.Errorf("%w: no folder selected", ErrInvalidInput)
	}

	if err := c.engine.Setup(ctx); err != nil {
		log.Err(err).Str("func", "Coordinator.ContinueToGossip").Msg("engine setup failed")
		c.notify(LevelError, "sync engine setup failed")
		return fmt.Errorf("%w: %w", ErrEngineCallFailed, err)
	}

	c.onboarding.Step = models.StepGossipSetup
	c.bump()

	return nil
}

// ChooseGenerate asks the engine to mint a fresh group ticket and records it
// as the pending ticket. Any previously entered ticket text is discarded.
func (c *Coordinator) ChooseGenerate(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	ticket, err := c.engine.CreateTicket(ctx)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.ChooseGenerate").Msg("ticket creation failed")
		c.notify(LevelError, "failed to create a sync group ticket")
		return fmt.Errorf("%w: %w", ErrEngineCallFailed, err)
	}

	c.onboarding.Choice = models.ChoiceGenerate
	c.onboarding.PendingTicket = ticket
	c.bump()

	return nil
}

// SetTicketInput records manually entered ticket text as the pending ticket.
// Whitespace is trimmed; switching to manual input discards any previously
// generated ticket.
func (c *Coordinator) SetTicketInput(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.onboarding.Choice = models.ChoiceInput
	c.onboarding.PendingTicket = strings.TrimSpace(text)
	c.bump()
}

// FinishSetup completes onboarding: it joins the sync group with the pending
// ticket, durably records the ticket and activates the session. An
// incomplete configuration (no folder, no pending ticket) produces a
// notification and leaves onboarding exactly where it was.
func (c *Coordinator) FinishSetup(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cfg.SyncFolderPath == "" || c.onboarding.PendingTicket == "" {
		c.notify(LevelError, "incomplete configuration: choose a folder and a ticket")
		return fmt.Errorf("%w: incomplete configuration", ErrInvalidInput)
	}

	ticket := c.onboarding.PendingTicket

	if err := c.engine.JoinGroup(ctx, ticket); err != nil {
		log.Err(err).Str("func", "Coordinator.FinishSetup").Msg("group join failed")
		c.notify(LevelError, "failed to join the sync group")
		return fmt.Errorf("%w: %w", ErrEngineCallFailed, err)
	}

	previous := c.cfg.GossipTicket
	c.cfg.GossipTicket = ticket

	if err := c.persist(ctx, models.StoreKeyGossipTicket, ticket); err != nil {
		c.cfg.GossipTicket = previous
		log.Err(err).Str("func", "Coordinator.FinishSetup").Msg("failed to persist ticket")
		c.notify(LevelError, "failed to save the sync group ticket")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.onboarding = models.Onboarding{}
	c.state = StateActive
	c.installSnapshotLocked(ctx, c.cfg.SyncFolderPath)
	c.bump()
	c.notify(LevelInfo, "setup complete: folder synchronization is active")

	log.Info().Str("func", "Coordinator.FinishSetup").Msg("session activated")

	return nil
}

// ToggleAutoSync flips the automatic synchronization flag and persists the
// new value, rolling back the in-memory flag if the store rejects it.
func (c *Coordinator) ToggleAutoSync(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	target := !c.cfg.AutoSyncEnabled
	c.cfg.AutoSyncEnabled = target

	if err := c.persist(ctx, models.StoreKeyAutoSync, target); err != nil {
		c.cfg.AutoSyncEnabled = !target
		log.Err(err).Str("func", "Coordinator.ToggleAutoSync").Msg("failed to persist auto-sync flag")
		c.notify(LevelError, "failed to save the auto-sync setting")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.bump()

	return nil
}

// ToggleClipboardSharing flips clipboard sharing. The engine is switched
// first and the flag is persisted only when the engine call succeeded; on
// any failure the previous value remains in force, both in memory and
// durably.
func (c *Coordinator) ToggleClipboardSharing(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	target := !c.cfg.ClipboardSharingEnabled

	var engineErr error
	if target {
		engineErr = c.engine.EnableClipboardSharing(ctx)
	} else {
		engineErr = c.engine.DisableClipboardSharing(ctx)
	}
	if engineErr != nil {
		log.Err(engineErr).Str("func", "Coordinator.ToggleClipboardSharing").Bool("target", target).Msg("engine clipboard call failed")
		c.notify(LevelError, "failed to switch clipboard sharing")
		return fmt.Errorf("%w: %w", ErrEngineCallFailed, engineErr)
	}

	c.cfg.ClipboardSharingEnabled = target

	if err := c.persist(ctx, models.StoreKeyClipboardSharing, target); err != nil {
		c.cfg.ClipboardSharingEnabled = !target

		// best effort: bring the engine back in line with the kept value
		if target {
			_ = c.engine.DisableClipboardSharing(ctx)
		} else {
			_ = c.engine.EnableClipboardSharing(ctx)
		}

		log.Err(err).Str("func", "Coordinator.ToggleClipboardSharing").Msg("failed to persist clipboard sharing flag")
		c.notify(LevelError, "failed to save the clipboard sharing setting")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	c.bump()

	return nil
}

// NodeStatus queries the engine for a diagnostic snapshot of the local node.
func (c *Coordinator) NodeStatus(ctx context.Context) (models.NodeStatus, error) {
	log := logger.FromContext(ctx)

	status, err := c.engine.NodeStatus(ctx)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.NodeStatus").Msg("node status query failed")
		c.notify(LevelError, "failed to query node status")
		return models.NodeStatus{}, fmt.Errorf("%w: %w", ErrEngineCallFailed, err)
	}

	return status, nil
}

// persist stages one value and commits it, discarding the staged write when
// the commit fails so a later commit cannot pick up half a transition.
// Callers must hold c.mu.
func (c *Coordinator) persist(ctx context.Context, key string, value any) error {
	if err := c.store.Set(ctx, key, value); err != nil {
		c.store.Discard()
		return err
	}

	if err := c.store.Commit(ctx); err != nil {
		c.store.Discard()
		return err
	}

	return nil
}
