package coordinator

import (
	"context"
	"fmt"
	"os"

	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/models"
)

// listDirectory reads one level of the folder and returns its entries in
// name order. Declared as a variable so tests can interpose slow or failing
// filesystems.
var listDirectory = func(path string) ([]models.DirEntry, error) {
	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, err
	}

	entries := make([]models.DirEntry, 0, len(dirEntries))
	for _, entry := range dirEntries {
		entries = append(entries, models.DirEntry{
			Name:  entry.Name(),
			IsDir: entry.IsDir(),
		})
	}

	return entries, nil
}

// RefreshSnapshot recomputes the directory snapshot for the currently bound
// folder. The listing runs without holding the coordinator lock, so multiple
// refreshes may overlap; a result is installed only if the bound path is
// still the one captured when the listing started. A late listing for a
// folder that has since been replaced is silently dropped.
func (c *Coordinator) RefreshSnapshot(ctx context.Context) error {
	log := logger.FromContext(ctx)

	c.mu.Lock()
	path := c.cfg.SyncFolderPath
	c.mu.Unlock()

	if path == "" {
		return nil
	}

	entries, err := listDirectory(path)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.RefreshSnapshot").Str("path", path).Msg("directory listing failed")
		c.notify(LevelError, "failed to read the sync folder")
		return fmt.Errorf("%w: %w", ErrFilesystemReadFailed, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// the folder changed while we were reading; this result is stale
	if c.cfg.SyncFolderPath != path {
		log.Debug().Str("func", "Coordinator.RefreshSnapshot").Str("stale_path", path).Msg("discarding stale directory listing")
		return nil
	}

	c.snapshot = models.DirectorySnapshot{Path: path, Entries: entries}
	c.bump()

	return nil
}

// installSnapshotLocked recomputes and installs the snapshot while the
// coordinator lock is already held, as part of a larger transition. Listing
// failures only produce a notification; the transition itself stands.
func (c *Coordinator) installSnapshotLocked(ctx context.Context, path string) {
	log := logger.FromContext(ctx)

	if path == "" {
		return
	}

	entries, err := listDirectory(path)
	if err != nil {
		log.Err(err).Str("func", "Coordinator.installSnapshotLocked").Str("path", path).Msg("directory listing failed")
		c.notify(LevelError, "failed to read the sync folder")
		return
	}

	c.snapshot = models.DirectorySnapshot{Path: path, Entries: entries}
}
