package coordinator

import (
	"context"

	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/models"
)

// Run is the coordinator's event bridge: it consumes the engine's push
// notifications for the life of ctx. Filesystem changes trigger an
// idempotent snapshot recompute; the network-ready signal becomes a success
// notification. Events are handled strictly in arrival order. Run returns
// when ctx ends or the engine's event stream closes.
func (c *Coordinator) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info().Str("func", "Coordinator.Run").Msg("event bridge started")

	fsEvents := c.engine.FsEvents()
	ready := c.engine.Ready()

	for {
		select {
		case <-ctx.Done():
			log.Info().Str("func", "Coordinator.Run").Msg("event bridge stopped")
			return ctx.Err()

		case event, ok := <-fsEvents:
			if !ok {
				log.Info().Str("func", "Coordinator.Run").Msg("engine event stream closed")
				return nil
			}
			c.handleFsEvent(ctx, event)

		case <-ready:
			c.notify(LevelInfo, "connected to the sync group")
			c.mu.Lock()
			c.bump()
			c.mu.Unlock()
		}
	}
}

func (c *Coordinator) handleFsEvent(ctx context.Context, event models.FsEvent) {
	log := logger.FromContext(ctx)

	switch event.Kind {
	case models.FsError:
		log.Warn().Str("func", "Coordinator.handleFsEvent").Msg("filesystem watcher reported an error")
		c.notify(LevelError, "folder watching hit an error")
	default:
		log.Debug().Str("func", "Coordinator.handleFsEvent").Str("kind", event.Kind.String()).Str("path", event.Path).Msg("filesystem change")
		// recompute is idempotent; a burst of events converges on the
		// same snapshot
		if err := c.RefreshSnapshot(ctx); err != nil {
			log.Err(err).Str("func", "Coordinator.handleFsEvent").Msg("snapshot refresh failed")
		}
	}
}
