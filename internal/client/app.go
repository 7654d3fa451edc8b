package client

import (
	"context"
	"errors"

	"github.com/peerfold/peerfold/internal/coordinator"
	"github.com/peerfold/peerfold/internal/engine"
	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/internal/store"
	"github.com/peerfold/peerfold/internal/tui"
	"github.com/peerfold/peerfold/internal/workers"
)

// App ties the coordinator, the terminal UI, and the background workers into
// one runnable client process.
type App struct {
	coordinator *coordinator.Coordinator
	ui          *tui.TUI
	syncEngine  engine.SyncEngine
	storages    *store.ClientStorages
	clipboard   *engine.ClipboardMonitor
	logger      *logger.Logger

	remoteClipboard chan engine.ClipboardPayload
}

// NewApp assembles a client application from already constructed dependencies.
func NewApp(
	coord *coordinator.Coordinator,
	ui *tui.TUI,
	syncEngine engine.SyncEngine,
	storages *store.ClientStorages,
	clipboard *engine.ClipboardMonitor,
	log *logger.Logger,
) (*App, error) {
	if coord == nil || ui == nil || syncEngine == nil || storages == nil || clipboard == nil {
		return nil, errors.New("init client app error: missing dependency")
	}

	return &App{
		coordinator:     coord,
		ui:              ui,
		syncEngine:      syncEngine,
		storages:        storages,
		clipboard:       clipboard,
		logger:          log,
		remoteClipboard: make(chan engine.ClipboardPayload, 8),
	}, nil
}

// runContext derives the process-lifetime context: cancellable and carrying
// the application logger, so every coordinator and engine operation can log
// through logger.FromContext.
func (a *App) runContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	return a.logger.WithContext(ctx), cancel
}

// Run starts the background workers and the terminal UI and blocks until the
// user quits or the UI fails.
//
// A session store failure during Load does not abort startup: the UI still
// comes up and shows the storage error screen, so Load errors are logged and
// swallowed here.
func (a *App) Run() error {
	ctx, cancel := a.runContext()
	defer cancel()

	if err := a.coordinator.Load(ctx); err != nil {
		a.logger.Err(err).Str("func", "App.Run").Msg("session state unavailable")
	}

	background := workers.NewWorkers(a.logger,
		a.coordinator,
		a.clipboard,
		workers.WorkerFunc(a.broadcastClipboard),
		workers.WorkerFunc(a.applyRemoteClipboard),
	)

	done := make(chan struct{})
	go func() {
		defer close(done)
		background.Run(ctx)
	}()

	err := a.ui.Run(ctx)

	cancel()
	<-done

	if closeErr := a.syncEngine.Close(); closeErr != nil {
		a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing sync engine")
	}
	if closeErr := a.storages.Session.Close(); closeErr != nil {
		a.logger.Err(closeErr).Str("func", "App.Run").Msg("error closing session store")
	}

	if errors.Is(err, tui.ErrUserQuit) {
		return nil
	}

	return err
}

// broadcastClipboard drains locally captured clipboard payloads and hands
// them to the sync group. The local engine carries no transport of its own,
// so delivery ends at the gossip layer boundary here.
func (a *App) broadcastClipboard(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload, ok := <-a.clipboard.Outgoing():
			if !ok {
				return nil
			}
			a.logger.Debug().
				Str("func", "App.broadcastClipboard").
				Str("from_node_id", payload.FromNodeID).
				Msg("clipboard payload handed to the sync group")
		}
	}
}

// DeliverRemoteClipboard ingests an encoded clipboard payload arriving from
// the sync group and queues it for application to the local clipboard. It is
// the receive-side counterpart of broadcastClipboard and is called at the
// gossip-layer boundary.
func (a *App) DeliverRemoteClipboard(raw []byte) error {
	payload, err := engine.ClipboardPayloadFromBytes(raw)
	if err != nil {
		return err
	}

	select {
	case a.remoteClipboard <- payload:
		return nil
	default:
		return errors.New("remote clipboard queue is full")
	}
}

// applyRemoteClipboard drains queued remote payloads onto the local
// clipboard for as long as the process runs.
func (a *App) applyRemoteClipboard(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case payload := <-a.remoteClipboard:
			if err := a.clipboard.ApplyRemote(ctx, payload); err != nil {
				a.logger.Err(err).Str("func", "App.applyRemoteClipboard").Msg("failed to apply remote clipboard payload")
			}
		}
	}
}
