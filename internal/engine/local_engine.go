package engine

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/peerfold/peerfold/internal/config"
	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/models"
)

// localEngine is the in-process implementation of [SyncEngine]. It owns the
// node identity, the recursive folder watcher and the clipboard sharing gate.
// Peer content transfer stops at this seam: tickets are minted and parsed
// locally, group membership is tracked, but no bytes travel to other nodes.
type localEngine struct {
	cfg    config.ClientEngine
	logger *logger.Logger

	mu      sync.Mutex
	closed  bool
	nodeID  string
	topic   string
	joined  bool
	folder  string
	watcher *folderWatcher

	clipboardSharing bool

	fsEvents  chan models.FsEvent
	ready     chan struct{}
	forwardWG sync.WaitGroup
}

func NewLocalEngine(cfg config.ClientEngine, log *logger.Logger) SyncEngine {
	return &localEngine{
		cfg:      cfg,
		logger:   log,
		fsEvents: make(chan models.FsEvent, 100),
		ready:    make(chan struct{}, 1),
	}
}

func (e *localEngine) Setup(ctx context.Context) error {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	// repeated setup keeps the existing identity
	if e.nodeID != "" {
		return nil
	}

	if err := os.MkdirAll(e.cfg.DataDir, 0o755); err != nil {
		log.Err(err).Str("func", "localEngine.Setup").Str("data_dir", e.cfg.DataDir).Msg("failed to create engine data directory")
		return fmt.Errorf("failed to create engine data directory: %w", err)
	}

	e.nodeID = uuid.NewString()
	log.Info().Str("func", "localEngine.Setup").Str("node_id", e.nodeID).Msg("engine node identity created")

	return nil
}

func (e *localEngine) BindFolder(ctx context.Context, path string) error {
	log := logger.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		log.Err(err).Str("func", "localEngine.BindFolder").Str("path", path).Msg("sync folder is not accessible")
		return fmt.Errorf("sync folder is not accessible: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("sync folder %s is not a directory", path)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	// binding the already-bound folder changes nothing
	if e.folder == path && e.watcher != nil {
		return nil
	}

	if e.watcher != nil {
		if stopErr := e.watcher.Stop(); stopErr != nil {
			log.Err(stopErr).Str("func", "localEngine.BindFolder").Str("path", e.folder).Msg("failed to stop previous watcher")
		}
	}

	watcher, err := newFolderWatcher(path, e.logger)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWatcherFailed, err)
	}
	if err := watcher.Start(); err != nil {
		return fmt.Errorf("%w: %w", ErrWatcherFailed, err)
	}

	e.folder = path
	e.watcher = watcher

	e.forwardWG.Add(1)
	go e.forward(watcher)

	log.Info().Str("func", "localEngine.BindFolder").Str("path", path).Msg("sync folder bound")

	return nil
}

// forward drains one watcher's events into the engine's stable event stream.
// It exits when the watcher is stopped and its channel closed.
func (e *localEngine) forward(watcher *folderWatcher) {
	defer e.forwardWG.Done()

	for event := range watcher.Events() {
		select {
		case e.fsEvents <- event:
		default:
			e.logger.Warn().Str("path", event.Path).Msg("dropping filesystem event: consumer is behind")
		}
	}
}

func (e *localEngine) CreateTicket(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return "", ErrEngineClosed
	}
	if e.nodeID == "" {
		return "", ErrNotSetUp
	}
	if e.folder == "" {
		return "", ErrNoFolderBound
	}

	topic := uuid.NewString()
	ticket := GossipTicket{
		Topic: topic,
		Nodes: []NodeAddr{{NodeID: e.nodeID}},
	}

	token, err := ticket.Encode()
	if err != nil {
		log.Err(err).Str("func", "localEngine.CreateTicket").Msg("failed to encode gossip ticket")
		return "", err
	}

	e.topic = topic
	log.Info().Str("func", "localEngine.CreateTicket").Str("topic", topic).Msg("gossip ticket created")

	return token, nil
}

func (e *localEngine) JoinGroup(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	ticket, err := DecodeTicket(token)
	if err != nil {
		log.Err(err).Str("func", "localEngine.JoinGroup").Msg("failed to decode gossip ticket")
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}
	if e.nodeID == "" {
		return ErrNotSetUp
	}
	if e.folder == "" {
		return ErrNoFolderBound
	}

	e.topic = ticket.Topic
	e.joined = true

	// single-slot channel: a pending not-yet-consumed signal is enough
	select {
	case e.ready <- struct{}{}:
	default:
	}

	log.Info().Str("func", "localEngine.JoinGroup").Str("topic", ticket.Topic).Int("known_nodes", len(ticket.Nodes)).Msg("joined gossip group")

	return nil
}

func (e *localEngine) NodeStatus(ctx context.Context) (models.NodeStatus, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return models.NodeStatus{}, ErrEngineClosed
	}
	if e.nodeID == "" {
		return models.NodeStatus{}, ErrNotSetUp
	}

	return models.NodeStatus{
		NodeID:        e.nodeID,
		Topic:         e.topic,
		Joined:        e.joined,
		WatchedFolder: e.folder,
	}, nil
}

func (e *localEngine) ClipboardSharingEnabled(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return false, ErrEngineClosed
	}

	return e.clipboardSharing, nil
}

func (e *localEngine) EnableClipboardSharing(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	e.clipboardSharing = true
	return nil
}

func (e *localEngine) DisableClipboardSharing(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return ErrEngineClosed
	}

	e.clipboardSharing = false
	return nil
}

func (e *localEngine) FsEvents() <-chan models.FsEvent {
	return e.fsEvents
}

func (e *localEngine) Ready() <-chan struct{} {
	return e.ready
}

func (e *localEngine) Close() error {
	e.mu.Lock()

	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true

	watcher := e.watcher
	e.watcher = nil
	e.mu.Unlock()

	var err error
	if watcher != nil {
		err = watcher.Stop()
	}

	e.forwardWG.Wait()
	close(e.fsEvents)

	return err
}
