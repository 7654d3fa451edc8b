package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/atotto/clipboard"

	"github.com/peerfold/peerfold/internal/logger"
)

// ClipboardPayload is the unit of clipboard text exchanged inside a sync
// group, tagged with the node that produced it.
type ClipboardPayload struct {
	FromNodeID string `json:"from_node_id"`
	Content    string `json:"content"`
}

func (p ClipboardPayload) ToBytes() ([]byte, error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode clipboard payload: %w", err)
	}
	return raw, nil
}

func ClipboardPayloadFromBytes(raw []byte) (ClipboardPayload, error) {
	var p ClipboardPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return ClipboardPayload{}, fmt.Errorf("failed to decode clipboard payload: %w", err)
	}
	return p, nil
}

// ClipboardMonitor polls the system clipboard and publishes new text to the
// sync group while sharing is enabled. Remote payloads are applied back to
// the local clipboard through ApplyRemote. The last observed content is
// remembered so neither direction echoes text it has already seen.
type ClipboardMonitor struct {
	engine   SyncEngine
	interval time.Duration
	logger   *logger.Logger

	// swapped out in tests; the defaults talk to the real system clipboard
	readClipboard  func() (string, error)
	writeClipboard func(string) error

	mu          sync.Mutex
	lastContent string

	outgoing chan ClipboardPayload
}

func NewClipboardMonitor(engine SyncEngine, interval time.Duration, log *logger.Logger) *ClipboardMonitor {
	return &ClipboardMonitor{
		engine:         engine,
		interval:       interval,
		logger:         log,
		readClipboard:  clipboard.ReadAll,
		writeClipboard: clipboard.WriteAll,
		outgoing:       make(chan ClipboardPayload, 8),
	}
}

// Outgoing returns the stream of locally produced clipboard payloads destined
// for the sync group.
func (m *ClipboardMonitor) Outgoing() <-chan ClipboardPayload {
	return m.outgoing
}

// Run polls the clipboard until ctx ends. Each tick is skipped entirely while
// clipboard sharing is disabled, so nothing is read off the clipboard without
// the user's opt-in.
func (m *ClipboardMonitor) Run(ctx context.Context) error {
	m.logger.Info().Msg("clipboard monitoring started")

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info().Msg("clipboard monitoring stopped")
			return ctx.Err()
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *ClipboardMonitor) tick(ctx context.Context) {
	enabled, err := m.engine.ClipboardSharingEnabled(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "ClipboardMonitor.tick").Msg("failed to check clipboard sharing state")
		return
	}
	if !enabled {
		return
	}

	status, err := m.engine.NodeStatus(ctx)
	if err != nil {
		m.logger.Err(err).Str("func", "ClipboardMonitor.tick").Msg("failed to query node status")
		return
	}
	if !status.Joined {
		return
	}

	text, err := m.readClipboard()
	if err != nil {
		// empty or non-text clipboards are routine, not worth logging
		return
	}

	m.mu.Lock()
	changed := text != "" && text != m.lastContent
	m.mu.Unlock()

	if !changed {
		return
	}

	payload := ClipboardPayload{FromNodeID: status.NodeID, Content: text}

	select {
	case m.outgoing <- payload:
		m.mu.Lock()
		m.lastContent = text
		m.mu.Unlock()
		m.logger.Info().Int("len", len(text)).Msg("clipboard content published to group")
	default:
		m.logger.Warn().Msg("dropping clipboard payload: consumer is behind")
	}
}

// ApplyRemote writes a payload received from the group onto the local
// clipboard. It is a no-op while sharing is disabled.
func (m *ClipboardMonitor) ApplyRemote(ctx context.Context, payload ClipboardPayload) error {
	enabled, err := m.engine.ClipboardSharingEnabled(ctx)
	if err != nil {
		return fmt.Errorf("failed to check clipboard sharing state: %w", err)
	}
	if !enabled {
		m.logger.Info().Msg("clipboard sharing is disabled, skipping remote clipboard content")
		return nil
	}

	if err := m.writeClipboard(payload.Content); err != nil {
		m.logger.Err(err).Str("func", "ClipboardMonitor.ApplyRemote").Msg("failed to set local clipboard")
		return fmt.Errorf("failed to set local clipboard: %w", err)
	}

	m.mu.Lock()
	m.lastContent = payload.Content
	m.mu.Unlock()

	return nil
}
