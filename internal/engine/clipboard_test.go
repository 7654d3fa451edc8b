package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peerfold/peerfold/internal/logger"
)

// joinedTestEngine returns an engine that is set up, joined to a group and
// has clipboard sharing enabled.
func joinedTestEngine(t *testing.T) *localEngine {
	t.Helper()

	e := newTestEngine(t)
	ctx := context.Background()

	require.NoError(t, e.Setup(ctx))
	require.NoError(t, e.BindFolder(ctx, t.TempDir()))
	token, err := e.CreateTicket(ctx)
	require.NoError(t, err)
	require.NoError(t, e.JoinGroup(ctx, token))
	require.NoError(t, e.EnableClipboardSharing(ctx))

	return e
}

func TestClipboardMonitorTick_PublishesNewText(t *testing.T) {
	e := joinedTestEngine(t)

	m := NewClipboardMonitor(e, time.Second, logger.Nop())
	m.readClipboard = func() (string, error) { return "copied text", nil }

	m.tick(context.Background())

	select {
	case payload := <-m.Outgoing():
		assert.Equal(t, "copied text", payload.Content)
		assert.Equal(t, e.nodeID, payload.FromNodeID)
	default:
		t.Fatal("expected a published clipboard payload")
	}
}

func TestClipboardMonitorTick_DeduplicatesContent(t *testing.T) {
	e := joinedTestEngine(t)

	m := NewClipboardMonitor(e, time.Second, logger.Nop())
	m.readClipboard = func() (string, error) { return "same text", nil }

	ctx := context.Background()
	m.tick(ctx)
	m.tick(ctx)

	// only the first tick publishes; the second sees unchanged content
	<-m.Outgoing()
	select {
	case <-m.Outgoing():
		t.Fatal("unchanged clipboard content must not be republished")
	default:
	}
}

func TestClipboardMonitorTick_SkipsWhileSharingDisabled(t *testing.T) {
	e := joinedTestEngine(t)
	require.NoError(t, e.DisableClipboardSharing(context.Background()))

	reads := 0
	m := NewClipboardMonitor(e, time.Second, logger.Nop())
	m.readClipboard = func() (string, error) {
		reads++
		return "secret", nil
	}

	m.tick(context.Background())

	assert.Zero(t, reads, "clipboard must not be read while sharing is disabled")
	select {
	case <-m.Outgoing():
		t.Fatal("nothing should be published while sharing is disabled")
	default:
	}
}

func TestClipboardMonitorTick_SkipsEmptyAndErroredReads(t *testing.T) {
	e := joinedTestEngine(t)

	m := NewClipboardMonitor(e, time.Second, logger.Nop())

	m.readClipboard = func() (string, error) { return "", nil }
	m.tick(context.Background())

	m.readClipboard = func() (string, error) { return "", errors.New("clipboard is empty") }
	m.tick(context.Background())

	select {
	case <-m.Outgoing():
		t.Fatal("empty or errored reads must publish nothing")
	default:
	}
}

func TestClipboardMonitorApplyRemote_WritesClipboard(t *testing.T) {
	e := joinedTestEngine(t)

	var written string
	m := NewClipboardMonitor(e, time.Second, logger.Nop())
	m.writeClipboard = func(text string) error {
		written = text
		return nil
	}

	payload := ClipboardPayload{FromNodeID: "peer-node", Content: "from the network"}
	require.NoError(t, m.ApplyRemote(context.Background(), payload))
	assert.Equal(t, "from the network", written)

	// applied content must not bounce back out on the next tick
	m.readClipboard = func() (string, error) { return "from the network", nil }
	m.tick(context.Background())
	select {
	case <-m.Outgoing():
		t.Fatal("applied remote content must not be republished")
	default:
	}
}

func TestClipboardMonitorApplyRemote_NoopWhileDisabled(t *testing.T) {
	e := joinedTestEngine(t)
	require.NoError(t, e.DisableClipboardSharing(context.Background()))

	writes := 0
	m := NewClipboardMonitor(e, time.Second, logger.Nop())
	m.writeClipboard = func(string) error {
		writes++
		return nil
	}

	require.NoError(t, m.ApplyRemote(context.Background(), ClipboardPayload{Content: "x"}))
	assert.Zero(t, writes)
}

func TestClipboardPayload_BytesRoundTrip(t *testing.T) {
	payload := ClipboardPayload{FromNodeID: "node-9", Content: "hello"}

	raw, err := payload.ToBytes()
	require.NoError(t, err)

	decoded, err := ClipboardPayloadFromBytes(raw)
	require.NoError(t, err)
	assert.Equal(t, payload, decoded)

	_, err = ClipboardPayloadFromBytes([]byte("{not json"))
	require.Error(t, err)
}
