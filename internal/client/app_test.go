package client

import (
	"bytes"
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/peerfold/peerfold/internal/coordinator"
	"github.com/peerfold/peerfold/internal/engine"
	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/internal/mock"
	"github.com/peerfold/peerfold/internal/store"
	"github.com/peerfold/peerfold/internal/tui"
)

func newTestApp(t *testing.T, log *logger.Logger) (*App, *mock.MockSessionStore, *mock.MockSyncEngine) {
	t.Helper()

	ctrl := gomock.NewController(t)
	sessionStore := mock.NewMockSessionStore(ctrl)
	syncEngine := mock.NewMockSyncEngine(ctrl)

	coord := coordinator.New(sessionStore, syncEngine, log, 16)
	ui := tui.New(coord, log)
	storages := &store.ClientStorages{Session: sessionStore}
	clipboard := engine.NewClipboardMonitor(syncEngine, time.Second, log)

	app, err := NewApp(coord, ui, syncEngine, storages, clipboard, log)
	require.NoError(t, err)

	return app, sessionStore, syncEngine
}

func TestNewApp_RejectsMissingDependency(t *testing.T) {
	_, err := NewApp(nil, nil, nil, nil, nil, logger.Nop())
	require.Error(t, err)
}

func TestAppRunContext_CarriesLoggerToOperations(t *testing.T) {
	var sink bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&sink)}

	app, sessionStore, _ := newTestApp(t, log)

	sessionStore.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, assert.AnError)

	ctx, cancel := app.runContext()
	defer cancel()

	require.Error(t, app.coordinator.Load(ctx))
	assert.Contains(t, sink.String(), "initial session load failed",
		"operation logs must reach the sink of the injected logger")
}

func TestDeliverRemoteClipboard_ReachesMonitor(t *testing.T) {
	app, _, syncEngine := newTestApp(t, logger.Nop())

	var sharingChecks atomic.Int32
	syncEngine.EXPECT().
		ClipboardSharingEnabled(gomock.Any()).
		DoAndReturn(func(context.Context) (bool, error) {
			sharingChecks.Add(1)
			return false, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.applyRemoteClipboard(ctx) }()

	raw, err := engine.ClipboardPayload{FromNodeID: "peer-node", Content: "shared text"}.ToBytes()
	require.NoError(t, err)
	require.NoError(t, app.DeliverRemoteClipboard(raw))

	require.Eventually(t, func() bool {
		return sharingChecks.Load() == 1
	}, time.Second, 10*time.Millisecond, "queued payload must reach the clipboard monitor")

	cancel()
	select {
	case workerErr := <-done:
		assert.True(t, errors.Is(workerErr, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("worker did not stop on context cancellation")
	}
}

func TestDeliverRemoteClipboard_RejectsUndecodablePayload(t *testing.T) {
	app, _, _ := newTestApp(t, logger.Nop())

	err := app.DeliverRemoteClipboard([]byte("not a payload"))
	require.Error(t, err)
}
