package engine

import (
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/peerfold/peerfold/internal/logger"
	"github.com/peerfold/peerfold/models"
)

// folderWatcher watches one folder tree recursively and translates raw
// fsnotify notifications into [models.FsEvent] values.
type folderWatcher struct {
	root      string
	fsWatcher *fsnotify.Watcher
	logger    *logger.Logger

	events chan models.FsEvent

	done chan struct{}
	wg   sync.WaitGroup
}

func newFolderWatcher(root string, log *logger.Logger) (*folderWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &folderWatcher{
		root:      root,
		fsWatcher: fsWatcher,
		logger:    log,
		events:    make(chan models.FsEvent, 100),
		done:      make(chan struct{}),
	}

	return w, nil
}

// Events returns the channel of translated filesystem events.
func (w *folderWatcher) Events() <-chan models.FsEvent {
	return w.events
}

// Start registers the root and all nested directories with the underlying
// watcher and begins the event loop. Directories created later are picked up
// from their Create events.
func (w *folderWatcher) Start() error {
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsWatcher.Add(path)
		}
		return nil
	})
	if err != nil {
		w.fsWatcher.Close()
		return err
	}

	w.wg.Add(1)
	go w.eventLoop()

	return nil
}

// Stop gracefully shuts down the watcher.
func (w *folderWatcher) Stop() error {
	close(w.done)
	err := w.fsWatcher.Close()
	w.wg.Wait()
	close(w.events)
	return err
}

func (w *folderWatcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			kind := translateOp(event)

			// new directories must be registered to keep the tree
			// coverage recursive
			if kind == models.FsCreate {
				if info, statErr := os.Stat(event.Name); statErr == nil && info.IsDir() {
					if addErr := w.fsWatcher.Add(event.Name); addErr != nil {
						w.logger.Err(addErr).Str("path", event.Name).Msg("failed to watch new directory")
					}
				}
			}

			w.emit(models.FsEvent{Kind: kind, Path: event.Name})

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Err(err).Str("func", "folderWatcher.eventLoop").Msg("filesystem watcher error")
			w.emit(models.FsEvent{Kind: models.FsError})
		}
	}
}

// emit delivers an event without blocking the loop; a slow consumer loses
// events rather than stalling the watcher.
func (w *folderWatcher) emit(event models.FsEvent) {
	select {
	case w.events <- event:
	default:
		w.logger.Warn().Str("path", event.Path).Msg("dropping filesystem event: consumer is behind")
	}
}

// translateOp maps a raw fsnotify operation onto the event kinds understood
// by the coordinator. A rename is reported against the old path, so whether
// the path still exists decides between appearance and disappearance.
func translateOp(event fsnotify.Event) models.FsEventKind {
	switch {
	case event.Op.Has(fsnotify.Create):
		return models.FsCreate
	case event.Op.Has(fsnotify.Write):
		return models.FsModify
	case event.Op.Has(fsnotify.Remove):
		return models.FsRemove
	case event.Op.Has(fsnotify.Rename):
		if _, err := os.Stat(event.Name); err == nil {
			return models.FsCreate
		}
		return models.FsRemove
	default:
		return models.FsOther
	}
}
