package corpus

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/parrotlabs/parley/logging"
)

// Watcher reloads a YAML corpus file into a Store whenever the file changes
// on disk, so a running engine picks up corpus edits without a restart. A
// failed reload keeps the previous pairs.
type Watcher struct {
	path    string
	store   *Store
	watcher *fsnotify.Watcher
	logger  logging.Logger
}

// NewWatcher creates a watcher for the given YAML file feeding the store.
// The file's directory is watched so editors that replace the file (rename
// over it) are still observed.
func NewWatcher(path string, store *Store, logger logging.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create corpus watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch corpus directory: %w", err)
	}

	return &Watcher{
		path:    path,
		store:   store,
		watcher: fsw,
		logger:  logging.OrNoOp(logger),
	}, nil
}

// Run blocks processing file events until ctx is cancelled or the watcher is
// closed. Typically invoked as a goroutine.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("corpus watcher error", "path", w.path, "error", err)
		}
	}
}

// Close stops the underlying file watcher.
func (w *Watcher) Close() error { return w.watcher.Close() }

func (w *Watcher) reload() {
	pairs, err := LoadYAML(w.path)
	if err != nil {
		w.logger.Warn("corpus reload failed, keeping previous pairs", "path", w.path, "error", err)
		return
	}
	w.store.Replace(pairs)
	w.logger.Info("corpus reloaded", "path", w.path, "pairs", len(pairs))
}
