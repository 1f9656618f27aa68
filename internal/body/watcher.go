package body

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/solarpath/solcal/internal/logging"
)

// Watcher reloads the body catalog into a registry whenever the catalog
// file changes on disk.
type Watcher struct {
	path     string
	reg      *Registry
	logger   *logging.Logger
	watcher  *fsnotify.Watcher
	onReload func(count int)
	done     chan struct{}
}

// WatchCatalog starts watching the catalog file's directory (editors often
// replace the file rather than write in place, so the file itself cannot be
// watched reliably) and reloads the registry's catalog overlay on change.
// onReload, if non-nil, is called from the watch goroutine after each
// successful reload with the number of catalog bodies.
func WatchCatalog(path string, reg *Registry, logger *logging.Logger, onReload func(count int)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		reg:      reg,
		logger:   logger,
		watcher:  fw,
		onReload: onReload,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Close stops the watcher and waits for its loop to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) loop() {
	defer close(w.done)

	for {
		select {
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
			w.logger.Warn("catalog watch error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	bodies, err := LoadCatalog(w.path)
	if err != nil {
		w.logger.Error("catalog reload failed, keeping previous catalog: %v", err)
		return
	}
	w.reg.SetCatalog(bodies)
	w.logger.Info("catalog reloaded: %d user-defined bodies", len(bodies))
	if w.onReload != nil {
		w.onReload(len(bodies))
	}
}
