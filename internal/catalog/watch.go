package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Greg-CLD/tcof/internal/log"
)

// WatcherConfig is the configuration for the catalog file watcher.
type WatcherConfig struct {
	// Path is the catalog file to watch.
	Path string
	// Reload is called after the file changes settle.
	Reload func(ctx context.Context) error
	// Debounce is how long changes must settle before reloading.
	Debounce time.Duration
	Logger   log.Logger
}

func (c *WatcherConfig) defaults() error {
	if c.Path == "" {
		return fmt.Errorf("catalog file path is required")
	}

	if c.Reload == nil {
		return fmt.Errorf("reload function is required")
	}

	if c.Debounce == 0 {
		c.Debounce = 250 * time.Millisecond
	}

	if c.Logger == nil {
		c.Logger = log.Noop
	}

	return nil
}

// Watcher reloads the catalog when its file changes on disk. Editors save
// with a write or an atomic rename, so both event kinds trigger a reload.
type Watcher struct {
	path     string
	reload   func(ctx context.Context) error
	debounce time.Duration
	logger   log.Logger
}

// NewWatcher creates a new catalog file watcher.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if err := cfg.defaults(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Watcher{
		path:     cfg.Path,
		reload:   cfg.Reload,
		debounce: cfg.Debounce,
		logger:   cfg.Logger,
	}, nil
}

// Run watches the catalog file until the context is done.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create fs watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: atomic saves replace the inode.
	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}

	w.logger.Infof("Watching catalog file %s", w.path)

	var settled <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settled = time.After(w.debounce)

		case <-settled:
			settled = nil
			if err := w.reload(ctx); err != nil {
				w.logger.Errorf("Catalog reload failed: %s", err)
				continue
			}
			w.logger.Infof("Catalog reloaded after file change")

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warningf("Catalog watcher error: %s", err)

		case <-ctx.Done():
			return nil
		}
	}
}
