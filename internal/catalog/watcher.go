package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads the catalog file when it changes on disk. The site's card
// data is edited out-of-band; watching the file lets a running server pick
// up content updates without a restart.
//
// Editors tend to emit several write events per save, so reloads are
// debounced. A reload that fails validation keeps the previous catalog.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
	onReload func(*Catalog)

	mu      sync.RWMutex
	current *Catalog

	stopOnce sync.Once
	done     chan struct{}
}

// WatcherConfig configures a catalog Watcher.
type WatcherConfig struct {
	// Path is the catalog JSON file to watch.
	Path string

	// Initial is the catalog loaded at startup.
	Initial *Catalog

	// Debounce is how long to wait after the last write event before
	// reloading. Default: 500ms.
	Debounce time.Duration

	// OnReload is called with the new catalog after a successful reload.
	OnReload func(*Catalog)

	// Logger receives reload diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// NewWatcher creates a watcher for the given catalog file.
func NewWatcher(config WatcherConfig) (*Watcher, error) {
	if config.Path == "" {
		return nil, fmt.Errorf("catalog path cannot be empty")
	}
	if config.Initial == nil {
		return nil, fmt.Errorf("initial catalog cannot be nil")
	}
	if config.Debounce == 0 {
		config.Debounce = 500 * time.Millisecond
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return &Watcher{
		path:     config.Path,
		debounce: config.Debounce,
		logger:   config.Logger,
		onReload: config.OnReload,
		current:  config.Initial,
		done:     make(chan struct{}),
	}, nil
}

// Catalog returns the most recently loaded catalog.
func (w *Watcher) Catalog() *Catalog {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// Start watches the catalog file until ctx is cancelled or Stop is called.
// It watches the parent directory rather than the file itself because many
// editors replace the file on save, which would drop a file-level watch.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		if closeErr := fsw.Close(); closeErr != nil {
			w.logger.Warn("Failed to close watcher", "error", closeErr)
		}
		return fmt.Errorf("watch catalog directory %s: %w", dir, err)
	}

	go w.run(ctx, fsw)
	return nil
}

// Stop stops the watcher. Safe to call multiple times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
	})
}

func (w *Watcher) run(ctx context.Context, fsw *fsnotify.Watcher) {
	defer func() {
		if err := fsw.Close(); err != nil {
			w.logger.Warn("Failed to close watcher", "error", err)
		}
	}()

	var pending *time.Timer
	defer func() {
		if pending != nil {
			pending.Stop()
		}
	}()

	target := filepath.Clean(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending != nil {
				pending.Stop()
			}
			pending = time.AfterFunc(w.debounce, w.reload)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Catalog watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cat, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("Catalog reload failed, keeping previous catalog",
			"path", w.path,
			"error", err)
		return
	}

	w.mu.Lock()
	w.current = cat
	w.mu.Unlock()

	w.logger.Info("Catalog reloaded", "path", w.path, "cards", cat.Len())

	if w.onReload != nil {
		w.onReload(cat)
	}
}
