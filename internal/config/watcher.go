package config

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/plantworks/plantworks/internal/logging"
)

// ReloadCallback is called when the config file is successfully reloaded.
// If the callback returns an error, it is logged but the watcher continues
// watching.
type ReloadCallback func(cfg *Config) error

// WatcherConfig holds configuration for the Watcher.
type WatcherConfig struct {
	// FilePath is the path to the YAML config file to watch.
	FilePath string

	// DebounceMillis is the debounce period in milliseconds. Multiple file
	// change events within this period are coalesced into a single reload.
	// Default: 500ms.
	DebounceMillis int
}

// Watcher watches the config file for changes and triggers reload callbacks
// with debouncing to prevent reload storms from editor save sequences.
//
// Invalid configs during reload are logged but do not crash the watcher; it
// continues watching with the previous valid config. The main use is rotating
// provider credentials without a restart.
type Watcher struct {
	config   WatcherConfig
	callback ReloadCallback
	logger   *logging.Logger
	cancel   context.CancelFunc
	stopped  chan struct{}
	ready    chan struct{} // signals when fsnotify watcher is fully initialized
	mu       sync.Mutex

	debounceTimer *time.Timer
}

// NewWatcher creates a new watcher for the given config file.
// The callback is invoked when the file changes and the new config is valid.
func NewWatcher(config WatcherConfig, callback ReloadCallback) (*Watcher, error) {
	if config.FilePath == "" {
		return nil, fmt.Errorf("FilePath cannot be empty")
	}

	if callback == nil {
		return nil, fmt.Errorf("callback cannot be nil")
	}

	if config.DebounceMillis == 0 {
		config.DebounceMillis = 500
	}

	return &Watcher{
		config:   config,
		callback: callback,
		logger:   logging.GetLogger("config.watcher"),
		stopped:  make(chan struct{}),
		ready:    make(chan struct{}),
	}, nil
}

// Start begins watching the config file for changes.
// It loads the initial config, calls the callback, and then watches for file
// changes. Returns an error if the initial load or callback fails.
func (w *Watcher) Start(ctx context.Context) error {
	initial, err := Load(w.config.FilePath)
	if err != nil {
		return fmt.Errorf("failed to load initial config: %w", err)
	}

	if err := w.callback(initial); err != nil {
		return fmt.Errorf("initial callback failed: %w", err)
	}

	w.logger.Info("loaded initial config from %s", w.config.FilePath)

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	go w.watchLoop(watchCtx)

	// Wait for the watcher to be fully initialized before returning so file
	// changes are not missed during startup.
	select {
	case <-w.ready:
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Second):
		return fmt.Errorf("timeout waiting for file watcher to initialize")
	}

	return nil
}

// signalReady safely closes the ready channel exactly once
func (w *Watcher) signalReady() {
	w.mu.Lock()
	defer w.mu.Unlock()
	select {
	case <-w.ready:
	default:
		close(w.ready)
	}
}

// watchLoop is the main file watching loop
func (w *Watcher) watchLoop(ctx context.Context) {
	defer close(w.stopped)
	defer w.signalReady()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("failed to create file watcher: %v", err)
		return
	}
	defer watcher.Close()

	if err := watcher.Add(w.config.FilePath); err != nil {
		w.logger.Error("failed to watch file %s: %v", w.config.FilePath, err)
		return
	}

	w.logger.Info("watching %s for changes (debounce: %dms)",
		w.config.FilePath, w.config.DebounceMillis)

	w.signalReady()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("context cancelled, stopping")
			return

		case event, ok := <-watcher.Events:
			if !ok {
				w.logger.Debug("watcher events channel closed")
				return
			}

			// Remove/Rename matter for atomic writes where the old file is
			// unlinked before the new one is renamed into place: the inode
			// changed, so the watch must be re-added.
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create ||
				event.Op&fsnotify.Rename == fsnotify.Rename ||
				event.Op&fsnotify.Remove == fsnotify.Remove {
				if event.Op&fsnotify.Rename == fsnotify.Rename ||
					event.Op&fsnotify.Remove == fsnotify.Remove {
					time.Sleep(50 * time.Millisecond)
					if err := watcher.Add(w.config.FilePath); err != nil {
						w.logger.Warn("failed to re-add watch after %s: %v", event.Op, err)
					}
				}
				w.handleFileChange()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				w.logger.Debug("watcher errors channel closed")
				return
			}
			w.logger.Warn("watcher error: %v", err)
		}
	}
}

// handleFileChange is called when a file change event is detected.
// It implements debouncing by resetting a timer on each event.
func (w *Watcher) handleFileChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}

	w.debounceTimer = time.AfterFunc(
		time.Duration(w.config.DebounceMillis)*time.Millisecond,
		w.reloadConfig,
	)
}

// reloadConfig reloads the config file and calls the callback if successful.
// Invalid configs are logged but don't crash the watcher.
func (w *Watcher) reloadConfig() {
	w.logger.Info("reloading config from %s", w.config.FilePath)

	newConfig, err := Load(w.config.FilePath)
	if err != nil {
		w.logger.Warn("failed to load config (keeping previous config): %v", err)
		return
	}

	if err := w.callback(newConfig); err != nil {
		w.logger.Warn("callback error (continuing to watch): %v", err)
		return
	}

	w.logger.Info("config reloaded successfully")
}

// Stop gracefully stops the file watcher.
// Waits for the watch loop to exit with a timeout of 5 seconds.
func (w *Watcher) Stop() error {
	if w.cancel != nil {
		w.cancel()
	}

	select {
	case <-w.stopped:
		w.logger.Debug("stopped gracefully")
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("timeout waiting for watcher to stop")
	}
}
