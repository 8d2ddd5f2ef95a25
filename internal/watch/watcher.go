// SPDX-License-Identifier: AGPL-3.0-or-later

// Package watch rebuilds governance snapshots when feature files change.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/bartekus/featgov/internal/gherkin"
	"github.com/bartekus/featgov/internal/scanner"
)

// DefaultDebounce batches rapid saves into one rebuild.
const DefaultDebounce = 500 * time.Millisecond

// Options configures a Watcher.
type Options struct {
	RootDir  string        // Resolved repo root
	AppsDir  string        // Directory name under root to watch, default "apps"
	Debounce time.Duration // Settle window, default DefaultDebounce
	OnChange func()        // Fired once per settled batch of events
	Logger   *zap.Logger
}

// Watcher watches the apps tree for feature file changes and triggers a
// rebuild after events settle. fsnotify does not recurse, so every directory
// under the tree is registered individually and new directories are picked up
// as they appear.
type Watcher struct {
	mu          sync.RWMutex
	watcher     *fsnotify.Watcher
	watchRoot   string
	onChange    func()
	logger      *zap.Logger
	debounceMap map[string]time.Time
	debounceDur time.Duration
	now         func() time.Time
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool

	stats Stats
}

// Stats tracks watcher activity for debugging.
type Stats struct {
	FilesCreated  int
	FilesModified int
	FilesDeleted  int
	Rebuilds      int
	Errors        int
	LastEventTime time.Time
	LastEventPath string
}

// New creates a Watcher over opts.RootDir/opts.AppsDir.
func New(opts Options) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if opts.AppsDir == "" {
		opts.AppsDir = "apps"
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.OnChange == nil {
		opts.OnChange = func() {}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	return &Watcher{
		watcher:     fsw,
		watchRoot:   filepath.Join(opts.RootDir, opts.AppsDir),
		onChange:    opts.OnChange,
		logger:      opts.Logger,
		debounceMap: make(map[string]time.Time),
		debounceDur: opts.Debounce,
		now:         time.Now,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start registers the apps tree and begins watching.
// This method is non-blocking; the event loop runs in a goroutine.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil // Already running
	}
	w.running = true
	w.mu.Unlock()

	if err := w.addTree(w.watchRoot); err != nil {
		// Tree may not exist yet, events will register it later
		w.logger.Warn("initial watch failed", zap.String("dir", w.watchRoot), zap.Error(err))
	}

	go w.run(ctx)

	return nil
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	if err := w.watcher.Close(); err != nil {
		w.logger.Error("closing watcher", zap.Error(err))
	}
	w.logger.Debug("watcher stopped")
}

// addTree registers dir and every subdirectory, pruning skip-listed names.
func (w *Watcher) addTree(dir string) error {
	skip := make(map[string]bool)
	for _, name := range scanner.DefaultSkipDirs() {
		skip[name] = true
	}

	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if skip[d.Name()] {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("watching directory failed", zap.String("dir", path), zap.Error(err))
			return nil
		}
		w.logger.Debug("watching directory", zap.String("dir", path))
		return nil
	})
}

// run is the main event loop for the watcher.
func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	settleTicker := time.NewTicker(100 * time.Millisecond)
	defer settleTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("context cancelled")
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.Error(err))
			w.mu.Lock()
			w.stats.Errors++
			w.mu.Unlock()

		case <-settleTicker.C:
			w.processSettled()
		}
	}
}

// handleEvent processes a single filesystem event.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	// New directories join the watch so files created inside them are seen
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				w.logger.Warn("watching new directory failed", zap.String("dir", event.Name), zap.Error(err))
			}
			return
		}
	}

	if !strings.HasSuffix(event.Name, gherkin.FileExtension) {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Remove != 0:
		eventType = "delete"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // Ignore chmod, etc.
	}

	w.logger.Debug("feature file event", zap.String("op", eventType), zap.String("path", event.Name))

	w.mu.Lock()
	w.stats.LastEventTime = w.now()
	w.stats.LastEventPath = event.Name

	switch eventType {
	case "create":
		w.stats.FilesCreated++
	case "modify":
		w.stats.FilesModified++
	case "delete", "rename":
		w.stats.FilesDeleted++
	}

	// Debounce: record the event for later processing
	w.debounceMap[event.Name] = w.now()
	w.mu.Unlock()
}

// processSettled fires one rebuild when events have settled past the
// debounce window.
func (w *Watcher) processSettled() {
	w.mu.Lock()
	now := w.now()
	settled := 0

	for path, eventTime := range w.debounceMap {
		if now.Sub(eventTime) >= w.debounceDur {
			settled++
			delete(w.debounceMap, path)
		}
	}
	if settled > 0 {
		w.stats.Rebuilds++
	}
	w.mu.Unlock()

	if settled > 0 {
		w.onChange()
	}
}

// GetStats returns the current watcher statistics.
func (w *Watcher) GetStats() Stats {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.stats
}

// IsWatching returns true if the watcher is currently running.
func (w *Watcher) IsWatching() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.running
}

// WatchedDirs returns the directories being watched.
func (w *Watcher) WatchedDirs() []string {
	return w.watcher.WatchList()
}
