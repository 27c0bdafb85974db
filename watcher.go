package main

import (
	"os"
	"sync"
	"time"
)

// AssetWatcher polls the modification times of watched files from a
// background goroutine and queues the paths that changed. The update
// loop drains the queue with StalePaths/ClearStalePaths and reloads
// whatever became stale.
type AssetWatcher struct {
	mu sync.Mutex

	mtimes     map[string]time.Time
	stalePaths []string

	interval time.Duration
	stop     chan struct{}
	started  bool
}

func NewAssetWatcher(interval time.Duration) *AssetWatcher {
	return &AssetWatcher{
		mtimes:   make(map[string]time.Time),
		interval: interval,
	}
}

// Watch adds a file to the watchlist. A file that doesn't exist yet
// is fine; it becomes stale once it shows up.
func (w *AssetWatcher) Watch(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.mtimes[path]; ok {
		return
	}

	var mtime time.Time
	if info, err := os.Stat(path); err == nil {
		mtime = info.ModTime()
	}
	w.mtimes[path] = mtime
}

// Start launches the polling goroutine. Starting an already running
// watcher is a no-op; a stopped watcher can be started again.
func (w *AssetWatcher) Start() {
	w.mu.Lock()
	if w.started {
		w.mu.Unlock()
		return
	}
	w.started = true
	// Stop closed the previous channel, so the goroutine gets its own
	w.stop = make(chan struct{})
	stop := w.stop
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				w.poll()
			}
		}
	}()
}

func (w *AssetWatcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.started {
		close(w.stop)
		w.started = false
	}
}

func (w *AssetWatcher) poll() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for path, prev := range w.mtimes {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}

		mtime := info.ModTime()
		if mtime.After(prev) {
			w.mtimes[path] = mtime
			w.stalePaths = append(w.stalePaths, path)
		}
	}
}

// StalePaths returns a copy of the queued stale paths.
func (w *AssetWatcher) StalePaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	paths := make([]string, len(w.stalePaths))
	copy(paths, w.stalePaths)

	return paths
}

func (w *AssetWatcher) ClearStalePaths() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stalePaths = w.stalePaths[:0]
}

func (w *AssetWatcher) WatchedCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return len(w.mtimes)
}
