package preview

import (
	"context"
	"os"
	"sync"
	"time"
)

// WatcherConfig configures the file watcher.
type WatcherConfig struct {
	// Paths are the files to watch.
	Paths []string

	// Interval is the polling interval.
	Interval time.Duration
}

// Watcher polls a set of files for modification.
type Watcher struct {
	config     WatcherConfig
	onChange   func(path string)
	mu         sync.Mutex
	running    bool
	stopCh     chan struct{}
	timestamps map[string]time.Time
}

// NewWatcher creates a new file watcher.
func NewWatcher(config WatcherConfig) *Watcher {
	if config.Interval == 0 {
		config.Interval = 200 * time.Millisecond
	}
	return &Watcher{
		config:     config,
		timestamps: make(map[string]time.Time),
	}
}

// OnChange sets the callback for file changes.
func (w *Watcher) OnChange(fn func(path string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = fn
}

// Start begins watching. It blocks until the context is cancelled or Stop is
// called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.stopCh = make(chan struct{})
	w.mu.Unlock()

	w.scanInitial()

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		case <-ticker.C:
			w.checkForChanges()
		}
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		close(w.stopCh)
		w.running = false
	}
}

// scanInitial records the current modification times.
func (w *Watcher) scanInitial() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, path := range w.config.Paths {
		if info, err := os.Stat(path); err == nil {
			w.timestamps[path] = info.ModTime()
		}
	}
}

// checkForChanges reports every watched file whose modification time moved.
func (w *Watcher) checkForChanges() {
	w.mu.Lock()
	callback := w.onChange
	w.mu.Unlock()

	if callback == nil {
		return
	}

	for _, path := range w.config.Paths {
		info, err := os.Stat(path)
		if err != nil {
			// Deleted or unreadable; report once and forget the timestamp
			// so a recreated file reports again.
			w.mu.Lock()
			_, existed := w.timestamps[path]
			delete(w.timestamps, path)
			w.mu.Unlock()
			if existed {
				callback(path)
			}
			continue
		}

		// A missing timestamp here means the file reappeared after a
		// delete; that counts as a change too.
		w.mu.Lock()
		last, exists := w.timestamps[path]
		modTime := info.ModTime()
		changed := !exists || modTime.After(last)
		if changed {
			w.timestamps[path] = modTime
		}
		w.mu.Unlock()

		if changed {
			callback(path)
		}
	}
}
