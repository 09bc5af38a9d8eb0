package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounceDuration is the default quiet period before a reload.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces rapid events into a single callback invocation.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer. A zero duration uses DefaultDebounceDuration.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback after the debounce duration, replacing any
// callback scheduled earlier.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		// A newer Trigger or Cancel invalidates this callback even if its
		// timer already fired.
		stale := seq != d.seq
		if !stale {
			d.timer = nil
		}
		d.mu.Unlock()
		if !stale {
			callback()
		}
	})
}

// Cancel cancels any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Watch reloads the config at path whenever it changes on disk and hands
// the result to onChange (err is set when the new file does not load). The
// parent directory is watched so editors that replace the file atomically
// are picked up; it is created when missing. Watch blocks until ctx is done.
func Watch(ctx context.Context, path string, logger *slog.Logger, onChange func(*LoadResult, error)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %q: %w", path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create config watcher: %w", err)
	}
	defer w.Close()

	// The directory is created up front so a config written later, while
	// the program runs on defaults, is still picked up.
	dir := filepath.Dir(abs)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	debounce := NewDebouncer(0)
	defer debounce.Cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			debounce.Trigger(func() {
				res, err := LoadFromPath(abs)
				if err != nil {
					logger.Warn("config reload failed", "path", abs, "error", err)
				} else {
					logger.Info("config reloaded", "path", abs)
				}
				onChange(res, err)
			})
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
