package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change is a settings reload that altered at least one field.
type Change struct {
	Settings Settings
	Fields   []Field
}

// Watcher reloads the settings file whenever it is written and reports the
// fields that changed.
type Watcher struct {
	path     string
	current  Settings
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher returns a Watcher for path that compares reloads against
// current.
func NewWatcher(path string, current Settings, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{path: path, current: current, debounce: 100 * time.Millisecond, logger: logger}
}

// Run watches until ctx is done, sending a Change on out for every reload
// that differs from the previous settings. The parent directory is watched
// so a file replaced by an editor is still seen.
func (w *Watcher) Run(ctx context.Context, out chan<- Change) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("failed to watch settings directory: %w", err)
	}

	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("settings watcher error", "error", err)
		case <-fire:
			fire = nil
			if c, ok := w.reload(); ok {
				select {
				case out <- c:
				case <-ctx.Done():
					return nil
				}
			}
		}
	}
}

func (w *Watcher) reload() (Change, bool) {
	s, err := Load(w.path)
	if err != nil {
		w.logger.Warn("ignoring invalid settings file", "path", w.path, "error", err)
		return Change{}, false
	}
	fields := Diff(w.current, s)
	if len(fields) == 0 {
		return Change{}, false
	}
	w.current = s
	w.logger.Debug("settings reloaded", "fields", fields)
	return Change{Settings: s, Fields: fields}, true
}
