package preview

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"
	"time"
)

// watcher polls the site directory for changes by walking modification
// times on an interval.
type watcher struct {
	root     string
	interval time.Duration
	logger   *slog.Logger
	onChange func()
	mtimes   map[string]time.Time
}

func newWatcher(root string, interval time.Duration, logger *slog.Logger, onChange func()) *watcher {
	return &watcher{
		root:     root,
		interval: interval,
		logger:   logger,
		onChange: onChange,
	}
}

// run polls until ctx is cancelled. The first scan only records state;
// later scans fire onChange when anything was added, modified, or
// removed.
func (w *watcher) run(ctx context.Context) {
	w.mtimes = w.scan()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := w.scan()
			if w.changed(current) {
				w.logger.Debug("site directory changed", "dir", w.root)
				w.mtimes = current
				w.onChange()
			} else {
				w.mtimes = current
			}
		}
	}
}

// scan walks the directory and records file modification times.
func (w *watcher) scan() map[string]time.Time {
	mtimes := make(map[string]time.Time)
	filepath.WalkDir(w.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mtimes[p] = info.ModTime()
		return nil
	})
	return mtimes
}

// changed reports whether current differs from the recorded state.
func (w *watcher) changed(current map[string]time.Time) bool {
	if len(current) != len(w.mtimes) {
		return true
	}
	for p, mod := range current {
		last, ok := w.mtimes[p]
		if !ok || mod.After(last) {
			return true
		}
	}
	return false
}
