package preview

import (
	"context"
	"os"
	"time"
)

// Watcher polls one file's modification time and fires a callback on
// change. Polling keeps the preview dependency-light; the intervals
// involved are human-scale.
type Watcher struct {
	path     string
	interval time.Duration
	onChange func()

	lastMod  time.Time
	lastSize int64
}

// NewWatcher creates a watcher for the given file.
func NewWatcher(path string, interval time.Duration, onChange func()) *Watcher {
	w := &Watcher{path: path, interval: interval, onChange: onChange}
	if info, err := os.Stat(path); err == nil {
		w.lastMod = info.ModTime()
		w.lastSize = info.Size()
	}
	return w
}

// Run polls until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if w.changed() {
				w.onChange()
			}
		}
	}
}

// changed stats the file and reports whether it differs from the last
// observation. A vanished file is not a change; the next write will be.
func (w *Watcher) changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	if info.ModTime().Equal(w.lastMod) && info.Size() == w.lastSize {
		return false
	}
	w.lastMod = info.ModTime()
	w.lastSize = info.Size()
	return true
}
