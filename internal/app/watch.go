package app

import (
	"os"
	"path/filepath"
	"time"
)

// FileWatcher polls a data file's modification time and invokes a callback
// when it changes, so an externally edited data set reloads without a
// restart.
type FileWatcher struct {
	path          string
	baseline      time.Time
	checkInterval time.Duration
	stopCh        chan struct{}
	onChange      func()
}

// NewFileWatcher creates a watcher for the given file. Returns nil if the
// file cannot be stat'd, in which case watching is silently disabled.
func NewFileWatcher(path string, checkInterval time.Duration) *FileWatcher {
	// Watch the target of a symlink, not the link itself.
	if real, err := filepath.EvalSymlinks(path); err == nil {
		path = real
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil
	}

	return &FileWatcher{
		path:          path,
		baseline:      info.ModTime(),
		checkInterval: checkInterval,
		stopCh:        make(chan struct{}),
	}
}

// OnChange sets the callback invoked when the file's modification time moves
// past the baseline. The callback runs on a background goroutine.
func (w *FileWatcher) OnChange(callback func()) {
	w.onChange = callback
}

// Start begins polling in a background goroutine.
func (w *FileWatcher) Start() {
	w.stopCh = make(chan struct{})
	go w.watchLoop()
}

// Stop stops the watcher goroutine.
func (w *FileWatcher) Stop() {
	close(w.stopCh)
}

func (w *FileWatcher) watchLoop() {
	ticker := time.NewTicker(w.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.changed() {
				w.ResetBaseline()
				if w.onChange != nil {
					w.onChange()
				}
			}
		}
	}
}

func (w *FileWatcher) changed() bool {
	info, err := os.Stat(w.path)
	if err != nil {
		return false
	}
	return info.ModTime().After(w.baseline)
}

// Path returns the watched file path after symlink resolution.
func (w *FileWatcher) Path() string {
	return w.path
}

// ResetBaseline advances the baseline to the file's current modification
// time, suppressing further callbacks until the next change.
func (w *FileWatcher) ResetBaseline() {
	if info, err := os.Stat(w.path); err == nil {
		w.baseline = info.ModTime()
	}
}
