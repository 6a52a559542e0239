package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

const debounceDelay = 500 * time.Millisecond

// Event is a debounced change to one watched file.
type Event struct {
	Path string
}

// Watcher monitors a fixed set of files for changes. Parent directories are
// watched rather than the files themselves so editors that replace a file
// (write to temp, rename over it) are still seen.
type Watcher struct {
	watcher *fsnotify.Watcher
	watched map[string]bool
	events  chan Event
	done    chan struct{}
}

// New watches the given files and starts delivering events.
func New(paths []string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher: fsWatcher,
		watched: make(map[string]bool),
		events:  make(chan Event, 100),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, p := range paths {
		clean := filepath.Clean(p)
		w.watched[clean] = true
		dirs[filepath.Dir(clean)] = true
	}

	for dir := range dirs {
		if err := fsWatcher.Add(dir); err != nil {
			fsWatcher.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		logrus.Debugf("Watching directory: %s", dir)
	}

	go w.processEvents()

	return w, nil
}

// Events delivers debounced file changes.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop ends watching and releases the underlying handles.
func (w *Watcher) Stop() {
	close(w.done)
	w.watcher.Close()
}

func (w *Watcher) processEvents() {
	// Debounce per path to avoid processing rapid successive writes
	debounce := make(map[string]*time.Timer)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			name := filepath.Clean(event.Name)
			if !w.watched[name] {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			if timer, exists := debounce[name]; exists {
				timer.Stop()
			}
			debounce[name] = time.AfterFunc(debounceDelay, func() {
				select {
				case w.events <- Event{Path: name}:
				case <-w.done:
				}
			})

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logrus.Warnf("Watcher error: %v", err)
		}
	}
}
