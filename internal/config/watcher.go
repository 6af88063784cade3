package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/mordilloSan/go-logger/logger"
)

// DefaultWatchDebounce collapses editor write bursts into a single reload
const DefaultWatchDebounce = 100 * time.Millisecond

// WatchOption adjusts watcher behavior
type WatchOption func(*Watcher)

// WithDebounce overrides the reload debounce window
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// Watcher reloads the Manager when settings.json or buttons.json change on
// disk, so external edits flow into a running dock. It watches the config
// directory rather than the files themselves: editors that replace files
// (write to temp, rename over) are still seen.
type Watcher struct {
	manager  *Manager
	fsw      *fsnotify.Watcher
	debounce time.Duration
	done     chan struct{}
}

// StartWatcher begins watching the manager's config directory. The caller
// owns the returned Watcher and stops it on shutdown.
func StartWatcher(m *Manager, opts ...WatchOption) (*Watcher, error) {
	if err := os.MkdirAll(m.store.Dir(), 0o755); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(m.store.Dir()); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		manager:  m,
		fsw:      fsw,
		debounce: DefaultWatchDebounce,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Stop ends the watch goroutine and releases the notify handle
func (w *Watcher) Stop() {
	close(w.done)
	w.fsw.Close()
}

func (w *Watcher) run() {
	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if !isConfigEvent(ev) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = timer.C
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warnf("config watcher: %v", err)

		case <-pending:
			timer = nil
			pending = nil
			w.manager.reload()

		case <-w.done:
			return
		}
	}
}

// isConfigEvent reports whether the event touches one of the two documents
// with an operation that can change content
func isConfigEvent(ev fsnotify.Event) bool {
	name := filepath.Base(ev.Name)
	if name != settingsFileName && name != buttonsFileName {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0
}
