package screen

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultWatchDebounce is how long a config file must stay quiet before a
// change is reported.
const DefaultWatchDebounce = 300 * time.Millisecond

// ErrWatcherStopped is returned by Start on a stopped Watcher.
var ErrWatcherStopped = errors.New("watcher stopped")

// Watcher reports changes to a configuration file so the owner can rebuild
// its Screen. Events are debounced and delivered on the Changes channel; the
// owner drains it on its own goroutine, keeping Screen single-threaded.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	logger   Logger

	changes chan string
	errs    chan error

	mu      sync.Mutex
	started bool
	stopped bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher watches path. The parent directory is watched rather than the
// file so editors that save by rename keep triggering events.
func NewWatcher(path string, debounce time.Duration, logger Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	if logger == nil {
		logger = NopLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		fs:       fsw,
		path:     abs,
		debounce: debounce,
		logger:   logger,
		changes:  make(chan string, 1),
		errs:     make(chan error, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string { return w.path }

// Changes delivers the watched path once per debounced burst of writes.
// Pending changes coalesce when the receiver is slow.
func (w *Watcher) Changes() <-chan string { return w.changes }

// Errors delivers watch errors. Errors are dropped while one is pending.
func (w *Watcher) Errors() <-chan error { return w.errs }

// Start begins watching in a background goroutine.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return ErrWatcherStopped
	}
	if w.started {
		return nil
	}
	w.started = true
	go w.loop()
	return nil
}

// Stop ends watching and waits for the goroutine to exit. It is safe to call
// more than once and without Start.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return
	}
	w.stopped = true
	started := w.started
	w.mu.Unlock()

	close(w.stopCh)
	if started {
		<-w.doneCh
		return
	}
	w.fs.Close()
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	defer w.fs.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-w.stopCh:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.logger.Debug("config file changed", "path", w.path)
			select {
			case w.changes <- w.path:
			default:
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.logger.Warn("config watch error", "path", w.path, "error", err)
			select {
			case w.errs <- err:
			default:
			}
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	abs, err := filepath.Abs(ev.Name)
	if err != nil {
		return filepath.Base(ev.Name) == filepath.Base(w.path)
	}
	return abs == w.path
}
