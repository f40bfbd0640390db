package cli

import (
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/toyz/ipcgen/internal/utils"
)

// Watcher monitors the input tree for changes and delivers debounced change
// signals. Bursts of filesystem events within the debounce window coalesce
// into a single signal, so the consuming loop runs one generation pass per
// batch.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	rootDir       string
	debounce      time.Duration
	onChange      chan struct{}
	done          chan struct{}
	onError       func(error)
	fileProcessor *utils.FileProcessor
}

// WatcherConfig holds watcher configuration options
type WatcherConfig struct {
	RootDir  string
	Debounce time.Duration
	OnError  func(error)
}

// NewWatcher creates a new input-tree watcher
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, utils.WrapWatchError("filesystem", err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = time.Second
	}

	return &Watcher{
		fsWatcher:     fsw,
		rootDir:       cfg.RootDir,
		debounce:      debounce,
		onChange:      make(chan struct{}, 1),
		done:          make(chan struct{}),
		onError:       cfg.OnError,
		fileProcessor: utils.NewFileProcessor(),
	}, nil
}

// Start registers the root directory and every subdirectory below it, then
// begins delivering change signals. Returns the signal channel; it closes
// when the watcher stops or the underlying event stream ends.
func (w *Watcher) Start() (<-chan struct{}, error) {
	dirs, err := w.fileProcessor.Subdirectories(w.rootDir)
	if err != nil {
		return nil, utils.WrapWatchError(w.rootDir, err)
	}

	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, utils.WrapWatchError(dir, err)
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

// loop processes file system events with debouncing
func (w *Watcher) loop() {
	defer close(w.onChange)

	var (
		timer   *time.Timer
		pending bool
	)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}

			// New directories must be registered so nested changes
			// keep triggering regeneration
			if event.Op&fsnotify.Create != 0 {
				w.maybeWatchDirectory(event.Name)
			}

			// Reset or start debounce timer
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				pending = true
			} else {
				if !timer.Stop() {
					// Drain the timer channel if it already fired
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
				pending = true
			}

		case <-func() <-chan time.Time {
			if timer != nil {
				return timer.C
			}
			return nil
		}():
			if pending {
				// Non-blocking send, the consumer already has a
				// signal queued
				select {
				case w.onChange <- struct{}{}:
				default:
				}
				pending = false
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			// Delivery errors are reported and watching continues
			if w.onError != nil {
				w.onError(err)
			}

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// maybeWatchDirectory adds a newly created directory to the watch set
func (w *Watcher) maybeWatchDirectory(path string) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return
	}

	if err := w.fsWatcher.Add(path); err != nil && w.onError != nil {
		w.onError(utils.WrapWatchError(path, err))
	}
}
