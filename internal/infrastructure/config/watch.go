package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDelay lets editors finish writing before the file is read
const reloadDelay = 50 * time.Millisecond

// Watcher reloads physics.json whenever it changes on disk.
// Parsed tuning arrives on Reloads; read and parse failures on Errors.
// Both channels are closed once the watcher stops.
type Watcher struct {
	watcher *fsnotify.Watcher
	dir     string
	Reloads chan *PhysicsConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher watches dir for changes to physics.json
func NewWatcher(dir string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: editors often replace files by rename
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	watcher := &Watcher{
		watcher: w,
		dir:     dir,
		Reloads: make(chan *PhysicsConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops watching
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.Reloads)
	defer close(w.Errors)

	var pending <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Base(event.Name) != PhysicsFile {
				continue
			}
			pending = time.After(reloadDelay)
		case <-pending:
			pending = nil
			cfg, err := w.load()
			if err != nil {
				w.report(err)
				continue
			}
			select {
			case w.Reloads <- cfg:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			return
		}
	}
}

func (w *Watcher) load() (*PhysicsConfig, error) {
	data, err := os.ReadFile(filepath.Join(w.dir, PhysicsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", PhysicsFile, err)
	}
	return ParsePhysics(data)
}

// report drops the error when the previous one has not been consumed yet
func (w *Watcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
