package storage

import (
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// DirectoryWatcher notifies about changes in a single watched directory.
//
// It only reports the directory as changed; the receiver is expected to read
// it anew. Notifications are coalesced: at most one is pending, and it is
// always for the most recent change of the currently watched directory.
type DirectoryWatcher struct {
	mtx     sync.Mutex
	watcher *fsnotify.Watcher
	current string

	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
}

// NewDirectoryWatcher returns a pointer to a new DirectoryWatcher, which does
// not watch anything until Watch is called.
func NewDirectoryWatcher() (*DirectoryWatcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &DirectoryWatcher{
		watcher: fsw,
		changes: make(chan string, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Watch switches the watched directory to the given one.
func (w *DirectoryWatcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mtx.Lock()
	defer w.mtx.Unlock()

	if absPath == w.current {
		return nil
	}
	if w.current != "" {
		if err := w.watcher.Remove(w.current); err != nil {
			log.Debug().Err(err).Str("path", w.current).Msg("could not stop watching directory")
		}
		w.current = ""
	}
	if err := w.watcher.Add(absPath); err != nil {
		return err
	}
	w.current = absPath
	log.Debug().Str("path", absPath).Msg("watching directory")
	return nil
}

// Changes returns the channel on which changed directories are reported.
func (w *DirectoryWatcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching.
func (w *DirectoryWatcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *DirectoryWatcher) loop() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			dir := filepath.Dir(event.Name)
			if dir != w.watched() {
				continue
			}
			w.notify(dir)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("directory watcher error")
		}
	}
}

func (w *DirectoryWatcher) watched() string {
	w.mtx.Lock()
	defer w.mtx.Unlock()
	return w.current
}

// notify makes dir the pending change, replacing one that was not yet
// received. Only the loop sends, so the second send can't block.
func (w *DirectoryWatcher) notify(dir string) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- dir
}
