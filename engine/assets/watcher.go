package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const changeBuffer = 64

// Watcher reports shader source files that changed on disk. The fsnotify
// goroutine only forwards paths; Drain is called from the frame loop.
type Watcher struct {
	fs      *fsnotify.Watcher
	log     *log.Logger
	watched map[string]struct{}
	changes chan string
	done    chan struct{}
	wg      sync.WaitGroup
	closed  bool
}

func NewWatcher(logger *log.Logger) (*Watcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.Default()
	}
	w := &Watcher{
		fs:      fsWatch,
		log:     logger,
		watched: make(map[string]struct{}),
		changes: make(chan string, changeBuffer),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Watch starts watching a shader locator. Directories are watched directly;
// for single files the parent directory is watched so editors that replace
// the file on save are still noticed. Watching the same locator twice is a
// no-op.
func (w *Watcher) Watch(locator string) error {
	if w.closed {
		return errors.New("watcher closed")
	}
	locator = filepath.Clean(locator)
	if _, ok := w.watched[locator]; ok {
		return nil
	}

	target := locator
	if info, err := os.Stat(locator); err != nil {
		return err
	} else if !info.IsDir() {
		target = filepath.Dir(locator)
	}
	if err := w.fs.Add(target); err != nil {
		return err
	}
	w.watched[locator] = struct{}{}
	w.log.Debug("watching shader source", "locator", locator)
	return nil
}

// Drain returns the paths changed since the last call without blocking.
// Each path appears once.
func (w *Watcher) Drain() []string {
	var paths []string
	seen := make(map[string]struct{})
	for {
		select {
		case p := <-w.changes:
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			paths = append(paths, p)
		default:
			return paths
		}
	}
}

func (w *Watcher) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.done)
	w.wg.Wait()
	return w.fs.Close()
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) && !e.Has(fsnotify.Rename) {
				continue
			}
			select {
			case w.changes <- filepath.Clean(e.Name):
			default:
				w.log.Debug("shader change dropped, queue full", "path", e.Name)
			}

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher", "err", err)

		case <-w.done:
			return
		}
	}
}
