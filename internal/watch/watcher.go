package watch

import (
	"context"
	"io/fs"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DebounceWindow is how long the watcher waits for the event stream to
// settle before firing. Editors and asset pipelines emit bursts of writes;
// one rebuild per settled burst is enough.
const DebounceWindow = 150 * time.Millisecond

// Watcher observes the content document and the assets dir and invokes
// onChange once per settled burst of filesystem events.
type Watcher struct {
	paths    []string
	onChange func()
	debounce time.Duration
}

// New creates a Watcher over the given files/directories. Directories are
// watched recursively.
func New(onChange func(), paths ...string) *Watcher {
	return &Watcher{
		paths:    paths,
		onChange: onChange,
		debounce: DebounceWindow,
	}
}

// Run watches until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	for _, p := range w.paths {
		if err := addRecursive(fsw, p); err != nil {
			log.Printf("watch: cannot watch %s: %v", p, err)
		}
	}

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			// New directories need their own watch.
			if ev.Op&fsnotify.Create != 0 {
				_ = addRecursive(fsw, ev.Name)
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			w.onChange()

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

// addRecursive registers path and, when it is a directory, its subtree.
func addRecursive(fsw *fsnotify.Watcher, path string) error {
	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || p == path {
			return fsw.Add(p)
		}
		return nil
	})
}
