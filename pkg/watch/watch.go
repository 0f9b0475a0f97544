// Package watch reports changes to individual files.
//
// Editors often save by writing a temporary file and renaming it over the
// original, which drops a watch placed on the file itself. Watcher therefore
// watches each file's directory and filters events by name, so a file keeps
// being tracked across such saves.
package watch

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported. Each new event for the file restarts the wait.
const DefaultDebounce = 100 * time.Millisecond

// Watcher delivers the path of a watched file each time it changes.
type Watcher struct {
	watcher  *fsnotify.Watcher
	files    map[string]bool
	debounce time.Duration

	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// New watches the given files. Paths are cleaned to absolute form; events
// carry the absolute path.
func New(files ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	watcher := &Watcher{
		watcher:  w,
		files:    make(map[string]bool, len(files)),
		debounce: DefaultDebounce,
		Events:   make(chan string, 16),
		Errors:   make(chan error, 1),
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}

	dirs := make(map[string]bool)
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		watcher.files[abs] = true
		dir := filepath.Dir(abs)
		if dirs[dir] {
			continue
		}
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
		dirs[dir] = true
	}

	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes Events and Errors.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	// One timer per file; a burst of events collapses into a single
	// report sent once the file has been quiet for the debounce window.
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()
	settled := make(chan string)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			name := filepath.Clean(event.Name)
			if !w.files[name] {
				continue
			}
			if t, ok := timers[name]; ok {
				t.Reset(w.debounce)
				continue
			}
			timers[name] = time.AfterFunc(w.debounce, func() {
				select {
				case settled <- name:
				case <-w.closeCh:
				}
			})
		case name := <-settled:
			select {
			case w.Events <- name:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
