package library

import (
	"log"
	"os"
	"sort"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// OnChangeFunc is a callback invoked when the set of shows changes.
// It receives the updated sorted list of show names.
type OnChangeFunc func(shows []string)

// Watcher monitors the data root for show directories appearing or
// disappearing while the service runs. Show selection still reads the
// filesystem fresh each iteration; the watcher exists so library changes
// are visible in the logs the moment they happen.
type Watcher struct {
	mu       sync.RWMutex
	lib      *Library
	shows    []string
	watcher  *fsnotify.Watcher
	onChange OnChangeFunc
	stopCh   chan struct{}
}

// NewWatcher creates a Watcher over the library's data root.
// The onChange callback fires whenever the show list changes.
func NewWatcher(lib *Library, onChange OnChangeFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		lib:      lib,
		watcher:  fw,
		onChange: onChange,
		stopCh:   make(chan struct{}),
	}

	// Take an initial snapshot before the watch loop starts.
	w.scan()

	return w, nil
}

// scan refreshes the cached show list from the library.
func (w *Watcher) scan() {
	shows, err := w.lib.Shows()
	if err != nil {
		log.Printf("[library] scan error: %v", err)
		return
	}

	sort.Strings(shows)

	w.mu.Lock()
	w.shows = shows
	w.mu.Unlock()
}

// Shows returns the show list as of the last filesystem event.
func (w *Watcher) Shows() []string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	dst := make([]string, len(w.shows))
	copy(dst, w.shows)
	return dst
}

// Start begins watching the data root. It blocks until Stop() is called
// or the watcher encounters a fatal error.
func (w *Watcher) Start() error {
	if err := w.watcher.Add(w.lib.Root()); err != nil {
		return err
	}

	log.Printf("[library] monitoring: %s", w.lib.Root())

	for {
		select {
		case <-w.stopCh:
			log.Println("[library] watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if isRelevantEvent(event) {
				before := w.Shows()
				w.scan()
				after := w.Shows()
				if !sameShows(before, after) {
					log.Printf("[library] shows changed: %v", after)
					if w.onChange != nil {
						w.onChange(after)
					}
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[library] watch error: %v", err)
		}
	}
}

// Stop halts the watcher loop and releases the fsnotify resources.
func (w *Watcher) Stop() {
	close(w.stopCh)
	w.watcher.Close()
}

// isRelevantEvent filters for events that can change the show set.
func isRelevantEvent(e fsnotify.Event) bool {
	if e.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	// Creates may be plain files at the root (e.g. the static video);
	// only directories matter, but a removed path can no longer be
	// stat'ed, so let the rescan sort those out.
	if e.Op&fsnotify.Create != 0 {
		info, err := os.Stat(e.Name)
		if err == nil && !info.IsDir() {
			return false
		}
	}
	return true
}

func sameShows(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
