package library

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// TestWatcherInitialSnapshot verifies the watcher sees shows that exist
// before it starts.
func TestWatcherInitialSnapshot(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "cartoons"), 0755)
	os.Mkdir(filepath.Join(dir, "news"), 0755)

	w, err := NewWatcher(New(dir), nil)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	shows := w.Shows()
	if len(shows) != 2 {
		t.Fatalf("expected 2 shows, got %d: %v", len(shows), shows)
	}
}

// TestWatcherDetectsNewShow verifies the onChange callback fires when a
// show directory is added to the data root.
func TestWatcherDetectsNewShow(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var lastShows []string
	changed := make(chan struct{}, 1)

	w, err := NewWatcher(New(dir), func(shows []string) {
		mu.Lock()
		lastShows = shows
		mu.Unlock()
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatal(err)
	}

	go w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	os.Mkdir(filepath.Join(dir, "westerns"), 0755)

	select {
	case <-changed:
		mu.Lock()
		defer mu.Unlock()
		if len(lastShows) != 1 || lastShows[0] != "westerns" {
			t.Fatalf("expected [westerns], got %v", lastShows)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for onChange callback")
	}
}

// TestWatcherDetectsShowRemoval verifies the callback fires when a show
// directory is removed.
func TestWatcherDetectsShowRemoval(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "cartoons"), 0755)

	changed := make(chan []string, 2)

	w, err := NewWatcher(New(dir), func(shows []string) {
		changed <- shows
	})
	if err != nil {
		t.Fatal(err)
	}

	if len(w.Shows()) != 1 {
		t.Fatalf("expected 1 show initially, got %d", len(w.Shows()))
	}

	go w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	os.Remove(filepath.Join(dir, "cartoons"))

	select {
	case shows := <-changed:
		if len(shows) != 0 {
			t.Fatalf("expected 0 shows after removal, got %d", len(shows))
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for removal callback")
	}
}

// TestWatcherIgnoresLooseFiles verifies that a plain file created at the
// data root does not announce a show change.
func TestWatcherIgnoresLooseFiles(t *testing.T) {
	dir := t.TempDir()
	os.Mkdir(filepath.Join(dir, "cartoons"), 0755)

	changed := make(chan []string, 2)

	w, err := NewWatcher(New(dir), func(shows []string) {
		changed <- shows
	})
	if err != nil {
		t.Fatal(err)
	}

	go w.Start()
	defer w.Stop()

	time.Sleep(100 * time.Millisecond)

	os.WriteFile(filepath.Join(dir, "tv_static.mp4"), []byte("x"), 0644)

	select {
	case shows := <-changed:
		t.Fatalf("unexpected show change: %v", shows)
	case <-time.After(500 * time.Millisecond):
	}
}
