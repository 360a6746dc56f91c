// Package library enumerates the show library: a data root whose
// subdirectories are shows, each holding the videos played back-to-back.
// Enumeration is always fresh from the filesystem so content added or
// removed while the service runs is picked up on the next selection.
package library

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"

	"faketv/internal/media"
)

// Library reads shows and videos from a data root directory.
type Library struct {
	root string
}

// New creates a Library rooted at the given data directory.
func New(root string) *Library {
	return &Library{root: root}
}

// Root returns the data root directory.
func (l *Library) Root() string {
	return l.root
}

// Shows returns the sorted names of all show directories under the root.
// The filesystem is read fresh on every call.
func (l *Library) Shows() ([]string, error) {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	var shows []string
	for _, entry := range entries {
		if entry.IsDir() {
			shows = append(shows, entry.Name())
		}
	}

	sort.Strings(shows)
	return shows, nil
}

// Videos returns the full paths of all video files in the named show,
// read fresh from the filesystem.
func (l *Library) Videos(show string) ([]string, error) {
	dir := filepath.Join(l.root, show)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read show dir: %w", err)
	}

	var videos []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if media.IsVideo(entry.Name()) {
			videos = append(videos, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(videos)
	log.Printf("[library] found %d videos in %s", len(videos), dir)
	return videos, nil
}

// StaticPath returns the path of the idle static video at the data root,
// or "" if the file does not exist.
func (l *Library) StaticPath() string {
	path := filepath.Join(l.root, media.StaticFilename)
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}
