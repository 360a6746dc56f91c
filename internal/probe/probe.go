// Package probe preflights the show library: every video in every show
// is opened by the platform prober so corrupt or unreadable files are
// reported before the TV loops over them. On the Pi (linux/arm64) the
// prober goes through libVLC; elsewhere it falls back to a filesystem
// check.
package probe

import (
	"log"

	"faketv/internal/library"
)

// Result is one probed file.
type Result struct {
	Path string
	Err  error
}

// Library probes every video of every show, plus the static idle video
// when present.
func Library(lib *library.Library) ([]Result, error) {
	shows, err := lib.Shows()
	if err != nil {
		return nil, err
	}

	var paths []string
	if s := lib.StaticPath(); s != "" {
		paths = append(paths, s)
	}
	for _, show := range shows {
		videos, err := lib.Videos(show)
		if err != nil {
			log.Printf("[probe] show %s: %v", show, err)
			continue
		}
		paths = append(paths, videos...)
	}

	results := make([]Result, 0, len(paths))
	for _, p := range paths {
		results = append(results, Result{Path: p, Err: open(p)})
	}
	return results, nil
}
