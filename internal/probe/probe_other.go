//go:build !(linux && arm64)

// Filesystem-only prober for development hosts without libVLC.
package probe

import (
	"fmt"
	"os"

	"faketv/internal/media"
)

func open(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	if !media.IsVideo(path) {
		return fmt.Errorf("%s is not a recognized video type", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
