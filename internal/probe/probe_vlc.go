//go:build linux && arm64

// libVLC-backed prober for the Raspberry Pi target.
package probe

import (
	"fmt"
	"sync"

	libvlc "github.com/adrg/libvlc-go/v3"
)

var vlcInitOnce sync.Once
var vlcInitErr error

// open asks libVLC to build a media object for the path. That catches
// unreadable files without decoding anything.
func open(path string) error {
	vlcInitOnce.Do(func() {
		vlcInitErr = libvlc.Init("--quiet", "--vout=dummy", "--aout=dummy")
	})
	if vlcInitErr != nil {
		return fmt.Errorf("libvlc init failed: %w", vlcInitErr)
	}

	m, err := libvlc.NewMediaFromPath(path)
	if err != nil {
		return err
	}
	m.Release()
	return nil
}
