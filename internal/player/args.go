package player

import (
	"fmt"
	"log"
	"os/exec"
)

// Invocation holds the argv prefixes for the two kinds of playback;
// the media path is appended per spawn.
type Invocation struct {
	// Video plays a single file fullscreen and exits when it ends.
	Video []string
	// Static loops a single file forever.
	Static []string
}

// FindInvocation locates a usable player binary and returns its flag
// sets. omxplayer is preferred on the Pi; cvlc and vlc cover everything
// else. All variants run with no on-screen display and fill the screen.
func FindInvocation() (Invocation, error) {
	if path, err := exec.LookPath("omxplayer"); err == nil {
		log.Printf("[player] using omxplayer at: %s", path)
		return Invocation{
			Video:  []string{path, "--no-osd", "--aspect-mode", "fill"},
			Static: []string{path, "--no-osd", "--loop"},
		}, nil
	}

	for _, name := range []string{"cvlc", "vlc"} {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		log.Printf("[player] using %s at: %s", name, path)
		return Invocation{
			Video: []string{path,
				"--fullscreen",
				"--no-osd",
				"--no-video-title-show",
				"--play-and-exit",
				"--quiet",
			},
			Static: []string{path,
				"--fullscreen",
				"--no-osd",
				"--no-video-title-show",
				"--loop",
				"--quiet",
			},
		}, nil
	}

	return Invocation{}, fmt.Errorf("no player found — install omxplayer or vlc")
}
