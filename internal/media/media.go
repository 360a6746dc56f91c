// Package media provides video file type detection for the show library.
package media

import (
	"path/filepath"
	"strings"
)

// Video file extensions the player is known to handle.
var videoExts = map[string]bool{
	".mp4": true,
	".mkv": true,
	".avi": true,
	".mov": true,
	".m4v": true,
	".ts":  true,
}

// IsVideo returns true if the file has a recognized video extension.
// Matching is case-insensitive.
func IsVideo(path string) bool {
	return videoExts[strings.ToLower(filepath.Ext(path))]
}

// StaticFilename is the idle-loop video expected at the data root.
// When present it is played between shows, paused while a real video runs.
const StaticFilename = "tv_static.mp4"
