package media

import "testing"

func TestIsVideo(t *testing.T) {
	cases := map[string]bool{
		"episode01.mp4":        true,
		"EPISODE02.MKV":        true,
		"/shows/cartoons/a.m4v": true,
		"notes.txt":            false,
		"cover.jpg":            false,
		"episode":              false,
		"tv_static.mp4":        true,
	}

	for path, want := range cases {
		if got := IsVideo(path); got != want {
			t.Errorf("IsVideo(%q) = %v, want %v", path, got, want)
		}
	}
}
