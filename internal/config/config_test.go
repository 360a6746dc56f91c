package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadPartialFileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"data_dir": "/mnt/shows",
		"button_pin": 17,
		"player_command": ["mpv", "--fs"]
	}`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/mnt/shows", cfg.DataDir)
	assert.Equal(t, 17, cfg.ButtonPin)
	assert.Equal(t, []string{"mpv", "--fs"}, cfg.PlayerCommand)

	// Untouched fields keep their defaults.
	assert.Equal(t, Default().TouchDevice, cfg.TouchDevice)
	assert.Equal(t, Default().BacklightPin, cfg.BacklightPin)
	assert.Empty(t, cfg.StaticPlayerCommand)
}

func TestLoadMalformedFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
