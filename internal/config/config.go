// Package config holds the appliance settings: where the show library
// lives, which input device carries touch events, the GPIO wiring, and
// optional player command overrides.
package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// DefaultPath is the standard location of the appliance config file.
const DefaultPath = "/etc/faketv/config.json"

// Config is the on-disk configuration. Zero values fall back to the
// defaults, so a partial file only overrides what it mentions.
type Config struct {
	DataDir      string `json:"data_dir"`
	TouchDevice  string `json:"touch_device"`
	ButtonPin    int    `json:"button_pin"`
	BacklightPin int    `json:"backlight_pin"`
	PanelRailPin int    `json:"panel_rail_pin"`

	// Player argv prefixes; the media path is appended. When empty the
	// player binary is auto-discovered.
	PlayerCommand       []string `json:"player_command,omitempty"`
	StaticPlayerCommand []string `json:"static_player_command,omitempty"`
}

// Default returns the stock Raspberry Pi wiring and paths.
func Default() Config {
	return Config{
		DataDir:      "/var/lib/faketv/data",
		TouchDevice:  "/dev/input/event0",
		ButtonPin:    26,
		BacklightPin: 18,
		PanelRailPin: 19,
	}
}

// Load reads the config file at path, filling unset fields with
// defaults. A missing file is not an error: the appliance runs on
// defaults and says so.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("[config] %s not found, using defaults", path)
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	var file Config
	if err := json.Unmarshal(data, &file); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
	}
	if file.TouchDevice != "" {
		cfg.TouchDevice = file.TouchDevice
	}
	if file.ButtonPin != 0 {
		cfg.ButtonPin = file.ButtonPin
	}
	if file.BacklightPin != 0 {
		cfg.BacklightPin = file.BacklightPin
	}
	if file.PanelRailPin != 0 {
		cfg.PanelRailPin = file.PanelRailPin
	}
	if len(file.PlayerCommand) > 0 {
		cfg.PlayerCommand = file.PlayerCommand
	}
	if len(file.StaticPlayerCommand) > 0 {
		cfg.StaticPlayerCommand = file.StaticPlayerCommand
	}

	log.Printf("[config] loaded %s: data=%s touch=%s", path, cfg.DataDir, cfg.TouchDevice)
	return cfg, nil
}
