package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/neonflap.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches defaults/neonflap.yaml.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  500,
			Height: 700,
		},
		Timing: TimingConfig{
			TickRate:      60,
			GameOverDelay: 3 * time.Second,
		},
		Stars: 60,
		Theme: ThemeConfig{
			Background: "night",
			Actor:      "neon_pink",
			Eye:        "neon_green",
			Trail:      "neon_blue",
			Obstacle:   "neon_purple",
			Star:       "neon_blue",
			Score:      "neon_green",
			Lives:      "neon_pink",
			Title:      "neon_pink",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default config file, e.g. for writing a
// starter config to disk.
func DefaultYAML() []byte {
	return defaultYAML
}
