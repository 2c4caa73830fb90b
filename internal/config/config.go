// Package config provides YAML-based configuration loading for neonflap.
// Physics constants are fixed in the game package and cannot be configured.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/neonflap/internal/core"
)

// ErrInvalid is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalid = errors.New("invalid config")

// Limits enforced by Validate.
const (
	MinScreenW  = 200 // Room for the actor and at least one wall
	MinScreenH  = 400 // Gap start range [100, H-300] must not be empty
	MaxTickRate = 240
	MaxStars    = 1000
)

// Config is the complete neonflap configuration.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Timing TimingConfig `yaml:"timing"`
	Stars  int          `yaml:"stars"`
	Theme  ThemeConfig  `yaml:"theme"`
	Audio  AudioConfig  `yaml:"audio"`
}

// ScreenConfig is the world size in reference pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig controls the tick clock.
type TimingConfig struct {
	TickRate      int           `yaml:"tick_rate"`       // Ticks per second
	GameOverDelay time.Duration `yaml:"game_over_delay"` // e.g. "3s"
}

// ThemeConfig names the color of each drawn element (see core.ParseColor).
type ThemeConfig struct {
	Background string `yaml:"background"`
	Actor      string `yaml:"actor"`
	Eye        string `yaml:"eye"`
	Trail      string `yaml:"trail"`
	Obstacle   string `yaml:"obstacle"`
	Star       string `yaml:"star"`
	Score      string `yaml:"score"`
	Lives      string `yaml:"lives"`
	Title      string `yaml:"title"`
}

// AudioConfig controls the sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 to 1.0
}

// Validate checks value ranges and color names.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width < MinScreenW:
		return fmt.Errorf("config: %w: screen width %d below %d", ErrInvalid, c.Screen.Width, MinScreenW)
	case c.Screen.Height < MinScreenH:
		return fmt.Errorf("config: %w: screen height %d below %d", ErrInvalid, c.Screen.Height, MinScreenH)
	case c.Timing.TickRate < 1 || c.Timing.TickRate > MaxTickRate:
		return fmt.Errorf("config: %w: tick rate %d not in [1, %d]", ErrInvalid, c.Timing.TickRate, MaxTickRate)
	case c.Timing.GameOverDelay < 0:
		return fmt.Errorf("config: %w: negative game over delay %s", ErrInvalid, c.Timing.GameOverDelay)
	case c.Stars < 0 || c.Stars > MaxStars:
		return fmt.Errorf("config: %w: star count %d not in [0, %d]", ErrInvalid, c.Stars, MaxStars)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("config: %w: audio volume %v not in [0, 1]", ErrInvalid, c.Audio.Volume)
	}
	if _, err := c.Palette(); err != nil {
		return fmt.Errorf("config: %w: %w", ErrInvalid, err)
	}
	return nil
}

// Runtime converts the config into the game's runtime configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:       c.Screen.Width,
		ScreenH:       c.Screen.Height,
		TickRate:      c.Timing.TickRate,
		Seed:          seed,
		GameOverDelay: c.Timing.GameOverDelay,
		Stars:         c.Stars,
	}
}

// Palette resolves the theme's color names. Empty names keep the default color.
func (c Config) Palette() (core.Palette, error) {
	p := core.DefaultPalette()
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{c.Theme.Background, &p.Background},
		{c.Theme.Actor, &p.Actor},
		{c.Theme.Eye, &p.Eye},
		{c.Theme.Trail, &p.Trail},
		{c.Theme.Obstacle, &p.Obstacle},
		{c.Theme.Star, &p.Star},
		{c.Theme.Score, &p.Score},
		{c.Theme.Lives, &p.Lives},
		{c.Theme.Title, &p.Title},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		col, err := core.ParseColor(f.name)
		if err != nil {
			return p, err
		}
		*f.dst = col
	}
	return p, nil
}
