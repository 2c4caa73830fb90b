package core

import (
	"fmt"
	"strings"
)

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorNeonBlue
	ColorNeonPink
	ColorNeonGreen
	ColorNeonPurple
	ColorNight
)

type colorInfo struct {
	name    string
	ansi    int // 256-color palette index, -1 for terminal default
	r, g, b uint8
}

var colorTable = map[Color]colorInfo{
	ColorDefault:    {"default", -1, 230, 230, 230},
	ColorRed:        {"red", 1, 205, 49, 49},
	ColorGreen:      {"green", 2, 13, 188, 121},
	ColorYellow:     {"yellow", 3, 229, 229, 16},
	ColorBlue:       {"blue", 4, 36, 114, 200},
	ColorMagenta:    {"magenta", 5, 188, 63, 188},
	ColorCyan:       {"cyan", 6, 17, 168, 205},
	ColorWhite:      {"white", 7, 229, 229, 229},
	ColorGray:       {"gray", 245, 138, 138, 138},
	ColorNeonBlue:   {"neon_blue", 51, 50, 230, 255},
	ColorNeonPink:   {"neon_pink", 198, 255, 20, 147},
	ColorNeonGreen:  {"neon_green", 46, 57, 255, 20},
	ColorNeonPurple: {"neon_purple", 99, 150, 50, 255},
	ColorNight:      {"night", 233, 10, 10, 10},
}

// String returns the config name of the color.
func (c Color) String() string {
	if info, ok := colorTable[c]; ok {
		return info.name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// ANSI returns the 256-color palette index, or -1 for the terminal default.
func (c Color) ANSI() int {
	if info, ok := colorTable[c]; ok {
		return info.ansi
	}
	return -1
}

// RGB returns the 24-bit value used by pixel renderers.
func (c Color) RGB() (r, g, b uint8) {
	info, ok := colorTable[c]
	if !ok {
		info = colorTable[ColorDefault]
	}
	return info.r, info.g, info.b
}

// ParseColor resolves a config color name such as "neon_pink".
func ParseColor(name string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "-", "_")
	for c, info := range colorTable {
		if info.name == key {
			return c, nil
		}
	}
	return ColorDefault, fmt.Errorf("core: unknown color %q", name)
}

// Palette assigns colors to the things a renderer draws.
type Palette struct {
	Background Color
	Actor      Color
	Eye        Color
	Trail      Color
	Obstacle   Color
	Star       Color
	Score      Color
	Lives      Color
	Title      Color
}

// DefaultPalette returns the neon palette.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorNight,
		Actor:      ColorNeonPink,
		Eye:        ColorNeonGreen,
		Trail:      ColorNeonBlue,
		Obstacle:   ColorNeonPurple,
		Star:       ColorNeonBlue,
		Score:      ColorNeonGreen,
		Lives:      ColorNeonPink,
		Title:      ColorNeonPink,
	}
}
