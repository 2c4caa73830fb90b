package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/neonflap/internal/core"
)

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test writes.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home, work = t.TempDir(), t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestEmbeddedMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if src != EmbeddedName {
		t.Errorf("source = %q, want %q", src, EmbeddedName)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded config differs from Default():\n%+v\n%+v", cfg, Default())
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, work := isolate(t)
	userPath := filepath.Join(home, ".neonflap", UserFileName)
	localPath := filepath.Join(work, LocalDir, FileName)

	writeFile(t, localPath, "stars: 10\n")
	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Stars != 10 || src != filepath.Join(LocalDir, FileName) {
		t.Errorf("local config not used: stars=%d src=%q", cfg.Stars, src)
	}

	writeFile(t, userPath, "stars: 20\n")
	cfg, src, err = Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Stars != 20 || src != userPath {
		t.Errorf("user config should win: stars=%d src=%q", cfg.Stars, src)
	}

	custom := filepath.Join(work, "custom.yaml")
	writeFile(t, custom, "stars: 30\n")
	cfg, src, err = Load(custom)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Stars != 30 || src != custom {
		t.Errorf("custom config should win: stars=%d src=%q", cfg.Stars, src)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "partial.yaml")
	writeFile(t, path, "timing:\n  game_over_delay: 1500ms\ntheme:\n  actor: cyan\n")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Timing.GameOverDelay != 1500*time.Millisecond {
		t.Errorf("GameOverDelay = %v", cfg.Timing.GameOverDelay)
	}
	if cfg.Timing.TickRate != 60 || cfg.Screen.Height != 700 {
		t.Errorf("defaults lost: %+v", cfg)
	}

	pal, err := cfg.Palette()
	if err != nil {
		t.Fatalf("Palette() error = %v", err)
	}
	if pal.Actor != core.ColorCyan || pal.Obstacle != core.ColorNeonPurple {
		t.Errorf("palette = %+v", pal)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"bad yaml", "screen: [1, 2\n", false},
		{"unknown key", "gravity: 2\n", false},
		{"short screen", "screen:\n  height: 399\n", true},
		{"narrow screen", "screen:\n  width: 100\n", true},
		{"zero tick rate", "timing:\n  tick_rate: 0\n", true},
		{"negative delay", "timing:\n  game_over_delay: -1s\n", true},
		{"too many stars", "stars: 5000\n", true},
		{"loud audio", "audio:\n  volume: 1.5\n", true},
		{"unknown color", "theme:\n  actor: mauve\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, work := isolate(t)
			path := filepath.Join(work, "cfg.yaml")
			writeFile(t, path, tt.content)

			_, _, err := Load(path)
			if err == nil {
				t.Fatal("Load() error = nil")
			}
			if got := errors.Is(err, ErrInvalid); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalid) = %v, want %v (err: %v)", got, tt.invalid, err)
			}
			if !strings.Contains(err.Error(), path) {
				t.Errorf("error %q does not name the file", err)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, work := isolate(t)
	missing := filepath.Join(work, "nope.yaml")

	if _, _, err := Load(missing); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want not exist", err)
	}
}

func TestEmptyFileUsesDefaults(t *testing.T) {
	_, work := isolate(t)
	path := filepath.Join(work, "empty.yaml")
	writeFile(t, path, "")

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("empty file should give defaults, got %+v", cfg)
	}
}

func TestRuntime(t *testing.T) {
	cfg := Default()
	cfg.Screen.Width = 640
	rt := cfg.Runtime(99)

	want := core.RuntimeConfig{
		ScreenW:       640,
		ScreenH:       700,
		TickRate:      60,
		Seed:          99,
		GameOverDelay: 3 * time.Second,
		Stars:         60,
	}
	if rt != want {
		t.Errorf("Runtime() = %+v, want %+v", rt, want)
	}
}

func TestDefaultPaletteMatchesCore(t *testing.T) {
	pal, err := Default().Palette()
	if err != nil {
		t.Fatal(err)
	}
	if pal != core.DefaultPalette() {
		t.Errorf("Default().Palette() = %+v, want %+v", pal, core.DefaultPalette())
	}
}
