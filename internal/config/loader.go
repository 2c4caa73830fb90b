package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names used by the search order.
const (
	FileName     = "neonflap.yaml"
	UserFileName = "config.yaml"
	LocalDir     = "configs"
	EmbeddedName = "embedded"
)

// Load loads and validates the configuration.
// Search order: customPath -> ~/.neonflap/config.yaml -> ./configs/neonflap.yaml -> embedded default.
// Values missing from a file keep their defaults. The returned string names
// the source that was used.
func Load(customPath string) (Config, string, error) {
	// A custom path must exist
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := decode(customPath, data)
		return cfg, customPath, err
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err := decode(path, data)
		return cfg, path, err
	}

	cfg, err := decode(EmbeddedName, defaultYAML)
	return cfg, EmbeddedName, err
}

// searchPaths lists the optional config files in priority order.
func searchPaths() []string {
	var paths []string
	if p := userConfigPath(); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join(LocalDir, FileName))
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".neonflap", UserFileName)
}

// decode parses data over the defaults and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func decode(name string, data []byte) (Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", name, err)
	}
	return cfg, nil
}
