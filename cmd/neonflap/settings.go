package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neonflap/internal/config"
)

// settings is everything a command needs after flags and config are merged.
type settings struct {
	Config config.Config
	Source string
}

// loadSettings reads the config file and applies flag overrides.
func loadSettings(path string, fps int) (settings, error) {
	cfg, source, err := config.Load(path)
	if err != nil {
		return settings{}, err
	}
	if fps > 0 {
		cfg.Timing.TickRate = fps
		if err := cfg.Validate(); err != nil {
			return settings{}, fmt.Errorf("--fps: %w", err)
		}
	}
	return settings{Config: cfg, Source: source}, nil
}

// newLogger builds the process logger. The returned closer releases the log file.
func newLogger(w io.Writer, path, level, prefix string) (*log.Logger, func() error, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("--log-level: %w", err)
	}

	closer := func() error { return nil }
	if path != "" {
		f, openErr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           lvl,
	})
	return logger, closer, nil
}
