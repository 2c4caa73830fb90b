package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/neonflap/internal/audio"
	"github.com/vovakirdan/neonflap/internal/registry"
)

const defaultFrontend = "tui"

var playCmd = &cobra.Command{
	Use:   "play [frontend]",
	Short: "Play a run",
	Long: `Start a run on the given frontend (default: tui).

Controls:
  Space/Up/W   - Start, flap
  Q/Esc/Ctrl+C - Quit
  Ctrl+S       - Screenshot (tui only)

Examples:
  neonflap play
  neonflap play term
  neonflap play window --fps 120
  neonflap play --config ./my-neonflap.yaml --log-file run.log`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

// terminalFrontends need stdout to be a terminal.
var terminalFrontends = map[string]bool{"tui": true, "term": true}

func runPlay(cmd *cobra.Command, args []string) error {
	id := defaultFrontend
	if len(args) == 1 {
		id = args[0]
	}

	frontend, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("%w (run 'neonflap list')", err)
	}

	if terminalFrontends[id] {
		fd := int(os.Stdout.Fd())
		if !term.IsTerminal(fd) {
			return fmt.Errorf("frontend %q needs a terminal", id)
		}
		if w, h, sizeErr := term.GetSize(fd); sizeErr == nil && (w < minTermW || h < minTermH) {
			return fmt.Errorf("terminal is %dx%d, need at least %dx%d", w, h, minTermW, minTermH)
		}
	}

	st, err := loadSettings(flagConfig, flagFPS)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard, flagLogFile, flagLogLevel, "neonflap")
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	opts, cleanup, err := buildOptions(st, flagSeed, flagMute, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	logger.Info("starting", "frontend", id, "config", st.Source, "run", opts.RunID)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	final, err := frontend.Run(ctx, opts)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run %s: %w", id, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", final.Score)
	return nil
}

// Smallest terminal that still shows the HUD and a readable gap.
const (
	minTermW = 20
	minTermH = 12
)

// buildOptions turns settings into frontend options. Audio is wired as an
// event sink unless muted; a speaker that fails to open is logged and skipped.
func buildOptions(st settings, seed int64, mute bool, logger *log.Logger) (registry.Options, func(), error) {
	pal, err := st.Config.Palette()
	if err != nil {
		return registry.Options{}, nil, err
	}

	opts := registry.Options{
		Runtime: st.Config.Runtime(seed),
		Palette: pal,
		Logger:  logger,
		RunID:   uuid.NewString(),
	}

	cleanup := func() {}
	if mute || !st.Config.Audio.Enabled {
		logger.Debug("audio disabled")
		return opts, cleanup, nil
	}

	player := audio.NewPlayer(st.Config.Audio.Volume, logger)
	if initErr := player.Init(); initErr != nil {
		logger.Warn("audio unavailable, playing silently", "error", initErr)
		return opts, cleanup, nil
	}
	opts.Sinks = append(opts.Sinks, player)
	return opts, player.Close, nil
}
