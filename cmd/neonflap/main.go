// neonflap is a side-scrolling arcade game: flap through the gaps, keep your lives.
//
// Usage:
//
//	neonflap play [frontend]  - Play locally (tui, term or window; default tui)
//	neonflap list             - List available frontends
//	neonflap serve            - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Config file (default: search ~/.neonflap, ./configs, embedded)
//	--seed <value>      - RNG seed for reproducible runs
//	--fps <rate>        - Override the tick rate
//	--mute              - Disable audio cues
//	--log-file <path>   - Write logs to a file
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/neonflap/internal/platform/term"
	_ "github.com/vovakirdan/neonflap/internal/platform/tui"
	_ "github.com/vovakirdan/neonflap/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagFPS      int
	flagMute     bool
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "neonflap",
	Short: "Neon Flap - flap through the neon walls",
	Long: `Neon Flap is a side-scrolling arcade game. Keep the square in the air,
fly through the gaps between the walls and don't run out of lives.

Available commands:
  play     - Play in the terminal or a window
  list     - Show available frontends
  serve    - Start SSH server for remote play

Examples:
  neonflap play
  neonflap play term --seed 42
  neonflap play window --mute
  neonflap serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio cues")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
}
