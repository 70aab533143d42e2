// floppy is a side-scrolling reflex game for the terminal: fly the monster
// through the gaps between obstacle pairs.
//
// Usage:
//
//	floppy                 - Play (same as floppy play)
//	floppy play            - Play
//	floppy config          - Print the default configuration
//	floppy keys            - Show the active key bindings
//
// Global flags:
//
//	--config <path>     - Game config YAML (default search: ~/.floppy, ./configs, embedded)
//	--log-file <path>   - Write logs to a file while the game runs
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
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
	Use:   "floppy",
	Short: "Floppy Monster - fly through the gaps in your terminal",
	Long: `Floppy Monster is a terminal side-scroller. The monster falls under
gravity; every jump sends it up. Fly through the gaps between the
obstacle pairs: each pair cleared is one point. Touching a barrier or the
floor ends the run.

Available commands:
  play     - Play the game (default)
  config   - Print or validate a configuration file
  keys     - Show the key bindings of the active configuration

Examples:
  floppy
  floppy play --seed 42
  floppy config > ~/.floppy/config.yaml
  floppy config --validate ./my-floppy.yaml
  floppy --log-file floppy.log --log-level debug`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file while the game runs")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(keysCmd)
}

// newLogger builds the program logger writing to w.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "floppy",
		Level:           level,
	}), nil
}

// fatal logs err and exits.
func fatal(logger *log.Logger, msg string, err error) {
	logger.Error(msg, "error", err)
	os.Exit(1)
}
