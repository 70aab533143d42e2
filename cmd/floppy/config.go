package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/floppy-monster/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or validate a configuration file",
	Long: `Without flags, print the embedded default configuration. Save it as
~/.floppy/config.yaml or ./configs/floppy.yaml and edit it, or pass it
with --config.

With --validate, load the given file on top of the defaults and report
every rule it breaks.

Examples:
  floppy config > ~/.floppy/config.yaml
  floppy config --validate ./my-floppy.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Validate this config file instead of printing the defaults")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagValidate == "" {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadFile(flagValidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "%s is invalid:\n%v\n", flagValidate, err)
		os.Exit(1)
	}

	lo, hi := cfg.GapRange()
	fmt.Printf("%s is valid\n", flagValidate)
	fmt.Printf("  window        %gx%g\n", cfg.Window.Width, cfg.Window.Height)
	fmt.Printf("  gap start     [%g, %g)\n", lo, hi)
	fmt.Printf("  floor at y    %g\n", cfg.FloorY())
	fmt.Printf("  tick          %v\n", cfg.Timing.TickInterval())
	fmt.Printf("  spawn every   %v\n", cfg.Obstacles.SpawnInterval())
}
