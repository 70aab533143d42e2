package main

import (
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/floppy-monster/internal/assets"
	"github.com/vovakirdan/floppy-monster/internal/config"
	"github.com/vovakirdan/floppy-monster/internal/core"
	"github.com/vovakirdan/floppy-monster/internal/platform/tui"
	"github.com/vovakirdan/floppy-monster/internal/storage"
)

var (
	flagSeed       int64
	flagTickMS     int
	flagSprite     string
	flagBackground string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Floppy Monster",
	Long: `Start the game.

Controls (defaults, see 'floppy keys'):
  Enter / click Start    - Start
  Space / Up / W / click - Jump
  Space / R / click      - Restart (after game over)
  Tab / H                - Run history (menu and results panel)
  Q / Ctrl+C             - Quit

Examples:
  floppy play
  floppy play --seed 42
  floppy play --tick-ms 20
  floppy play --sprite ./ghost.txt --background ./city.txt`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the play flags on cmd. The root command runs play
// too, so it gets the same flags.
func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for obstacle gaps (0 = new seed every run)")
	cmd.Flags().IntVar(&flagTickMS, "tick-ms", 0, "Tick interval in milliseconds (0 = from config)")
	cmd.Flags().StringVar(&flagSprite, "sprite", "", "Path to a text-art monster sprite")
	cmd.Flags().StringVar(&flagBackground, "background", "", "Path to a text-art background strip")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Startup diagnostics go to stderr.
	logger, err := newLogger(os.Stderr)
	if err != nil {
		cmd.PrintErrln("Error:", err)
		os.Exit(1)
	}

	if flagTickMS < 0 {
		logger.Error("invalid --tick-ms", "value", flagTickMS)
		os.Exit(1)
	}

	gameCfg, source, err := config.Load(flagConfig)
	if err != nil {
		fatal(logger, "cannot load configuration", err)
	}
	if flagTickMS > 0 {
		gameCfg.Timing.TickMS = flagTickMS
	}
	logger.Debug("configuration loaded", "source", source)

	art, err := assets.Load(assets.Paths{Sprite: flagSprite, Background: flagBackground})
	if err != nil {
		fatal(logger, "cannot load assets", err)
	}

	// Get terminal size; the first WindowSizeMsg corrects it.
	rt := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}
	rt.TickInterval = gameCfg.Timing.TickInterval()
	rt.Seed = flagSeed

	// The run log lives in memory for this process only.
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("run history unavailable", "error", err)
		store = nil
	}

	// The alternate screen owns the terminal now; logs go to --log-file.
	restoreLogs, err := redirectLogs(logger, flagLogFile, os.Stderr)
	if err != nil {
		fatal(logger, "cannot open log file", err)
	}
	logger.Info("starting", "config", source, "seed", rt.Seed, "tick", rt.TickInterval)

	runErr := tui.Run(tui.Options{
		Game:    gameCfg,
		Runtime: rt,
		Assets:  art,
		Store:   store,
		Logger:  logger,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	// fatal exits without running defers, so the log file is closed here.
	restoreLogs()
	if runErr != nil {
		fatal(logger, "error running game", runErr)
	}
}

// redirectLogs points logger at the file at path, or discards logs when
// path is empty. The returned func closes the file and points logger back
// at restore; calling it more than once is safe.
func redirectLogs(logger *log.Logger, path string, restore io.Writer) (func(), error) {
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(restore) }, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, err
	}
	logger.SetOutput(f)

	var once sync.Once
	return func() {
		once.Do(func() {
			logger.SetOutput(restore)
			if err := f.Close(); err != nil {
				logger.Warn("cannot close log file", "path", path, "error", err)
			}
		})
	}, nil
}
