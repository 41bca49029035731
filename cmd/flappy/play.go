package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  Space/Up/W - Flap (starts the round)
  Space      - Restart after a crash
  R/Enter    - Restart after a crash
  P/Esc      - Pause
  Ctrl+S     - Save a screenshot to ~/.flappy/screenshots
  Q/Ctrl+C   - Quit

The terminal owns the screen, so logs are discarded unless --log-file is set.

Examples:
  flappy play
  flappy play --fps 30 --seed 42
  flappy play --config ./flappy.yaml --log-file flappy.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if code := withLogger(io.Discard, os.Stderr, playTerminal); code != 0 {
		os.Exit(code)
	}
}

func playTerminal(logger *log.Logger) error {
	// The game needs a viewport to place borders and pillars
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("%w: %v", core.ErrNoViewport, err)
	}
	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height - 1, // help line
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
	if err := rt.Validate(); err != nil {
		return err
	}

	s, err := newSession(logger, true)
	if err != nil {
		return err
	}
	defer s.close()

	return tui.Run(s.game, tui.Options{
		Runtime: core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: flagFPS, Seed: flagSeed},
		Config:  s.cfg,
		Watcher: s.watcher,
		Logger:  logger,
	})
}
