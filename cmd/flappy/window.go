package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window and start the game.

Controls:
  Space/Up/W - Flap (starts the round)
  Hold Space - Restart after a crash
  R/Enter    - Restart after a crash
  P/Esc      - Pause
  Q          - Quit

Window title and size come from the window section of the config.

Examples:
  flappy window
  flappy window --config ./flappy.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	if code := withLogger(os.Stderr, os.Stderr, playWindow); code != 0 {
		os.Exit(code)
	}
}

func playWindow(logger *log.Logger) error {
	s, err := newSession(logger, true)
	if err != nil {
		return err
	}
	defer s.close()

	return window.Run(s.game, window.Options{
		Runtime: core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed},
		Config:  s.cfg,
		Watcher: s.watcher,
		Logger:  logger,
	})
}
