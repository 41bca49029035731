// flappy is a Flappy Bird clone for the terminal and the desktop.
//
// Usage:
//
//	flappy play              - Play in the terminal
//	flappy window            - Play in a desktop window
//	flappy sim               - Run a headless simulation and print the result
//	flappy config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Load and watch a config file
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Append logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

const gameID = "flappy"

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagNoWatch  bool
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Bird in your terminal or a window",
	Long: `Flap through the gaps between scrolling pillars. Each gap passed scores
a point; touching a pillar, the floor or the roof ends the round.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Run a headless simulation
  config   - Print the effective configuration

Examples:
  flappy play
  flappy window --config ./flappy.yaml
  flappy sim --frames 3000 --flap-every 22 --seed 7
  flappy config > ~/.flappy/flappy.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a config YAML (watched for changes)")
	rootCmd.PersistentFlags().BoolVar(&flagNoWatch, "no-watch", false, "Do not reload the config file on change")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogFile opens the --log-file target for appending.
var openLogFile = func(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		f, err := openLogFile(flagLogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { _ = f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          gameID,
		Level:           level,
	})
	return logger, closeFn, nil
}

// withLogger runs fn with the process logger and closes the log file before
// reporting fn's error on stderr. It returns the process exit code.
func withLogger(fallback io.Writer, stderr io.Writer, fn func(*log.Logger) error) int {
	logger, closeLog, err := newLogger(fallback)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	err = fn(logger)
	closeLog()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// session is everything a frontend needs to run the game.
type session struct {
	game    registry.Game
	cfg     config.FlappyConfig
	watcher *config.Watcher
}

// close stops the config watcher, if any.
func (s session) close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
}

// newSession loads the config, creates the game and starts watching the
// config file when one was given.
func newSession(logger *log.Logger, watch bool) (session, error) {
	cfg, err := config.LoadFlappy(flagConfig)
	if err != nil {
		return session{}, fmt.Errorf("cannot load config: %w", err)
	}

	flappy.SetConfigPath(flagConfig)
	flappy.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return session{}, err
	}
	if g, ok := game.(*flappy.Game); ok {
		if err := g.Configure(cfg); err != nil {
			return session{}, err
		}
	}

	s := session{game: game, cfg: cfg}
	if watch && flagConfig != "" && !flagNoWatch {
		w, err := config.Watch(flagConfig)
		if err != nil {
			logger.Warn("config hot reload disabled", "err", err)
		} else {
			logger.Info("watching config", "path", w.Path())
			s.watcher = w
		}
	}
	return s, nil
}
