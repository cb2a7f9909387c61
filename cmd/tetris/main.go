// tetris is a falling-block puzzle game for the terminal, SSH and a desktop window.
//
// Usage:
//
//	tetris play      - Play in the current terminal
//	tetris serve     - Start SSH server for remote play
//	tetris window    - Play in a desktop window
//	tetris config    - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible piece sequences
//	--config <path>      - Use a custom YAML config
//	--log-file <path>    - Write logs to a file
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `A minimal falling-block puzzle: a 10x20 playfield, seven tetrominoes,
gravity, row clearing, movement and rotation.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  tetris play
  tetris play --seed 42
  tetris serve --ssh :2222
  tetris window --scale 24
  tetris config > ~/.tetris/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the logger from the global flags. Interactive frontends
// pass stderr=false since the UI owns the terminal.
func newLogger(prefix string, stderr bool) (*log.Logger, func() error, error) {
	return logging.New(logging.Options{
		Prefix: prefix,
		Level:  flagLogLevel,
		File:   flagLogFile,
		Stderr: stderr,
	})
}

// closeLogger releases the log output, keeping the first error.
func closeLogger(closeFn func() error, err *error) {
	if cerr := closeFn(); cerr != nil && *err == nil {
		*err = fmt.Errorf("closing log: %w", cerr)
	}
}
