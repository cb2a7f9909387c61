package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/H/A    - Move left
  Right/L/D   - Move right
  Up/R/W/K    - Rotate
  Down/S/J    - Soft drop
  P           - Pause
  R/Enter     - Restart (after game over)
  Esc/Q       - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml --log-file /tmp/tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger("tetris", false)
	if err != nil {
		return err
	}
	defer closeLogger(closeLog, &err)

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	err = tui.Run(tetris.New(cfg), rc, tui.Options{
		Logger:   logger,
		ShowHelp: cfg.Render.ShowHelp,
	})
	if err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
