package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
	windowebiten "github.com/vovakirdan/tui-tetris/internal/platform/window/ebiten"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a desktop window with the board drawn as colored blocks.

Controls:
  Left/Right  - Move
  R/Up        - Rotate
  Down        - Soft drop (while held)
  R/Enter     - Restart (after game over)
  Esc         - Quit

Examples:
  tetris window
  tetris window --scale 20`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 0, "Block size in pixels (default: window.block_size from config)")
}

func runWindow(_ *cobra.Command, _ []string) (err error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagScale > 0 {
		cfg.Window.BlockSize = flagScale
	}

	logger, closeLog, err := newLogger("tetris", false)
	if err != nil {
		return err
	}
	defer closeLogger(closeLog, &err)

	seed := flagSeed
	newSource := func() tetris.VariantSource {
		if seed == 0 {
			return tetris.NewRandSource(time.Now().UnixNano())
		}
		return tetris.NewRandSource(seed)
	}

	session := window.NewSession(cfg.Gravity, time.Now(), newSource, logger)
	layout := window.Layout{BlockSize: cfg.Window.BlockSize}

	if err := windowebiten.Run("Tetris", session, layout); err != nil {
		logger.Error("window exited", "error", err)
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
