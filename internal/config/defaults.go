package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the built-in configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Gravity: GravityConfig{
			FallInterval:     500 * time.Millisecond,
			SoftDropInterval: 50 * time.Millisecond,
			SoftDropHold:     6,
		},
		Render: RenderConfig{
			BlockWidth: 2,
			ShowHelp:   true,
		},
		Window: WindowConfig{
			BlockSize: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
