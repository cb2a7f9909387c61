// Package config provides YAML-based configuration loading for the game and
// its frontends.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all tunable settings.
type TetrisConfig struct {
	Gravity GravityConfig `yaml:"gravity"`
	Render  RenderConfig  `yaml:"render"`
	Window  WindowConfig  `yaml:"window"`
}

// GravityConfig defines the fall-interval policy applied by frontends.
type GravityConfig struct {
	FallInterval     time.Duration `yaml:"fall_interval"`
	SoftDropInterval time.Duration `yaml:"soft_drop_interval"`
	SoftDropHold     int           `yaml:"soft_drop_hold"` // ticks
}

// RenderConfig defines terminal rendering parameters.
type RenderConfig struct {
	BlockWidth int  `yaml:"block_width"`
	ShowHelp   bool `yaml:"show_help"`
}

// WindowConfig defines parameters for the windowed frontend.
type WindowConfig struct {
	BlockSize int `yaml:"block_size"`
}

// Validate reports every out-of-range setting.
func (c TetrisConfig) Validate() error {
	var errs []error
	if c.Gravity.FallInterval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.fall_interval must be positive, got %s", c.Gravity.FallInterval))
	}
	if c.Gravity.SoftDropInterval <= 0 {
		errs = append(errs, fmt.Errorf("gravity.soft_drop_interval must be positive, got %s", c.Gravity.SoftDropInterval))
	}
	if c.Gravity.SoftDropHold < 1 {
		errs = append(errs, fmt.Errorf("gravity.soft_drop_hold must be at least 1, got %d", c.Gravity.SoftDropHold))
	}
	if c.Render.BlockWidth < 1 || c.Render.BlockWidth > 4 {
		errs = append(errs, fmt.Errorf("render.block_width must be within 1..4, got %d", c.Render.BlockWidth))
	}
	if c.Window.BlockSize < 1 {
		errs = append(errs, fmt.Errorf("window.block_size must be at least 1, got %d", c.Window.BlockSize))
	}
	return errors.Join(errs...)
}
