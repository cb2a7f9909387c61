package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(DefaultYAML(), "embedded default")
	if err != nil {
		t.Fatalf("embedded default should parse: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gravity.FallInterval != 500*time.Millisecond {
		t.Errorf("FallInterval = %s, expected 500ms", cfg.Gravity.FallInterval)
	}
}

func TestLoadUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	dir := filepath.Join(home, ".tetris")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	data := "gravity:\n  fall_interval: 300ms\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Gravity.FallInterval != 300*time.Millisecond {
		t.Errorf("FallInterval = %s, expected 300ms from user config", cfg.Gravity.FallInterval)
	}
}

func TestLoadCustomPartialOverride(t *testing.T) {
	path := writeConfig(t, `
gravity:
  soft_drop_interval: 20ms
render:
  block_width: 1
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%s) error: %v", path, err)
	}

	if cfg.Gravity.SoftDropInterval != 20*time.Millisecond {
		t.Errorf("SoftDropInterval = %s, expected 20ms", cfg.Gravity.SoftDropInterval)
	}
	if cfg.Render.BlockWidth != 1 {
		t.Errorf("BlockWidth = %d, expected 1", cfg.Render.BlockWidth)
	}
	// Untouched keys keep their defaults
	if cfg.Gravity.FallInterval != 500*time.Millisecond {
		t.Errorf("FallInterval = %s, expected default 500ms", cfg.Gravity.FallInterval)
	}
	if cfg.Window.BlockSize != 30 {
		t.Errorf("BlockSize = %d, expected default 30", cfg.Window.BlockSize)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad duration",
			content: "gravity:\n  fall_interval: soon\n",
			wantErr: "failed to parse config",
		},
		{
			name:    "zero interval",
			content: "gravity:\n  fall_interval: 0s\n",
			wantErr: "gravity.fall_interval must be positive",
		},
		{
			name:    "block width too large",
			content: "render:\n  block_width: 9\n",
			wantErr: "render.block_width",
		},
		{
			name:    "not yaml",
			content: "gravity: [unterminated\n",
			wantErr: "failed to parse config",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := DefaultTetrisConfig()
	cfg.Gravity.SoftDropHold = 0
	cfg.Window.BlockSize = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"soft_drop_hold", "window.block_size"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestMarshalRoundTripsDurations(t *testing.T) {
	data, err := Marshal(DefaultTetrisConfig())
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if !strings.Contains(string(data), "fall_interval: 500ms") {
		t.Errorf("marshaled config should use duration strings, got:\n%s", data)
	}
}
