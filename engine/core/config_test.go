package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kiln.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
name = "demo"
start_width = 800
start_height = 600
log_level = "debug"
workers = 3

[assets]
dir = "data"
hot_reload = true

[input]
release_on_focus_loss = true
`)
		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "demo" || cfg.StartWidth != 800 || cfg.StartHeight != 600 {
			t.Errorf("unexpected window config: %+v", cfg)
		}
		if cfg.StartPosX != 100 {
			t.Errorf("expected default start_pos_x 100, got %d", cfg.StartPosX)
		}
		if !cfg.Assets.HotReload || cfg.Assets.Dir != "data" {
			t.Errorf("unexpected assets config: %+v", cfg.Assets)
		}
		if !cfg.Input.ReleaseOnFocusLoss {
			t.Error("expected release_on_focus_loss to be set")
		}
		if cfg.WorkerCount() != 3 {
			t.Errorf("expected 3 workers, got %d", cfg.WorkerCount())
		}
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		path := writeConfig(t, `nmae = "typo"`)
		if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("expected ErrInvalidConfig, got %v", err)
		}
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		cases := map[string]string{
			"zero width":    `start_width = 0`,
			"bad log level": `log_level = "verbose"`,
			"neg workers":   `workers = -1`,
			"empty name":    `name = ""`,
		}
		for name, body := range cases {
			t.Run(name, func(t *testing.T) {
				if _, err := LoadConfig(writeConfig(t, body)); !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
			})
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("save and load", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Name = "saved"
		cfg.ClearColor = [4]float32{1, 0, 0, 1}
		path := filepath.Join(t.TempDir(), "out.toml")
		if err := cfg.Save(path); err != nil {
			t.Fatalf("save: %v", err)
		}
		loaded, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if loaded.Name != "saved" || loaded.ClearColor != cfg.ClearColor {
			t.Errorf("unexpected config after reload: %+v", loaded)
		}
	})
}

func TestWorkerCountDefaultsToProcs(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.WorkerCount() < 1 {
		t.Errorf("expected at least one worker, got %d", cfg.WorkerCount())
	}
}
