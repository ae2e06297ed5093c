package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*T2048Config)
		wantErr bool
	}{
		{"defaults", func(*T2048Config) {}, false},
		{"variant width", func(c *T2048Config) { c.Board.Width = 0 }, false},
		{"width 5", func(c *T2048Config) { c.Board.Width = 5 }, false},
		{"width too small", func(c *T2048Config) { c.Board.Width = 1 }, true},
		{"width too large", func(c *T2048Config) { c.Board.Width = MaxWidth + 1 }, true},
		{"negative width", func(c *T2048Config) { c.Board.Width = -4 }, true},
		{"target 4096", func(c *T2048Config) { c.Board.Target = 4096 }, false},
		{"target not power of two", func(c *T2048Config) { c.Board.Target = 1000 }, true},
		{"target too small", func(c *T2048Config) { c.Board.Target = 2 }, true},
		{"negative target", func(c *T2048Config) { c.Board.Target = -2048 }, true},
		{"probability zero", func(c *T2048Config) { c.Spawn.FourProbability = 0 }, false},
		{"probability one", func(c *T2048Config) { c.Spawn.FourProbability = 1 }, false},
		{"probability above one", func(c *T2048Config) { c.Spawn.FourProbability = 1.5 }, true},
		{"negative probability", func(c *T2048Config) { c.Spawn.FourProbability = -0.1 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := parse(defaultT2048YAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	want := DefaultT2048Config()
	if cfg.Board != want.Board || cfg.Spawn != want.Spawn {
		t.Errorf("embedded = %+v, builtin = %+v", cfg, want)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "t2048.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCustomPath(t *testing.T) {
	path := writeConfig(t, `
board:
  width: 5
spawn:
  four_probability: 0.25
keys:
  up: ["w"]
  undo: ["backspace", "u"]
`)

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() error = %v", err)
	}
	if cfg.Board.Width != 5 {
		t.Errorf("Board.Width = %d, want 5", cfg.Board.Width)
	}
	if cfg.Board.Target != 0 {
		t.Errorf("Board.Target = %d, want 0 (variant default)", cfg.Board.Target)
	}
	if cfg.Spawn.FourProbability != 0.25 {
		t.Errorf("FourProbability = %g, want 0.25", cfg.Spawn.FourProbability)
	}
	if len(cfg.Keys.Undo) != 2 || cfg.Keys.Undo[0] != "backspace" {
		t.Errorf("Keys.Undo = %v", cfg.Keys.Undo)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "board:\n  target: 1024\n")

	cfg, err := LoadT2048(path)
	if err != nil {
		t.Fatalf("LoadT2048() error = %v", err)
	}
	if cfg.Spawn.FourProbability != DefaultT2048Config().Spawn.FourProbability {
		t.Errorf("FourProbability = %g, want default", cfg.Spawn.FourProbability)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadT2048(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("err = %v, want ErrNotExist", err)
		}
	})

	t.Run("bad yaml", func(t *testing.T) {
		_, err := LoadT2048(writeConfig(t, "board: [1, 2"))
		if err == nil {
			t.Error("expected parse error")
		}
	})

	t.Run("invalid values", func(t *testing.T) {
		_, err := LoadT2048(writeConfig(t, "board:\n  width: 12\n"))
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("err = %v, want ErrInvalidConfig", err)
		}
	})
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadT2048("")
	if err != nil {
		t.Fatalf("LoadT2048() error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("fallback config invalid: %v", err)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset DifficultyPreset
		want   float64
	}{
		{DifficultyEasy, 0.05},
		{DifficultyNormal, 0.10},
		{DifficultyHard, 0.25},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			p, err := ParsePreset(string(tt.preset))
			if err != nil {
				t.Fatal(err)
			}
			cfg := DefaultT2048Config()
			ApplyPreset(&cfg, p)
			if cfg.Spawn.FourProbability != tt.want {
				t.Errorf("FourProbability = %g, want %g", cfg.Spawn.FourProbability, tt.want)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestHasCustomSpawn(t *testing.T) {
	tests := []struct {
		name string
		prob float64
		want bool
	}{
		{"default", 0.10, false},
		{"easy odds written out", 0.05, true},
		{"never fours", 0, true},
		{"always fours", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultT2048Config()
			cfg.Spawn.FourProbability = tt.prob
			if got := cfg.HasCustomSpawn(); got != tt.want {
				t.Errorf("HasCustomSpawn() with %g = %v, want %v", tt.prob, got, tt.want)
			}
		})
	}
}
