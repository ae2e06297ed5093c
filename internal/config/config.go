// Package config provides YAML-based configuration loading and difficulty
// presets for the 2048 game.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MaxWidth is the largest board side length the front end can draw.
const MaxWidth = 8

// T2048Config contains all configuration for the 2048 game.
type T2048Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Keys  KeysConfig  `yaml:"keys"`
}

// BoardConfig overrides the board of the selected variant.
// Zero values keep the variant's own setting.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Target int `yaml:"target"`
}

// SpawnConfig controls new tiles.
type SpawnConfig struct {
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is 4 instead of 2
}

// KeysConfig lists the key names bound to each action.
// Names follow Bubble Tea's key strings ("up", "w", "ctrl+c").
// An empty list keeps the built-in binding.
type KeysConfig struct {
	Up      []string `yaml:"up"`
	Down    []string `yaml:"down"`
	Left    []string `yaml:"left"`
	Right   []string `yaml:"right"`
	Undo    []string `yaml:"undo"`
	Pause   []string `yaml:"pause"`
	Restart []string `yaml:"restart"`
	Quit    []string `yaml:"quit"`
}

// Validate checks the configuration for values the game cannot play with.
func (c T2048Config) Validate() error {
	if w := c.Board.Width; w != 0 && (w < 2 || w > MaxWidth) {
		return fmt.Errorf("%w: board.width %d outside 2..%d", ErrInvalidConfig, w, MaxWidth)
	}
	if t := c.Board.Target; t != 0 && (t < 4 || t&(t-1) != 0) {
		return fmt.Errorf("%w: board.target %d is not a power of two >= 4", ErrInvalidConfig, t)
	}
	if p := c.Spawn.FourProbability; p < 0 || p > 1 {
		return fmt.Errorf("%w: spawn.four_probability %g outside [0, 1]", ErrInvalidConfig, p)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
var Presets = []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
}

// FourProbabilityForPreset returns the spawn.four_probability for a preset.
func FourProbabilityForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.05
	case DifficultyHard:
		return 0.25
	default:
		return 0.10
	}
}

// HasCustomSpawn reports whether spawn.four_probability differs from the
// built-in default. Front ends skip the difficulty picker for such configs so
// the file's value is played as written.
func (c T2048Config) HasCustomSpawn() bool {
	return c.Spawn.FourProbability != DefaultT2048Config().Spawn.FourProbability
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *T2048Config, preset DifficultyPreset) {
	cfg.Spawn.FourProbability = FourProbabilityForPreset(preset)
}
