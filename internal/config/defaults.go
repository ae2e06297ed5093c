package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the built-in configuration.
// It matches defaults/t2048.yaml and is used if the embedded file cannot be
// parsed.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Spawn: SpawnConfig{
			FourProbability: 0.10,
		},
	}
}
