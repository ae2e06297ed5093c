package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// configFile is the file name searched for in every location.
const configFile = "t2048.yaml"

// UserConfigRel is the config path relative to the XDG config directories.
var UserConfigRel = filepath.Join("tui-2048", configFile)

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-2048/t2048.yaml (and
// $XDG_CONFIG_DIRS) -> ./configs/t2048.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations fall through to the next one.
func LoadT2048(customPath string) (T2048Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, nil
	}

	// Try user config directories
	if userCfgPath, err := xdg.SearchConfigFile(UserConfigRel); err == nil {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads, parses and validates one config file.
func loadFile(path string) (T2048Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return T2048Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return cfg, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML on top of the built-in defaults and validates the result.
func parse(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
