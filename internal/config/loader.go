package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadMachine loads the configuration for a machine preset.
// Search order: customPath -> ~/.reelsim/configs/<preset>.yaml ->
// ./configs/<preset>.yaml -> embedded default -> hardcoded default.
//
// Files are decoded over the preset defaults, so a file only needs the keys
// it changes. A symbols list replaces the default list as a whole.
func LoadMachine(customPath, preset string) (MachineConfig, error) {
	base, known := DefaultConfig(preset)

	// Try custom path first
	if customPath != "" {
		return readFile(customPath, base)
	}

	if !known {
		return MachineConfig{}, fmt.Errorf("config: unknown preset %q", preset)
	}

	filename := preset + ".yaml"

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if cfg, err := readFile(userCfgPath, base); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := readFile(filepath.Join("configs", filename), base); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg := base
	cfg.Symbols = nil
	if err := yaml.Unmarshal(GetDefaultYAML(preset), &cfg); err != nil {
		return base, nil // Fallback to hardcoded if embed fails
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = base.Symbols
	}
	return cfg, nil
}

// readFile decodes path over base.
func readFile(path string, base MachineConfig) (MachineConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := base
	cfg.Symbols = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if len(cfg.Symbols) == 0 {
		cfg.Symbols = base.Symbols
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".reelsim", "configs", filename)
}
