package config

import (
	_ "embed"
	"slices"
)

// Preset names with embedded defaults.
const (
	PresetClassic = "classic"
	PresetWide    = "wide"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/wide.yaml
var defaultWideYAML []byte

// DefaultClassicConfig returns the default classic 3x3 configuration.
func DefaultClassicConfig() MachineConfig {
	return MachineConfig{
		Grid:  GridConfig{Rows: 3, Cols: 3},
		Lines: LinesConfig{Max: 3},
		Bet:   BetConfig{Min: 1, Max: 100},
		Symbols: []SymbolConfig{
			{Symbol: "A", Count: 2, Multiplier: 5},
			{Symbol: "B", Count: 4, Multiplier: 4},
			{Symbol: "C", Count: 6, Multiplier: 3},
			{Symbol: "D", Count: 8, Multiplier: 2},
		},
	}
}

// DefaultWideConfig returns the default five-reel configuration.
func DefaultWideConfig() MachineConfig {
	return MachineConfig{
		Grid:  GridConfig{Rows: 3, Cols: 5},
		Lines: LinesConfig{Max: 3},
		Bet:   BetConfig{Min: 1, Max: 50},
		Symbols: []SymbolConfig{
			{Symbol: "7", Count: 2, Multiplier: 50},
			{Symbol: "A", Count: 4, Multiplier: 20},
			{Symbol: "B", Count: 6, Multiplier: 10},
			{Symbol: "C", Count: 8, Multiplier: 5},
			{Symbol: "D", Count: 10, Multiplier: 3},
		},
	}
}

// DefaultConfig returns the hardcoded configuration for a preset.
// The second result is false for unknown presets.
func DefaultConfig(preset string) (MachineConfig, bool) {
	switch preset {
	case PresetClassic:
		return DefaultClassicConfig(), true
	case PresetWide:
		return DefaultWideConfig(), true
	default:
		return MachineConfig{}, false
	}
}

// GetDefaultYAML returns the embedded default YAML for a preset.
func GetDefaultYAML(preset string) []byte {
	switch preset {
	case PresetClassic:
		return defaultClassicYAML
	case PresetWide:
		return defaultWideYAML
	default:
		return nil
	}
}

// Presets lists the presets with embedded defaults, sorted.
func Presets() []string {
	p := []string{PresetClassic, PresetWide}
	slices.Sort(p)
	return p
}
