package machines

import (
	"github.com/vovakirdan/reelsim/internal/config"
	"github.com/vovakirdan/reelsim/internal/registry"
)

// Register the classic 3x3 machine with the registry
func init() {
	registry.Register(config.PresetClassic, func() registry.Preset {
		return preset{id: config.PresetClassic, title: "Classic 3x3"}
	})
}
