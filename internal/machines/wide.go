package machines

import (
	"github.com/vovakirdan/reelsim/internal/config"
	"github.com/vovakirdan/reelsim/internal/registry"
)

// Register the five-reel machine with the registry
func init() {
	registry.Register(config.PresetWide, func() registry.Preset {
		return preset{id: config.PresetWide, title: "Wide 3x5"}
	})
}
