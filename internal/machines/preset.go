// Package machines registers the built-in slot machine presets.
// Import it for side effects:
//
//	import _ "github.com/vovakirdan/reelsim/internal/machines"
package machines

import (
	"fmt"

	"github.com/vovakirdan/reelsim/internal/config"
	"github.com/vovakirdan/reelsim/internal/slot"
)

// preset is a machine backed by a YAML configuration with embedded defaults.
type preset struct {
	id    string
	title string
}

func (p preset) ID() string    { return p.id }
func (p preset) Title() string { return p.title }

// Machine loads the preset configuration and converts it.
func (p preset) Machine(configPath string) (slot.Machine, error) {
	cfg, err := config.LoadMachine(configPath, p.id)
	if err != nil {
		return slot.Machine{}, err
	}

	m, err := cfg.Machine()
	if err != nil {
		return slot.Machine{}, fmt.Errorf("machine %s: %w", p.id, err)
	}
	return m, nil
}
