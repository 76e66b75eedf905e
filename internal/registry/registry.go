// Package registry provides a global registry for slot machine presets.
// Presets register themselves in init() functions, allowing the CLI
// to discover and build machines without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/reelsim/internal/slot"
)

// Preset is a named, configurable slot machine.
type Preset interface {
	// ID returns a unique identifier for this preset (e.g., "classic").
	// Used for CLI arguments and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Machine loads the preset configuration and builds the machine.
	// An empty configPath uses the standard config search order.
	Machine(configPath string) (slot.Machine, error)
}

// PresetInfo contains metadata about a registered preset.
type PresetInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a preset.
type Factory func() Preset

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a preset factory to the registry.
// Typically called from a preset's init() function.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: machine %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered presets, sorted by ID.
func List() []PresetInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]PresetInfo, 0, len(factories))
	for id := range factories {
		result = append(result, PresetInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a preset by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Preset, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown machine %q", id)
	}

	return f(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
