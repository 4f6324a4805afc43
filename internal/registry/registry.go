// Package registry provides a global registry of best score backends.
// Backends register themselves in init() functions, allowing the CLI to
// pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Backend persists the best score of one game.
type Backend interface {
	// GetBest returns the stored best score, 0 if none.
	GetBest() (int, error)

	// SetBest replaces the stored best score.
	SetBest(score int) error

	// Close releases the backend's resources.
	Close() error
}

// Options are passed to a backend factory. Each backend uses the fields
// that apply to it.
type Options struct {
	Path    string // database file
	AppName string // application data directory name
	GameID  string // key of the game's records
}

// BackendInfo contains metadata about a registered backend.
type BackendInfo struct {
	Name        string
	Description string
}

// Factory opens a backend.
type Factory func(opts Options) (Backend, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a backend factory to the registry.
// Typically called from a backend's init() function.
// Panics if a backend with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: backend %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered backends, sorted by name.
func List() []BackendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]BackendInfo, 0, len(factories))
	for name := range factories {
		result = append(result, BackendInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Open opens a backend by name.
// Returns an error if the name is not registered or the factory fails.
func Open(name string, opts Options) (Backend, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown backend %q", name)
	}

	b, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: open %s: %w", name, err)
	}
	return b, nil
}

// Exists checks if a backend with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
