// Package registry provides a global registry of board generators.
// Generators register themselves in init() functions, allowing the config
// and command layers to pick one by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/hextiles/internal/board"
	"github.com/vovakirdan/hextiles/internal/hex"
	"github.com/vovakirdan/hextiles/internal/tile"
)

// Generator builds a fresh board of region p. gen supplies the tile draws
// and seed drives any extra randomness the generator needs.
type Generator func(p hex.Params, mode hex.OrthoMode, gen tile.Generator, seed int64) (*board.Board, error)

// GeneratorInfo contains metadata about a registered generator.
type GeneratorInfo struct {
	Name        string
	Description string
}

type entry struct {
	gen         Generator
	description string
}

var (
	generators = make(map[string]entry)
	mu         sync.RWMutex
)

// Register adds a generator to the registry.
// Panics if a generator with the same name is already registered.
func Register(name, description string, g Generator) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := generators[name]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", name))
	}
	generators[name] = entry{gen: g, description: description}
}

// List returns information about all registered generators, sorted by name.
func List() []GeneratorInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GeneratorInfo, 0, len(generators))
	for name, e := range generators {
		result = append(result, GeneratorInfo{
			Name:        name,
			Description: e.description,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Get returns the generator registered under name.
func Get(name string) (Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := generators[name]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", name)
	}
	return e.gen, nil
}

// Exists checks if a generator with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := generators[name]
	return ok
}

func init() {
	Register("weighted", "every cell drawn independently from the weights", func(p hex.Params, mode hex.OrthoMode, gen tile.Generator, _ int64) (*board.Board, error) {
		return board.Generate(p, mode, gen)
	})
	Register("noise", "elevations follow an OpenSimplex noise field", board.GenerateNoise)
}
