// Package registry maps variant IDs to game factories.
// Variants register themselves in init() functions so the platform can
// list and start them without importing game packages directly.
package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/vovakirdan/lightsout/internal/core"
)

// ErrUnknownVariant is returned by Create for an unregistered ID.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Game is what the platform drives. Implementations hold pure logic and
// never import Bubble Tea; the platform maps input, runs the tick loop and
// paints the screen.
type Game interface {
	// ID returns the variant identifier (e.g. "classic"), used on the
	// command line and as the score key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a new session with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one tick with the input collected since
	// the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst.
	Render(dst *core.Screen)

	// State returns score and pause flags.
	State() core.GameState
}

// Resizer is implemented by games that can follow a terminal resize
// without restarting. Games that don't implement it are Reset instead.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered variant.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	order     []string
	mu        sync.RWMutex
)

// Register adds a factory under id. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
	order = append(order, id)
}

// List returns every registered variant in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(order))
	for _, id := range order {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	return result
}

// Create instantiates the variant registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
