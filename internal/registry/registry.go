// Package registry maps mode IDs to game constructors. Game packages add
// their modes from init, so the CLI and terminal front ends only need a
// blank import to offer them.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fruit-slice/internal/core"
	"github.com/vovakirdan/fruit-slice/internal/progress"
)

// Game is a mode the platform can drive. Implementations are pure simulation:
// they never read the terminal, sleep, or touch storage on their own.
type Game interface {
	// ID names the mode in CLI arguments and score rows, e.g. "fruitslice".
	ID() string
	Title() string

	// Reset starts a fresh round. It runs before the first Step and again
	// on every restart.
	Reset(cfg core.RuntimeConfig)

	// Step advances exactly one tick using the actions and pointer sample
	// gathered since the previous tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the round into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// ProgressionAware games report slices, misses and final scores to a
// player's progression store.
type ProgressionAware interface {
	AttachProgression(p *progress.Store)
}

// RoundEnder games settle a round the player abandons midway.
type RoundEnder interface {
	EndRound()
}

// Describer games supply a one-line summary for menus and listings.
type Describer interface {
	Blurb() string
}

// GameInfo describes one registered mode.
type GameInfo struct {
	ID    string
	Title string
	Blurb string
}

// Factory builds a fresh game for one round loop.
type Factory func() Game

type entry struct {
	build Factory
	info  GameInfo
}

var (
	mu    sync.RWMutex
	modes = map[string]entry{}
)

// Register adds a mode. Registering the same ID twice panics.
func Register(id string, f Factory) {
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Blurb = d.Blurb()
	}

	mu.Lock()
	defer mu.Unlock()
	if _, dup := modes[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	modes[id] = entry{build: f, info: info}
}

// List returns every mode ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(modes))
	for _, e := range modes {
		infos = append(infos, e.info)
	}
	mu.RUnlock()

	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Lookup returns the metadata for id without building a game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := modes[id]
	return e.info, ok
}

// Create builds a new game for id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := modes[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
