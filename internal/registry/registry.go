// Package registry provides a global registry for game frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/neonflap/internal/core"
	"github.com/vovakirdan/neonflap/internal/games/flappy"
)

// ErrUnknownFrontend is returned (wrapped) by Create for unregistered IDs.
var ErrUnknownFrontend = errors.New("unknown frontend")

// Options is everything a frontend needs to play one run.
type Options struct {
	Runtime core.RuntimeConfig
	Palette core.Palette
	Logger  *log.Logger        // Never nil after Normalize
	RunID   string             // Attached to log lines; generated when empty
	Sinks   []flappy.EventSink // Extra event listeners such as audio
}

// Normalize fills in defaults for unset fields.
func (o Options) Normalize() Options {
	if o.Runtime.TickRate <= 0 || o.Runtime.ScreenW <= 0 || o.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		def.Seed = o.Runtime.Seed
		o.Runtime = def
	}
	if o.Palette == (core.Palette{}) {
		o.Palette = core.DefaultPalette()
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// LoopOptions converts the options into flappy loop options.
func (o Options) LoopOptions() []flappy.LoopOption {
	opts := []flappy.LoopOption{flappy.WithLogger(o.Logger), flappy.WithRunID(o.RunID)}
	for _, s := range o.Sinks {
		opts = append(opts, flappy.WithEventSink(s))
	}
	return opts
}

// Frontend presents a run to the player and feeds their input back to it.
// Frontends own the tick clock; the game logic stays in package flappy.
type Frontend interface {
	// ID returns a unique identifier for this frontend (e.g., "tui", "term").
	// Used for CLI arguments.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays a single run until it finishes or ctx is cancelled and
	// returns the final state.
	Run(ctx context.Context, opts Options) (core.GameState, error)
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Typically called from a frontend's init() function.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownFrontend, id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
