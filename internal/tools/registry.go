package tools

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrUnknownType is returned for a Type outside the enumerated set.
var ErrUnknownType = errors.New("unknown tool type")

// Env is what a factory may bind a new tool to.
type Env struct {
	Settings Settings
	// Picked delivers colors produced by the tool itself.
	Picked func(color.RGBA)
}

// Factory builds a fresh tool.
type Factory func(env Env) Tool

// Registry maps tool types to factories and per-type option defaults.
type Registry struct {
	factories map[Type]Factory
	settings  map[Type]Settings
}

// NewRegistry returns a registry with every built-in tool registered.
func NewRegistry() *Registry {
	r := &Registry{
		factories: make(map[Type]Factory, typeCount),
		settings:  make(map[Type]Settings, typeCount),
	}
	r.Register(Brush, func(env Env) Tool { return newBrush(env.Settings) })
	r.Register(Eraser, func(env Env) Tool { return newEraser(env.Settings) })
	r.Register(Fill, func(env Env) Tool { return newFill(env.Settings) })
	r.Register(Shape, func(env Env) Tool { return newShape(env.Settings) })
	r.Register(Text, func(env Env) Tool { return newText(env.Settings) })
	r.Register(Pipette, func(env Env) Tool { return newPipette(env.Picked) })
	r.Register(Line, func(env Env) Tool { return newLine(env.Settings) })
	r.Register(Move, func(Env) Tool { return newMove() })
	r.Register(Zoom, func(Env) Tool { return newZoom() })
	return r
}

// Register installs f as the factory for t, replacing any previous one.
func (r *Registry) Register(t Type, f Factory) {
	r.factories[t] = f
}

// SetSettings sets the option values new tools of type t start with.
func (r *Registry) SetSettings(t Type, s Settings) {
	r.settings[t] = s.normalize()
}

// Settings returns the option values new tools of type t start with.
func (r *Registry) Settings(t Type) Settings {
	if s, ok := r.settings[t]; ok {
		return s
	}
	return DefaultSettings()
}

// Create builds a fresh tool of type t.
func (r *Registry) Create(t Type, picked func(color.RGBA)) (Tool, error) {
	f, ok := r.factories[t]
	if !t.Valid() || !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownType, t)
	}
	tool := f(Env{Settings: r.Settings(t), Picked: picked})
	if tool == nil || tool.Type() != t {
		return nil, fmt.Errorf("factory for %v returned %v", t, tool)
	}
	return tool, nil
}
