package config

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/tools"
)

// Notify holds notification settings.
type Notify struct {
	Load bool
	Save bool
	Copy bool
}

// Config holds the application configuration.
type Config struct {
	DefaultTool tools.Type
	Color       color.RGBA
	SaveDir     string
	StateDB     string
	Notify      Notify
	Tools       map[tools.Type]tools.Settings
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		DefaultTool: tools.Brush,
		Color:       palette.Default,
		Tools:       make(map[tools.Type]tools.Settings),
	}
}

// Apply installs the configured per-tool settings into reg.
func (c *Config) Apply(reg *tools.Registry) {
	for t, s := range c.Tools {
		reg.SetSettings(t, s)
	}
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "default_tool = %s\n", c.DefaultTool)
	fmt.Fprintf(&sb, "color = %s\n", palette.Hex(c.Color))
	if c.SaveDir != "" {
		fmt.Fprintf(&sb, "save_dir = %s\n", c.SaveDir)
	}
	if c.StateDB != "" {
		fmt.Fprintf(&sb, "state_db = %s\n", c.StateDB)
	}
	sb.WriteString("\n")

	sb.WriteString("[notify]\n")
	fmt.Fprintf(&sb, "load = %v\n", c.Notify.Load)
	fmt.Fprintf(&sb, "save = %v\n", c.Notify.Save)
	fmt.Fprintf(&sb, "copy = %v\n", c.Notify.Copy)
	sb.WriteString("\n")

	// Sort for deterministic output
	var types []tools.Type
	for t := range c.Tools {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })

	for _, t := range types {
		s := c.Tools[t]
		fmt.Fprintf(&sb, "[tool.%s]\n", t)
		fmt.Fprintf(&sb, "width = %d\n", s.Width)
		fmt.Fprintf(&sb, "tolerance = %d\n", s.Tolerance)
		fmt.Fprintf(&sb, "text_size = %g\n", s.TextSize)
		fmt.Fprintf(&sb, "shape = %s\n", s.Shape)
		fmt.Fprintf(&sb, "filled = %v\n", s.Filled)
		sb.WriteString("\n")
	}

	return sb.String()
}
