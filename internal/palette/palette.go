// Package palette holds the named drawing colors offered by the color picker
// and parses the color specs accepted by the config file and the editor.
package palette

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"sync"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Entry is a palette color annotated with its display name.
type Entry struct {
	Name  string
	Color color.RGBA
}

var (
	mu      sync.RWMutex
	entries = []Entry{
		{"Black", color.RGBA{0, 0, 0, 255}},
		{"White", color.RGBA{255, 255, 255, 255}},
		{"Red", color.RGBA{255, 0, 0, 255}},
		{"Lime", color.RGBA{0, 255, 0, 255}},
		{"Blue", color.RGBA{0, 0, 255, 255}},
		{"Yellow", color.RGBA{255, 255, 0, 255}},
		{"Cyan", color.RGBA{0, 255, 255, 255}},
		{"Magenta", color.RGBA{255, 0, 255, 255}},
		{"Maroon", color.RGBA{128, 0, 0, 255}},
		{"Green", color.RGBA{0, 128, 0, 255}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"Olive", color.RGBA{128, 128, 0, 255}},
		{"Teal", color.RGBA{0, 128, 128, 255}},
		{"Purple", color.RGBA{128, 0, 128, 255}},
		{"Silver", color.RGBA{192, 192, 192, 255}},
		{"Gray", color.RGBA{128, 128, 128, 255}},
	}
)

// Default is the color a fresh session starts with.
var Default = color.RGBA{0, 0, 0, 255}

// Entries returns a copy of the palette.
func Entries() []Entry {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Ensure makes sure col is present in the palette and returns its index.
func Ensure(col color.RGBA, name string) int {
	mu.Lock()
	defer mu.Unlock()
	for idx, existing := range entries {
		if existing.Color == col {
			if name != "" && existing.Name == "" {
				entries[idx].Name = name
			}
			return idx
		}
	}
	if name == "" {
		name = Hex(col)
	}
	entries = append(entries, Entry{Name: name, Color: col})
	return len(entries) - 1
}

// Lookup returns the palette color with the given name, ignoring case.
func Lookup(name string) (color.RGBA, bool) {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range entries {
		if strings.EqualFold(e.Name, name) {
			return e.Color, true
		}
	}
	return color.RGBA{}, false
}

// Parse accepts a palette name, an SVG color name, #RGB, #RRGGBB or
// #RRGGBBAA.
func Parse(s string) (color.RGBA, error) {
	spec := strings.ToLower(strings.TrimSpace(s))
	if spec == "" {
		return color.RGBA{}, fmt.Errorf("color cannot be empty")
	}
	if c, ok := Lookup(spec); ok {
		return c, nil
	}
	if c, ok := colornames.Map[spec]; ok {
		return c, nil
	}
	if !strings.HasPrefix(spec, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	alpha := uint8(255)
	if len(spec) == 9 {
		a, err := strconv.ParseUint(spec[7:9], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q", s)
		}
		alpha = uint8(a)
		spec = spec[:7]
	}
	c, err := colorful.Hex(spec)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.RGBA) string {
	base := strings.ToUpper(colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex())
	if c.A == 255 {
		return base
	}
	return fmt.Sprintf("%s%02X", base, c.A)
}

// Name returns the palette name for c, or its hex form.
func Name(c color.RGBA) string {
	mu.RLock()
	defer mu.RUnlock()
	for _, e := range entries {
		if e.Color == c {
			return e.Name
		}
	}
	return Hex(c)
}
