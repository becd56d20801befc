package tools

import (
	"fmt"
	"strings"
)

// Type identifies a tool behaviour. The set is closed.
type Type int

const (
	Brush Type = iota
	Eraser
	Fill
	Shape
	Text
	Pipette
	Line
	Move
	Zoom
	typeCount
)

var typeNames = [...]string{
	Brush:   "brush",
	Eraser:  "eraser",
	Fill:    "fill",
	Shape:   "shape",
	Text:    "text",
	Pipette: "pipette",
	Line:    "line",
	Move:    "move",
	Zoom:    "zoom",
}

// aliases maps alternative spellings accepted by ParseType.
var aliases = map[string]Type{
	"color-picker": Pipette,
	"colorpicker":  Pipette,
	"bucket":       Fill,
	"pen":          Brush,
	"hand":         Move,
}

func (t Type) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// Valid reports whether t is one of the enumerated types.
func (t Type) Valid() bool { return t >= 0 && t < typeCount }

// Types returns every tool type in declaration order.
func Types() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// ParseType resolves a tool name, ignoring case.
func ParseType(s string) (Type, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for t, n := range typeNames {
		if n == name {
			return Type(t), nil
		}
	}
	if t, ok := aliases[name]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownType, s)
}
