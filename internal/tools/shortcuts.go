package tools

import (
	"unicode"

	"golang.org/x/mobile/event/key"
)

// KeyShortcut describes a keyboard combination that selects a tool.
type KeyShortcut struct {
	Rune      rune
	Code      key.Code
	Modifiers key.Modifiers
}

var shortcuts = map[Type]KeyShortcut{
	Brush:   {Rune: 'b', Code: key.CodeB},
	Eraser:  {Rune: 'e', Code: key.CodeE},
	Fill:    {Rune: 'f', Code: key.CodeF},
	Shape:   {Rune: 's', Code: key.CodeS},
	Text:    {Rune: 't', Code: key.CodeT},
	Pipette: {Rune: 'i', Code: key.CodeI},
	Line:    {Rune: 'l', Code: key.CodeL},
	Move:    {Rune: 'm', Code: key.CodeM},
	Zoom:    {Rune: 'z', Code: key.CodeZ},
}

// Shortcut returns the key that selects t.
func Shortcut(t Type) (KeyShortcut, bool) {
	s, ok := shortcuts[t]
	return s, ok
}

// ForKey resolves a key event to the tool it selects. A matching key code
// wins over a matching rune. Events carrying modifiers never select a tool.
func ForKey(e key.Event) (Type, bool) {
	if e.Modifiers != 0 {
		return 0, false
	}
	if e.Code != key.CodeUnknown {
		for _, t := range Types() {
			if shortcuts[t].Code == e.Code {
				return t, true
			}
		}
	}
	r := unicode.ToLower(e.Rune)
	if r == 0 {
		return 0, false
	}
	for _, t := range Types() {
		if shortcuts[t].Rune == r {
			return t, true
		}
	}
	return 0, false
}
