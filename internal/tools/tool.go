// Package tools defines the drawing tools of the editor and the registry that
// builds them.
//
// Every tool satisfies Tool. Which optional calls a tool honours is declared
// up front through Capabilities rather than discovered by type switches, so
// the controller can check a flag before handing a tool a color or a bitmap.
package tools

import (
	"image"
	"image/color"
)

// NoColor is reported by tools that do not paint with a color.
var NoColor = color.RGBA{}

// Capabilities declares what a tool accepts from the controller.
type Capabilities struct {
	// OptionsView is set when the tool has a configurable options panel.
	OptionsView bool
	// AcceptsColor is set when SetColor changes what the tool paints with.
	AcceptsColor bool
	// AcceptsBitmap is set when the tool reads or writes the source bitmap.
	AcceptsBitmap bool
}

// Tool is the capability set shared by every tool.
type Tool interface {
	Type() Type
	Capabilities() Capabilities

	SetColor(c color.RGBA)
	// Color returns the color bound to the tool, or NoColor.
	Color() color.RGBA
	SetBitmap(img *image.RGBA)

	// ResetInternalState drops any in-progress gesture.
	ResetInternalState()
	// ResetOnImageLoaded drops in-progress gestures and anything cached for
	// the previous image.
	ResetOnImageLoaded()

	HandleDown(p image.Point) bool
	HandleMove(p image.Point) bool
	HandleUp(p image.Point) bool
}

// Finisher is implemented by tools that hold work which should be committed
// before the tool is discarded.
type Finisher interface {
	Finish()
}

// Configurable is implemented by tools whose options panel edits Settings.
type Configurable interface {
	Settings() Settings
	ApplySettings(s Settings)
}

// ShapeKind selects what the shape tool draws.
type ShapeKind string

const (
	ShapeRect    ShapeKind = "rect"
	ShapeEllipse ShapeKind = "ellipse"
)

// Settings carries the options-panel values of a tool. Fields a tool does not
// use are ignored.
type Settings struct {
	Width     int
	Tolerance uint8
	TextSize  float64
	Shape     ShapeKind
	Filled    bool
}

// DefaultSettings returns the built-in option values.
func DefaultSettings() Settings {
	return Settings{Width: 4, Tolerance: 32, TextSize: 16, Shape: ShapeRect}
}

// MaxWidth is the widest stroke a tool accepts.
const MaxWidth = 512

func (s Settings) normalize() Settings {
	d := DefaultSettings()
	if s.Width < 1 {
		s.Width = d.Width
	}
	if s.Width > MaxWidth {
		s.Width = MaxWidth
	}
	if s.TextSize <= 0 {
		s.TextSize = d.TextSize
	}
	if s.Shape != ShapeRect && s.Shape != ShapeEllipse {
		s.Shape = d.Shape
	}
	return s
}

type base struct {
	typ    Type
	caps   Capabilities
	color  color.RGBA
	bitmap *image.RGBA
}

func (b *base) Type() Type                 { return b.typ }
func (b *base) Capabilities() Capabilities { return b.caps }

func (b *base) SetColor(c color.RGBA) {
	if b.caps.AcceptsColor {
		b.color = c
	}
}

func (b *base) Color() color.RGBA {
	if !b.caps.AcceptsColor {
		return NoColor
	}
	return b.color
}

func (b *base) SetBitmap(img *image.RGBA) { b.bitmap = img }

// Bitmap returns the image the tool draws onto.
func (b *base) Bitmap() *image.RGBA { return b.bitmap }

func (b *base) ResetInternalState() {}

func (b *base) ResetOnImageLoaded() {}

func (b *base) HandleDown(image.Point) bool { return false }
func (b *base) HandleMove(image.Point) bool { return false }
func (b *base) HandleUp(image.Point) bool   { return false }
