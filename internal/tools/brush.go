package tools

import (
	"image"
	"image/color"

	"github.com/example/easel/internal/canvas"
)

// BrushTool paints freehand strokes.
type BrushTool struct {
	base
	settings Settings
	stroking bool
	last     image.Point
	// Points holds the stroke being drawn.
	Points []image.Point
}

var (
	_ Tool         = (*BrushTool)(nil)
	_ Configurable = (*BrushTool)(nil)
)

func newBrush(s Settings) *BrushTool {
	return &BrushTool{
		base:     base{typ: Brush, caps: Capabilities{OptionsView: true, AcceptsColor: true, AcceptsBitmap: true}},
		settings: s,
	}
}

func (b *BrushTool) Settings() Settings       { return b.settings }
func (b *BrushTool) ApplySettings(s Settings) { b.settings = s.normalize() }

// Stroking reports whether a stroke is in progress.
func (b *BrushTool) Stroking() bool { return b.stroking }

func (b *BrushTool) HandleDown(p image.Point) bool {
	b.stroking = true
	b.last = p
	b.Points = append(b.Points[:0], p)
	b.paint(p, p)
	return true
}

func (b *BrushTool) HandleMove(p image.Point) bool {
	if !b.stroking {
		return false
	}
	b.paint(b.last, p)
	b.last = p
	b.Points = append(b.Points, p)
	return true
}

func (b *BrushTool) HandleUp(p image.Point) bool {
	if !b.stroking {
		return false
	}
	b.paint(b.last, p)
	b.stroking = false
	b.Points = nil
	return true
}

func (b *BrushTool) ResetInternalState() {
	b.stroking = false
	b.Points = nil
}

func (b *BrushTool) ResetOnImageLoaded() { b.ResetInternalState() }

func (b *BrushTool) paint(from, to image.Point) {
	canvas.DrawLine(b.bitmap, from.X, from.Y, to.X, to.Y, b.strokeColor(), b.settings.Width)
}

func (b *BrushTool) strokeColor() color.RGBA {
	if b.typ == Eraser {
		return color.RGBA{}
	}
	return b.color
}

// EraserTool clears pixels to transparent. It has no color of its own and no
// options panel.
type EraserTool struct {
	BrushTool
}

var _ Tool = (*EraserTool)(nil)

func newEraser(s Settings) *EraserTool {
	e := &EraserTool{BrushTool: *newBrush(s)}
	e.typ = Eraser
	e.caps = Capabilities{AcceptsBitmap: true}
	return e
}
