package tools

import (
	"image"

	"github.com/example/easel/internal/canvas"
)

// MoveTool pans the view over the bitmap.
type MoveTool struct {
	base
	anchor *image.Point
	// Offset is the accumulated pan in image coordinates.
	Offset image.Point
}

var _ Tool = (*MoveTool)(nil)

func newMove() *MoveTool {
	return &MoveTool{base: base{typ: Move}}
}

func (m *MoveTool) HandleDown(p image.Point) bool {
	m.anchor = &p
	return true
}

func (m *MoveTool) HandleMove(p image.Point) bool {
	if m.anchor == nil {
		return false
	}
	m.Offset = m.Offset.Add(p.Sub(*m.anchor))
	m.anchor = &p
	return true
}

func (m *MoveTool) HandleUp(p image.Point) bool {
	if !m.HandleMove(p) {
		return false
	}
	m.anchor = nil
	return true
}

func (m *MoveTool) ResetInternalState() { m.anchor = nil }

func (m *MoveTool) ResetOnImageLoaded() {
	m.anchor = nil
	m.Offset = image.Point{}
}

const (
	minZoom = 0.25
	maxZoom = 8
)

// ZoomTool steps the zoom factor. Each tap zooms in until the maximum and
// then wraps back to the minimum.
type ZoomTool struct {
	base
	factor  float64
	preview *image.RGBA
}

var _ Tool = (*ZoomTool)(nil)

func newZoom() *ZoomTool {
	return &ZoomTool{base: base{typ: Zoom, caps: Capabilities{AcceptsBitmap: true}}, factor: 1}
}

// Factor returns the current zoom factor.
func (z *ZoomTool) Factor() float64 { return z.factor }

func (z *ZoomTool) SetBitmap(img *image.RGBA) {
	z.base.SetBitmap(img)
	z.preview = nil
}

// Preview returns the bitmap scaled by the zoom factor. The result is cached
// until the factor or the bitmap changes.
func (z *ZoomTool) Preview() *image.RGBA {
	if z.preview == nil {
		z.preview = canvas.Scale(z.bitmap, z.factor)
	}
	return z.preview
}

func (z *ZoomTool) HandleDown(image.Point) bool { return true }

func (z *ZoomTool) HandleUp(image.Point) bool {
	z.factor *= 2
	if z.factor > maxZoom {
		z.factor = minZoom
	}
	z.preview = nil
	return true
}

func (z *ZoomTool) ResetOnImageLoaded() {
	z.factor = 1
	z.preview = nil
}
