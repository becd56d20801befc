package tools

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/example/easel/internal/canvas"
)

// ShapeTool drags out rectangles and ellipses.
type ShapeTool struct {
	base
	settings Settings
	anchor   *image.Point
	current  image.Point
}

var (
	_ Tool         = (*ShapeTool)(nil)
	_ Configurable = (*ShapeTool)(nil)
)

func newShape(s Settings) *ShapeTool {
	return &ShapeTool{
		base:     base{typ: Shape, caps: Capabilities{OptionsView: true, AcceptsColor: true, AcceptsBitmap: true}},
		settings: s,
	}
}

func (s *ShapeTool) Settings() Settings        { return s.settings }
func (s *ShapeTool) ApplySettings(st Settings) { s.settings = st.normalize() }

// Pending returns the rectangle being dragged out.
func (s *ShapeTool) Pending() (image.Rectangle, bool) {
	if s.anchor == nil {
		return image.Rectangle{}, false
	}
	return image.Rectangle{Min: *s.anchor, Max: s.current}.Canon(), true
}

func (s *ShapeTool) HandleDown(p image.Point) bool {
	s.anchor = &p
	s.current = p
	return true
}

func (s *ShapeTool) HandleMove(p image.Point) bool {
	if s.anchor == nil {
		return false
	}
	s.current = p
	return true
}

func (s *ShapeTool) HandleUp(p image.Point) bool {
	if s.anchor == nil {
		return false
	}
	s.current = p
	rect, _ := s.Pending()
	s.anchor = nil
	if rect.Empty() {
		return false
	}
	switch {
	case s.settings.Shape == ShapeEllipse && s.settings.Filled:
		canvas.FillEllipse(s.bitmap, rect, s.color)
	case s.settings.Shape == ShapeEllipse:
		canvas.DrawEllipse(s.bitmap, rect, s.color, s.settings.Width)
	case s.settings.Filled:
		canvas.FillRect(s.bitmap, rect, s.color)
	default:
		canvas.DrawRect(s.bitmap, rect, s.color, s.settings.Width)
	}
	return true
}

func (s *ShapeTool) ResetInternalState() { s.anchor = nil }

func (s *ShapeTool) ResetOnImageLoaded() { s.ResetInternalState() }

// lineThreshold is the pointer travel in pixels that separates a drag from a
// tap.
const lineThreshold = 4

// LineTool draws straight lines. Dragging draws a line directly. A first tap
// sets a start point and later taps place the end point; the line stays live
// until it is committed, so further taps, color and width changes redraw it.
type LineTool struct {
	base
	settings Settings
	down     *image.Point
	current  image.Point
	start    *image.Point
	end      *image.Point
	// backup holds the bitmap as it was before the start tap.
	backup *image.RGBA
}

var (
	_ Tool         = (*LineTool)(nil)
	_ Configurable = (*LineTool)(nil)
	_ Finisher     = (*LineTool)(nil)
)

func newLine(s Settings) *LineTool {
	return &LineTool{
		base:     base{typ: Line, caps: Capabilities{OptionsView: true, AcceptsColor: true, AcceptsBitmap: true}},
		settings: s,
	}
}

func (l *LineTool) Settings() Settings { return l.settings }

func (l *LineTool) ApplySettings(s Settings) {
	l.settings = s.normalize()
	l.render()
}

func (l *LineTool) SetColor(c color.RGBA) {
	l.base.SetColor(c)
	l.render()
}

// SetBitmap drops any live line; its backup belongs to the old bitmap.
func (l *LineTool) SetBitmap(img *image.RGBA) {
	l.base.SetBitmap(img)
	l.ResetInternalState()
}

// StartPoint returns the point set by a first tap, if any.
func (l *LineTool) StartPoint() (image.Point, bool) {
	if l.start == nil {
		return image.Point{}, false
	}
	return *l.start, true
}

// EndPoint returns the end of the live line, if one has been placed.
func (l *LineTool) EndPoint() (image.Point, bool) {
	if l.end == nil {
		return image.Point{}, false
	}
	return *l.end, true
}

func (l *LineTool) HandleDown(p image.Point) bool {
	l.down = &p
	l.current = p
	return true
}

func (l *LineTool) HandleMove(p image.Point) bool {
	if l.down == nil {
		return false
	}
	l.current = p
	return true
}

func (l *LineTool) HandleUp(p image.Point) bool {
	if l.down == nil || l.bitmap == nil {
		return false
	}
	from := *l.down
	l.down = nil
	d := p.Sub(from)
	if abs(d.X) > lineThreshold || abs(d.Y) > lineThreshold {
		if l.start != nil {
			// A pending start point owns the line; drags are ignored.
			return true
		}
		l.draw(from, p)
		return true
	}
	if l.start == nil {
		if !p.In(l.bitmap.Bounds()) {
			return false
		}
		l.backup = clone(l.bitmap)
		l.start = &p
	} else {
		l.end = &p
	}
	l.render()
	return true
}

// Commit keeps the live line in the bitmap and reports whether there was one.
// A lone start point is rubbed out again.
func (l *LineTool) Commit() bool {
	if l.start == nil {
		return false
	}
	committed := l.end != nil
	if !committed {
		l.restore()
	}
	l.ResetInternalState()
	return committed
}

func (l *LineTool) Finish() { l.Commit() }

func (l *LineTool) ResetInternalState() {
	l.down = nil
	l.start = nil
	l.end = nil
	l.backup = nil
}

func (l *LineTool) ResetOnImageLoaded() { l.ResetInternalState() }

func (l *LineTool) render() {
	if l.start == nil || l.bitmap == nil {
		return
	}
	l.restore()
	to := *l.start
	if l.end != nil {
		to = *l.end
	}
	l.draw(*l.start, to)
}

func (l *LineTool) restore() {
	if l.backup != nil && l.bitmap != nil {
		draw.Draw(l.bitmap, l.bitmap.Bounds(), l.backup, l.backup.Bounds().Min, draw.Src)
	}
}

func (l *LineTool) draw(from, to image.Point) {
	canvas.DrawLine(l.bitmap, from.X, from.Y, to.X, to.Y, l.color, l.settings.Width)
}

func clone(img *image.RGBA) *image.RGBA {
	c := image.NewRGBA(img.Bounds())
	draw.Draw(c, c.Bounds(), img, img.Bounds().Min, draw.Src)
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
