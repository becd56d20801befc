package tools

import (
	"image"

	"github.com/example/easel/internal/canvas"
)

// FillTool flood fills the region under the pointer.
type FillTool struct {
	base
	settings Settings
}

var (
	_ Tool         = (*FillTool)(nil)
	_ Configurable = (*FillTool)(nil)
)

func newFill(s Settings) *FillTool {
	return &FillTool{
		base:     base{typ: Fill, caps: Capabilities{OptionsView: true, AcceptsColor: true, AcceptsBitmap: true}},
		settings: s,
	}
}

func (f *FillTool) Settings() Settings       { return f.settings }
func (f *FillTool) ApplySettings(s Settings) { f.settings = s.normalize() }

func (f *FillTool) HandleDown(image.Point) bool { return true }

func (f *FillTool) HandleUp(p image.Point) bool {
	if f.bitmap == nil || !p.In(f.bitmap.Bounds()) {
		return false
	}
	canvas.FloodFill(f.bitmap, p, f.color, f.settings.Tolerance)
	return true
}
