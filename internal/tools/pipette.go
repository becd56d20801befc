package tools

import (
	"image"
	"image/color"

	"github.com/example/easel/internal/canvas"
)

// PipetteTool samples the bitmap and reports the sampled color as a pick.
type PipetteTool struct {
	base
	picked func(color.RGBA)
}

var _ Tool = (*PipetteTool)(nil)

func newPipette(picked func(color.RGBA)) *PipetteTool {
	return &PipetteTool{
		base:   base{typ: Pipette, caps: Capabilities{AcceptsColor: true, AcceptsBitmap: true}},
		picked: picked,
	}
}

func (p *PipetteTool) HandleDown(pt image.Point) bool { return p.sample(pt) }
func (p *PipetteTool) HandleMove(pt image.Point) bool { return p.sample(pt) }

func (p *PipetteTool) HandleUp(pt image.Point) bool {
	if !p.sample(pt) {
		return false
	}
	if p.picked != nil {
		p.picked(p.color)
	}
	return true
}

func (p *PipetteTool) sample(pt image.Point) bool {
	c, ok := canvas.Sample(p.bitmap, pt)
	if !ok {
		return false
	}
	p.color = c
	return true
}
