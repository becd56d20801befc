package tools

import (
	"image"
	"log"

	"github.com/example/easel/internal/canvas"
)

// TextTool places a line of text. A tap sets the position; the text is
// committed by Commit or when the tool is finished.
type TextTool struct {
	base
	settings Settings
	pos      *image.Point
	content  string
}

var (
	_ Tool         = (*TextTool)(nil)
	_ Configurable = (*TextTool)(nil)
	_ Finisher     = (*TextTool)(nil)
)

func newText(s Settings) *TextTool {
	return &TextTool{
		base:     base{typ: Text, caps: Capabilities{OptionsView: true, AcceptsColor: true, AcceptsBitmap: true}},
		settings: s,
	}
}

func (t *TextTool) Settings() Settings       { return t.settings }
func (t *TextTool) ApplySettings(s Settings) { t.settings = s.normalize() }

// Pending returns the uncommitted text and its position.
func (t *TextTool) Pending() (string, image.Point, bool) {
	if t.pos == nil {
		return "", image.Point{}, false
	}
	return t.content, *t.pos, true
}

// SetText replaces the uncommitted text. It has no effect until a position has
// been chosen.
func (t *TextTool) SetText(s string) bool {
	if t.pos == nil {
		return false
	}
	t.content = s
	return true
}

func (t *TextTool) HandleDown(image.Point) bool { return true }

func (t *TextTool) HandleUp(p image.Point) bool {
	t.Commit()
	t.pos = &p
	t.content = ""
	return true
}

// Commit renders the pending text onto the bitmap.
func (t *TextTool) Commit() bool {
	if t.pos == nil || t.content == "" || t.bitmap == nil {
		return false
	}
	if err := canvas.DrawText(t.bitmap, t.pos.X, t.pos.Y, t.content, t.color, t.settings.TextSize); err != nil {
		log.Printf("text tool: %v", err)
		return false
	}
	t.pos = nil
	t.content = ""
	return true
}

func (t *TextTool) Finish() { t.Commit() }

func (t *TextTool) ResetInternalState() {
	t.pos = nil
	t.content = ""
}

func (t *TextTool) ResetOnImageLoaded() { t.ResetInternalState() }
