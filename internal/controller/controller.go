// Package controller owns the active drawing tool and the state of its
// options panel.
//
// A Controller is not safe for concurrent use. Every call is expected to come
// from the goroutine that processes UI events; tools that offload work must
// route state resets back through that goroutine.
package controller

import (
	"image"
	"image/color"
	"log"

	"github.com/example/easel/internal/palette"
	"github.com/example/easel/internal/tools"
)

// OptionsState is what the options panel renders from.
type OptionsState struct {
	Visible        bool
	Enabled        bool
	HasOptionsView bool
}

// ColorPickedListener is notified after a picked color has been applied.
type ColorPickedListener func(c color.RGBA)

// Controller holds the active tool and mediates every switch.
type Controller struct {
	registry    *tools.Registry
	defaultType tools.Type
	current     tools.Tool
	options     OptionsState

	bitmap   *image.RGBA
	pending  color.RGBA
	listener ColorPickedListener
	observer func(OptionsState)
}

// Option modifies a Controller during creation.
type Option func(*Controller)

// WithDefaultTool sets the tool restored by back navigation.
func WithDefaultTool(t tools.Type) Option { return func(c *Controller) { c.defaultType = t } }

// WithColor sets the initial pending color.
func WithColor(col color.RGBA) Option { return func(c *Controller) { c.pending = col } }

// WithBitmap sets the initial source bitmap.
func WithBitmap(img *image.RGBA) Option { return func(c *Controller) { c.bitmap = img } }

// WithOptionsObserver registers fn to be called whenever the options panel
// state changes.
func WithOptionsObserver(fn func(OptionsState)) Option {
	return func(c *Controller) { c.observer = fn }
}

// New creates a Controller with the default tool active, the options panel
// hidden and enabled. It panics if the default tool cannot be built.
func New(reg *tools.Registry, opts ...Option) *Controller {
	c := &Controller{
		registry:    reg,
		defaultType: tools.Brush,
		pending:     palette.Default,
	}
	for _, o := range opts {
		o(c)
	}
	c.current = c.build(c.defaultType)
	c.options = OptionsState{
		Enabled:        true,
		HasOptionsView: c.current.Capabilities().OptionsView,
	}
	return c
}

// build creates a tool of type t bound to the current bitmap and color. An
// unknown type is a programming error.
func (c *Controller) build(t tools.Type) tools.Tool {
	tool, err := c.registry.Create(t, c.PickColor)
	if err != nil {
		log.Panicf("tool registry: %v", err)
	}
	caps := tool.Capabilities()
	if caps.AcceptsBitmap {
		tool.SetBitmap(c.bitmap)
	}
	if caps.AcceptsColor {
		tool.SetColor(c.pending)
	}
	return tool
}

func (c *Controller) active() tools.Tool {
	if c.current == nil {
		log.Panicf("tool controller used before initialization")
	}
	return c.current
}

// install replaces the active tool, flushing the previous one, and brings the
// options panel in line with the new tool.
func (c *Controller) install(next tools.Tool) {
	if f, ok := c.current.(tools.Finisher); ok {
		f.Finish()
	}
	c.current = next
	opts := c.options
	opts.HasOptionsView = next.Capabilities().OptionsView
	if !opts.HasOptionsView {
		opts.Visible = false
	}
	c.setOptions(opts)
}

func (c *Controller) setOptions(next OptionsState) {
	if next == c.options {
		return
	}
	c.options = next
	if c.observer != nil {
		c.observer(next)
	}
}

// SwitchTool activates a tool of type t. Re-selecting the active type is a
// no-op. When backPressed is set the default tool is activated and t is
// ignored.
func (c *Controller) SwitchTool(t tools.Type, backPressed bool) {
	if backPressed {
		t = c.defaultType
	}
	if c.active().Type() == t {
		return
	}
	c.install(c.build(t))
}

// IsDefaultTool reports whether the default tool is active.
func (c *Controller) IsDefaultTool() bool {
	return c.active().Type() == c.defaultType
}

// DefaultToolType returns the tool type restored by back navigation.
func (c *Controller) DefaultToolType() tools.Type { return c.defaultType }

// CreateTool rebuilds the active tool with the same type, keeping the options
// panel state.
func (c *Controller) CreateTool() {
	c.install(c.build(c.active().Type()))
}

// HideToolOptionsView hides the options panel.
func (c *Controller) HideToolOptionsView() {
	opts := c.options
	opts.Visible = false
	c.setOptions(opts)
}

// ShowToolOptionsView shows the panel unless the active tool has none.
func (c *Controller) ShowToolOptionsView() {
	if !c.options.HasOptionsView {
		return
	}
	opts := c.options
	opts.Visible = true
	c.setOptions(opts)
}

// ToolOptionsViewVisible reports whether the options panel is shown.
func (c *Controller) ToolOptionsViewVisible() bool { return c.options.Visible }

// ToggleToolOptionsView flips visibility under the same rule as
// ShowToolOptionsView.
func (c *Controller) ToggleToolOptionsView() {
	if c.options.Visible {
		c.HideToolOptionsView()
		return
	}
	c.ShowToolOptionsView()
}

// DisableToolOptionsView marks the panel as not interactive. Visibility is
// unchanged.
func (c *Controller) DisableToolOptionsView() {
	opts := c.options
	opts.Enabled = false
	c.setOptions(opts)
}

// EnableToolOptionsView makes the options panel interactive again.
func (c *Controller) EnableToolOptionsView() {
	opts := c.options
	opts.Enabled = true
	c.setOptions(opts)
}

// ToolOptionsViewEnabled reports whether the options panel accepts input.
func (c *Controller) ToolOptionsViewEnabled() bool { return c.options.Enabled }

// HasToolOptionsView reports whether the active tool has an options panel.
func (c *Controller) HasToolOptionsView() bool {
	return c.active().Capabilities().OptionsView
}

// OptionsState returns a snapshot of the options panel flags.
func (c *Controller) OptionsState() OptionsState { return c.options }

// ResetToolInternalState makes the active tool drop any in-progress gesture.
func (c *Controller) ResetToolInternalState() {
	c.active().ResetInternalState()
}

// ResetToolInternalStateOnImageLoaded is ResetToolInternalState for the
// moment right after a new image was loaded; tools also drop caches tied to
// the previous image.
func (c *Controller) ResetToolInternalStateOnImageLoaded() {
	c.active().ResetOnImageLoaded()
}

// ToolColor returns the color bound to the active tool. Tools that do not
// paint with a color report tools.NoColor.
func (c *Controller) ToolColor() color.RGBA {
	return c.active().Color()
}

// PendingColor returns the last picked color.
func (c *Controller) PendingColor() color.RGBA { return c.pending }

// CurrentTool returns the active tool.
func (c *Controller) CurrentTool() tools.Tool { return c.active() }

// ToolType returns the type of the active tool.
func (c *Controller) ToolType() tools.Type { return c.active().Type() }

// Bitmap returns the source bitmap.
func (c *Controller) Bitmap() *image.RGBA { return c.bitmap }

// SetBitmapFromSource replaces the source bitmap and hands it to the active
// tool.
func (c *Controller) SetBitmapFromSource(img *image.RGBA) {
	c.bitmap = img
	if tool := c.active(); tool.Capabilities().AcceptsBitmap {
		tool.SetBitmap(img)
	}
}

// SetOnColorPickedListener registers the single listener for picked colors.
// A later registration replaces the earlier one; nil removes it.
func (c *Controller) SetOnColorPickedListener(fn ColorPickedListener) {
	c.listener = fn
}

// PickColor delivers a picked color: it becomes the pending color, is applied
// to whichever tool is active now, and is passed on to the listener.
func (c *Controller) PickColor(col color.RGBA) {
	tool := c.active()
	c.pending = col
	if tool.Capabilities().AcceptsColor {
		tool.SetColor(col)
	}
	if c.listener != nil {
		c.listener(col)
	}
}
