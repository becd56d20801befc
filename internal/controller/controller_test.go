package controller

import (
	"image"
	"image/color"
	"testing"

	"github.com/example/easel/internal/canvas"
	"github.com/example/easel/internal/tools"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func newController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{WithBitmap(canvas.New(32, 32, white))}, opts...)
	return New(tools.NewRegistry(), opts...)
}

func TestInitialState(t *testing.T) {
	c := newController(t)
	if c.ToolType() != tools.Brush || !c.IsDefaultTool() {
		t.Fatalf("expected brush as default tool, got %v", c.ToolType())
	}
	want := OptionsState{Visible: false, Enabled: true, HasOptionsView: true}
	if got := c.OptionsState(); got != want {
		t.Fatalf("options = %+v, want %+v", got, want)
	}
	if c.CurrentTool() == nil {
		t.Fatalf("current tool is nil")
	}
}

func TestConfiguredDefaultTool(t *testing.T) {
	c := newController(t, WithDefaultTool(tools.Fill))
	if c.ToolType() != tools.Fill || c.DefaultToolType() != tools.Fill {
		t.Fatalf("default tool = %v", c.ToolType())
	}
	c.SwitchTool(tools.Zoom, false)
	c.SwitchTool(tools.Line, true)
	if c.ToolType() != tools.Fill {
		t.Fatalf("back press went to %v", c.ToolType())
	}
}

func TestReselectKeepsState(t *testing.T) {
	for _, typ := range tools.Types() {
		c := newController(t)
		c.SwitchTool(typ, false)
		before := c.CurrentTool()
		before.HandleDown(image.Pt(4, 4))
		c.SwitchTool(typ, false)
		if c.CurrentTool() != before {
			t.Fatalf("%v: re-selecting replaced the tool instance", typ)
		}
	}
	c := newController(t)
	c.SwitchTool(tools.Brush, false)
	b := c.CurrentTool().(*tools.BrushTool)
	b.HandleDown(image.Pt(1, 1))
	c.SwitchTool(tools.Brush, false)
	if !b.Stroking() {
		t.Fatalf("re-selecting brush reset the stroke")
	}
}

func TestOptionsConsistentAcrossSwitches(t *testing.T) {
	c := newController(t)
	seq := []tools.Type{
		tools.Fill, tools.Eraser, tools.Shape, tools.Pipette, tools.Text,
		tools.Zoom, tools.Line, tools.Move, tools.Brush, tools.Brush,
	}
	for i, typ := range seq {
		if i%2 == 0 {
			c.ShowToolOptionsView()
		} else {
			c.ToggleToolOptionsView()
		}
		c.SwitchTool(typ, false)
		caps := c.CurrentTool().Capabilities()
		if c.HasToolOptionsView() != caps.OptionsView {
			t.Fatalf("after %v: HasToolOptionsView=%v, capability=%v", typ, c.HasToolOptionsView(), caps.OptionsView)
		}
		if c.OptionsState().HasOptionsView != caps.OptionsView {
			t.Fatalf("after %v: state out of sync", typ)
		}
		if !c.HasToolOptionsView() && c.ToolOptionsViewVisible() {
			t.Fatalf("after %v: panel visible without options view", typ)
		}
	}
}

func TestSwitchKeepsVisibilityForToolsWithOptions(t *testing.T) {
	c := newController(t)
	c.ShowToolOptionsView()
	c.SwitchTool(tools.Fill, false)
	if !c.ToolOptionsViewVisible() {
		t.Fatalf("panel hidden when switching between tools with options")
	}
	c.SwitchTool(tools.Move, false)
	if c.ToolOptionsViewVisible() {
		t.Fatalf("panel visible for move tool")
	}
	c.SwitchTool(tools.Shape, false)
	if c.ToolOptionsViewVisible() {
		t.Fatalf("panel should stay hidden after an auto-hide")
	}
}

func TestBackPressReturnsToDefault(t *testing.T) {
	for _, typ := range tools.Types() {
		if typ == tools.Brush {
			continue
		}
		c := newController(t)
		c.SwitchTool(typ, false)
		c.SwitchTool(typ, true)
		if !c.IsDefaultTool() {
			t.Fatalf("back press from %v left %v active", typ, c.ToolType())
		}
	}
}

func TestBackPressIgnoresRequestedType(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Fill, false)
	c.SwitchTool(tools.Shape, true)
	if c.ToolType() != tools.Brush {
		t.Fatalf("back press honoured requested type: %v", c.ToolType())
	}
}

func TestBackPressOnDefaultIsNoop(t *testing.T) {
	c := newController(t)
	b := c.CurrentTool().(*tools.BrushTool)
	b.HandleDown(image.Pt(2, 2))
	c.SwitchTool(tools.Fill, true)
	if c.CurrentTool() != tools.Tool(b) || !b.Stroking() {
		t.Fatalf("back press on default tool replaced or reset it")
	}
}

func TestSwitchPropagatesBitmapAndColor(t *testing.T) {
	c := newController(t)
	c.PickColor(blue)
	c.SwitchTool(tools.Fill, false)
	if got := c.ToolColor(); got != blue {
		t.Fatalf("fill color = %+v, want blue", got)
	}
	c.CurrentTool().HandleUp(image.Pt(1, 1))
	if got := c.Bitmap().RGBAAt(30, 30); got != blue {
		t.Fatalf("fill did not draw on the source bitmap: %+v", got)
	}
}

func TestSwitchFinishesPreviousTool(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Text, false)
	tt := c.CurrentTool().(*tools.TextTool)
	tt.HandleUp(image.Pt(2, 2))
	tt.SetText("Go")
	c.SwitchTool(tools.Brush, false)
	if _, _, ok := tt.Pending(); ok {
		t.Fatalf("pending text was not flushed on switch")
	}
}

func TestShowToggleGatedByOptionsView(t *testing.T) {
	c := newController(t)
	c.HideToolOptionsView()
	if c.ToolOptionsViewVisible() {
		t.Fatalf("hide did not hide")
	}
	c.SwitchTool(tools.Eraser, false)
	c.ShowToolOptionsView()
	if c.ToolOptionsViewVisible() {
		t.Fatalf("show made an eraser panel visible")
	}
	c.ToggleToolOptionsView()
	if c.ToolOptionsViewVisible() {
		t.Fatalf("toggle made an eraser panel visible")
	}
}

func TestFillThenBackScenario(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Fill, false)
	c.ShowToolOptionsView()
	if !c.ToolOptionsViewVisible() {
		t.Fatalf("fill panel not visible")
	}
	c.SwitchTool(tools.Brush, true)
	if c.ToolType() != tools.Brush || !c.IsDefaultTool() {
		t.Fatalf("back press gave %v", c.ToolType())
	}
}

func TestToggle(t *testing.T) {
	c := newController(t)
	c.ToggleToolOptionsView()
	if !c.ToolOptionsViewVisible() {
		t.Fatalf("toggle did not show")
	}
	c.ToggleToolOptionsView()
	if c.ToolOptionsViewVisible() {
		t.Fatalf("toggle did not hide")
	}
}

func TestEnableDisableIsOrthogonal(t *testing.T) {
	c := newController(t)
	c.ShowToolOptionsView()
	c.DisableToolOptionsView()
	if c.ToolOptionsViewEnabled() {
		t.Fatalf("disable had no effect")
	}
	if !c.ToolOptionsViewVisible() {
		t.Fatalf("disable hid the panel")
	}
	c.EnableToolOptionsView()
	if !c.ToolOptionsViewEnabled() {
		t.Fatalf("enable had no effect")
	}
}

func TestColorPickGoesToToolActiveAtDelivery(t *testing.T) {
	c := newController(t)
	var heard []color.RGBA
	c.SetOnColorPickedListener(func(col color.RGBA) { heard = append(heard, col) })
	c.SwitchTool(tools.Shape, false)
	c.PickColor(red)
	if got := c.ToolColor(); got != red {
		t.Fatalf("shape color = %+v, want red", got)
	}
	if len(heard) != 1 || heard[0] != red {
		t.Fatalf("listener heard %v", heard)
	}
	if c.PendingColor() != red {
		t.Fatalf("pending color not updated")
	}
}

func TestColorPickReplacesListener(t *testing.T) {
	c := newController(t)
	var first, second int
	c.SetOnColorPickedListener(func(color.RGBA) { first++ })
	c.SetOnColorPickedListener(func(color.RGBA) { second++ })
	c.PickColor(blue)
	if first != 0 || second != 1 {
		t.Fatalf("first=%d second=%d", first, second)
	}
	c.SetOnColorPickedListener(nil)
	c.PickColor(red)
	if second != 1 {
		t.Fatalf("cleared listener still called")
	}
}

func TestColorPickOnEraserKeepsPending(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Eraser, false)
	c.PickColor(red)
	if got := c.ToolColor(); got != tools.NoColor {
		t.Fatalf("eraser color = %+v", got)
	}
	c.SwitchTool(tools.Line, false)
	if got := c.ToolColor(); got != red {
		t.Fatalf("pending color not applied after eraser: %+v", got)
	}
}

func TestPipettePickFlowsThroughController(t *testing.T) {
	img := canvas.New(8, 8, white)
	img.SetRGBA(3, 3, blue)
	c := New(tools.NewRegistry(), WithBitmap(img))
	var heard color.RGBA
	c.SetOnColorPickedListener(func(col color.RGBA) { heard = col })
	c.SwitchTool(tools.Pipette, false)
	c.CurrentTool().HandleDown(image.Pt(3, 3))
	c.CurrentTool().HandleUp(image.Pt(3, 3))
	if heard != blue || c.PendingColor() != blue {
		t.Fatalf("pipette pick heard=%+v pending=%+v", heard, c.PendingColor())
	}
	c.SwitchTool(tools.Brush, false)
	if c.ToolColor() != blue {
		t.Fatalf("brush did not pick up sampled color")
	}
}

func TestImageLoadResetsOnlyToolState(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Line, false)
	c.ShowToolOptionsView()
	c.DisableToolOptionsView()
	line := c.CurrentTool().(*tools.LineTool)
	line.HandleDown(image.Pt(1, 1))
	line.HandleUp(image.Pt(1, 1))
	before := c.OptionsState()

	img := canvas.New(10, 10, white)
	c.SetBitmapFromSource(img)
	c.ResetToolInternalStateOnImageLoaded()

	if c.ToolType() != tools.Line || c.CurrentTool() != tools.Tool(line) {
		t.Fatalf("image load changed the tool")
	}
	if c.OptionsState() != before {
		t.Fatalf("options changed: %+v -> %+v", before, c.OptionsState())
	}
	if _, ok := line.StartPoint(); ok {
		t.Fatalf("line start point survived image load")
	}
	if line.Bitmap() != img || c.Bitmap() != img {
		t.Fatalf("bitmap not propagated")
	}
}

func TestResetToolInternalState(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Shape, false)
	s := c.CurrentTool().(*tools.ShapeTool)
	s.HandleDown(image.Pt(1, 1))
	c.ResetToolInternalState()
	if _, ok := s.Pending(); ok {
		t.Fatalf("shape still pending after reset")
	}
	if c.ToolType() != tools.Shape {
		t.Fatalf("reset changed tool")
	}
}

func TestCreateToolKeepsTypeAndOptions(t *testing.T) {
	c := newController(t)
	c.SwitchTool(tools.Fill, false)
	c.ShowToolOptionsView()
	c.PickColor(red)
	old := c.CurrentTool()
	c.CreateTool()
	if c.CurrentTool() == old {
		t.Fatalf("CreateTool kept the old instance")
	}
	if c.ToolType() != tools.Fill || !c.ToolOptionsViewVisible() {
		t.Fatalf("CreateTool lost type or options: %v %+v", c.ToolType(), c.OptionsState())
	}
	if c.ToolColor() != red {
		t.Fatalf("CreateTool lost color")
	}
}

func TestOptionsObserver(t *testing.T) {
	var seen []OptionsState
	c := newController(t, WithOptionsObserver(func(s OptionsState) { seen = append(seen, s) }))
	c.ShowToolOptionsView()
	c.ShowToolOptionsView()
	c.SwitchTool(tools.Move, false)
	want := []OptionsState{
		{Visible: true, Enabled: true, HasOptionsView: true},
		{Visible: false, Enabled: true, HasOptionsView: false},
	}
	if len(seen) != len(want) {
		t.Fatalf("observer saw %+v", seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("observer[%d] = %+v, want %+v", i, seen[i], want[i])
		}
	}
}

func TestUnknownToolPanics(t *testing.T) {
	c := newController(t)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown tool type")
		}
		if c.ToolType() != tools.Brush {
			t.Fatalf("failed switch changed the active tool")
		}
	}()
	c.SwitchTool(tools.Type(99), false)
}

func TestZeroControllerPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for uninitialized controller")
		}
	}()
	var c Controller
	c.PickColor(red)
}
