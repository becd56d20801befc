package editor

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/example/easel/internal/tools"
)

// setOption edits one options-panel value of the active tool. The edit is
// also installed as the registry default for the tool type and persisted.
func (e *Editor) setOption(name, value string) error {
	if !e.ctrl.ToolOptionsViewEnabled() {
		return ErrOptionsDisabled
	}
	cfg, ok := e.ctrl.CurrentTool().(tools.Configurable)
	if !ok || !e.ctrl.HasToolOptionsView() {
		return fmt.Errorf("%s: %w", e.ctrl.ToolType(), ErrNoOptionsView)
	}
	s := cfg.Settings()
	switch name {
	case "width":
		w, err := strconv.Atoi(value)
		if err != nil || w < 1 || w > tools.MaxWidth {
			return fmt.Errorf("invalid width %q (1-%d)", value, tools.MaxWidth)
		}
		s.Width = w
	case "tolerance":
		v, err := strconv.ParseUint(value, 10, 8)
		if err != nil {
			return fmt.Errorf("invalid tolerance %q", value)
		}
		s.Tolerance = uint8(v)
	case "size":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil || v <= 0 {
			return fmt.Errorf("invalid size %q", value)
		}
		s.TextSize = v
	case "shape":
		kind := tools.ShapeKind(strings.ToLower(value))
		if kind != tools.ShapeRect && kind != tools.ShapeEllipse {
			return fmt.Errorf("invalid shape %q", value)
		}
		s.Shape = kind
	case "filled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid filled %q", value)
		}
		s.Filled = b
	}
	cfg.ApplySettings(s)
	t := e.ctrl.ToolType()
	e.registry.SetSettings(t, cfg.Settings())
	if e.db != nil {
		if err := e.db.SaveToolSettings(e.ctx, t, cfg.Settings()); err != nil {
			log.Printf("persist settings: %v", err)
		}
	}
	return nil
}
