package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/easel/internal/tools"
)

func TestParse(t *testing.T) {
	input := `
# editor defaults
default_tool = fill
color = #336699
save_dir = /tmp/art

[notify]
load = true
save = false
copy = true

[tool.brush]
width = 8

[tool.color-picker]

[tool.shape]
Shape: ellipse
filled = true
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.DefaultTool != tools.Fill {
		t.Errorf("Expected default tool fill, got %v", cfg.DefaultTool)
	}
	if cfg.Color != (color.RGBA{0x33, 0x66, 0x99, 0xFF}) {
		t.Errorf("Unexpected color: %+v", cfg.Color)
	}
	if cfg.SaveDir != "/tmp/art" {
		t.Errorf("Expected save_dir '/tmp/art', got '%s'", cfg.SaveDir)
	}
	if !cfg.Notify.Load || cfg.Notify.Save || !cfg.Notify.Copy {
		t.Errorf("Unexpected notify settings: %+v", cfg.Notify)
	}
	if got := cfg.Tools[tools.Brush].Width; got != 8 {
		t.Errorf("Expected brush width 8, got %d", got)
	}
	if _, ok := cfg.Tools[tools.Pipette]; !ok {
		t.Errorf("Expected alias section to register pipette settings")
	}
	shape := cfg.Tools[tools.Shape]
	if shape.Shape != tools.ShapeEllipse || !shape.Filled {
		t.Errorf("Unexpected shape settings: %+v", shape)
	}
	if shape.Width != tools.DefaultSettings().Width {
		t.Errorf("Expected default width for shape, got %d", shape.Width)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"unknown tool section", "[tool.lasso]\n", "section [tool.lasso]"},
		{"bad default tool", "default_tool = lasso\n", "root section"},
		{"bad color", "color = nope\n", "root section"},
		{"bad notify", "[notify]\nsave = maybe\n", "[notify]"},
		{"bad width", "[tool.brush]\nwidth = 0\n", "invalid width"},
		{"huge width", "[tool.brush]\nwidth = 200000\n", "invalid width"},
		{"bad tolerance", "[tool.fill]\ntolerance = 300\n", "tolerance"},
		{"bad shape", "[tool.shape]\nshape = star\n", "invalid shape"},
	}
	for _, tt := range tests {
		_, err := Parse(strings.NewReader(tt.input))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.want) {
			t.Errorf("%s: expected error containing %q, got %v", tt.name, tt.want, err)
		}
	}
}

func TestCircular(t *testing.T) {
	input := `default_tool = line
color = #FF000080
state_db = /home/user/.easel.db

[notify]
save = true

[tool.fill]
tolerance = 12

[tool.text]
text_size = 24
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	cfg2, err := Parse(strings.NewReader(cfg.String()))
	if err != nil {
		t.Fatalf("Circular parse failed: %v", err)
	}

	if cfg.DefaultTool != cfg2.DefaultTool || cfg.Color != cfg2.Color {
		t.Errorf("Root mismatch: %v/%v vs %v/%v", cfg.DefaultTool, cfg.Color, cfg2.DefaultTool, cfg2.Color)
	}
	if cfg.StateDB != cfg2.StateDB {
		t.Errorf("StateDB mismatch: %q vs %q", cfg.StateDB, cfg2.StateDB)
	}
	if cfg.Notify != cfg2.Notify {
		t.Errorf("Notify mismatch: %+v vs %+v", cfg.Notify, cfg2.Notify)
	}
	if len(cfg.Tools) != len(cfg2.Tools) {
		t.Fatalf("Tool sections mismatch: %v vs %v", cfg.Tools, cfg2.Tools)
	}
	for typ, s := range cfg.Tools {
		if cfg2.Tools[typ] != s {
			t.Errorf("%v settings mismatch: %+v vs %+v", typ, s, cfg2.Tools[typ])
		}
	}
}

func TestApply(t *testing.T) {
	cfg := New()
	cfg.Tools[tools.Line] = tools.Settings{Width: 7}
	reg := tools.NewRegistry()
	cfg.Apply(reg)
	if got := reg.Settings(tools.Line).Width; got != 7 {
		t.Fatalf("line width = %d", got)
	}
}

func TestLoaderOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.rc")
	if err := os.WriteFile(path, []byte("default_tool = zoom\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewLoader("1.0", path).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultTool != tools.Zoom {
		t.Errorf("Expected zoom, got %v", cfg.DefaultTool)
	}
}

func TestLoaderMissingFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := NewLoader("1.0", filepath.Join(t.TempDir(), "missing.rc")).Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultTool != tools.Brush {
		t.Errorf("Expected brush default, got %v", cfg.DefaultTool)
	}
}
