package palette

import (
	"image/color"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"red", color.RGBA{255, 0, 0, 255}},
		{"Navy", color.RGBA{0, 0, 128, 255}},
		{"cornflowerblue", color.RGBA{100, 149, 237, 255}},
		{"#FF8040", color.RGBA{255, 128, 64, 255}},
		{"#0f0", color.RGBA{0, 255, 0, 255}},
		{"#11223380", color.RGBA{0x11, 0x22, 0x33, 0x80}},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#GGGGGG", "#112233zz"} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.RGBA{255, 128, 64, 255}); got != "#FF8040" {
		t.Errorf("Hex opaque = %s", got)
	}
	if got := Hex(color.RGBA{0x11, 0x22, 0x33, 0x80}); got != "#11223380" {
		t.Errorf("Hex translucent = %s", got)
	}
}

func TestEnsureAddsOnce(t *testing.T) {
	col := color.RGBA{1, 2, 3, 255}
	first := Ensure(col, "")
	second := Ensure(col, "Custom")
	if first != second {
		t.Fatalf("expected same index, got %d and %d", first, second)
	}
	if got := Name(col); got != "#010203" {
		t.Errorf("Name = %q", got)
	}
}
