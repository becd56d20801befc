package canvas

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

var red = color.RGBA{255, 0, 0, 255}

func TestDrawLineStaysInBounds(t *testing.T) {
	img := New(10, 10, color.RGBA{255, 255, 255, 255})
	DrawLine(img, -5, 5, 20, 5, red, 3)
	for x := 0; x < 10; x++ {
		if got := img.RGBAAt(x, 5); got != red {
			t.Fatalf("pixel (%d,5) = %+v, want red", x, got)
		}
	}
	if got := img.RGBAAt(0, 0); got == red {
		t.Fatalf("line bled outside its thickness")
	}
}

func TestDrawLineHugeThicknessIsClipped(t *testing.T) {
	img := New(10, 10, color.RGBA{255, 255, 255, 255})
	DrawLine(img, 5, 5, 5, 5, red, 1<<30)
	for _, p := range []image.Point{{0, 0}, {9, 9}, {0, 9}} {
		if got := img.RGBAAt(p.X, p.Y); got != red {
			t.Fatalf("pixel %v = %+v, want red", p, got)
		}
	}
}

func TestDrawLineFarEndpoints(t *testing.T) {
	img := New(10, 10, color.RGBA{255, 255, 255, 255})
	DrawLine(img, -1<<30, 4, 1<<30, 4, red, 1)
	for x := 0; x < 10; x++ {
		if got := img.RGBAAt(x, 4); got != red {
			t.Fatalf("pixel (%d,4) = %+v, want red", x, got)
		}
	}
	DrawLine(img, -1<<30, -1<<30, -1<<30+5, -1<<30, red, 1)
	if got := img.RGBAAt(0, 0); got == red {
		t.Fatalf("segment outside the image painted (0,0)")
	}
}

func TestClipSegment(t *testing.T) {
	r := image.Rect(0, 0, 10, 10)
	x0, y0, x1, y1, ok := clipSegment(-10, -10, 20, 20, r)
	if !ok || x0 != 0 || y0 != 0 || x1 != 9 || y1 != 9 {
		t.Fatalf("diagonal clip = (%d,%d)-(%d,%d) %v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipSegment(-5, 20, 30, 20, r); ok {
		t.Fatalf("segment below the rectangle should miss")
	}
	x0, y0, x1, y1, ok = clipSegment(2, 3, 4, 5, r)
	if !ok || x0 != 2 || y0 != 3 || x1 != 4 || y1 != 5 {
		t.Fatalf("inner segment changed: (%d,%d)-(%d,%d)", x0, y0, x1, y1)
	}
}

func TestDrawLineTransparentErases(t *testing.T) {
	img := New(4, 4, red)
	DrawLine(img, 0, 0, 3, 0, color.RGBA{}, 1)
	if got := img.RGBAAt(2, 0); got.A != 0 {
		t.Fatalf("expected erased pixel, got %+v", got)
	}
}

func TestFillEllipseCoversCentre(t *testing.T) {
	img := New(20, 20, color.RGBA{})
	FillEllipse(img, image.Rect(18, 18, 2, 2), red)
	if got := img.RGBAAt(10, 10); got != red {
		t.Fatalf("centre = %+v", got)
	}
	if got := img.RGBAAt(2, 2); got == red {
		t.Fatalf("corner should stay outside the ellipse")
	}
}

func TestFloodFillStopsAtBorder(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	img := New(10, 10, white)
	DrawLine(img, 5, 0, 5, 9, color.RGBA{0, 0, 0, 255}, 1)
	FloodFill(img, image.Pt(1, 1), red, 0)
	if got := img.RGBAAt(2, 8); got != red {
		t.Fatalf("left side = %+v, want red", got)
	}
	if got := img.RGBAAt(8, 8); got != white {
		t.Fatalf("right side = %+v, want white", got)
	}
}

func TestScale(t *testing.T) {
	img := New(4, 3, red)
	out := Scale(img, 2)
	if out.Bounds().Dx() != 8 || out.Bounds().Dy() != 6 {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	if Scale(nil, 2) != nil {
		t.Fatalf("nil input should give nil")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	img := New(6, 5, red)
	if err := Save(path, img); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !got.Bounds().Eq(img.Bounds()) {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	if c := got.RGBAAt(3, 3); c != red {
		t.Fatalf("pixel = %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.png")); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDrawTextMarksPixels(t *testing.T) {
	img := New(80, 40, color.RGBA{})
	if err := DrawText(img, 2, 2, "Ab3", red, 20); err != nil {
		t.Fatalf("draw text: %v", err)
	}
	painted := false
	for y := 0; y < 40 && !painted; y++ {
		for x := 0; x < 80; x++ {
			if img.RGBAAt(x, y).A != 0 {
				painted = true
				break
			}
		}
	}
	if !painted {
		t.Fatalf("expected text pixels")
	}
	w, h, base, err := MeasureText("Ab3", 20)
	if err != nil || w <= 0 || h <= 0 || base <= 0 {
		t.Fatalf("measure = %d %d %d %v", w, h, base, err)
	}
}
