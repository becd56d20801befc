package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/paint"
	"github.com/disintegration/imaging"
	xdraw "golang.org/x/image/draw"
)

// Load decodes the image at path and converts it to RGBA.
func Load(path string) (*image.RGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return ToRGBA(img), nil
}

// Save encodes img to path; the format follows the file extension.
func Save(path string, img image.Image) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ToRGBA returns img as an *image.RGBA anchored at the origin. An RGBA that is
// already anchored is returned as is.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// Scale returns img resized by factor with nearest-neighbour sampling.
func Scale(img *image.RGBA, factor float64) *image.RGBA {
	if img == nil || factor <= 0 {
		return nil
	}
	w := int(float64(img.Bounds().Dx()) * factor)
	h := int(float64(img.Bounds().Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(out, out.Bounds(), img, img.Bounds(), draw.Src, nil)
	return out
}

// FloodFill recolors the region connected to p whose colors are within
// tolerance (0-255) of the color at p.
func FloodFill(img *image.RGBA, p image.Point, col color.RGBA, tolerance uint8) {
	if img == nil || !p.In(img.Bounds()) {
		return
	}
	filled := paint.FloodFill(img, p, col, tolerance)
	draw.Draw(img, img.Bounds(), filled, filled.Bounds().Min, draw.Src)
}

// Sample returns the color at p, or false when p is outside img.
func Sample(img *image.RGBA, p image.Point) (color.RGBA, bool) {
	if img == nil || !p.In(img.Bounds()) {
		return color.RGBA{}, false
	}
	return img.RGBAAt(p.X, p.Y), true
}
