// Package canvas holds the raster primitives tools paint with and the image
// helpers the load pipeline uses.
package canvas

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// New returns a w×h canvas filled with bg.
func New(w, h int, bg color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	return img
}

func setThickPixel(img *image.RGBA, x, y, thick int, col color.RGBA) {
	r := thick / 2
	area := image.Rect(x-r, y-r, x+r+1, y+r+1).Intersect(img.Bounds())
	for py := area.Min.Y; py < area.Max.Y; py++ {
		for px := area.Min.X; px < area.Max.X; px++ {
			img.SetRGBA(px, py, col)
		}
	}
}

// clipSegment trims a segment to r. ok is false when the segment misses r.
func clipSegment(x0, y0, x1, y1 int, r image.Rectangle) (cx0, cy0, cx1, cy1 int, ok bool) {
	if r.Empty() {
		return 0, 0, 0, 0, false
	}
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, float64(x0 - r.Min.X)},
		{dx, float64(r.Max.X - 1 - x0)},
		{-dy, float64(y0 - r.Min.Y)},
		{dy, float64(r.Max.Y - 1 - y0)},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	if t0 == 0 && t1 == 1 {
		return x0, y0, x1, y1, true
	}
	return x0 + int(math.Round(t0*dx)), y0 + int(math.Round(t0*dy)),
		x0 + int(math.Round(t1*dx)), y0 + int(math.Round(t1*dy)), true
}

// DrawLine draws a line between the two points with the given thickness.
// Pixels are replaced, so a transparent col erases.
func DrawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA, thick int) {
	if img == nil {
		return
	}
	// Only the part of the segment that can touch the image is walked.
	reach := img.Bounds().Inset(-(thick/2 + 1))
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1, reach)
	if !ok {
		return
	}
	dx := math.Abs(float64(x1 - x0))
	dy := math.Abs(float64(y1 - y0))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRect outlines rect.
func DrawRect(img *image.RGBA, rect image.Rectangle, col color.RGBA, thick int) {
	rect = rect.Canon()
	DrawLine(img, rect.Min.X, rect.Min.Y, rect.Max.X-1, rect.Min.Y, col, thick)
	DrawLine(img, rect.Max.X-1, rect.Min.Y, rect.Max.X-1, rect.Max.Y-1, col, thick)
	DrawLine(img, rect.Max.X-1, rect.Max.Y-1, rect.Min.X, rect.Max.Y-1, col, thick)
	DrawLine(img, rect.Min.X, rect.Max.Y-1, rect.Min.X, rect.Min.Y, col, thick)
}

// FillRect paints the whole of rect.
func FillRect(img *image.RGBA, rect image.Rectangle, col color.RGBA) {
	if img == nil {
		return
	}
	draw.Draw(img, rect.Canon().Intersect(img.Bounds()), image.NewUniform(col), image.Point{}, draw.Src)
}

// DrawEllipse outlines the ellipse inscribed in rect.
func DrawEllipse(img *image.RGBA, rect image.Rectangle, col color.RGBA, thick int) {
	rect = rect.Canon()
	cx := (rect.Min.X + rect.Max.X) / 2
	cy := (rect.Min.Y + rect.Max.Y) / 2
	rx := rect.Dx() / 2
	ry := rect.Dy() / 2
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	var prevX, prevY int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Cos(angle)*float64(rx))
		y := cy + int(math.Sin(angle)*float64(ry))
		if i > 0 {
			DrawLine(img, prevX, prevY, x, y, col, thick)
		} else if img != nil {
			setThickPixel(img, x, y, thick, col)
		}
		prevX, prevY = x, y
	}
}

// FillEllipse paints the ellipse inscribed in rect.
func FillEllipse(img *image.RGBA, rect image.Rectangle, col color.RGBA) {
	if img == nil {
		return
	}
	rect = rect.Canon()
	cx := (rect.Min.X + rect.Max.X) / 2
	cy := (rect.Min.Y + rect.Max.Y) / 2
	rx := rect.Dx() / 2
	ry := rect.Dy() / 2
	if ry == 0 {
		DrawLine(img, cx-rx, cy, cx+rx, cy, col, 1)
		return
	}
	for dy := -ry; dy <= ry; dy++ {
		span := int(float64(rx) * math.Sqrt(1.0-float64(dy*dy)/float64(ry*ry)))
		for dx := -span; dx <= span; dx++ {
			px := cx + dx
			py := cy + dy
			if image.Pt(px, py).In(img.Bounds()) {
				img.SetRGBA(px, py, col)
			}
		}
	}
}
