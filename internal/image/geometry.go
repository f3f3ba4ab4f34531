package imagepkg

import (
	"image"
	"math"
)

// BBox is the ink rectangle of a text run measured at the zero origin.
type BBox struct {
	Left, Top, Right, Bottom int
}

func (b BBox) Width() int  { return b.Right - b.Left }
func (b BBox) Height() int { return b.Bottom - b.Top }

// CenterPosition returns the x offset that centers an object of b's width
// inside canvasWidth. The result is floored and may be negative when the
// object is wider than the canvas.
func CenterPosition(canvasWidth int, b BBox) int {
	return floorDiv(canvasWidth-b.Width(), 2)
}

// UnionBBox returns the smallest box containing both a and b.
func UnionBBox(a, b BBox) BBox {
	return BBox{
		Left:   min(a.Left, b.Left),
		Top:    min(a.Top, b.Top),
		Right:  max(a.Right, b.Right),
		Bottom: max(a.Bottom, b.Bottom),
	}
}

// centerOffset returns the point that centers a w×h rectangle on a canvas.
func centerOffset(canvasW, canvasH, w, h int) image.Point {
	return image.Pt(floorDiv(canvasW-w, 2), floorDiv(canvasH-h, 2))
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// floorDivFloat is floored float division computed from the remainder, so
// that a/b just below an integer is not rounded up to it. 13/1.3 gives 9:
// 1.3 is stored slightly above 1.3, and 13 holds it fewer than 10 times.
func floorDivFloat(a, b float64) float64 {
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	q := math.Floor(div)
	if div-q > 0.5 {
		q++
	}
	return q
}
