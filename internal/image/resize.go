package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// FillResize scales img to cover a width×height canvas while keeping its
// aspect ratio, then centers it. Overflow on the non-covering axis is clipped
// by the canvas bounds.
func FillResize(img image.Image, width, height int) *image.NRGBA {
	src := img.Bounds()
	scaleW := float64(width) / float64(src.Dx())
	scaleH := float64(height) / float64(src.Dy())
	scale := math.Max(scaleW, scaleH)

	newW := int(float64(src.Dx()) * scale)
	newH := int(float64(src.Dy()) * scale)
	// float error must not leave a 1px transparent bar on the covering axis
	if scaleW >= scaleH {
		newW = width
	} else {
		newH = height
	}
	newW = max(newW, width)
	newH = max(newH, height)

	resized := imaging.Resize(img, newW, newH, imaging.Lanczos)
	canvas := imaging.New(width, height, color.NRGBA{})
	return imaging.Paste(canvas, resized, centerOffset(width, height, newW, newH))
}

// StretchResize scales img to exactly width×height, ignoring aspect ratio.
func StretchResize(img image.Image, width, height int) *image.NRGBA {
	return imaging.Resize(img, width, height, imaging.Lanczos)
}
