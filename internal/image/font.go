package imagepkg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// TitleStartSize is the first size tried when fitting the title.
	TitleStartSize = 244
	// MinFontSize is the floor of the adaptive search; a title that still
	// overflows at this size is drawn anyway.
	MinFontSize = 10
)

// Font is a parsed font file at a fixed pixel size.
type Font struct {
	Path string
	Size float64
	face font.Face
}

// LoadFont reads and parses the font at path.
func LoadFont(path string, size float64) (*Font, error) {
	ttf, err := parseFontFile(path)
	if err != nil {
		return nil, err
	}
	return newFont(ttf, path, size), nil
}

// FitFont returns the largest size, counting down from startSize, at which
// text drawn from the origin ends at or before maxWidth. It stops at
// MinFontSize whether or not the text fits.
func FitFont(text, path string, maxWidth, startSize int) (*Font, error) {
	ttf, err := parseFontFile(path)
	if err != nil {
		return nil, err
	}
	size := startSize
	f := newFont(ttf, path, float64(size))
	for f.Measure(text).Right > maxWidth && size > MinFontSize {
		size--
		f = newFont(ttf, path, float64(size))
	}
	return f, nil
}

func (f *Font) Face() font.Face { return f.face }

// Measure returns the ink box of text drawn with its top-left anchor at
// (0, 0). The top edge of the anchor is the font's ascent line, so Top is
// usually positive.
func (f *Font) Measure(text string) BBox {
	b, _ := font.BoundString(f.face, text)
	asc := f.ascent()
	return BBox{
		Left:   b.Min.X.Floor(),
		Top:    (asc + b.Min.Y).Floor(),
		Right:  b.Max.X.Ceil(),
		Bottom: (asc + b.Max.Y).Ceil(),
	}
}

// baseline converts a top-left anchor y into the baseline y used for drawing.
func (f *Font) baseline(y int) float64 {
	return float64(fixed.I(y)+f.ascent()) / 64
}

func (f *Font) ascent() fixed.Int26_6 {
	return f.face.Metrics().Ascent
}

func newFont(ttf *truetype.Font, path string, size float64) *Font {
	return &Font{
		Path: path,
		Size: size,
		face: truetype.NewFace(ttf, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		}),
	}
}

func parseFontFile(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("font %s: %w", path, ErrAssetNotFound)
		}
		return nil, fmt.Errorf("reading font %s: %w", path, err)
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return ttf, nil
}
