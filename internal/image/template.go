package imagepkg

import (
	"image"
	"image/color"
	"path/filepath"
)

// Canvas size of the cinéfil poster.
const (
	PosterWidth  = 2400
	PosterHeight = 2940
)

// The constants below were tuned by eye for the Gloock/Charmonman pairing
// and the cinéfil wordmark. They carry no meaning outside this design.
const (
	// BlurAnchorDivisor places the bottom of the blur layer at height/1.2.
	BlurAnchorDivisor = 1.2
	// TitlePadding is the horizontal space kept free around the title.
	TitlePadding = 200
	// BrandBaselineOffset is the distance from the bottom edge to the
	// wordmark's anchor line.
	BrandBaselineOffset = 450
	// RightInfoDivisor and LeftInfoDivisor scale the wordmark width into the
	// gap between the wordmark and the info labels.
	RightInfoDivisor = 1.3
	LeftInfoDivisor  = 3
	BrandFontSize    = 126
	InfoFontSize     = 44
)

// TextRun is a fixed string drawn with one font file at one size.
type TextRun struct {
	Text     string
	FontPath string
	Size     float64
}

// Template describes one poster design. Only the title text and the source
// image change between renders.
type Template struct {
	Width, Height int

	TitleFontPath  string
	TitleStartSize int
	TitlePadding   int

	// The wordmark is two runs in different typefaces set side by side.
	BrandPrimary   TextRun
	BrandSecondary TextRun

	// RightInfo sits to the right of the wordmark, LeftInfo to its left.
	RightInfo TextRun
	LeftInfo  TextRun

	BlurAnchorDivisor   float64
	BrandBaselineOffset int
	RightInfoDivisor    float64
	LeftInfoDivisor     float64

	Color color.Color
}

// DefaultTemplate returns the cinéfil design with fonts resolved from
// fontDir, which must contain Gloock/Gloock-Regular.ttf and
// Charmonman/Charmonman-Bold.ttf.
func DefaultTemplate(fontDir string) *Template {
	gloock := filepath.Join(fontDir, "Gloock", "Gloock-Regular.ttf")
	charmonman := filepath.Join(fontDir, "Charmonman", "Charmonman-Bold.ttf")
	return &Template{
		Width:               PosterWidth,
		Height:              PosterHeight,
		TitleFontPath:       gloock,
		TitleStartSize:      TitleStartSize,
		TitlePadding:        TitlePadding,
		BrandPrimary:        TextRun{Text: "ciné", FontPath: gloock, Size: BrandFontSize},
		BrandSecondary:      TextRun{Text: "fil", FontPath: charmonman, Size: BrandFontSize},
		RightInfo:           TextRun{Text: "salle J160", FontPath: gloock, Size: InfoFontSize},
		LeftInfo:            TextRun{Text: "mardi 20h30", FontPath: gloock, Size: InfoFontSize},
		BlurAnchorDivisor:   BlurAnchorDivisor,
		BrandBaselineOffset: BrandBaselineOffset,
		RightInfoDivisor:    RightInfoDivisor,
		LeftInfoDivisor:     LeftInfoDivisor,
		Color:               color.White,
	}
}

// MaxTitleWidth is the width budget handed to FitFont.
func (t *Template) MaxTitleWidth() int {
	return t.Width - t.TitlePadding
}

// BlurOffset returns how far the blur layer is shifted up. A negative value
// moves it down.
func (t *Template) BlurOffset(baseHeight, blurHeight int) int {
	return int(floorDivFloat(float64(baseHeight), t.BlurAnchorDivisor)) - blurHeight
}

// Measurements holds the zero-origin boxes of every run on the poster.
type Measurements struct {
	Title          BBox
	BrandPrimary   BBox
	BrandSecondary BBox
	RightInfo      BBox
	LeftInfo       BBox
}

// Positions holds the top-left anchor of every run on the poster.
type Positions struct {
	Title          image.Point
	BrandPrimary   image.Point
	BrandSecondary image.Point
	RightInfo      image.Point
	LeftInfo       image.Point
}

// Layout places every run. The wordmark is centered as one unit and the
// info labels hang off its primary run.
func (t *Template) Layout(m Measurements) Positions {
	var p Positions
	p.Title = image.Pt(CenterPosition(t.Width, m.Title), t.Height-t.Height/4)

	brand := UnionBBox(m.BrandPrimary, m.BrandSecondary)
	start := CenterPosition(t.Width, brand)
	anchorY := t.Height - t.BrandBaselineOffset
	p.BrandPrimary = image.Pt(start, anchorY+m.BrandPrimary.Height()/4)
	p.BrandSecondary = image.Pt(start+m.BrandPrimary.Right, anchorY)

	brandW := m.BrandPrimary.Width() + m.BrandSecondary.Width()
	brandH := m.BrandPrimary.Height() + m.BrandSecondary.Height()
	infoY := p.BrandPrimary.Y + floorDiv(brandH, 4)
	p.RightInfo = image.Pt(
		p.BrandPrimary.X+m.RightInfo.Right+int(floorDivFloat(float64(brandW), t.RightInfoDivisor)),
		infoY,
	)
	p.LeftInfo = image.Pt(
		p.BrandPrimary.X-m.LeftInfo.Right-int(floorDivFloat(float64(brandW), t.LeftInfoDivisor)),
		infoY,
	)
	return p
}
