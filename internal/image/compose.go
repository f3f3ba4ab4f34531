package imagepkg

import (
	"bytes"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// ComposePoster renders the poster for title from the images at sourcePath
// and blurPath and writes it as PNG to outputPath. On failure nothing is
// left at outputPath.
func ComposePoster(title, sourcePath, blurPath, outputPath string, tpl *Template) error {
	source, err := OpenImage(sourcePath)
	if err != nil {
		return &RenderError{Output: outputPath, Err: err}
	}
	blur, err := OpenImage(blurPath)
	if err != nil {
		return &RenderError{Output: outputPath, Err: err}
	}

	poster, err := RenderPoster(title, source, blur, tpl)
	if err != nil {
		return &RenderError{Output: outputPath, Err: err}
	}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, poster); err != nil {
		return &RenderError{Output: outputPath, Err: err}
	}
	if err := WriteFileAtomic(outputPath, buf.Bytes()); err != nil {
		return &RenderError{Output: outputPath, Err: err}
	}
	return nil
}

// RenderPoster composites source and the blur layer and draws the title,
// wordmark and info labels on top. The result keeps its alpha channel.
func RenderPoster(title string, source, blur image.Image, tpl *Template) (*image.NRGBA, error) {
	base := FillResize(source, tpl.Width, tpl.Height)
	canvas := overlayBlur(base, blur, tpl)

	fonts, err := loadFonts(title, tpl)
	if err != nil {
		return nil, err
	}
	runs := fonts.runs(title, tpl)
	pos := tpl.Layout(Measurements{
		Title:          runs[0].measure(),
		BrandPrimary:   runs[1].measure(),
		BrandSecondary: runs[2].measure(),
		RightInfo:      runs[3].measure(),
		LeftInfo:       runs[4].measure(),
	})
	runs[0].at = pos.Title
	runs[1].at = pos.BrandPrimary
	runs[2].at = pos.BrandSecondary
	runs[3].at = pos.RightInfo
	runs[4].at = pos.LeftInfo

	dc := gg.NewContextForImage(canvas)
	dc.SetColor(tpl.Color)
	for _, r := range runs {
		dc.SetFontFace(r.font.Face())
		dc.DrawString(r.text, float64(r.at.X), r.font.baseline(r.at.Y))
	}
	return imaging.Clone(dc.Image()), nil
}

// overlayBlur stretches blur to the canvas, shifts it by the template's blur
// offset and blends it over base.
func overlayBlur(base *image.NRGBA, blur image.Image, tpl *Template) *image.NRGBA {
	layer := StretchResize(blur, tpl.Width, tpl.Height)
	offsetY := tpl.BlurOffset(base.Bounds().Dy(), layer.Bounds().Dy())

	shifted := imaging.New(tpl.Width, tpl.Height, color.NRGBA{})
	shifted = imaging.Paste(shifted, layer, image.Pt(0, -offsetY))
	return imaging.Overlay(base, shifted, image.Pt(0, 0), 1.0)
}

type posterFonts struct {
	title, brandPrimary, brandSecondary, rightInfo, leftInfo *Font
}

func loadFonts(title string, tpl *Template) (*posterFonts, error) {
	var (
		f   posterFonts
		err error
	)
	if f.title, err = FitFont(title, tpl.TitleFontPath, tpl.MaxTitleWidth(), tpl.TitleStartSize); err != nil {
		return nil, err
	}
	if f.brandPrimary, err = LoadFont(tpl.BrandPrimary.FontPath, tpl.BrandPrimary.Size); err != nil {
		return nil, err
	}
	if f.brandSecondary, err = LoadFont(tpl.BrandSecondary.FontPath, tpl.BrandSecondary.Size); err != nil {
		return nil, err
	}
	if f.rightInfo, err = LoadFont(tpl.RightInfo.FontPath, tpl.RightInfo.Size); err != nil {
		return nil, err
	}
	// both info labels normally share one font
	if tpl.LeftInfo.FontPath == tpl.RightInfo.FontPath && tpl.LeftInfo.Size == tpl.RightInfo.Size {
		f.leftInfo = f.rightInfo
	} else if f.leftInfo, err = LoadFont(tpl.LeftInfo.FontPath, tpl.LeftInfo.Size); err != nil {
		return nil, err
	}
	return &f, nil
}

type placedRun struct {
	text string
	font *Font
	at   image.Point
}

func (r *placedRun) measure() BBox { return r.font.Measure(r.text) }

// runs returns the poster's text in drawing order: title, wordmark, info.
func (f *posterFonts) runs(title string, tpl *Template) []placedRun {
	return []placedRun{
		{text: title, font: f.title},
		{text: tpl.BrandPrimary.Text, font: f.brandPrimary},
		{text: tpl.BrandSecondary.Text, font: f.brandSecondary},
		{text: tpl.RightInfo.Text, font: f.rightInfo},
		{text: tpl.LeftInfo.Text, font: f.leftInfo},
	}
}
