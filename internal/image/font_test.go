package imagepkg

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestFitFont_FitsAtStartSize(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	f, err := FitFont("A", tpl.TitleFontPath, 100000, TitleStartSize)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size != TitleStartSize {
		t.Errorf("size = %v, want %d", f.Size, TitleStartSize)
	}
}

func TestFitFont_StopsAtFloor(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	f, err := FitFont("The Substance", tpl.TitleFontPath, 0, TitleStartSize)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size != MinFontSize {
		t.Errorf("size = %v, want %d", f.Size, MinFontSize)
	}
}

func TestFitFont_ResultFits(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	f, err := FitFont("The Substance", tpl.TitleFontPath, 800, TitleStartSize)
	if err != nil {
		t.Fatal(err)
	}
	if f.Size >= TitleStartSize || f.Size <= MinFontSize {
		t.Fatalf("size = %v, expected a size strictly between the bounds", f.Size)
	}
	if right := f.Measure("The Substance").Right; right > 800 {
		t.Errorf("right edge %d exceeds budget 800", right)
	}
	bigger, err := LoadFont(tpl.TitleFontPath, f.Size+1)
	if err != nil {
		t.Fatal(err)
	}
	if right := bigger.Measure("The Substance").Right; right <= 800 {
		t.Errorf("size %v also fits (right edge %d); search stopped too early", f.Size+1, right)
	}
}

func TestFitFont_MonotonicInWidth(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	prev := 0.0
	for _, width := range []int{0, 50, 100, 200, 400, 800, 1600, 3200} {
		f, err := FitFont("Anatomie d'une chute", tpl.TitleFontPath, width, TitleStartSize)
		if err != nil {
			t.Fatal(err)
		}
		if f.Size < prev {
			t.Errorf("width %d: size %v is smaller than %v for a narrower budget", width, f.Size, prev)
		}
		prev = f.Size
	}
}

func TestFitFont_MissingFile(t *testing.T) {
	_, err := FitFont("A", filepath.Join(t.TempDir(), "nope.ttf"), 100, TitleStartSize)
	if !errors.Is(err, ErrAssetNotFound) {
		t.Errorf("err = %v, want ErrAssetNotFound", err)
	}
}

func TestMeasure(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	f, err := LoadFont(tpl.TitleFontPath, 126)
	if err != nil {
		t.Fatal(err)
	}

	if w := f.Measure("").Width(); w != 0 {
		t.Errorf("empty text width = %d, want 0", w)
	}

	b := f.Measure("ciné")
	if b.Left > b.Right || b.Top > b.Bottom {
		t.Fatalf("inverted box %+v", b)
	}
	if b.Width() <= 0 || b.Height() <= 0 {
		t.Errorf("box %+v has no area", b)
	}
	if b.Top < 0 {
		t.Errorf("top %d is above the ascent line", b.Top)
	}
	if longer := f.Measure("cinéfil"); longer.Right <= b.Right {
		t.Errorf("longer text right edge %d <= %d", longer.Right, b.Right)
	}
}

func TestTitleCentered(t *testing.T) {
	tpl := DefaultTemplate(writeTestFonts(t))
	f, err := FitFont("A", tpl.TitleFontPath, tpl.MaxTitleWidth(), tpl.TitleStartSize)
	if err != nil {
		t.Fatal(err)
	}
	box := f.Measure("A")
	pos := tpl.Layout(Measurements{Title: box})

	want := float64(PosterWidth-box.Width()) / 2
	if diff := float64(pos.Title.X) - want; diff < -1 || diff > 1 {
		t.Errorf("title x = %d, want %.1f ± 1", pos.Title.X, want)
	}
}
