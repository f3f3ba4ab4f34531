package imagepkg

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// writeTestFonts lays out the Go fonts under the directory names the default
// template expects and returns the font directory.
func writeTestFonts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string][]byte{
		filepath.Join(dir, "Gloock", "Gloock-Regular.ttf"):       goregular.TTF,
		filepath.Join(dir, "Charmonman", "Charmonman-Bold.ttf"): gobold.TTF,
	}
	for path, data := range files {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}
