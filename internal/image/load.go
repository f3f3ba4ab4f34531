package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// OpenImage decodes the image file at path. TMDB serves JPEG, PNG and WebP.
func OpenImage(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("image %s: %w", path, ErrAssetNotFound)
		}
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}
