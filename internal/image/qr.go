package imagepkg

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// MoviePageURL is the public TMDB page a poster's QR badge points to.
func MoviePageURL(movieID int) string {
	return fmt.Sprintf("https://www.themoviedb.org/movie/%d", movieID)
}

// GenerateQRPNG returns PNG bytes of a QR code for the given text.
func GenerateQRPNG(text string, size int) ([]byte, error) {
	pngBytes, err := qrcode.Encode(text, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encoding QR: %w", err)
	}
	return pngBytes, nil
}
