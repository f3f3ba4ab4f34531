package tmdb

import "strings"

// FilterOptions narrows an image list after it was fetched.
type FilterOptions struct {
	// Languages keeps images whose language is listed; "null" keeps images
	// without a language. Empty keeps everything.
	Languages []string
	MinWidth  int
	MinHeight int
	// Limit caps the result length when positive.
	Limit int
}

func matchesLanguage(lang string, wanted []string) bool {
	for _, w := range wanted {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "null" && lang == "" {
			return true
		}
		if w != "" && w == strings.ToLower(lang) {
			return true
		}
	}
	return false
}

// Filter returns the images matching opt, in their original order.
func Filter(images []Image, opt FilterOptions) []Image {
	var out []Image
	for _, img := range images {
		if len(opt.Languages) > 0 && !matchesLanguage(img.Language, opt.Languages) {
			continue
		}
		if opt.MinWidth > 0 && img.Width < opt.MinWidth {
			continue
		}
		if opt.MinHeight > 0 && img.Height < opt.MinHeight {
			continue
		}
		out = append(out, img)
		if opt.Limit > 0 && len(out) == opt.Limit {
			break
		}
	}
	return out
}
