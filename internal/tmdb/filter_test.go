package tmdb

import "testing"

func TestFilter(t *testing.T) {
	images := []Image{
		{FilePath: "/en.jpg", Language: "en", Width: 2000, Height: 3000},
		{FilePath: "/fr.jpg", Language: "fr", Width: 1000, Height: 1500},
		{FilePath: "/none.jpg", Language: "", Width: 2000, Height: 3000},
		{FilePath: "/de.jpg", Language: "de", Width: 500, Height: 750},
	}

	tests := []struct {
		name string
		opt  FilterOptions
		want []string
	}{
		{"all", FilterOptions{}, []string{"/en.jpg", "/fr.jpg", "/none.jpg", "/de.jpg"}},
		{"languages", FilterOptions{Languages: []string{"EN", "fr"}}, []string{"/en.jpg", "/fr.jpg"}},
		{"null language", FilterOptions{Languages: []string{"null"}}, []string{"/none.jpg"}},
		{"min width", FilterOptions{MinWidth: 1000}, []string{"/en.jpg", "/fr.jpg", "/none.jpg"}},
		{"min height", FilterOptions{MinHeight: 2000}, []string{"/en.jpg", "/none.jpg"}},
		{"limit", FilterOptions{Limit: 2}, []string{"/en.jpg", "/fr.jpg"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(images, tt.opt)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d images, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].FilePath != tt.want[i] {
					t.Errorf("[%d] = %s, want %s", i, got[i].FilePath, tt.want[i])
				}
			}
		})
	}
}
