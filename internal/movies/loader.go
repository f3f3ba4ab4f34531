package movies

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Movie is one line of a movie list: the title drawn on the poster and the
// TMDB id its images come from.
type Movie struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Languages []string `json:"languages"`
}

func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	parts := strings.Split(s, "/")
	out := []string{}
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

// LoadMovies reads a CSV with a title,id[,languages] header. Languages are
// separated by "/", e.g. "en/fr/null".
func LoadMovies(path string) ([]Movie, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"title", "id"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv %s: missing %q column", path, required)
		}
	}

	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Movie{}
	for i, row := range rows[1:] {
		title := get(row, "title")
		if title == "" {
			continue
		}
		id, err := strconv.Atoi(get(row, "id"))
		if err != nil {
			return nil, fmt.Errorf("csv %s line %d: bad id: %w", path, i+2, err)
		}
		out = append(out, Movie{
			ID:        id,
			Title:     title,
			Languages: parseListCell(get(row, "languages")),
		})
	}
	return out, nil
}
