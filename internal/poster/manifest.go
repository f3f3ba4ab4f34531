package poster

import (
	"fmt"
	"strings"
)

// ExportManifest summarizes a run, one line per result in render order.
func ExportManifest(title string, results []Result) string {
	lines := []string{}
	if title != "" {
		lines = append(lines, "# "+title)
	}
	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
			lines = append(lines, fmt.Sprintf("ok %s %d %s", r.Label, r.Index, r.Output))
		} else {
			lines = append(lines, fmt.Sprintf("failed %s %d %s: %s", r.Label, r.Index, r.Source, r.Error))
		}
	}
	lines = append(lines, fmt.Sprintf("%d/%d rendered", ok, len(results)))
	return strings.Join(lines, "\n") + "\n"
}
