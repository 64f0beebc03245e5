package batch

import (
	"fmt"
	"strings"
	"time"
)

// ExportText renders the batch as a plain-text manifest, one card per line
// in the order the cards were rendered.
func ExportText(b *Batch) string {
	lines := []string{}
	if b.Name != "" {
		lines = append(lines, "# "+b.Name)
	}
	lines = append(lines,
		"# batch "+b.ID,
		"# created "+b.CreatedAt.Format(time.RFC3339),
	)
	for _, e := range b.Entries {
		lines = append(lines, strings.TrimSpace(fmt.Sprintf("%s\t%s\t%s\t%s", e.File, e.Digest, e.Photo, e.Name)))
	}
	return strings.Join(lines, "\n") + "\n"
}
