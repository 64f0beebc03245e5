package cards

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrMissingColumns is returned when a batch file header lacks card fields.
var ErrMissingColumns = errors.New("missing columns")

// PhotoColumn names the optional batch column holding a photo path.
const PhotoColumn = "photo"

// LoadRecordsCSV reads a batch file. The header must name every card field,
// with either the desktop form keys or the canonical keys; a "photo" column
// is optional. Unknown columns are ignored.
func LoadRecordsCSV(path string) ([]Row, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}

	cols := map[string]int{}
	photoCol := -1
	for i, h := range rows[0] {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if strings.EqualFold(h, PhotoColumn) {
			photoCol = i
			continue
		}
		if canon, ok := CanonicalKey(h); ok {
			cols[canon] = i
		}
	}
	var missing []string
	for _, f := range Fields {
		if _, ok := cols[f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("csv %s: %w: %s", path, ErrMissingColumns, strings.Join(missing, ", "))
	}

	get := func(row []string, idx int) string {
		if idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Row{}
	for _, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		var rec Record
		for f, idx := range cols {
			rec.Set(f, get(row, idx))
		}
		out = append(out, Row{Record: rec, Photo: get(row, photoCol)})
	}
	return out, nil
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
