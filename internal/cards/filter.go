package cards

import "strings"

// FilterOptions narrows a batch down to the rows worth rendering. Empty
// options select everything.
type FilterOptions struct {
	Branches    []string
	Sessions    []string
	BloodGroups []string
	FreeWords   string
}

func equalsAny(v string, candidates []string) bool {
	for _, c := range candidates {
		if strings.EqualFold(strings.TrimSpace(v), strings.TrimSpace(c)) {
			return true
		}
	}
	return false
}

// Filter keeps the rows matching every non-empty option. Free words match
// case-insensitively against name, father's name and address; the roll
// number is never searched.
func Filter(rows []Row, opt FilterOptions) []Row {
	var out []Row
	for _, row := range rows {
		rec := row.Record
		if len(opt.Branches) > 0 && !equalsAny(rec.Branch, opt.Branches) {
			continue
		}
		if len(opt.Sessions) > 0 && !equalsAny(rec.Session, opt.Sessions) {
			continue
		}
		if len(opt.BloodGroups) > 0 && !equalsAny(rec.BloodGroup, opt.BloodGroups) {
			continue
		}
		if opt.FreeWords != "" {
			hay := strings.ToLower(rec.Name + " " + rec.FatherName + " " + rec.Address)
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, row)
	}
	return out
}
