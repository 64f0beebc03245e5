package cards

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMissingField is returned by FromStrictMap when a required key is absent.
var ErrMissingField = errors.New("missing field")

// webAliases maps the short keys used by the web form onto canonical keys.
var webAliases = map[string]string{
	"fname":   FieldFatherName,
	"roll_no": FieldRollNumber,
	"dob":     FieldDateOfBirth,
}

// desktopKeys maps the keys used by the desktop form onto canonical keys.
var desktopKeys = map[string]string{
	"NAME":        FieldName,
	"F_NAME":      FieldFatherName,
	"roll_no":     FieldRollNumber,
	"Branch":      FieldBranch,
	"Session":     FieldSession,
	"blood_group": FieldBloodGroup,
	"DOB":         FieldDateOfBirth,
	"ADD.":        FieldAddress,
}

// CanonicalKey resolves a canonical key, a web form alias or a desktop form
// key. The second result is false for unrecognized keys.
func CanonicalKey(key string) (string, bool) {
	if k, ok := desktopKeys[key]; ok {
		return k, true
	}
	k := strings.ToLower(strings.TrimSpace(key))
	if alias, ok := webAliases[k]; ok {
		return alias, true
	}
	for _, f := range Fields {
		if f == k {
			return f, true
		}
	}
	return "", false
}

// FromMap builds a record from a free-form field map. Unrecognized keys are
// ignored and missing keys stay empty. A canonical key wins over an alias
// naming the same field.
func FromMap(m map[string]string) Record {
	var r Record
	for _, k := range sortedKeys(m) {
		canon, ok := CanonicalKey(k)
		if !ok || (k != canon && hasKey(m, canon)) {
			continue
		}
		r.Set(canon, m[k])
	}
	return r
}

// FromStrictMap builds a record from a map that must name every field, using
// either the desktop form keys or the canonical keys.
func FromStrictMap(m map[string]string) (Record, error) {
	var r Record
	seen := map[string]bool{}
	for _, k := range sortedKeys(m) {
		canon, ok := CanonicalKey(k)
		if !ok {
			continue
		}
		r.Set(canon, m[k])
		seen[canon] = true
	}
	var missing []string
	for _, f := range Fields {
		if !seen[f] {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}
	return r, nil
}

func hasKey(m map[string]string, k string) bool {
	_, ok := m[k]
	return ok
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
