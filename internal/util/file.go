package util

import (
	"os"
	"regexp"
	"strings"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug turns a display name into a file-name fragment.
func Slug(s string) string {
	s = strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(s), "-"), "-")
	if s == "" {
		return "card"
	}
	return s
}
