package cards

import (
	"strings"
	"unicode/utf8"
)

// MaskGlyph replaces every character of a masked value.
const MaskGlyph = "x"

// Mask hides a value behind one MaskGlyph per character.
func Mask(raw string) string {
	return strings.Repeat(MaskGlyph, utf8.RuneCountInString(raw))
}

// MaskedRollNumber is the only form of the roll number that may be rendered.
func (r Record) MaskedRollNumber() string {
	return Mask(r.RollNumber)
}
