package imagepkg

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Point sizes of the three header roles.
const (
	SmallSize  = 12
	MediumSize = 14
	LargeSize  = 16

	fontDPI = 72
)

// newFace is replaced in tests.
var newFace = opentype.NewFace

// BundledFontName names the font used when no font file is configured.
const BundledFontName = "goregular"

// FontSource is the outcome of loading the named font resource: either a
// parsed scalable font, or a fallback carrying the reason the resource could
// not be used. It is read-only and safe to share between renders.
type FontSource struct {
	name   string
	parsed *opentype.Font
	err    error
}

// LoadFontFile loads a TrueType/OpenType file. An empty path selects the
// bundled Go Regular font. Failures never abort: the returned source reports
// Fallback() and faces come from the built-in fixed-size font.
func LoadFontFile(path string) *FontSource {
	if path == "" {
		return BundledFontSource()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return &FontSource{name: path, err: fmt.Errorf("read font: %w", err)}
	}
	return LoadFontBytes(path, data)
}

// LoadFontBytes parses raw font data.
func LoadFontBytes(name string, data []byte) *FontSource {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return &FontSource{name: name, err: fmt.Errorf("parse font: %w", err)}
	}
	return &FontSource{name: name, parsed: parsed}
}

// BundledFontSource returns the embedded Go Regular font.
func BundledFontSource() *FontSource {
	return LoadFontBytes(BundledFontName, goregular.TTF)
}

// Name returns the requested font name or path.
func (s *FontSource) Name() string { return s.name }

// Fallback reports whether faces come from the built-in fixed-size font.
func (s *FontSource) Fallback() bool { return s.parsed == nil }

// Err returns why the named font could not be used, if it could not.
func (s *FontSource) Err() error { return s.err }

// Open creates a fresh set of faces for a single render. The caller must
// Close it.
func (s *FontSource) Open() *FontSet {
	if s.Fallback() {
		return fallbackFontSet()
	}
	set := &FontSet{Detail: basicfont.Face7x13}
	for _, slot := range []struct {
		dst  *font.Face
		size float64
	}{
		{&set.Small, SmallSize},
		{&set.Medium, MediumSize},
		{&set.Large, LargeSize},
	} {
		face, err := newFace(s.parsed, &opentype.FaceOptions{
			Size:    slot.size,
			DPI:     fontDPI,
			Hinting: font.HintingFull,
		})
		if err != nil {
			set.Close()
			fallback := fallbackFontSet()
			fallback.err = fmt.Errorf("open %s at %vpt: %w", s.name, slot.size, err)
			return fallback
		}
		*slot.dst = face
		set.owned = append(set.owned, face)
	}
	return set
}

// FontSet holds the faces of one render.
type FontSet struct {
	Small  font.Face
	Medium font.Face
	Large  font.Face
	// Detail draws the field block.
	Detail font.Face

	fallback bool
	err      error
	owned    []font.Face
}

func fallbackFontSet() *FontSet {
	return &FontSet{
		Small:    basicfont.Face7x13,
		Medium:   basicfont.Face7x13,
		Large:    basicfont.Face7x13,
		Detail:   basicfont.Face7x13,
		fallback: true,
	}
}

// Fallback reports whether the header faces are the built-in font.
func (fs *FontSet) Fallback() bool { return fs.fallback }

// Err reports why faces could not be created from a usable font source.
func (fs *FontSet) Err() error { return fs.err }

// Face returns the face for a text role.
func (fs *FontSet) Face(role Role) font.Face {
	switch role {
	case RoleSmall:
		return fs.Small
	case RoleMedium:
		return fs.Medium
	case RoleLarge:
		return fs.Large
	default:
		return fs.Detail
	}
}

// Close releases the faces opened for this set.
func (fs *FontSet) Close() error {
	var first error
	for _, f := range fs.owned {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
	}
	fs.owned = nil
	return first
}
