package imagepkg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/youruser/idcardapp/internal/cards"
	"github.com/youruser/idcardapp/internal/logging"
)

func sampleRecord() cards.Record {
	return cards.FromMap(map[string]string{
		"name":          "Asha Kumari",
		"father_name":   "Ram Kumar",
		"roll_number":   "12345",
		"branch":        "CSE",
		"session":       "2021-25",
		"blood_group":   "B+",
		"date_of_birth": "01-01-2003",
		"address":       "Gaya, Bihar",
	})
}

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	return NewRenderer(logging.Discard(), BundledFontSource())
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func requireRGB(t *testing.T, img *image.RGBA, x, y int, want color.RGBA, delta uint8) {
	t.Helper()
	got := img.RGBAAt(x, y)
	diff := func(a, b uint8) uint8 {
		if a > b {
			return a - b
		}
		return b - a
	}
	require.Truef(t,
		diff(got.R, want.R) <= delta && diff(got.G, want.G) <= delta && diff(got.B, want.B) <= delta,
		"pixel (%d,%d) = %v, want %v", x, y, got, want)
}

// countReddish counts pixels inside r that are clearly red.
func countReddish(img *image.RGBA, r image.Rectangle) int {
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c := img.RGBAAt(x, y)
			if int(c.R) > int(c.G)+60 && int(c.R) > int(c.B)+60 {
				n++
			}
		}
	}
	return n
}
