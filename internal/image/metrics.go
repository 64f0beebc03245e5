package imagepkg

import "golang.org/x/image/font"

// Measure returns the size of the ink bounding box of text drawn with face.
// The empty string measures (0, 0).
func Measure(face font.Face, text string) (width, height int) {
	if text == "" {
		return 0, 0
	}
	b, _ := font.BoundString(face, text)
	width = b.Max.X.Ceil() - b.Min.X.Floor()
	height = b.Max.Y.Ceil() - b.Min.Y.Floor()
	return max(width, 0), max(height, 0)
}

// ascent is the distance from a text block's top edge to its baseline.
func ascent(face font.Face) int {
	return face.Metrics().Ascent.Ceil()
}

// centerX returns the left edge that centers a span of width w on the
// canvas, rounding toward negative infinity.
func centerX(w int) int {
	return floorDiv(CanvasWidth-w, 2)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
