package imagepkg

import (
	"image"

	"github.com/fogleman/gg"
	"github.com/youruser/idcardapp/internal/cards"
	"golang.org/x/exp/slog"
	xdraw "golang.org/x/image/draw"
)

// Renderer draws ID cards. It holds no per-card state, so one Renderer can
// serve concurrent callers.
type Renderer struct {
	fonts  *FontSource
	logger *slog.Logger
}

// NewRenderer creates a renderer. A nil font source selects the bundled
// font. A font source in fallback mode is reported once as a warning.
func NewRenderer(logger *slog.Logger, fonts *FontSource) *Renderer {
	logger = logger.With(slog.String("component", "renderer"))
	if fonts == nil {
		fonts = BundledFontSource()
	}
	if fonts.Fallback() {
		logger.Warn("font unavailable, using built-in default font; card may look different",
			slog.String("font", fonts.Name()), slog.Any("err", fonts.Err()))
	}
	return &Renderer{fonts: fonts, logger: logger}
}

// Card is a rendered ID card.
type Card struct {
	Image        *image.RGBA
	Layout       Layout
	Photo        PhotoState
	FontFallback bool
}

// Render draws the card for rec. photo may be nil. Missing or unusable
// photos and missing fonts degrade the output but never fail the call.
func (r *Renderer) Render(rec cards.Record, photo *Photo) *Card {
	fonts := r.fonts.Open()
	defer fonts.Close()
	if err := fonts.Err(); err != nil {
		r.logger.Warn("font faces unavailable, using built-in default font; card may look different",
			slog.String("font", r.fonts.Name()), slog.Any("err", err))
	}

	canvas := image.NewRGBA(image.Rect(0, 0, CanvasWidth, CanvasHeight))
	xdraw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, xdraw.Src)
	dc := gg.NewContextForRGBA(canvas)

	layout := ComputeLayout(fonts, rec)

	for _, t := range layout.Header {
		drawText(dc, fonts, t)
	}

	b := layout.Banner
	dc.SetColor(colorBanner)
	dc.DrawRectangle(float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()))
	dc.Fill()
	drawText(dc, fonts, layout.BannerText)

	tile, state, err := thumbnail(photo, fonts.Small)
	if err != nil {
		r.logger.Warn("processing photo, using placeholder", slog.Any("err", err))
	}
	// Opaque paste: the tile replaces the canvas pixels.
	xdraw.Draw(canvas, layout.Photo, tile, tile.Bounds().Min, xdraw.Src)

	for _, t := range layout.Fields {
		drawText(dc, fonts, t)
	}

	return &Card{
		Image:        canvas,
		Layout:       layout,
		Photo:        state,
		FontFallback: fonts.Fallback(),
	}
}

func drawText(dc *gg.Context, fonts *FontSet, t Text) {
	if t.Text == "" {
		return
	}
	face := fonts.Face(t.Role)
	dc.SetFontFace(face)
	dc.SetColor(t.Color)
	dc.DrawString(t.Text, float64(t.X), float64(t.Y+ascent(face)))
}
