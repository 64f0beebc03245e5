package imagepkg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/youruser/idcardapp/internal/cards"
	"github.com/youruser/idcardapp/internal/logging"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestRender_CanvasSize(t *testing.T) {
	r := newTestRenderer(t)
	for _, photo := range []*Photo{
		nil,
		PhotoBytes([]byte("not an image")),
		PhotoBytes(encodePNG(t, solid(300, 20, color.NRGBA{R: 10, G: 200, B: 10, A: 255}))),
	} {
		card := r.Render(sampleRecord(), photo)
		require.Equal(t, image.Rect(0, 0, CanvasWidth, CanvasHeight), card.Image.Bounds())
	}
}

func TestRender_Background(t *testing.T) {
	card := newTestRenderer(t).Render(sampleRecord(), nil)
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	requireRGB(t, card.Image, 0, 0, white, 0)
	requireRGB(t, card.Image, CanvasWidth-1, CanvasHeight-1, white, 0)
	requireRGB(t, card.Image, 395, 150, white, 0)
}

func TestRender_BannerFill(t *testing.T) {
	card := newTestRenderer(t).Render(sampleRecord(), nil)
	b := card.Layout.Banner
	requireRGB(t, card.Image, b.Min.X, b.Min.Y, colorBanner, 0)
	requireRGB(t, card.Image, b.Max.X-1, card.Layout.BannerBottom, colorBanner, 0)
	requireRGB(t, card.Image, b.Min.X-1, b.Min.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0)
}

func TestRender_MissingPhotoPlaceholder(t *testing.T) {
	card := newTestRenderer(t).Render(sampleRecord(), nil)
	require.Equal(t, PhotoMissing, card.Photo)

	p := card.Layout.Photo
	requireRGB(t, card.Image, p.Min.X+1, p.Min.Y+1, colorPlaceholder, 0)
	requireRGB(t, card.Image, p.Max.X-1, p.Max.Y-1, colorPlaceholder, 0)
	require.Zero(t, countReddish(card.Image, p))
}

func TestRender_ErrorPhotoPlaceholder(t *testing.T) {
	for name, photo := range map[string]*Photo{
		"garbage":    PhotoBytes([]byte("definitely not a jpeg")),
		"empty":      PhotoBytes(nil),
		"unreadable": PhotoUnreadable(errors.New("disk on fire")),
		"zero image": PhotoImage(image.NewRGBA(image.Rect(0, 0, 0, 0))),
	} {
		t.Run(name, func(t *testing.T) {
			card := newTestRenderer(t).Render(sampleRecord(), photo)
			require.Equal(t, PhotoError, card.Photo)

			p := card.Layout.Photo
			requireRGB(t, card.Image, p.Min.X+1, p.Min.Y+1, colorPlaceholder, 0)
			require.Positive(t, countReddish(card.Image, p))
		})
	}
}

// requireTile asserts the photo slot of card holds exactly want.
func requireTile(t *testing.T, card *Card, want image.Image) {
	t.Helper()
	slot := card.Layout.Photo
	require.Equal(t, slot.Size(), want.Bounds().Size())
	for y := 0; y < slot.Dy(); y++ {
		for x := 0; x < slot.Dx(); x++ {
			got := card.Image.RGBAAt(slot.Min.X+x, slot.Min.Y+y)
			exp := color.RGBAModel.Convert(want.At(want.Bounds().Min.X+x, want.Bounds().Min.Y+y))
			require.Equal(t, exp, got, "tile pixel (%d,%d)", x, y)
		}
	}
}

func TestRender_PlaceholderLabels(t *testing.T) {
	fonts := BundledFontSource().Open()
	defer fonts.Close()
	noPhoto := placeholder(LabelNoPhoto, color.Black, fonts.Small)
	errPhoto := placeholder(LabelErrorPhoto, colorAlert, fonts.Small)
	require.NotEqual(t, noPhoto.(*image.RGBA).Pix, errPhoto.(*image.RGBA).Pix)

	r := newTestRenderer(t)
	requireTile(t, r.Render(sampleRecord(), nil), noPhoto)
	requireTile(t, r.Render(sampleRecord(), PhotoBytes([]byte("junk"))), errPhoto)
}

func TestRender_ErrorPhotoIsLogged(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(logging.New(&buf, "warn"), BundledFontSource())
	r.Render(sampleRecord(), PhotoBytes([]byte("junk")))
	require.Contains(t, buf.String(), "using placeholder")
}

// pngHeader returns a PNG holding only a signature and an IHDR chunk for a
// w x h 8-bit grey image.
func pngHeader(w, h uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8
	var word [4]byte
	binary.BigEndian.PutUint32(word[:], uint32(len(ihdr)))
	buf.Write(word[:])
	crc := crc32.NewIEEE()
	crc.Write([]byte("IHDR"))
	crc.Write(ihdr)
	buf.WriteString("IHDR")
	buf.Write(ihdr)
	binary.BigEndian.PutUint32(word[:], crc.Sum32())
	buf.Write(word[:])
	return buf.Bytes()
}

func TestRender_OversizedPhotoIsRejected(t *testing.T) {
	data := pngHeader(20000, 20000)
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, 20000, cfg.Width)

	_, err = PhotoBytes(data).decode()
	require.ErrorIs(t, err, ErrPhotoTooLarge)

	card := newTestRenderer(t).Render(sampleRecord(), PhotoBytes(data))
	require.Equal(t, PhotoError, card.Photo)
	require.Positive(t, countReddish(card.Image, card.Layout.Photo))
}

func TestRender_SuppliedPhotoIsStretched(t *testing.T) {
	green := color.NRGBA{R: 20, G: 180, B: 40, A: 255}
	card := newTestRenderer(t).Render(sampleRecord(), PhotoBytes(encodePNG(t, solid(500, 40, green))))
	require.Equal(t, PhotoSupplied, card.Photo)

	p := card.Layout.Photo
	want := color.RGBA{R: green.R, G: green.G, B: green.B, A: 255}
	requireRGB(t, card.Image, p.Min.X+PhotoWidth/2, p.Min.Y+PhotoHeight/2, want, 2)
	requireRGB(t, card.Image, p.Min.X, p.Min.Y, want, 2)
	requireRGB(t, card.Image, p.Max.X-1, p.Max.Y-1, want, 2)
	requireRGB(t, card.Image, p.Max.X, p.Min.Y+10, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 0)
}

func TestRender_TransparentPhotoIsOpaque(t *testing.T) {
	ghost := color.NRGBA{R: 0, G: 0, B: 200, A: 0}
	card := newTestRenderer(t).Render(sampleRecord(), PhotoImage(solid(10, 10, ghost)))
	require.Equal(t, PhotoSupplied, card.Photo)

	p := card.Layout.Photo
	got := card.Image.RGBAAt(p.Min.X+PhotoWidth/2, p.Min.Y+PhotoHeight/2)
	require.Equal(t, uint8(255), got.A)
	require.Less(t, got.R, uint8(250))
}

func TestRender_MissingFieldsEqualEmptyFields(t *testing.T) {
	r := newTestRenderer(t)
	sparse := r.Render(cards.FromMap(map[string]string{"name": "Asha"}), nil)
	explicit := r.Render(cards.FromMap(map[string]string{
		"name":          "Asha",
		"father_name":   "",
		"roll_number":   "",
		"branch":        "",
		"session":       "",
		"blood_group":   "",
		"date_of_birth": "",
		"address":       "",
	}), nil)

	require.Equal(t, "Roll NO: ", sparse.Layout.Fields[2].Text)
	require.Equal(t, explicit.Layout, sparse.Layout)
	require.Equal(t, explicit.Image.Pix, sparse.Image.Pix)
}

func TestRender_FallbackFont(t *testing.T) {
	r := NewRenderer(logging.Discard(), LoadFontFile("/nonexistent/arial.ttf"))
	card := r.Render(sampleRecord(), nil)
	require.True(t, card.FontFallback)
	require.Equal(t, image.Rect(320, 145, 390, 225), card.Layout.Photo)
	require.Equal(t, image.Rect(0, 0, CanvasWidth, CanvasHeight), card.Image.Bounds())
}

func TestRender_NilFontSourceUsesBundled(t *testing.T) {
	card := NewRenderer(logging.Discard(), nil).Render(sampleRecord(), nil)
	require.False(t, card.FontFallback)
}

func TestRender_Concurrent(t *testing.T) {
	r := newTestRenderer(t)
	photo := encodePNG(t, solid(64, 64, color.NRGBA{R: 200, G: 100, B: 0, A: 255}))
	want := r.Render(sampleRecord(), PhotoBytes(photo)).Image.Pix

	var wg sync.WaitGroup
	results := make([][]byte, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Render(sampleRecord(), PhotoBytes(photo)).Image.Pix
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
