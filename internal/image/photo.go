package imagepkg

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PhotoState records which branch of the photo compositor produced the tile.
type PhotoState int

const (
	PhotoMissing PhotoState = iota
	PhotoSupplied
	PhotoError
)

func (s PhotoState) String() string {
	switch s {
	case PhotoSupplied:
		return "supplied"
	case PhotoError:
		return "error"
	default:
		return "missing"
	}
}

// Placeholder labels.
const (
	LabelNoPhoto    = "No Photo"
	LabelErrorPhoto = "Error Photo"
)

var errEmptyPhoto = errors.New("photo has no pixels")

// ErrPhotoTooLarge is reported for photos whose declared dimensions exceed
// MaxPhotoPixels. They are rejected before any pixel is decoded.
var ErrPhotoTooLarge = errors.New("photo too large")

// MaxPhotoPixels bounds width*height of an encoded photo.
const MaxPhotoPixels = 25_000_000

// Photo is an optional photograph handed to the renderer. A nil *Photo means
// no photo was supplied.
type Photo struct {
	data []byte
	img  image.Image
	err  error
}

// PhotoBytes wraps encoded image bytes (bmp, gif, jpeg, png, tiff or webp).
func PhotoBytes(data []byte) *Photo { return &Photo{data: data} }

// PhotoImage wraps an already decoded image.
func PhotoImage(img image.Image) *Photo { return &Photo{img: img} }

// PhotoUnreadable marks a photo the caller failed to read. It renders as the
// error placeholder.
func PhotoUnreadable(err error) *Photo {
	if err == nil {
		err = errors.New("unreadable photo")
	}
	return &Photo{err: err}
}

func (p *Photo) decode() (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("decode photo: %v", r)
		}
	}()
	switch {
	case p.err != nil:
		return nil, p.err
	case p.img != nil:
		img = p.img
	case len(p.data) == 0:
		return nil, errEmptyPhoto
	default:
		if err = checkDimensions(p.data); err != nil {
			return nil, err
		}
		img, err = imaging.Decode(bytes.NewReader(p.data))
		if err != nil {
			return nil, fmt.Errorf("decode photo: %w", err)
		}
	}
	if img.Bounds().Empty() {
		return nil, errEmptyPhoto
	}
	return img, nil
}

// checkDimensions reads only the image header.
func checkDimensions(data []byte) error {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode photo: %w", err)
	}
	if int64(cfg.Width)*int64(cfg.Height) > MaxPhotoPixels {
		return fmt.Errorf("%w: %s %dx%d", ErrPhotoTooLarge, format, cfg.Width, cfg.Height)
	}
	return nil
}

// thumbnail produces the tile for the photo slot. Any failure is absorbed
// into the error placeholder and returned only for reporting.
func thumbnail(p *Photo, label font.Face) (image.Image, PhotoState, error) {
	if p == nil {
		return placeholder(LabelNoPhoto, color.Black, label), PhotoMissing, nil
	}
	img, err := p.decode()
	if err != nil {
		return placeholder(LabelErrorPhoto, colorAlert, label), PhotoError, err
	}
	return stretch(img), PhotoSupplied, nil
}

// stretch resizes to the photo slot without keeping the aspect ratio and
// drops transparency.
func stretch(img image.Image) *image.NRGBA {
	thumb := imaging.Resize(img, PhotoWidth, PhotoHeight, imaging.CatmullRom)
	for i := 3; i < len(thumb.Pix); i += 4 {
		thumb.Pix[i] = 0xff
	}
	return thumb
}

func placeholder(label string, c color.Color, face font.Face) image.Image {
	tile := imaging.New(PhotoWidth, PhotoHeight, colorPlaceholder)
	dc := gg.NewContextForImage(tile)
	dc.SetFontFace(face)
	dc.SetColor(c)
	dc.DrawString(label, 5, float64(30+ascent(face)))
	return dc.Image()
}
