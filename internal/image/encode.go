package imagepkg

import (
	"bytes"
	"encoding/hex"
	"image"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the quality cards are encoded with for transport.
const DefaultJPEGQuality = 85

// Encode writes img in the given format. JPEG quality outside 1-100 falls
// back to DefaultJPEGQuality.
func Encode(w io.Writer, img image.Image, format imaging.Format, quality int) error {
	if quality <= 0 || quality > 100 {
		quality = DefaultJPEGQuality
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(quality))
}

// EncodeJPEG returns img as JPEG bytes.
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(64 * 1024)
	if err := Encode(&buf, img, imaging.JPEG, quality); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DigestLen is the length of a card digest in hex characters.
const DigestLen = 16

// Digest returns the xxHash64 of encoded card bytes as 16 hex characters.
func Digest(data []byte) string {
	var b [8]byte
	h := xxhash.Sum64(data)
	for i := 7; i >= 0; i-- {
		b[i] = byte(h)
		h >>= 8
	}
	return hex.EncodeToString(b[:])
}
