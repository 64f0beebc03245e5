package imagepkg

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"image/png"

	qrcode "github.com/skip2/go-qrcode"
)

// ErrInvalidDigest is returned for strings that are not card digests.
var ErrInvalidDigest = errors.New("invalid card digest")

// VerificationText is the payload of a card's verification QR code.
func VerificationText(digest string) (string, error) {
	if len(digest) != DigestLen {
		return "", ErrInvalidDigest
	}
	if _, err := hex.DecodeString(digest); err != nil {
		return "", ErrInvalidDigest
	}
	return "idcard:" + digest, nil
}

// QRCode is an encoded verification QR code.
type QRCode struct {
	Text string
	PNG  []byte
	// Size is the edge length of the PNG in pixels.
	Size int
}

// VerificationQR encodes the verification payload of digest as a size x size
// PNG.
func VerificationQR(digest string, size int) (*QRCode, error) {
	text, err := VerificationText(digest)
	if err != nil {
		return nil, err
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	data, err := q.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return &QRCode{Text: text, PNG: data, Size: cfg.Width}, nil
}
