package cli

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	imagepkg "github.com/youruser/idcardapp/internal/image"
	"github.com/youruser/idcardapp/internal/util"
)

// writeCard encodes img in the format named by the extension of path, writes
// it and returns the digest of the written bytes.
func writeCard(img image.Image, path string, quality int) (string, error) {
	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", fmt.Errorf("output %s: %w", path, err)
	}
	var buf bytes.Buffer
	if err := imagepkg.Encode(&buf, img, format, quality); err != nil {
		return "", fmt.Errorf("encode %s: %w", path, err)
	}
	if err := util.EnsureDir(filepath.Dir(path)); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return imagepkg.Digest(buf.Bytes()), nil
}

// photoFile reads a photo from disk. An empty path means no photo; a read
// failure becomes the error placeholder rather than aborting.
func photoFile(path string) *imagepkg.Photo {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return imagepkg.PhotoUnreadable(err)
	}
	return imagepkg.PhotoBytes(data)
}
