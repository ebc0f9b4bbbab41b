// Package export renders the sea without a window: still images, a height
// profile and video.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// WriteImage encodes img to path, picking PNG or BMP from the extension.
func WriteImage(path string, img image.Image) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	default:
		return fmt.Errorf("unsupported image format %q: use .png or .bmp", ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	if err := encode(file); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
