package export

import (
	"fmt"
	"image"
	"path/filepath"
	"time"
)

// ScreenshotCapture names and writes viewer screenshots.
type ScreenshotCapture struct {
	outputDir string
	prefix    string
	now       func() time.Time
}

// NewScreenshotCapture creates a capture handler writing into outputDir.
func NewScreenshotCapture(outputDir, prefix string) *ScreenshotCapture {
	return &ScreenshotCapture{
		outputDir: outputDir,
		prefix:    prefix,
		now:       time.Now,
	}
}

// Capture writes img as a timestamped PNG and returns its path.
func (sc *ScreenshotCapture) Capture(img image.Image) (string, error) {
	if img.Bounds().Empty() {
		return "", fmt.Errorf("empty image")
	}

	timestamp := sc.now().Format("2006-01-02_15-04-05.000")
	filename := filepath.Join(sc.outputDir, fmt.Sprintf("%s_%s.png", sc.prefix, timestamp))

	if err := WriteImage(filename, img); err != nil {
		return "", err
	}
	return filename, nil
}
