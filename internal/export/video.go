package export

import (
	"fmt"
	"image"
	"io"
	"strconv"

	ffmpeg "github.com/u2takey/ffmpeg-go"
	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/logger"
)

// VideoConfig describes an encoded clip.
type VideoConfig struct {
	Path       string
	Width      int
	Height     int
	FPS        int
	FFmpegPath string // Empty uses ffmpeg from PATH
	Verbose    bool   // Pass ffmpeg's log through to stdout
}

// Recorder pipes raw RGBA frames into an ffmpeg process.
type Recorder struct {
	cfg    VideoConfig
	pipe   *io.PipeWriter
	errc   chan error
	frames int
}

// videoStream builds the ffmpeg invocation reading raw frames from r.
func videoStream(cfg VideoConfig, r io.Reader) *ffmpeg.Stream {
	inputArgs := ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"r":       strconv.Itoa(cfg.FPS),
	}
	outputArgs := ffmpeg.KwArgs{
		"c:v":     "libx264",
		"pix_fmt": "yuv420p",
		"preset":  "medium",
	}

	stream := ffmpeg.Input("pipe:", inputArgs).
		Output(cfg.Path, outputArgs).
		OverWriteOutput().
		WithInput(r)
	if cfg.Verbose {
		stream = stream.ErrorToStdOut()
	}
	if cfg.FFmpegPath != "" {
		stream = stream.SetFfmpegPath(cfg.FFmpegPath)
	}
	return stream
}

// NewRecorder starts ffmpeg. Frames must match cfg's size.
func NewRecorder(cfg VideoConfig) (*Recorder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid video size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width%2 != 0 || cfg.Height%2 != 0 {
		return nil, fmt.Errorf("video size %dx%d must be even for yuv420p", cfg.Width, cfg.Height)
	}
	if cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid frame rate %d", cfg.FPS)
	}

	pr, pw := io.Pipe()
	rec := &Recorder{cfg: cfg, pipe: pw, errc: make(chan error, 1)}

	stream := videoStream(cfg, pr)
	logger.Debug("starting ffmpeg", zap.Strings("args", stream.GetArgs()))

	go func() {
		err := stream.Run()
		// Unblock a writer if ffmpeg exits early.
		pr.CloseWithError(io.ErrClosedPipe)
		rec.errc <- err
	}()

	return rec, nil
}

// WriteFrame sends one frame to the encoder.
func (r *Recorder) WriteFrame(img image.Image) error {
	b := img.Bounds()
	if b.Dx() != r.cfg.Width || b.Dy() != r.cfg.Height {
		return fmt.Errorf("frame %d is %dx%d, want %dx%d", r.frames, b.Dx(), b.Dy(), r.cfg.Width, r.cfg.Height)
	}

	if _, err := r.pipe.Write(rawRGBA(img)); err != nil {
		return fmt.Errorf("writing frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames returns the number of frames written.
func (r *Recorder) Frames() int {
	return r.frames
}

// Close flushes the pipe and waits for ffmpeg to finish.
func (r *Recorder) Close() error {
	r.pipe.Close()
	if err := <-r.errc; err != nil {
		return fmt.Errorf("ffmpeg: %w", err)
	}
	logger.Info("video written", zap.String("path", r.cfg.Path), zap.Int("frames", r.frames))
	return nil
}

// rawRGBA returns tightly packed RGBA rows. Frames are opaque, so alpha
// premultiplication does not change the bytes.
func rawRGBA(img image.Image) []byte {
	b := img.Bounds()
	rowSize := b.Dx() * 4

	switch m := img.(type) {
	case *image.NRGBA:
		if m.Stride == rowSize && b.Min == (image.Point{}) {
			return m.Pix
		}
	case *image.RGBA:
		if m.Stride == rowSize && b.Min == (image.Point{}) {
			return m.Pix
		}
	}

	out := make([]byte, 0, rowSize*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, a := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(bl>>8), byte(a>>8))
		}
	}
	return out
}
