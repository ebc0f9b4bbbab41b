// seatool renders the water surface offline: still images, video clips,
// height profiles and presets.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/ragingsea/internal/config"
	"github.com/Faultbox/ragingsea/internal/export"
	"github.com/Faultbox/ragingsea/internal/logger"
	"github.com/Faultbox/ragingsea/internal/surface"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "snapshot", "snap":
		cmdSnapshot(args)
	case "record", "rec":
		cmdRecord(args)
	case "profile":
		cmdProfile(args)
	case "preset":
		cmdPreset(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`seatool - offline water surface renderer

Usage:
  seatool <command> [options]

Commands:
  snapshot [options] <out.png|out.bmp>   Render a top-down still
  record [options] <out.mp4>             Encode a clip with ffmpeg
  profile [options] [out.csv]            Sample heights along a line (stdout if no file)
  preset [options] <out.yaml>            Write the current water preset

Common options:
  -config <file>   Viewer config (defaults < file)
  -preset <file>   Water preset overriding the config

Examples:
  seatool snapshot -t 2.5 -size 1024 sea.png
  seatool record -duration 10 -fps 30 sea.mp4
  seatool profile -z 0 -samples 256 -t 0,1,2 heights.csv
  seatool preset -config config.yaml calm.yaml`)
}

// commonFlags are shared by every command.
type commonFlags struct {
	config *string
	preset *string
}

func addCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		config: fs.String("config", "", "Path to config file"),
		preset: fs.String("preset", "", "Path to water preset"),
	}
}

// load resolves config and water parameters for a command.
func (c commonFlags) load() (*config.Config, *surface.Params) {
	cfg, err := config.LoadFrom(*c.config)
	if err != nil {
		fail(err)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fail(err)
	}

	if *c.preset != "" {
		water, err := config.LoadPreset(*c.preset)
		if err != nil {
			fail(err)
		}
		cfg.Water = water
	}

	params, err := surface.NewParams(cfg.Water)
	if err != nil {
		fail(err)
	}
	return cfg, params
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

func cmdSnapshot(args []string) {
	fs := flag.NewFlagSet("snapshot", flag.ExitOnError)
	common := addCommonFlags(fs)
	t := fs.Float64("t", 0, "Time in seconds")
	size := fs.Int("size", 512, "Image width and height in pixels")
	extent := fs.Float64("extent", 1, "Half-size of the rendered square in world units")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: seatool snapshot [options] <out.png|out.bmp>")
		os.Exit(1)
	}
	if *size <= 0 {
		fail(fmt.Errorf("invalid size %d", *size))
	}

	cfg, params := common.load()
	defer logger.Sync()
	params.Time = float32(*t)

	r := export.NewRenderer(surface.New(cfg.Water.NoiseSeed), cfg.Export.Workers)
	r.Extent = *extent
	img := r.Render(params, *size, *size)

	if err := export.WriteImage(fs.Arg(0), img); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (%dx%d, t=%.2fs)\n", fs.Arg(0), *size, *size, *t)
}

func cmdRecord(args []string) {
	fs := flag.NewFlagSet("record", flag.ExitOnError)
	common := addCommonFlags(fs)
	start := fs.Float64("start", 0, "Start time in seconds")
	duration := fs.Float64("duration", 5, "Clip length in seconds")
	fps := fs.Int("fps", 0, "Frames per second (0 = config)")
	size := fs.Int("size", 512, "Frame width and height in pixels (even)")
	extent := fs.Float64("extent", 1, "Half-size of the rendered square in world units")
	verbose := fs.Bool("v", false, "Show ffmpeg output")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: seatool record [options] <out.mp4>")
		os.Exit(1)
	}

	cfg, params := common.load()
	defer logger.Sync()
	if *fps <= 0 {
		*fps = cfg.Export.FPS
	}

	rec, err := export.NewRecorder(export.VideoConfig{
		Path:       fs.Arg(0),
		Width:      *size,
		Height:     *size,
		FPS:        *fps,
		FFmpegPath: cfg.Export.FFmpegPath,
		Verbose:    *verbose,
	})
	if err != nil {
		fail(err)
	}

	r := export.NewRenderer(surface.New(cfg.Water.NoiseSeed), cfg.Export.Workers)
	r.Extent = *extent

	frames := int(*duration * float64(*fps))
	for i := 0; i < frames; i++ {
		params.Time = float32(*start + float64(i)/float64(*fps))
		if err := rec.WriteFrame(r.Render(params, *size, *size)); err != nil {
			rec.Close()
			fail(err)
		}
		if (i+1)%*fps == 0 {
			logger.Debug("recording", zap.Int("frame", i+1), zap.Int("total", frames))
		}
	}

	if err := rec.Close(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s (%d frames at %d fps)\n", fs.Arg(0), rec.Frames(), *fps)
}

func cmdProfile(args []string) {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	common := addCommonFlags(fs)
	times := fs.String("t", "0", "Comma-separated sample times in seconds")
	z := fs.Float64("z", 0, "Plane z of the sampled line")
	extent := fs.Float64("extent", 1, "Half-length of the sampled line")
	samples := fs.Int("samples", 128, "Samples per time")
	fs.Parse(args)

	cfg, params := common.load()
	defer logger.Sync()

	s := surface.New(cfg.Water.NoiseSeed)
	var rows []export.ProfileRow
	for _, field := range strings.Split(*times, ",") {
		t, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			fail(fmt.Errorf("invalid time %q: %w", field, err))
		}
		params.Time = float32(t)
		rows = append(rows, export.Profile(s, params, *z, *extent, *samples)...)
	}

	out := os.Stdout
	if fs.NArg() > 0 {
		f, err := os.Create(fs.Arg(0))
		if err != nil {
			fail(err)
		}
		defer f.Close()
		out = f
	}

	if err := export.WriteProfile(out, rows); err != nil {
		fail(err)
	}
	if out != os.Stdout {
		fmt.Printf("Wrote %s (%d rows)\n", fs.Arg(0), len(rows))
	}
}

func cmdPreset(args []string) {
	fs := flag.NewFlagSet("preset", flag.ExitOnError)
	common := addCommonFlags(fs)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: seatool preset [options] <out.yaml>")
		os.Exit(1)
	}

	cfg, params := common.load()
	defer logger.Sync()

	path := fs.Arg(0)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fail(err)
		}
	}
	if err := params.SavePreset(path, cfg.Water.NoiseSeed); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote %s\n", path)
}
