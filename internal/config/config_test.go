package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	// Graphics defaults
	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be false by default")
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}
	if cfg.Graphics.MaxPixelRatio != 2 {
		t.Errorf("expected max pixel ratio 2, got %f", cfg.Graphics.MaxPixelRatio)
	}
	if cfg.Graphics.MeshSegments != 512 {
		t.Errorf("expected 512 mesh segments, got %d", cfg.Graphics.MeshSegments)
	}
	if !cfg.Graphics.ShowPanel {
		t.Error("expected debug panel to be shown by default")
	}

	// Water defaults
	w := cfg.Water
	if w.WavesElevation != 0.2 {
		t.Errorf("expected waves elevation 0.2, got %f", w.WavesElevation)
	}
	if w.WavesFrequency != [2]float32{4, 1.5} {
		t.Errorf("expected waves frequency (4, 1.5), got %v", w.WavesFrequency)
	}
	if w.WavesSpeed != 0.75 {
		t.Errorf("expected waves speed 0.75, got %f", w.WavesSpeed)
	}
	if w.SmallWavesIterations != 4 {
		t.Errorf("expected 4 small wave iterations, got %d", w.SmallWavesIterations)
	}
	if w.DepthColor != "#186691" || w.SurfaceColor != "#9bd8ff" {
		t.Errorf("unexpected colors: %s / %s", w.DepthColor, w.SurfaceColor)
	}
	if w.ColorOffset != 0.11 || w.ColorMultiplier != 5 {
		t.Errorf("unexpected color mix: offset %f multiplier %f", w.ColorOffset, w.ColorMultiplier)
	}

	// Camera defaults
	if cfg.Camera.FOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Position != [3]float32{1, 1, 1} {
		t.Errorf("expected camera at (1,1,1), got %v", cfg.Camera.Position)
	}

	// Logging defaults
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  fullscreen: true
  vsync: false
  max_pixel_ratio: 1.5
  mesh_segments: 128
  show_panel: false

water:
  waves_elevation: 0.4
  waves_frequency: [2, 3]
  small_waves_iterations: 2
  depth_color: "#000000"

camera:
  fov: 60
  damping: 0

logging:
  level: "debug"
  log_file: "sea.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.Fullscreen {
		t.Error("expected fullscreen to be true")
	}
	if cfg.Graphics.VSync {
		t.Error("expected vsync to be false")
	}
	if cfg.Graphics.MaxPixelRatio != 1.5 {
		t.Errorf("expected max pixel ratio 1.5, got %f", cfg.Graphics.MaxPixelRatio)
	}
	if cfg.Graphics.MeshSegments != 128 {
		t.Errorf("expected 128 segments, got %d", cfg.Graphics.MeshSegments)
	}
	if cfg.Graphics.ShowPanel {
		t.Error("expected show_panel to be false")
	}

	if cfg.Water.WavesElevation != 0.4 {
		t.Errorf("expected waves elevation 0.4, got %f", cfg.Water.WavesElevation)
	}
	if cfg.Water.WavesFrequency != [2]float32{2, 3} {
		t.Errorf("expected frequency (2,3), got %v", cfg.Water.WavesFrequency)
	}
	if cfg.Water.SmallWavesIterations != 2 {
		t.Errorf("expected 2 iterations, got %d", cfg.Water.SmallWavesIterations)
	}
	if cfg.Water.DepthColor != "#000000" {
		t.Errorf("expected depth color #000000, got %s", cfg.Water.DepthColor)
	}
	// Untouched keys keep their defaults
	if cfg.Water.SurfaceColor != "#9bd8ff" {
		t.Errorf("expected surface color default, got %s", cfg.Water.SurfaceColor)
	}

	if cfg.Camera.FOV != 60 {
		t.Errorf("expected fov 60, got %f", cfg.Camera.FOV)
	}
	if cfg.Camera.Damping != 0 {
		t.Errorf("expected damping 0, got %f", cfg.Camera.Damping)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "sea.log" {
		t.Errorf("expected log file 'sea.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestLoadFromExplicitMissingPath(t *testing.T) {
	if _, err := LoadFrom("/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error for explicit missing config path")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(t *testing.T, cfg *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "windowed flag",
			setup: func() { *flagWindowed = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be false with windowed flag")
				}
			},
			teardown: func() { *flagWindowed = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "width and height flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
			},
		},
		{
			name:  "no-panel flag",
			setup: func() { *flagNoPanel = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.ShowPanel {
					t.Error("expected panel hidden with no-panel flag")
				}
			},
			teardown: func() { *flagNoPanel = false },
		},
		{
			name:  "segments flag",
			setup: func() { *flagSegments = 64 },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.MeshSegments != 64 {
					t.Errorf("expected 64 segments, got %d", cfg.Graphics.MeshSegments)
				}
			},
			teardown: func() { *flagSegments = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Width comes from the flag, height from the file
	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "presets", "storm.yaml")

	storm := DefaultWater()
	storm.WavesElevation = 0.6
	storm.SmallWavesIterations = 5
	storm.SurfaceColor = "#ffffff"

	if err := SavePreset(path, storm); err != nil {
		t.Fatalf("failed to save preset: %v", err)
	}

	loaded, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("failed to load preset: %v", err)
	}
	if loaded != storm {
		t.Errorf("preset mismatch:\n got %+v\nwant %+v", loaded, storm)
	}
}

func TestLoadPresetPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("color_offset: 0.5\n"), 0644); err != nil {
		t.Fatalf("failed to write preset: %v", err)
	}

	loaded, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("failed to load preset: %v", err)
	}
	if loaded.ColorOffset != 0.5 {
		t.Errorf("expected color offset 0.5, got %f", loaded.ColorOffset)
	}
	if loaded.WavesElevation != 0.2 {
		t.Errorf("expected default elevation to survive, got %f", loaded.WavesElevation)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := Default()
	cfg.Graphics.Width = 640
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Graphics.Width != 640 {
		t.Errorf("expected width 640 after reload, got %d", loaded.Graphics.Width)
	}
}
