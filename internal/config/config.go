// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Water    WaterConfig    `yaml:"water"`
	Camera   CameraConfig   `yaml:"camera"`
	Export   ExportConfig   `yaml:"export"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	MaxPixelRatio float32 `yaml:"max_pixel_ratio"` // Render buffer density cap
	MeshSegments  int     `yaml:"mesh_segments"`   // Grid subdivisions per side
	ShowPanel     bool    `yaml:"show_panel"`      // Dear ImGui debug panel
}

// WaterConfig holds the initial surface parameters. It is also the on-disk
// preset format.
type WaterConfig struct {
	WavesElevation       float32    `yaml:"waves_elevation"`
	WavesFrequency       [2]float32 `yaml:"waves_frequency,flow"`
	WavesSpeed           float32    `yaml:"waves_speed"`
	SmallWavesElevation  float32    `yaml:"small_waves_elevation"`
	SmallWavesFrequency  float32    `yaml:"small_waves_frequency"`
	SmallWavesSpeed      float32    `yaml:"small_waves_speed"`
	SmallWavesIterations int        `yaml:"small_waves_iterations"`
	DepthColor           string     `yaml:"depth_color"`
	SurfaceColor         string     `yaml:"surface_color"`
	ColorOffset          float32    `yaml:"color_offset"`
	ColorMultiplier      float32    `yaml:"color_multiplier"`
	NoiseSeed            int64      `yaml:"noise_seed"` // CPU noise only
}

// CameraConfig holds the perspective camera and orbit control settings.
type CameraConfig struct {
	FOV      float32    `yaml:"fov"` // Vertical, degrees
	Near     float32    `yaml:"near"`
	Far      float32    `yaml:"far"`
	Position [3]float32 `yaml:"position,flow"`
	Damping  float32    `yaml:"damping"` // 0 disables easing
}

// ExportConfig holds offscreen export settings used by seatool and screenshots.
type ExportConfig struct {
	OutputDir  string `yaml:"output_dir"`
	FFmpegPath string `yaml:"ffmpeg_path"`
	FPS        int    `yaml:"fps"`
	Workers    int    `yaml:"workers"` // 0 means GOMAXPROCS
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// DefaultWater returns the reference sea preset.
func DefaultWater() WaterConfig {
	return WaterConfig{
		WavesElevation:       0.2,
		WavesFrequency:       [2]float32{4, 1.5},
		WavesSpeed:           0.75,
		SmallWavesElevation:  0.15,
		SmallWavesFrequency:  3,
		SmallWavesSpeed:      0.2,
		SmallWavesIterations: 4,
		DepthColor:           "#186691",
		SurfaceColor:         "#9bd8ff",
		ColorOffset:          0.11,
		ColorMultiplier:      5,
	}
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			MaxPixelRatio: 2,
			MeshSegments:  512,
			ShowPanel:     true,
		},
		Water: DefaultWater(),
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      100,
			Position: [3]float32{1, 1, 1},
			Damping:  0.05,
		},
		Export: ExportConfig{
			OutputDir: "screenshots",
			FPS:       30,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
