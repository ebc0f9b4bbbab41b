package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	cfg, err := LoadFrom(ConfigPath())
	if err != nil {
		return nil, err
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)

	return cfg, nil
}

// LoadFrom loads defaults merged with the given file. An empty path falls back
// to the standard locations; a missing standard file is not an error.
func LoadFrom(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	return cfg, nil
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "RagingSea")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "RagingSea")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "ragingsea")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "ragingsea")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// LoadPreset reads a water preset. Fields absent from the file keep the
// reference defaults.
func LoadPreset(path string) (WaterConfig, error) {
	water := DefaultWater()

	data, err := os.ReadFile(path)
	if err != nil {
		return water, fmt.Errorf("reading preset %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &water); err != nil {
		return water, fmt.Errorf("parsing preset %s: %w", path, err)
	}
	return water, nil
}
