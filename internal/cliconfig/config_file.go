package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations and pointers for
// values that must be told apart from absent.
type FileConfig struct {
	InputDir          string   `toml:"input_dir" yaml:"input_dir"`
	OutputDir         string   `toml:"output_dir" yaml:"output_dir"`
	LogPath           string   `toml:"log_path" yaml:"log_path"`
	TriggerPercentage *float64 `toml:"trigger_percentage" yaml:"trigger_percentage"`
	GuardsPercentage  *float64 `toml:"guards_percentage" yaml:"guards_percentage"`
	ImageWidth        *int     `toml:"image_width" yaml:"image_width"`
	ImageHeight       *int     `toml:"image_height" yaml:"image_height"`
	ImageDPI          *int     `toml:"image_dpi" yaml:"image_dpi"`
	NoImage           *bool    `toml:"no_image" yaml:"no_image"`
	Suffix            string   `toml:"suffix" yaml:"suffix"`
	Incremental       *bool    `toml:"incremental" yaml:"incremental"`
	Watch             *bool    `toml:"watch" yaml:"watch"`
	DebounceDelay     string   `toml:"debounce" yaml:"debounce"`
}

// LoadFileConfig reads and parses a config file from the given path.
// Files ending in .yaml or .yml are parsed as YAML, anything else as TOML.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		if err := toml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse toml: %w", err)
		}
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.sigcrop/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".sigcrop", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", fc.InputDir, &cfg.InputDir)
	s.setString("output", fc.OutputDir, &cfg.OutputDir)
	s.setString("log", fc.LogPath, &cfg.LogPath)
	s.setString("suffix", fc.Suffix, &cfg.Suffix)

	s.setFloatPtr("trigger", fc.TriggerPercentage, &cfg.TriggerPercentage)
	s.setFloatPtr("guards", fc.GuardsPercentage, &cfg.GuardsPercentage)

	s.setIntPtr("image-width", fc.ImageWidth, &cfg.ImageWidth)
	s.setIntPtr("image-height", fc.ImageHeight, &cfg.ImageHeight)
	s.setIntPtr("image-dpi", fc.ImageDPI, &cfg.ImageDPI)

	s.setBool("no-image", fc.NoImage, &cfg.NoImage)
	s.setBool("incremental", fc.Incremental, &cfg.Incremental)
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
