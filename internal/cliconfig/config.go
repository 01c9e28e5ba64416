package cliconfig

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	fsadapter "github.com/bft-labs/sigcrop/internal/adapters/fs"
	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/pkg/crop"
	"github.com/bft-labs/sigcrop/pkg/diagplot"
	"github.com/bft-labs/sigcrop/pkg/log"
	"github.com/bft-labs/sigcrop/pkg/record"
)

// DefaultSuffix is the input file suffix matched by the directory walk.
const DefaultSuffix = ".cbor"

// Config holds CLI configuration for sigcrop.
type Config struct {
	InputDir  string
	OutputDir string
	LogPath   string

	TriggerPercentage float64
	GuardsPercentage  float64

	ImageWidth  int
	ImageHeight int
	ImageDPI    int
	NoImage     bool

	Suffix        string
	Incremental   bool
	Watch         bool
	DebounceDelay time.Duration
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		TriggerPercentage: crop.DefaultTriggerPercentage,
		GuardsPercentage:  crop.DefaultGuardsPercentage,
		ImageWidth:        diagplot.DefaultWidthInches,
		ImageHeight:       diagplot.DefaultHeightInches,
		ImageDPI:          diagplot.DefaultDPI,
		Suffix:            DefaultSuffix,
		DebounceDelay:     250 * time.Millisecond,
	}
}

// Validate checks the configuration for errors. It runs before any file is
// processed; every error wraps domain.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return invalid("input directory is required")
	}
	info, err := os.Stat(c.InputDir)
	if err != nil {
		return invalid("input directory does not exist: %s", c.InputDir)
	}
	if !info.IsDir() {
		return invalid("input path is not a directory: %s", c.InputDir)
	}
	if c.OutputDir == "" {
		return invalid("output directory is required")
	}
	if fsadapter.Within(c.InputDir, c.OutputDir) {
		return invalid("output directory must not be or contain the input directory: %s", c.OutputDir)
	}
	if c.LogPath == "" {
		return invalid("log path is required")
	}

	if !inUnit(c.TriggerPercentage) {
		return invalid("trigger percentage is out of bound [0, 1]: %v", c.TriggerPercentage)
	}
	if !inUnit(c.GuardsPercentage) {
		return invalid("guards percentage is out of bound [0, 1]: %v", c.GuardsPercentage)
	}
	if c.ImageWidth <= 0 {
		return invalid("image width is out of bound (0, inf): %d", c.ImageWidth)
	}
	if c.ImageHeight <= 0 {
		return invalid("image height is out of bound (0, inf): %d", c.ImageHeight)
	}
	if c.ImageDPI <= 0 {
		return invalid("image dpi is out of bound (0, inf): %d", c.ImageDPI)
	}
	if c.Suffix == "" {
		return invalid("suffix is required")
	}
	if _, ok := record.DefaultRegistry().Lookup(c.Suffix); !ok {
		return invalid("no codec for suffix %q (known: %s)", c.Suffix, strings.Join(record.DefaultRegistry().Suffixes(), ", "))
	}
	if c.DebounceDelay <= 0 {
		return invalid("debounce delay must be positive")
	}
	return nil
}

// Params returns the crop parameters.
func (c Config) Params() crop.Params {
	return crop.Params{
		TriggerPercentage: c.TriggerPercentage,
		GuardsPercentage:  c.GuardsPercentage,
	}
}

// Fields returns the settings in a fixed order for the configuration echo.
func (c Config) Fields() []log.Field {
	return []log.Field{
		log.String("input_dir", c.InputDir),
		log.String("output_dir", c.OutputDir),
		log.String("log_path", c.LogPath),
		log.Float64("trigger_percentage", c.TriggerPercentage),
		log.Float64("guards_percentage", c.GuardsPercentage),
		log.Int("image_width", c.ImageWidth),
		log.Int("image_height", c.ImageHeight),
		log.Int("image_dpi", c.ImageDPI),
		log.Bool("no_image", c.NoImage),
		log.String("suffix", c.Suffix),
		log.Bool("incremental", c.Incremental),
		log.Bool("watch", c.Watch),
		log.Duration("debounce", c.DebounceDelay),
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", domain.ErrInvalidConfig, fmt.Sprintf(format, args...))
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setIntPtr sets an int from a pointer if not nil and flag not changed.
// Range checks are left to Validate.
func (s *configSetter) setIntPtr(flag string, value *int, dst *int) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setFloatPtr sets a float64 from a pointer if not nil and flag not changed.
// Zero is a meaningful percentage, so presence is signalled by the pointer.
func (s *configSetter) setFloatPtr(flag string, value *float64, dst *float64) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination.
// Range checks are left to Validate.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = i
	return nil
}

// setFloatFromString parses a string to float64 and sets the destination.
// Zero is accepted; range checks are left to Validate.
func (s *configSetter) setFloatFromString(flag, value string, dst *float64) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = f
	return nil
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
