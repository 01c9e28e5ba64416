package cliconfig

import "os"

// ApplyEnvConfig applies configuration from environment variables (SIGCROP_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("input", os.Getenv("SIGCROP_INPUT_DIR"), &cfg.InputDir)
	s.setString("output", os.Getenv("SIGCROP_OUTPUT_DIR"), &cfg.OutputDir)
	s.setString("log", os.Getenv("SIGCROP_LOG_PATH"), &cfg.LogPath)
	s.setString("suffix", os.Getenv("SIGCROP_SUFFIX"), &cfg.Suffix)

	if err := s.setFloatFromString("trigger", os.Getenv("SIGCROP_TRIGGER_PERCENTAGE"), &cfg.TriggerPercentage); err != nil {
		return err
	}
	if err := s.setFloatFromString("guards", os.Getenv("SIGCROP_GUARDS_PERCENTAGE"), &cfg.GuardsPercentage); err != nil {
		return err
	}

	if err := s.setIntFromString("image-width", os.Getenv("SIGCROP_IMAGE_WIDTH"), &cfg.ImageWidth); err != nil {
		return err
	}
	if err := s.setIntFromString("image-height", os.Getenv("SIGCROP_IMAGE_HEIGHT"), &cfg.ImageHeight); err != nil {
		return err
	}
	if err := s.setIntFromString("image-dpi", os.Getenv("SIGCROP_IMAGE_DPI"), &cfg.ImageDPI); err != nil {
		return err
	}

	if err := s.setDuration("debounce", os.Getenv("SIGCROP_DEBOUNCE"), &cfg.DebounceDelay); err != nil {
		return err
	}

	s.setBoolFromString("no-image", os.Getenv("SIGCROP_NO_IMAGE"), &cfg.NoImage)
	s.setBoolFromString("incremental", os.Getenv("SIGCROP_INCREMENTAL"), &cfg.Incremental)
	s.setBoolFromString("watch", os.Getenv("SIGCROP_WATCH"), &cfg.Watch)

	return nil
}
