package cliconfig

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bft-labs/sigcrop/internal/domain"
)

func TestApplyEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  Config
		expected Config
		wantErr  bool
	}{
		{
			name: "applies string fields",
			envVars: map[string]string{
				"SIGCROP_INPUT_DIR":  "/env/in",
				"SIGCROP_OUTPUT_DIR": "/env/out",
				"SIGCROP_LOG_PATH":   "/env/log.txt",
				"SIGCROP_SUFFIX":     ".msgpack",
			},
			changed: map[string]bool{},
			expected: Config{
				InputDir:  "/env/in",
				OutputDir: "/env/out",
				LogPath:   "/env/log.txt",
				Suffix:    ".msgpack",
			},
		},
		{
			name: "applies numeric and duration fields",
			envVars: map[string]string{
				"SIGCROP_TRIGGER_PERCENTAGE": "0.25",
				"SIGCROP_GUARDS_PERCENTAGE":  "0",
				"SIGCROP_IMAGE_WIDTH":        "10",
				"SIGCROP_IMAGE_HEIGHT":       "5",
				"SIGCROP_IMAGE_DPI":          "80",
				"SIGCROP_DEBOUNCE":           "2s",
			},
			changed: map[string]bool{},
			initial: Config{GuardsPercentage: 0.05},
			expected: Config{
				TriggerPercentage: 0.25,
				GuardsPercentage:  0,
				ImageWidth:        10,
				ImageHeight:       5,
				ImageDPI:          80,
				DebounceDelay:     2 * time.Second,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"SIGCROP_INPUT_DIR":          "/env/in",
				"SIGCROP_TRIGGER_PERCENTAGE": "0.9",
			},
			changed:  map[string]bool{"input": true, "trigger": true},
			initial:  Config{InputDir: "/cli/in", TriggerPercentage: 0.3},
			expected: Config{InputDir: "/cli/in", TriggerPercentage: 0.3},
		},
		{
			name:    "returns error for invalid float",
			envVars: map[string]string{"SIGCROP_TRIGGER_PERCENTAGE": "high"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid int",
			envVars: map[string]string{"SIGCROP_IMAGE_DPI": "lots"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name:    "returns error for invalid duration",
			envVars: map[string]string{"SIGCROP_DEBOUNCE": "later"},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool '1' as true",
			envVars: map[string]string{
				"SIGCROP_INCREMENTAL": "1",
				"SIGCROP_WATCH":       "true",
			},
			changed:  map[string]bool{},
			expected: Config{Incremental: true, Watch: true},
		},
		{
			name:     "handles bool 'false' as false",
			envVars:  map[string]string{"SIGCROP_NO_IMAGE": "false"},
			changed:  map[string]bool{},
			initial:  Config{NoImage: true},
			expected: Config{NoImage: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyEnvConfig(&cfg, tt.changed)

			if tt.wantErr {
				if err == nil {
					t.Error("ApplyEnvConfig() expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ApplyEnvConfig() unexpected error: %v", err)
			}
			if cfg != tt.expected {
				t.Errorf("ApplyEnvConfig() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApplyEnvConfig_NonPositiveSizeRejected(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SIGCROP_IMAGE_WIDTH", "-5")

	cfg := DefaultConfig()
	cfg.InputDir = dir
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.LogPath = filepath.Join(dir, "log.txt")
	if err := ApplyEnvConfig(&cfg, map[string]bool{}); err != nil {
		t.Fatalf("ApplyEnvConfig() error = %v", err)
	}

	if cfg.ImageWidth != -5 {
		t.Errorf("ImageWidth = %v, want -5", cfg.ImageWidth)
	}
	if err := cfg.Validate(); !errors.Is(err, domain.ErrInvalidConfig) {
		t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
	}
}

// Integration test: precedence order (CLI > Env > File)
func TestConfigPrecedence(t *testing.T) {
	half := 0.5
	fileConf := FileConfig{
		InputDir:         "/file/in",
		OutputDir:        "/file/out",
		GuardsPercentage: &half,
	}

	t.Setenv("SIGCROP_INPUT_DIR", "/env/in")
	t.Setenv("SIGCROP_OUTPUT_DIR", "/env/out")
	t.Setenv("SIGCROP_LOG_PATH", "/env/log.txt")

	changed := map[string]bool{
		"input": true,
	}

	cfg := DefaultConfig()
	cfg.InputDir = "/cli/in"

	if err := ApplyFileConfig(&cfg, fileConf, changed); err != nil {
		t.Fatalf("ApplyFileConfig failed: %v", err)
	}
	if err := ApplyEnvConfig(&cfg, changed); err != nil {
		t.Fatalf("ApplyEnvConfig failed: %v", err)
	}

	if cfg.InputDir != "/cli/in" {
		t.Errorf("InputDir = %v, want /cli/in (CLI should win)", cfg.InputDir)
	}
	if cfg.OutputDir != "/env/out" {
		t.Errorf("OutputDir = %v, want /env/out (env should override file)", cfg.OutputDir)
	}
	if cfg.LogPath != "/env/log.txt" {
		t.Errorf("LogPath = %v, want /env/log.txt (env should set)", cfg.LogPath)
	}
	if cfg.GuardsPercentage != 0.5 {
		t.Errorf("GuardsPercentage = %v, want 0.5 (file should set)", cfg.GuardsPercentage)
	}
}
