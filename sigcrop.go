// Package sigcrop crops multichannel sensor recordings to the segment where
// the signal is active.
//
// Example usage:
//
//	cfg := sigcrop.DefaultConfig()
//	cfg.InputDir = "/data/raw"
//	cfg.OutputDir = "/data/cropped"
//	cfg.LogPath = "/data/cropped/log.txt"
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//	sum, err := sigcrop.Run(context.Background(), cfg, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(sum.Cropped, "of", sum.Found, "cropped")
package sigcrop

import (
	"context"

	fsadapter "github.com/bft-labs/sigcrop/internal/adapters/fs"
	"github.com/bft-labs/sigcrop/internal/app"
	"github.com/bft-labs/sigcrop/internal/cliconfig"
	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/internal/ports"
	"github.com/bft-labs/sigcrop/internal/watch"
	"github.com/bft-labs/sigcrop/pkg/crop"
	"github.com/bft-labs/sigcrop/pkg/diagplot"
	"github.com/bft-labs/sigcrop/pkg/log"
	"github.com/bft-labs/sigcrop/pkg/record"
	"github.com/bft-labs/sigcrop/pkg/state"
)

// Config holds the configuration for a crop run.
// Use DefaultConfig() to get a Config with the default parameters.
type Config = cliconfig.Config

// Params are the trigger and guard percentages.
type Params = crop.Params

// Recording is a decoded multichannel recording.
type Recording = domain.Recording

// Sensor names one channel of a Recording.
type Sensor = domain.Sensor

// Result is the outcome of cropping one recording.
type Result = crop.Result

// Summary counts the files of a batch run.
type Summary = app.Summary

// DefaultConfig returns a Config with default values.
// InputDir, OutputDir and LogPath must be set before calling Run.
func DefaultConfig() Config {
	return cliconfig.DefaultConfig()
}

// Crop crops a single recording in memory. It has no side effects.
func Crop(rec Recording, p Params) (Result, error) {
	return crop.Crop(rec, p)
}

// Run crops every matching recording under cfg.InputDir into cfg.OutputDir,
// mirroring the directory layout. A failing file is logged and skipped.
// logger may be nil.
func Run(ctx context.Context, cfg Config, logger log.Logger) (Summary, error) {
	c, err := newCropper(cfg, logger)
	if err != nil {
		return Summary{}, err
	}
	return c.Run(ctx)
}

// Watch runs a batch like Run and then keeps cropping recordings that appear
// or change under cfg.InputDir until ctx is canceled.
func Watch(ctx context.Context, cfg Config, logger log.Logger) error {
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	c, err := newCropper(cfg, logger)
	if err != nil {
		return err
	}
	if _, err := c.Run(ctx); err != nil {
		return err
	}

	w := watch.New(watch.Config{
		Root:          cfg.InputDir,
		Suffix:        cfg.Suffix,
		DebounceDelay: cfg.DebounceDelay,
		Exclude:       []string{cfg.OutputDir},
	}, func(ctx context.Context, rel string) {
		c.ProcessFile(ctx, rel)
		if err := c.SaveState(ctx); err != nil {
			logger.Error("failed to save state", log.Err(err))
		}
	}, logger)
	return w.Run(ctx)
}

func newCropper(cfg Config, logger log.Logger) (*app.Cropper, error) {
	var renderer ports.Renderer
	if !cfg.NoImage {
		renderer = diagplot.NewRenderer(float64(cfg.ImageWidth), float64(cfg.ImageHeight), cfg.ImageDPI)
	}
	var repo ports.StateRepository
	if cfg.Incremental {
		repo = state.NewFileRepository(cfg.OutputDir)
	}

	return app.NewCropper(app.Config{
		InputDir:    cfg.InputDir,
		OutputDir:   cfg.OutputDir,
		Suffix:      cfg.Suffix,
		Params:      cfg.Params(),
		Incremental: cfg.Incremental,
		NoImage:     cfg.NoImage,
	}, record.DefaultRegistry(), renderer, fsadapter.NewOutputStore(), repo, logger)
}
