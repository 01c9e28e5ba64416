package app

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	fsadapter "github.com/bft-labs/sigcrop/internal/adapters/fs"
	"github.com/bft-labs/sigcrop/internal/domain"
	"github.com/bft-labs/sigcrop/internal/ports"
	"github.com/bft-labs/sigcrop/pkg/crop"
	"github.com/bft-labs/sigcrop/pkg/diagplot"
	"github.com/bft-labs/sigcrop/pkg/log"
	"github.com/bft-labs/sigcrop/pkg/state"
)

// Config contains configuration for a crop run.
type Config struct {
	InputDir  string
	OutputDir string
	Suffix    string

	Params crop.Params

	// Incremental skips inputs recorded unchanged in the manifest
	Incremental bool

	// NoImage disables the diagnostic figure
	NoImage bool
}

// Cropper runs the crop over an input tree, one file at a time.
// Each file's derived series and window live only for its own processing.
type Cropper struct {
	config   Config
	codecs   ports.CodecResolver
	renderer ports.Renderer
	store    ports.OutputStore
	repo     ports.StateRepository
	logger   ports.Logger

	manifest state.Manifest
}

// NewCropper creates a Cropper with the given dependencies.
// renderer may be nil when config.NoImage is set; repo may be nil when
// config.Incremental is not set.
func NewCropper(
	config Config,
	codecs ports.CodecResolver,
	renderer ports.Renderer,
	store ports.OutputStore,
	repo ports.StateRepository,
	logger ports.Logger,
) (*Cropper, error) {
	if err := config.Params.Validate(); err != nil {
		return nil, err
	}
	if fsadapter.Within(config.InputDir, config.OutputDir) {
		return nil, fmt.Errorf("%w: output directory %s is or contains the input directory", domain.ErrInvalidConfig, config.OutputDir)
	}
	if _, ok := codecs.Lookup(config.Suffix); !ok {
		return nil, fmt.Errorf("%w: no codec for suffix %q", domain.ErrInvalidConfig, config.Suffix)
	}
	if renderer == nil && !config.NoImage {
		return nil, fmt.Errorf("%w: renderer required unless images are disabled", domain.ErrInvalidConfig)
	}
	if repo == nil && config.Incremental {
		return nil, fmt.Errorf("%w: state repository required for incremental runs", domain.ErrInvalidConfig)
	}
	if logger == nil {
		logger = log.NewNoopLogger()
	}
	return &Cropper{
		config:   config,
		codecs:   codecs,
		renderer: renderer,
		store:    store,
		repo:     repo,
		logger:   logger,
		manifest: state.NewManifest(),
	}, nil
}

// Discover lists the matching inputs, relative to the input root.
// The output root is skipped when it lies inside the input tree.
func (c *Cropper) Discover() ([]string, error) {
	var skip []string
	if fsadapter.Within(c.config.OutputDir, c.config.InputDir) {
		skip = append(skip, c.config.OutputDir)
	}
	return fsadapter.Discover(c.config.InputDir, c.config.Suffix, skip...)
}

// Run crops every discovered input. A failing file is logged and the run
// continues; only discovery and manifest loading errors are returned.
func (c *Cropper) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	if c.config.Incremental {
		m, err := c.repo.Load(ctx)
		if err != nil {
			return sum, fmt.Errorf("load state: %w", err)
		}
		c.manifest = m
	}

	files, err := c.Discover()
	if err != nil {
		c.logger.Error("unexpected error listing input files", log.String("input_dir", c.config.InputDir), log.Err(err))
		return sum, fmt.Errorf("discover inputs: %w", err)
	}
	sum.Found = len(files)
	c.logger.Info("found files for cropping", log.Int("found", sum.Found))

	for _, rel := range files {
		if err := ctx.Err(); err != nil {
			c.logger.Warn("run interrupted", log.Int("remaining", sum.Found-len(sum.Outcomes)))
			break
		}
		sum.add(c.ProcessFile(ctx, rel))
	}

	if err := c.SaveState(ctx); err != nil {
		c.logger.Error("failed to save state", log.Err(err))
	}

	c.logger.Info("run complete",
		log.Int("found", sum.Found),
		log.Int("cropped", sum.Cropped),
		log.Int("failed", sum.Failed),
		log.Int("skipped", sum.Skipped),
	)
	return sum, nil
}

// SaveState persists the manifest of an incremental run.
func (c *Cropper) SaveState(ctx context.Context) error {
	if !c.config.Incremental {
		return nil
	}
	return c.repo.Save(context.WithoutCancel(ctx), c.manifest)
}

// ProcessFile crops one input, identified by its path relative to the input
// root, writes the outputs and logs the outcome. It never panics on bad
// data and never returns an error; failures are reported in the Outcome.
func (c *Cropper) ProcessFile(ctx context.Context, rel string) Outcome {
	o := c.process(ctx, rel)
	c.report(o)
	return o
}

func (c *Cropper) process(ctx context.Context, rel string) Outcome {
	o := Outcome{
		Rel:    rel,
		Input:  filepath.Join(c.config.InputDir, filepath.FromSlash(rel)),
		Output: OutputPath(c.config.OutputDir, rel),
	}
	fail := func(stage domain.Stage, err error) Outcome {
		o.Err = &domain.StageError{Path: o.Input, Stage: stage, Err: err}
		c.manifest.Forget(rel)
		return o
	}

	info, err := os.Stat(o.Input)
	if err != nil {
		return fail(domain.StageRead, err)
	}
	if c.config.Incremental && c.manifest.Unchanged(rel, info) {
		o.Skipped = true
		return o
	}

	data, err := os.ReadFile(o.Input)
	if err != nil {
		return fail(domain.StageRead, err)
	}

	codec, err := c.codecs.ForPath(o.Input)
	if err != nil {
		return fail(domain.StageDecode, fmt.Errorf("%w: %v", domain.ErrDecode, err))
	}
	doc, err := codec.Decode(data)
	if err != nil {
		return fail(domain.StageDecode, err)
	}

	res, err := crop.Crop(doc.Recording, c.config.Params)
	if err != nil {
		return fail(domain.StageCrop, err)
	}
	o.Samples = res.Source.SampleCount()
	o.Kept = res.Recording.SampleCount()
	o.Bounds = res.Bounds
	o.Window = res.Window

	encoded, err := codec.Encode(doc.WithWindow(res.Window))
	if err != nil {
		return fail(domain.StageEncode, err)
	}
	if err := c.store.WriteFile(ctx, o.Output, encoded); err != nil {
		return fail(domain.StageWrite, fmt.Errorf("%w: %s: %v", domain.ErrWrite, o.Output, err))
	}

	if !c.config.NoImage {
		o.Image = ImagePath(o.Output, codec.Suffix(), c.renderer.Suffix())

		var buf bytes.Buffer
		if err := c.renderer.Render(&buf, diagplot.FromResult(o.Input, res)); err != nil {
			return fail(domain.StageRender, err)
		}
		if err := c.store.WriteFile(ctx, o.Image, buf.Bytes()); err != nil {
			return fail(domain.StageWrite, fmt.Errorf("%w: %s: %v", domain.ErrWrite, o.Image, err))
		}
	}

	c.manifest.Record(rel, info)
	return o
}

func (c *Cropper) report(o Outcome) {
	switch {
	case o.Err != nil:
		c.logger.Error("crop failed",
			log.String("input", o.Input),
			log.String("stage", string(o.Stage())),
			log.Err(o.Err),
		)
	case o.Skipped:
		c.logger.Info("unchanged, skipped", log.String("input", o.Input))
	default:
		fields := []log.Field{
			log.String("input", o.Input),
			log.String("output", o.Output),
			log.Int("samples", o.Samples),
			log.Int("kept", o.Kept),
			log.Stringer("window", o.Window),
		}
		if o.Image != "" {
			fields = append(fields, log.String("image", o.Image))
		}
		c.logger.Info("successful crop", fields...)
	}
}
