package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/sigcrop"
	"github.com/bft-labs/sigcrop/internal/cliconfig"
	"github.com/bft-labs/sigcrop/pkg/log"
)

const helpDescription = `
Crop multichannel sensor recordings to the segment where the signal is active.

Each recording under the input directory is reduced to a magnitude series,
differentiated, and cut to the first and last samples whose gradient reaches
the trigger level, widened by a guard band on each side. Cropped recordings are
written to the output directory under the same relative path, each with a
diagnostic PNG showing the input, the gradient with the cut markers, and the
result.

Configure via file ($HOME/.sigcrop/config.toml), SIGCROP_* environment
variables, or flags; flags win over the environment, which wins over the file.
`

var exampleUsage = strings.TrimSpace(`
  sigcrop -i ./raw -o ./cropped -l ./cropped/log.txt
  sigcrop -i ./raw -o ./cropped -l ./log.txt -t 0.2 -g 0.1 --image-width 12 --image-height 9
  sigcrop --config ./sigcrop.yaml --incremental --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	console := log.NewRunLogger(os.Stderr, nil)

	root := &cobra.Command{
		Use:           "sigcrop",
		Short:         "Crop sensor recordings to their active segment",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			} else if cfgPath != "" {
				return fmt.Errorf("config file not found: %s", cfgPath)
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			logFile, err := log.OpenRunLog(cfg.LogPath)
			if err != nil {
				return fmt.Errorf("open log: %w", err)
			}
			defer logFile.Close()

			zl := log.NewRunLogger(os.Stderr, logFile).With().Str("run", uuid.NewString()).Logger()
			logger := log.NewZerologAdapterWithLogger(zl)

			for _, f := range cfg.Fields() {
				logger.Info("configuration", f)
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if cfg.Watch {
				if err := sigcrop.Watch(ctx, cfg, logger); err != nil {
					return err
				}
				logger.Info("received signal, stopped watching")
				return nil
			}

			_, err = sigcrop.Run(ctx, cfg, logger)
			return err
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file, .toml or .yaml (default: $HOME/.sigcrop/config.toml)")
	root.Flags().StringVarP(&cfg.InputDir, "input", "i", cfg.InputDir, "input directory, searched recursively")
	root.Flags().StringVarP(&cfg.OutputDir, "output", "o", cfg.OutputDir, "output directory, mirrors the input layout")
	root.Flags().StringVarP(&cfg.LogPath, "log", "l", cfg.LogPath, "log file, truncated at start")

	root.Flags().Float64VarP(&cfg.TriggerPercentage, "trigger", "t", cfg.TriggerPercentage, "trigger level as a fraction of the peak gradient [0, 1]")
	root.Flags().Float64VarP(&cfg.GuardsPercentage, "guards", "g", cfg.GuardsPercentage, "guard band as a fraction of the recording length [0, 1]")

	root.Flags().IntVar(&cfg.ImageWidth, "image-width", cfg.ImageWidth, "diagnostic image width in inches")
	root.Flags().IntVar(&cfg.ImageHeight, "image-height", cfg.ImageHeight, "diagnostic image height in inches")
	root.Flags().IntVar(&cfg.ImageDPI, "image-dpi", cfg.ImageDPI, "diagnostic image resolution in dots per inch")
	root.Flags().BoolVar(&cfg.NoImage, "no-image", cfg.NoImage, "skip the diagnostic image")

	root.Flags().StringVar(&cfg.Suffix, "suffix", cfg.Suffix, "suffix of the recordings to crop (.cbor or .msgpack)")
	root.Flags().BoolVar(&cfg.Incremental, "incremental", cfg.Incremental, "skip inputs unchanged since their last crop")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and crop new recordings as they arrive")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "quiet period before a new file is cropped in watch mode")

	if err := root.Execute(); err != nil {
		console.Error().Err(err).Msg("sigcrop")
		os.Exit(1)
	}
}
