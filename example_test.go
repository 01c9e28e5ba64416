package sigcrop_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bft-labs/sigcrop"
)

// ExampleCrop crops a recording whose magnitude ramps from 1 to 10 between
// samples 20 and 80.
func ExampleCrop() {
	values := make([][]float64, 100)
	for i := range values {
		m := 1.0
		switch {
		case i >= 20 && i < 80:
			m = 1 + 9*float64(i-20)/59
		case i >= 80:
			m = 10
		}
		values[i] = []float64{m, 0}
	}
	rec := sigcrop.Recording{
		Sensors:    []sigcrop.Sensor{{Name: "accX"}, {Name: "accY"}},
		IntervalMs: 16,
		Values:     values,
	}

	res, err := sigcrop.Crop(rec, sigcrop.Params{TriggerPercentage: 0.1, GuardsPercentage: 0.05})
	if err != nil {
		fmt.Printf("crop failed: %v\n", err)
		return
	}
	fmt.Printf("window %s kept %d of %d samples\n", res.Window, res.Recording.SampleCount(), rec.SampleCount())

	// Output: window [15,84) kept 69 of 100 samples
}

// ExampleRun crops an empty input tree.
func ExampleRun() {
	dir, err := os.MkdirTemp("", "sigcrop-example")
	if err != nil {
		fmt.Printf("temp dir: %v\n", err)
		return
	}
	defer os.RemoveAll(dir)

	cfg := sigcrop.DefaultConfig()
	cfg.InputDir = dir
	cfg.OutputDir = filepath.Join(dir, "out")
	cfg.LogPath = filepath.Join(dir, "log.txt")
	if err := cfg.Validate(); err != nil {
		fmt.Printf("invalid config: %v\n", err)
		return
	}

	sum, err := sigcrop.Run(context.Background(), cfg, nil)
	if err != nil {
		fmt.Printf("run failed: %v\n", err)
		return
	}
	fmt.Printf("found %d, cropped %d\n", sum.Found, sum.Cropped)

	// Output: found 0, cropped 0
}
