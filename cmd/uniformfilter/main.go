package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/rasterfilter/filter"
	"github.com/kpfaulkner/rasterfilter/imageformats"
	"github.com/kpfaulkner/rasterfilter/options"
	"github.com/kpfaulkner/rasterfilter/raster"
)

type config struct {
	input   string
	output  string
	tries   int
	verbose bool
	profile string
	opts    *options.FilterOptions
}

func parseArgs(args []string, errOut io.Writer) (*config, error) {
	fs := flag.NewFlagSet("uniformfilter", flag.ContinueOnError)
	fs.SetOutput(errOut)

	cfg := &config{}
	fs.StringVar(&cfg.input, "i", "", "input raster (.tif, .png, .jpg, .pfm, .bsq)")
	fs.StringVar(&cfg.output, "o", "", "output raster (.pfm, .bsq, .png, .tif)")
	halfSize := fs.Int("r", options.DefaultHalfFilterSize, "half filter size (window radius in pixels)")
	workers := fs.Int("w", 1, "number of workers, > 1 filters row strips concurrently")
	method := fs.String("m", "naive", "filter method: naive or integral")
	fs.IntVar(&cfg.tries, "n", 1, "number of timed runs, the average is reported")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.StringVar(&cfg.profile, "profile", "", "write a cpu or mem profile to the current directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.input == "" || cfg.output == "" {
		return nil, errors.New("both input and output files must be specified")
	}
	if *halfSize < 0 {
		return nil, fmt.Errorf("half filter size must not be negative, got %d", *halfSize)
	}
	if cfg.tries < 1 {
		return nil, fmt.Errorf("number of runs must be at least 1, got %d", cfg.tries)
	}
	if cfg.profile != "" && cfg.profile != "cpu" && cfg.profile != "mem" {
		return nil, fmt.Errorf("unknown profile mode %q", cfg.profile)
	}

	m, err := options.ParseMethod(*method)
	if err != nil {
		return nil, err
	}
	cfg.opts = options.NewFilterOptions(&options.FilterOptions{
		HalfFilterSize: *halfSize,
		Workers:        *workers,
		Method:         m,
	})
	return cfg, nil
}

// filterTimed runs the filter cfg.tries times and returns the last result and the
// average filtering time, not counting I/O.
func filterTimed(ctx context.Context, in *raster.Raster, cfg *config) (*raster.Raster, time.Duration, error) {
	var out *raster.Raster
	var total time.Duration
	for i := 0; i < cfg.tries; i++ {
		start := time.Now()
		var err error
		if out, err = filter.ApplyToRaster(ctx, in, cfg.opts); err != nil {
			return nil, 0, err
		}
		total += time.Since(start)
	}
	return out, total / time.Duration(cfg.tries), nil
}

func run(ctx context.Context, cfg *config) error {
	in, err := imageformats.Load(cfg.input)
	if err != nil {
		return err
	}
	log.Infof("loaded %s: %v", cfg.input, in)

	out, avg, err := filterTimed(ctx, in, cfg)
	if err != nil {
		return err
	}
	log.Infof("%v filter, half size %d, %d worker(s): %d ms average over %d run(s)",
		cfg.opts.Method, cfg.opts.HalfFilterSize, cfg.opts.Workers, avg.Milliseconds(), cfg.tries)

	if err := imageformats.Save(cfg.output, out); err != nil {
		return err
	}
	log.Infof("saved %s", cfg.output)
	return nil
}

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Errorf("%v", err)
		os.Exit(1)
	}

	if cfg.verbose {
		log.SetLevel(log.DebugLevel)
	}

	switch cfg.profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath(".")).Stop()
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
}
