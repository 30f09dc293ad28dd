package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/pkg/profile"
	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/rasterfilter/filter"
	"github.com/kpfaulkner/rasterfilter/imageformats"
	"github.com/kpfaulkner/rasterfilter/options"
	"github.com/kpfaulkner/rasterfilter/raster"
	"github.com/kpfaulkner/rasterfilter/util"
)

// Times each filter method over the same raster, averaging over a number of tries.
// Without -i a synthetic 4 band 1024x1024 raster is used.
func main() {
	infile := flag.String("i", "", "input raster file")
	halfSize := flag.Int("r", options.DefaultHalfFilterSize, "half filter size")
	tries := flag.Int("n", 10, "number of tries per method")
	workers := flag.Int("w", 8, "workers for the parallel run")
	flag.Parse()

	if *tries < 1 {
		*tries = 1
	}

	//p := profile.Start(profile.MemProfileHeap, profile.ProfilePath("."))
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."))
	defer p.Stop()

	var in *raster.Raster
	if *infile != "" {
		var err error
		if in, err = imageformats.Load(*infile); err != nil {
			log.Errorf("Error loading raster: %v\n", err)
			return
		}
	} else {
		in = syntheticRaster(4, 1024, 1024)
	}
	fmt.Printf("raster %v, half filter size %d, %d tries\n", in, *halfSize, *tries)

	runs := []struct {
		name string
		opts *options.FilterOptions
	}{
		{"sequential", &options.FilterOptions{HalfFilterSize: *halfSize, Workers: 1}},
		{"parallel", &options.FilterOptions{HalfFilterSize: *halfSize, Workers: *workers}},
		{"integral", &options.FilterOptions{HalfFilterSize: *halfSize, Method: options.MethodIntegral}},
	}

	for _, run := range runs {
		var accTime time.Duration
		for count := 0; count < *tries; count++ {
			out := util.GetFloat32Slice(len(in.Data))
			start := time.Now()
			err := filter.Apply(context.Background(), in.Data, out, in.Rows, in.Cols, in.Bands, run.opts)
			accTime += time.Since(start)
			util.ReturnFloat32Slice(out)
			if err != nil {
				log.Errorf("Error filtering: %v\n", err)
				return
			}
		}
		fmt.Printf("%-10s : %d ms\n", run.name, (accTime / time.Duration(*tries)).Milliseconds())
	}
	fmt.Printf("buffer pool %+v\n", util.GetPoolMetrics())
}

func syntheticRaster(bands int, rows int, cols int) *raster.Raster {
	r := raster.NewRaster(bands, rows, cols)
	for b := 0; b < bands; b++ {
		band := r.Band(b)
		for y := 0; y < rows; y++ {
			for x := 0; x < cols; x++ {
				band.Set(y, x, float32((x*7+y*13+b*31)%256))
			}
		}
	}
	return r
}
