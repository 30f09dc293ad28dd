package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/rasterfilter/imageformats"
)

// displays raster dimensions and per band statistics
func main() {
	infile := flag.String("i", "", "input raster file")
	flag.Parse()

	if *infile == "" {
		fmt.Printf("input file must be specified\n")
		os.Exit(1)
	}

	r, err := imageformats.Load(*infile)
	if err != nil {
		log.Fatalf("Error loading raster: %v", err)
	}

	fmt.Printf("%s: %v\n", *infile, r)
	for b, s := range r.Stats() {
		fmt.Printf("  band %d\n", b)
		fmt.Printf("    min    : %g\n", s.Min)
		fmt.Printf("    max    : %g\n", s.Max)
		fmt.Printf("    mean   : %g\n", s.Mean)
		fmt.Printf("    stddev : %g\n", s.StdDev)
	}
}
