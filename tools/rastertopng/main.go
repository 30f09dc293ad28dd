package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/rasterfilter/imageformats"
)

// converts float rasters (PFM, BSQ) into 8 bit PNGs for viewing
func main() {
	infile := flag.String("i", "", "input raster file")
	outfile := flag.String("o", "", "output png file")
	flag.Parse()

	if *infile == "" || *outfile == "" {
		fmt.Printf("both input and output files must be specified\n")
		os.Exit(1)
	}

	start := time.Now()
	r, err := imageformats.Load(*infile)
	if err != nil {
		log.Fatalf("Error loading raster: %v", err)
	}
	fmt.Printf("loading took %d ms\n", time.Since(start).Milliseconds())
	fmt.Printf("raster is %v\n", r)
	if r.Bands > 3 {
		fmt.Printf("only the first 3 of %d bands are written\n", r.Bands)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, r.ToImage()); err != nil {
		log.Fatalf("Error encoding png: %v", err)
	}

	if err := os.WriteFile(*outfile, buf.Bytes(), 0666); err != nil {
		log.Fatalf("Error writing %s: %v", *outfile, err)
	}
}
