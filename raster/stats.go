package raster

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/kpfaulkner/rasterfilter/util"
)

type BandStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// Stats computes per-band statistics. StdDev is the sample standard deviation.
// Empty bands report zero values.
func (r *Raster) Stats() []BandStats {
	out := make([]BandStats, r.Bands)
	n := r.PixelsPerBand()
	if n == 0 {
		return out
	}

	values := make([]float64, n)
	for b := 0; b < r.Bands; b++ {
		for i, v := range r.BandSlice(b) {
			values[i] = float64(v)
		}
		mean, std := stat.MeanStdDev(values, nil)
		if n == 1 {
			std = 0
		}
		out[b] = BandStats{
			Min:    floats.Min(values),
			Max:    floats.Max(values),
			Mean:   mean,
			StdDev: std,
		}
	}
	return out
}

// ValueRange returns the smallest and largest samples across all bands, skipping NaNs.
// nans counts the skipped samples.
func (r *Raster) ValueRange() (lo float32, hi float32, nans int) {
	return util.MinMax(r.Data)
}
