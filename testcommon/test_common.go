package testcommon

import (
	"math/rand"

	"github.com/kpfaulkner/rasterfilter/raster"
)

// RandomRaster generates a deterministic raster with samples in [0, maxValue).
func RandomRaster(seed int64, bands int, rows int, cols int, maxValue float32) *raster.Raster {
	rnd := rand.New(rand.NewSource(seed))
	r := raster.NewRaster(bands, rows, cols)
	for i := range r.Data {
		r.Data[i] = rnd.Float32() * maxValue
	}
	return r
}

// ConstantRaster fills every sample with value.
func ConstantRaster(value float32, bands int, rows int, cols int) *raster.Raster {
	r := raster.NewRaster(bands, rows, cols)
	for i := range r.Data {
		r.Data[i] = value
	}
	return r
}

// ReferenceUniform is a straightforward float64 box filter working on (band, row, col)
// coordinates. It shares no code with the filter package and is used to check it.
func ReferenceUniform(in *raster.Raster, halfSize int) *raster.Raster {
	out := raster.NewRaster(in.Bands, in.Rows, in.Cols)
	for row := 0; row < in.Rows; row++ {
		for col := 0; col < in.Cols; col++ {
			for b := 0; b < in.Bands; b++ {
				var sum float64
				count := 0
				for rr := row - halfSize; rr <= row+halfSize; rr++ {
					for cc := col - halfSize; cc <= col+halfSize; cc++ {
						if rr < 0 || cc < 0 || rr >= in.Rows || cc >= in.Cols {
							continue
						}
						sum += float64(in.At(b, rr, cc))
						count++
					}
				}
				out.Set(b, row, col, float32(sum/float64(count)))
			}
		}
	}
	return out
}
