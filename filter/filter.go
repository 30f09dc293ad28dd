package filter

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	log "github.com/sirupsen/logrus"

	"github.com/kpfaulkner/rasterfilter/options"
	"github.com/kpfaulkner/rasterfilter/raster"
	"github.com/kpfaulkner/rasterfilter/util"
)

// Apply validates the buffers and dimensions and then box filters input into output
// using the method and worker count from opts (nil means defaults).
// On a validation error output is not touched.
// input and output may overlap, in which case input is copied to a scratch buffer first.
func Apply(ctx context.Context, input []float32, output []float32, nbRows int, nbCols int, nbBands int, opts *options.FilterOptions) error {
	opts = options.NewFilterOptions(opts)

	if err := validate(input, output, nbRows, nbCols, nbBands, opts.HalfFilterSize); err != nil {
		return err
	}

	if overlaps(input, output) {
		log.Debugf("uniform filter: input and output overlap, copying %d samples", len(input))
		scratch := util.GetFloat32Slice(len(input))
		defer util.ReturnFloat32Slice(scratch)
		copy(scratch, input)
		input = scratch
	}

	start := time.Now()
	switch opts.Method {
	case options.MethodNaive:
		if opts.Workers > 1 {
			if err := ApplyUniformParallel(ctx, input, output, opts.HalfFilterSize, nbRows, nbCols, nbBands, opts.Workers); err != nil {
				return err
			}
		} else {
			ApplyUniform(input, output, opts.HalfFilterSize, nbRows, nbCols, nbBands)
		}
	case options.MethodIntegral:
		ApplyUniformIntegral(input, output, opts.HalfFilterSize, nbRows, nbCols, nbBands)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownMethod, opts.Method)
	}

	log.Debugf("uniform filter (%v, half size %d, %d workers) on %d bands of %dx%d took %v",
		opts.Method, opts.HalfFilterSize, opts.Workers, nbBands, nbRows, nbCols, time.Since(start))
	return nil
}

// ApplyToRaster filters in into a newly allocated raster of the same shape.
func ApplyToRaster(ctx context.Context, in *raster.Raster, opts *options.FilterOptions) (*raster.Raster, error) {
	out := raster.NewRaster(in.Bands, in.Rows, in.Cols)
	if err := Apply(ctx, in.Data, out.Data, in.Rows, in.Cols, in.Bands, opts); err != nil {
		return nil, err
	}
	return out, nil
}

func validate(input []float32, output []float32, nbRows int, nbCols int, nbBands int, halfFilterSize int) error {
	if len(input) != len(output) {
		return &ShapeMismatchError{InputLen: len(input), OutputLen: len(output)}
	}
	n, ok := raster.SampleCount(nbBands, nbRows, nbCols)
	if !ok || nbRows <= 0 || nbCols <= 0 || nbBands <= 0 || halfFilterSize < 0 || len(input) != n {
		return &InvalidDimensionError{
			Rows:           nbRows,
			Cols:           nbCols,
			Bands:          nbBands,
			HalfFilterSize: halfFilterSize,
			Len:            len(input),
		}
	}
	return nil
}

// overlaps reports whether a and b share any memory.
func overlaps(a []float32, b []float32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	size := unsafe.Sizeof(a[0])
	aStart := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	aEnd := aStart + uintptr(len(a))*size
	bEnd := bStart + uintptr(len(b))*size
	return aStart < bEnd && bStart < aEnd
}
