package filter

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/rasterfilter/options"
	"github.com/kpfaulkner/rasterfilter/raster"
	"github.com/kpfaulkner/rasterfilter/testcommon"
)

func TestApplyShapeMismatch(t *testing.T) {
	input := make([]float32, 12)
	output := make([]float32, 10)

	err := Apply(context.Background(), input, output, 2, 3, 2, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrShapeMismatch)

	var shapeErr *ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, 12, shapeErr.InputLen)
	assert.Equal(t, 10, shapeErr.OutputLen)
}

func TestApplyInvalidDimensions(t *testing.T) {
	tests := []struct {
		name              string
		length            int
		rows, cols, bands int
		halfFilterSize    int
	}{
		{"zero rows", 0, 0, 3, 1, 1},
		{"zero cols", 0, 3, 0, 1, 1},
		{"zero bands", 0, 3, 3, 0, 1},
		{"negative rows", 6, -2, -3, 1, 1},
		{"negative half size", 9, 3, 3, 1, -1},
		{"length mismatch", 10, 3, 3, 1, 1},
		{"bands not counted", 9, 3, 3, 2, 1},
		// 3*6148914691236517206 wraps to 2
		{"sample count overflows", 2, 3, 6148914691236517206, 1, 1},
		{"band count overflows", 4, 2, 2, math.MaxInt / 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]float32, tt.length)
			output := make([]float32, tt.length)
			for i := range output {
				output[i] = -1
			}

			opts := &options.FilterOptions{HalfFilterSize: tt.halfFilterSize}
			err := Apply(context.Background(), input, output, tt.rows, tt.cols, tt.bands, opts)
			assert.ErrorIs(t, err, ErrInvalidDimension)

			var dimErr *InvalidDimensionError
			require.True(t, errors.As(err, &dimErr))
			assert.Equal(t, tt.length, dimErr.Len)

			// nothing partially computed
			for _, v := range output {
				assert.Equal(t, float32(-1), v)
			}
		})
	}
}

func TestApplyHugeHalfSize(t *testing.T) {
	input := []float32{1, 2, 3, 4, 5, 6}

	for _, workers := range []int{1, 3} {
		output := make([]float32, len(input))
		err := Apply(context.Background(), input, output, 2, 3, 1, &options.FilterOptions{HalfFilterSize: math.MaxInt, Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, []float32{3.5, 3.5, 3.5, 3.5, 3.5, 3.5}, output)
	}

	output := make([]float32, len(input))
	err := Apply(context.Background(), input, output, 2, 3, 1, &options.FilterOptions{HalfFilterSize: math.MaxInt, Method: options.MethodIntegral})
	require.NoError(t, err)
	for _, v := range output {
		assert.InDelta(t, 3.5, v, 1e-5)
	}
}

func TestApplyUnknownMethod(t *testing.T) {
	input := make([]float32, 4)
	output := make([]float32, 4)

	err := Apply(context.Background(), input, output, 2, 2, 1, &options.FilterOptions{HalfFilterSize: 1, Method: options.Method(42)})
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestApplyMethods(t *testing.T) {
	const bands, rows, cols, half = 3, 20, 15, 2
	in := testcommon.RandomRaster(7, bands, rows, cols, 255)

	expected := make([]float32, len(in.Data))
	ApplyUniform(in.Data, expected, half, rows, cols, bands)

	tests := []struct {
		name      string
		opts      *options.FilterOptions
		tolerance float64
	}{
		{"sequential", &options.FilterOptions{HalfFilterSize: half, Workers: 1}, 0},
		{"parallel", &options.FilterOptions{HalfFilterSize: half, Workers: 4}, 0},
		{"integral", &options.FilterOptions{HalfFilterSize: half, Method: options.MethodIntegral}, 1e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := make([]float32, len(in.Data))
			require.NoError(t, Apply(context.Background(), in.Data, output, rows, cols, bands, tt.opts))
			for i := range output {
				assert.InDelta(t, expected[i], output[i], tt.tolerance)
			}
		})
	}
}

func TestApplyDefaultOptions(t *testing.T) {
	in := testcommon.RandomRaster(8, 1, 9, 9, 10)

	expected := make([]float32, len(in.Data))
	ApplyUniform(in.Data, expected, options.DefaultHalfFilterSize, 9, 9, 1)

	output := make([]float32, len(in.Data))
	require.NoError(t, Apply(context.Background(), in.Data, output, 9, 9, 1, nil))
	assert.Equal(t, expected, output)
}

func TestApplyInPlace(t *testing.T) {
	const bands, rows, cols, half = 2, 11, 8, 2
	in := testcommon.RandomRaster(9, bands, rows, cols, 255)

	expected := make([]float32, len(in.Data))
	ApplyUniform(in.Data, expected, half, rows, cols, bands)

	buf := in.Clone().Data
	require.NoError(t, Apply(context.Background(), buf, buf, rows, cols, bands, &options.FilterOptions{HalfFilterSize: half}))
	assert.Equal(t, expected, buf)
}

func TestApplyPartialOverlap(t *testing.T) {
	const bands, rows, cols, half = 1, 6, 6, 1
	n := bands * rows * cols
	in := testcommon.RandomRaster(10, bands, rows, cols, 255)

	expected := make([]float32, n)
	ApplyUniform(in.Data, expected, half, rows, cols, bands)

	buf := make([]float32, n+n/2)
	copy(buf, in.Data)
	input := buf[:n]
	output := buf[n/2 : n/2+n]

	require.NoError(t, Apply(context.Background(), input, output, rows, cols, bands, &options.FilterOptions{HalfFilterSize: half, Workers: 3}))
	assert.Equal(t, expected, output)
}

func TestOverlaps(t *testing.T) {
	buf := make([]float32, 10)
	assert.True(t, overlaps(buf, buf))
	assert.True(t, overlaps(buf[:6], buf[5:]))
	assert.False(t, overlaps(buf[:5], buf[5:]))
	assert.False(t, overlaps(buf, make([]float32, 10)))
	assert.False(t, overlaps(buf[:0], buf))
}

func TestApplyToRaster(t *testing.T) {
	in, err := raster.NewRasterFromData([]float32{1, 2, 3, 4}, 1, 2, 2)
	require.NoError(t, err)

	out, err := ApplyToRaster(context.Background(), in, &options.FilterOptions{HalfFilterSize: 1})
	require.NoError(t, err)
	assert.True(t, in.SameShape(out))
	assert.Equal(t, []float32{2.5, 2.5, 2.5, 2.5}, out.Data)

	// input untouched
	assert.Equal(t, []float32{1, 2, 3, 4}, in.Data)
}

func TestApplyToRasterInvalid(t *testing.T) {
	_, err := ApplyToRaster(context.Background(), raster.NewRaster(0, 0, 0), nil)
	assert.ErrorIs(t, err, ErrInvalidDimension)
}
