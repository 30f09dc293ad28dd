package raster

import (
	"errors"
	"fmt"
	"math"

	"github.com/kpfaulkner/rasterfilter/util"
)

var (
	ErrDataLength  = errors.New("raster: data length does not match bands*rows*cols")
	ErrRaggedBands = errors.New("raster: bands must all have the same rows and columns")
)

// Raster is a multi-band image held in a single band-major buffer.
// All samples of band 0 (row-major) precede all samples of band 1, etc.
type Raster struct {
	Bands int
	Rows  int
	Cols  int
	Data  []float32
}

func NewRaster(bands int, rows int, cols int) *Raster {
	return &Raster{
		Bands: bands,
		Rows:  rows,
		Cols:  cols,
		Data:  make([]float32, bands*rows*cols),
	}
}

// SampleCount returns bands*rows*cols. ok is false if any dimension is negative or
// the product does not fit in an int.
func SampleCount(bands int, rows int, cols int) (n int, ok bool) {
	if bands < 0 || rows < 0 || cols < 0 {
		return 0, false
	}
	if rows != 0 && cols > math.MaxInt/rows {
		return 0, false
	}
	perBand := rows * cols
	if perBand != 0 && bands > math.MaxInt/perBand {
		return 0, false
	}
	return bands * perBand, true
}

// NewRasterFromData wraps data without copying.
func NewRasterFromData(data []float32, bands int, rows int, cols int) (*Raster, error) {
	if n, ok := SampleCount(bands, rows, cols); !ok || len(data) != n {
		return nil, fmt.Errorf("%w: len %d, %d bands of %dx%d", ErrDataLength, len(data), bands, rows, cols)
	}
	return &Raster{Bands: bands, Rows: rows, Cols: cols, Data: data}, nil
}

// FromBands flattens a [band][row][col] slice into a band-major Raster.
func FromBands(bands [][][]float32) (*Raster, error) {
	if len(bands) == 0 {
		return &Raster{}, nil
	}
	rows := len(bands[0])
	cols := 0
	if rows > 0 {
		cols = len(bands[0][0])
	}

	r := NewRaster(len(bands), rows, cols)
	for b, band := range bands {
		if len(band) != rows {
			return nil, fmt.Errorf("%w: band %d has %d rows, expected %d", ErrRaggedBands, b, len(band), rows)
		}
		for y, row := range band {
			if len(row) != cols {
				return nil, fmt.Errorf("%w: band %d row %d has %d columns, expected %d", ErrRaggedBands, b, y, len(row), cols)
			}
			r.Band(b).SetRow(y, row)
		}
	}
	return r, nil
}

func (r *Raster) PixelsPerBand() int {
	return r.Rows * r.Cols
}

func (r *Raster) Index(band int, row int, col int) int {
	return band*r.Rows*r.Cols + row*r.Cols + col
}

func (r *Raster) At(band int, row int, col int) float32 {
	return r.Data[r.Index(band, row, col)]
}

func (r *Raster) Set(band int, row int, col int, value float32) {
	r.Data[r.Index(band, row, col)] = value
}

// BandSlice returns the samples of a single band, sharing the raster buffer.
func (r *Raster) BandSlice(band int) []float32 {
	n := r.PixelsPerBand()
	return r.Data[band*n : (band+1)*n]
}

// Band returns a 2D view of a single band. Writes go through to the raster.
func (r *Raster) Band(band int) *util.Matrix[float32] {
	return util.NewMatrixView(r.Rows, r.Cols, r.BandSlice(band))
}

func (r *Raster) Clone() *Raster {
	c := NewRaster(r.Bands, r.Rows, r.Cols)
	copy(c.Data, r.Data)
	return c
}

// SameShape reports whether both rasters have identical dimensions.
func (r *Raster) SameShape(other *Raster) bool {
	return r.Bands == other.Bands && r.Rows == other.Rows && r.Cols == other.Cols
}

// Equals compares shape and samples, allowing each sample to differ by tolerance.
func (r *Raster) Equals(other *Raster, tolerance float64) bool {
	if other == nil || !r.SameShape(other) || len(r.Data) != len(other.Data) {
		return false
	}
	for i := range r.Data {
		if math.Abs(float64(r.Data[i])-float64(other.Data[i])) > tolerance {
			return false
		}
	}
	return true
}

func (r *Raster) String() string {
	return fmt.Sprintf("%d band(s) of %dx%d (rows x cols)", r.Bands, r.Rows, r.Cols)
}
