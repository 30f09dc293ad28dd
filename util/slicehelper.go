package util

import (
	"golang.org/x/exp/constraints"
)

// Make 1D slice appear as 2D slice and helper functions.
// A Matrix can own its data or be a view over part of a larger buffer (eg. one band
// of a band-major raster), in which case writes go straight through to that buffer.

type Matrix[T constraints.Ordered] struct {
	Width  int
	Height int
	Data   []T
}

// New2DMatrix creates a new 2D matrix with the given dimensions
// Note height is the first dimension, width is the second
func New2DMatrix[T constraints.Ordered](height int, width int) *Matrix[T] {
	matrix := make([]T, width*height)
	return &Matrix[T]{Width: width, Height: height, Data: matrix}
}

// NewMatrixView wraps data without copying. data must hold at least height*width values.
func NewMatrixView[T constraints.Ordered](height int, width int, data []T) *Matrix[T] {
	return &Matrix[T]{Width: width, Height: height, Data: data[:height*width]}
}

// Note y is first param...  just for compatibility
func (s *Matrix[T]) Get(y int, x int) T {
	return s.Data[y*s.Width+x]
}

func (s *Matrix[T]) Set(y int, x int, value T) {
	s.Data[y*s.Width+x] = value
}

func (s *Matrix[T]) SetRow(y int, data []T) {
	copy(s.Data[y*s.Width:(y+1)*s.Width], data)
}
