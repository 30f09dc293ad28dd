package filter

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch    = errors.New("filter: input and output shapes must match")
	ErrInvalidDimension = errors.New("filter: invalid dimensions")
	ErrUnknownMethod    = errors.New("filter: unknown method")
)

// ShapeMismatchError reports input and output buffers of different lengths.
type ShapeMismatchError struct {
	InputLen  int
	OutputLen int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: input has %d samples, output has %d", ErrShapeMismatch, e.InputLen, e.OutputLen)
}

func (e *ShapeMismatchError) Unwrap() error {
	return ErrShapeMismatch
}

// InvalidDimensionError reports non-positive dimensions, a negative filter size, or a
// buffer length that is not bands*rows*cols.
type InvalidDimensionError struct {
	Rows           int
	Cols           int
	Bands          int
	HalfFilterSize int
	Len            int
}

func (e *InvalidDimensionError) Error() string {
	return fmt.Sprintf("%v: %d bands of %dx%d, half filter size %d, buffer length %d",
		ErrInvalidDimension, e.Bands, e.Rows, e.Cols, e.HalfFilterSize, e.Len)
}

func (e *InvalidDimensionError) Unwrap() error {
	return ErrInvalidDimension
}
