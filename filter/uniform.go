package filter

import (
	"golang.org/x/exp/constraints"
)

// ApplyUniform writes the box filtered input into output.
//
// Both buffers are band-major: all nbRows*nbCols samples of band 0 (row-major), then band 1,
// and so on. Each output sample is the mean of the input samples of the same band inside the
// clipped window of radius halfFilterSize around it. The sum is accumulated in T.
//
// Nothing is validated: both buffers must hold nbBands*nbRows*nbCols values and must not
// overlap. Use Apply for a checked call.
func ApplyUniform[T constraints.Float](input []T, output []T, halfFilterSize int, nbRows int, nbCols int, nbBands int) {
	applyUniformRows(input, output, halfFilterSize, nbRows, nbCols, nbBands, 0, nbRows)
}

// applyUniformRows filters the pixels of rows [startRow, endRow) for every band.
// Windows may read rows outside that range, output is only written inside it.
func applyUniformRows[T constraints.Float](input []T, output []T, halfFilterSize int, nbRows int, nbCols int, nbBands int, startRow int, endRow int) {
	pixelsPerBand := nbRows * nbCols

	for p := startRow * nbCols; p < endRow*nbCols; p++ {
		bounds := NeighborhoodBounds(p, nbRows, nbCols, halfFilterSize)

		// How many pixels contribute to the mean value
		den := T(bounds.Area())

		for b := 0; b < nbBands; b++ {
			bandOffset := b * pixelsPerBand
			var sum T
			for rr := bounds.StartRow; rr <= bounds.EndRow; rr++ {
				row := input[bandOffset+rr*nbCols+bounds.StartCol : bandOffset+rr*nbCols+bounds.EndCol+1]
				for _, v := range row {
					sum += v
				}
			}
			output[bandOffset+p] = sum / den
		}
	}
}
