package filter

// ApplyUniformIntegral produces the same result as ApplyUniform (within float32 rounding)
// by reading each window sum from a summed-area table, so the cost per pixel no longer
// depends on halfFilterSize. Sums are kept in float64 to limit cancellation error on large
// images. Same preconditions as ApplyUniform.
func ApplyUniformIntegral(input []float32, output []float32, halfFilterSize int, nbRows int, nbCols int, nbBands int) {
	pixelsPerBand := nbRows * nbCols
	if pixelsPerBand == 0 {
		return
	}

	// (nbRows+1)x(nbCols+1), first row and column stay zero
	stride := nbCols + 1
	table := make([]float64, (nbRows+1)*stride)

	for b := 0; b < nbBands; b++ {
		band := input[b*pixelsPerBand : (b+1)*pixelsPerBand]
		for r := 0; r < nbRows; r++ {
			var rowSum float64
			for c := 0; c < nbCols; c++ {
				rowSum += float64(band[r*nbCols+c])
				table[(r+1)*stride+c+1] = table[r*stride+c+1] + rowSum
			}
		}

		out := output[b*pixelsPerBand : (b+1)*pixelsPerBand]
		for p := 0; p < pixelsPerBand; p++ {
			bounds := NeighborhoodBounds(p, nbRows, nbCols, halfFilterSize)
			top := bounds.StartRow * stride
			bottom := (bounds.EndRow + 1) * stride
			sum := table[bottom+bounds.EndCol+1] - table[top+bounds.EndCol+1] -
				table[bottom+bounds.StartCol] + table[top+bounds.StartCol]
			out[p] = float32(sum / float64(bounds.Area()))
		}
	}
}
