package filter

// Bounds is the clipped square window around a pixel. All four values are inclusive.
type Bounds struct {
	StartCol int
	StartRow int
	EndCol   int
	EndRow   int
}

func (b Bounds) Width() int {
	return b.EndCol - b.StartCol + 1
}

func (b Bounds) Height() int {
	return b.EndRow - b.StartRow + 1
}

// Area is the number of pixels contributing to the window mean. Always >= 1 for
// bounds returned by NeighborhoodBounds.
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// NeighborhoodBounds returns the window of radius halfFilterSize centred on the pixel at
// flat index pixelIndex (row-major), clipped to the image.
// pixelIndex must be in [0, nbRows*nbCols) and nbRows, nbCols must be positive.
func NeighborhoodBounds(pixelIndex int, nbRows int, nbCols int, halfFilterSize int) Bounds {
	col := pixelIndex % nbCols
	row := pixelIndex / nbCols

	// no window is wider than the image, and this keeps col+halfFilterSize from overflowing
	halfFilterSize = min(halfFilterSize, max(nbRows, nbCols))

	// int is signed so col-halfFilterSize goes negative instead of wrapping
	return Bounds{
		StartCol: max(0, col-halfFilterSize),
		StartRow: max(0, row-halfFilterSize),
		EndCol:   min(nbCols-1, col+halfFilterSize),
		EndRow:   min(nbRows-1, row+halfFilterSize),
	}
}
