package filter

import (
	"context"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// rowStrip is a chunk of work for parallel processing
type rowStrip struct {
	startRow int
	endRow   int
}

// splitRows divides nbRows into at most workers contiguous strips. The last strip
// takes the remainder.
func splitRows(nbRows int, workers int) []rowStrip {
	if nbRows <= 0 {
		return nil
	}
	workers = min(max(workers, 1), nbRows)

	rowsPerWorker := nbRows / workers
	strips := make([]rowStrip, 0, workers)
	for i := 0; i < workers; i++ {
		startRow := i * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if i == workers-1 {
			endRow = nbRows
		}
		strips = append(strips, rowStrip{startRow: startRow, endRow: endRow})
	}
	return strips
}

// ApplyUniformParallel is ApplyUniform split across workers goroutines by row strips.
// Every strip runs the same per pixel code as ApplyUniform and writes a disjoint part of
// output, so the result is identical to the sequential one.
// If ctx is cancelled output is left partially written and ctx.Err() is returned.
func ApplyUniformParallel(ctx context.Context, input []float32, output []float32, halfFilterSize int, nbRows int, nbCols int, nbBands int, workers int) error {
	strips := splitRows(nbRows, workers)
	log.Debugf("uniform filter: %d rows in %d strips", nbRows, len(strips))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for _, strip := range strips {
		strip := strip
		g.Go(func() error {
			for r := strip.startRow; r < strip.endRow; r++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				applyUniformRows(input, output, halfFilterSize, nbRows, nbCols, nbBands, r, r+1)
			}
			return nil
		})
	}
	return g.Wait()
}
