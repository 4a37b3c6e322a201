// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/regiongrow.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
)

// neighborOffsets lists the 4-neighbourhood in exploration order:
// right, down, up, left.
var neighborOffsets = [4][2]int{{1, 0}, {0, 1}, {0, -1}, {-1, 0}}

// GridGraph treats a 2D integer grid as a graph. It is immutable once built.
// Width and Height define dimensions; Cells[y*Width+x] holds the value of (x, y).
type GridGraph struct {
	Width, Height int
	Cells         []int
}
