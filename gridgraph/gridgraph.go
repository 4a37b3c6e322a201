package gridgraph

import (
	"github.com/katalvlaran/regiongrow/imagergb"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice
// indexed as values[y][x]. It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]int, 0, w*h)
	for _, row := range values {
		cells = append(cells, row...)
	}
	return &GridGraph{Width: w, Height: h, Cells: cells}, nil
}

// FromImage snapshots the label grid of img.
// Returns ErrEmptyGrid for a nil image.
// Complexity: O(W×H) time and memory.
func FromImage(img *imagergb.Image) (*GridGraph, error) {
	if img == nil {
		return nil, ErrEmptyGrid
	}
	w, h := img.Width(), img.Height()
	cells := make([]int, 0, w*h)
	for y := 0; y < h; y++ {
		for _, l := range img.Row(y) {
			cells = append(cells, int(l))
		}
	}
	return &GridGraph{Width: w, Height: h, Cells: cells}, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Value returns the cell value at (x,y). Panics when out of bounds.
func (gg *GridGraph) Value(x, y int) int {
	if !gg.InBounds(x, y) {
		panic("gridgraph: Value out of bounds")
	}
	return gg.Cells[gg.index(x, y)]
}

// NeighborOffsets returns the 4-neighbourhood offsets (right, down, up, left).
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
