package regionfill

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
)

const methodRecursive = "FillRecursive"

// Recursive is the call-stack depth-first flood fill.
type Recursive struct {
	opts Options
}

// NewRecursive returns a Recursive filler configured with opts.
func NewRecursive(opts ...Option) *Recursive {
	return &Recursive{opts: buildOptions(opts)}
}

// FillRecursive fills the region of (u, v) with label using recursion.
func FillRecursive(img *imagergb.Image, u, v int, label imagergb.Label, opts ...Option) (int, error) {
	return NewRecursive(opts...).Fill(img, u, v, label)
}

// Fill implements Filler. It relabels the seed, then recurses into each
// neighbour (right, down, up, left) that is inside the image and still
// carries the seed's original label.
func (r *Recursive) Fill(img *imagergb.Image, u, v int, label imagergb.Label) (int, error) {
	g, err := newGrid(methodRecursive, img, u, v, label, r.opts)
	if err != nil {
		return 0, err
	}
	if g.done() {
		return 0, nil
	}
	w := &recursiveWalker{grid: g, maxDepth: r.opts.MaxDepth}
	return w.visit(frontier.C(u, v), 1)
}

// recursiveWalker carries the per-call state of one recursive fill.
type recursiveWalker struct {
	*grid
	maxDepth int
}

// visit relabels c and returns the pixels relabeled in its subtree.
func (w *recursiveWalker) visit(c frontier.Coord, depth int) (int, error) {
	if w.maxDepth > 0 && depth > w.maxDepth {
		return 0, fmt.Errorf("%s: at %s depth %d > %d: %w",
			methodRecursive, c, depth, w.maxDepth, ErrDepthExceeded)
	}
	w.counters.Inc(instr.Calls)
	w.counters.Max(instr.Depth, uint64(depth))

	w.paint(c)
	count := 1
	for _, n := range c.Neighbors4() {
		if !w.matches(n) {
			continue
		}
		k, err := w.visit(n, depth+1)
		count += k
		if err != nil {
			return count, err
		}
	}
	return count, nil
}
