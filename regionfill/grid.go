package regionfill

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
)

// grid is the instrumented view of the image a single fill works on.
// Every label read or write goes through it and is counted as PixMem.
type grid struct {
	img      *imagergb.Image
	counters *instr.Counters
	onFill   func(c frontier.Coord)
	original imagergb.Label
	label    imagergb.Label
}

// newGrid validates the fill preconditions and captures the seed's label.
func newGrid(method string, img *imagergb.Image, u, v int, label imagergb.Label, o Options) (*grid, error) {
	if img == nil {
		return nil, fmt.Errorf("%s: %w", method, ErrNilImage)
	}
	if !img.IsValidPixel(u, v) {
		return nil, fmt.Errorf("%s: seed (%d,%d) in %dx%d image: %w",
			method, u, v, img.Width(), img.Height(), ErrInvalidSeed)
	}
	if int(label) >= img.ColorCount() {
		return nil, fmt.Errorf("%s: label %d with %d colours: %w",
			method, label, img.ColorCount(), ErrLabelRange)
	}
	g := &grid{img: img, counters: o.Counters, onFill: o.OnFill, label: label}
	g.original = g.get(frontier.C(u, v))
	return g, nil
}

// done reports the no-op case: the seed already carries the target label.
func (g *grid) done() bool {
	return g.original == g.label
}

func (g *grid) valid(c frontier.Coord) bool {
	return g.img.IsValidPixel(c.U, c.V)
}

func (g *grid) get(c frontier.Coord) imagergb.Label {
	g.counters.Inc(instr.PixMem)
	return g.img.Label(c.U, c.V)
}

// matches reports whether c is inside the image and still carries the original label.
func (g *grid) matches(c frontier.Coord) bool {
	return g.valid(c) && g.get(c) == g.original
}

func (g *grid) paint(c frontier.Coord) {
	g.counters.Inc(instr.PixMem)
	g.img.SetLabel(c.U, c.V, g.label)
	if g.onFill != nil {
		g.onFill(c)
	}
}
