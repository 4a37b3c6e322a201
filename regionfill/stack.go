package regionfill

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
)

const (
	methodStack = "FillStack"
	// defaultStackCapacity is the initial stack size when none is configured.
	defaultStackCapacity = 100
)

// Stack is the explicit-stack depth-first flood fill with lazy validation.
type Stack struct {
	opts Options
}

// NewStack returns a Stack filler configured with opts.
func NewStack(opts ...Option) *Stack {
	return &Stack{opts: buildOptions(opts)}
}

// FillStack fills the region of (u, v) with label using an explicit stack.
func FillStack(img *imagergb.Image, u, v int, label imagergb.Label, opts ...Option) (int, error) {
	return NewStack(opts...).Fill(img, u, v, label)
}

// Fill implements Filler.
//
// Loop: pop a coordinate; discard it if it is outside the image or no longer
// carries the original label; otherwise relabel it and push its in-bounds
// neighbours (right, down, up, left) without checking their colour.
func (s *Stack) Fill(img *imagergb.Image, u, v int, label imagergb.Label) (int, error) {
	g, err := newGrid(methodStack, img, u, v, label, s.opts)
	if err != nil {
		return 0, err
	}
	if g.done() {
		return 0, nil
	}

	capacity := s.opts.InitialCapacity
	if capacity == 0 {
		capacity = defaultStackCapacity
	}
	st := frontier.NewStack[frontier.Coord](capacity, s.opts.FrontierLimit)
	push := func(c frontier.Coord) error {
		if err := st.Push(c); err != nil {
			return fmt.Errorf("%s: push %s: %w: %w", methodStack, c, ErrFrontierExhausted, err)
		}
		g.counters.Inc(instr.Pushes)
		g.counters.Max(instr.Peak, uint64(st.Len()))
		return nil
	}

	if err := push(frontier.C(u, v)); err != nil {
		return 0, err
	}
	count := 0
	for {
		c, ok := st.Pop()
		if !ok {
			break
		}
		g.counters.Inc(instr.Pops)
		if !g.matches(c) {
			continue
		}
		g.paint(c)
		count++
		for _, n := range c.Neighbors4() {
			if !g.valid(n) {
				continue
			}
			if err := push(n); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}
