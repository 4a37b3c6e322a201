package regionfill

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
)

const methodQueue = "FillQueue"

// Queue is the explicit-queue breadth-first flood fill with eager validation.
type Queue struct {
	opts Options
}

// NewQueue returns a Queue filler configured with opts.
func NewQueue(opts ...Option) *Queue {
	return &Queue{opts: buildOptions(opts)}
}

// FillQueue fills the region of (u, v) with label using an explicit queue.
func FillQueue(img *imagergb.Image, u, v int, label imagergb.Label, opts ...Option) (int, error) {
	return NewQueue(opts...).Fill(img, u, v, label)
}

// Fill implements Filler.
//
// The seed is relabeled and enqueued. Each dequeued coordinate relabels and
// enqueues every neighbour (right, down, up, left) that is inside the image
// and still carries the original label, so a pixel is enqueued at most once.
func (q *Queue) Fill(img *imagergb.Image, u, v int, label imagergb.Label) (int, error) {
	g, err := newGrid(methodQueue, img, u, v, label, q.opts)
	if err != nil {
		return 0, err
	}
	if g.done() {
		return 0, nil
	}

	capacity := q.opts.InitialCapacity
	if capacity == 0 {
		// the BFS wavefront rarely outgrows the image perimeter
		capacity = 2 * (img.Width() + img.Height())
	}
	fq := frontier.NewQueue[frontier.Coord](capacity, q.opts.FrontierLimit)
	enqueue := func(c frontier.Coord) error {
		if err := fq.Enqueue(c); err != nil {
			return fmt.Errorf("%s: enqueue %s: %w: %w", methodQueue, c, ErrFrontierExhausted, err)
		}
		g.counters.Inc(instr.Pushes)
		g.counters.Max(instr.Peak, uint64(fq.Len()))
		return nil
	}

	seed := frontier.C(u, v)
	g.paint(seed)
	count := 1
	if err := enqueue(seed); err != nil {
		return count, err
	}
	for {
		c, ok := fq.Dequeue()
		if !ok {
			break
		}
		g.counters.Inc(instr.Pops)
		for _, n := range c.Neighbors4() {
			if !g.matches(n) {
				continue
			}
			g.paint(n)
			count++
			if err := enqueue(n); err != nil {
				return count, err
			}
		}
	}
	return count, nil
}
