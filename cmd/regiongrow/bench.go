package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
	"github.com/katalvlaran/regiongrow/regionfill"
	"github.com/katalvlaran/regiongrow/segment"
)

// BenchCmd fills blank square images and segments a chess board with each
// strategy, reporting the instrumentation counters.
type BenchCmd struct {
	Sizes      []int    `help:"Edge lengths of the blank square images" default:"50,80,100"`
	Strategies []string `help:"Strategies to run" name:"strategy" enum:"recursive,stack,queue" default:"recursive,stack,queue"`
	ChessSize  int      `help:"Edge length of the segmented chess image" default:"80"`
	ChessEdge  int      `help:"Square edge of the segmented chess image" default:"20"`

	strategies []regionfill.Strategy `kong:"-"`
}

func (c *BenchCmd) Validate() error {
	for _, n := range c.Sizes {
		if n <= 0 {
			return fmt.Errorf("invalid size: %d", n)
		}
	}
	if err := validateSize(c.ChessSize, c.ChessSize, c.ChessEdge); err != nil {
		return err
	}
	c.strategies = c.strategies[:0]
	for _, name := range c.Strategies {
		s, err := regionfill.ParseStrategy(name)
		if err != nil {
			return err
		}
		c.strategies = append(c.strategies, s)
	}
	return nil
}

func (c *BenchCmd) Run(g *Globals) error {
	tw := tabwriter.NewWriter(g.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "test\tstrategy\tresult\tpixmem\tpushes\tpops\tpeak\tcalls\tdepth\telapsed")

	for _, s := range c.strategies {
		for _, n := range c.Sizes {
			img, err := imagergb.New(n, n, g.imageOptions()...)
			if err != nil {
				return err
			}
			counters := instr.New()
			filler, err := regionfill.New(s, regionfill.WithCounters(counters))
			if err != nil {
				return err
			}
			pixels, err := filler.Fill(img, 0, 0, imagergb.Foreground)
			if err != nil {
				return fmt.Errorf("%s fill of %dx%d: %w", s, n, n, err)
			}
			writeRow(tw, fmt.Sprintf("fill %dx%d", n, n), s, pixels, counters)
		}
	}

	for _, s := range c.strategies {
		img, err := imagergb.NewChess(c.ChessSize, c.ChessSize, c.ChessEdge, imagergb.Black, g.imageOptions()...)
		if err != nil {
			return err
		}
		counters := instr.New()
		filler, err := regionfill.New(s, regionfill.WithCounters(counters))
		if err != nil {
			return err
		}
		regions, err := segment.Segment(img, filler)
		if err != nil {
			return fmt.Errorf("%s segmentation: %w", s, err)
		}
		writeRow(tw, fmt.Sprintf("segment chess %dx%d/%d", c.ChessSize, c.ChessSize, c.ChessEdge), s, regions, counters)
		g.Logger.Debug("bench", "strategy", s.String(), "regions", regions, "counters", counters.Snapshot())
	}
	return tw.Flush()
}

func writeRow(tw *tabwriter.Writer, test string, s regionfill.Strategy, result int, c *instr.Counters) {
	fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n", test, s, result,
		c.Get(instr.PixMem), c.Get(instr.Pushes), c.Get(instr.Pops), c.Get(instr.Peak),
		c.Get(instr.Calls), c.Get(instr.Depth), c.Elapsed())
}
