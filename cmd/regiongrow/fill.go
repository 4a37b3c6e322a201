package main

import (
	"fmt"
	"math"

	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
	"github.com/katalvlaran/regiongrow/regionfill"
)

// FillCmd relabels the region of one seed pixel.
type FillCmd struct {
	In       string `arg:"" help:"Input image" type:"existingfile"`
	Out      string `arg:"" help:"Output image"`
	U        int    `help:"Seed column" short:"u" default:"0"`
	V        int    `help:"Seed row" short:"v" default:"0"`
	Label    int    `help:"Target label; when negative, --color is used" default:"-1"`
	Color    string `help:"Target colour as #RGB or #RRGGBB, allocated if absent" default:"#000000"`
	Strategy string `help:"Fill algorithm" enum:"recursive,stack,queue" default:"queue"`
	MaxDepth int    `help:"Recursion depth guard for the recursive strategy (0 = none)" default:"0"`
	Format   string `help:"Output format; inferred from the output extension when empty"`

	strategy regionfill.Strategy `kong:"-"`
	color    imagergb.RGB        `kong:"-"`
}

func (c *FillCmd) Validate() error {
	var err error
	if c.strategy, err = regionfill.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if _, err = outputFormat(c.Out, c.Format); err != nil {
		return err
	}
	if c.Label > math.MaxUint16 {
		return fmt.Errorf("invalid label: %d", c.Label)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("invalid max depth: %d", c.MaxDepth)
	}
	if c.Label < 0 {
		if c.color, err = parseHexColor(c.Color); err != nil {
			return err
		}
	}
	return nil
}

func (c *FillCmd) Run(g *Globals) error {
	img, err := g.load(c.In)
	if err != nil {
		return err
	}

	label := imagergb.Label(c.Label)
	if c.Label < 0 {
		if label, err = img.AllocColor(c.color); err != nil {
			return err
		}
	}

	counters := instr.New()
	opts := []regionfill.Option{regionfill.WithCounters(counters)}
	if c.MaxDepth > 0 {
		opts = append(opts, regionfill.WithMaxDepth(c.MaxDepth))
	}
	filler, err := regionfill.New(c.strategy, opts...)
	if err != nil {
		return err
	}

	n, err := filler.Fill(img, c.U, c.V, label)
	logger := g.Logger.With("file", c.In, "strategy", c.Strategy)
	if err != nil {
		logger.Error("fill failed", "pixels", n, "error", err)
		return err
	}
	logger.Info("filled", "seed", fmt.Sprintf("(%d,%d)", c.U, c.V), "label", int(label), "pixels", n,
		"pixmem", counters.Get(instr.PixMem), "elapsed", counters.Elapsed())

	return g.save(img, c.Out, c.Format)
}
