package main

import (
	"fmt"

	"github.com/katalvlaran/regiongrow/imagergb"
)

// ChessCmd writes a chess pattern.
type ChessCmd struct {
	Out    string `arg:"" help:"Output image"`
	Width  int    `help:"Image width" default:"80"`
	Height int    `help:"Image height" default:"80"`
	Edge   int    `help:"Square edge in pixels" default:"20"`
	Color  string `help:"Colour of the square at (0,0), as #RGB or #RRGGBB" default:"#000000"`
	Format string `help:"Output format; inferred from the output extension when empty"`

	color imagergb.RGB `kong:"-"`
}

func (c *ChessCmd) Validate() error {
	if err := validateSize(c.Width, c.Height, c.Edge); err != nil {
		return err
	}
	var err error
	if c.color, err = parseHexColor(c.Color); err != nil {
		return err
	}
	_, err = outputFormat(c.Out, c.Format)
	return err
}

func (c *ChessCmd) Run(g *Globals) error {
	img, err := imagergb.NewChess(c.Width, c.Height, c.Edge, c.color, g.imageOptions()...)
	if err != nil {
		return err
	}
	return g.save(img, c.Out, c.Format)
}

// PaletteCmd writes an image tiled with every colour of a full table.
type PaletteCmd struct {
	Out    string `arg:"" help:"Output image"`
	Width  int    `help:"Image width" default:"320"`
	Height int    `help:"Image height" default:"320"`
	Edge   int    `help:"Tile edge in pixels" default:"10"`
	Format string `help:"Output format; inferred from the output extension when empty"`
}

func (c *PaletteCmd) Validate() error {
	if err := validateSize(c.Width, c.Height, c.Edge); err != nil {
		return err
	}
	_, err := outputFormat(c.Out, c.Format)
	return err
}

func (c *PaletteCmd) Run(g *Globals) error {
	img, err := imagergb.NewPalette(c.Width, c.Height, c.Edge, g.imageOptions()...)
	if err != nil {
		return err
	}
	return g.save(img, c.Out, c.Format)
}

func validateSize(w, h, edge int) error {
	switch {
	case w <= 0:
		return fmt.Errorf("invalid width: %d", w)
	case h <= 0:
		return fmt.Errorf("invalid height: %d", h)
	case edge <= 0:
		return fmt.Errorf("invalid edge: %d", edge)
	}
	return nil
}
