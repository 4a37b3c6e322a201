// Command regiongrow fills, segments, generates and converts indexed images.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/katalvlaran/regiongrow/imagergb"
)

// errDifferent makes the equal command exit with status 1.
var errDifferent = errors.New("images differ")

// Globals are the flags shared by every command.
type Globals struct {
	LogLevel    string `help:"Minimum log level" enum:"debug,info,warn,error" default:"info"`
	LogFormat   string `help:"Log record format" enum:"text,json" default:"text"`
	LUTCapacity int    `help:"Colour table capacity of loaded and created images" default:"1000" name:"lut-capacity"`

	Logger *slog.Logger `kong:"-"`
	Stdout io.Writer    `kong:"-"`
}

// CLI is the command tree.
type CLI struct {
	Globals

	Fill    FillCmd    `cmd:"" help:"Flood-fill one region from a seed pixel"`
	Segment SegmentCmd `cmd:"" help:"Label every background region of one or more images"`
	Chess   ChessCmd   `cmd:"" help:"Create a chess pattern image"`
	Palette PaletteCmd `cmd:"" help:"Create an image tiled with every colour of a full table"`
	Rotate  RotateCmd  `cmd:"" help:"Rotate an image clockwise"`
	Equal   EqualCmd   `cmd:"" help:"Compare two images pixel by pixel; exit status 1 when they differ"`
	Raw     RawCmd     `cmd:"" help:"Dump labels and colour table as text"`
	Bench   BenchCmd   `cmd:"" help:"Compare the fill strategies on generated images"`
}

func (c *CLI) Validate() error {
	if c.LUTCapacity < 2 || c.LUTCapacity > imagergb.MaxLUTCapacity {
		return fmt.Errorf("invalid lut capacity %d: want [2, %d]", c.LUTCapacity, imagergb.MaxLUTCapacity)
	}
	return nil
}

// imageOptions returns the construction options for every image the
// command loads or creates.
func (g *Globals) imageOptions() []imagergb.Option {
	return []imagergb.Option{imagergb.WithLUTCapacity(g.LUTCapacity)}
}

func newLogger(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func run(args []string, stdout, stderr io.Writer, options ...kong.Option) error {
	var cli CLI
	options = append([]kong.Option{
		kong.Name("regiongrow"),
		kong.Description("Region growing on indexed RGB images."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
	}, options...)
	parser, err := kong.New(&cli, options...)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cli.Stdout = stdout
	cli.Logger = newLogger(cli.LogLevel, cli.LogFormat, stderr)
	return kctx.Run(&cli.Globals)
}

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, errDifferent):
		os.Exit(1)
	default:
		slog.Error("regiongrow failed", "error", err)
		os.Exit(1)
	}
}
