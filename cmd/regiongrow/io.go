package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/regiongrow/imageio"
	"github.com/katalvlaran/regiongrow/imagergb"
)

// load reads path in any supported format.
func (g *Globals) load(path string) (*imagergb.Image, error) {
	img, format, err := imageio.Load(path, g.imageOptions()...)
	if err != nil {
		return nil, err
	}
	g.Logger.Debug("loaded", "file", path, "format", format,
		"width", img.Width(), "height", img.Height(), "colors", img.ColorCount())
	return img, nil
}

// save writes img to path. An empty format is inferred from the extension.
func (g *Globals) save(img *imagergb.Image, path, format string) error {
	f, err := outputFormat(path, format)
	if err != nil {
		return err
	}
	if err := imageio.Save(path, img, f); err != nil {
		return err
	}
	g.Logger.Info("saved", "file", path, "format", string(f), slog.Int("colors", img.ColorCount()))
	return nil
}

func outputFormat(path, format string) (imageio.Format, error) {
	if format == "" {
		return imageio.FormatOf(path)
	}
	return imageio.ParseFormat(format)
}

// parseHexColor reads #RGB or #RRGGBB.
func parseHexColor(s string) (imagergb.RGB, error) {
	var r, g, b uint8
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color %q: %w", s, err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient color fields in %q: %d", s, n)
		}
	default:
		return 0, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}
	return imagergb.RGBOf(r, g, b), nil
}
