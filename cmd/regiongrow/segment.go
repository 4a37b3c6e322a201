package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/katalvlaran/regiongrow/gridgraph"
	"github.com/katalvlaran/regiongrow/imageio"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/internal/parallel"
	"github.com/katalvlaran/regiongrow/regionfill"
	"github.com/katalvlaran/regiongrow/segment"
)

// SegmentCmd labels every background region of each input file. Files are
// processed in parallel; each image is segmented on a single goroutine.
type SegmentCmd struct {
	Files    []string `arg:"" help:"Input images" type:"existingfile"`
	OutDir   string   `help:"Destination folder" default:"segmented"`
	Strategy string   `help:"Fill algorithm" enum:"recursive,stack,queue" default:"queue"`
	Format   string   `help:"Output format" enum:"png,gif,jpeg,bmp,tiff,ppm,ppm-raw" default:"ppm"`
	Workers  int      `help:"Number of files processed at once (0 = GOMAXPROCS)" default:"0"`
	Verify   bool     `help:"Check the region count against an independent component count" default:"false"`

	strategy regionfill.Strategy `kong:"-"`
	format   imageio.Format      `kong:"-"`
}

func (c *SegmentCmd) Validate() error {
	var err error
	if c.strategy, err = regionfill.ParseStrategy(c.Strategy); err != nil {
		return err
	}
	if c.format, err = imageio.ParseFormat(c.Format); err != nil {
		return err
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d", c.Workers)
	}
	return nil
}

func (c *SegmentCmd) Run(g *Globals) error {
	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.OutDir, err)
	}

	pool := parallel.Start(c.Workers)
	var processedCount, errCount atomic.Uint64
	for _, file := range c.Files {
		file := file
		pool.Do(func() {
			if err := c.segmentFile(g, file); err != nil {
				errCount.Add(1)
				g.Logger.Error("could not segment image", "file", file, "error", err)
				return
			}
			processedCount.Add(1)
		})
	}
	pool.Wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	g.Logger.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)
	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *SegmentCmd) segmentFile(g *Globals, path string) error {
	logger := g.Logger.With("file", path)
	img, err := g.load(path)
	if err != nil {
		return err
	}

	want := -1
	if c.Verify {
		gg, err := gridgraph.FromImage(img)
		if err != nil {
			return err
		}
		want = gg.CountComponents(int(imagergb.Background))
	}

	filler, err := regionfill.New(c.strategy)
	if err != nil {
		return err
	}
	regions, err := segment.Segment(img, filler, segment.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("segmented", "regions", regions, "colors", img.ColorCount(), "strategy", c.Strategy)

	if c.Verify {
		if regions != want {
			return fmt.Errorf("labeled %d regions, image has %d background components", regions, want)
		}
		if left := img.Count(imagergb.Background); left != 0 {
			return fmt.Errorf("%d background pixels left unlabeled", left)
		}
	}

	base := filepath.Base(path)
	dest := filepath.Join(c.OutDir, strings.TrimSuffix(base, filepath.Ext(base))+c.format.Ext())
	return g.save(img, dest, string(c.format))
}
