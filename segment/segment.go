package segment

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/regionfill"
)

// Sentinel errors for segmentation.
var (
	// ErrNilImage is returned when Segment receives a nil image.
	ErrNilImage = errors.New("segment: image is nil")
	// ErrNilFiller is returned when Segment receives a nil fill strategy.
	ErrNilFiller = errors.New("segment: filler is nil")
	// ErrNoLabels indicates a full colour table with no reusable entries.
	ErrNoLabels = errors.New("segment: colour table full and no reusable labels")
)

// Region describes one labeled region, as passed to the OnRegion hook.
type Region struct {
	Index  int // 0-based discovery order
	Seed   frontier.Coord
	Label  imagergb.Label
	Color  imagergb.RGB
	Pixels int
}

// Option configures Segment.
type Option func(*Options)

// Options holds segmentation parameters.
type Options struct {
	// Logger, if non-nil, receives one Debug record per region.
	Logger *slog.Logger
	// OnRegion, if non-nil, is called after each region is filled.
	OnRegion func(r Region)
	// StartColor seeds the colour generator; the first region gets
	// NextColor(StartColor).
	StartColor imagergb.RGB
}

// DefaultOptions returns Options with StartColor = BLACK and no hooks.
func DefaultOptions() Options {
	return Options{StartColor: imagergb.Black}
}

// WithLogger enables per-region debug logging. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("segment: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnRegion registers a per-region callback. Panics on nil.
func WithOnRegion(fn func(r Region)) Option {
	if fn == nil {
		panic("segment: WithOnRegion(nil)")
	}
	return func(o *Options) {
		o.OnRegion = fn
	}
}

// WithStartColor sets the colour the generator starts from.
// Panics if c does not fit in 24 bits.
func WithStartColor(c imagergb.RGB) Option {
	if c > imagergb.White {
		panic(fmt.Sprintf("segment: WithStartColor(%s) exceeds 24 bits", c))
	}
	return func(o *Options) {
		o.StartColor = c
	}
}

// Segment relabels every background region of img with filler and returns
// the number of regions labeled. img is mutated in place.
func Segment(img *imagergb.Image, filler regionfill.Filler, opts ...Option) (int, error) {
	if img == nil {
		return 0, ErrNilImage
	}
	if filler == nil {
		return 0, ErrNilFiller
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &segmenter{img: img, filler: filler, opts: o, color: o.StartColor}
	return s.run()
}

// segmenter carries the scan state of one Segment call.
type segmenter struct {
	img     *imagergb.Image
	filler  regionfill.Filler
	opts    Options
	color   imagergb.RGB
	regions int
}

func (s *segmenter) run() (int, error) {
	w, h := s.img.Width(), s.img.Height()
	for v := 0; v < h; v++ {
		for u := 0; u < w; u++ {
			if s.img.Label(u, v) != imagergb.Background {
				continue
			}
			label, err := s.nextLabel()
			if err != nil {
				return s.regions, fmt.Errorf("Segment at %s: %w", frontier.C(u, v), err)
			}
			n, err := s.filler.Fill(s.img, u, v, label)
			if n > 0 {
				s.record(u, v, label, n)
			}
			if err != nil {
				return s.regions, fmt.Errorf("Segment at %s: %w", frontier.C(u, v), err)
			}
		}
	}
	return s.regions, nil
}

// nextLabel advances the colour generator and resolves the colour to a label.
func (s *segmenter) nextLabel() (imagergb.Label, error) {
	for {
		s.color = imagergb.NextColor(s.color)
		if l, ok := s.img.FindColor(s.color); ok {
			if l == imagergb.Background {
				continue
			}
			return l, nil
		}
		if !s.img.Full() {
			return s.img.AllocColor(s.color)
		}
		reusable := s.img.ColorCount() - 2
		if reusable <= 0 {
			return 0, ErrNoLabels
		}
		return imagergb.Label(s.regions%reusable + 2), nil
	}
}

func (s *segmenter) record(u, v int, label imagergb.Label, n int) {
	r := Region{Index: s.regions, Seed: frontier.C(u, v), Label: label, Pixels: n}
	r.Color, _ = s.img.Color(label)
	s.regions++

	if s.opts.Logger != nil {
		s.opts.Logger.Debug("region",
			"index", r.Index,
			"seed", r.Seed.String(),
			"pixels", n,
			"label", int(label),
			"color", r.Color.String(),
		)
	}
	if s.opts.OnRegion != nil {
		s.opts.OnRegion(r)
	}
}
