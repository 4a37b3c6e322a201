package imagergb

import (
	"errors"
	"fmt"
)

// Sentinel errors for imagergb operations.
var (
	// ErrInvalidSize indicates a non-positive width or height.
	ErrInvalidSize = errors.New("imagergb: width and height must be positive")
	// ErrInvalidEdge indicates a non-positive pattern tile edge.
	ErrInvalidEdge = errors.New("imagergb: tile edge must be positive")
	// ErrLUTFull indicates the colour table has no room for a new entry.
	ErrLUTFull = errors.New("imagergb: colour table is full")
)

const (
	// DefaultLUTCapacity is the colour table size used when no option overrides it.
	DefaultLUTCapacity = 1000
	// MaxLUTCapacity is the largest table addressable by a 16-bit Label.
	MaxLUTCapacity = 1 << 16
	// minLUTCapacity leaves room for the two fixed entries.
	minLUTCapacity = 2
)

// Fixed labels present in every colour table.
const (
	// Background is the label of WHITE, assigned to every pixel at creation.
	Background Label = 0
	// Foreground is the label of BLACK.
	Foreground Label = 1
)

// Label is an index into an image's colour table.
type Label uint16

// Option configures image construction.
type Option func(*Options)

// Options holds construction parameters.
type Options struct {
	// LUTCapacity is the maximum number of colour table entries.
	LUTCapacity int
}

// DefaultOptions returns Options with LUTCapacity = DefaultLUTCapacity.
func DefaultOptions() Options {
	return Options{LUTCapacity: DefaultLUTCapacity}
}

// WithLUTCapacity sets the colour table capacity.
// Panics unless 2 ≤ n ≤ MaxLUTCapacity.
func WithLUTCapacity(n int) Option {
	if n < minLUTCapacity || n > MaxLUTCapacity {
		panic(fmt.Sprintf("imagergb: WithLUTCapacity(%d) outside [%d, %d]", n, minLUTCapacity, MaxLUTCapacity))
	}
	return func(o *Options) {
		o.LUTCapacity = n
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
