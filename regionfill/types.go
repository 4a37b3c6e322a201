package regionfill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/regiongrow/frontier"
	"github.com/katalvlaran/regiongrow/imagergb"
	"github.com/katalvlaran/regiongrow/instr"
)

// Sentinel errors for region filling.
var (
	// ErrNilImage is returned when a nil image is passed to a fill.
	ErrNilImage = errors.New("regionfill: image is nil")

	// ErrInvalidSeed is returned when the seed pixel is outside the image.
	ErrInvalidSeed = errors.New("regionfill: seed pixel outside image")

	// ErrLabelRange is returned when the target label is not in the colour table.
	ErrLabelRange = errors.New("regionfill: label not in colour table")

	// ErrDepthExceeded is returned when the recursive fill passes MaxDepth.
	ErrDepthExceeded = errors.New("regionfill: recursion depth exceeded")

	// ErrFrontierExhausted is returned when a stack or queue hits FrontierLimit.
	ErrFrontierExhausted = errors.New("regionfill: frontier exhausted")

	// ErrUnknownStrategy is returned for an unrecognised strategy name.
	ErrUnknownStrategy = errors.New("regionfill: unknown strategy")
)

// Filler is the flood-fill capability shared by every strategy: relabel the
// 4-connected region of (u, v) with label and return how many pixels changed.
type Filler interface {
	Fill(img *imagergb.Image, u, v int, label imagergb.Label) (int, error)
}

// FillFunc adapts an ordinary function to the Filler interface.
type FillFunc func(img *imagergb.Image, u, v int, label imagergb.Label) (int, error)

// Fill calls f(img, u, v, label).
func (f FillFunc) Fill(img *imagergb.Image, u, v int, label imagergb.Label) (int, error) {
	return f(img, u, v, label)
}

// Strategy names one of the built-in fill algorithms.
type Strategy int

const (
	// StrategyRecursive is depth-first on the call stack.
	StrategyRecursive Strategy = iota
	// StrategyStack is depth-first on an explicit stack, lazy validation.
	StrategyStack
	// StrategyQueue is breadth-first on an explicit queue, eager validation.
	StrategyQueue
)

var strategyNames = map[Strategy]string{
	StrategyRecursive: "recursive",
	StrategyStack:     "stack",
	StrategyQueue:     "queue",
}

// Strategies lists every built-in strategy in declaration order.
func Strategies() []Strategy {
	return []Strategy{StrategyRecursive, StrategyStack, StrategyQueue}
}

// String returns the lower-case strategy name.
func (s Strategy) String() string {
	if n, ok := strategyNames[s]; ok {
		return n
	}
	return fmt.Sprintf("strategy(%d)", int(s))
}

// ParseStrategy maps "recursive", "stack" or "queue" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	for _, s := range Strategies() {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// New returns the Filler implementing s, configured with opts.
func New(s Strategy, opts ...Option) (Filler, error) {
	switch s {
	case StrategyRecursive:
		return NewRecursive(opts...), nil
	case StrategyStack:
		return NewStack(opts...), nil
	case StrategyQueue:
		return NewQueue(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
}

// Option configures a fill via functional arguments.
// Option constructors panic on meaningless values; fills never panic.
type Option func(*Options)

// Options holds the tunables shared by all strategies.
type Options struct {
	// Counters receives instrumentation updates; nil disables them.
	Counters *instr.Counters

	// MaxDepth, if > 0, bounds the recursion depth of the Recursive fill.
	// The seed is depth 1. 0 means unlimited.
	MaxDepth int

	// FrontierLimit, if > 0, bounds how many coordinates the Stack or Queue
	// fill may hold at once. 0 means unlimited.
	FrontierLimit int

	// InitialCapacity, if > 0, presizes the Stack or Queue frontier.
	InitialCapacity int

	// OnFill, if non-nil, is called after each pixel is relabeled.
	OnFill func(c frontier.Coord)
}

// DefaultOptions returns Options with no counters, no guards and no hook.
func DefaultOptions() Options {
	return Options{}
}

// WithCounters routes instrumentation updates to c.
func WithCounters(c *instr.Counters) Option {
	return func(o *Options) {
		o.Counters = c
	}
}

// WithMaxDepth bounds recursion of the Recursive fill.
//
//	d > 0: fail with ErrDepthExceeded beyond depth d
//	d == 0: unlimited
//	d < 0: panics
func WithMaxDepth(d int) Option {
	if d < 0 {
		panic(fmt.Sprintf("regionfill: WithMaxDepth(%d)", d))
	}
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithFrontierLimit bounds the explicit frontier of the Stack and Queue fills.
// Panics on negative n; 0 means unlimited.
func WithFrontierLimit(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("regionfill: WithFrontierLimit(%d)", n))
	}
	return func(o *Options) {
		o.FrontierLimit = n
	}
}

// WithInitialCapacity presizes the explicit frontier. Panics on negative n.
func WithInitialCapacity(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("regionfill: WithInitialCapacity(%d)", n))
	}
	return func(o *Options) {
		o.InitialCapacity = n
	}
}

// WithOnFill registers a hook called after every relabeled pixel.
// Panics on nil.
func WithOnFill(fn func(c frontier.Coord)) Option {
	if fn == nil {
		panic("regionfill: WithOnFill(nil)")
	}
	return func(o *Options) {
		o.OnFill = fn
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
