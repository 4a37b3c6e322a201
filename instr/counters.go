package instr

import (
	"fmt"
	"io"
	"time"
)

// Counter identifies one instrumentation counter.
type Counter int

const (
	// PixMem counts label-grid reads and writes.
	PixMem Counter = iota
	// Pushes counts frontier insertions.
	Pushes
	// Pops counts frontier removals.
	Pops
	// Peak records the largest frontier length observed.
	Peak
	// Calls counts recursive fill invocations.
	Calls
	// Depth records the deepest recursion level reached.
	Depth

	numCounters
)

// names are the stable, lower-case counter names used in reports.
var names = [numCounters]string{
	PixMem: "pixmem",
	Pushes: "pushes",
	Pops:   "pops",
	Peak:   "peak",
	Calls:  "calls",
	Depth:  "depth",
}

// String returns the counter name, e.g. "pixmem".
func (c Counter) String() string {
	if c < 0 || c >= numCounters {
		return fmt.Sprintf("counter(%d)", int(c))
	}
	return names[c]
}

// Counters is a set of instrumentation counters and a timer.
// The zero value is ready to use.
type Counters struct {
	values [numCounters]uint64
	start  time.Time
	now    func() time.Time
}

// New returns a zeroed *Counters whose timer has just been started.
func New() *Counters {
	c := &Counters{}
	c.Reset()
	return c
}

// Reset zeroes every counter and restarts the timer.
func (c *Counters) Reset() {
	if c == nil {
		return
	}
	c.values = [numCounters]uint64{}
	c.start = c.clock()
}

// Add increases counter k by n.
func (c *Counters) Add(k Counter, n uint64) {
	if c == nil {
		return
	}
	c.values[k] += n
}

// Inc increases counter k by one.
func (c *Counters) Inc(k Counter) {
	if c == nil {
		return
	}
	c.values[k]++
}

// Max raises counter k to v if v is larger than its current value.
func (c *Counters) Max(k Counter, v uint64) {
	if c == nil {
		return
	}
	if v > c.values[k] {
		c.values[k] = v
	}
}

// Get returns the current value of counter k. A nil receiver reports 0.
func (c *Counters) Get(k Counter) uint64 {
	if c == nil {
		return 0
	}
	return c.values[k]
}

// Elapsed returns the time since the last Reset (or New).
func (c *Counters) Elapsed() time.Duration {
	if c == nil || c.start.IsZero() {
		return 0
	}
	return c.clock().Sub(c.start)
}

// Snapshot returns a copy of all counters keyed by name.
func (c *Counters) Snapshot() map[string]uint64 {
	out := make(map[string]uint64, numCounters)
	for k := Counter(0); k < numCounters; k++ {
		out[k.String()] = c.Get(k)
	}
	return out
}

// WriteTo prints a one-line report "pixmem=… pushes=… … elapsed=…" to w.
func (c *Counters) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for k := Counter(0); k < numCounters; k++ {
		n, err := fmt.Fprintf(w, "%s=%d ", k, c.Get(k))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "elapsed=%s\n", c.Elapsed())
	total += int64(n)
	return total, err
}

func (c *Counters) clock() time.Time {
	if c.now != nil {
		return c.now()
	}
	return time.Now()
}
