// Package instr provides explicit instrumentation counters for the
// region-growing algorithms of regiongrow.
//
// What:
//
//   - Counters holds a fixed set of named uint64 counters plus a wall-clock timer.
//   - Each algorithm receives the *Counters it should update through an option,
//     so nothing is process-global and tests never contaminate each other.
//   - A nil *Counters is valid and silently discards every update.
//
// Why:
//
//   - Comparing the recursive, stack and queue flood fills is only meaningful
//     when their work can be observed: pixel-memory accesses, frontier pushes
//     and pops, peak frontier length, recursive calls and depth.
//
// Counters:
//
//   - PixMem: reads and writes of the label grid performed by a fill.
//   - Pushes / Pops: frontier operations (stack and queue fills).
//   - Peak: largest frontier length observed (Max semantics).
//   - Calls: recursive invocations (recursive fill).
//   - Depth: deepest recursion reached (Max semantics).
//
// Concurrency:
//
//	Counters is not safe for concurrent use; give each goroutine its own.
package instr
