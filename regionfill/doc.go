// Package regionfill implements region growing: three interchangeable
// 4-connected flood-fill algorithms over an *imagergb.Image.
//
// What
//
//   - Given a seed pixel (u, v) and a label, relabel the maximal 4-connected set
//     of pixels that share the seed's original label. Return how many pixels
//     changed.
//   - Three strategies behind one Filler capability, described below.
//   - All strategies produce the same final image and the same count. They
//     differ only in visit order, frontier size and stack-depth risk.
//
// Strategies
//
// Recursive is depth-first on the call stack, visiting neighbours right,
// down, up, left. Stack is depth-first on an explicit frontier.Stack:
// neighbours are pushed after a bounds check only and revalidated when
// popped, so one coordinate may sit on the stack several times. Queue is
// breadth-first on an explicit frontier.Queue: neighbours are validated and
// relabeled before they are enqueued, so no pixel is ever enqueued twice.
//
// No-op law
//
//	If the seed already carries the target label the fill returns 0 and does
//	not touch the image. A second fill of an already-filled region is therefore
//	always 0.
//
// Instrumentation
//
//	Pass WithCounters(c) to observe pixel-memory accesses, pushes, pops, peak
//	frontier length, recursive calls and depth. Nothing is recorded globally.
//
// Recursion depth
//
//	Recursive uses one Go stack frame per pixel on the current DFS path, which
//	is the region size in the worst (snake-shaped) case. Go stacks grow on
//	demand up to the runtime maximum (1 GB on 64-bit by default), past which the
//	process aborts. WithMaxDepth(d) turns that hazard into ErrDepthExceeded.
//
// Partial fills
//
//	A fill stops early only when a configured guard trips (WithMaxDepth,
//	WithFrontierLimit). It then returns the number of pixels relabeled so far
//	together with ErrDepthExceeded or ErrFrontierExhausted. Those pixels keep
//	the new label. Re-running the same fill from the same seed does not
//	complete the region, because the seed no longer carries the original label.
//
// Complexity (N = pixels in the region)
//
//   - Time:   O(N) for every strategy (Stack does up to 4N pushes).
//   - Memory: Recursive O(depth) frames, Stack O(N) entries in the worst
//     case, Queue O(breadth of the BFS wavefront).
//
// Errors
//
//   - ErrNilImage:          img is nil.
//   - ErrInvalidSeed:       (u, v) is outside the image.
//   - ErrLabelRange:        label is not in the image's colour table.
//   - ErrDepthExceeded:     recursion passed the WithMaxDepth guard.
//   - ErrFrontierExhausted: the frontier hit its WithFrontierLimit.
//   - ErrUnknownStrategy:   ParseStrategy / New got an unknown name.
//
// Concurrency
//
//	Fills mutate the image in place without locking. Never run two fills on
//	the same image at once; fills on distinct images are independent.
package regionfill
