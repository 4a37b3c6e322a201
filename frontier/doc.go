// Package frontier provides the pixel coordinate type and the two frontier
// containers used by the non-recursive flood fills: a LIFO Stack and a FIFO
// Queue.
//
// What:
//
//   - Coord is a signed (U, V) = (column, row) pair, so off-image neighbours
//     such as (-1, 0) are representable and can be bounds-checked.
//   - Stack[T] and Queue[T] are dynamically growing containers with amortised
//     O(1) insertion (capacity doubling). Queue is a ring buffer, so dequeued
//     slots are reused instead of leaking the slice head.
//   - An optional Limit bounds the number of in-flight elements. A push beyond
//     the limit fails with ErrFull and leaves the container unchanged. This is
//     how callers model frontier allocation failure deterministically.
//
// Complexity:
//
//   - Push / Pop / Enqueue / Dequeue: O(1) amortised.
//   - Memory: O(peak length).
//
// Errors:
//
//   - ErrFull: the configured Limit would be exceeded.
//
// Concurrency:
//
//	Containers are owned by a single fill invocation and are not safe for
//	concurrent use.
package frontier
