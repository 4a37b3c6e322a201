package frontier

// Queue is a FIFO container backed by a ring buffer that doubles when full.
type Queue[T any] struct {
	buf   []T
	head  int // index of the front element
	size  int
	limit int
}

// NewQueue returns an empty queue with room for capacity elements.
// limit > 0 caps the number of elements held at once; limit <= 0 means unbounded.
func NewQueue[T any](capacity, limit int) *Queue[T] {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &Queue[T]{buf: make([]T, capacity), limit: limit}
}

// Enqueue appends x at the back. It returns ErrFull when the limit is reached.
func (q *Queue[T]) Enqueue(x T) error {
	if q.limit > 0 && q.size >= q.limit {
		return ErrFull
	}
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)%len(q.buf)] = x
	q.size++
	return nil
}

// Dequeue removes and returns the front element. ok is false when the queue is empty.
func (q *Queue[T]) Dequeue() (x T, ok bool) {
	if q.size == 0 {
		return x, false
	}
	x = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.size--
	return x, true
}

// Front returns the front element without removing it.
func (q *Queue[T]) Front() (x T, ok bool) {
	if q.size == 0 {
		return x, false
	}
	return q.buf[q.head], true
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int { return q.size }

// Cap reports the size of the ring buffer.
func (q *Queue[T]) Cap() int { return len(q.buf) }

// IsEmpty reports whether the queue holds no elements.
func (q *Queue[T]) IsEmpty() bool { return q.size == 0 }

// grow doubles the ring and unwraps it so the front sits at index 0.
func (q *Queue[T]) grow() {
	n := 2 * len(q.buf)
	if n == 0 {
		n = defaultCapacity
	}
	if q.limit > 0 && n > q.limit {
		n = q.limit
	}
	next := make([]T, n)
	k := copy(next, q.buf[q.head:])
	copy(next[k:], q.buf[:q.head])
	q.buf = next
	q.head = 0
}
