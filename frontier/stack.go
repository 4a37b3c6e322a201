package frontier

// Stack is a LIFO container backed by a growable slice.
type Stack[T any] struct {
	items []T
	limit int
}

// NewStack returns an empty stack with room for capacity elements.
// limit > 0 caps the number of elements held at once; limit <= 0 means unbounded.
func NewStack[T any](capacity, limit int) *Stack[T] {
	if capacity < 1 {
		capacity = defaultCapacity
	}
	if limit > 0 && capacity > limit {
		capacity = limit
	}
	return &Stack[T]{items: make([]T, 0, capacity), limit: limit}
}

// Push places x on top of the stack. It returns ErrFull when the limit is reached.
func (s *Stack[T]) Push(x T) error {
	if s.limit > 0 && len(s.items) >= s.limit {
		return ErrFull
	}
	if len(s.items) == cap(s.items) {
		grown := make([]T, len(s.items), 2*cap(s.items))
		copy(grown, s.items)
		s.items = grown
	}
	s.items = append(s.items, x)
	return nil
}

// Pop removes and returns the top element. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (x T, ok bool) {
	n := len(s.items)
	if n == 0 {
		return x, false
	}
	x = s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return x, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (x T, ok bool) {
	if len(s.items) == 0 {
		return x, false
	}
	return s.items[len(s.items)-1], true
}

// Len reports the number of elements on the stack.
func (s *Stack[T]) Len() int { return len(s.items) }

// Cap reports the size of the backing storage.
func (s *Stack[T]) Cap() int { return cap(s.items) }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clear drops every element but keeps the backing storage.
func (s *Stack[T]) Clear() {
	clear(s.items)
	s.items = s.items[:0]
}
