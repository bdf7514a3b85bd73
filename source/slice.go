package source

// SliceSource produces the elements of a slice, front to back. It supports
// reverse consumption, skipping and exact size hints. The slice is not
// copied; the caller must not mutate it while the source is in use.
type SliceSource[T any] struct {
	items []T
	front int
	back  int
}

// Slice returns a source over items.
func Slice[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{
		items: items,
		back:  len(items),
	}
}

func (s *SliceSource[T]) Next() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	item := s.items[s.front]
	s.front++
	return item, true
}

func (s *SliceSource[T]) NextBack() (T, bool) {
	if s.front >= s.back {
		var zero T
		return zero, false
	}
	s.back--
	return s.items[s.back], true
}

func (s *SliceSource[T]) Nth(n int) (T, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	if n >= s.back-s.front {
		s.front = s.back
		var zero T
		return zero, false
	}
	s.front += n
	return s.Next()
}

func (s *SliceSource[T]) NthBack(n int) (T, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	if n >= s.back-s.front {
		s.back = s.front
		var zero T
		return zero, false
	}
	s.back -= n
	return s.NextBack()
}

func (s *SliceSource[T]) SizeHint() (min, max int, bounded bool) {
	remaining := s.back - s.front
	return remaining, remaining, true
}
