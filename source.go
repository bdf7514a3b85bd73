package peekn

// Source is a single-pass producer of items. Next returns the next item in
// sequence; the second return is false once the source is exhausted, and
// every call after that must keep returning false.
//
// Implementations are not considered thread-safe.
type Source[T any] interface {
	Next() (T, bool)
}

// ReverseSource is a source that can also be consumed from its back end.
// The front and back ends share the remaining items: an item consumed from
// one end is never produced by the other.
type ReverseSource[T any] interface {
	Source[T]

	// NextBack returns the next item from the back end.
	NextBack() (T, bool)
	// NthBack skips n items from the back end and returns the following one.
	// NthBack(0) is equivalent to NextBack.
	NthBack(n int) (T, bool)
}

// SkippingSource is a source that can skip over items cheaper than visiting
// them one by one.
type SkippingSource[T any] interface {
	Source[T]

	// Nth skips n items and returns the following one. Nth(0) is equivalent
	// to Next.
	Nth(n int) (T, bool)
}

// SizedSource is a source that knows bounds on the number of remaining
// items.
type SizedSource[T any] interface {
	Source[T]

	// SizeHint returns the bounds on the number of remaining items. The
	// upper bound is meaningful only when bounded is true.
	SizeHint() (min, max int, bounded bool)
}
