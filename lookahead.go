// Package peekn provides a bounded-lookahead adapter for single-pass
// sequences. Wrapping a [Source] gives back an iterator that behaves exactly
// like the source itself, plus the ability to peek a fixed number of upcoming
// items through a [Cursor] without consuming them.
package peekn

import (
	"iter"
	"slices"

	"github.com/teenjuna/peekn/ring"
)

// Lookahead wraps a source with a fixed-capacity buffer of items pulled
// ahead of consumption. Buffered items are always replayed before fresh ones,
// so concatenating the buffer with the remaining source output yields the
// original sequence.
//
// Instances are not considered thread-safe.
type Lookahead[T any] struct {
	source  Source[T]
	buffer  *ring.Buffer[T]
	gen     uint64
	metrics *metrics
}

// New wraps source with a lookahead buffer of the given capacity. Peek
// windows can never exceed the capacity.
func New[T any](source Source[T], capacity int, options ...Option) *Lookahead[T] {
	if source == nil {
		panic("source can't be nil")
	}
	if capacity < 1 {
		panic("capacity can't be < 1")
	}
	cfg := newConfig(options...)
	return &Lookahead[T]{
		source:  source,
		buffer:  ring.New[T](capacity),
		metrics: cfg.metrics,
	}
}

// New1 wraps source with a single-item lookahead buffer.
func New1[T any](source Source[T], options ...Option) *Lookahead[T] {
	return New(source, 1, options...)
}

// New2 wraps source with a two-item lookahead buffer.
func New2[T any](source Source[T], options ...Option) *Lookahead[T] {
	return New(source, 2, options...)
}

// New3 wraps source with a three-item lookahead buffer.
func New3[T any](source Source[T], options ...Option) *Lookahead[T] {
	return New(source, 3, options...)
}

// Cap returns the lookahead capacity.
func (it *Lookahead[T]) Cap() int {
	return it.buffer.Cap()
}

// Buffered returns the number of items currently pulled ahead.
func (it *Lookahead[T]) Buffered() int {
	return it.buffer.Len()
}

// pull consumes one item from the source.
func (it *Lookahead[T]) pull() (T, bool) {
	item, ok := it.source.Next()
	if ok {
		it.metrics.sourced(1)
	}
	return item, ok
}

// replay consumes one item from the buffer front.
func (it *Lookahead[T]) replay() (T, bool) {
	item, ok := it.buffer.PopFront()
	if ok {
		it.metrics.replayed(1)
		it.metrics.buffered(it.buffer.Len())
	}
	return item, ok
}

func (it *Lookahead[T]) next() (T, bool) {
	if item, ok := it.replay(); ok {
		return item, true
	}
	return it.pull()
}

// Next returns the buffer front when the buffer is non-empty, and pulls
// directly from the source otherwise. The second return is false once both
// are exhausted.
func (it *Lookahead[T]) Next() (T, bool) {
	it.gen++
	return it.next()
}

func (it *Lookahead[T]) reverse() ReverseSource[T] {
	rs, ok := it.source.(ReverseSource[T])
	if !ok {
		panic("source is not reversible")
	}
	return rs
}

func (it *Lookahead[T]) nextBack(rs ReverseSource[T]) (T, bool) {
	if item, ok := rs.NextBack(); ok {
		it.metrics.sourced(1)
		return item, true
	}
	item, ok := it.buffer.PopBack()
	if ok {
		it.metrics.replayed(1)
		it.metrics.buffered(it.buffer.Len())
	}
	return item, ok
}

// NextBack returns the next item from the back end: the source's back first,
// then the buffer's back, since buffered items are the ones nearest the
// front of consumption order. Panics when the source is not a
// [ReverseSource].
func (it *Lookahead[T]) NextBack() (T, bool) {
	it.gen++
	return it.nextBack(it.reverse())
}

// SizeHint returns bounds on the number of remaining items: the buffered
// count plus the source's own hint when the source is a [SizedSource].
func (it *Lookahead[T]) SizeHint() (min, max int, bounded bool) {
	buffered := it.buffer.Len()
	if s, ok := it.source.(SizedSource[T]); ok {
		mn, mx, b := s.SizeHint()
		return buffered + mn, buffered + mx, b
	}
	return buffered, 0, false
}

// Count consumes the iterator and returns the number of remaining items.
func (it *Lookahead[T]) Count() int {
	it.gen++
	n := it.buffer.Len()
	it.buffer.Clear()
	it.metrics.buffered(0)
	for {
		if _, ok := it.pull(); !ok {
			return n
		}
		n++
	}
}

// Last consumes the iterator and returns its final item. Like
// [Lookahead.Count] it exhausts the source completely, so every later call
// reports an empty iterator.
func (it *Lookahead[T]) Last() (T, bool) {
	it.gen++
	last, found := it.buffer.PopBack()
	it.buffer.Clear()
	it.metrics.buffered(0)
	for {
		item, ok := it.pull()
		if !ok {
			return last, found
		}
		last, found = item, true
	}
}

// Nth skips n items and returns the following one, so Nth(0) is equivalent
// to [Lookahead.Next]. Skipping past the buffer falls through to the
// source's native [SkippingSource.Nth] when available.
func (it *Lookahead[T]) Nth(n int) (T, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	it.gen++

	buffered := it.buffer.Len()
	if n >= buffered {
		it.buffer.Clear()
		it.metrics.buffered(0)
		n -= buffered

		if s, ok := it.source.(SkippingSource[T]); ok {
			item, ok := s.Nth(n)
			if ok {
				it.metrics.sourced(n + 1)
			}
			return item, ok
		}
		for ; n > 0; n-- {
			if _, ok := it.pull(); !ok {
				var zero T
				return zero, false
			}
		}
		return it.pull()
	}

	for ; n > 0; n-- {
		it.buffer.PopFront()
	}
	it.metrics.buffered(it.buffer.Len())
	return it.replay()
}

// NthBack skips n items from the back end and returns the following one, so
// NthBack(0) is equivalent to [Lookahead.NextBack]. Panics when the source
// is not a [ReverseSource].
func (it *Lookahead[T]) NthBack(n int) (T, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	it.gen++

	rs := it.reverse()
	if it.buffer.IsEmpty() {
		item, ok := rs.NthBack(n)
		if ok {
			it.metrics.sourced(n + 1)
		}
		return item, ok
	}
	for ; n > 0; n-- {
		if _, ok := it.nextBack(rs); !ok {
			var zero T
			return zero, false
		}
	}
	return it.nextBack(rs)
}

// ForEach consumes the iterator, calling f on every remaining item in order.
func (it *Lookahead[T]) ForEach(f func(T)) {
	it.gen++
	for {
		item, ok := it.next()
		if !ok {
			return
		}
		f(item)
	}
}

// Reduce consumes the iterator, folding the remaining items with f. The
// second return is false when no items remain.
func (it *Lookahead[T]) Reduce(f func(T, T) T) (T, bool) {
	it.gen++
	acc, ok := it.next()
	if !ok {
		var zero T
		return zero, false
	}
	for {
		item, ok := it.next()
		if !ok {
			return acc, true
		}
		acc = f(acc, item)
	}
}

// All reports whether f holds for every remaining item. It stops at the
// first item that fails f, leaving the rest unconsumed.
func (it *Lookahead[T]) All(f func(T) bool) bool {
	it.gen++
	for {
		item, ok := it.next()
		if !ok {
			return true
		}
		if !f(item) {
			return false
		}
	}
}

// Any reports whether f holds for some remaining item. It stops at the first
// item that passes f, leaving the rest unconsumed.
func (it *Lookahead[T]) Any(f func(T) bool) bool {
	it.gen++
	for {
		item, ok := it.next()
		if !ok {
			return false
		}
		if f(item) {
			return true
		}
	}
}

// Find returns the first remaining item that passes predicate, consuming
// every item up to and including it.
func (it *Lookahead[T]) Find(predicate func(T) bool) (T, bool) {
	it.gen++
	for {
		item, ok := it.next()
		if !ok {
			var zero T
			return zero, false
		}
		if predicate(item) {
			return item, true
		}
	}
}

// Position returns the index, counted from the current position, of the
// first remaining item that passes predicate.
func (it *Lookahead[T]) Position(predicate func(T) bool) (int, bool) {
	it.gen++
	skipped := 0
	for {
		item, ok := it.next()
		if !ok {
			return 0, false
		}
		if predicate(item) {
			return skipped, true
		}
		skipped++
	}
}

// fill tops the buffer up from the source, stopping at capacity or source
// exhaustion.
func (it *Lookahead[T]) fill() {
	for it.buffer.Len() < it.buffer.Cap() {
		item, ok := it.pull()
		if !ok {
			break
		}
		it.buffer.PushBack(item)
	}
	it.metrics.buffered(it.buffer.Len())
}

// Partition consumes the iterator and splits the remaining items by
// predicate, preserving relative order within both halves. It works in
// chunks: the buffer is refilled from the source up to capacity, then
// drained in runs of consecutive items that land in the same half, so the
// predicate is called exactly once per item.
func (it *Lookahead[T]) Partition(predicate func(T) bool) (matched, unmatched []T) {
	it.gen++
	it.fill()

	var nextResult, haveNext bool
	for !it.buffer.IsEmpty() {
		for {
			first, ok := it.buffer.PopFront()
			if !ok {
				break
			}

			result := nextResult
			if !haveNext {
				result = predicate(first)
			}
			haveNext = false

			// extend the run while successors land in the same half
			run := 0
			for {
				item, ok := it.buffer.Get(run)
				if !ok {
					break
				}
				if predicate(item) != result {
					nextResult, haveNext = !result, true
					break
				}
				run++
			}

			out := &unmatched
			if result {
				out = &matched
			}
			*out = append(*out, first)
			for range run {
				item, _ := it.buffer.PopFront()
				*out = append(*out, item)
			}
		}

		it.fill()
	}

	return matched, unmatched
}

// Iter returns the remaining items as a sequence. Stopping the sequence
// early leaves the rest unconsumed.
func (it *Lookahead[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			item, ok := it.Next()
			if !ok || !yield(item) {
				return
			}
		}
	}
}

// Collect consumes the iterator into a slice.
func (it *Lookahead[T]) Collect() []T {
	return slices.Collect(it.Iter())
}

// Fold consumes the iterator, folding the remaining items into an
// accumulator. It is a package function because Go methods can't introduce
// the accumulator type parameter.
func Fold[T, A any](it *Lookahead[T], init A, f func(A, T) A) A {
	it.gen++
	acc := init
	for {
		item, ok := it.next()
		if !ok {
			return acc
		}
		acc = f(acc, item)
	}
}

// FindMap returns the first non-absent result of applying f to the remaining
// items, consuming every item up to and including the matching one.
func FindMap[T, R any](it *Lookahead[T], f func(T) (R, bool)) (R, bool) {
	it.gen++
	for {
		item, ok := it.next()
		if !ok {
			var zero R
			return zero, false
		}
		if res, ok := f(item); ok {
			return res, true
		}
	}
}
