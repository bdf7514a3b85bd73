// Package ring provides a fixed-capacity double-ended queue backed by a
// circular array. Capacity is set at construction and never grows.
package ring

import (
	"fmt"
	"iter"
	"strings"
)

// Buffer is a double-ended queue over a fixed number of slots. Logical index
// i lives at physical slot (start + i) mod capacity; slots outside the
// logical range are vacant and are never read.
//
// Instances are not considered thread-safe.
type Buffer[T any] struct {
	slots  []slot[T]
	start  wrapping
	length bounded
}

// slot tracks occupancy explicitly so a vacant slot is never read and a
// vacated slot does not keep its value reachable.
type slot[T any] struct {
	value    T
	occupied bool
}

// New returns an empty buffer with the given capacity.
func New[T any](capacity int) *Buffer[T] {
	if capacity < 1 {
		panic("capacity can't be < 1")
	}
	return &Buffer[T]{
		slots:  make([]slot[T], capacity),
		start:  wrapping{n: capacity},
		length: bounded{max: capacity},
	}
}

// Len returns the number of buffered items.
func (b *Buffer[T]) Len() int {
	return b.length.cur
}

// Cap returns the fixed capacity.
func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// IsEmpty reports whether the buffer holds no items.
func (b *Buffer[T]) IsEmpty() bool {
	return b.length.empty()
}

func (b *Buffer[T]) write(pos int, item T) {
	s := &b.slots[b.start.add(pos)]
	if s.occupied {
		panic("write to an occupied slot")
	}
	s.value = item
	s.occupied = true
}

func (b *Buffer[T]) overwrite(pos int, item T) {
	s := &b.slots[b.start.add(pos)]
	if !s.occupied {
		panic("overwrite of a vacant slot")
	}
	s.value = item
}

func (b *Buffer[T]) take(pos int) T {
	s := &b.slots[b.start.add(pos)]
	if !s.occupied {
		panic("read of a vacant slot")
	}
	item := s.value
	*s = slot[T]{}
	return item
}

// PushBack appends item at the logical back. It reports whether the item was
// accepted; a full buffer rejects the push and keeps its contents intact.
func (b *Buffer[T]) PushBack(item T) bool {
	if b.length.full() {
		return false
	}
	b.write(b.length.cur, item)
	b.length.inc()
	return true
}

// PushFront prepends item at the logical front. It reports whether the item
// was accepted; a full buffer rejects the push and keeps its contents intact.
func (b *Buffer[T]) PushFront(item T) bool {
	if b.length.full() {
		return false
	}
	b.start.dec()
	b.write(0, item)
	b.length.inc()
	return true
}

// PushBackOverwrite appends item at the logical back. When the buffer is
// full it first evicts the front (oldest) item, so the push never fails.
func (b *Buffer[T]) PushBackOverwrite(item T) {
	if !b.length.full() {
		b.write(b.length.cur, item)
		b.length.inc()
		return
	}
	b.overwrite(0, item)
	b.start.inc()
}

// PushFrontOverwrite prepends item at the logical front. When the buffer is
// full it first evicts the back (newest) item, so the push never fails.
func (b *Buffer[T]) PushFrontOverwrite(item T) {
	b.start.dec()
	if !b.length.full() {
		b.write(0, item)
		b.length.inc()
		return
	}
	b.overwrite(0, item)
}

// PopBack removes and returns the logical back item. The second return is
// false when the buffer is empty.
func (b *Buffer[T]) PopBack() (T, bool) {
	if b.length.empty() {
		var zero T
		return zero, false
	}
	b.length.dec()
	return b.take(b.length.cur), true
}

// PopFront removes and returns the logical front item. The second return is
// false when the buffer is empty.
func (b *Buffer[T]) PopFront() (T, bool) {
	if b.length.empty() {
		var zero T
		return zero, false
	}
	item := b.take(0)
	b.length.dec()
	b.start.inc()
	return item, true
}

// Get returns the item at logical index i. The second return is false when
// i is out of bounds.
func (b *Buffer[T]) Get(i int) (T, bool) {
	if i < 0 || i >= b.length.cur {
		var zero T
		return zero, false
	}
	s := &b.slots[b.start.add(i)]
	if !s.occupied {
		panic("read of a vacant slot")
	}
	return s.value, true
}

// Ref returns a pointer to the item at logical index i, or nil when i is out
// of bounds. The pointer is valid until the next mutation of the buffer.
func (b *Buffer[T]) Ref(i int) *T {
	if i < 0 || i >= b.length.cur {
		return nil
	}
	s := &b.slots[b.start.add(i)]
	if !s.occupied {
		panic("read of a vacant slot")
	}
	return &s.value
}

// At returns the item at logical index i and panics when i is out of bounds.
// Callers that can't guarantee the bound should use [Buffer.Get].
func (b *Buffer[T]) At(i int) T {
	item, ok := b.Get(i)
	if !ok {
		panic(fmt.Sprintf("index out of bounds: index %d, but length %d", i, b.length.cur))
	}
	return item
}

// views returns the occupied slots as one or two contiguous runs of the
// backing slice, in logical order. The second run is non-nil only when the
// logical range wraps past the physical end.
func (b *Buffer[T]) views() (first, second []slot[T]) {
	if b.length.empty() {
		return nil, nil
	}
	end := b.start.pos + b.length.cur
	if end <= len(b.slots) {
		return b.slots[b.start.pos:end], nil
	}
	return b.slots[b.start.pos:], b.slots[:end-len(b.slots)]
}

// Clear removes every buffered item, releasing the values held by the
// occupied slots, and resets the layout.
func (b *Buffer[T]) Clear() {
	first, second := b.views()
	clear(first)
	clear(second)
	b.start = wrapping{n: len(b.slots)}
	b.length.cur = 0
}

// Clone returns an independent buffer with the same logical content. The
// copy is laid out from physical slot 0 regardless of the source layout.
func (b *Buffer[T]) Clone() *Buffer[T] {
	out := New[T](len(b.slots))
	first, second := b.views()
	n := copy(out.slots, first)
	copy(out.slots[n:], second)
	out.length.cur = b.length.cur
	return out
}

// Iter returns a sequence of the buffered items in logical order.
func (b *Buffer[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		first, second := b.views()
		for i := range first {
			if !yield(first[i].value) {
				return
			}
		}
		for i := range second {
			if !yield(second[i].value) {
				return
			}
		}
	}
}

// Equal reports whether two buffers have the same capacity and the same
// logical content. Physical layout is ignored.
func Equal[T comparable](x, y *Buffer[T]) bool {
	if x.Cap() != y.Cap() || x.Len() != y.Len() {
		return false
	}
	for i := range x.Len() {
		if x.At(i) != y.At(i) {
			return false
		}
	}
	return true
}

// String formats the logical content for diagnostics.
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "ring.Buffer{cap: %d, len: %d, items: [", b.Cap(), b.Len())
	i := 0
	for item := range b.Iter() {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%v", item)
		i++
	}
	sb.WriteString("]}")
	return sb.String()
}
