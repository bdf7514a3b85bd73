package peekn

// Cursor is a short-lived view of the first items buffered by a
// [Lookahead]. A cursor holds the iterator exclusively: any consuming
// operation on the iterator, or a newer [Lookahead.Peek], invalidates it,
// and using an invalidated cursor panics.
type Cursor[T any] struct {
	it     *Lookahead[T]
	window int
	gen    uint64
}

// ensure pulls from the source until the buffer holds at least window
// items. On failure the items pulled so far stay buffered.
func (it *Lookahead[T]) ensure(window int) bool {
	for it.buffer.Len() < window {
		item, ok := it.pull()
		if !ok {
			it.metrics.buffered(it.buffer.Len())
			return false
		}
		if !it.buffer.PushBack(item) {
			panic("lookahead buffer out of capacity")
		}
	}
	it.metrics.buffered(it.buffer.Len())
	return true
}

// Peek returns a cursor over the next window items, pulling from the source
// as needed. The second return is false when the source exhausts before
// window items are available; whatever was pulled remains buffered. A window
// outside [1, Cap()] is a contract violation and panics.
func (it *Lookahead[T]) Peek(window int) (*Cursor[T], bool) {
	if window < 1 {
		panic("window can't be < 1")
	}
	if window > it.buffer.Cap() {
		panic("window can't exceed capacity")
	}
	it.gen++
	if !it.ensure(window) {
		it.metrics.peek(false)
		return nil, false
	}
	it.metrics.peek(true)
	return &Cursor[T]{it: it, window: window, gen: it.gen}, true
}

// Peek1 returns a cursor over the next item.
func (it *Lookahead[T]) Peek1() (*Cursor[T], bool) {
	return it.Peek(1)
}

// Peek2 returns a cursor over the next two items.
func (it *Lookahead[T]) Peek2() (*Cursor[T], bool) {
	return it.Peek(2)
}

// Peek3 returns a cursor over the next three items.
func (it *Lookahead[T]) Peek3() (*Cursor[T], bool) {
	return it.Peek(3)
}

func (c *Cursor[T]) check() {
	if c.it == nil || c.gen != c.it.gen {
		panic("cursor is no longer valid")
	}
}

// Window returns the cursor's window size.
func (c *Cursor[T]) Window() int {
	c.check()
	return c.window
}

// Item returns the last item of the window: the one most recently brought
// into view.
func (c *Cursor[T]) Item() T {
	c.check()
	return c.it.buffer.At(c.window - 1)
}

// PeekAll returns the window items in order without consuming them.
func (c *Cursor[T]) PeekAll() []T {
	c.check()
	out := make([]T, c.window)
	for i := range out {
		out[i] = c.it.buffer.At(i)
	}
	return out
}

// TakeAll removes exactly the window items from the buffer front and returns
// them in order. The cursor is invalidated.
func (c *Cursor[T]) TakeAll() []T {
	c.check()
	it := c.it
	c.it = nil
	it.gen++

	out := make([]T, c.window)
	for i := range out {
		item, ok := it.buffer.PopFront()
		if !ok {
			panic("lookahead buffer lost a window item")
		}
		out[i] = item
	}
	it.metrics.replayed(len(out))
	it.metrics.buffered(it.buffer.Len())
	return out
}

// Prev narrows the window by one item. All remaining items are already
// buffered, so narrowing cannot fail; narrowing a one-item window is a
// contract violation and panics.
func (c *Cursor[T]) Prev() *Cursor[T] {
	c.check()
	if c.window == 1 {
		panic("window can't be < 1")
	}
	c.window--
	return c
}

// Forward widens the window by one item, pulling at most one item from the
// source. It reports whether the widening succeeded; on failure the cursor
// is left unchanged and stays usable. Widening past the buffer capacity is a
// contract violation and panics.
func (c *Cursor[T]) Forward() bool {
	c.check()
	if c.window == c.it.buffer.Cap() {
		panic("window can't exceed capacity")
	}
	if !c.it.ensure(c.window + 1) {
		return false
	}
	c.window++
	return true
}
