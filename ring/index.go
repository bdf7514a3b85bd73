package ring

// wrapping is a physical slot cursor over [0, n). Increment and decrement
// wrap around the capacity instead of the native integer bounds.
type wrapping struct {
	pos int
	n   int
}

func (w *wrapping) inc() {
	if w.pos == w.n-1 {
		w.pos = 0
	} else {
		w.pos++
	}
}

func (w *wrapping) dec() {
	if w.pos == 0 {
		w.pos = w.n - 1
	} else {
		w.pos--
	}
}

// add maps a logical offset to a physical slot index. Both pos and offset are
// at most n, so the sum stays far below the native int bound and a single
// conditional subtraction replaces the modulo.
func (w wrapping) add(offset int) int {
	if offset < 0 || offset > w.n {
		panic("offset out of range")
	}
	sum := w.pos + offset
	if sum >= w.n {
		sum -= w.n
	}
	return sum
}

// bounded is a counter over [0, max]. It never silently leaves the range:
// moving past either end is an invariant violation.
type bounded struct {
	cur int
	max int
}

func (b *bounded) full() bool {
	return b.cur == b.max
}

func (b *bounded) empty() bool {
	return b.cur == 0
}

func (b *bounded) inc() {
	if b.full() {
		panic("bounded counter overflow")
	}
	b.cur++
}

func (b *bounded) dec() {
	if b.empty() {
		panic("bounded counter underflow")
	}
	b.cur--
}
