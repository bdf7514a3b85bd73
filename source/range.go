package source

// RangeSource produces the integers of a half-open range in ascending
// order. Skips from either end are O(1).
type RangeSource struct {
	lo int
	hi int
}

// Range returns a source over [lo, hi).
func Range(lo, hi int) *RangeSource {
	if hi < lo {
		hi = lo
	}
	return &RangeSource{lo: lo, hi: hi}
}

func (s *RangeSource) Next() (int, bool) {
	if s.lo >= s.hi {
		return 0, false
	}
	item := s.lo
	s.lo++
	return item, true
}

func (s *RangeSource) NextBack() (int, bool) {
	if s.lo >= s.hi {
		return 0, false
	}
	s.hi--
	return s.hi, true
}

func (s *RangeSource) Nth(n int) (int, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	if n >= s.hi-s.lo {
		s.lo = s.hi
		return 0, false
	}
	s.lo += n
	return s.Next()
}

func (s *RangeSource) NthBack(n int) (int, bool) {
	if n < 0 {
		panic("n can't be < 0")
	}
	if n >= s.hi-s.lo {
		s.hi = s.lo
		return 0, false
	}
	s.hi -= n
	return s.NextBack()
}

func (s *RangeSource) SizeHint() (min, max int, bounded bool) {
	remaining := s.hi - s.lo
	return remaining, remaining, true
}
