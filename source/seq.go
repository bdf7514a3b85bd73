package source

import "iter"

// SeqSource adapts an [iter.Seq] to pull-based consumption.
type SeqSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// Seq returns a source over the items of seq. Call [SeqSource.Stop] when
// abandoning the source before exhaustion.
func Seq[T any](seq iter.Seq[T]) *SeqSource[T] {
	next, stop := iter.Pull(seq)
	return &SeqSource[T]{
		next: next,
		stop: stop,
	}
}

func (s *SeqSource[T]) Next() (T, bool) {
	return s.next()
}

// Stop releases the underlying sequence. Next returns no items after Stop.
func (s *SeqSource[T]) Stop() {
	s.stop()
}
