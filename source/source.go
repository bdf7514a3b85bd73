// Package source provides ready-made [peekn.Source] implementations.
package source

import (
	"github.com/teenjuna/peekn"
)

// Empty returns a source that produces nothing.
func Empty[T any]() *SliceSource[T] {
	return Slice[T](nil)
}

// Once returns a source that produces item exactly once.
func Once[T any](item T) *SliceSource[T] {
	return Slice([]T{item})
}

var (
	_ peekn.ReverseSource[any]  = (*SliceSource[any])(nil)
	_ peekn.SkippingSource[any] = (*SliceSource[any])(nil)
	_ peekn.SizedSource[any]    = (*SliceSource[any])(nil)

	_ peekn.ReverseSource[int]  = (*RangeSource)(nil)
	_ peekn.SkippingSource[int] = (*RangeSource)(nil)
	_ peekn.SizedSource[int]    = (*RangeSource)(nil)

	_ peekn.Source[any] = (*SeqSource[any])(nil)
)
