// Package api
// Author: momentics@gmail.com
//
// Generic result pairing for batched ring operations.

package api

// Result wraps a popped value or the error that prevented it.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok reports whether the result carries a value.
func (r Result[T]) Ok() bool { return r.Err == nil }

// Capture folds one value-or-error pair, as returned by Pop, into a
// Result so a caller can collect a batch of outcomes and inspect them
// after the fact.
func Capture[T any](v T, err error) Result[T] {
	return Result[T]{Value: v, Err: err}
}
