// Package api
// Author: momentics <momentics@gmail.com>
//
// Error taxonomy for the ring buffer engine.
//
// The engine has exactly two failure modes, both local, expected and
// recoverable: a push against a full ring and a pop against an empty
// one. Neither leaves the ring in an invalid state, and no operation
// escalates to a panic.

package api

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by ring operations. Compare with errors.Is;
// wrapped forms produced by Wrap also match.
var (
	// ErrBufferFull is returned by Push when no free slot exists.
	ErrBufferFull = errors.New("ring buffer full")

	// ErrBufferEmpty is returned by Pop and Peek when no element is
	// available.
	ErrBufferEmpty = errors.New("ring buffer empty")
)

// ErrorCode identifies a failure mode for callers that dispatch on
// codes rather than sentinel identity.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeFull
	ErrCodeEmpty
)

// Error pairs an ErrorCode with the sentinel it wraps plus optional
// call-site context.
type Error struct {
	Code    ErrorCode
	Context string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Context == "" {
		return e.cause.Error()
	}
	return fmt.Sprintf("%s: %s", e.Context, e.cause.Error())
}

// Unwrap exposes the sentinel so errors.Is(err, ErrBufferFull) holds.
func (e *Error) Unwrap() error { return e.cause }

// Wrap attaches call-site context to a ring sentinel. Non-ring errors
// are returned unchanged.
func Wrap(err error, context string) error {
	switch {
	case errors.Is(err, ErrBufferFull):
		return &Error{Code: ErrCodeFull, Context: context, cause: err}
	case errors.Is(err, ErrBufferEmpty):
		return &Error{Code: ErrCodeEmpty, Context: context, cause: err}
	default:
		return err
	}
}

// CodeOf maps an error to its ErrorCode. Unrelated errors and nil map
// to ErrCodeOK.
func CodeOf(err error) ErrorCode {
	switch {
	case errors.Is(err, ErrBufferFull):
		return ErrCodeFull
	case errors.Is(err, ErrBufferEmpty):
		return ErrCodeEmpty
	default:
		return ErrCodeOK
	}
}
