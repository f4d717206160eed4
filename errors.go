// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package p256

import (
	"errors"
	"fmt"
)

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind
// when determining the reaction to an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrOutOfRange is returned when a caller-supplied field element
	// encoding is not 32 bytes long or is not less than the field prime.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrPointAtInfinity is returned when affine conversion is requested on
	// the point at infinity.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrAllocationFailure is returned when scratch buffers required by a
	// scalar multiplication cannot be allocated.
	ErrAllocationFailure = ErrorKind("ErrAllocationFailure")

	// ErrInternalBignum is returned when modular reduction of a scalar
	// fails.
	ErrInternalBignum = ErrorKind("ErrInternalBignum")

	// ErrUndefinedGenerator is returned when a group lacks a generator but
	// one is required for the requested operation.
	ErrUndefinedGenerator = ErrorKind("ErrUndefinedGenerator")

	// ErrTooManyTerms is returned when the number of variable-base terms
	// passed to Mul exceeds what the combinator can bound against overflow.
	ErrTooManyTerms = ErrorKind("ErrTooManyTerms")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to P-256 scalar multiplication.  It has
// full support for errors.Is and errors.As, so the caller can ask for the
// particular ErrorKind that occurred.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// Is implements the interface to work with errors.Is.  It returns true if
// the target is an ErrorKind and the Err field matches that kind, or if the
// target is an Error whose Err field matches.
func (e Error) Is(target error) bool {
	switch target := target.(type) {
	case ErrorKind:
		return errors.Is(e.Err, target)
	case Error:
		return errors.Is(e.Err, target.Err)
	}
	return false
}

// As implements the interface to work with errors.As.
func (e Error) As(target any) bool {
	return errors.As(e.Err, target)
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// errorf creates an Error with a formatted description, wrapping kind.
func errorf(kind ErrorKind, format string, args ...any) Error {
	return makeError(kind, fmt.Sprintf(format, args...))
}
