// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"reflect"
	"strconv"
)

const errorPrefix = "conv: "

// Error matches errors returned by this package according to errors.Is.
const Error = convError("conv error")

// Reasons reported by [RangeError.Err].
const (
	ErrOverflow = convError("value out of range")
	ErrInexact  = convError("value not exactly representable")
	ErrSyntax   = convError("invalid syntax")
	ErrEmpty    = convError("empty input")
	ErrTrailing = convError("unexpected trailing characters")

	// ErrUnsupported reports an argument to Append whose type has no
	// textual conversion.
	ErrUnsupported = convError("unsupported argument type")
)

type convError string

func (e convError) Error() string        { return string(e) }
func (e convError) Is(target error) bool { return e == target || target == Error }

// RangeError reports a value that cannot be represented in the target type,
// or text that does not parse as the target type.
//
// The contents of this error as produced by this package may change over time.
type RangeError struct {
	// Value is a textual rendering of the source value.
	// Textual sources are quoted.
	Value string
	// Type is the target type.
	Type reflect.Type
	// Err is the reason for the failure and is one of
	// ErrOverflow, ErrInexact, ErrSyntax, ErrEmpty, or ErrTrailing.
	Err error
}

func (e *RangeError) Error() string {
	return errorPrefix + "cannot convert " + e.Value + " to " + e.Type.String() + ": " + e.Err.Error()
}
func (e *RangeError) Unwrap() error        { return e.Err }
func (e *RangeError) Is(target error) bool { return target == Error }

func newRangeError(value string, t reflect.Type, reason error) *RangeError {
	return &RangeError{Value: value, Type: t, Err: reason}
}

// textError reports a failure to parse s as t.
func textError(s string, t reflect.Type, reason error) *RangeError {
	return newRangeError(quoteText(s), t, reason)
}

// quoteText quotes s for an error message, eliding overly long input.
func quoteText(s string) string {
	const maxQuoted = 64
	if len(s) > maxQuoted {
		return strconv.Quote(s[:maxQuoted]) + "..."
	}
	return strconv.Quote(s)
}
