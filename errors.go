// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import "strconv"

const errorPrefix = "json: "

// Error matches errors returned by this package according to errors.Is.
const Error = jsonError("json error")

// Reasons reported by [SerializationError.Err] and [ParseError.Err].
const (
	ErrNonStringKey  = jsonError("object key is not a string")
	ErrInvalidKey    = jsonError("object key has no textual form")
	ErrDuplicateKey  = jsonError("distinct object keys share the same text")
	ErrUnsafeInteger = jsonError("integer magnitude exceeds 2^53")
	ErrNonFinite     = jsonError("NaN and Infinity are not valid JSON")
	ErrInvalidUTF8   = jsonError("invalid UTF-8 within string")
	ErrMaxDepth      = jsonError("exceeded max depth")
	ErrTrailingData  = jsonError("unexpected data after top-level value")
	ErrUnexpectedEOF = jsonError("unexpected end of input")
)

type jsonError string

func (e jsonError) Error() string        { return string(e) }
func (e jsonError) Is(target error) bool { return e == target || target == Error }

// ParseError describes text that does not conform to the JSON grammar
// of the selected dialect.
//
// The contents of this error as produced by this package may change over time.
type ParseError struct {
	// Offset is the byte offset within the input where the problem was detected.
	Offset int
	// Line is the 1-based line number containing Offset.
	Line int
	// Context is a short excerpt of the input starting at Offset.
	// It is empty at the end of input.
	Context string
	// Expected describes what the parser expected to find.
	Expected string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	s := errorPrefix + "parse error on line " + strconv.Itoa(e.Line)
	if e.Context != "" {
		s += " near " + strconv.Quote(e.Context)
	}
	return s + ": " + e.Expected
}
func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return e == target || target == Error }

// SerializationError describes a value that cannot be represented
// as JSON under the selected dialect.
//
// The contents of this error as produced by this package may change over time.
type SerializationError struct {
	// Kind is the kind of the offending value or object key.
	Kind Kind
	// Err is the reason and is one of ErrNonStringKey, ErrInvalidKey,
	// ErrDuplicateKey, ErrUnsafeInteger, ErrNonFinite, or ErrInvalidUTF8.
	Err error
}

func (e *SerializationError) Error() string {
	return errorPrefix + "cannot serialize " + e.Kind.String() + ": " + e.Err.Error()
}
func (e *SerializationError) Unwrap() error        { return e.Err }
func (e *SerializationError) Is(target error) bool { return e == target || target == Error }
