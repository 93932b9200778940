// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements stateless functions for handling JSON text.
package jsonwire

import (
	"errors"
	"unicode/utf8"
)

// UTF8Mode specifies the treatment of ill-formed UTF-8 in string content.
type UTF8Mode uint8

const (
	// PassInvalidUTF8 copies ill-formed bytes through unchanged.
	PassInvalidUTF8 UTF8Mode = iota
	// RejectInvalidUTF8 reports ErrInvalidUTF8 at the first ill-formed byte.
	RejectInvalidUTF8
	// ReplaceInvalidUTF8 substitutes U+FFFD for each ill-formed byte.
	ReplaceInvalidUTF8
)

var (
	ErrInvalidUTF8        = errors.New("invalid UTF-8")
	ErrUnterminatedString = errors.New("unterminated string")
	ErrInvalidEscape      = errors.New("invalid escape sequence")
	ErrControlCharacter   = errors.New("unescaped control character in string")
	ErrInvalidSurrogate   = errors.New("invalid surrogate pair")
	ErrInvalidNumber      = errors.New("invalid number")
)

// ConsumeWhitespace consumes leading JSON whitespace per RFC 7159, section 2.
func ConsumeWhitespace[Bytes ~[]byte | ~string](b Bytes) (n int) {
	// NOTE: The arguments and logic are kept simple to keep this inlinable.
	for len(b) > n && (b[n] == ' ' || b[n] == '\t' || b[n] == '\r' || b[n] == '\n') {
		n++
	}
	return n
}

// truncateMaxUTF8 truncates b such it contains at least one rune.
//
// The utf8 package currently lacks generic variants, which complicates
// generic functions that operates on either []byte or string.
// As a hack, we always call the utf8 function operating on strings,
// but always truncate the input such that the result is identical.
//
// Example usage:
//
//	utf8.DecodeRuneInString(string(truncateMaxUTF8(b)))
//
// Converting a []byte to a string is stack allocated since
// truncateMaxUTF8 guarantees that the []byte is short.
func truncateMaxUTF8[Bytes ~[]byte | ~string](b Bytes) Bytes {
	// TODO(https://go.dev/issue/56948): Remove this function and
	// instead directly call generic utf8 functions wherever used.
	if len(b) > utf8.UTFMax {
		return b[:utf8.UTFMax]
	}
	return b
}
