// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"unicode/utf8"

	"github.com/go-json-experiment/dynjson/internal/jsonflags"
	"github.com/go-json-experiment/dynjson/internal/jsonopts"
	"github.com/go-json-experiment/dynjson/internal/jsonwire"
)

// EscapeString returns s as a double-quoted JSON string literal.
// Only EncodeNonASCII, ValidateUTF8, and SkipInvalidUTF8 have an effect.
//
// Double quotes, backslashes, and control characters are always escaped,
// using the two-character forms where JSON defines one and
// \u00XX otherwise.
func EscapeString(s string, opts ...Options) (string, error) {
	b := getBuffer()
	defer putBuffer(b)
	var err error
	b.buf, err = AppendEscapedString(b.buf, s, opts...)
	if err != nil {
		return "", err
	}
	return string(b.buf), nil
}

// AppendEscapedString appends s to dst as a double-quoted JSON string literal.
// On failure, the contents of the returned buffer beyond len(dst)
// are unspecified.
func AppendEscapedString(dst []byte, s string, opts ...Options) ([]byte, error) {
	var o jsonopts.Struct
	o.Join(opts...)
	escape := jsonwire.MakeEscapeRunes(o.Flags.Get(jsonflags.EncodeNonASCII))
	dst, err := jsonwire.AppendQuote(dst, s, utf8Mode(o.Flags), escape)
	if err != nil {
		return dst, &SerializationError{Kind: KindString, Err: ErrInvalidUTF8}
	}
	return dst, nil
}

// CodePointToUTF8 returns the UTF-8 encoding of the code point cp.
// Surrogates and values beyond U+10FFFF are not scalar values
// and their encoding must not be relied upon.
func CodePointToUTF8(cp rune) string {
	var b [utf8.UTFMax]byte
	return string(utf8.AppendRune(b[:0], cp))
}
