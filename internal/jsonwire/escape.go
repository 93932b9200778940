// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import "unicode/utf8"

// Validity of these checked in TestEscapeRunesTables.
var (
	escapeCanonical = EscapeRunes{
		asciiCache: [...]int8{
			-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
			-1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1, -1,
			00, 00, -1, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, -1, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
			00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00, 00,
		},
		canonical: true,
	}
	escapeASCII = EscapeRunes{
		asciiCache: escapeCanonical.asciiCache,
		nonASCII:   true,
	}
)

// EscapeRunes reports whether a rune must be escaped.
type EscapeRunes struct {
	// asciiCache is a cache of whether an ASCII character must be escaped,
	// where 0 means not escaped and -1 means escaped with the shortest
	// sequence available (e.g., \n, or \u001f if there is no short form).
	asciiCache [utf8.RuneSelf]int8

	canonical bool // whether only the characters required by JSON are escaped
	nonASCII  bool // should escape every rune at or above U+0080
}

// MakeEscapeRunes returns the escape table for the given policy.
// If nonASCII is set, the output is pure ASCII with every other rune
// written as a \uXXXX sequence (or a surrogate pair of them).
func MakeEscapeRunes(nonASCII bool) *EscapeRunes {
	if nonASCII {
		return &escapeASCII
	}
	return &escapeCanonical
}

func makeEscapeRunesSlow(nonASCII bool) *EscapeRunes {
	e := EscapeRunes{nonASCII: nonASCII, canonical: !nonASCII}

	// Escape characters that are required by JSON.
	for i := 0; i < ' '; i++ {
		e.asciiCache[i] = -1
	}
	e.asciiCache['\\'] = -1
	e.asciiCache['"'] = -1
	return &e
}

// IsCanonical reports whether non-ASCII runes are emitted verbatim.
func (e *EscapeRunes) IsCanonical() bool { return e.canonical }

// needEscapeASCII reports whether c must be escaped.
// It assumes c < utf8.RuneSelf.
func (e *EscapeRunes) needEscapeASCII(c byte) bool {
	return e.asciiCache[c] != 0
}

// needEscapeRune reports whether r must be escaped.
// It assumes r >= utf8.RuneSelf.
func (e *EscapeRunes) needEscapeRune(rune) bool {
	return e.nonASCII
}
