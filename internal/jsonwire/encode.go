// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"slices"
	"unicode/utf16"
	"unicode/utf8"
)

// AppendQuote appends src to dst as a JSON string per RFC 7159, section 7.
//
// The mode specifies the treatment of ill-formed UTF-8.
// If escape is nil, the shortest representable form is used,
// which is also the canonical form for strings (RFC 8785, section 3.2.2.2).
func AppendQuote[Bytes ~[]byte | ~string](dst []byte, src Bytes, mode UTF8Mode, escape *EscapeRunes) ([]byte, error) {
	dst = slices.Grow(dst, len(`"`)+len(src)+len(`"`))
	dst = append(dst, '"')
	dst, err := AppendEscaped(dst, src, mode, escape)
	if err != nil {
		return dst, err
	}
	return append(dst, '"'), nil
}

// AppendEscaped is like AppendQuote, but omits the surrounding quotes.
//
// Under RejectInvalidUTF8, the error is reported at the first ill-formed
// byte and dst holds the output up to that point.
func AppendEscaped[Bytes ~[]byte | ~string](dst []byte, src Bytes, mode UTF8Mode, escape *EscapeRunes) ([]byte, error) {
	if escape == nil {
		escape = &escapeCanonical
	}
	var i, n int
	for uint(len(src)) > uint(n) {
		// Handle single-byte ASCII.
		if c := src[n]; c < utf8.RuneSelf {
			n++
			if escape.needEscapeASCII(c) {
				dst = append(dst, src[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}
			continue
		}

		// Handle multi-byte Unicode.
		switch r, rn := utf8.DecodeRuneInString(string(truncateMaxUTF8(src[n:]))); {
		case r == utf8.RuneError && rn == 1:
			switch mode {
			case RejectInvalidUTF8:
				return append(dst, src[i:n]...), ErrInvalidUTF8
			case ReplaceInvalidUTF8:
				dst = append(dst, src[i:n]...)
				if escape.needEscapeRune(r) {
					dst = append(dst, `\ufffd`...)
				} else {
					dst = append(dst, "\ufffd"...)
				}
				n += rn
				i = n
			default:
				n += rn // copied verbatim with the next run
			}
		case escape.needEscapeRune(r):
			dst = append(dst, src[i:n]...)
			dst = appendEscapedUnicode(dst, r)
			n += rn
			i = n
		default:
			n += rn
		}
	}
	return append(dst, src[i:n]...), nil
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		dst = append(dst, '\\', c)
	case '\b':
		dst = append(dst, "\\b"...)
	case '\f':
		dst = append(dst, "\\f"...)
	case '\n':
		dst = append(dst, "\\n"...)
	case '\r':
		dst = append(dst, "\\r"...)
	case '\t':
		dst = append(dst, "\\t"...)
	default:
		dst = appendEscapedUTF16(dst, uint16(c))
	}
	return dst
}

// appendEscapedUnicode writes r as one \uXXXX sequence,
// or as a surrogate pair of them beyond the Basic Multilingual Plane.
func appendEscapedUnicode(dst []byte, r rune) []byte {
	if r1, r2 := utf16.EncodeRune(r); r1 != '\ufffd' && r2 != '\ufffd' {
		dst = appendEscapedUTF16(dst, uint16(r1))
		dst = appendEscapedUTF16(dst, uint16(r2))
	} else {
		dst = appendEscapedUTF16(dst, uint16(r))
	}
	return dst
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}
