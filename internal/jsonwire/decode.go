// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonwire

import (
	"unicode/utf16"
	"unicode/utf8"
)

// ConsumeNumber consumes the next JSON number per RFC 7159, section 6.
// It reports the number of bytes consumed and whether the number is
// an integer, which is to say it has neither a fraction nor an exponent.
// On error, n is the offset of the offending byte.
//
// A leading zero ends the integer part, so "01" consumes just "0".
func ConsumeNumber[Bytes ~[]byte | ~string](b Bytes) (n int, isInt bool, err error) {
	if len(b) > 0 && b[0] == '-' {
		n++
	}
	switch {
	case len(b) > n && b[n] == '0':
		n++
	case len(b) > n && '1' <= b[n] && b[n] <= '9':
		n = consumeDigits(b, n+1)
	default:
		return n, false, ErrInvalidNumber
	}
	isInt = true

	if len(b) > n && b[n] == '.' {
		isInt = false
		if m := consumeDigits(b, n+1); m > n+1 {
			n = m
		} else {
			return n + 1, false, ErrInvalidNumber
		}
	}
	if len(b) > n && (b[n] == 'e' || b[n] == 'E') {
		isInt = false
		n++
		if len(b) > n && (b[n] == '-' || b[n] == '+') {
			n++
		}
		if m := consumeDigits(b, n); m > n {
			n = m
		} else {
			return n, false, ErrInvalidNumber
		}
	}
	return n, isInt, nil
}

func consumeDigits[Bytes ~[]byte | ~string](b Bytes, n int) int {
	for len(b) > n && '0' <= b[n] && b[n] <= '9' {
		n++
	}
	return n
}

// AppendUnquote consumes a JSON string from the start of src,
// which must begin with a double quote, and appends its decoded content to dst.
// It returns the number of bytes consumed including both quotes.
// On error, n is the offset of the offending byte.
//
// Unpaired surrogates in \u escapes are rejected,
// while ill-formed raw UTF-8 is handled according to mode.
func AppendUnquote[Bytes ~[]byte | ~string](dst []byte, src Bytes, mode UTF8Mode) (out []byte, n int, err error) {
	if len(src) == 0 || src[0] != '"' {
		return dst, 0, ErrUnterminatedString
	}
	n = len(`"`)
	i := n
	for uint(len(src)) > uint(n) {
		switch c := src[n]; {
		case c == '"':
			dst = append(dst, src[i:n]...)
			return dst, n + len(`"`), nil
		case c == '\\':
			dst = append(dst, src[i:n]...)
			if dst, n, err = appendEscapeSequence(dst, src, n); err != nil {
				return dst, n, err
			}
			i = n
		case c < ' ':
			return dst, n, ErrControlCharacter
		case c < utf8.RuneSelf:
			n++
		default:
			r, rn := utf8.DecodeRuneInString(string(truncateMaxUTF8(src[n:])))
			if r == utf8.RuneError && rn == 1 {
				switch mode {
				case RejectInvalidUTF8:
					return dst, n, ErrInvalidUTF8
				case ReplaceInvalidUTF8:
					dst = append(dst, src[i:n]...)
					dst = append(dst, "\ufffd"...)
					n++
					i = n
					continue
				}
			}
			n += rn
		}
	}
	return dst, n, ErrUnterminatedString
}

// appendEscapeSequence decodes the escape sequence at src[n:],
// which begins with a backslash.
func appendEscapeSequence[Bytes ~[]byte | ~string](dst []byte, src Bytes, n int) ([]byte, int, error) {
	if len(src) <= n+1 {
		return dst, len(src), ErrUnterminatedString
	}
	switch c := src[n+1]; c {
	case '"', '\\', '/':
		return append(dst, c), n + 2, nil
	case 'b':
		return append(dst, '\b'), n + 2, nil
	case 'f':
		return append(dst, '\f'), n + 2, nil
	case 'n':
		return append(dst, '\n'), n + 2, nil
	case 'r':
		return append(dst, '\r'), n + 2, nil
	case 't':
		return append(dst, '\t'), n + 2, nil
	case 'u':
		v1, ok := parseHexUint16(src[n+2:])
		if !ok {
			return dst, n, ErrInvalidEscape
		}
		r := rune(v1)
		if !utf16.IsSurrogate(r) {
			return utf8.AppendRune(dst, r), n + 6, nil
		}
		start := n
		n += 6
		if r >= 0xdc00 || len(src) < n+2 || src[n] != '\\' || src[n+1] != 'u' {
			return dst, start, ErrInvalidSurrogate
		}
		v2, ok := parseHexUint16(src[n+2:])
		if !ok {
			return dst, n, ErrInvalidEscape
		}
		if r = utf16.DecodeRune(r, rune(v2)); r == utf8.RuneError {
			return dst, start, ErrInvalidSurrogate
		}
		return utf8.AppendRune(dst, r), n + 6, nil
	default:
		return dst, n, ErrInvalidEscape
	}
}

// parseHexUint16 is similar to strconv.ParseUint,
// but operates directly on exactly four hexadecimal digits.
func parseHexUint16[Bytes ~[]byte | ~string](b Bytes) (v uint16, ok bool) {
	if len(b) < 4 {
		return 0, false
	}
	for i := 0; i < 4; i++ {
		c := b[i]
		switch {
		case '0' <= c && c <= '9':
			c = c - '0'
		case 'a' <= c && c <= 'f':
			c = 10 + c - 'a'
		case 'A' <= c && c <= 'F':
			c = 10 + c - 'A'
		default:
			return 0, false
		}
		v = v*16 + uint16(c)
	}
	return v, true
}
