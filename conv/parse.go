// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"errors"
	"math"
	"reflect"
	"strconv"
)

// ParseInt parses s as a decimal integer of type T.
// The text is an optional sign followed by one or more decimal digits,
// optionally surrounded by whitespace.
func ParseInt[T Integer](s string) (T, error) {
	v, rest, err := ConsumeInt[T](NewCursor(s))
	if err != nil {
		return 0, err
	}
	if !onlySpace(rest.Rest()) {
		return 0, textError(s, reflect.TypeFor[T](), ErrTrailing)
	}
	return v, nil
}

// ConsumeInt parses a decimal integer of type T from the start of c,
// skipping any leading whitespace. It stops at the first non-digit and
// returns a cursor positioned after the last digit.
// On failure, c is returned unchanged.
func ConsumeInt[T Integer](c Cursor) (T, Cursor, error) {
	info := describe(reflect.TypeFor[T]())
	mag, neg, n, err := consumeInteger(c.Rest(), info.bits, info.signed)
	if err != nil {
		return 0, c, textError(c.Rest(), info.typ, err)
	}
	v := T(mag)
	if neg {
		v = -v
	}
	return v, c.Advance(n), nil
}

// consumeInteger scans an integer of the given width and signedness
// after any leading whitespace in s.
func consumeInteger(s string, bits int, signed bool) (mag uint64, neg bool, n int, err error) {
	ws := skipSpace(s)
	mag, neg, n, err = scanInteger(s[ws:])
	if err == nil && !fitsInteger(mag, neg, bits, signed) {
		err = ErrOverflow
	}
	return mag, neg, ws + n, err
}

// scanInteger scans an optionally signed run of decimal digits from s.
// It reports the magnitude, whether a minus sign was present,
// and the number of bytes consumed.
func scanInteger(s string) (mag uint64, neg bool, n int, err error) {
	if len(s) == 0 {
		return 0, false, 0, ErrEmpty
	}
	switch s[0] {
	case '-':
		neg = true
		n++
	case '+':
		n++
	}
	start := n
	for n < len(s) && isDigit(s[n]) {
		d := uint64(s[n] - '0')
		if mag > (math.MaxUint64-d)/10 {
			return 0, false, 0, ErrOverflow
		}
		mag = mag*10 + d
		n++
	}
	if n == start {
		return 0, false, 0, ErrSyntax
	}
	return mag, neg, n, nil
}

// fitsInteger reports whether the value with the given magnitude and sign
// lies within an integer of the given width and signedness.
func fitsInteger(mag uint64, neg bool, bits int, signed bool) bool {
	switch {
	case !signed && neg:
		return mag == 0
	case !signed:
		return mag <= maxUint(bits)
	case neg:
		return mag <= uint64(maxInt(bits))+1
	default:
		return mag <= uint64(maxInt(bits))
	}
}

// ParseFloat parses s as a floating-point number of type T.
// The text is either a decimal number with optional sign, fraction, and
// exponent, or one of the case-insensitive tokens "nan", "inf", and
// "infinity" with an optional sign. Surrounding whitespace is permitted.
func ParseFloat[T Float](s string) (T, error) {
	v, rest, err := ConsumeFloat[T](NewCursor(s))
	if err != nil {
		return 0, err
	}
	if !onlySpace(rest.Rest()) {
		return 0, textError(s, reflect.TypeFor[T](), ErrTrailing)
	}
	return v, nil
}

// ConsumeFloat parses a floating-point number of type T from the start of c,
// skipping any leading whitespace. An exponent marker that is not followed
// by digits is left unconsumed.
// On failure, c is returned unchanged.
func ConsumeFloat[T Float](c Cursor) (T, Cursor, error) {
	t := reflect.TypeFor[T]()
	f, n, err := consumeFloat(c.Rest(), t.Bits())
	if err != nil {
		return 0, c, textError(c.Rest(), t, err)
	}
	return T(f), c.Advance(n), nil
}

func consumeFloat(s string, bitSize int) (float64, int, error) {
	ws := skipSpace(s)
	f, n, err := scanFloat(s[ws:], bitSize)
	return f, ws + n, err
}

// scanFloat scans a floating-point token from s and evaluates it
// with the precision of the given bit size.
func scanFloat(s string, bitSize int) (float64, int, error) {
	if len(s) == 0 {
		return 0, 0, ErrEmpty
	}
	var n int
	sign := 1.0
	switch s[0] {
	case '-':
		sign = -1
		n++
	case '+':
		n++
	}
	switch rest := s[n:]; {
	case hasPrefixFold(rest, "nan"):
		return math.NaN(), n + len("nan"), nil
	case hasPrefixFold(rest, "infinity"):
		return math.Inf(int(sign)), n + len("infinity"), nil
	case hasPrefixFold(rest, "inf"):
		return math.Inf(int(sign)), n + len("inf"), nil
	}

	var digits int
	for n < len(s) && isDigit(s[n]) {
		n++
		digits++
	}
	if n < len(s) && s[n] == '.' {
		m := n + 1
		for m < len(s) && isDigit(s[m]) {
			m++
			digits++
		}
		if digits > 0 {
			n = m
		}
	}
	if digits == 0 {
		return 0, 0, ErrSyntax
	}
	if n < len(s) && (s[n] == 'e' || s[n] == 'E') {
		m := n + 1
		if m < len(s) && (s[m] == '+' || s[m] == '-') {
			m++
		}
		if m < len(s) && isDigit(s[m]) {
			for m < len(s) && isDigit(s[m]) {
				m++
			}
			n = m
		}
	}

	f, err := strconv.ParseFloat(s[:n], bitSize)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) && !math.IsInf(f, 0) {
			return f, n, nil // underflow to zero is permitted
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, 0, ErrOverflow
		}
		return 0, 0, ErrSyntax
	}
	return f, n, nil
}

// ParseBool parses s as a boolean.
//
// After trimming surrounding whitespace, the entire text must be one of
// the following tokens, matched without regard to case:
//
//   - false: "0" (any number of zeros), "n", "no", "f", "false", "off"
//   - true: any number of zeros followed by "1", "y", "yes", "t", "true", "on"
func ParseBool(s string) (bool, error) {
	v, rest, err := ConsumeBool(NewCursor(s))
	if err != nil {
		return false, err
	}
	if !onlySpace(rest.Rest()) {
		return false, textError(s, boolType, ErrTrailing)
	}
	return v, nil
}

var boolType = reflect.TypeFor[bool]()

// ConsumeBool parses a boolean token from the start of c,
// skipping any leading whitespace. Only the matched token is consumed,
// so a boolean prefix can be extracted from a longer string.
// On failure, c is returned unchanged.
func ConsumeBool(c Cursor) (bool, Cursor, error) {
	v, n, err := consumeBool(c.Rest())
	if err != nil {
		return false, c, textError(c.Rest(), boolType, err)
	}
	return v, c.Advance(n), nil
}

func consumeBool(s string) (bool, int, error) {
	ws := skipSpace(s)
	v, n, err := scanBool(s[ws:])
	return v, ws + n, err
}

func scanBool(s string) (bool, int, error) {
	if len(s) == 0 {
		return false, 0, ErrEmpty
	}
	if s[0] == '0' || s[0] == '1' {
		// Any run of zeros, optionally terminated by a single one.
		var v bool
		var n int
		for n < len(s) && isDigit(s[n]) {
			if v || (s[n] != '0' && s[n] != '1') {
				return false, 0, ErrSyntax
			}
			v = s[n] == '1'
			n++
		}
		return v, n, nil
	}
	switch s[0] | 0x20 {
	case 'y':
		return true, longestFold(s, "yes", "y"), nil
	case 'n':
		return false, longestFold(s, "no", "n"), nil
	case 't':
		return true, longestFold(s, "true", "t"), nil
	case 'f':
		return false, longestFold(s, "false", "f"), nil
	case 'o':
		switch {
		case hasPrefixFold(s, "on"):
			return true, len("on"), nil
		case hasPrefixFold(s, "off"):
			return false, len("off"), nil
		}
	}
	return false, 0, ErrSyntax
}

// longestFold reports the length of the longer token if s begins with it,
// and the length of the shorter one otherwise.
func longestFold(s, long, short string) int {
	if hasPrefixFold(s, long) {
		return len(long)
	}
	return len(short)
}
