// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"math/bits"
	"reflect"
	"strconv"
	"unicode/utf8"
)

// To converts src to the type T.
//
// The conversion performed depends on the categories of S and T:
//
//   - Integral, Enumeration, or Character to Integral or Enumeration
//     succeeds iff the value lies within the range of T's underlying
//     integer type. Signedness is respected; bits are never reinterpreted.
//   - Any integer to Character succeeds iff the value is a Unicode scalar value.
//   - Any integer to Floating succeeds iff the value is exactly representable.
//   - Any integer to Boolean succeeds for 0 (false) and 1 (true).
//   - Floating to Floating fails iff a finite value exceeds the largest
//     finite value of T. Values too small for T may underflow toward zero.
//   - Floating to an integer or Boolean succeeds iff the value is integral
//     and in range, following the integer rules above.
//   - Boolean behaves as the integer 0 or 1, except that it converts
//     to Boolean and Textual directly.
//   - Anything to Textual produces the canonical text: decimal integers,
//     floats per [AppendFloat], booleans as "1" or "0", and characters
//     as their UTF-8 encoding.
//   - Textual to a number or Boolean parses the entire text per
//     [ParseInt], [ParseFloat], or [ParseBool].
//     Textual to Character requires exactly one encoded rune.
//
// Any failure is reported as a [*RangeError].
func To[T, S Scalar](src S) (T, error) {
	var dst T
	srcInfo := describe(reflect.TypeFor[S]())
	dstInfo := describe(reflect.TypeFor[T]())
	in := load(reflect.ValueOf(src), srcInfo)
	out, err := conversions[srcInfo.cat][dstInfo.cat](in, dstInfo)
	if err != nil {
		return dst, newRangeError(in.format(), dstInfo.typ, err)
	}
	out.store(reflect.ValueOf(&dst).Elem(), dstInfo)
	return dst, nil
}

// scalar is the category independent form of a value in flight.
type scalar struct {
	info typeInfo

	neg bool    // integer categories: whether the value is negative
	mag uint64  // integer categories: the absolute value
	f   float64 // Floating
	b   bool    // Boolean
	s   string  // Textual
}

func load(v reflect.Value, info typeInfo) scalar {
	x := scalar{info: info}
	switch info.cat {
	case Integral, Enumeration, Character:
		if info.signed {
			i := v.Int()
			x.neg = i < 0
			x.mag = uint64(i)
			if x.neg {
				x.mag = uint64(-i)
			}
		} else {
			x.mag = v.Uint()
		}
	case Floating:
		x.f = v.Float()
	case Boolean:
		x.b = v.Bool()
	case Textual:
		x.s = v.String()
	}
	return x
}

func (x scalar) store(v reflect.Value, info typeInfo) {
	switch info.cat {
	case Integral, Enumeration, Character:
		if info.signed {
			i := int64(x.mag)
			if x.neg {
				i = -i
			}
			v.SetInt(i)
		} else {
			v.SetUint(x.mag)
		}
	case Floating:
		v.SetFloat(x.f)
	case Boolean:
		v.SetBool(x.b)
	case Textual:
		v.SetString(x.s)
	}
}

// format renders the source value for error messages.
func (x scalar) format() string {
	switch x.info.cat {
	case Character:
		if r := x.rune(); utf8.ValidRune(r) {
			return strconv.QuoteRune(r)
		}
		fallthrough
	case Integral, Enumeration:
		return string(x.appendInteger(nil))
	case Floating:
		return string(appendFloat(nil, x.f, x.info.bits))
	case Boolean:
		return strconv.FormatBool(x.b)
	default:
		return quoteText(x.s)
	}
}

func (x scalar) appendInteger(dst []byte) []byte {
	if x.neg {
		dst = append(dst, '-')
	}
	return AppendUint(dst, x.mag)
}

func (x scalar) rune() rune {
	if x.neg || x.mag > math.MaxInt32 {
		return -1
	}
	return rune(x.mag)
}

// convertFunc converts src into the representation of dst.
// Errors are one of the reasons reported by RangeError.Err.
type convertFunc func(src scalar, dst typeInfo) (scalar, error)

// conversions is the dispatch table indexed by source and target category.
var conversions = func() (t [numCategories][numCategories]convertFunc) {
	for _, src := range []Category{Integral, Enumeration, Character} {
		t[src][Integral] = integerToInteger
		t[src][Enumeration] = integerToInteger
		t[src][Character] = integerToChar
		t[src][Floating] = integerToFloat
		t[src][Boolean] = integerToBool
		t[src][Textual] = integerToText
	}
	t[Character][Textual] = charToText

	t[Floating][Integral] = chain(floatToInteger, integerToInteger)
	t[Floating][Enumeration] = chain(floatToInteger, integerToInteger)
	t[Floating][Character] = chain(floatToInteger, integerToChar)
	t[Floating][Floating] = floatToFloat
	t[Floating][Boolean] = chain(floatToInteger, integerToBool)
	t[Floating][Textual] = floatToText

	t[Boolean][Integral] = chain(boolToInteger, integerToInteger)
	t[Boolean][Enumeration] = chain(boolToInteger, integerToInteger)
	t[Boolean][Character] = chain(boolToInteger, integerToChar)
	t[Boolean][Floating] = chain(boolToInteger, integerToFloat)
	t[Boolean][Boolean] = identity
	t[Boolean][Textual] = chain(boolToInteger, integerToText)

	t[Textual][Integral] = textToInteger
	t[Textual][Enumeration] = textToInteger
	t[Textual][Character] = textToChar
	t[Textual][Floating] = textToFloat
	t[Textual][Boolean] = textToBool
	t[Textual][Textual] = identity
	return t
}()

func chain(first, second convertFunc) convertFunc {
	return func(src scalar, dst typeInfo) (scalar, error) {
		mid, err := first(src, dst)
		if err != nil {
			return scalar{}, err
		}
		return second(mid, dst)
	}
}

func identity(src scalar, _ typeInfo) (scalar, error) { return src, nil }

func integerToInteger(src scalar, dst typeInfo) (scalar, error) {
	if !fitsInteger(src.mag, src.neg, dst.bits, dst.signed) {
		return scalar{}, ErrOverflow
	}
	return scalar{neg: src.neg && src.mag != 0, mag: src.mag}, nil
}

func integerToChar(src scalar, dst typeInfo) (scalar, error) {
	if !utf8.ValidRune(src.rune()) {
		return scalar{}, ErrOverflow
	}
	return integerToInteger(src, dst)
}

func integerToFloat(src scalar, dst typeInfo) (scalar, error) {
	mantissa := 53
	if dst.bits == 32 {
		mantissa = 24
	}
	if src.mag != 0 && bits.Len64(src.mag)-bits.TrailingZeros64(src.mag) > mantissa {
		return scalar{}, ErrInexact
	}
	f := float64(src.mag)
	if src.neg {
		f = -f
	}
	return scalar{f: f}, nil
}

func integerToBool(src scalar, _ typeInfo) (scalar, error) {
	if src.mag > 1 || (src.neg && src.mag != 0) {
		return scalar{}, ErrOverflow
	}
	return scalar{b: src.mag == 1}, nil
}

func integerToText(src scalar, _ typeInfo) (scalar, error) {
	return scalar{s: string(src.appendInteger(nil))}, nil
}

func charToText(src scalar, _ typeInfo) (scalar, error) {
	r := src.rune()
	if !utf8.ValidRune(r) {
		return scalar{}, ErrOverflow
	}
	return scalar{s: string(r)}, nil
}

func floatToInteger(src scalar, _ typeInfo) (scalar, error) {
	switch f := src.f; {
	case math.IsNaN(f) || math.IsInf(f, 0):
		return scalar{}, ErrOverflow
	case f != math.Trunc(f):
		return scalar{}, ErrInexact
	case math.Abs(f) >= 1<<64:
		return scalar{}, ErrOverflow
	default:
		return scalar{neg: f < 0, mag: uint64(math.Abs(f))}, nil
	}
}

func floatToFloat(src scalar, dst typeInfo) (scalar, error) {
	if dst.bits == 32 && !math.IsInf(src.f, 0) && math.Abs(src.f) > math.MaxFloat32 {
		return scalar{}, ErrOverflow
	}
	return scalar{f: src.f}, nil
}

func floatToText(src scalar, _ typeInfo) (scalar, error) {
	return scalar{s: string(appendFloat(nil, src.f, src.info.bits))}, nil
}

func boolToInteger(src scalar, _ typeInfo) (scalar, error) {
	if src.b {
		return scalar{mag: 1}, nil
	}
	return scalar{}, nil
}

func textToInteger(src scalar, dst typeInfo) (scalar, error) {
	mag, neg, n, err := consumeInteger(src.s, dst.bits, dst.signed)
	if err != nil {
		return scalar{}, err
	}
	if !onlySpace(src.s[n:]) {
		return scalar{}, ErrTrailing
	}
	return scalar{neg: neg && mag != 0, mag: mag}, nil
}

func textToChar(src scalar, _ typeInfo) (scalar, error) {
	r, n := utf8.DecodeRuneInString(src.s)
	switch {
	case n == 0:
		return scalar{}, ErrEmpty
	case r == utf8.RuneError && n == 1:
		return scalar{}, ErrSyntax
	case n != len(src.s):
		return scalar{}, ErrTrailing
	}
	return scalar{mag: uint64(r)}, nil
}

func textToFloat(src scalar, dst typeInfo) (scalar, error) {
	f, n, err := consumeFloat(src.s, dst.bits)
	if err != nil {
		return scalar{}, err
	}
	if !onlySpace(src.s[n:]) {
		return scalar{}, ErrTrailing
	}
	return scalar{f: f}, nil
}

func textToBool(src scalar, _ typeInfo) (scalar, error) {
	b, n, err := consumeBool(src.s)
	if err != nil {
		return scalar{}, err
	}
	if !onlySpace(src.s[n:]) {
		return scalar{}, ErrTrailing
	}
	return scalar{b: b}, nil
}
