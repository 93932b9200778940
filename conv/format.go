// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"math"
	"math/bits"
	"reflect"
	"strconv"
)

// MaxUint64Digits is the number of decimal digits in math.MaxUint64.
const MaxUint64Digits = 20

var powersOf10 = [...]uint64{
	1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9,
	1e10, 1e11, 1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19,
}

const smallsString = "00010203040506070809" +
	"10111213141516171819" +
	"20212223242526272829" +
	"30313233343536373839" +
	"40414243444546474849" +
	"50515253545556575859" +
	"60616263646566676869" +
	"70717273747576777879" +
	"80818283848586878889" +
	"90919293949596979899"

// Digits10 reports the number of decimal digits needed to print v.
func Digits10(v uint64) int {
	if v == 0 {
		return 1
	}
	// 1233/4096 approximates log10(2); the answer is either t or t+1.
	t := (bits.Len64(v) * 1233) >> 12
	if v < powersOf10[t] {
		return t
	}
	return t + 1
}

// Uint64ToBuffer writes the decimal digits of v to the start of buf
// and reports how many were written. No terminator is written.
func Uint64ToBuffer(v uint64, buf *[MaxUint64Digits]byte) int {
	n := Digits10(v)
	i := n
	for v >= 100 {
		is := v % 100 * 2
		v /= 100
		i -= 2
		buf[i+1] = smallsString[is+1]
		buf[i] = smallsString[is]
	}
	if v >= 10 {
		is := v * 2
		buf[i-1] = smallsString[is+1]
		buf[i-2] = smallsString[is]
	} else {
		buf[i-1] = byte('0' + v)
	}
	return n
}

// AppendUint appends the decimal form of v to dst.
func AppendUint(dst []byte, v uint64) []byte {
	var buf [MaxUint64Digits]byte
	n := Uint64ToBuffer(v, &buf)
	return append(dst, buf[:n]...)
}

// AppendInt appends the decimal form of v to dst.
// Negative values carry a leading '-'; there are never leading zeros.
func AppendInt[T Integer](dst []byte, v T) []byte {
	if v < 0 {
		return AppendUint(append(dst, '-'), uint64(-int64(v)))
	}
	return AppendUint(dst, uint64(v))
}

// AppendFloat appends the shortest decimal text of v that parses back
// to exactly v at the precision of T.
//
// The output is identical to ECMA-262, 6th edition, section 7.1.12.1,
// for 64-bit floating-point numbers except for -0, which is formatted as -0.
// NaN, +Inf, and -Inf are formatted as NaN, Infinity, and -Infinity.
// For 32-bit floating-point numbers,
// the output is a 32-bit equivalent of the algorithm.
func AppendFloat[T Float](dst []byte, v T) []byte {
	return appendFloat(dst, float64(v), reflect.TypeFor[T]().Bits())
}

// FormatFloat returns the text appended by [AppendFloat].
func FormatFloat[T Float](v T) string {
	return string(AppendFloat(nil, v))
}

func appendFloat(dst []byte, f float64, bitSize int) []byte {
	switch {
	case math.IsNaN(f):
		return append(dst, "NaN"...)
	case math.IsInf(f, +1):
		return append(dst, "Infinity"...)
	case math.IsInf(f, -1):
		return append(dst, "-Infinity"...)
	}

	abs := math.Abs(f)
	fmt := byte('f')
	if abs != 0 {
		if bitSize == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bitSize == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			fmt = 'e'
		}
	}
	dst = strconv.AppendFloat(dst, f, fmt, -1, bitSize)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
