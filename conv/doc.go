// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package conv converts between Go scalar types without losing meaning.
//
// A conversion either preserves the exact numeric or textual value of its
// source within the target type, or it fails with a [*RangeError].
// Nothing is silently truncated, wrapped, or rounded into a different value.
//
// # Categories
//
// Every scalar type belongs to exactly one [Category]:
//
//   - Integral: the predeclared integer types (including byte and rune).
//   - Enumeration: defined integer types such as "type Color int32".
//     These convert exactly like their underlying integer type;
//     a value need not match any named constant to be valid.
//   - Character: the [Char] type, a Unicode code point.
//   - Floating: float32, float64, and types defined over them.
//   - Boolean: bool and types defined over it.
//   - Textual: string and types defined over it.
//
// [To] dispatches on the (source, target) category pair.
// The typed functions [ParseInt], [ParseFloat], [ParseBool],
// [AppendInt], [AppendFloat], and friends expose the individual
// paths directly for callers that know their types statically.
//
// # Prefix parsing
//
// The Consume functions parse the longest valid prefix of a [Cursor]
// and return the advanced cursor alongside the value,
// leaving any unconsumed suffix available to the caller:
//
//	f, rest, err := conv.ConsumeFloat[float64](conv.NewCursor("2134123.125 zorro"))
//	// f == 2134123.125, rest.Rest() == " zorro"
//
// The Parse functions require the entire input (less surrounding whitespace)
// to be consumed.
package conv
