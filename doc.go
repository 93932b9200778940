// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package json implements a dynamically typed JSON value
// together with its serialization to and parsing from JSON text
// as specified in RFC 8259.
//
// A [Value] holds exactly one of null, a boolean, a 64-bit integer,
// a double, a string, an array, or an object.
// Integers and doubles are distinct kinds so that a value survives
// a round trip through text unchanged: doubles with an integral value
// are written with a trailing ".0".
//
// # Dialects
//
// By default, [Serialize] and [Parse] operate on strict JSON.
// Each call may select a relaxed or stricter dialect with [Options]:
//
//   - [AllowNonStringKeys] permits scalar object keys other than strings.
//   - [AllowNaNInf] permits the bare tokens NaN, Infinity, and -Infinity.
//   - [AllowTrailingComma] permits a comma before a closing bracket or brace.
//   - [JavaScriptSafe] rejects integers that a double cannot represent.
//   - [ValidateUTF8] and [SkipInvalidUTF8] select the treatment of
//     ill-formed UTF-8, which is otherwise passed through unchanged.
//
// Scalar formatting and number text are shared with package conv,
// so that an integer or double is written here exactly as conv.To
// would render it as a string.
//
// # Errors
//
// Every error returned by this package matches [Error] according to
// errors.Is. Parsing fails with a [*ParseError] that records the line and
// a short excerpt of the offending text. Serialization fails with a
// [*SerializationError] naming the kind of the offending value.
package json
