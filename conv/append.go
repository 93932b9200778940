// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import (
	"fmt"
	"reflect"
	"unicode/utf8"
)

// Append appends the textual form of each argument to dst, as [To]
// would produce it for a Textual target.
//
// Arguments may be nil, which contributes no text, or any value whose
// type is a [Scalar], a []byte, or a [Char].
// Any other argument type results in an error and the partially
// appended buffer.
func Append(dst []byte, args ...any) ([]byte, error) {
	for _, arg := range args {
		var err error
		if dst, err = appendArg(dst, arg); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// AppendDelim is like [Append], but inserts delim before every argument
// after the first one. A nil argument contributes no text of its own,
// but still receives a delimiter.
// A character delimiter is passed as a one-character string.
func AppendDelim(dst []byte, delim string, args ...any) ([]byte, error) {
	for i, arg := range args {
		if i > 0 {
			dst = append(dst, delim...)
		}
		var err error
		if dst, err = appendArg(dst, arg); err != nil {
			return dst, err
		}
	}
	return dst, nil
}

// Join returns the concatenated textual form of all arguments.
func Join(args ...any) (string, error) {
	b, err := Append(nil, args...)
	return string(b), err
}

// JoinDelim returns the textual form of all arguments separated by delim.
func JoinDelim(delim string, args ...any) (string, error) {
	b, err := AppendDelim(nil, delim, args...)
	return string(b), err
}

func appendArg(dst []byte, arg any) ([]byte, error) {
	switch v := arg.(type) {
	case nil:
		return dst, nil
	case string:
		return append(dst, v...), nil
	case []byte:
		return append(dst, v...), nil
	case Char:
		if !utf8.ValidRune(rune(v)) {
			return dst, newRangeError(string(AppendInt(nil, v)), charType, ErrOverflow)
		}
		return utf8.AppendRune(dst, rune(v)), nil
	case bool:
		if v {
			return append(dst, '1'), nil
		}
		return append(dst, '0'), nil
	case int:
		return AppendInt(dst, v), nil
	case int8:
		return AppendInt(dst, v), nil
	case int16:
		return AppendInt(dst, v), nil
	case int32:
		return AppendInt(dst, v), nil
	case int64:
		return AppendInt(dst, v), nil
	case uint:
		return AppendUint(dst, uint64(v)), nil
	case uint8:
		return AppendUint(dst, uint64(v)), nil
	case uint16:
		return AppendUint(dst, uint64(v)), nil
	case uint32:
		return AppendUint(dst, uint64(v)), nil
	case uint64:
		return AppendUint(dst, v), nil
	case uintptr:
		return AppendUint(dst, uint64(v)), nil
	case float32:
		return AppendFloat(dst, v), nil
	case float64:
		return AppendFloat(dst, v), nil
	}

	// Defined types such as enumerations take the generic path.
	rv := reflect.ValueOf(arg)
	info := describe(rv.Type())
	if info.cat == invalidCategory {
		return dst, fmt.Errorf("%s%w %T", errorPrefix, ErrUnsupported, arg)
	}
	out, err := conversions[info.cat][Textual](load(rv, info), describe(reflect.TypeFor[string]()))
	if err != nil {
		return dst, newRangeError(load(rv, info).format(), reflect.TypeFor[string](), err)
	}
	return append(dst, out.s...), nil
}
