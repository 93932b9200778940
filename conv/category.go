// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

import "reflect"

// Signed is the set of signed integer types.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is the set of unsigned integer types.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Integer is the set of all integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of floating-point types.
type Float interface {
	~float32 | ~float64
}

// Scalar is the set of types understood by [To].
type Scalar interface {
	Integer | Float | ~bool | ~string
}

// Char is a single Unicode code point.
// Unlike rune, which is an alias for int32 and therefore Integral,
// a Char converts to text as the character it denotes.
type Char rune

// Category is the broad kind of a scalar type.
type Category uint8

const (
	invalidCategory Category = iota

	Integral
	Enumeration
	Character
	Floating
	Boolean
	Textual

	numCategories
)

// String prints the category in a humanly readable fashion.
func (c Category) String() string {
	switch c {
	case Integral:
		return "integral"
	case Enumeration:
		return "enumeration"
	case Character:
		return "character"
	case Floating:
		return "floating"
	case Boolean:
		return "boolean"
	case Textual:
		return "textual"
	default:
		return "invalid"
	}
}

// CategoryOf reports the category of T.
func CategoryOf[T Scalar]() Category {
	return describe(reflect.TypeFor[T]()).cat
}

var charType = reflect.TypeFor[Char]()

// typeInfo describes the representation of a scalar type.
type typeInfo struct {
	typ    reflect.Type
	cat    Category
	bits   int  // width of the underlying numeric representation
	signed bool // only meaningful for integer kinds
}

func describe(t reflect.Type) typeInfo {
	info := typeInfo{typ: t}
	switch k := t.Kind(); k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		info.bits = t.Bits()
		info.signed = k <= reflect.Int64
		switch {
		case t == charType:
			info.cat = Character
		case t.PkgPath() != "":
			info.cat = Enumeration
		default:
			info.cat = Integral
		}
	case reflect.Float32, reflect.Float64:
		info.bits = t.Bits()
		info.cat = Floating
	case reflect.Bool:
		info.cat = Boolean
	case reflect.String:
		info.cat = Textual
	}
	return info
}

// maxInt reports the largest signed integer of the given width.
func maxInt(bits int) int64 { return 1<<(bits-1) - 1 }

// maxUint reports the largest unsigned integer of the given width.
func maxUint(bits int) uint64 {
	if bits >= 64 {
		return 1<<64 - 1
	}
	return 1<<bits - 1
}
