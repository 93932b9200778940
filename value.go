// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math"
	"strconv"
)

// Kind represents each possible variant of a [Value].
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt64
	KindDouble
	KindString
	KindArray
	KindObject
)

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt64:
		return "int64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "<invalid json.Kind: " + strconv.Itoa(int(k)) + ">"
	}
}

// isScalar reports whether values of the kind may appear as object keys
// at all. Containers are never valid keys.
func (k Kind) isScalar() bool { return k < KindArray }

// Value is a dynamically typed JSON value.
// Exactly one variant is active at a time, as reported by [Value.Kind].
// The zero Value is Null.
//
// Values are immutable once constructed; the slices passed to [Array]
// and [Object] are copied. Values form trees and never cycles.
type Value struct {
	kind Kind
	num  uint64 // payload for KindBool, KindInt64, and KindDouble
	str  string
	arr  []Value
	obj  []Member
}

// Member is a single key and value within an object.
// Keys are normally strings, but any scalar Value is permitted
// for use with [AllowNonStringKeys].
type Member struct {
	Key   Value
	Value Value
}

// Field constructs a member with a string key.
func Field(key string, v Value) Member {
	return Member{Key: String(key), Value: v}
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.num = 1
	}
	return v
}

// Int returns a 64-bit signed integer value.
func Int(i int64) Value { return Value{kind: KindInt64, num: uint64(i)} }

// Float returns a double precision floating-point value.
func Float(f float64) Value { return Value{kind: KindDouble, num: math.Float64bits(f)} }

// String returns a string value.
// The string is an arbitrary sequence of bytes and need not be valid UTF-8.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array of the provided elements.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: append([]Value(nil), elems...)}
}

// Object returns an object of the provided members.
//
// Keys are unique: when a key repeats, the member keeps the position of
// its first occurrence and the value of its last one.
func Object(members ...Member) Value {
	var ob objectBuilder
	for _, m := range members {
		ob.add(m.Key, m.Value)
	}
	return ob.value()
}

// Kind reports the active variant of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the payload of a KindBool value.
// It panics if v is of any other kind.
func (v Value) Bool() bool {
	v.mustBe(KindBool, "Bool")
	return v.num != 0
}

// Int returns the payload of a KindInt64 value.
// It panics if v is of any other kind.
func (v Value) Int() int64 {
	v.mustBe(KindInt64, "Int")
	return int64(v.num)
}

// Float returns the payload of a KindDouble value.
// It panics if v is of any other kind.
func (v Value) Float() float64 {
	v.mustBe(KindDouble, "Float")
	return math.Float64frombits(v.num)
}

// String returns the payload of a KindString value.
// Unlike the other accessors, it does not panic for other kinds;
// it returns the compact JSON text of v instead, using a lenient dialect
// that permits non-string keys and non-finite numbers.
func (v Value) String() string {
	if v.kind == KindString {
		return v.str
	}
	b, err := AppendSerialize(nil, v, AllowNonStringKeys(true), AllowNaNInf(true))
	if err != nil {
		return "<invalid json.Value: " + err.Error() + ">"
	}
	return string(b)
}

// Len reports the number of elements of an array or members of an object.
// It panics if v is neither.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		panic(&KindError{Method: "Len", Kind: v.kind})
	}
}

// Index returns the i-th element of an array.
// It panics if v is not an array or i is out of range.
func (v Value) Index(i int) Value {
	v.mustBe(KindArray, "Index")
	return v.arr[i]
}

// Elems returns a copy of the elements of an array.
// It panics if v is not an array.
func (v Value) Elems() []Value {
	v.mustBe(KindArray, "Elems")
	return append([]Value(nil), v.arr...)
}

// Members returns a copy of the members of an object in insertion order.
// It panics if v is not an object.
func (v Value) Members() []Member {
	v.mustBe(KindObject, "Members")
	return append([]Member(nil), v.obj...)
}

// Get returns the value of the member with the given string key.
// It panics if v is not an object.
func (v Value) Get(key string) (Value, bool) {
	return v.Lookup(String(key))
}

// Lookup returns the value of the member whose key equals key.
// It panics if v is not an object.
func (v Value) Lookup(key Value) (Value, bool) {
	v.mustBe(KindObject, "Lookup")
	for _, m := range v.obj {
		if m.Key.Equal(key) {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Equal reports whether v and w are the same variant with equal payloads.
// Doubles compare numerically, except that NaN equals NaN.
// Objects are equal if they hold the same set of members,
// regardless of insertion order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool, KindInt64:
		return v.num == w.num
	case KindDouble:
		f, g := v.Float(), w.Float()
		return f == g || (math.IsNaN(f) && math.IsNaN(g))
	case KindString:
		return v.str == w.str
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for _, m := range v.obj {
			if u, ok := w.Lookup(m.Key); !ok || !u.Equal(m.Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// MarshalJSON implements [encoding/json.Marshaler] using the strict dialect.
func (v Value) MarshalJSON() ([]byte, error) {
	return AppendSerialize(nil, v)
}

// UnmarshalJSON implements [encoding/json.Unmarshaler] using the strict dialect.
func (v *Value) UnmarshalJSON(b []byte) error {
	w, err := Parse(b)
	if err != nil {
		return err
	}
	*v = w
	return nil
}

func (v Value) mustBe(k Kind, method string) {
	if v.kind != k {
		panic(&KindError{Method: method, Kind: v.kind})
	}
}

// KindError is the panic value of a Value accessor
// invoked on a Value of the wrong kind.
type KindError struct {
	Method string
	Kind   Kind
}

func (e *KindError) Error() string {
	return errorPrefix + "call of Value." + e.Method + " on " + e.Kind.String() + " Value"
}
func (e *KindError) Is(target error) bool { return e == target || target == Error }

// objectKey is the identity of a scalar key.
type objectKey struct {
	kind Kind
	num  uint64
	str  string
}

// objectBuilder accumulates members while keeping keys unique.
type objectBuilder struct {
	members []Member
	index   map[objectKey]int
}

func (ob *objectBuilder) add(key, val Value) {
	if key.kind.isScalar() {
		k := objectKey{kind: key.kind, num: key.num, str: key.str}
		if key.kind == KindDouble {
			switch f := key.Float(); {
			case f == 0:
				k.num = 0 // -0 and +0 are the same key
			case math.IsNaN(f):
				k.num = math.Float64bits(math.NaN())
			}
		}
		if i, ok := ob.index[k]; ok {
			ob.members[i].Value = val
			return
		}
		if ob.index == nil {
			ob.index = make(map[objectKey]int)
		}
		ob.index[k] = len(ob.members)
	} else {
		for i := range ob.members {
			if ob.members[i].Key.Equal(key) {
				ob.members[i].Value = val
				return
			}
		}
	}
	ob.members = append(ob.members, Member{Key: key, Value: val})
}

func (ob *objectBuilder) value() Value {
	return Value{kind: KindObject, obj: ob.members}
}
