// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"bytes"
	"math"
	"slices"
	"strings"

	"github.com/go-json-experiment/dynjson/conv"
	"github.com/go-json-experiment/dynjson/internal/jsonflags"
	"github.com/go-json-experiment/dynjson/internal/jsonopts"
	"github.com/go-json-experiment/dynjson/internal/jsonwire"
)

// maxSafeInteger is 2⁵³. Every integer of no greater magnitude
// is exactly representable as a float64.
const maxSafeInteger = 1 << 53

// Serialize returns the JSON text of v under the dialect selected by opts.
// Later options override earlier ones; the default is strict JSON.
//
// Any failure is reported as a [*SerializationError].
func Serialize(v Value, opts ...Options) (string, error) {
	b := getBuffer()
	defer putBuffer(b)
	var err error
	b.buf, err = AppendSerialize(b.buf, v, opts...)
	if err != nil {
		return "", err
	}
	return string(b.buf), nil
}

// AppendSerialize appends the JSON text of v to dst.
// On failure, the contents of the returned buffer beyond len(dst)
// are unspecified.
func AppendSerialize(dst []byte, v Value, opts ...Options) ([]byte, error) {
	s := getSerializer(opts)
	defer putSerializer(s)
	return s.appendValue(dst, v, 0)
}

// ToJSON returns the compact strict JSON text of v.
func ToJSON(v Value) (string, error) {
	return Serialize(v)
}

// ToPrettyJSON returns the strict JSON text of v with
// two-space indentation.
func ToPrettyJSON(v Value) (string, error) {
	return Serialize(v, PrettyFormatting(true))
}

// serializer holds the state of a single serialization call.
type serializer struct {
	flags  jsonflags.Flags
	mode   jsonwire.UTF8Mode
	escape *jsonwire.EscapeRunes

	// sorted is a stack of object members being emitted in key order.
	// Each object level owns a contiguous suffix while it is being written.
	sorted []sortedMember
}

type sortedMember struct {
	key string
	val Value
}

func (s *serializer) reset(opts []Options) {
	var o jsonopts.Struct
	o.Join(opts...)
	s.flags = o.Flags
	s.mode = utf8Mode(o.Flags)
	s.escape = jsonwire.MakeEscapeRunes(o.Flags.Get(jsonflags.EncodeNonASCII))
	s.sorted = s.sorted[:0]
}

func (s *serializer) appendValue(dst []byte, v Value, depth int) ([]byte, error) {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...), nil
	case KindBool:
		if v.Bool() {
			return append(dst, "true"...), nil
		}
		return append(dst, "false"...), nil
	case KindInt64:
		i := v.Int()
		if s.flags.Get(jsonflags.JavaScriptSafe) && (i > maxSafeInteger || i < -maxSafeInteger) {
			return dst, &SerializationError{Kind: KindInt64, Err: ErrUnsafeInteger}
		}
		return conv.AppendInt(dst, i), nil
	case KindDouble:
		return s.appendDouble(dst, v.Float())
	case KindString:
		return s.appendString(dst, v.str)
	case KindArray:
		return s.appendArray(dst, v.arr, depth)
	case KindObject:
		return s.appendObject(dst, v.obj, depth)
	default:
		return dst, &SerializationError{Kind: v.kind, Err: ErrInvalidKey}
	}
}

func (s *serializer) appendDouble(dst []byte, f float64) ([]byte, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if !s.flags.Get(jsonflags.AllowNaNInf) {
			return dst, &SerializationError{Kind: KindDouble, Err: ErrNonFinite}
		}
		return conv.AppendFloat(dst, f), nil
	}
	n := len(dst)
	dst = conv.AppendFloat(dst, f)
	// Keep integral doubles distinguishable from integers.
	if bytes.IndexAny(dst[n:], ".e") < 0 {
		dst = append(dst, ".0"...)
	}
	return dst, nil
}

func (s *serializer) appendString(dst []byte, str string) ([]byte, error) {
	dst, err := jsonwire.AppendQuote(dst, str, s.mode, s.escape)
	if err != nil {
		return dst, &SerializationError{Kind: KindString, Err: ErrInvalidUTF8}
	}
	return dst, nil
}

func (s *serializer) appendArray(dst []byte, elems []Value, depth int) ([]byte, error) {
	if len(elems) == 0 {
		return append(dst, "[]"...), nil
	}
	dst = append(dst, '[')
	var err error
	for i, elem := range elems {
		if i > 0 {
			dst = append(dst, ',')
		}
		dst = s.appendIndent(dst, depth+1)
		if dst, err = s.appendValue(dst, elem, depth+1); err != nil {
			return dst, err
		}
	}
	dst = s.appendIndent(dst, depth)
	return append(dst, ']'), nil
}

func (s *serializer) appendObject(dst []byte, members []Member, depth int) ([]byte, error) {
	if len(members) == 0 {
		return append(dst, "{}"...), nil
	}
	if s.flags.Get(jsonflags.SortKeys) {
		return s.appendSortedObject(dst, members, depth)
	}
	seen := s.keySet(members)
	dst = append(dst, '{')
	for i, m := range members {
		key, err := s.keyText(m.Key)
		if err != nil {
			return dst, err
		}
		if err := markKey(seen, key, m.Key.kind); err != nil {
			return dst, err
		}
		if dst, err = s.appendMember(dst, i, key, m.Value, depth); err != nil {
			return dst, err
		}
	}
	dst = s.appendIndent(dst, depth)
	return append(dst, '}'), nil
}

func (s *serializer) appendSortedObject(dst []byte, members []Member, depth int) ([]byte, error) {
	start := len(s.sorted)
	defer func() { s.sorted = s.sorted[:start] }()
	seen := s.keySet(members)
	for _, m := range members {
		key, err := s.keyText(m.Key)
		if err != nil {
			return dst, err
		}
		if err := markKey(seen, key, m.Key.kind); err != nil {
			return dst, err
		}
		s.sorted = append(s.sorted, sortedMember{key, m.Value})
	}
	slices.SortStableFunc(s.sorted[start:], func(x, y sortedMember) int {
		return strings.Compare(x.key, y.key)
	})

	dst = append(dst, '{')
	for i := range members {
		// Index afresh each time since nested objects may grow s.sorted.
		m := s.sorted[start+i]
		var err error
		if dst, err = s.appendMember(dst, i, m.key, m.val, depth); err != nil {
			return dst, err
		}
	}
	dst = s.appendIndent(dst, depth)
	return append(dst, '}'), nil
}

func (s *serializer) appendMember(dst []byte, i int, key string, val Value, depth int) ([]byte, error) {
	if i > 0 {
		dst = append(dst, ',')
	}
	dst = s.appendIndent(dst, depth+1)
	dst, err := s.appendString(dst, key)
	if err != nil {
		return dst, err
	}
	dst = append(dst, ':')
	if s.flags.Get(jsonflags.PrettyFormatting) {
		dst = append(dst, ' ')
	}
	return s.appendValue(dst, val, depth+1)
}

// keyText returns the string form of an object key.
func (s *serializer) keyText(key Value) (string, error) {
	if key.kind == KindString {
		return key.str, nil
	}
	if !s.flags.Get(jsonflags.AllowNonStringKeys) {
		return "", &SerializationError{Kind: key.kind, Err: ErrNonStringKey}
	}
	var text string
	var err error
	switch key.kind {
	case KindBool:
		text, err = conv.To[string](key.Bool())
	case KindInt64:
		text, err = conv.To[string](key.Int())
	case KindDouble:
		text, err = conv.To[string](key.Float())
	default:
		err = ErrInvalidKey
	}
	if err != nil {
		return "", &SerializationError{Kind: key.kind, Err: ErrInvalidKey}
	}
	return text, nil
}

// keySet returns a set for detecting distinct keys that share a textual form,
// or nil if every key is a string. String keys of a Value are already unique.
func (s *serializer) keySet(members []Member) map[string]struct{} {
	if !s.flags.Get(jsonflags.AllowNonStringKeys) {
		return nil
	}
	if !slices.ContainsFunc(members, func(m Member) bool { return m.Key.kind != KindString }) {
		return nil
	}
	return make(map[string]struct{}, len(members))
}

// markKey records key in seen and rejects a key written before.
func markKey(seen map[string]struct{}, key string, kind Kind) error {
	if seen == nil {
		return nil
	}
	if _, dup := seen[key]; dup {
		return &SerializationError{Kind: kind, Err: ErrDuplicateKey}
	}
	seen[key] = struct{}{}
	return nil
}

// appendIndent starts a new line at the given depth when pretty printing.
func (s *serializer) appendIndent(dst []byte, depth int) []byte {
	if !s.flags.Get(jsonflags.PrettyFormatting) {
		return dst
	}
	dst = append(dst, '\n')
	for range depth {
		dst = append(dst, "  "...)
	}
	return dst
}
