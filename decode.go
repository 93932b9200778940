// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"strconv"
	"strings"

	"github.com/go-json-experiment/dynjson/conv"
	"github.com/go-json-experiment/dynjson/internal/jsonflags"
	"github.com/go-json-experiment/dynjson/internal/jsonopts"
	"github.com/go-json-experiment/dynjson/internal/jsonwire"
)

// maxContext is the maximum length of [ParseError.Context].
const maxContext = 16

// Parse parses exactly one JSON value from text under the dialect
// selected by opts. Surrounding whitespace is permitted.
//
// Numbers without a fraction or exponent become KindInt64 values unless
// they overflow an int64, in which case they become KindDouble values.
// Other numbers always become KindDouble values.
// When an object key repeats, the member keeps the position of its first
// occurrence and the value of its last one.
//
// Any failure is reported as a [*ParseError] and no Value is returned.
func Parse[Bytes ~[]byte | ~string](text Bytes, opts ...Options) (Value, error) {
	var o jsonopts.Struct
	o.Join(opts...)
	p := parser{
		src:      string(text),
		flags:    o.Flags,
		mode:     utf8Mode(o.Flags),
		maxDepth: o.Depth(),
	}
	v, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}
	p.skipSpace()
	if p.off < len(p.src) {
		return Value{}, p.errorAt(p.off, "end of input", ErrTrailingData)
	}
	return v, nil
}

// parser is a recursive-descent parser over a complete JSON text.
type parser struct {
	src      string
	off      int
	flags    jsonflags.Flags
	mode     jsonwire.UTF8Mode
	maxDepth int

	buf []byte // scratch space for unquoting strings
}

func (p *parser) skipSpace() {
	p.off += jsonwire.ConsumeWhitespace(p.src[p.off:])
}

// peek returns the next byte, or zero at the end of input.
func (p *parser) peek() byte {
	if p.off < len(p.src) {
		return p.src[p.off]
	}
	return 0
}

func (p *parser) errorAt(off int, expected string, err error) error {
	if off >= len(p.src) && err == nil {
		err = ErrUnexpectedEOF
	}
	off = min(off, len(p.src))
	return &ParseError{
		Offset:   off,
		Line:     1 + strings.Count(p.src[:off], "\n"),
		Context:  p.src[off:min(off+maxContext, len(p.src))],
		Expected: expected,
		Err:      err,
	}
}

// parseValue parses the value at the current offset.
// The depth is the number of enclosing arrays and objects.
func (p *parser) parseValue(depth int) (Value, error) {
	p.skipSpace()
	switch c := p.peek(); c {
	case '{':
		return p.parseObject(depth)
	case '[':
		return p.parseArray(depth)
	case '"':
		s, err := p.parseString()
		return String(s), err
	case 'n':
		return Null(), p.parseLiteral("null")
	case 't':
		return Bool(true), p.parseLiteral("true")
	case 'f':
		return Bool(false), p.parseLiteral("false")
	case 'N', 'I':
		return p.parseNonFinite()
	case '-':
		if strings.HasPrefix(p.src[p.off:], "-I") {
			return p.parseNonFinite()
		}
		return p.parseNumber()
	default:
		if '0' <= c && c <= '9' {
			return p.parseNumber()
		}
		return Value{}, p.errorAt(p.off, "value", nil)
	}
}

func (p *parser) parseLiteral(lit string) error {
	if !strings.HasPrefix(p.src[p.off:], lit) {
		return p.errorAt(p.off, strconv.Quote(lit), nil)
	}
	p.off += len(lit)
	return nil
}

func (p *parser) parseNonFinite() (Value, error) {
	if !p.flags.Get(jsonflags.AllowNaNInf) {
		return Value{}, p.errorAt(p.off, "value", ErrNonFinite)
	}
	for _, lit := range []string{"NaN", "Infinity", "-Infinity"} {
		if strings.HasPrefix(p.src[p.off:], lit) {
			f, err := conv.ParseFloat[float64](lit)
			if err != nil {
				panic("BUG: " + err.Error())
			}
			p.off += len(lit)
			return Float(f), nil
		}
	}
	return Value{}, p.errorAt(p.off, `"NaN", "Infinity", or "-Infinity"`, nil)
}

func (p *parser) parseNumber() (Value, error) {
	n, isInt, err := jsonwire.ConsumeNumber(p.src[p.off:])
	if err != nil {
		return Value{}, p.errorAt(p.off+n, "digit", nil)
	}
	text := p.src[p.off : p.off+n]
	if isInt {
		if i, err := conv.ParseInt[int64](text); err == nil {
			p.off += n
			return Int(i), nil
		}
	}
	f, err := conv.ParseFloat[float64](text)
	if err != nil {
		return Value{}, p.errorAt(p.off, "number within double precision range", err)
	}
	p.off += n
	return Float(f), nil
}

func (p *parser) parseString() (string, error) {
	var n int
	var err error
	p.buf, n, err = jsonwire.AppendUnquote(p.buf[:0], p.src[p.off:], p.mode)
	if err != nil {
		off := p.off + n
		switch err {
		case jsonwire.ErrUnterminatedString:
			return "", p.errorAt(off, `closing '"'`, ErrUnexpectedEOF)
		case jsonwire.ErrInvalidUTF8:
			return "", p.errorAt(off, "valid UTF-8", ErrInvalidUTF8)
		case jsonwire.ErrControlCharacter:
			return "", p.errorAt(off, "escaped control character", err)
		default:
			return "", p.errorAt(off, "valid escape sequence", err)
		}
	}
	p.off += n
	return string(p.buf), nil
}

func (p *parser) enter(depth int) error {
	if depth >= p.maxDepth {
		return p.errorAt(p.off, "nesting depth of at most "+strconv.Itoa(p.maxDepth), ErrMaxDepth)
	}
	p.off++
	return nil
}

func (p *parser) parseArray(depth int) (Value, error) {
	if err := p.enter(depth); err != nil {
		return Value{}, err
	}
	var elems []Value
	p.skipSpace()
	if p.peek() == ']' {
		p.off++
		return Value{kind: KindArray}, nil
	}
	for {
		v, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, v)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.off++
			if p.trailingComma(']') {
				return Value{kind: KindArray, arr: elems}, nil
			}
		case ']':
			p.off++
			return Value{kind: KindArray, arr: elems}, nil
		default:
			return Value{}, p.errorAt(p.off, "',' or ']'", nil)
		}
	}
}

func (p *parser) parseObject(depth int) (Value, error) {
	if err := p.enter(depth); err != nil {
		return Value{}, err
	}
	var ob objectBuilder
	p.skipSpace()
	if p.peek() == '}' {
		p.off++
		return ob.value(), nil
	}
	for {
		key, err := p.parseKey(depth + 1)
		if err != nil {
			return Value{}, err
		}
		p.skipSpace()
		if p.peek() != ':' {
			return Value{}, p.errorAt(p.off, "':'", nil)
		}
		p.off++
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return Value{}, err
		}
		ob.add(key, val)

		p.skipSpace()
		switch p.peek() {
		case ',':
			p.off++
			if p.trailingComma('}') {
				return ob.value(), nil
			}
		case '}':
			p.off++
			return ob.value(), nil
		default:
			return Value{}, p.errorAt(p.off, "',' or '}'", nil)
		}
	}
}

func (p *parser) parseKey(depth int) (Value, error) {
	p.skipSpace()
	switch c := p.peek(); {
	case c == '"':
		s, err := p.parseString()
		return String(s), err
	case !p.flags.Get(jsonflags.AllowNonStringKeys):
		return Value{}, p.errorAt(p.off, "string key", nil)
	case c == '{' || c == '[':
		return Value{}, p.errorAt(p.off, "scalar key", ErrInvalidKey)
	default:
		return p.parseValue(depth)
	}
}

// trailingComma consumes the closing delimiter after a comma
// and reports whether it did so.
func (p *parser) trailingComma(closing byte) bool {
	p.skipSpace()
	if p.peek() == closing && p.flags.Get(jsonflags.AllowTrailingComma) {
		p.off++
		return true
	}
	return false
}
