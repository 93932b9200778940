// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conv

// Cursor is a read position within an immutable string.
//
// Cursors are values: consuming input produces a new Cursor
// and never modifies the one it was derived from.
type Cursor struct {
	src string
	off int
}

// NewCursor returns a cursor positioned at the start of s.
func NewCursor(s string) Cursor {
	return Cursor{src: s}
}

// Rest returns the unconsumed input.
func (c Cursor) Rest() string { return c.src[c.off:] }

// Offset reports the number of bytes consumed from the original input.
func (c Cursor) Offset() int { return c.off }

// Len reports the number of unconsumed bytes.
func (c Cursor) Len() int { return len(c.src) - c.off }

// Done reports whether all input has been consumed.
func (c Cursor) Done() bool { return c.off >= len(c.src) }

// Advance returns a cursor n bytes further along.
// It panics if n is negative or exceeds the remaining input.
func (c Cursor) Advance(n int) Cursor {
	if n < 0 || n > c.Len() {
		panic("conv: cursor advanced out of bounds")
	}
	c.off += n
	return c
}

// String returns the unconsumed input.
func (c Cursor) String() string { return c.Rest() }

// isSpace reports whether c is an ASCII whitespace character.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

// skipSpace reports the number of leading whitespace bytes in s.
func skipSpace(s string) int {
	var n int
	for n < len(s) && isSpace(s[n]) {
		n++
	}
	return n
}

// onlySpace reports whether s contains nothing but whitespace.
func onlySpace(s string) bool {
	return skipSpace(s) == len(s)
}

// hasPrefixFold reports whether s begins with the lower-case ASCII prefix,
// ignoring case.
func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	for i := 0; i < len(prefix); i++ {
		if s[i]|0x20 != prefix[i] {
			return false
		}
	}
	return true
}
