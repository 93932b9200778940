// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"errors"
	"testing"
)

func TestEscapeString(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		opts    []Options
		want    string
		wantErr error
	}{
		{name: "Empty", in: "", want: `""`},
		{name: "Plain", in: "hello", want: `"hello"`},
		{name: "ShortEscapes", in: "\"\\\b\f\n\r\t", want: `"\"\\\b\f\n\r\t"`},
		{name: "ControlCharacters", in: "\x00\x1f", want: `"\u0000\u001f"`},
		{name: "Solidus", in: "a/b", want: `"a/b"`},
		{name: "Delete", in: "\x7f", want: "\"\x7f\""},
		{name: "NonASCII", in: "é世", want: `"é世"`},
		{name: "EncodeNonASCII", in: "é\U0001f602", opts: []Options{EncodeNonASCII(true)}, want: `"\u00e9\ud83d\ude02"`},
		{name: "PassInvalidUTF8", in: "\xff", want: "\"\xff\""},
		{name: "ValidateUTF8", in: "a\xff", opts: []Options{ValidateUTF8(true)}, wantErr: ErrInvalidUTF8},
		{name: "SkipInvalidUTF8", in: "a\xff", opts: []Options{SkipInvalidUTF8(true)}, want: "\"a\ufffd\""},
		{name: "IgnoresOtherOptions", in: "x", opts: []Options{SortKeys(true), PrettyFormatting(true)}, want: `"x"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EscapeString(tt.in, tt.opts...)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("EscapeString error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				var serr *SerializationError
				if !errors.As(err, &serr) || serr.Kind != KindString {
					t.Errorf("EscapeString error = %#v, want *SerializationError of KindString", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("EscapeString(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestAppendEscapedString(t *testing.T) {
	got, err := AppendEscapedString([]byte("key="), "a\tb")
	if err != nil {
		t.Fatalf("AppendEscapedString error: %v", err)
	}
	if want := `key="a\tb"`; string(got) != want {
		t.Errorf("AppendEscapedString = %s, want %s", got, want)
	}
}

func TestCodePointToUTF8(t *testing.T) {
	tests := []struct {
		in   rune
		want string
	}{
		{0, "\x00"},
		{'A', "A"},
		{0x7f, "\x7f"},
		{0x80, "\xc2\x80"},
		{0xe9, "é"},
		{0x7ff, "\xdf\xbf"},
		{0x800, "\xe0\xa0\x80"},
		{0x4e16, "世"},
		{0xffff, "\xef\xbf\xbf"},
		{0x10000, "\xf0\x90\x80\x80"},
		{0x1f602, "\U0001f602"},
		{0x10ffff, "\xf4\x8f\xbf\xbf"},
	}
	for _, tt := range tests {
		if got := CodePointToUTF8(tt.in); got != tt.want {
			t.Errorf("CodePointToUTF8(%U) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
