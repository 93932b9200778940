// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		opts     []Options
		want     Value
		wantErr  error // checked with errors.Is when set
		wantLine int   // non-zero implies a parse error
	}{
		{name: "Null", in: "null", want: Null()},
		{name: "Whitespace", in: " \t\r\n true \n", want: Bool(true)},
		{name: "False", in: "false", want: Bool(false)},
		{name: "Zero", in: "0", want: Int(0)},
		{name: "NegativeZero", in: "-0", want: Int(0)},
		{name: "Negative", in: "-12", want: Int(-12)},
		{name: "MaxInt", in: "9223372036854775807", want: Int(math.MaxInt64)},
		{name: "MinInt", in: "-9223372036854775808", want: Int(math.MinInt64)},
		{name: "IntOverflow", in: "9223372036854775808", want: Float(9223372036854775808)},
		{name: "Fraction", in: "1.5", want: Float(1.5)},
		{name: "IntegralFraction", in: "1.0", want: Float(1)},
		{name: "Exponent", in: "1e3", want: Float(1000)},
		{name: "NegativeExponent", in: "-25E-1", want: Float(-2.5)},
		{name: "String", in: `"hello"`, want: String("hello")},
		{name: "Escapes", in: `"\"\\\/\b\f\n\r\t"`, want: String("\"\\/\b\f\n\r\t")},
		{name: "UnicodeEscape", in: `"\u00e9\u4E16"`, want: String("é世")},
		{name: "SurrogatePair", in: `"\ud83d\ude02"`, want: String("\U0001f602")},
		{name: "RawUnicode", in: `"é世"`, want: String("é世")},
		{name: "EmptyArray", in: "[ ]", want: Array()},
		{name: "EmptyObject", in: "{ }", want: Object()},
		{name: "Array", in: `[1, "x", null, [true]]`, want: Array(Int(1), String("x"), Null(), Array(Bool(true)))},
		{
			name: "Object",
			in:   `{"b": 1, "a": {"c": [2.5]}}`,
			want: Object(Field("b", Int(1)), Field("a", Object(Field("c", Array(Float(2.5)))))),
		},
		{
			name: "DuplicateKeys",
			in:   `{"a":1,"b":2,"a":3}`,
			want: Object(Field("a", Int(3)), Field("b", Int(2))),
		},

		{name: "Empty", in: "", wantErr: ErrUnexpectedEOF, wantLine: 1},
		{name: "OnlySpace", in: "\n\n", wantErr: ErrUnexpectedEOF, wantLine: 3},
		{name: "Unterminated", in: `"abc`, wantErr: ErrUnexpectedEOF, wantLine: 1},
		{name: "UnterminatedArray", in: "[1,\n2", wantErr: ErrUnexpectedEOF, wantLine: 2},
		{name: "BadLiteral", in: "\n\n  nul", wantLine: 3},
		{name: "CapitalLiteral", in: "True", wantLine: 1},
		{name: "LeadingZero", in: "01", wantErr: ErrTrailingData, wantLine: 1},
		{name: "TrailingData", in: "1 2", wantErr: ErrTrailingData, wantLine: 1},
		{name: "MissingComma", in: "[1 2]", wantLine: 1},
		{name: "MissingColon", in: `{"a" 1}`, wantLine: 1},
		{name: "BareFraction", in: ".5", wantLine: 1},
		{name: "EmptyFraction", in: "1.", wantLine: 1},
		{name: "EmptyExponent", in: "[1e]", wantLine: 1},
		{name: "PlusSign", in: "+1", wantLine: 1},
		{name: "DoubleOverflow", in: "1e400", wantLine: 1},
		{name: "ControlCharacter", in: "\"a\x01\"", wantLine: 1},
		{name: "InvalidEscape", in: `"\x"`, wantLine: 1},
		{name: "ShortEscape", in: `"\u12"`, wantLine: 1},
		{name: "LoneSurrogate", in: `"\ud800"`, wantLine: 1},
		{name: "ReversedSurrogates", in: `"\ude02\ud83d"`, wantLine: 1},

		{name: "TrailingComma", in: "[1,2,]", wantLine: 1},
		{name: "TrailingCommaLine", in: "[1,\n2,\n]", wantLine: 3},
		{name: "TrailingCommaAllowed", in: "[1,2,]", opts: []Options{AllowTrailingComma(true)}, want: Array(Int(1), Int(2))},
		{name: "TrailingCommaObject", in: `{"a":1,}`, wantLine: 1},
		{
			name: "TrailingCommaObjectAllowed",
			in:   "{\"a\":1,\n}",
			opts: []Options{AllowTrailingComma(true)},
			want: Object(Field("a", Int(1))),
		},
		{name: "OnlyComma", in: "[,]", opts: []Options{AllowTrailingComma(true)}, wantLine: 1},
		{name: "DoubleComma", in: "[1,,]", opts: []Options{AllowTrailingComma(true)}, wantLine: 1},

		{name: "NaN", in: "NaN", wantErr: ErrNonFinite, wantLine: 1},
		{name: "NegativeInfinity", in: "[\n-Infinity]", wantErr: ErrNonFinite, wantLine: 2},
		{name: "NaNAllowed", in: "NaN", opts: []Options{AllowNaNInf(true)}, want: Float(math.NaN())},
		{
			name: "InfinityAllowed",
			in:   "[Infinity, -Infinity]",
			opts: []Options{AllowNaNInf(true)},
			want: Array(Float(math.Inf(1)), Float(math.Inf(-1))),
		},
		{name: "NaNMisspelled", in: "Nan", opts: []Options{AllowNaNInf(true)}, wantLine: 1},

		{name: "NonStringKey", in: `{1:2}`, wantLine: 1},
		{
			name: "NonStringKeysAllowed",
			in:   `{1:2, true:null, 2.5:"x", "s":0}`,
			opts: []Options{AllowNonStringKeys(true)},
			want: Object(Member{Int(1), Int(2)}, Member{Bool(true), Null()}, Member{Float(2.5), String("x")}, Field("s", Int(0))),
		},
		{name: "ContainerKey", in: `{[1]:2}`, opts: []Options{AllowNonStringKeys(true)}, wantErr: ErrInvalidKey, wantLine: 1},

		{name: "PassInvalidUTF8", in: "\"a\xffb\"", want: String("a\xffb")},
		{name: "ValidateUTF8", in: "\"a\xffb\"", opts: []Options{ValidateUTF8(true)}, wantErr: ErrInvalidUTF8, wantLine: 1},
		{name: "SkipInvalidUTF8", in: "\"a\xffb\"", opts: []Options{SkipInvalidUTF8(true)}, want: String("a\ufffdb")},

		{name: "MaxDepth", in: "[[[]]]", opts: []Options{WithMaxDepth(2)}, wantErr: ErrMaxDepth, wantLine: 1},
		{name: "MaxDepthExact", in: "[[[]]]", opts: []Options{WithMaxDepth(3)}, want: Array(Array(Array()))},
		{name: "MaxDepthObject", in: `{"a":{"b":{}}}`, opts: []Options{WithMaxDepth(2)}, wantErr: ErrMaxDepth, wantLine: 1},
		{name: "DefaultMaxDepth", in: strings.Repeat("[", 10001) + strings.Repeat("]", 10001), wantErr: ErrMaxDepth, wantLine: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in, tt.opts...)
			if tt.wantLine == 0 {
				if err != nil {
					t.Fatalf("Parse error: %v", err)
				}
				if diff := cmp.Diff(tt.want, got); diff != "" {
					t.Errorf("Parse mismatch (-want +got):\n%s", diff)
				}
				if got.Kind() == KindObject {
					if diff := cmp.Diff(tt.want.Members(), got.Members()); diff != "" {
						t.Errorf("member order mismatch (-want +got):\n%s", diff)
					}
				}
				return
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("Parse error = %v, want *ParseError", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("ParseError.Line = %d, want %d", perr.Line, tt.wantLine)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Parse error = %v, want %v", err, tt.wantErr)
			}
			if !errors.Is(err, Error) {
				t.Errorf("errors.Is(%v, Error) = false, want true", err)
			}
			if !got.IsNull() {
				t.Errorf("Parse returned %v alongside an error", got)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	tests := []struct {
		in   string
		want ParseError
		msg  string
	}{{
		in:   `{"a": tru}`,
		want: ParseError{Offset: 6, Line: 1, Context: "tru}", Expected: `"true"`},
		msg:  `json: parse error on line 1 near "tru}": "true"`,
	}, {
		in:   "{\n  \"a\": [1, 2,]\n}",
		want: ParseError{Offset: 15, Line: 2, Context: "]\n}", Expected: "value"},
		msg:  `json: parse error on line 2 near "]\n}": value`,
	}, {
		in:   `["0123456789abcdefghijklmnopqrstuvwxyz" 1]`,
		want: ParseError{Offset: 40, Line: 1, Context: "1]", Expected: "',' or ']'"},
		msg:  `json: parse error on line 1 near "1]": ',' or ']'`,
	}, {
		in:   `[0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10]x`,
		want: ParseError{Offset: 34, Line: 1, Context: "x", Expected: "end of input", Err: ErrTrailingData},
		msg:  `json: parse error on line 1 near "x": end of input`,
	}, {
		in:   `[nil, 1, 2, 3, 4, 5, 6, 7, 8, 9]`,
		want: ParseError{Offset: 1, Line: 1, Context: "nil, 1, 2, 3, 4,", Expected: `"null"`},
		msg:  `json: parse error on line 1 near "nil, 1, 2, 3, 4,": "null"`,
	}, {
		in:   "[1,",
		want: ParseError{Offset: 3, Line: 1, Expected: "value", Err: ErrUnexpectedEOF},
		msg:  `json: parse error on line 1: value`,
	}}
	for _, tt := range tests {
		_, err := Parse(tt.in)
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("Parse(%q) error = %v, want *ParseError", tt.in, err)
			continue
		}
		if diff := cmp.Diff(tt.want, *perr, cmp.Comparer(func(x, y error) bool { return x == y })); diff != "" {
			t.Errorf("Parse(%q) error mismatch (-want +got):\n%s", tt.in, diff)
		}
		if got := err.Error(); got != tt.msg {
			t.Errorf("Parse(%q) error message = %s, want %s", tt.in, got, tt.msg)
		}
	}
}

func TestParseBytes(t *testing.T) {
	type rawText []byte
	got, err := Parse(rawText(`{"k":[1,2]}`))
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if want := Object(Field("k", Array(Int(1), Int(2)))); !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	dialects := [][]Options{
		nil,
		{PrettyFormatting(true)},
		{SortKeys(true), PrettyFormatting(true)},
		{EncodeNonASCII(true)},
		{JavaScriptSafe(true), ValidateUTF8(true)},
	}
	values := append(sampleValues,
		Int(math.MaxInt64),
		Int(math.MinInt64),
		Float(1),
		Float(-0.0),
		Float(1e21),
		Float(math.MaxFloat64),
		Float(math.SmallestNonzeroFloat64),
		String("\x00\x1f\x7f\u2028 \U0010ffff"),
	)
	for _, v := range values {
		for _, opts := range dialects {
			if v.Kind() == KindInt64 && len(opts) > 0 && opts[0] == JavaScriptSafe(true) {
				if i := v.Int(); i > maxSafeInteger || i < -maxSafeInteger {
					continue
				}
			}
			s, err := Serialize(v, opts...)
			if err != nil {
				t.Errorf("Serialize(%v) error: %v", v, err)
				continue
			}
			got, err := Parse(s, opts...)
			if err != nil {
				t.Errorf("Parse(%s) error: %v", s, err)
				continue
			}
			if got.Kind() != v.Kind() || !got.Equal(v) {
				t.Errorf("round trip of %v through %s = %v", v, s, got)
			}
		}
	}

	nonFinite := Array(Float(math.NaN()), Float(math.Inf(1)), Float(math.Inf(-1)))
	s, err := Serialize(nonFinite, AllowNaNInf(true))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if got, err := Parse(s, AllowNaNInf(true)); err != nil || !got.Equal(nonFinite) {
		t.Errorf("Parse(%s) = (%v, %v), want %v", s, got, err, nonFinite)
	}

	keyed := Object(Member{Int(1), Null()}, Member{Bool(false), Null()}, Member{Float(0.5), Null()})
	s, err = Serialize(keyed, AllowNonStringKeys(true))
	if err != nil {
		t.Fatalf("Serialize error: %v", err)
	}
	if want := `{"1":null,"0":null,"0.5":null}`; s != want {
		t.Errorf("Serialize = %s, want %s", s, want)
	}
}

func TestUnmarshalJSON(t *testing.T) {
	var v Value
	if err := v.UnmarshalJSON([]byte(`[1, {"a": "b"}]`)); err != nil {
		t.Fatalf("UnmarshalJSON error: %v", err)
	}
	if want := Array(Int(1), Object(Field("a", String("b")))); !v.Equal(want) {
		t.Errorf("UnmarshalJSON = %v, want %v", v, want)
	}
	before := v
	if err := v.UnmarshalJSON([]byte(`[1,]`)); err == nil {
		t.Errorf("UnmarshalJSON succeeded on a trailing comma")
	}
	if !v.Equal(before) {
		t.Errorf("failed UnmarshalJSON modified the value: %v", v)
	}
}
