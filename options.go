// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"github.com/go-json-experiment/dynjson/internal/jsonflags"
	"github.com/go-json-experiment/dynjson/internal/jsonopts"
	"github.com/go-json-experiment/dynjson/internal/jsonwire"
)

// Options configures [Serialize], [AppendSerialize], and [Parse]
// with a particular JSON dialect.
// Options are immutable values and may be shared freely.
//
// List of options and what operations it affects:
//
//   - [AllowNonStringKeys] affects serialization and parsing.
//   - [JavaScriptSafe] affects serialization only.
//   - [PrettyFormatting] affects serialization only.
//   - [EncodeNonASCII] affects serialization only.
//   - [ValidateUTF8] affects serialization and parsing.
//   - [AllowTrailingComma] affects parsing only.
//   - [SortKeys] affects serialization only.
//   - [SkipInvalidUTF8] affects serialization and parsing.
//   - [AllowNaNInf] affects serialization and parsing.
//   - [WithMaxDepth] affects parsing only.
//
// Options that do not affect a particular operation are ignored.
type Options = jsonopts.Options

// JoinOptions coalesces the provided list of options into a single Options.
// Properties set in latter options override previously set properties.
func JoinOptions(srcs ...Options) Options {
	var dst jsonopts.Struct
	dst.Join(srcs...)
	return &dst
}

// GetOption returns the value stored in opts with the provided setter,
// reporting whether the value is present.
//
// Example usage:
//
//	v, ok := json.GetOption(opts, json.SortKeys)
func GetOption[T any](opts Options, setter func(T) Options) (T, bool) {
	return jsonopts.GetOption(opts, setter)
}

// DefaultOptions is the strict JSON dialect.
// It is equivalent to all boolean options being set to false
// and a maximum nesting depth of 10000.
func DefaultOptions() Options {
	return &jsonopts.DefaultOptions
}

// AllowNonStringKeys specifies that object keys may be values other than
// strings. When serializing, null keys are rejected and other scalar keys
// are converted to their canonical text. When parsing, any scalar JSON
// value is accepted as an object key.
func AllowNonStringKeys(v bool) Options {
	if v {
		return jsonflags.AllowNonStringKeys | 1
	} else {
		return jsonflags.AllowNonStringKeys | 0
	}
}

// JavaScriptSafe specifies that integers whose magnitude exceeds 2⁵³
// fail to serialize, since they cannot round-trip through
// a double precision JSON number.
//
// This only affects serialization and is ignored when parsing.
func JavaScriptSafe(v bool) Options {
	if v {
		return jsonflags.JavaScriptSafe | 1
	} else {
		return jsonflags.JavaScriptSafe | 0
	}
}

// PrettyFormatting specifies that serialized output places each element
// and member on its own line, indented by two spaces per nesting level.
//
// This only affects serialization and is ignored when parsing.
func PrettyFormatting(v bool) Options {
	if v {
		return jsonflags.PrettyFormatting | 1
	} else {
		return jsonflags.PrettyFormatting | 0
	}
}

// EncodeNonASCII specifies that every code point at or above U+0080 is
// escaped as \uXXXX, using a surrogate pair beyond U+FFFF,
// so that the output is pure ASCII.
//
// This only affects serialization and is ignored when parsing.
func EncodeNonASCII(v bool) Options {
	if v {
		return jsonflags.EncodeNonASCII | 1
	} else {
		return jsonflags.EncodeNonASCII | 0
	}
}

// ValidateUTF8 specifies that strings containing ill-formed UTF-8
// are an error. Without this or [SkipInvalidUTF8],
// ill-formed bytes are passed through unchanged.
func ValidateUTF8(v bool) Options {
	if v {
		return jsonflags.ValidateUTF8 | 1
	} else {
		return jsonflags.ValidateUTF8 | 0
	}
}

// AllowTrailingComma specifies that a comma may directly precede
// the closing bracket of an array or brace of an object.
//
// This only affects parsing and is ignored when serializing.
func AllowTrailingComma(v bool) Options {
	if v {
		return jsonflags.AllowTrailingComma | 1
	} else {
		return jsonflags.AllowTrailingComma | 0
	}
}

// SortKeys specifies that object members are serialized in ascending
// bytewise order of their key text rather than insertion order.
//
// This only affects serialization and is ignored when parsing.
func SortKeys(v bool) Options {
	if v {
		return jsonflags.SortKeys | 1
	} else {
		return jsonflags.SortKeys | 0
	}
}

// SkipInvalidUTF8 specifies that each ill-formed UTF-8 byte in a string
// is replaced with U+FFFD. It takes precedence over [ValidateUTF8].
func SkipInvalidUTF8(v bool) Options {
	if v {
		return jsonflags.SkipInvalidUTF8 | 1
	} else {
		return jsonflags.SkipInvalidUTF8 | 0
	}
}

// AllowNaNInf specifies that non-finite doubles are represented by
// the bare tokens NaN, Infinity, and -Infinity, which are not valid JSON.
func AllowNaNInf(v bool) Options {
	if v {
		return jsonflags.AllowNaNInf | 1
	} else {
		return jsonflags.AllowNaNInf | 0
	}
}

// WithMaxDepth specifies the maximum nesting depth of arrays and objects
// accepted by the parser. Non-positive values select the default of 10000.
//
// This only affects parsing and is ignored when serializing.
func WithMaxDepth(n int) Options {
	return jsonopts.MaxDepth(n)
}

// utf8Mode reports the treatment of ill-formed UTF-8 under the flags.
func utf8Mode(fs jsonflags.Flags) jsonwire.UTF8Mode {
	switch {
	case fs.Get(jsonflags.SkipInvalidUTF8):
		return jsonwire.ReplaceInvalidUTF8
	case fs.Get(jsonflags.ValidateUTF8):
		return jsonwire.RejectInvalidUTF8
	default:
		return jsonwire.PassInvalidUTF8
	}
}
