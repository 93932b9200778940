// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jsonopts

import (
	"fmt"

	"github.com/go-json-experiment/dynjson/internal"
	"github.com/go-json-experiment/dynjson/internal/jsonflags"
)

// Options is the common options type shared across the module.
// It is implemented by jsonflags.Bools, MaxDepth, and *Struct.
type Options interface {
	// JSONOptions is exported so related json packages can implement Options.
	JSONOptions(internal.NotForPublicUse)
}

// DefaultMaxDepth is the nesting limit applied when none is specified.
const DefaultMaxDepth = 10000

// DefaultOptions is the strict JSON dialect:
// every boolean option is present and false.
var DefaultOptions = Struct{
	Flags:    jsonflags.Flags{Presence: uint64(jsonflags.AllFlags)},
	MaxDepth: DefaultMaxDepth,
}

// Struct is the combination of all options in struct form.
// This is efficient to pass down the call stack and to query.
type Struct struct {
	Flags jsonflags.Flags

	// MaxDepth is the maximum nesting depth accepted by the parser.
	// It is only meaningful when jsonflags.MaxDepth is present.
	MaxDepth int
}

func (*Struct) JSONOptions(internal.NotForPublicUse) {}

// MaxDepth is the option type for the parser nesting limit.
type MaxDepth int

func (MaxDepth) JSONOptions(internal.NotForPublicUse) {}

// Depth reports the effective nesting limit.
func (dst *Struct) Depth() int {
	if dst.Flags.Has(jsonflags.MaxDepth) && dst.MaxDepth > 0 {
		return dst.MaxDepth
	}
	return DefaultMaxDepth
}

// Join merges srcs into dst such that latter options take precedence.
func (dst *Struct) Join(srcs ...Options) {
	for _, src := range srcs {
		switch src := src.(type) {
		case nil:
			continue
		case jsonflags.Bools:
			dst.Flags.Set(src)
		case MaxDepth:
			dst.Flags.Set(jsonflags.MaxDepth | 1)
			dst.MaxDepth = int(src)
		case *Struct:
			dst.Flags.Join(src.Flags)
			if src.Flags.Has(jsonflags.MaxDepth) {
				dst.MaxDepth = src.MaxDepth
			}
		default:
			panic(fmt.Sprintf("BUG: unknown option type: %T", src))
		}
	}
}

// GetOption returns the value stored in opts with the provided setter,
// reporting whether the value is present.
func GetOption[T any](opts Options, setter func(T) Options) (T, bool) {
	// Collapse the options to *Struct to simplify lookup.
	structOpts, ok := opts.(*Struct)
	if !ok {
		var structOpts2 Struct
		structOpts2.Join(opts)
		structOpts = &structOpts2
	}

	// Lookup the option based on the return value of the setter.
	var zero T
	switch opt := setter(zero).(type) {
	case jsonflags.Bools:
		v := structOpts.Flags.Get(opt)
		ok := structOpts.Flags.Has(opt)
		return any(v).(T), ok
	case MaxDepth:
		if !structOpts.Flags.Has(jsonflags.MaxDepth) {
			return zero, false
		}
		return any(structOpts.MaxDepth).(T), true
	default:
		panic(fmt.Sprintf("BUG: unknown option %T", opt))
	}
}
