// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonflags implements all the optional boolean flags.
// These flags are shared across both serialization and parsing.
package jsonflags

import "github.com/go-json-experiment/dynjson/internal"

// Bools represents zero or more boolean flags, all set to true or false.
// The least-significant bit is the boolean value of all flags in the set.
// The remaining bits identify which particular flags.
//
// In common usage, this is OR'd with 0 or 1. For example:
//   - (AllowTrailingComma | 0) means "AllowTrailingComma is false"
//   - (SortKeys | PrettyFormatting | 1) means "SortKeys and PrettyFormatting are true"
type Bools uint64

func (Bools) JSONOptions(internal.NotForPublicUse) {}

const (
	// AllFlags is the set of all flags.
	AllFlags = AllBools | AllValues

	// AllBools is the set of all boolean flags.
	AllBools = DialectFlags

	// AllValues is the set of all non-boolean flags.
	AllValues = MaxDepth

	// DialectFlags is the set of all boolean options
	// that select a JSON dialect.
	DialectFlags = 0 |
		AllowNonStringKeys |
		JavaScriptSafe |
		PrettyFormatting |
		EncodeNonASCII |
		ValidateUTF8 |
		AllowTrailingComma |
		SortKeys |
		SkipInvalidUTF8 |
		AllowNaNInf

	// SerializeFlags is the set of flags that affect serialization.
	SerializeFlags = 0 |
		AllowNonStringKeys |
		JavaScriptSafe |
		PrettyFormatting |
		EncodeNonASCII |
		ValidateUTF8 |
		SortKeys |
		SkipInvalidUTF8 |
		AllowNaNInf

	// ParseFlags is the set of flags that affect parsing.
	ParseFlags = 0 |
		AllowNonStringKeys |
		ValidateUTF8 |
		AllowTrailingComma |
		SkipInvalidUTF8 |
		AllowNaNInf |
		MaxDepth
)

// Dialect boolean flags.
const (
	_ Bools = 1 << iota // the value bit

	AllowNonStringKeys
	JavaScriptSafe
	PrettyFormatting
	EncodeNonASCII
	ValidateUTF8
	AllowTrailingComma
	SortKeys
	SkipInvalidUTF8
	AllowNaNInf

	maxBoolFlag
)

// Non-boolean flags that only track presence.
const (
	MaxDepth = maxBoolFlag << iota

	maxFlag
)

// Flags is a set of boolean flags.
// If the presence bit is zero, then the value bit must also be zero.
// The least-significant bit of both fields is always zero.
//
// Unlike Bools, which can represent a set of bools that are all true or false,
// Flags represents a set of bools, each individually may be true or false.
type Flags struct{ Presence, Values uint64 }

// Join joins two sets of flags such that the latter takes precedence.
func (dst *Flags) Join(src Flags) {
	// Copy over all source presence bits to the destination (using OR),
	// then clear the destination values for those bits (using AND-NOT),
	// then copy over the source value bits (using OR).
	//	e.g., dst := Flags{Presence: 0b_1100, Values: 0b_1000}
	//	e.g., src := Flags{Presence: 0b_0110, Values: 0b_0010}
	dst.Presence |= src.Presence // e.g., 0b_1100 | 0b_0110 -> 0b_1110
	dst.Values &^= src.Presence  // e.g., 0b_1000 &^ 0b_0110 -> 0b_1000
	dst.Values |= src.Values     // e.g., 0b_1000 | 0b_0010 -> 0b_1010
}

// Set sets both the presence and value for the provided bool (or set of bools).
func (fs *Flags) Set(f Bools) {
	// Select out the bits for the flag identifiers (everything except LSB),
	// then set the presence for all the identifier bits (using OR),
	// then invert the identifier bits to clear out the values (using AND-NOT),
	// then copy over all the identifier bits to the value if LSB is 1.
	id := uint64(f) &^ uint64(1)
	fs.Presence |= id
	fs.Values &= ^id
	fs.Values |= uint64(f&1) * id
}

// Get reports whether the bool (or any of the bools) is true.
// This is generally only used with a singular bool.
// The value bit of f (i.e., the LSB) is ignored.
func (fs Flags) Get(f Bools) bool {
	return fs.Values&uint64(f) > 0
}

// Has reports whether the bool (or any of the bools) is set.
// The value bit of f (i.e., the LSB) is ignored.
func (fs Flags) Has(f Bools) bool {
	return fs.Presence&uint64(f) > 0
}

// Clear clears both the presence and value for the provided bool or bools.
// The value bit of f (i.e., the LSB) is ignored.
func (fs *Flags) Clear(f Bools) {
	mask := uint64(^f)
	fs.Presence &= mask
	fs.Values &= mask
}
