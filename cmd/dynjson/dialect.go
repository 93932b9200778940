// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	json "github.com/go-json-experiment/dynjson"
)

// Dialect is the set of JSON options selectable from the command line
// or from a YAML dialect file. Flags can only enable an option;
// a dialect file can set either value.
type Dialect struct {
	AllowNonStringKeys bool `yaml:"allow_non_string_keys" long:"allow-non-string-keys" description:"accept and emit object keys that are not strings"`
	JavaScriptSafe     bool `yaml:"javascript_safe" long:"javascript-safe" description:"reject integers beyond 2^53 when serializing"`
	PrettyFormatting   bool `yaml:"pretty_formatting" long:"pretty" description:"indent output by two spaces per level"`
	EncodeNonASCII     bool `yaml:"encode_non_ascii" long:"encode-non-ascii" description:"escape every non-ASCII character"`
	ValidateUTF8       bool `yaml:"validate_utf8" long:"validate-utf8" description:"reject ill-formed UTF-8"`
	AllowTrailingComma bool `yaml:"allow_trailing_comma" long:"allow-trailing-comma" description:"accept a comma before a closing bracket or brace"`
	SortKeys           bool `yaml:"sort_keys" long:"sort-keys" description:"emit object members in key order"`
	SkipInvalidUTF8    bool `yaml:"skip_invalid_utf8" long:"skip-invalid-utf8" description:"replace ill-formed UTF-8 with U+FFFD"`
	AllowNaNInf        bool `yaml:"allow_nan_inf" long:"allow-nan-inf" description:"accept and emit NaN and Infinity"`
	MaxDepth           int  `yaml:"max_depth" long:"max-depth" description:"maximum nesting depth when parsing"`
}

// loadDialect reads a YAML dialect file. Unknown keys are an error.
func loadDialect(path string) (Dialect, error) {
	var d Dialect
	b, err := os.ReadFile(path)
	if err != nil {
		return d, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return d, fmt.Errorf("dialect file %s: %w", path, err)
	}
	return d, nil
}

// override returns d with every option enabled in o also enabled.
func (d Dialect) override(o Dialect) Dialect {
	d.AllowNonStringKeys = d.AllowNonStringKeys || o.AllowNonStringKeys
	d.JavaScriptSafe = d.JavaScriptSafe || o.JavaScriptSafe
	d.PrettyFormatting = d.PrettyFormatting || o.PrettyFormatting
	d.EncodeNonASCII = d.EncodeNonASCII || o.EncodeNonASCII
	d.ValidateUTF8 = d.ValidateUTF8 || o.ValidateUTF8
	d.AllowTrailingComma = d.AllowTrailingComma || o.AllowTrailingComma
	d.SortKeys = d.SortKeys || o.SortKeys
	d.SkipInvalidUTF8 = d.SkipInvalidUTF8 || o.SkipInvalidUTF8
	d.AllowNaNInf = d.AllowNaNInf || o.AllowNaNInf
	if o.MaxDepth > 0 {
		d.MaxDepth = o.MaxDepth
	}
	return d
}

// Options returns the dialect as JSON options.
func (d Dialect) Options() json.Options {
	return json.JoinOptions(
		json.AllowNonStringKeys(d.AllowNonStringKeys),
		json.JavaScriptSafe(d.JavaScriptSafe),
		json.PrettyFormatting(d.PrettyFormatting),
		json.EncodeNonASCII(d.EncodeNonASCII),
		json.ValidateUTF8(d.ValidateUTF8),
		json.AllowTrailingComma(d.AllowTrailingComma),
		json.SortKeys(d.SortKeys),
		json.SkipInvalidUTF8(d.SkipInvalidUTF8),
		json.AllowNaNInf(d.AllowNaNInf),
		json.WithMaxDepth(d.MaxDepth),
	)
}
