// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-kit/log/level"

	"github.com/go-json-experiment/dynjson/conv"
)

// ConvCmd converts each argument to the target type
// and prints the canonical text of the result.
type ConvCmd struct {
	To     string `short:"t" long:"to" required:"yes" description:"target type" choice:"int8" choice:"int16" choice:"int32" choice:"int64" choice:"int" choice:"uint8" choice:"uint16" choice:"uint32" choice:"uint64" choice:"uint" choice:"float32" choice:"float64" choice:"bool" choice:"char" choice:"string"`
	Prefix bool   `short:"p" long:"prefix" description:"convert the longest valid prefix and also print the remainder"`
	Args   struct {
		Values []string `positional-arg-name:"value" required:"1"`
	} `positional-args:"yes"`

	root *Options
}

// converter converts text to one target type and back to canonical text.
type converter struct {
	whole  func(string) (string, error)
	prefix func(conv.Cursor) (string, conv.Cursor, error)
}

var converters = map[string]converter{
	"int8":    {textAs[int8], consumeInt[int8]},
	"int16":   {textAs[int16], consumeInt[int16]},
	"int32":   {textAs[int32], consumeInt[int32]},
	"int64":   {textAs[int64], consumeInt[int64]},
	"int":     {textAs[int], consumeInt[int]},
	"uint8":   {textAs[uint8], consumeInt[uint8]},
	"uint16":  {textAs[uint16], consumeInt[uint16]},
	"uint32":  {textAs[uint32], consumeInt[uint32]},
	"uint64":  {textAs[uint64], consumeInt[uint64]},
	"uint":    {textAs[uint], consumeInt[uint]},
	"float32": {textAs[float32], consumeFloat[float32]},
	"float64": {textAs[float64], consumeFloat[float64]},
	"bool":    {textAs[bool], consumeBool},
	"char":    {textAs[conv.Char], nil},
	"string":  {textAs[string], nil},
}

func textAs[T conv.Scalar](s string) (string, error) {
	v, err := conv.To[T](s)
	if err != nil {
		return "", err
	}
	return conv.To[string](v)
}

func consumeInt[T conv.Integer](c conv.Cursor) (string, conv.Cursor, error) {
	v, rest, err := conv.ConsumeInt[T](c)
	if err != nil {
		return "", c, err
	}
	return string(conv.AppendInt(nil, v)), rest, nil
}

func consumeFloat[T conv.Float](c conv.Cursor) (string, conv.Cursor, error) {
	v, rest, err := conv.ConsumeFloat[T](c)
	if err != nil {
		return "", c, err
	}
	return conv.FormatFloat(v), rest, nil
}

func consumeBool(c conv.Cursor) (string, conv.Cursor, error) {
	v, rest, err := conv.ConsumeBool(c)
	if err != nil {
		return "", c, err
	}
	if v {
		return "1", rest, nil
	}
	return "0", rest, nil
}

func (c *ConvCmd) Execute(_ []string) error {
	logger := c.root.logger()
	cv, ok := converters[c.To]
	if !ok {
		return fmt.Errorf("conv: unknown type %q", c.To)
	}
	if c.Prefix && cv.prefix == nil {
		return fmt.Errorf("conv: --prefix is not supported for %s", c.To)
	}

	var failed int
	for _, s := range c.Args.Values {
		var line string
		var err error
		if c.Prefix {
			var text string
			var rest conv.Cursor
			if text, rest, err = cv.prefix(conv.NewCursor(s)); err == nil {
				line = text + "\t" + strconv.Quote(rest.Rest())
			}
		} else {
			line, err = cv.whole(s)
		}
		if err != nil {
			failed++
			level.Error(logger).Log("msg", "cannot convert", "value", s, "to", c.To, "err", err)
			continue
		}
		level.Debug(logger).Log("msg", "converted", "value", s, "to", c.To)
		if _, err := io.WriteString(c.root.stdout, line+"\n"); err != nil {
			return err
		}
	}
	if failed > 0 {
		return errors.New("conv: " + strconv.Itoa(failed) + " of " + strconv.Itoa(len(c.Args.Values)) + " values failed")
	}
	return nil
}
