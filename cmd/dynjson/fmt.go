// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/panjf2000/ants/v2"

	json "github.com/go-json-experiment/dynjson"
)

// FmtCmd parses each input under the dialect and serializes it again.
type FmtCmd struct {
	Write   bool `short:"w" long:"write" description:"rewrite files in place instead of printing them"`
	Workers int  `long:"workers" default:"4" description:"number of files formatted concurrently"`
	Args    struct {
		Files []string `positional-arg-name:"file" description:"JSON files (stdin when none)"`
	} `positional-args:"yes"`

	root *Options
}

func (c *FmtCmd) Execute(_ []string) error {
	logger := c.root.logger()
	opts, err := c.root.jsonOptions(logger)
	if err != nil {
		return err
	}

	if len(c.Args.Files) == 0 {
		if c.Write {
			return errors.New("fmt: -w requires file arguments")
		}
		in, err := io.ReadAll(c.root.stdin)
		if err != nil {
			return fmt.Errorf("fmt: read stdin: %w", err)
		}
		out, err := format(in, opts)
		if err != nil {
			return fmt.Errorf("fmt: <stdin>: %w", err)
		}
		_, err = c.root.stdout.Write(out)
		return err
	}

	pool, err := ants.NewPool(max(c.Workers, 1))
	if err != nil {
		return fmt.Errorf("fmt: %w", err)
	}
	defer pool.Release()

	type result struct {
		out []byte
		err error
	}
	results := make([]result, len(c.Args.Files))
	var wg sync.WaitGroup
	for i, name := range c.Args.Files {
		wg.Add(1)
		task := func() {
			defer wg.Done()
			out, err := c.formatFile(name, opts, logger)
			results[i] = result{out, err}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i].err = err
		}
	}
	wg.Wait()

	var errs []error
	for i, r := range results {
		if r.err != nil {
			level.Error(logger).Log("msg", "cannot format", "file", c.Args.Files[i], "err", r.err)
			errs = append(errs, fmt.Errorf("%s: %w", c.Args.Files[i], r.err))
			continue
		}
		if !c.Write {
			if _, err := c.root.stdout.Write(r.out); err != nil {
				return err
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("fmt: %d of %d files failed: %w", len(errs), len(results), errors.Join(errs...))
	}
	return nil
}

// formatFile formats a single file, rewriting it when requested.
// A file that fails to format is left untouched.
func (c *FmtCmd) formatFile(name string, opts json.Options, logger log.Logger) ([]byte, error) {
	in, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	out, err := format(in, opts)
	if err != nil {
		return nil, err
	}
	if c.Write {
		fi, err := os.Stat(name)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(name, out, fi.Mode().Perm()); err != nil {
			return nil, err
		}
	}
	level.Debug(logger).Log("msg", "formatted", "file", name, "in", len(in), "out", len(out))
	return out, nil
}

// format parses in and serializes the result followed by a newline.
func format(in []byte, opts json.Options) ([]byte, error) {
	v, err := json.Parse(in, opts)
	if err != nil {
		return nil, err
	}
	out, err := json.AppendSerialize(make([]byte, 0, len(in)+1), v, opts)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}
