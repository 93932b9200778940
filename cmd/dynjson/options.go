// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	json "github.com/go-json-experiment/dynjson"
)

// Options is the root of the command line.
// Struct tags are interpreted by github.com/jessevdk/go-flags.
type Options struct {
	Config  string  `short:"f" long:"config" description:"YAML dialect file"`
	Verbose bool    `short:"v" long:"verbose" description:"log debug messages"`
	Dialect Dialect `group:"Dialect Options"`

	Fmt  *FmtCmd  `command:"fmt"  description:"Parse and re-serialize JSON files"`
	Conv *ConvCmd `command:"conv" description:"Convert text to a scalar type and print its canonical form"`
	YAML *YAMLCmd `command:"yaml" description:"Translate a YAML document to JSON"`

	stdin          io.Reader
	stdout, stderr io.Writer
}

func newOptions(stdin io.Reader, stdout, stderr io.Writer) *Options {
	o := &Options{stdin: stdin, stdout: stdout, stderr: stderr}
	o.Fmt = &FmtCmd{root: o}
	o.Conv = &ConvCmd{root: o}
	o.YAML = &YAMLCmd{root: o}
	return o
}

// logger returns a logfmt logger writing to stderr,
// filtered to the verbosity requested on the command line.
func (o *Options) logger() log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(o.stderr))
	if o.Verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// jsonOptions returns the effective dialect:
// the dialect file, if any, overridden by dialect flags.
func (o *Options) jsonOptions(logger log.Logger) (json.Options, error) {
	d := o.Dialect
	if o.Config != "" {
		fd, err := loadDialect(o.Config)
		if err != nil {
			return nil, err
		}
		d = fd.override(d)
		level.Debug(logger).Log("msg", "loaded dialect file", "path", o.Config)
	}
	level.Debug(logger).Log("msg", "effective dialect", "dialect", fmt.Sprintf("%+v", d))
	return d.Options(), nil
}
