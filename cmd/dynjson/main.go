// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command dynjson formats JSON, converts scalar text,
// and translates YAML documents into JSON.
//
// Usage:
//
//	dynjson [-f dialect.yaml] [--verbose] [dialect flags] fmt [-w] [--workers N] [file...]
//	dynjson conv --to TYPE [--prefix] VALUE...
//	dynjson yaml [file]
//
// Dialect flags and the YAML dialect file select the JSON options
// used for parsing and serialization.
package main

import (
	"errors"
	"io"
	"os"

	"github.com/jessevdk/go-flags"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line args and returns the exit status.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := newOptions(stdin, stdout, stderr)
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.ParseArgs(args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			io.WriteString(stdout, ferr.Message+"\n")
			return 0
		}
		io.WriteString(stderr, "dynjson: "+err.Error()+"\n")
		return 1
	}
	return 0
}
