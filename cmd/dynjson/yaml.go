// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"gopkg.in/yaml.v3"

	json "github.com/go-json-experiment/dynjson"
)

// maxYAMLDepth bounds the nesting of translated YAML documents,
// including nesting introduced through aliases.
const maxYAMLDepth = 10000

// YAMLCmd translates a YAML document to JSON under the dialect.
// Mapping order is preserved unless the dialect sorts keys.
type YAMLCmd struct {
	Args struct {
		File string `positional-arg-name:"file" description:"YAML file (stdin when omitted)"`
	} `positional-args:"yes"`

	root *Options
}

func (c *YAMLCmd) Execute(_ []string) error {
	logger := c.root.logger()
	opts, err := c.root.jsonOptions(logger)
	if err != nil {
		return err
	}

	var in []byte
	if c.Args.File == "" {
		in, err = io.ReadAll(c.root.stdin)
	} else {
		in, err = os.ReadFile(c.Args.File)
	}
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(in, &doc); err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	v, err := fromYAML(&doc, 0)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	out, err := json.AppendSerialize(nil, v, opts)
	if err != nil {
		return fmt.Errorf("yaml: %w", err)
	}
	level.Debug(logger).Log("msg", "translated yaml", "in", len(in), "out", len(out))
	_, err = c.root.stdout.Write(append(out, '\n'))
	return err
}

// fromYAML translates a YAML node into a JSON value.
// Scalars keep the type YAML resolves for them,
// so a mapping key such as 1 becomes an integer key.
func fromYAML(n *yaml.Node, depth int) (json.Value, error) {
	if depth > maxYAMLDepth {
		return json.Value{}, errors.New("document nests too deeply")
	}
	switch n.Kind {
	case 0:
		return json.Null(), nil
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return json.Null(), nil
		}
		return fromYAML(n.Content[0], depth)
	case yaml.AliasNode:
		return fromYAML(n.Alias, depth+1)
	case yaml.SequenceNode:
		elems := make([]json.Value, 0, len(n.Content))
		for _, e := range n.Content {
			v, err := fromYAML(e, depth+1)
			if err != nil {
				return json.Value{}, err
			}
			elems = append(elems, v)
		}
		return json.Array(elems...), nil
	case yaml.MappingNode:
		members := make([]json.Member, 0, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, err := fromYAML(n.Content[i], depth+1)
			if err != nil {
				return json.Value{}, err
			}
			v, err := fromYAML(n.Content[i+1], depth+1)
			if err != nil {
				return json.Value{}, err
			}
			members = append(members, json.Member{Key: k, Value: v})
		}
		return json.Object(members...), nil
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	default:
		return json.Value{}, fmt.Errorf("line %d: unsupported node kind %v", n.Line, n.Kind)
	}
}

func scalarFromYAML(n *yaml.Node) (json.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return json.Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return json.Value{}, err
		}
		return json.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return json.Int(i), nil
		}
		fallthrough // out of int64 range
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return json.Value{}, err
		}
		return json.Float(f), nil
	default:
		return json.String(n.Value), nil
	}
}
