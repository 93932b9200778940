// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"fmt"
	"math/rand"
	"os"
	"path"
	"testing"

	jsoniter "github.com/json-iterator/go"
)

var benchJsoniter = os.Getenv("BENCHMARK_JSONITER") != ""

// benchTestdata holds synthetic documents of increasing size.
var benchTestdata = func() (out []struct {
	name string
	data []byte
}) {
	rn := rand.New(rand.NewSource(0))
	for _, n := range []int{10, 1000, 100000} {
		var members []Member
		for i := range n {
			members = append(members, Field(fmt.Sprintf("key%d", i), randomValue(rn, 3)))
		}
		data, err := AppendSerialize(nil, Object(members...))
		if err != nil {
			panic(err)
		}
		out = append(out, struct {
			name string
			data []byte
		}{fmt.Sprintf("Members%d", n), data})
	}
	return out
}()

func randomValue(rn *rand.Rand, depth int) Value {
	switch k := rn.Intn(8); {
	case k == 0:
		return Null()
	case k == 1:
		return Bool(rn.Intn(2) == 0)
	case k == 2:
		return Int(rn.Int63n(1<<53) - 1<<52)
	case k == 3:
		return Float(rn.NormFloat64() * 1e6)
	case k == 4:
		return String(fmt.Sprintf("text\t%x \"quoted\" é", rn.Int63()))
	case k == 5 && depth > 0:
		elems := make([]Value, rn.Intn(4))
		for i := range elems {
			elems[i] = randomValue(rn, depth-1)
		}
		return Array(elems...)
	case k == 6 && depth > 0:
		var members []Member
		for i := range rn.Intn(4) {
			members = append(members, Field(fmt.Sprintf("m%d", i), randomValue(rn, depth-1)))
		}
		return Object(members...)
	default:
		return Int(rn.Int63n(100))
	}
}

func TestTestdata(t *testing.T) {
	for _, td := range benchTestdata {
		t.Run(td.name, func(t *testing.T) {
			v, err := Parse(td.data)
			if err != nil {
				t.Fatalf("Parse error: %v", err)
			}
			got, err := AppendSerialize(nil, v)
			if err != nil {
				t.Fatalf("Serialize error: %v", err)
			}
			if string(got) != string(td.data) {
				t.Errorf("Serialize(Parse(data)) differs from data")
			}
		})
	}
}

func BenchmarkTestdata(b *testing.B) {
	for _, td := range benchTestdata {
		v, err := Parse(td.data)
		if err != nil {
			b.Fatalf("Parse error: %v", err)
		}
		buffer := make([]byte, 0, 2*len(td.data))
		b.Run(path.Join(td.name, "Parse"), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(td.data)))
			for range b.N {
				if benchJsoniter {
					var v any
					if err := jsoniter.Unmarshal(td.data, &v); err != nil {
						b.Fatal(err)
					}
				} else if _, err := Parse(td.data); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(path.Join(td.name, "Serialize"), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(td.data)))
			for range b.N {
				if _, err := AppendSerialize(buffer[:0], v); err != nil {
					b.Fatal(err)
				}
			}
		})
		b.Run(path.Join(td.name, "SerializeSorted"), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(td.data)))
			for range b.N {
				if _, err := AppendSerialize(buffer[:0], v, SortKeys(true), PrettyFormatting(true)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkEscapeString(b *testing.B) {
	const s = "The quick brown fox\tjumps over the \"lazy\" dog. Ελληνικά 日本語 \U0001f602"
	for _, opts := range [][]Options{nil, {EncodeNonASCII(true)}, {ValidateUTF8(true)}} {
		b.Run(fmt.Sprint(len(opts)), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				if _, err := EscapeString(s, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
