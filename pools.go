// Copyright 2020 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package json

import (
	"math/bits"
	"sync"
)

// TODO(https://golang.org/issue/47657): Use sync.PoolOf.

var serializerPool = sync.Pool{New: func() any { return new(serializer) }}

func getSerializer(opts []Options) *serializer {
	s := serializerPool.Get().(*serializer)
	s.reset(opts)
	return s
}

func putSerializer(s *serializer) {
	clear(s.sorted[:cap(s.sorted)])
	*s = serializer{sorted: s.sorted[:0]}
	serializerPool.Put(s)
}

// bufferPool holds the scratch buffers behind [Serialize] and [EscapeString].
// A buffer that stays under-utilized for several uses is dropped
// so that one large document does not pin memory forever
// (see https://golang.org/issue/23199).
var bufferPool = sync.Pool{
	New: func() any { return new(pooledBuffer) },
}

type pooledBuffer struct {
	buf     []byte
	strikes int // number of times the buffer was under-utilized
	prevLen int // length of previous buffer
}

// getBuffer retrieves a buffer from the pool,
// where len(b.buf) is guaranteed to be zero and cap(b.buf) > 0.
func getBuffer() (b *pooledBuffer) {
	b = bufferPool.Get().(*pooledBuffer)
	if b.buf == nil {
		// Next power of two above the previous length, at least 64.
		n := 1 << bits.Len(uint(b.prevLen|63))
		b.buf = make([]byte, 0, n)
	}
	return b
}

// putBuffer places the buffer back into the pool,
// where len(b.buf) is the actual amount of the buffer that was used.
func putBuffer(b *pooledBuffer) {
	// Worst case utilization is 25% / (1 + 4 strikes), or 5%.
	// See https://golang.org/issue/27735.
	switch {
	case cap(b.buf) <= 4<<10: // always recycle buffers smaller than 4KiB
		b.strikes = 0
	case cap(b.buf)/4 <= len(b.buf): // at least 25% utilization
		b.strikes = 0
	case b.strikes < 4: // at most 4 strikes
		b.strikes++
	default: // discard the buffer; too large and too often under-utilized
		b.strikes = 0
		b.prevLen = len(b.buf) // heuristic for size to allocate next time
		b.buf = nil
	}
	b.buf = b.buf[:0]
	bufferPool.Put(b)
}
