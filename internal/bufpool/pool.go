// Package bufpool provides a pooled byte-buffer allocator for
// short-lived, request-sized buffers, with counters of Get and Put calls.
package bufpool

import (
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// Pool wraps a bytebufferpool.Pool with Get/Put metrics. The zero value
// is ready to use.
type Pool struct {
	pool bytebufferpool.Pool

	gets atomic.Uint64
	puts atomic.Uint64
}

// Default is the process-wide pool used by the huffman codec's
// BitOutputStream construction. Consumers embedding their own encoder may
// construct a private *Pool instead.
var Default = &Pool{}

// Get returns a buffer with zero length and at least the capacity the
// pool has already accumulated for reuse.
func (p *Pool) Get() []byte {
	p.gets.Add(1)
	bb := p.pool.Get()
	return bb.B[:0]
}

// Put returns buf to the pool for reuse by a future Get.
func (p *Pool) Put(buf []byte) {
	if buf == nil {
		return
	}
	p.puts.Add(1)
	p.pool.Put(&bytebufferpool.ByteBuffer{B: buf[:0]})
}

// Metrics reports cumulative Get/Put counts.
func (p *Pool) Metrics() (gets, puts uint64) {
	return p.gets.Load(), p.puts.Load()
}
