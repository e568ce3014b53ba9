// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package constwriter

import (
	"github.com/Zettroke/const-writer/throw"
)

// NewBufferWriter creates a writer of capacity n over a caller-owned
// growable byte container. It reserves n bytes of spare capacity past
// len(*b), which may relocate the container's storage; existing content
// is preserved. Writes land in reserved capacity and stay invisible
// until commit, when (*b) is extended by exactly the bytes written.
func NewBufferWriter(b *[]byte, n int) ConstWriter {
	return ConstWriter{newBufferWriterAdapter(b, n), n}
}

// WithBufferWriter runs fn over a fresh buffer writer and guarantees the
// commit on every exit path, including a panic inside fn. Whatever was
// written before an early exit becomes visible; reserved-but-unwritten
// capacity never does.
func WithBufferWriter(b *[]byte, n int, fn func(ConstWriter) ConstWriter) {
	w := NewBufferWriter(b, n)
	defer w.Done()
	fn(w)
}

type bufferWriterAdapter struct {
	buf   *[]byte
	base  int // logical length at construction
	off   int // bytes written past base
	limit int // capacity validated at construction / last grow
	done  bool
}

func newBufferWriterAdapter(b *[]byte, n int) *bufferWriterAdapter {
	if b == nil || n < 0 {
		panic(throw.IllegalValue())
	}
	v := &bufferWriterAdapter{buf: b, base: len(*b), limit: n}
	v.reserve(n)
	return v
}

// reserve guarantees cap(*buf) >= base + off + m, relocating the
// container when necessary. Written-but-uncommitted bytes are carried
// over by the relocation; the logical length is left untouched.
func (v *bufferWriterAdapter) reserve(m int) {
	b := *v.buf
	end := v.base + v.off
	if need := end + m; cap(b) < need {
		nb := append(b[:end], make([]byte, need-end)...)
		*v.buf = nb[:v.base]
	}
}

func (v *bufferWriterAdapter) append(p []byte) {
	if v.off+len(p) > v.limit {
		// a validated chain can't get here - the handle was reused
		panic(throw.IllegalState())
	}
	// the window is re-derived from the container on every call, a
	// cached slice would go stale across a relocating reserve
	b := (*v.buf)[:cap(*v.buf)]
	copy(b[v.base+v.off:], p)
	v.off += len(p)
}

func (v *bufferWriterAdapter) grow(m int) {
	if v.done {
		panic(throw.IllegalState())
	}
	if v.off+m <= v.limit {
		return
	}
	v.reserve(m)
	v.limit = v.off + m
}

func (v *bufferWriterAdapter) commit() {
	if v.done {
		return
	}
	v.done = true
	v.limit = v.off // appends after release fail the same way as handle reuse
	*v.buf = (*v.buf)[:v.base+v.off]
}
