// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package constwriter

import (
	"github.com/Zettroke/const-writer/throw"
)

// NewSliceWriter creates a writer of capacity n over a caller-owned
// fixed region. The region can never grow: when it is shorter than n,
// or a later Convert asks for more room than is left, the call panics
// with BoundsDetails before anything is written.
//
// On commit the caller's window is advanced past the written bytes:
// (*b) becomes the unwritten tail of the original region.
func NewSliceWriter(b *[]byte, n int) ConstWriter {
	return ConstWriter{newSliceWriterAdapter(b, n), n}
}

// WithSliceWriter runs fn over a fresh slice writer and guarantees the
// commit on every exit path, including a panic inside fn.
func WithSliceWriter(b *[]byte, n int, fn func(ConstWriter) ConstWriter) {
	w := NewSliceWriter(b, n)
	defer w.Done()
	fn(w)
}

type sliceWriterAdapter struct {
	slice *[]byte // caller's window, advanced on commit
	off   int     // bytes written
	limit int     // capacity validated at construction / last grow
	done  bool
}

func newSliceWriterAdapter(b *[]byte, n int) *sliceWriterAdapter {
	switch {
	case b == nil || n < 0:
		panic(throw.IllegalValue())
	case n > len(*b):
		panic(throw.E("slice too short",
			BoundsDetails{Required: n, Available: len(*b)}))
	}
	return &sliceWriterAdapter{slice: b, limit: n}
}

func (v *sliceWriterAdapter) append(p []byte) {
	if v.off+len(p) > v.limit {
		// a validated chain can't get here - the handle was reused
		panic(throw.IllegalState())
	}
	copy((*v.slice)[v.off:], p)
	v.off += len(p)
}

func (v *sliceWriterAdapter) grow(m int) {
	if v.done {
		panic(throw.IllegalState())
	}
	if m > len(*v.slice)-v.off {
		panic(throw.E("remaining slice too short to grow",
			BoundsDetails{Required: m, Available: len(*v.slice) - v.off}))
	}
	if v.off+m > v.limit {
		v.limit = v.off + m
	}
}

func (v *sliceWriterAdapter) commit() {
	if v.done {
		return
	}
	v.done = true
	v.limit = v.off // appends after release fail the same way as handle reuse
	*v.slice = (*v.slice)[v.off:]
}
