// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

// Package constwriter provides a byte-buffer writer that tracks its
// remaining capacity through a chain of write operations. Capacity is
// validated once against the backing store when the writer is created
// (or explicitly re-declared with Convert), so the write chain itself
// performs no per-write store arithmetic.
//
// A ConstWriter is a consuming value: every operation takes the receiver
// and returns the successor handle, and the received handle must not be
// used again. Go cannot enforce this the way move semantics would, so the
// remaining-capacity quantity is a runtime counter and a violation is a
// panic carrying BoundsDetails, not a compile-time error.
package constwriter

import (
	"encoding/binary"
	"math"

	"github.com/Zettroke/const-writer/longbits"
	"github.com/Zettroke/const-writer/throw"
)

// ConstWriter writes into an exclusively borrowed backing store and
// carries the number of bytes it is still permitted to write.
// Zero value is unusable; handles are produced by NewSliceWriter,
// NewBufferWriter, or by operations of a prior handle only.
type ConstWriter struct {
	adapter   writerAdapter
	remaining int
}

func (w ConstWriter) write(p []byte) ConstWriter {
	if len(p) > w.remaining {
		panic(throw.E("insufficient writer capacity",
			BoundsDetails{Required: len(p), Available: w.remaining}))
	}
	w.adapter.append(p)
	w.remaining -= len(p)
	return w
}

// Remaining returns the number of bytes this handle can still write.
func (w ConstWriter) Remaining() int {
	return w.remaining
}

// Convert re-declares the remaining capacity. Shrinking (m <= Remaining)
// is free and never touches the backing store. Growing requests the
// missing room from the store: a bounded store panics when the room is
// not there, a growable store reserves it.
func (w ConstWriter) Convert(m int) ConstWriter {
	switch {
	case m < 0:
		panic(throw.IllegalValue())
	case m <= w.remaining:
		// relabel only - this capacity was already validated
	default:
		w.adapter.grow(m)
	}
	w.remaining = m
	return w
}

// Done releases the writer chain and commits: the backing store's
// externally visible length is advanced by exactly the bytes written.
// Calling Done more than once per chain is a no-op.
func (w ConstWriter) Done() {
	w.adapter.commit()
}

func (w ConstWriter) WriteUint8(v uint8) ConstWriter {
	b := [1]byte{v}
	return w.write(b[:])
}

func (w ConstWriter) WriteInt8(v int8) ConstWriter {
	return w.WriteUint8(uint8(v))
}

func (w ConstWriter) WriteUint16LE(v uint16) ConstWriter {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteUint16BE(v uint16) ConstWriter {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteInt16LE(v int16) ConstWriter {
	return w.WriteUint16LE(uint16(v))
}

func (w ConstWriter) WriteInt16BE(v int16) ConstWriter {
	return w.WriteUint16BE(uint16(v))
}

func (w ConstWriter) WriteUint32LE(v uint32) ConstWriter {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteUint32BE(v uint32) ConstWriter {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteInt32LE(v int32) ConstWriter {
	return w.WriteUint32LE(uint32(v))
}

func (w ConstWriter) WriteInt32BE(v int32) ConstWriter {
	return w.WriteUint32BE(uint32(v))
}

func (w ConstWriter) WriteUint64LE(v uint64) ConstWriter {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteUint64BE(v uint64) ConstWriter {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return w.write(b[:])
}

func (w ConstWriter) WriteInt64LE(v int64) ConstWriter {
	return w.WriteUint64LE(uint64(v))
}

func (w ConstWriter) WriteInt64BE(v int64) ConstWriter {
	return w.WriteUint64BE(uint64(v))
}

// WriteUint128LE writes a 128-bit number given as two 64-bit halves,
// as 16 little-endian bytes.
func (w ConstWriter) WriteUint128LE(lo, hi uint64) ConstWriter {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	return w.write(b[:])
}

// WriteUint128BE writes a 128-bit number given as two 64-bit halves,
// as 16 big-endian bytes.
func (w ConstWriter) WriteUint128BE(lo, hi uint64) ConstWriter {
	var b [16]byte
	binary.BigEndian.PutUint64(b[:8], hi)
	binary.BigEndian.PutUint64(b[8:], lo)
	return w.write(b[:])
}

func (w ConstWriter) WriteFloat32LE(v float32) ConstWriter {
	return w.WriteUint32LE(math.Float32bits(v))
}

func (w ConstWriter) WriteFloat32BE(v float32) ConstWriter {
	return w.WriteUint32BE(math.Float32bits(v))
}

func (w ConstWriter) WriteFloat64LE(v float64) ConstWriter {
	return w.WriteUint64LE(math.Float64bits(v))
}

func (w ConstWriter) WriteFloat64BE(v float64) ConstWriter {
	return w.WriteUint64BE(math.Float64bits(v))
}

// WriteBytes writes the given block as-is.
func (w ConstWriter) WriteBytes(p []byte) ConstWriter {
	return w.write(p)
}

// WriteFixed writes the full content of a fixed-size value, e.g. a
// nested record behind longbits.FixedReader.
func (w ConstWriter) WriteFixed(r longbits.FixedReader) ConstWriter {
	if r == nil {
		panic(throw.IllegalValue())
	}
	n := r.FixedByteSize()
	b := make([]byte, n)
	if r.CopyTo(b) != n {
		panic(throw.Impossible())
	}
	return w.write(b)
}

var zeroBytes [1024]byte

// WriteZeros writes n zero bytes.
func (w ConstWriter) WriteZeros(n int) ConstWriter {
	if n < 0 {
		panic(throw.IllegalValue())
	}
	for ; n > len(zeroBytes); n -= len(zeroBytes) {
		w = w.write(zeroBytes[:])
	}
	return w.write(zeroBytes[:n])
}
