// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package constwriter

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Zettroke/const-writer/throw"
)

func TestBufferWriteLE(t *testing.T) {
	var buf []byte

	NewBufferWriter(&buf, 31).
		WriteUint8(0x01).
		WriteUint16LE(0x0203).
		WriteUint32LE(0x04050607).
		WriteUint64LE(0x08090A0B0C0D0E0F).
		WriteUint128LE(0x18191A1B1C1D1E1F, 0x1011121314151617).
		Done()

	require.Equal(t, []byte{
		0x01,
		0x03, 0x02,
		0x07, 0x06, 0x05, 0x04,
		0x0F, 0x0E, 0x0D, 0x0C, 0x0B, 0x0A, 0x09, 0x08,
		0x1F, 0x1E, 0x1D, 0x1C, 0x1B, 0x1A, 0x19, 0x18, 0x17, 0x16, 0x15, 0x14, 0x13, 0x12, 0x11, 0x10,
	}, buf)
}

func TestBufferWriteBE(t *testing.T) {
	var buf []byte

	NewBufferWriter(&buf, 31).
		WriteUint8(0x01).
		WriteUint16BE(0x0203).
		WriteUint32BE(0x04050607).
		WriteUint64BE(0x08090A0B0C0D0E0F).
		WriteUint128BE(0x18191A1B1C1D1E1F, 0x1011121314151617).
		Done()

	require.Equal(t, []byte{
		0x01,
		0x02, 0x03,
		0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
		0x10, 0x11, 0x12, 0x13, 0x14, 0x15, 0x16, 0x17, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x1E, 0x1F,
	}, buf)
}

func TestBufferGrow(t *testing.T) {
	var buf []byte

	NewBufferWriter(&buf, 5).
		WriteUint32LE(123).
		WriteUint8(1).
		Convert(10).
		WriteUint32LE(124).
		WriteUint8(24).
		Done()

	require.Equal(t, []byte{123, 0, 0, 0, 1, 124, 0, 0, 0, 24}, buf)
}

func TestBufferExactCommit(t *testing.T) {
	var buf []byte

	w := NewBufferWriter(&buf, 5)
	require.Len(t, buf, 0) // reservation is not visible length

	w.WriteUint32LE(0x04030201).WriteUint8(5).Done()

	require.Len(t, buf, 5)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, buf)
}

func TestBufferCommitSkipsUnwritten(t *testing.T) {
	var buf []byte

	NewBufferWriter(&buf, 100).
		WriteUint16LE(0x0201).
		Done()

	// 100 bytes were reserved, exactly 2 were written
	require.Len(t, buf, 2)
	require.Equal(t, []byte{1, 2}, buf)
}

func TestBufferAppendsAfterExisting(t *testing.T) {
	buf := []byte{9, 8}

	NewBufferWriter(&buf, 3).
		WriteUint8(7).
		WriteUint16BE(0x0605).
		Done()

	require.Equal(t, []byte{9, 8, 7, 6, 5}, buf)
}

func TestBufferGrowRelocation(t *testing.T) {
	buf := make([]byte, 1, 2)
	buf[0] = 0xEE

	w := NewBufferWriter(&buf, 1).WriteUint8(0xDD)

	// forces a reservation well past the current allocation
	w = w.Convert(2000)
	w = w.WriteZeros(1998).WriteUint16LE(0xCCBB)
	require.Zero(t, w.Remaining())
	w.Done()

	require.Len(t, buf, 2002)
	require.Equal(t, byte(0xEE), buf[0])
	require.Equal(t, byte(0xDD), buf[1])
	require.Equal(t, []byte{0xBB, 0xCC}, buf[2000:])
}

func TestBufferDoneIdempotent(t *testing.T) {
	var buf []byte

	w := NewBufferWriter(&buf, 4).WriteUint32LE(1)
	w.Done()
	require.Len(t, buf, 4)

	w.Done()
	require.Len(t, buf, 4)
}

func TestBufferHandleReuse(t *testing.T) {
	var buf []byte

	w := NewBufferWriter(&buf, 4)
	_ = w.WriteUint32LE(1)

	err := catchPanicErr(t, func() {
		w.WriteUint32LE(2) // the same handle again
	})
	require.True(t, throw.IsEqual(err, throw.IllegalState()))
}

func TestBufferWriteAfterDone(t *testing.T) {
	var buf []byte

	w := NewBufferWriter(&buf, 4).WriteUint16LE(0x0201)
	w.Done()

	err := catchPanicErr(t, func() {
		w.WriteUint16LE(0x0403)
	})
	require.True(t, throw.IsEqual(err, throw.IllegalState()))

	err = catchPanicErr(t, func() {
		w.Convert(8)
	})
	require.True(t, throw.IsEqual(err, throw.IllegalState()))

	require.Equal(t, []byte{1, 2}, buf)
}

func TestWithBufferWriter(t *testing.T) {
	var buf []byte

	WithBufferWriter(&buf, 8, func(w ConstWriter) ConstWriter {
		return w.WriteFloat64LE(1.0)
	})

	require.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xF0, 0x3F}, buf)
}

func TestWithBufferWriterCommitsOnPanic(t *testing.T) {
	var buf []byte

	require.Panics(t, func() {
		WithBufferWriter(&buf, 4, func(w ConstWriter) ConstWriter {
			w = w.WriteUint16LE(0x0201)
			return w.WriteUint32LE(5) // over capacity
		})
	})

	// the bytes written before the failure are committed, nothing else
	require.Equal(t, []byte{1, 2}, buf)
}
