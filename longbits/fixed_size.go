// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

// Package longbits provides fixed-size byte values with a uniform
// read-only capability (FixedReader) over them.
package longbits

import (
	"io"

	"github.com/Zettroke/const-writer/throw"
)

type Foldable interface {
	FoldToUint64() uint64
}

// FixedReader is a read-only capability over a value with a fixed byte size.
type FixedReader interface {
	io.WriterTo
	CopyTo(p []byte) int
	AsByteString() ByteString

	FixedByteSize() int
}

type FoldableReader interface {
	FixedReader
	Foldable
}

func FoldUint64(v uint64) uint32 {
	return uint32(v) ^ uint32(v>>32)
}

type fixedSize struct {
	data []byte
}

func (c fixedSize) AsByteString() ByteString {
	return ByteString(c.data)
}

func (c fixedSize) String() string {
	return ByteString(c.data).String()
}

func (c fixedSize) WriteTo(w io.Writer) (n int64, err error) {
	n32, err := w.Write(c.data)
	return int64(n32), err
}

func (c fixedSize) CopyTo(p []byte) (n int) {
	return copy(p, c.data)
}

func (c fixedSize) FoldToUint64() uint64 {
	return FoldToUint64(c.data)
}

func (c fixedSize) FixedByteSize() int {
	return len(c.data)
}

// AsBytes makes a copy of the reader's content.
func AsBytes(v FixedReader) []byte {
	if v == nil {
		return nil
	}
	n := v.FixedByteSize()
	if n == 0 {
		return nil
	}
	data := make([]byte, n)
	if v.CopyTo(data) != len(data) {
		panic(throw.Impossible())
	}
	return data
}

// WrapBytes wraps the given bytes without a copy. Caller must not modify the content.
func WrapBytes(data []byte) FoldableReader {
	return fixedSize{data}
}

func FoldToUint64(data []byte) uint64 {
	var folded uint64
	for i := 0; i < len(data); i++ {
		folded ^= uint64(data[i]) << ((uint(i) & 0x7) << 3)
	}
	return folded
}
