// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package longbits

import (
	"encoding/binary"
	"io"
)

var _ FoldableReader = &Bits64{}
var _ FoldableReader = &Bits128{}

// Bits64 is a fixed 8-byte value, stored little-endian.
type Bits64 [8]byte

func NewBits64(v uint64) Bits64 {
	b := Bits64{}
	binary.LittleEndian.PutUint64(b[:], v)
	return b
}

func (v *Bits64) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v[:])
	return int64(n), err
}

func (v *Bits64) CopyTo(p []byte) int {
	return copy(p, v[:])
}

func (v *Bits64) AsBytes() []byte {
	return v[:]
}

func (v *Bits64) AsByteString() ByteString {
	return CopyBytes(v[:])
}

func (v *Bits64) FixedByteSize() int {
	return len(v)
}

func (v *Bits64) FoldToUint64() uint64 {
	return binary.LittleEndian.Uint64(v[:])
}

func (v Bits64) String() string {
	return v.AsByteString().String()
}

// Bits128 is a fixed 16-byte value, stored as a little-endian 128-bit number.
type Bits128 [16]byte

func NewBits128(lo, hi uint64) Bits128 {
	b := Bits128{}
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	return b
}

func (v *Bits128) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(v[:])
	return int64(n), err
}

func (v *Bits128) CopyTo(p []byte) int {
	return copy(p, v[:])
}

func (v *Bits128) AsBytes() []byte {
	return v[:]
}

func (v *Bits128) AsByteString() ByteString {
	return CopyBytes(v[:])
}

func (v *Bits128) FixedByteSize() int {
	return len(v)
}

// Low returns the lower 8 bytes as a number.
func (v *Bits128) Low() uint64 {
	return binary.LittleEndian.Uint64(v[:8])
}

// High returns the higher 8 bytes as a number.
func (v *Bits128) High() uint64 {
	return binary.LittleEndian.Uint64(v[8:])
}

func (v *Bits128) FoldToUint64() uint64 {
	return v.Low() ^ v.High()
}

func (v Bits128) String() string {
	return v.AsByteString().String()
}
