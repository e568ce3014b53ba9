// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package longbits

import (
	"encoding/hex"
	"io"
	"strings"
)

const EmptyByteString = ByteString("")

var _ FoldableReader = EmptyByteString

// ByteString is an immutable byte sequence.
type ByteString string

func WrapStr(s string) ByteString {
	return ByteString(s)
}

// CopyBytes relies on the compiler to copy the given bytes into an immutable string.
func CopyBytes(v []byte) ByteString {
	return ByteString(v)
}

func Zero(len int) ByteString {
	return Fill(len, 0)
}

func Fill(len int, fill byte) ByteString {
	if len == 0 {
		return EmptyByteString
	}
	b := make([]byte, len)
	if fill != 0 {
		for i := len - 1; i >= 0; i-- {
			b[i] = fill
		}
	}
	return ByteString(b)
}

func (v ByteString) IsEmpty() bool {
	return len(v) == 0
}

func (v ByteString) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write([]byte(v))
	return int64(n), err
}

func (v ByteString) CopyTo(b []byte) int {
	return copy(b, v)
}

func (v ByteString) AsByteString() ByteString {
	return v
}

func (v ByteString) FixedByteSize() int {
	return len(v)
}

func (v ByteString) FoldToUint64() uint64 {
	return FoldToUint64([]byte(v))
}

func (v ByteString) String() string {
	return "0x" + v.Hex()
}

func (v ByteString) NewIoReader() io.Reader {
	return strings.NewReader(string(v))
}

func (v ByteString) Hex() string {
	if v == "" {
		return ""
	}
	b := make([]byte, hex.EncodedLen(len(v)))
	hex.Encode(b, []byte(v))
	return string(b)
}
