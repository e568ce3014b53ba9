// Copyright 2020 Insolar Network Ltd.
// All rights reserved.
// This material is licensed under the Insolar License version 1.0,
// available at https://github.com/insolar/assured-ledger/blob/master/LICENSE.md.

package constwriter

// BoundsDetails is attached to capacity violation panics and reports
// the requested vs the actually available byte counts.
type BoundsDetails struct {
	Required  int
	Available int
}

// writerAdapter is a capability over one backing store kind. The set of
// implementations is closed: sliceWriterAdapter and bufferWriterAdapter.
//
// An adapter performs no capacity arithmetic of its own - capacity is
// validated once, at construction or at the latest successful grow, and
// ConstWriter maintains the proof that appends stay within that bound.
// The limit check inside append only exists to turn a broken proof
// (a reused handle) into a panic instead of a garbled store.
type writerAdapter interface {
	// append copies p at the cursor and advances the cursor by len(p).
	append(p []byte)
	// grow guarantees at least m writable bytes from the cursor onwards.
	grow(m int)
	// commit makes exactly the written bytes externally visible.
	// Repeated calls are no-ops.
	commit()
}
