// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package xcrc wraps the accelerated CRC-32 implementation used by the GZIP
// framing layer. The algorithm itself is an external collaborator: this
// package only adds the running byte counter the framer needs to emit the
// ISIZE trailer field, and the algebraic combine used to stitch together
// two independently-computed checksums.
package xcrc

import "github.com/klauspost/crc32"

// Digest is an incremental CRC-32 (IEEE) accumulator with a modulo-2^32
// byte counter, matching the gzip trailer's (crc32, isize) pair. The
// checksum itself is kept as a plain uint32 rather than a hash.Hash32, so
// that Combine can fold in an externally-computed checksum algebraically.
type Digest struct {
	sum    uint32
	amount uint32
}

// New returns a fresh Digest over the IEEE polynomial.
func New() *Digest {
	return &Digest{}
}

// Update feeds p into the running checksum.
func (d *Digest) Update(p []byte) {
	d.sum = crc32.Update(d.sum, crc32.IEEETable, p)
	d.amount += uint32(len(p))
}

// Sum returns the current CRC-32 value.
func (d *Digest) Sum() uint32 { return d.sum }

// Amount returns the number of bytes fed so far, modulo 2^32.
func (d *Digest) Amount() uint32 { return d.amount }

// Reset zeroes both the checksum and the byte counter.
func (d *Digest) Reset() {
	d.sum = 0
	d.amount = 0
}

// Combine folds a trailing CRC-32 computed over `length` bytes this
// digest never saw directly onto the running checksum, the way two
// independently-compressed GZIP blobs' trailers are stitched together
// when one is appended to the other without decompressing it.
func (d *Digest) Combine(trailing uint32, length int) {
	zeroes := make([]byte, length)
	front := crc32.Update(0xffffffff^d.sum, crc32.IEEETable, zeroes) ^ 0xffffffff
	d.sum = front ^ trailing
	d.amount += uint32(length)
}
