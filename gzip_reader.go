// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"bufio"
	"encoding/binary"
	"io"
	"sync/atomic"

	"github.com/streamkit-go/deflatestream/internal/codec"
	"github.com/streamkit-go/deflatestream/internal/xcrc"
)

// GzipReader is a pull-decompress adapter for GZIP streams. By default it
// follows concatenated members transparently, the way compress/gzip.Reader
// does; call Multistream(false) to stop after the first member. GzipHeader
// reflects the most recently started member.
type GzipReader struct {
	GzipHeader
	br           *bufio.Reader
	decompressor *codec.Decompressor
	digest       *xcrc.Digest
	multistream  bool
	headerRead   bool
	done         bool
	// doneIn accumulates header, payload, and trailer bytes of every
	// member fully finished so far. The in-flight member's payload
	// bytes live in decompressor.TotalIn() until finishMember folds
	// them in here.
	doneIn   atomic.Uint64
	totalOut atomic.Uint64
}

// NewGzipReader returns a GzipReader over r, parsing the first member's
// header eagerly (mirroring compress/gzip.NewReader).
func NewGzipReader(r io.Reader) (*GzipReader, error) {
	z := newGzipReader(r)
	if err := z.readHeader(); err != nil {
		return nil, err
	}
	return z, nil
}

// newGzipReader builds a GzipReader without parsing a header yet; used
// by GzipDecodeWriter, whose source has no bytes available until the
// caller's first Write.
func newGzipReader(r io.Reader) *GzipReader {
	return &GzipReader{
		br:          asPeeker(r),
		digest:      xcrc.New(),
		multistream: true,
	}
}

func (z *GzipReader) readHeader() error {
	hdr, n, err := parseGzipHeader(z.br)
	z.doneIn.Add(uint64(n))
	if err != nil {
		return err
	}
	z.GzipHeader = hdr
	z.decompressor = codec.NewDecompressor(z.br)
	z.digest.Reset()
	z.headerRead = true
	return nil
}

// Multistream controls whether Read follows concatenated GZIP members
// (the default) or stops after the current one.
func (z *GzipReader) Multistream(ok bool) {
	z.multistream = ok
}

func (z *GzipReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if z.done {
		return 0, nil
	}
	if !z.headerRead {
		if err := z.readHeader(); err != nil {
			return 0, err
		}
	}
	for {
		n, err := z.decompressor.Read(p)
		if n > 0 {
			z.digest.Update(p[:n])
			z.totalOut.Add(uint64(n))
			return n, nil
		}
		switch {
		case err == io.EOF:
			if ferr := z.finishMember(); ferr != nil {
				return 0, ferr
			}
			if z.done {
				return 0, io.EOF
			}
		case err != nil:
			return 0, err
		default:
			// Codec returned (0, nil) without EOF; not a member
			// boundary, so loop back for more.
		}
	}
}

// finishMember verifies the trailer of the member just exhausted, then
// either marks the stream done or re-parses the next member's header in
// place, per §4.4. It folds the finished member's payload byte count
// into doneIn and clears decompressor so TotalIn never double-counts
// it once the member is closed out.
func (z *GzipReader) finishMember() error {
	z.doneIn.Add(z.decompressor.TotalIn())
	z.decompressor = nil

	var trailer [8]byte
	if _, err := io.ReadFull(z.br, trailer[:]); err != nil {
		return wrapShortRead(err)
	}
	z.doneIn.Add(uint64(len(trailer)))
	wantCRC := binary.LittleEndian.Uint32(trailer[:4])
	wantLen := binary.LittleEndian.Uint32(trailer[4:8])
	if wantCRC != z.digest.Sum() || wantLen != z.digest.Amount() {
		return corrupt()
	}

	if !z.multistream {
		z.done = true
		return nil
	}
	if _, err := z.br.Peek(1); err != nil {
		z.done = true
		return nil
	}
	return z.readHeader()
}

// Close releases the decoder. It does not close the wrapped reader.
func (z *GzipReader) Close() error { return nil }

// Reset discards all state and starts fresh over r, re-parsing a header
// eagerly like NewGzipReader.
func (z *GzipReader) Reset(r io.Reader) error {
	*z = *newGzipReader(r)
	return z.readHeader()
}

// TotalIn returns the number of compressed bytes consumed so far, across
// all members read, including every member's header and trailer.
func (z *GzipReader) TotalIn() uint64 {
	if z.decompressor == nil {
		return z.doneIn.Load()
	}
	return z.doneIn.Load() + z.decompressor.TotalIn()
}

// TotalOut returns the number of uncompressed bytes returned so far,
// across all members read.
func (z *GzipReader) TotalOut() uint64 {
	return z.totalOut.Load()
}

var _ pullSide = (*GzipReader)(nil)
