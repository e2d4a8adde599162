// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
)

// Reader is a pull-decompress adapter for raw DEFLATE: reading from it
// pulls compressed bytes from the wrapped io.Reader and returns
// uncompressed bytes.
type Reader struct {
	d   *codec.Decompressor
	eof bool
}

// NewReader returns a Reader decompressing data read from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{d: codec.NewDecompressor(r)}
}

// Read returns decompressed bytes. Once the end of the stream has been
// reported with io.EOF, further calls return 0, nil.
func (z *Reader) Read(p []byte) (int, error) {
	if z.eof {
		return 0, nil
	}
	n, err := z.d.Read(p)
	if err == io.EOF {
		z.eof = true
	}
	return n, err
}

// Close releases the decoder. It does not close the wrapped reader.
func (z *Reader) Close() error {
	return z.d.Close()
}

// Reset discards the Reader's state, constructing a fresh decoder bound
// to r. GZIP/ZLIB decoders must re-parse their header on every Reset, so
// unlike Writer.Reset this always starts a new codec rather than reusing
// the old one in place.
func (z *Reader) Reset(r io.Reader) {
	z.d = codec.NewDecompressor(r)
	z.eof = false
}

// TotalIn returns the number of compressed bytes pulled from the source so far.
func (z *Reader) TotalIn() uint64 { return z.d.TotalIn() }

// TotalOut returns the number of uncompressed bytes returned to the caller so far.
func (z *Reader) TotalOut() uint64 { return z.d.TotalOut() }
