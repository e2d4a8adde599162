// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package deflatestream

import (
	"io"

	"github.com/streamkit-go/deflatestream/internal/codec"
)

// ZlibReader is a pull-decompress adapter for ZLIB streams. The 2-byte
// header is parsed eagerly at construction, and the Adler-32 trailer is
// verified by the wrapped codec when the stream reaches EOF.
type ZlibReader struct {
	d *codec.Decompressor
}

// NewZlibReader returns a ZlibReader decompressing data read from r.
func NewZlibReader(r io.Reader) (*ZlibReader, error) {
	d, err := codec.NewZlibDecompressor(r)
	if err != nil {
		return nil, err
	}
	return &ZlibReader{d: d}, nil
}

func (z *ZlibReader) Read(p []byte) (int, error) {
	return z.d.Read(p)
}

// Close releases the decoder. It does not close the wrapped reader.
func (z *ZlibReader) Close() error {
	return z.d.Close()
}

// Reset discards the ZlibReader's state, re-parsing a fresh header from r
// (ZLIB decoders offer no lighter-weight reset; see §4.5).
func (z *ZlibReader) Reset(r io.Reader) error {
	d, err := codec.NewZlibDecompressor(r)
	if err != nil {
		return err
	}
	z.d = d
	return nil
}

// TotalIn returns the number of compressed bytes pulled from the source so far.
func (z *ZlibReader) TotalIn() uint64 { return z.d.TotalIn() }

// TotalOut returns the number of uncompressed bytes returned to the caller so far.
func (z *ZlibReader) TotalOut() uint64 { return z.d.TotalOut() }
