// Copyright 2026 The deflatestream Authors.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package codec adapts github.com/klauspost/compress's DEFLATE and ZLIB
// engines to the narrow counted-writer/counted-reader shape the transform
// engine needs. The DEFLATE and ZLIB algorithms themselves are treated as
// opaque: this package never looks inside a compressed block, it only
// tracks how many bytes crossed each boundary.
package codec

import (
	"bufio"
	"io"
	"sync/atomic"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zlib"
)

// countingWriter tallies bytes written to an underlying io.Writer using an
// atomic counter: push-decompress and pull-compress adapters read these
// counters from a different goroutine than the one driving the codec, via
// the io.Pipe bridge in engine.go.
type countingWriter struct {
	w io.Writer
	n atomic.Uint64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n.Add(uint64(n))
	return n, err
}

// byteReader is the io.Reader plus io.ByteReader shape flate.NewReader
// and zlib.NewReader look for before deciding whether to wrap their
// input in their own buffered reader. A source that already satisfies
// it is read byte-exactly: the decoder stops reading the instant the
// compressed stream ends, instead of opportunistically filling a
// private ~4KiB buffer that swallows whatever framing follows (a GZIP
// trailer, or the next member's header) where the caller can never see
// it again. This mirrors how stdlib compress/gzip hands its own
// *bufio.Reader straight to flate for the same reason.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// ensureByteReader returns r unchanged if it already satisfies
// byteReader. GzipReader always passes its *bufio.Reader here; the other
// adapters pass the caller's source, which gets a bufio.Reader layer only
// when it lacks ReadByte (e.g. a raw io.Pipe end).
func ensureByteReader(r io.Reader) byteReader {
	if br, ok := r.(byteReader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// countingReader tallies bytes read from an underlying byteReader,
// exposing the same shape so it can be handed straight to
// flate.NewReader/zlib.NewReader without them adding a second,
// invisible buffering layer on top (see byteReader above).
type countingReader struct {
	r byteReader
	n atomic.Uint64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(uint64(n))
	return n, err
}

func (c *countingReader) ReadByte() (byte, error) {
	b, err := c.r.ReadByte()
	if err == nil {
		c.n.Add(1)
	}
	return b, err
}

// Compressor drives a push-style DEFLATE or ZLIB encoder: every Write call
// feeds uncompressed bytes in and emits compressed bytes to the wrapped
// sink, tracking both sides' byte counts.
type Compressor struct {
	out   *countingWriter
	w     *flate.Writer
	zlibW *zlib.Writer
	totIn atomic.Uint64
	zlib  bool
}

// NewCompressor builds a raw-DEFLATE compressor at the given klauspost
// compression level.
func NewCompressor(sink io.Writer, level int) (*Compressor, error) {
	cw := &countingWriter{w: sink}
	fw, err := flate.NewWriter(cw, level)
	if err != nil {
		return nil, err
	}
	return &Compressor{out: cw, w: fw}, nil
}

// NewZlibCompressor builds a ZLIB-wrapped compressor (2-byte header,
// Adler-32 trailer) at the given level.
func NewZlibCompressor(sink io.Writer, level int) (*Compressor, error) {
	cw := &countingWriter{w: sink}
	zw, err := zlib.NewWriterLevel(cw, level)
	if err != nil {
		return nil, err
	}
	return &Compressor{out: cw, zlibW: zw, zlib: true}, nil
}

func (c *Compressor) Write(p []byte) (int, error) {
	c.totIn.Add(uint64(len(p)))
	if c.zlib {
		return c.zlibW.Write(p)
	}
	return c.w.Write(p)
}

// Flush emits a sync-flush point: pending bytes reach the sink and the
// stream stays open for further writes.
func (c *Compressor) Flush() error {
	if c.zlib {
		return c.zlibW.Flush()
	}
	return c.w.Flush()
}

// Close finalizes the stream, writing any trailing DEFLATE blocks (and, for
// ZLIB, the Adler-32 trailer).
func (c *Compressor) Close() error {
	if c.zlib {
		return c.zlibW.Close()
	}
	return c.w.Close()
}

// Reset rebinds the compressor to a new sink, preserving the configured
// kind and level, and zeroes the byte counters.
func (c *Compressor) Reset(sink io.Writer) {
	c.out.w = sink
	c.out.n.Store(0)
	c.totIn.Store(0)
	if c.zlib {
		c.zlibW.Reset(c.out)
		return
	}
	c.w.Reset(c.out)
}

// TotalIn returns the number of uncompressed bytes written so far.
func (c *Compressor) TotalIn() uint64 { return c.totIn.Load() }

// TotalOut returns the number of compressed bytes emitted to the sink so far.
func (c *Compressor) TotalOut() uint64 { return c.out.n.Load() }

// Decompressor drives a pull-style DEFLATE or ZLIB decoder: Read pulls
// compressed bytes from the wrapped source and returns uncompressed bytes.
type Decompressor struct {
	in     *countingReader
	r      io.ReadCloser
	totOut atomic.Uint64
}

// NewDecompressor builds a raw-DEFLATE decompressor reading from src.
func NewDecompressor(src io.Reader) *Decompressor {
	cr := &countingReader{r: ensureByteReader(src)}
	return &Decompressor{in: cr, r: flate.NewReader(cr)}
}

// NewZlibDecompressor builds a ZLIB decompressor reading from src. The
// ZLIB header is parsed eagerly, matching klauspost/compress/zlib's
// contract (and stdlib compress/zlib's).
func NewZlibDecompressor(src io.Reader) (*Decompressor, error) {
	cr := &countingReader{r: ensureByteReader(src)}
	zr, err := zlib.NewReader(cr)
	if err != nil {
		return nil, err
	}
	return &Decompressor{in: cr, r: zr}, nil
}

func (d *Decompressor) Read(p []byte) (int, error) {
	n, err := d.r.Read(p)
	d.totOut.Add(uint64(n))
	return n, err
}

// Close releases the decoder. It reads no further input: the ZLIB
// Adler-32 trailer is verified by Read when the stream reaches EOF.
func (d *Decompressor) Close() error { return d.r.Close() }

// TotalIn returns the number of compressed bytes pulled from the source so far.
func (d *Decompressor) TotalIn() uint64 { return d.in.n.Load() }

// TotalOut returns the number of uncompressed bytes returned to the caller so far.
func (d *Decompressor) TotalOut() uint64 { return d.totOut.Load() }
